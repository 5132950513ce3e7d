package varga

import (
	"testing"

	"jyotish/internal/zodiac"
)

func at(sign zodiac.Sign, degree float64) zodiac.Position {
	return zodiac.Resolve(float64(sign-1)*zodiac.SignSpan + degree)
}

func mustMap(t *testing.T, n int, p zodiac.Position) zodiac.Position {
	t.Helper()
	out, err := Map(n, p)
	if err != nil {
		t.Fatalf("Map(D%d, %v %v°): %v", n, p.Sign, p.Degree, err)
	}
	return out
}

func TestSupportedSet(t *testing.T) {
	want := []int{1, 2, 3, 4, 7, 9, 10, 12, 16, 20, 24, 27, 30, 40, 45, 60}
	got := Supported()
	if len(got) != len(want) {
		t.Fatalf("supported set has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("supported[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if IsSupported(5) || IsSupported(99) {
		t.Fatal("accepted an unsupported harmonic")
	}
}

func TestUnsupportedHarmonicFails(t *testing.T) {
	_, err := Map(99, at(zodiac.Aries, 10))
	if _, ok := err.(*InvalidChartError); !ok {
		t.Fatalf("expected *InvalidChartError, got %v", err)
	}
}

func TestD1IsIdentity(t *testing.T) {
	p := at(zodiac.Scorpio, 17.25)
	got := mustMap(t, 1, p)
	if got != p {
		t.Fatalf("D1 changed the position: %+v != %+v", got, p)
	}
}

func TestNavamsaKnownPlacements(t *testing.T) {
	cases := []struct {
		sign zodiac.Sign
		deg  float64
		want zodiac.Sign
	}{
		// Movable sign counts from itself.
		{zodiac.Aries, 0.5, zodiac.Aries},
		{zodiac.Aries, 29.5, zodiac.Sagittarius},
		// Fixed sign counts from its ninth.
		{zodiac.Leo, 10, zodiac.Cancer},
		{zodiac.Taurus, 0.5, zodiac.Capricorn},
		// Dual sign counts from its fifth.
		{zodiac.Gemini, 0.1, zodiac.Libra},
		{zodiac.Pisces, 29.9, zodiac.Pisces},
	}
	for _, tc := range cases {
		got := mustMap(t, 9, at(tc.sign, tc.deg))
		if got.Sign != tc.want {
			t.Errorf("D9 of %v %.1f° = %v, want %v", tc.sign, tc.deg, got.Sign, tc.want)
		}
	}
}

func TestHoraOnlyCancerOrLeo(t *testing.T) {
	for s := zodiac.Aries; s <= zodiac.Pisces; s++ {
		for _, deg := range []float64{7.5, 22.5} {
			got := mustMap(t, 2, at(s, deg))
			if got.Sign != zodiac.Cancer && got.Sign != zodiac.Leo {
				t.Fatalf("D2 of %v %.1f° = %v", s, deg, got.Sign)
			}
		}
	}
	// Odd sign: first half solar (Leo), second lunar (Cancer).
	if mustMap(t, 2, at(zodiac.Aries, 5)).Sign != zodiac.Leo {
		t.Error("first hora of an odd sign should be Leo")
	}
	if mustMap(t, 2, at(zodiac.Aries, 20)).Sign != zodiac.Cancer {
		t.Error("second hora of an odd sign should be Cancer")
	}
	// Even signs reverse.
	if mustMap(t, 2, at(zodiac.Taurus, 5)).Sign != zodiac.Cancer {
		t.Error("first hora of an even sign should be Cancer")
	}
}

func TestDrekkanaTrines(t *testing.T) {
	base := zodiac.Sagittarius
	wants := []zodiac.Sign{zodiac.Sagittarius, zodiac.Aries, zodiac.Leo}
	for part, want := range wants {
		got := mustMap(t, 3, at(base, float64(part)*10+5))
		if got.Sign != want {
			t.Errorf("D3 part %d of %v = %v, want %v", part, base, got.Sign, want)
		}
	}
}

func TestSaptamsaOddEvenSeeds(t *testing.T) {
	if got := mustMap(t, 7, at(zodiac.Aries, 1)).Sign; got != zodiac.Aries {
		t.Errorf("first saptamsa of Aries = %v, want Aries", got)
	}
	if got := mustMap(t, 7, at(zodiac.Taurus, 1)).Sign; got != zodiac.Scorpio {
		t.Errorf("first saptamsa of Taurus = %v, want Scorpio", got)
	}
}

func TestDasamsaOddEvenSeeds(t *testing.T) {
	if got := mustMap(t, 10, at(zodiac.Capricorn, 29)).Sign; got != zodiac.Gemini {
		// Even sign: 9th from Capricorn is Virgo; tenth part lands 9 on.
		t.Errorf("last dasamsa of Capricorn = %v, want Gemini", got)
	}
	if got := mustMap(t, 10, at(zodiac.Aries, 0.5)).Sign; got != zodiac.Aries {
		t.Errorf("first dasamsa of Aries = %v, want Aries", got)
	}
}

func TestTrimsamsaUnequalSpans(t *testing.T) {
	// Odd sign spans: 0-5 Mars, 5-10 Saturn, 10-18 Jupiter, 18-25
	// Mercury, 25-30 Venus, each mapped to that lord's sign.
	cases := []struct {
		deg  float64
		want zodiac.Sign
	}{
		{2, zodiac.Aries}, {5, zodiac.Aquarius}, {9.99, zodiac.Aquarius},
		{10, zodiac.Sagittarius}, {17.9, zodiac.Sagittarius},
		{18, zodiac.Gemini}, {24.9, zodiac.Gemini},
		{25, zodiac.Libra}, {29.9, zodiac.Libra},
	}
	for _, tc := range cases {
		if got := mustMap(t, 30, at(zodiac.Aries, tc.deg)).Sign; got != tc.want {
			t.Errorf("D30 of Aries %.2f° = %v, want %v", tc.deg, got, tc.want)
		}
	}
	// Even signs reverse the order.
	if got := mustMap(t, 30, at(zodiac.Taurus, 2)).Sign; got != zodiac.Taurus {
		t.Errorf("D30 of Taurus 2° = %v, want Taurus", got)
	}
	if got := mustMap(t, 30, at(zodiac.Taurus, 27)).Sign; got != zodiac.Scorpio {
		t.Errorf("D30 of Taurus 27° = %v, want Scorpio", got)
	}
}

func TestShashtiamsaCountsFromSign(t *testing.T) {
	// 23.7° into a sign is the 48th part: sign + 47.
	got := mustMap(t, 60, at(zodiac.Cancer, 23.7))
	if got.Sign != zodiac.Cancer.Add(47) {
		t.Errorf("D60 of Cancer 23.7° = %v, want %v", got.Sign, zodiac.Cancer.Add(47))
	}
}

func TestMapIsIdempotent(t *testing.T) {
	p := at(zodiac.Virgo, 13.37)
	for _, n := range Supported() {
		a := mustMap(t, n, p)
		b := mustMap(t, n, p)
		if a != b {
			t.Fatalf("D%d not deterministic: %+v != %+v", n, a, b)
		}
	}
}

func TestDerivedDegreeStaysInSign(t *testing.T) {
	for _, n := range Supported() {
		for deg := 0.0; deg < 30.0; deg += 0.37 {
			got := mustMap(t, n, at(zodiac.Libra, deg))
			if got.Degree < 0 || got.Degree >= zodiac.SignSpan {
				t.Fatalf("D%d degree %v out of range for input %.2f°", n, got.Degree, deg)
			}
			if !got.Sign.Valid() {
				t.Fatalf("D%d produced invalid sign for input %.2f°", n, deg)
			}
		}
	}
}
