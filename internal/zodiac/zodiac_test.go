package zodiac

import (
	"math"
	"testing"
)

func TestResolvePartitionIsTotal(t *testing.T) {
	// Sweep the full circle at a step that lands on and between every
	// sign, nakshatra, and pada boundary.
	step := 360.0 / (27 * 4 * 3)
	for lon := 0.0; lon < 360.0; lon += step {
		p := Resolve(lon)
		if !p.Sign.Valid() {
			t.Fatalf("lon %.4f: invalid sign %d", lon, p.Sign)
		}
		if !p.Nakshatra.Valid() {
			t.Fatalf("lon %.4f: invalid nakshatra %d", lon, p.Nakshatra)
		}
		if p.Pada < 1 || p.Pada > 4 {
			t.Fatalf("lon %.4f: invalid pada %d", lon, p.Pada)
		}
		if p.Degree < 0 || p.Degree >= SignSpan {
			t.Fatalf("lon %.4f: degree out of range: %v", lon, p.Degree)
		}
	}
}

func TestResolveBoundariesGoHigher(t *testing.T) {
	cases := []struct {
		lon  float64
		sign Sign
		nak  Nakshatra
		pada int
	}{
		{0, Aries, 1, 1},
		{30, Taurus, 3, 2},             // sign boundary; mid-Krittika
		{NakshatraSpan, Aries, 2, 1},   // nakshatra boundary
		{PadaSpan, Aries, 1, 2},        // pada boundary
		{360, Aries, 1, 1},             // identified with 0
		{359.9999, Pisces, 27, 4},      // top of the circle stays put
		{-10, Pisces, 27, 4},           // negative input normalizes
		{120, Leo, 10, 1},              // Magha starts exactly at 120
	}
	for _, tc := range cases {
		p := Resolve(tc.lon)
		if p.Sign != tc.sign || p.Nakshatra != tc.nak || p.Pada != tc.pada {
			t.Errorf("Resolve(%v) = sign %v nak %v pada %d; want %v %v %d",
				tc.lon, p.Sign, p.Nakshatra, p.Pada, tc.sign, tc.nak, tc.pada)
		}
	}
}

func TestResolveDegreeInSign(t *testing.T) {
	p := Resolve(95.5)
	if p.Sign != Cancer {
		t.Fatalf("expected Cancer, got %v", p.Sign)
	}
	if math.Abs(p.Degree-5.5) > 1e-9 {
		t.Fatalf("expected 5.5 degrees in sign, got %v", p.Degree)
	}
}

func TestSignLordsAndCounting(t *testing.T) {
	if Aries.Lord() != Mars || Leo.Lord() != Sun || Aquarius.Lord() != Saturn {
		t.Fatal("sign lord table corrupted")
	}
	if got := Scorpio.Add(4); got != Pisces {
		t.Fatalf("Scorpio+4 = %v, want Pisces", got)
	}
	if got := Aries.Add(-1); got != Pisces {
		t.Fatalf("Aries-1 = %v, want Pisces", got)
	}
	if d := Capricorn.DistanceTo(Capricorn); d != 1 {
		t.Fatalf("self distance = %d, want 1", d)
	}
	if d := Aries.DistanceTo(Pisces); d != 12 {
		t.Fatalf("Aries->Pisces = %d, want 12", d)
	}
}

func TestNakshatraLordCycle(t *testing.T) {
	// The nine-lord cycle repeats exactly three times over 27 mansions.
	for i := 1; i <= 9; i++ {
		n := Nakshatra(i)
		if n.Lord() != Nakshatra(i+9).Lord() || n.Lord() != Nakshatra(i+18).Lord() {
			t.Fatalf("lord cycle broken at %v", n)
		}
	}
	if Nakshatra(1).Lord() != Ketu || Nakshatra(2).Lord() != Venus || Nakshatra(9).Lord() != Mercury {
		t.Fatal("nakshatra lord order corrupted")
	}
}

func TestElementAndModality(t *testing.T) {
	if Aries.Element() != Fire || Taurus.Element() != Earth ||
		Gemini.Element() != Air || Cancer.Element() != Water {
		t.Fatal("element cycle corrupted")
	}
	if Aries.Modality() != Movable || Leo.Modality() != Fixed || Pisces.Modality() != Dual {
		t.Fatal("modality cycle corrupted")
	}
}

func TestParsePlanet(t *testing.T) {
	for _, p := range Grahas() {
		got, ok := ParsePlanet(p.String())
		if !ok || got != p {
			t.Fatalf("round trip failed for %v", p)
		}
	}
	if _, ok := ParsePlanet("Vulcan"); ok {
		t.Fatal("accepted unknown body")
	}
}
