// Package varga computes divisional (harmonic) chart positions. Each
// supported harmonic N has a fixed classical rule mapping a D1 placement
// {sign, degree-in-sign} to a derived sign; the rules follow the standard
// Parashari forms. Mapping is a pure function of the input position, so a
// chart recomputed from identical input is identical.
package varga

import (
	"fmt"
	"sort"

	"jyotish/internal/zodiac"
)

// InvalidChartError reports a request for a harmonic outside the
// supported set.
type InvalidChartError struct {
	Requested string
}

func (e *InvalidChartError) Error() string {
	return fmt.Sprintf("unsupported divisional chart %q", e.Requested)
}

// names follows the traditional chart names keyed by harmonic number.
var names = map[int]string{
	1: "Rashi", 2: "Hora", 3: "Drekkana", 4: "Chaturthamsa",
	7: "Saptamsa", 9: "Navamsa", 10: "Dasamsa", 12: "Dwadasamsa",
	16: "Shodasamsa", 20: "Vimshamsa", 24: "Chaturvimsamsa",
	27: "Saptavimsamsa", 30: "Trimsamsa", 40: "Khavedamsa",
	45: "Akshavedamsa", 60: "Shashtiamsa",
}

// Supported returns the supported harmonic numbers in ascending order.
func Supported() []int {
	out := make([]int, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// IsSupported reports whether harmonic n has a division rule.
func IsSupported(n int) bool {
	_, ok := names[n]
	return ok
}

// Name returns the traditional name of the harmonic ("Navamsa" for 9).
func Name(n int) string { return names[n] }

// Map derives the position of a D1 placement in the N-th harmonic chart.
// The derived degree is the D1 degree's offset within its division slice
// rescaled to a full sign, which is the convention jyotish software uses
// for varga degrees. Unsupported N fails with *InvalidChartError.
func Map(n int, p zodiac.Position) (zodiac.Position, error) {
	if !IsSupported(n) {
		return zodiac.Position{}, &InvalidChartError{Requested: fmt.Sprintf("D%d", n)}
	}
	if n == 1 {
		return p, nil
	}

	slice := zodiac.SignSpan / float64(n)
	part := int(p.Degree / slice)
	if part >= n { // float noise at the very top of a sign
		part = n - 1
	}
	sign := derivedSign(n, p.Sign, part, p.Degree)
	deg := (p.Degree - float64(part)*slice) * float64(n)
	if deg >= zodiac.SignSpan {
		deg = zodiac.SignSpan - 1e-9
	}
	return zodiac.Resolve(float64(sign-1)*zodiac.SignSpan + deg), nil
}

// derivedSign dispatches the per-harmonic counting rule. part is the
// zero-based division index within the sign.
func derivedSign(n int, sign zodiac.Sign, part int, degree float64) zodiac.Sign {
	switch n {
	case 2:
		return horaSign(sign, part)
	case 3:
		// Parts fall in the sign itself, the 5th, and the 9th from it.
		return sign.Add(4 * part)
	case 4:
		// Parts fall in the 1st, 4th, 7th, and 10th from the sign.
		return sign.Add(3 * part)
	case 7:
		// Odd signs count from the sign, even from its 7th.
		if sign.IsOdd() {
			return sign.Add(part)
		}
		return sign.Add(6 + part)
	case 9:
		// Navamsa: nine parts per sign
		// chained continuously around the zodiac.
		return zodiac.Sign((int(sign)-1)*9+part)%12 + 1
	case 10:
		// Odd signs count from the sign, even from its 9th.
		if sign.IsOdd() {
			return sign.Add(part)
		}
		return sign.Add(8 + part)
	case 12:
		// Counted from the sign itself.
		return sign.Add(part)
	case 16:
		return fromModality(sign, zodiac.Aries, zodiac.Leo, zodiac.Sagittarius).Add(part)
	case 20:
		return fromModality(sign, zodiac.Aries, zodiac.Sagittarius, zodiac.Leo).Add(part)
	case 24:
		// Odd from Leo, even from Cancer.
		if sign.IsOdd() {
			return zodiac.Leo.Add(part)
		}
		return zodiac.Cancer.Add(part)
	case 27:
		// By triplicity: fiery from Aries, earthy from Cancer,
		// airy from Libra, watery from Capricorn.
		return zodiac.Aries.Add(int(sign.Element())*3 + part)
	case 30:
		return trimsamsaSign(sign, degree)
	case 40:
		// Odd from Aries, even from Libra.
		if sign.IsOdd() {
			return zodiac.Aries.Add(part)
		}
		return zodiac.Libra.Add(part)
	case 45:
		return fromModality(sign, zodiac.Aries, zodiac.Leo, zodiac.Sagittarius).Add(part)
	case 60:
		// Counted from the sign itself through sixty half-degree parts.
		return sign.Add(part)
	}
	panic(fmt.Sprintf("varga: no rule for D%d", n))
}

// fromModality picks the counting seed by the sign's quality.
func fromModality(sign zodiac.Sign, movable, fixed, dual zodiac.Sign) zodiac.Sign {
	switch sign.Modality() {
	case zodiac.Movable:
		return movable
	case zodiac.Fixed:
		return fixed
	default:
		return dual
	}
}

// horaSign implements D2: the first half of an odd sign belongs to the
// Sun's hora (Leo), the second to the Moon's (Cancer); even signs reverse.
func horaSign(sign zodiac.Sign, part int) zodiac.Sign {
	firstHalf := part == 0
	if sign.IsOdd() == firstHalf {
		return zodiac.Leo
	}
	return zodiac.Cancer
}

// trimsamsa spans are unequal: 5/5/8/7/5 degrees ruled by Mars, Saturn,
// Jupiter, Mercury, Venus in odd signs, reversed in even signs. Each part
// maps to the corresponding lord's odd/even own sign.
var trimsamsaOdd = []struct {
	upTo float64
	sign zodiac.Sign
}{
	{5, zodiac.Aries}, {10, zodiac.Aquarius}, {18, zodiac.Sagittarius},
	{25, zodiac.Gemini}, {30, zodiac.Libra},
}

var trimsamsaEven = []struct {
	upTo float64
	sign zodiac.Sign
}{
	{5, zodiac.Taurus}, {12, zodiac.Virgo}, {20, zodiac.Pisces},
	{25, zodiac.Capricorn}, {30, zodiac.Scorpio},
}

func trimsamsaSign(sign zodiac.Sign, degree float64) zodiac.Sign {
	table := trimsamsaEven
	if sign.IsOdd() {
		table = trimsamsaOdd
	}
	for _, row := range table {
		if degree < row.upTo {
			return row.sign
		}
	}
	return table[len(table)-1].sign
}
