package zodiac

import "math"

// Position is the resolved placement of an absolute sidereal longitude.
// Every field is derived from Longitude alone; instances are never mutated.
type Position struct {
	Longitude float64   // absolute, [0, 360)
	Sign      Sign      // 1..12
	Degree    float64   // degree within the sign, [0, 30)
	Nakshatra Nakshatra // 1..27
	Pada      int       // 1..4
}

// Resolve maps an absolute sidereal longitude to its sign, degree-in-sign,
// nakshatra, and pada. The partition is total and exact: 0 and 360 are
// identified, and a longitude sitting exactly on a boundary belongs to the
// higher segment.
func Resolve(lon float64) Position {
	lon = Normalize(lon)

	sign := int(lon / SignSpan)
	if sign > 11 { // guards float noise at the top of Pisces
		sign = 11
	}

	nak := int(lon / NakshatraSpan)
	if nak > 26 {
		nak = 26
	}
	inNak := lon - float64(nak)*NakshatraSpan

	pada := int(inNak / PadaSpan)
	if pada > 3 {
		pada = 3
	}

	return Position{
		Longitude: lon,
		Sign:      Sign(sign + 1),
		Degree:    math.Mod(lon, SignSpan),
		Nakshatra: Nakshatra(nak + 1),
		Pada:      pada + 1,
	}
}

// NakshatraFraction returns how far lon has progressed through its
// nakshatra, in [0, 1). The dasha engine uses this to compute the
// balance of the first Mahadasha at birth.
func NakshatraFraction(lon float64) float64 {
	lon = Normalize(lon)
	return math.Mod(lon, NakshatraSpan) / NakshatraSpan
}
