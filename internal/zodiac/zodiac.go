// Package zodiac provides the shared sidereal zodiac enumerations and the
// longitude resolver used by every other package in the engine.
// This package exists to break import cycles between the chart, varga, and
// strength packages; it holds only immutable lookup tables and pure functions.
package zodiac

import (
	"fmt"
	"math"
)

// Planet identifies a celestial body. The first nine are the classical
// Vedic grahas; the outer planets are carried for callers that supply them
// but never participate in strength or dasha computations.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
	Uranus
	Neptune
	Pluto
)

var planetNames = [...]string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn",
	"Rahu", "Ketu", "Uranus", "Neptune", "Pluto",
}

func (p Planet) String() string {
	if p < 0 || int(p) >= len(planetNames) {
		return fmt.Sprintf("Planet(%d)", int(p))
	}
	return planetNames[p]
}

// Valid reports whether p is one of the known bodies.
func (p Planet) Valid() bool { return p >= Sun && p <= Pluto }

// IsNode reports whether p is a lunar node (Rahu or Ketu).
func (p Planet) IsNode() bool { return p == Rahu || p == Ketu }

// Grahas returns the nine Vedic bodies in conventional order.
func Grahas() []Planet {
	return []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}
}

// Classical returns the seven planets that participate in Shadbala and
// Ashtakavarga (the nodes are excluded by the classical texts).
func Classical() []Planet {
	return []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}
}

// ParsePlanet resolves a body name as produced by Planet.String.
func ParsePlanet(name string) (Planet, bool) {
	for i, n := range planetNames {
		if n == name {
			return Planet(i), true
		}
	}
	return 0, false
}

// Sign is a zodiac sign numbered 1 (Aries) through 12 (Pisces).
type Sign int

const (
	Aries Sign = iota + 1
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s-1]
}

// Valid reports whether s is in 1..12.
func (s Sign) Valid() bool { return s >= Aries && s <= Pisces }

// IsOdd reports whether s is an odd (male) sign. Aries counts as odd.
func (s Sign) IsOdd() bool { return s%2 == 1 }

// Add counts n signs forward from s, wrapping around the zodiac.
// Add(0) is s itself; negative n counts backward.
func (s Sign) Add(n int) Sign {
	i := (int(s) - 1 + n) % 12
	if i < 0 {
		i += 12
	}
	return Sign(i + 1)
}

// DistanceTo returns the inclusive house count from s to t (1..12).
// A sign's distance to itself is 1.
func (s Sign) DistanceTo(t Sign) int {
	d := (int(t)-int(s)+12)%12 + 1
	return d
}

// Element is the classical triplicity of a sign.
type Element int

const (
	Fire Element = iota
	Earth
	Air
	Water
)

// Element returns the sign's triplicity: Aries is fiery and the elements
// repeat in Fire, Earth, Air, Water order.
func (s Sign) Element() Element { return Element((int(s) - 1) % 4) }

// Modality is the quality (chara/sthira/dvisvabhava) of a sign.
type Modality int

const (
	Movable Modality = iota
	Fixed
	Dual
)

// Modality returns the sign's quality; Aries is movable and the qualities
// repeat in Movable, Fixed, Dual order.
func (s Sign) Modality() Modality { return Modality((int(s) - 1) % 3) }

var signLords = [...]Planet{
	Mars, Venus, Mercury, Moon, Sun, Mercury,
	Venus, Mars, Jupiter, Saturn, Saturn, Jupiter,
}

// Lord returns the ruling planet of the sign.
func (s Sign) Lord() Planet { return signLords[s-1] }

// Nakshatra is a lunar mansion numbered 1 (Ashwini) through 27 (Revati).
type Nakshatra int

var nakshatraNames = [...]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashirsha",
	"Ardra", "Punarvasu", "Pushya", "Ashlesha", "Magha",
	"Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra", "Swati",
	"Vishakha", "Anuradha", "Jyeshtha", "Mula", "Purva Ashadha",
	"Uttara Ashadha", "Shravana", "Dhanishtha", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

func (n Nakshatra) String() string {
	if n < 1 || n > 27 {
		return fmt.Sprintf("Nakshatra(%d)", int(n))
	}
	return nakshatraNames[n-1]
}

// Valid reports whether n is in 1..27.
func (n Nakshatra) Valid() bool { return n >= 1 && n <= 27 }

// nakshatraLords repeats the nine-lord Vimshottari cycle three times
// across the 27 mansions, starting with Ketu at Ashwini.
var nakshatraLords = [...]Planet{
	Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury,
}

// Lord returns the Vimshottari ruler of the nakshatra.
func (n Nakshatra) Lord() Planet { return nakshatraLords[(int(n)-1)%9] }

// Span widths of the zodiac partitions, in degrees.
const (
	SignSpan      = 30.0
	NakshatraSpan = 360.0 / 27.0 // 13°20'
	PadaSpan      = NakshatraSpan / 4.0
)

// Normalize maps an arbitrary longitude into [0, 360).
func Normalize(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	return lon
}
