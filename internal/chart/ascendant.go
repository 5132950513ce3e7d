package chart

import (
	"math"

	"jyotish/internal/zodiac"
)

// meanObliquity of the ecliptic, degrees. The arcsecond drift over the
// supported date range is far below the resolution of sign placement.
const meanObliquity = 23.4392911

// ascendant computes the sidereal rising longitude from the local
// sidereal time (degrees), the geographic latitude and the ayanamsa.
func ascendant(siderealDeg, latitude, ayanamsa float64) zodiac.Position {
	theta := radians(siderealDeg)
	eps := radians(meanObliquity)
	phi := radians(latitude)

	tropical := math.Atan2(
		math.Cos(theta),
		-(math.Sin(theta)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps)),
	)
	return zodiac.Resolve(zodiac.Normalize(degrees(tropical) - ayanamsa))
}

func radians(d float64) float64 { return d * math.Pi / 180 }
func degrees(r float64) float64 { return r * 180 / math.Pi }
