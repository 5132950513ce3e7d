package ephemeris

import (
	"time"

	"jyotish/internal/zodiac"
)

// Body is one raw sidereal position as supplied by the provider.
type Body struct {
	Longitude  float64 `yaml:"longitude" json:"longitude"` // [0, 360)
	Speed      float64 `yaml:"speed" json:"speed"`         // degrees/day; negative when retrograde
	Retrograde bool    `yaml:"retrograde" json:"retrograde"`
}

// Snapshot is the full set of raw positions for one instant, plus the
// auxiliary quantities the chart layer needs (local sidereal time and the
// ayanamsa already applied to the longitudes).
type Snapshot struct {
	Bodies       map[zodiac.Planet]Body `json:"bodies"`
	SiderealTime float64                `json:"sidereal_time"` // local, degrees [0, 360)
	Ayanamsa     float64                `json:"ayanamsa"`      // degrees
}

// SunTimes carries the provider's sunrise and sunset for the birth date
// and place, used by the Panchang and Kaala-bala computations.
type SunTimes struct {
	Sunrise time.Time `yaml:"sunrise" json:"sunrise"`
	Sunset  time.Time `yaml:"sunset" json:"sunset"`
}

// requiredBodies must all be present before any downstream component runs.
// Ketu is absent from this list on purpose: it is always derived.
var requiredBodies = []zodiac.Planet{
	zodiac.Sun, zodiac.Moon, zodiac.Mars, zodiac.Mercury,
	zodiac.Jupiter, zodiac.Venus, zodiac.Saturn, zodiac.Rahu,
}

// Normalize validates the snapshot and enforces the structural invariants:
// every longitude is mapped into [0, 360), the retrograde flag is made to
// agree with the speed sign, both nodes are marked retrograde, and Ketu is
// (re)derived as the exact opposition of Rahu; a provider-supplied Ketu is
// discarded. Returns a *Error describing the first defect found.
func (s *Snapshot) Normalize() error {
	if s.Bodies == nil {
		return &Error{Op: "normalize", Reason: "snapshot has no bodies"}
	}
	for _, p := range requiredBodies {
		if _, ok := s.Bodies[p]; !ok {
			return &Error{Op: "normalize", Reason: "missing body " + p.String()}
		}
	}
	for p, b := range s.Bodies {
		if !p.Valid() {
			return &Error{Op: "normalize", Reason: "unknown body identifier"}
		}
		b.Longitude = zodiac.Normalize(b.Longitude)
		b.Retrograde = b.Speed < 0
		s.Bodies[p] = b
	}

	rahu := s.Bodies[zodiac.Rahu]
	rahu.Retrograde = true
	if rahu.Speed > 0 {
		rahu.Speed = -rahu.Speed
	}
	s.Bodies[zodiac.Rahu] = rahu
	s.Bodies[zodiac.Ketu] = Body{
		Longitude:  zodiac.Normalize(rahu.Longitude + 180),
		Speed:      rahu.Speed,
		Retrograde: true,
	}

	s.SiderealTime = zodiac.Normalize(s.SiderealTime)
	return nil
}

// Clone returns a deep copy; snapshots handed to concurrent components are
// never shared mutable state.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Bodies:       make(map[zodiac.Planet]Body, len(s.Bodies)),
		SiderealTime: s.SiderealTime,
		Ayanamsa:     s.Ayanamsa,
	}
	for p, b := range s.Bodies {
		out.Bodies[p] = b
	}
	return out
}
