// Package vimshottari holds the nine-lord Vimshottari cycle, its 120-year
// allocation table, and the proportional subdivision rule shared by the
// dasha engine (over time spans) and the KP resolver (over arc spans).
// Keeping the rule in one place guarantees both consumers partition their
// spans with identical ratios and identical boundary behavior.
package vimshottari

import (
	"fmt"

	"jyotish/internal/zodiac"
)

// TotalYears is the full allocation of one Vimshottari cycle.
const TotalYears = 120.0

// Cycle is the fixed lord order. Ashwini belongs to Ketu, so the cycle
// conventionally starts there.
var Cycle = [9]zodiac.Planet{
	zodiac.Ketu, zodiac.Venus, zodiac.Sun, zodiac.Moon, zodiac.Mars,
	zodiac.Rahu, zodiac.Jupiter, zodiac.Saturn, zodiac.Mercury,
}

var years = map[zodiac.Planet]float64{
	zodiac.Ketu:    7,
	zodiac.Venus:   20,
	zodiac.Sun:     6,
	zodiac.Moon:    10,
	zodiac.Mars:    7,
	zodiac.Rahu:    18,
	zodiac.Jupiter: 16,
	zodiac.Saturn:  19,
	zodiac.Mercury: 17,
}

// Years returns the lord's full-cycle allocation in years.
// Asking for a body outside the cycle is a programming error.
func Years(p zodiac.Planet) float64 {
	y, ok := years[p]
	if !ok {
		panic(fmt.Sprintf("vimshottari: %v is not a dasha lord", p))
	}
	return y
}

// Index returns the lord's position in the cycle.
func Index(p zodiac.Planet) (int, bool) {
	for i, l := range Cycle {
		if l == p {
			return i, true
		}
	}
	return 0, false
}

// Segment is one proportional slice of a subdivided span. Units are those
// of the caller's span: days for dasha periods, degrees for KP sub-arcs.
type Segment struct {
	Lord  zodiac.Planet
	Start float64
	End   float64
}

// Subdivide partitions [origin, origin+span) into nine contiguous segments,
// one per lord starting from `first` and proceeding in cycle order, each
// sized by the lord's share of the 120-year allocation.
//
// Boundaries are computed from cumulative fractions rather than by summing
// segment widths, so the partition is exhaustive and non-overlapping: the
// last segment's End is exactly origin+span regardless of float rounding.
func Subdivide(origin, span float64, first zodiac.Planet) ([9]Segment, error) {
	start, ok := Index(first)
	if !ok {
		return [9]Segment{}, fmt.Errorf("vimshottari: %v is not a dasha lord", first)
	}

	var out [9]Segment
	cum := 0.0
	prev := origin
	for i := 0; i < 9; i++ {
		lord := Cycle[(start+i)%9]
		cum += years[lord]
		end := origin + span*(cum/TotalYears)
		if i == 8 {
			end = origin + span
		}
		out[i] = Segment{Lord: lord, Start: prev, End: end}
		prev = end
	}
	return out, nil
}

// Locate returns the segment of Subdivide(origin, span, first) containing
// offset x. A value exactly on a boundary belongs to the later segment;
// x must lie in [origin, origin+span).
func Locate(origin, span float64, first zodiac.Planet, x float64) (Segment, error) {
	segs, err := Subdivide(origin, span, first)
	if err != nil {
		return Segment{}, err
	}
	if x < origin || x >= origin+span {
		return Segment{}, fmt.Errorf("vimshottari: offset %v outside [%v, %v)", x, origin, origin+span)
	}
	for i := 8; i >= 0; i-- {
		if x >= segs[i].Start {
			return segs[i], nil
		}
	}
	return segs[0], nil
}
