// Package kp resolves the Krishnamurti Paddhati lord hierarchy for any
// zodiacal point. Each nakshatra arc is partitioned into nine sub-arcs
// sized by the Vimshottari year ratios, starting from the nakshatra's own
// lord; the sub-arc is subdivided once more, starting from the sub-lord,
// to yield the sub-sub lord. The subdivision rule is the same one the
// dasha engine applies to time spans.
package kp

import (
	"fmt"

	"jyotish/internal/vimshottari"
	"jyotish/internal/zodiac"
)

// Chain is the four-level lord hierarchy attached to a zodiacal point.
type Chain struct {
	SignLord      zodiac.Planet `json:"sign_lord"`
	NakshatraLord zodiac.Planet `json:"nakshatra_lord"`
	SubLord       zodiac.Planet `json:"sub_lord"`
	SubSubLord    zodiac.Planet `json:"sub_sub_lord"`
}

// Resolve computes the lord chain for an absolute sidereal longitude.
// The partition is exhaustive and non-overlapping at every level: a
// longitude exactly on a sub boundary belongs to the later sub.
func Resolve(lon float64) Chain {
	pos := zodiac.Resolve(lon)

	nakStart := float64(pos.Nakshatra-1) * zodiac.NakshatraSpan
	x := pos.Longitude
	if x < nakStart { // float noise when the longitude sits on the arc start
		x = nakStart
	}
	sub, err := vimshottari.Locate(nakStart, zodiac.NakshatraSpan, pos.Nakshatra.Lord(), x)
	if err != nil {
		// pos.Longitude lies inside its own nakshatra by construction.
		panic(fmt.Sprintf("kp: sub lookup failed for %v: %v", lon, err))
	}

	subSub, err := vimshottari.Locate(sub.Start, sub.End-sub.Start, sub.Lord, x)
	if err != nil {
		panic(fmt.Sprintf("kp: sub-sub lookup failed for %v: %v", lon, err))
	}

	return Chain{
		SignLord:      pos.Sign.Lord(),
		NakshatraLord: pos.Nakshatra.Lord(),
		SubLord:       sub.Lord,
		SubSubLord:    subSub.Lord,
	}
}
