// Package dasha builds the Vimshottari timing-period tree and resolves the
// running period for a query instant. The Moon's fractional progress
// through its birth nakshatra fixes how much of the first Mahadasha had
// elapsed at birth; from there the nine lords follow in cycle order for a
// full 120-year horizon, each period recursively split into Antardashas
// and Pratyantardashas by the same proportional rule the KP resolver uses
// for arcs.
package dasha

import (
	"fmt"
	"time"

	"jyotish/internal/vimshottari"
	"jyotish/internal/zodiac"
)

// YearDays is the period year length in days (Julian year).
const YearDays = 365.25

// Depth labels for the three computed levels.
const (
	LevelMaha = iota
	LevelAntar
	LevelPratyantar
)

// Node is one period. Children partition [Start, End) exactly: no gaps,
// no overlaps, each child sized by its lord's share of the 120-year
// allocation.
type Node struct {
	Lord     zodiac.Planet `json:"lord"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Children []Node        `json:"children,omitempty"`
}

// Tree is the full three-level Vimshottari tree for one birth.
type Tree struct {
	Birth time.Time
	// Mahadashas covers one complete 120-year cycle; the first node
	// begins before birth by the portion already elapsed.
	Mahadashas [9]Node
}

// OutOfRangeError reports a query instant outside [birth, horizon).
type OutOfRangeError struct {
	Instant time.Time
	Birth   time.Time
	Horizon time.Time
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("dasha: instant %s outside [%s, %s)",
		e.Instant.Format(time.RFC3339), e.Birth.Format(time.RFC3339),
		e.Horizon.Format(time.RFC3339))
}

// Build computes the full three-level tree from the birth instant and
// the natal Moon's absolute sidereal longitude.
func Build(birth time.Time, moonLon float64) *Tree {
	return BuildToDepth(birth, moonLon, 3)
}

// BuildToDepth computes the tree down to the given level count: 1 keeps
// Mahadashas only, 2 adds Antardashas, 3 adds Pratyantardashas. Values
// outside 1..3 are clamped.
func BuildToDepth(birth time.Time, moonLon float64, depth int) *Tree {
	if depth < 1 {
		depth = 1
	}
	if depth > 3 {
		depth = 3
	}
	pos := zodiac.Resolve(moonLon)
	first := pos.Nakshatra.Lord()

	// The cycle notionally started when the Moon entered the nakshatra;
	// the elapsed share of the first lord's period sits before birth.
	elapsed := zodiac.NakshatraFraction(moonLon) * vimshottari.Years(first) * YearDays
	cycleStart := birth.Add(-days(elapsed))

	segs, err := vimshottari.Subdivide(0, vimshottari.TotalYears*YearDays, first)
	if err != nil {
		panic(fmt.Sprintf("dasha: %v", err)) // first is always a cycle lord
	}

	t := &Tree{Birth: birth}
	for i, s := range segs {
		t.Mahadashas[i] = buildNode(cycleStart, s, LevelMaha, depth)
	}
	return t
}

// buildNode materializes one period and, down to the requested depth,
// its children. Each level re-applies the proportional rule over the
// parent's span starting from the parent's own lord.
func buildNode(cycleStart time.Time, seg vimshottari.Segment, level, depth int) Node {
	n := Node{
		Lord:  seg.Lord,
		Start: cycleStart.Add(days(seg.Start)),
		End:   cycleStart.Add(days(seg.End)),
	}
	if level+1 >= depth {
		return n
	}
	children, err := vimshottari.Subdivide(seg.Start, seg.End-seg.Start, seg.Lord)
	if err != nil {
		panic(fmt.Sprintf("dasha: %v", err))
	}
	n.Children = make([]Node, 9)
	for i, c := range children {
		n.Children[i] = buildNode(cycleStart, c, level+1, depth)
	}
	return n
}

func days(d float64) time.Duration {
	return time.Duration(d * 24 * float64(time.Hour))
}

// Horizon returns the exclusive end of the computed tree.
func (t *Tree) Horizon() time.Time { return t.Mahadashas[8].End }

// Path is the running period chain at one instant.
type Path struct {
	Mahadasha       *Node `json:"mahadasha"`
	Antardasha      *Node `json:"antardasha"`
	Pratyantardasha *Node `json:"pratyantardasha"`
}

// Current resolves the period path containing the instant. The tree's
// intervals are half-open, so an instant exactly on a boundary belongs to
// the later period. Levels the tree was not built down to stay nil.
// Instants before birth or at/after the horizon fail with
// *OutOfRangeError.
func (t *Tree) Current(instant time.Time) (Path, error) {
	if instant.Before(t.Birth) || !instant.Before(t.Horizon()) {
		return Path{}, &OutOfRangeError{Instant: instant, Birth: t.Birth, Horizon: t.Horizon()}
	}
	p := Path{Mahadasha: locate(t.Mahadashas[:], instant)}
	if len(p.Mahadasha.Children) > 0 {
		p.Antardasha = locate(p.Mahadasha.Children, instant)
	}
	if p.Antardasha != nil && len(p.Antardasha.Children) > 0 {
		p.Pratyantardasha = locate(p.Antardasha.Children, instant)
	}
	return p, nil
}

// locate returns the child whose [Start, End) contains the instant.
// Children are contiguous and sorted, so scanning from the back and
// taking the first child that starts at or before the instant implements
// the boundary-goes-later policy directly.
func locate(nodes []Node, instant time.Time) *Node {
	for i := len(nodes) - 1; i >= 0; i-- {
		if !instant.Before(nodes[i].Start) {
			return &nodes[i]
		}
	}
	return &nodes[0]
}
