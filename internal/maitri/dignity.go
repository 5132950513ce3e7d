package maitri

import (
	"fmt"

	"jyotish/internal/zodiac"
)

// Dignity classifies a planet's standing in a sign.
type Dignity int

const (
	Debilitated Dignity = iota
	InEnemySign
	InNeutralSign
	InFriendSign
	Own
	Moolatrikona
	Exalted
)

var dignityNames = [...]string{
	"Debilitated", "Enemy Sign", "Neutral Sign", "Friend Sign",
	"Own Sign", "Moolatrikona", "Exalted",
}

func (d Dignity) String() string {
	if d < Debilitated || int(d) >= len(dignityNames) {
		return fmt.Sprintf("Dignity(%d)", int(d))
	}
	return dignityNames[d]
}

// exaltation maps each graha to its exaltation sign and the exact degree
// of deepest exaltation; debilitation is the seventh sign from it.
var exaltation = map[zodiac.Planet]struct {
	sign   zodiac.Sign
	degree float64
}{
	zodiac.Sun:     {zodiac.Aries, 10},
	zodiac.Moon:    {zodiac.Taurus, 3},
	zodiac.Mars:    {zodiac.Capricorn, 28},
	zodiac.Mercury: {zodiac.Virgo, 15},
	zodiac.Jupiter: {zodiac.Cancer, 5},
	zodiac.Venus:   {zodiac.Pisces, 27},
	zodiac.Saturn:  {zodiac.Libra, 20},
	zodiac.Rahu:    {zodiac.Taurus, 20},
	zodiac.Ketu:    {zodiac.Scorpio, 20},
}

// ExaltationPoint returns the absolute longitude of the planet's deepest
// exaltation; the strength engine measures uccha bala from its opposite.
func ExaltationPoint(p zodiac.Planet) float64 {
	e, ok := exaltation[p]
	if !ok {
		panic(fmt.Sprintf("maitri: no exaltation entry for %v", p))
	}
	return float64(e.sign-1)*zodiac.SignSpan + e.degree
}

// moolatrikona maps each planet to its moolatrikona sign and degree range.
var moolatrikona = map[zodiac.Planet]struct {
	sign     zodiac.Sign
	from, to float64
}{
	zodiac.Sun:     {zodiac.Leo, 0, 20},
	zodiac.Moon:    {zodiac.Taurus, 3, 30},
	zodiac.Mars:    {zodiac.Aries, 0, 12},
	zodiac.Mercury: {zodiac.Virgo, 15, 20},
	zodiac.Jupiter: {zodiac.Sagittarius, 0, 10},
	zodiac.Venus:   {zodiac.Libra, 0, 15},
	zodiac.Saturn:  {zodiac.Aquarius, 0, 20},
}

// nodeOwnSigns lists signs the nodes count as their own; the seven
// planets use the rulership table in the zodiac package. Conventions for
// the nodes vary; Aquarius for Rahu and Scorpio for Ketu follow the
// co-rulership tradition.
var nodeOwnSigns = map[zodiac.Planet]zodiac.Sign{
	zodiac.Rahu: zodiac.Aquarius,
	zodiac.Ketu: zodiac.Scorpio,
}

func ownsSign(p zodiac.Planet, s zodiac.Sign) bool {
	if s.Lord() == p {
		return true
	}
	return nodeOwnSigns[p] == s
}

// Resolve returns the planet's dignity at the given placement. The special
// categories are checked in precedence order before falling back to the
// natural relation toward the sign lord. Moolatrikona ranges are checked
// ahead of exaltation so that overlapping signs (Moon in Taurus, Mercury
// in Virgo) split by degree; outside a moolatrikona range the whole
// exaltation sign counts as exalted.
func Resolve(p zodiac.Planet, pos zodiac.Position) Dignity {
	if mt, ok := moolatrikona[p]; ok && pos.Sign == mt.sign &&
		pos.Degree >= mt.from && pos.Degree < mt.to {
		return Moolatrikona
	}
	ex := exaltation[p]
	if pos.Sign == ex.sign {
		return Exalted
	}
	if ownsSign(p, pos.Sign) {
		return Own
	}
	if pos.Sign == ex.sign.Add(6) {
		return Debilitated
	}
	switch Natural(p, pos.Sign.Lord()) {
	case Friend:
		return InFriendSign
	case Enemy:
		return InEnemySign
	default:
		return InNeutralSign
	}
}
