package maitri

import "jyotish/internal/zodiac"

// BaaladiAvastha is the five-fold age state derived from degree-in-sign.
type BaaladiAvastha int

const (
	Bala BaaladiAvastha = iota // infant
	Kumara
	Yuva
	Vriddha
	Mrita
)

var baaladiNames = [...]string{"Bala", "Kumara", "Yuva", "Vriddha", "Mrita"}

func (a BaaladiAvastha) String() string { return baaladiNames[a] }

// Baaladi splits each sign into five 6-degree states, counted forward in
// odd signs and backward in even signs.
func Baaladi(pos zodiac.Position) BaaladiAvastha {
	fifth := int(pos.Degree / 6)
	if fifth > 4 {
		fifth = 4
	}
	if !pos.Sign.IsOdd() {
		fifth = 4 - fifth
	}
	return BaaladiAvastha(fifth)
}

// JagradadiAvastha is the three-fold alertness state derived from dignity.
type JagradadiAvastha int

const (
	Jagrat   JagradadiAvastha = iota // awake: exalted, moolatrikona, own
	Swapna                           // dreaming: friendly or neutral sign
	Sushupti                         // asleep: enemy sign or debilitated
)

var jagradadiNames = [...]string{"Jagrat", "Swapna", "Sushupti"}

func (a JagradadiAvastha) String() string { return jagradadiNames[a] }

// Jagradadi classifies alertness from the resolved dignity alone.
func Jagradadi(d Dignity) JagradadiAvastha {
	switch {
	case d >= Own:
		return Jagrat
	case d >= InNeutralSign:
		return Swapna
	default:
		return Sushupti
	}
}

// DeeptadiAvastha is the mood state, here derived from dignity. The full
// classical scheme adds combustion and planetary-war states that need
// solar-distance inputs; those refinements are carried by the strength
// engine instead, keeping each avastha a single-input classification.
type DeeptadiAvastha int

const (
	Deepta  DeeptadiAvastha = iota // radiant: exalted
	Swastha                        // composed: moolatrikona or own
	Mudita                         // delighted: friendly sign
	Deena                          // meek: neutral sign
	Khala                          // wicked: enemy sign
	Dukhita                        // distressed: debilitated
)

var deeptadiNames = [...]string{
	"Deepta", "Swastha", "Mudita", "Deena", "Khala", "Dukhita",
}

func (a DeeptadiAvastha) String() string { return deeptadiNames[a] }

// Deeptadi classifies mood from the resolved dignity alone.
func Deeptadi(d Dignity) DeeptadiAvastha {
	switch d {
	case Exalted:
		return Deepta
	case Moolatrikona, Own:
		return Swastha
	case InFriendSign:
		return Mudita
	case InNeutralSign:
		return Deena
	case InEnemySign:
		return Khala
	default:
		return Dukhita
	}
}
