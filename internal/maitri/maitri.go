// Package maitri resolves planetary dignity and the five-level compound
// (Panchadha) friendship between planets. The natural friendship and
// exaltation tables are the fixed classical ones; the temporal component
// depends on sign placements in the chart under consideration, so the
// compound relation is directional and not symmetric in general.
package maitri

import (
	"fmt"

	"jyotish/internal/zodiac"
)

// Relation is a friendship level between an ordered pair of planets.
type Relation int

const (
	GreatEnemy Relation = iota - 2
	Enemy
	Neutral
	Friend
	GreatFriend
)

var relationNames = map[Relation]string{
	GreatEnemy:  "Great Enemy",
	Enemy:       "Enemy",
	Neutral:     "Neutral",
	Friend:      "Friend",
	GreatFriend: "Great Friend",
}

func (r Relation) String() string {
	if n, ok := relationNames[r]; ok {
		return n
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}

// natural holds the fixed natural-friendship table. Rows list friends and
// enemies; any graha absent from both lists is neutral to the row planet.
var natural = map[zodiac.Planet]struct{ friends, enemies []zodiac.Planet }{
	zodiac.Sun: {
		friends: []zodiac.Planet{zodiac.Moon, zodiac.Mars, zodiac.Jupiter},
		enemies: []zodiac.Planet{zodiac.Venus, zodiac.Saturn, zodiac.Rahu, zodiac.Ketu},
	},
	zodiac.Moon: {
		friends: []zodiac.Planet{zodiac.Sun, zodiac.Mercury},
		enemies: []zodiac.Planet{zodiac.Rahu, zodiac.Ketu},
	},
	zodiac.Mars: {
		friends: []zodiac.Planet{zodiac.Sun, zodiac.Moon, zodiac.Jupiter},
		enemies: []zodiac.Planet{zodiac.Mercury},
	},
	zodiac.Mercury: {
		friends: []zodiac.Planet{zodiac.Sun, zodiac.Venus, zodiac.Rahu},
		enemies: []zodiac.Planet{zodiac.Moon},
	},
	zodiac.Jupiter: {
		friends: []zodiac.Planet{zodiac.Sun, zodiac.Moon, zodiac.Mars},
		enemies: []zodiac.Planet{zodiac.Mercury, zodiac.Venus},
	},
	zodiac.Venus: {
		friends: []zodiac.Planet{zodiac.Mercury, zodiac.Saturn, zodiac.Rahu, zodiac.Ketu},
		enemies: []zodiac.Planet{zodiac.Sun, zodiac.Moon},
	},
	zodiac.Saturn: {
		friends: []zodiac.Planet{zodiac.Mercury, zodiac.Venus, zodiac.Rahu},
		enemies: []zodiac.Planet{zodiac.Sun, zodiac.Moon, zodiac.Mars},
	},
	zodiac.Rahu: {
		friends: []zodiac.Planet{zodiac.Mercury, zodiac.Venus, zodiac.Saturn},
		enemies: []zodiac.Planet{zodiac.Sun, zodiac.Moon, zodiac.Mars},
	},
	zodiac.Ketu: {
		friends: []zodiac.Planet{zodiac.Mars, zodiac.Venus, zodiac.Saturn},
		enemies: []zodiac.Planet{zodiac.Sun, zodiac.Moon},
	},
}

// Natural returns the fixed natural relation of a toward b: Friend,
// Neutral, or Enemy. A pair outside the nine grahas is a programming
// error, as is asking about a planet's relation to itself.
func Natural(a, b zodiac.Planet) Relation {
	row, ok := natural[a]
	if !ok {
		panic(fmt.Sprintf("maitri: no natural friendship row for %v", a))
	}
	for _, f := range row.friends {
		if f == b {
			return Friend
		}
	}
	for _, e := range row.enemies {
		if e == b {
			return Enemy
		}
	}
	return Neutral
}

// temporalFriendHouses are the inclusive sign distances that make the
// occupant a temporal friend; every other distance makes an enemy.
var temporalFriendHouses = map[int]bool{
	2: true, 3: true, 4: true, 10: true, 11: true, 12: true,
}

// Temporal returns the chart-dependent relation of a toward b: Friend when
// b sits in the 2nd, 3rd, 4th, 10th, 11th, or 12th sign from a, else Enemy.
func Temporal(a, b zodiac.Sign) Relation {
	if temporalFriendHouses[a.DistanceTo(b)] {
		return Friend
	}
	return Enemy
}

// Compound combines the natural and temporal relations of a toward b using
// the fixed five-level rule: agreement amplifies (both friendly gives Great
// Friend, both hostile Great Enemy), disagreement cancels toward the middle.
func Compound(a, b zodiac.Planet, signOf map[zodiac.Planet]zodiac.Sign) Relation {
	nat := Natural(a, b)
	tmp := Temporal(signOf[a], signOf[b])
	// tmp is ±1, nat is -1/0/+1; the sum lands exactly on the five levels.
	return Relation(int(nat) + int(tmp))
}

// Matrix computes the full directional compound-relation table for the
// nine grahas placed as given.
func Matrix(signOf map[zodiac.Planet]zodiac.Sign) map[zodiac.Planet]map[zodiac.Planet]Relation {
	out := make(map[zodiac.Planet]map[zodiac.Planet]Relation, 9)
	for _, a := range zodiac.Grahas() {
		row := make(map[zodiac.Planet]Relation, 8)
		for _, b := range zodiac.Grahas() {
			if a == b {
				continue
			}
			row[b] = Compound(a, b, signOf)
		}
		out[a] = row
	}
	return out
}
