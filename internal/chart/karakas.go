package chart

import (
	"sort"

	"jyotish/internal/zodiac"
)

// charaRoles in significance order; the planet advanced furthest in its
// sign takes Atmakaraka, the least advanced takes Darakaraka.
var charaRoles = [...]string{
	"Atmakaraka", "Amatyakaraka", "Bhratrikaraka", "Matrikaraka",
	"Putrakaraka", "Gnatikaraka", "Darakaraka",
}

// naisargikaKarakas are the fixed significators.
var naisargikaKarakas = map[zodiac.Planet]string{
	zodiac.Sun:     "Soul, father, authority",
	zodiac.Moon:    "Mind, mother, emotions",
	zodiac.Mars:    "Energy, siblings, courage",
	zodiac.Mercury: "Speech, intellect, commerce",
	zodiac.Jupiter: "Wisdom, children, fortune",
	zodiac.Venus:   "Love, spouse, comforts",
	zodiac.Saturn:  "Longevity, discipline, grief",
	zodiac.Rahu:    "Ambition, obsession, foreign things",
	zodiac.Ketu:    "Detachment, liberation, loss",
}

// computeKarakas ranks the seven classical planets by degree advanced in
// their signs. Ties break on the classical planet order so the result
// is deterministic.
func computeKarakas(positions map[zodiac.Planet]zodiac.Position) *Karakas {
	planets := zodiac.Classical()
	sort.SliceStable(planets, func(i, j int) bool {
		return positions[planets[i]].Degree > positions[planets[j]].Degree
	})

	chara := make(map[string]string, len(charaRoles))
	for i, role := range charaRoles {
		chara[role] = planets[i].String()
	}

	fixed := make(map[string]string, len(naisargikaKarakas))
	for p, s := range naisargikaKarakas {
		fixed[p.String()] = s
	}
	return &Karakas{Chara: chara, Naisargika: fixed}
}
