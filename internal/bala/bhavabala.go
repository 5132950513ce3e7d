package bala

import (
	"sort"

	"jyotish/internal/zodiac"
)

// HouseScore is one house's BhavaBala decomposition, in shashtiamsas.
type HouseScore struct {
	Adhipati float64 `json:"adhipati"` // lord's full Shadbala
	Drishti  float64 `json:"drishti"`  // net aspect on the cusp
	Occupant float64 `json:"occupant"` // benefic/malefic tenancy
	Rupas    float64 `json:"rupas"`
	Rank     int     `json:"rank"`
}

// ComputeBhavaBala scores the twelve whole-sign houses. The shadbala map
// must cover the seven classical planets (use ComputeShadbala).
func ComputeBhavaBala(in *Input, shadbala map[zodiac.Planet]*Score) [12]*HouseScore {
	var out [12]*HouseScore
	for h := 1; h <= 12; h++ {
		sign := in.Ascendant.Sign.Add(h - 1)
		cusp := zodiac.Normalize(in.Ascendant.Longitude + float64(h-1)*30)

		hs := &HouseScore{}

		// Bhavadhipati: the house lord lends its entire Shadbala.
		if s, ok := shadbala[sign.Lord()]; ok {
			hs.Adhipati = s.total()
		}

		// Bhava drishti: net sputa drishti on the cusp, benefics
		// adding and malefics subtracting, same quartering as drik.
		for _, p := range zodiac.Classical() {
			sep := zodiac.Normalize(cusp - in.Positions[p].Longitude)
			v := sputaDrishti(sep)
			if beneficAspector[p] {
				hs.Drishti += v / 4
			} else {
				hs.Drishti -= v / 4
			}
		}

		// Occupancy: a benefic tenant steadies the house, a malefic
		// unsettles it.
		for _, p := range zodiac.Classical() {
			if in.Positions[p].Sign != sign {
				continue
			}
			if beneficAspector[p] {
				hs.Occupant += 15
			} else {
				hs.Occupant -= 15
			}
		}

		hs.Rupas = (hs.Adhipati + hs.Drishti + hs.Occupant) / 60
		out[h-1] = hs
	}

	order := make([]int, 12)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return out[order[i]].Rupas > out[order[j]].Rupas
	})
	for r, idx := range order {
		out[idx].Rank = r + 1
	}
	return out
}
