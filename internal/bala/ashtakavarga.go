package bala

import (
	"jyotish/internal/zodiac"
)

// Contributor keys an Ashtakavarga bindu row. The lagna contributes
// alongside the seven classical planets and is not a zodiac.Planet, so
// rows are keyed by this small union type.
type Contributor int

const (
	FromSun Contributor = iota
	FromMoon
	FromMars
	FromMercury
	FromJupiter
	FromVenus
	FromSaturn
	FromAscendant
)

var contributorNames = [...]string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Ascendant",
}

func (c Contributor) String() string { return contributorNames[c] }

// beneficPlaces holds the classical benefic-point tables: for each target
// planet, the sign distances (counted inclusively from each contributor's
// natal sign) at which the contributor grants a bindu. Totals per planet
// are the canonical 48/49/39/54/56/52/39.
var beneficPlaces = map[zodiac.Planet]map[Contributor][]int{
	zodiac.Sun: {
		FromSun:       {1, 2, 4, 7, 8, 9, 10, 11},
		FromMoon:      {3, 6, 10, 11},
		FromMars:      {1, 2, 4, 7, 8, 9, 10, 11},
		FromMercury:   {3, 5, 6, 9, 10, 11, 12},
		FromJupiter:   {5, 6, 9, 11},
		FromVenus:     {6, 7, 12},
		FromSaturn:    {1, 2, 4, 7, 8, 9, 10, 11},
		FromAscendant: {3, 4, 6, 10, 11, 12},
	},
	zodiac.Moon: {
		FromSun:       {3, 6, 7, 8, 10, 11},
		FromMoon:      {1, 3, 6, 7, 10, 11},
		FromMars:      {2, 3, 5, 6, 9, 10, 11},
		FromMercury:   {1, 3, 4, 5, 7, 8, 10, 11},
		FromJupiter:   {1, 4, 7, 8, 10, 11, 12},
		FromVenus:     {3, 4, 5, 7, 9, 10, 11},
		FromSaturn:    {3, 5, 6, 11},
		FromAscendant: {3, 6, 10, 11},
	},
	zodiac.Mars: {
		FromSun:       {3, 5, 6, 10, 11},
		FromMoon:      {3, 6, 11},
		FromMars:      {1, 2, 4, 7, 8, 10, 11},
		FromMercury:   {3, 5, 6, 11},
		FromJupiter:   {6, 10, 11, 12},
		FromVenus:     {6, 8, 11, 12},
		FromSaturn:    {1, 4, 7, 8, 9, 10, 11},
		FromAscendant: {1, 3, 6, 10, 11},
	},
	zodiac.Mercury: {
		FromSun:       {5, 6, 9, 11, 12},
		FromMoon:      {2, 4, 6, 8, 10, 11},
		FromMars:      {1, 2, 4, 7, 8, 9, 10, 11},
		FromMercury:   {1, 3, 5, 6, 9, 10, 11, 12},
		FromJupiter:   {6, 8, 11, 12},
		FromVenus:     {1, 2, 3, 4, 5, 8, 9, 11},
		FromSaturn:    {1, 2, 4, 7, 8, 9, 10, 11},
		FromAscendant: {1, 2, 4, 6, 8, 10, 11},
	},
	zodiac.Jupiter: {
		FromSun:       {1, 2, 3, 4, 7, 8, 9, 10, 11},
		FromMoon:      {2, 5, 7, 9, 11},
		FromMars:      {1, 2, 4, 7, 8, 10, 11},
		FromMercury:   {1, 2, 4, 5, 6, 9, 10, 11},
		FromJupiter:   {1, 2, 3, 4, 7, 8, 10, 11},
		FromVenus:     {2, 5, 6, 9, 10, 11},
		FromSaturn:    {3, 5, 6, 12},
		FromAscendant: {1, 2, 4, 5, 6, 7, 9, 10, 11},
	},
	zodiac.Venus: {
		FromSun:       {8, 11, 12},
		FromMoon:      {1, 2, 3, 4, 5, 8, 9, 11, 12},
		FromMars:      {3, 5, 6, 9, 11, 12},
		FromMercury:   {3, 5, 6, 9, 11},
		FromJupiter:   {5, 8, 9, 10, 11},
		FromVenus:     {1, 2, 3, 4, 5, 8, 9, 10, 11},
		FromSaturn:    {3, 4, 5, 8, 9, 10, 11},
		FromAscendant: {1, 2, 3, 4, 5, 8, 9, 11},
	},
	zodiac.Saturn: {
		FromSun:       {1, 2, 4, 7, 8, 10, 11},
		FromMoon:      {3, 6, 11},
		FromMars:      {3, 5, 6, 10, 11, 12},
		FromMercury:   {6, 8, 9, 10, 11, 12},
		FromJupiter:   {5, 6, 11, 12},
		FromVenus:     {6, 11, 12},
		FromSaturn:    {3, 5, 6, 11},
		FromAscendant: {1, 3, 4, 6, 10, 11},
	},
}

// Bhinna is one planet's Bhinnashtakavarga: the per-contributor bindu
// rows and their column-wise total per sign.
type Bhinna struct {
	Rows  map[Contributor][12]int `json:"rows"`
	Total [12]int                 `json:"total"` // bindus per sign, Aries first
}

// Sum returns the planet's whole-zodiac bindu count.
func (b Bhinna) Sum() int {
	n := 0
	for _, v := range b.Total {
		n += v
	}
	return n
}

// Ashtakavarga is the full bindu analysis: one Bhinna per classical
// planet plus the Sarvashtakavarga column sums.
type Ashtakavarga struct {
	Bhinna map[zodiac.Planet]Bhinna `json:"bhinna"`
	Sarva  [12]int                  `json:"sarva"` // per sign, Aries first
}

// GrandTotal returns the Sarvashtakavarga sum over all signs, which by
// construction equals the sum of every Bhinna entry (337 with the
// classical tables).
func (a Ashtakavarga) GrandTotal() int {
	n := 0
	for _, v := range a.Sarva {
		n += v
	}
	return n
}

// contributorSign resolves where each contributor sits in the chart.
func contributorSign(c Contributor, signOf map[zodiac.Planet]zodiac.Sign, asc zodiac.Sign) zodiac.Sign {
	if c == FromAscendant {
		return asc
	}
	return signOf[zodiac.Classical()[c]]
}

// ComputeAshtakavarga evaluates the benefic-point tables against the
// chart's sign placements. signOf must cover the seven classical planets.
func ComputeAshtakavarga(signOf map[zodiac.Planet]zodiac.Sign, asc zodiac.Sign) Ashtakavarga {
	out := Ashtakavarga{Bhinna: make(map[zodiac.Planet]Bhinna, 7)}
	for _, planet := range zodiac.Classical() {
		bh := Bhinna{Rows: make(map[Contributor][12]int, 8)}
		for contrib, places := range beneficPlaces[planet] {
			from := contributorSign(contrib, signOf, asc)
			var row [12]int
			for _, dist := range places {
				s := from.Add(dist - 1)
				row[s-1] = 1
			}
			bh.Rows[contrib] = row
			for i, v := range row {
				bh.Total[i] += v
			}
		}
		out.Bhinna[planet] = bh
		for i, v := range bh.Total {
			out.Sarva[i] += v
		}
	}
	return out
}
