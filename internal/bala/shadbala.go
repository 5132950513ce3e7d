// Package bala computes the classical strength scores: Shadbala per
// planet, BhavaBala per house, and the Ashtakavarga bindu tables. The
// formulas follow the standard Parashari forms; a few sub-terms that
// require declination or true planetary-war inputs (ayana bala, yuddha
// bala) are folded into documented simplifications so the composite stays
// a pure function of the chart snapshot.
package bala

import (
	"math"
	"sort"
	"time"

	"jyotish/internal/maitri"
	"jyotish/internal/varga"
	"jyotish/internal/zodiac"
)

// Input is the chart slice the strength engine needs. All fields are
// read-only; the engine never mutates them.
type Input struct {
	Positions map[zodiac.Planet]zodiac.Position
	Speeds    map[zodiac.Planet]float64
	Retro     map[zodiac.Planet]bool
	Ascendant zodiac.Position
	Birth     time.Time // UTC
	Sunrise   time.Time
	Sunset    time.Time
}

// house returns the whole-sign house of a sign from the ascendant.
func (in *Input) house(s zodiac.Sign) int {
	return in.Ascendant.Sign.DistanceTo(s)
}

// Score is one planet's Shadbala decomposition. Components are measured
// in shashtiamsas (sixtieths); Rupas is their sum divided by 60.
type Score struct {
	Sthana     float64 `json:"sthana"`
	Dig        float64 `json:"dig"`
	Kaala      float64 `json:"kaala"`
	Cheshta    float64 `json:"cheshta"`
	Naisargika float64 `json:"naisargika"`
	Drik       float64 `json:"drik"`
	Rupas      float64 `json:"rupas"`
	Rank       int     `json:"rank"` // 1 = strongest
}

func (s *Score) total() float64 {
	return s.Sthana + s.Dig + s.Kaala + s.Cheshta + s.Naisargika + s.Drik
}

// ComputeShadbala evaluates all six components for the seven classical
// planets and ranks them by descending rupas.
func ComputeShadbala(in *Input) map[zodiac.Planet]*Score {
	out := make(map[zodiac.Planet]*Score, 7)
	for _, p := range zodiac.Classical() {
		s := &Score{
			Sthana:     sthanaBala(in, p),
			Dig:        digBala(in, p),
			Kaala:      kaalaBala(in, p),
			Cheshta:    cheshtaBala(in, p),
			Naisargika: naisargikaBala[p],
			Drik:       drikBala(in, p),
		}
		s.Rupas = s.total() / 60
		out[p] = s
	}
	rank(out)
	return out
}

func rank(scores map[zodiac.Planet]*Score) {
	planets := zodiac.Classical()
	sort.SliceStable(planets, func(i, j int) bool {
		return scores[planets[i]].Rupas > scores[planets[j]].Rupas
	})
	for i, p := range planets {
		scores[p].Rank = i + 1
	}
}

// arc returns the angular separation of two longitudes, in [0, 180].
func arc(a, b float64) float64 {
	d := math.Abs(zodiac.Normalize(a) - zodiac.Normalize(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// --- Sthana bala -----------------------------------------------------------

// saptavargaBala values a dignity the way the seven-varga table does.
var dignityVirupa = map[maitri.Dignity]float64{
	maitri.Exalted:       45,
	maitri.Moolatrikona:  45,
	maitri.Own:           30,
	maitri.InFriendSign:  15,
	maitri.InNeutralSign: 7.5,
	maitri.InEnemySign:   3.75,
	maitri.Debilitated:   1.875,
}

var saptavargaHarmonics = []int{1, 2, 3, 7, 9, 12, 30}

func sthanaBala(in *Input, p zodiac.Planet) float64 {
	pos := in.Positions[p]

	// Uccha: distance from the debilitation point, 3 degrees per virupa.
	uccha := arc(pos.Longitude, zodiac.Normalize(maitri.ExaltationPoint(p)+180)) / 3

	// Saptavargaja: dignity across the seven traditional vargas.
	sapta := 0.0
	for _, n := range saptavargaHarmonics {
		vpos, err := varga.Map(n, pos)
		if err != nil {
			continue // the harmonic set is fixed and supported
		}
		sapta += dignityVirupa[maitri.Resolve(p, vpos)]
	}

	// Ojayugma: male planets score in odd rasi and navamsa, female in even.
	navamsa, _ := varga.Map(9, pos)
	oja := 0.0
	wantOdd := p != zodiac.Moon && p != zodiac.Venus
	if pos.Sign.IsOdd() == wantOdd {
		oja += 15
	}
	if navamsa.Sign.IsOdd() == wantOdd {
		oja += 15
	}

	// Kendradi: angular houses 60, succedent 30, cadent 15.
	kendradi := 15.0
	switch in.house(pos.Sign) % 3 {
	case 1: // houses 1, 4, 7, 10
		kendradi = 60
	case 2: // houses 2, 5, 8, 11
		kendradi = 30
	}

	// Drekkana: male planets in the first decanate, female in the
	// second, neuter in the third.
	drekkana := 0.0
	third := int(pos.Degree / 10)
	switch p {
	case zodiac.Sun, zodiac.Mars, zodiac.Jupiter:
		if third == 0 {
			drekkana = 15
		}
	case zodiac.Moon, zodiac.Venus:
		if third == 1 {
			drekkana = 15
		}
	default:
		if third == 2 {
			drekkana = 15
		}
	}

	return uccha + sapta + oja + kendradi + drekkana
}

// --- Dig bala --------------------------------------------------------------

// digHouse is the house where each planet attains full directional
// strength.
var digHouse = map[zodiac.Planet]int{
	zodiac.Jupiter: 1, zodiac.Mercury: 1,
	zodiac.Moon: 4, zodiac.Venus: 4,
	zodiac.Saturn: 7,
	zodiac.Sun:    10, zodiac.Mars: 10,
}

func digBala(in *Input, p zodiac.Planet) float64 {
	// Full strength at the power cusp, zero at its opposite, linear in
	// between: distance from the weak point over 3.
	strong := zodiac.Normalize(in.Ascendant.Longitude + float64(digHouse[p]-1)*30)
	weak := zodiac.Normalize(strong + 180)
	return arc(in.Positions[p].Longitude, weak) / 3
}

// --- Kaala bala ------------------------------------------------------------

var diurnal = map[zodiac.Planet]bool{
	zodiac.Sun: true, zodiac.Jupiter: true, zodiac.Venus: true,
}

// weekday lords, Sunday first.
var varaLords = [...]zodiac.Planet{
	zodiac.Sun, zodiac.Moon, zodiac.Mars, zodiac.Mercury,
	zodiac.Jupiter, zodiac.Venus, zodiac.Saturn,
}

// horaSequence is the planetary-hour order: each hour's lord is the lord
// of the 6th counted from the previous (Sun, Venus, Mercury, Moon,
// Saturn, Jupiter, Mars, repeating).
var horaSequence = [...]zodiac.Planet{
	zodiac.Sun, zodiac.Venus, zodiac.Mercury, zodiac.Moon,
	zodiac.Saturn, zodiac.Jupiter, zodiac.Mars,
}

func kaalaBala(in *Input, p zodiac.Planet) float64 {
	total := 0.0

	// Nathonnatha: diurnal planets peak at midday, nocturnal at
	// midnight; Mercury is always full. Midday is approximated by the
	// sunrise/sunset midpoint.
	if p == zodiac.Mercury {
		total += 60
	} else {
		noon := in.Sunrise.Add(in.Sunset.Sub(in.Sunrise) / 2)
		fromNoon := math.Abs(in.Birth.Sub(noon).Hours())
		if fromNoon > 12 {
			fromNoon = 24 - fromNoon
		}
		dayness := 1 - fromNoon/12 // 1 at midday, 0 at midnight
		if diurnal[p] {
			total += 60 * dayness
		} else {
			total += 60 * (1 - dayness)
		}
	}

	// Paksha: benefics grow with the waxing Moon, malefics inversely.
	elong := arc(in.Positions[zodiac.Moon].Longitude, in.Positions[zodiac.Sun].Longitude)
	pakshaBenefic := elong / 3
	if isNaturalBenefic(p, elong) {
		total += pakshaBenefic
	} else {
		total += 60 - pakshaBenefic
	}

	// Vara: the weekday lord gains 45.
	weekday := int(localWeekday(in))
	if varaLords[weekday] == p {
		total += 45
	}

	// Hora: the lord of the planetary hour gains 60. Hours run from
	// sunrise, the first belonging to the weekday lord.
	if horaLord(in, weekday) == p {
		total += 60
	}

	return total
}

// isNaturalBenefic classifies for paksha purposes: the Moon itself is
// benefic while waxing (elongation over 90 degrees of separation means a
// bright-half Moon for this coarse measure).
func isNaturalBenefic(p zodiac.Planet, elong float64) bool {
	switch p {
	case zodiac.Jupiter, zodiac.Venus, zodiac.Mercury:
		return true
	case zodiac.Moon:
		return elong >= 90
	default:
		return false
	}
}

func localWeekday(in *Input) time.Weekday {
	// The Vedic day runs sunrise to sunrise; births before sunrise
	// belong to the previous weekday.
	d := in.Birth.Weekday()
	if in.Birth.Before(in.Sunrise) {
		d = (d + 6) % 7
	}
	return d
}

func horaLord(in *Input, weekday int) zodiac.Planet {
	elapsed := in.Birth.Sub(in.Sunrise)
	if elapsed < 0 {
		elapsed += 24 * time.Hour
	}
	hour := int(elapsed / time.Hour)
	// Locate the weekday lord in the hora sequence, then step forward.
	start := 0
	for i, h := range horaSequence {
		if h == varaLords[weekday] {
			start = i
			break
		}
	}
	return horaSequence[(start+hour)%7]
}

// --- Cheshta bala ----------------------------------------------------------

// meanMotion is the mean daily motion in degrees used to scale cheshta.
var meanMotion = map[zodiac.Planet]float64{
	zodiac.Mars:    0.524,
	zodiac.Mercury: 1.383,
	zodiac.Jupiter: 0.083,
	zodiac.Venus:   1.200,
	zodiac.Saturn:  0.033,
}

func cheshtaBala(in *Input, p zodiac.Planet) float64 {
	// The luminaries take no cheshta; their motional strength is
	// carried by paksha (Moon) and the kaala terms (Sun).
	mean, ok := meanMotion[p]
	if !ok {
		return 0
	}
	if in.Retro[p] {
		return 60
	}
	v := 30 * (1 + (mean-in.Speeds[p])/mean)
	if v < 0 {
		return 0
	}
	if v > 60 {
		return 60
	}
	return v
}

// --- Naisargika bala -------------------------------------------------------

// naisargikaBala is the fixed intrinsic ladder: 60 × k/7.
var naisargikaBala = map[zodiac.Planet]float64{
	zodiac.Sun:     60,
	zodiac.Moon:    60.0 * 6 / 7,
	zodiac.Venus:   60.0 * 5 / 7,
	zodiac.Jupiter: 60.0 * 4 / 7,
	zodiac.Mercury: 60.0 * 3 / 7,
	zodiac.Mars:    60.0 * 2 / 7,
	zodiac.Saturn:  60.0 * 1 / 7,
}

// --- Drik bala -------------------------------------------------------------

var beneficAspector = map[zodiac.Planet]bool{
	zodiac.Jupiter: true, zodiac.Venus: true,
	zodiac.Mercury: true, zodiac.Moon: true,
}

// sputaDrishti is the classical piecewise aspect-strength function of the
// separation from aspector to aspected, measured forward in the zodiac.
func sputaDrishti(sep float64) float64 {
	switch {
	case sep < 30:
		return 0
	case sep < 60:
		return (sep - 30) / 2
	case sep < 90:
		return 15 + (sep - 60)
	case sep < 120:
		return 45 - (sep-90)/2
	case sep < 150:
		return 30 - (sep - 120)
	case sep < 180:
		return (sep - 150) * 2
	default:
		// Full at opposition, fading to nothing at 300.
		if sep >= 300 {
			return 0
		}
		return (300 - sep) / 2
	}
}

func drikBala(in *Input, p zodiac.Planet) float64 {
	target := in.Positions[p].Longitude
	sum := 0.0
	for _, other := range zodiac.Classical() {
		if other == p {
			continue
		}
		sep := zodiac.Normalize(target - in.Positions[other].Longitude)
		v := sputaDrishti(sep)
		if beneficAspector[other] {
			sum += v
		} else {
			sum -= v
		}
	}
	return sum / 4
}
