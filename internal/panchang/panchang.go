// Package panchang derives the five lunar-solar calendar limbs of a
// moment: tithi, vara, nakshatra, yoga and karana. Everything here is a
// pure function of the Sun and Moon longitudes plus the weekday, so the
// package carries no state.
package panchang

import (
	"time"

	"jyotish/internal/zodiac"
)

// TithiSpan is the lunar-day arc: one thirtieth of a synodic circle.
const TithiSpan = 12.0

// KaranaSpan is half a tithi.
const KaranaSpan = TithiSpan / 2

// YogaSpan matches the nakshatra arc, applied to the luminaries' sum.
const YogaSpan = zodiac.NakshatraSpan

var tithiNames = [...]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi",
}

var varaNames = [...]string{
	"Ravivara", "Somavara", "Mangalavara", "Budhavara",
	"Guruvara", "Shukravara", "Shanivara",
}

var yogaNames = [...]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarman", "Dhriti", "Shula", "Ganda",
	"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra",
	"Siddhi", "Vyatipata", "Variyana", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma",
	"Indra", "Vaidhriti",
}

// movableKaranas repeat eight times across the middle of the month.
var movableKaranas = [...]string{
	"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti",
}

// fixedKaranas close the dark fortnight; Kimstughna opens the bright one.
var fixedKaranas = [...]string{"Shakuni", "Chatushpada", "Naga"}

// Tithi is one lunar day. Index runs 1..30, with 1..15 the bright half
// ending at Purnima and 16..30 the dark half ending at Amavasya.
type Tithi struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Paksha string `json:"paksha"`
}

// Panchang bundles the five limbs for a single moment.
type Panchang struct {
	Tithi     Tithi  `json:"tithi"`
	Vara      string `json:"vara"`
	Nakshatra string `json:"nakshatra"`
	Yoga      string `json:"yoga"`
	YogaIndex int    `json:"yoga_index"`
	Karana    string `json:"karana"`
}

// TithiAt resolves the lunar day from the Moon's elongation past the
// Sun. An exact boundary belongs to the tithi that begins there.
func TithiAt(sunLon, moonLon float64) Tithi {
	elong := zodiac.Normalize(moonLon - sunLon)
	idx := int(elong/TithiSpan) + 1
	if idx > 30 {
		idx = 30
	}

	t := Tithi{Index: idx}
	if idx <= 15 {
		t.Paksha = "Shukla"
	} else {
		t.Paksha = "Krishna"
	}
	switch idx {
	case 15:
		t.Name = "Purnima"
	case 30:
		t.Name = "Amavasya"
	default:
		t.Name = tithiNames[(idx-1)%15]
	}
	return t
}

// VaraAt names the weekday lord's day.
func VaraAt(d time.Weekday) string { return varaNames[d] }

// YogaAt resolves the nityayoga from the luminaries' combined motion.
func YogaAt(sunLon, moonLon float64) (int, string) {
	sum := zodiac.Normalize(sunLon + moonLon)
	idx := int(sum / YogaSpan)
	if idx > 26 {
		idx = 26
	}
	return idx + 1, yogaNames[idx]
}

// KaranaAt resolves the half-tithi. Kimstughna opens the cycle, the
// seven movable karanas repeat eight times, and the three fixed ones
// close it.
func KaranaAt(sunLon, moonLon float64) string {
	elong := zodiac.Normalize(moonLon - sunLon)
	k := int(elong / KaranaSpan)
	switch {
	case k == 0:
		return "Kimstughna"
	case k >= 57:
		if k > 59 {
			k = 59
		}
		return fixedKaranas[k-57]
	default:
		return movableKaranas[(k-1)%7]
	}
}

// At computes the full panchang for a moment. The weekday must already
// honor the sunrise-to-sunrise day convention.
func At(sunLon, moonLon float64, weekday time.Weekday) Panchang {
	yi, yn := YogaAt(sunLon, moonLon)
	moon := zodiac.Resolve(moonLon)
	return Panchang{
		Tithi:     TithiAt(sunLon, moonLon),
		Vara:      VaraAt(weekday),
		Nakshatra: moon.Nakshatra.String(),
		Yoga:      yn,
		YogaIndex: yi,
		Karana:    KaranaAt(sunLon, moonLon),
	}
}
