// Package chart assembles the full derived profile for one birth
// moment: divisional charts with KP chains, the dasha tree, strength
// scores, relationship matrices, karakas, yogas and panchang. The
// Engine calls the ephemeris adapter once, builds the D1 chart, then
// fans the mutually independent sections out across goroutines.
package chart

import (
	"jyotish/internal/bala"
	"jyotish/internal/dasha"
	"jyotish/internal/ephemeris"
	"jyotish/internal/kp"
	"jyotish/internal/maitri"
	"jyotish/internal/panchang"
	"jyotish/internal/yoga"
	"jyotish/internal/zodiac"
)

// Placement is one body or cusp inside a divisional chart.
type Placement struct {
	zodiac.Position
	House      int      `json:"house"`
	Retrograde bool     `json:"retrograde"`
	KP         kp.Chain `json:"kp"`
}

// DivisionalChart is one harmonic chart. Houses are whole-sign from the
// chart's ascendant; the twelve cusps are equal-house points carrying
// the KP chains.
type DivisionalChart struct {
	Varga     int                   `json:"varga"`
	Name      string                `json:"name"`
	Ascendant Placement             `json:"ascendant"`
	Cusps     [12]Placement         `json:"cusps"`
	Planets   map[string]*Placement `json:"planets"`
}

// Relationship is one directional Panchadha Maitri cell.
type Relationship struct {
	Natural  maitri.Relation `json:"natural"`
	Temporal maitri.Relation `json:"temporal"`
	Compound maitri.Relation `json:"compound"`
}

// PlanetState bundles the per-planet dignity and avastha labels.
type PlanetState struct {
	Dignity   maitri.Dignity          `json:"dignity"`
	Baaladi   maitri.BaaladiAvastha   `json:"baaladi"`
	Jagradadi maitri.JagradadiAvastha `json:"jagradadi"`
	Deeptadi  maitri.DeeptadiAvastha  `json:"deeptadi"`
}

// Balas groups the strength outputs.
type Balas struct {
	Shadbala     map[string]*bala.Score `json:"shadbala"`
	BhavaBala    [12]*bala.HouseScore   `json:"bhava_bala"`
	Ashtakavarga bala.Ashtakavarga      `json:"ashtakavarga"`
}

// Karakas holds the movable and fixed significators.
type Karakas struct {
	Chara      map[string]string `json:"chara"`      // role -> planet
	Naisargika map[string]string `json:"naisargika"` // planet -> signification
}

// TransitPlacement situates one transiting body against the natal chart.
type TransitPlacement struct {
	zodiac.Position
	Retrograde    bool `json:"retrograde"`
	HouseFromAsc  int  `json:"house_from_asc"`
	HouseFromMoon int  `json:"house_from_moon"`
}

// Result is the immutable assembled profile. Sections not requested are
// left nil.
type Result struct {
	RequestID string                `json:"request_id"`
	Moment    ephemeris.BirthMoment `json:"moment"`
	Ayanamsa  float64               `json:"ayanamsa"`

	Charts   map[string]*DivisionalChart          `json:"charts,omitempty"`
	Dashas   *dasha.Tree                          `json:"dashas,omitempty"`
	Balas    *Balas                               `json:"balas,omitempty"`
	Maitri   map[string]map[string]Relationship   `json:"maitri,omitempty"`
	States   map[string]PlanetState               `json:"states,omitempty"`
	Karakas  *Karakas                             `json:"karakas,omitempty"`
	Transits map[string]*TransitPlacement         `json:"transits,omitempty"`
	Yogas    []yoga.Match                         `json:"yogas,omitempty"`
	Panchang *panchang.Panchang                   `json:"panchang,omitempty"`
}
