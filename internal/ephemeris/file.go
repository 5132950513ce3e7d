package ephemeris

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	"jyotish/internal/zodiac"
)

// FileAdapter serves a snapshot computed out of band (by any ephemeris
// program) and saved as a yaml document. It refuses moments other than the
// one the file was computed for, so a stale file can never silently feed a
// different birth event.
type FileAdapter struct {
	Path string
}

type fileDoc struct {
	Moment       BirthMoment     `yaml:"moment"`
	Positions    map[string]Body `yaml:"positions"`
	SiderealTime float64         `yaml:"sidereal_time"`
	Ayanamsa     float64         `yaml:"ayanamsa"`
	SunTimes     SunTimes        `yaml:"sun_times"`
}

func (f *FileAdapter) load() (*fileDoc, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, &Error{Op: "snapshot", Reason: "reading " + f.Path, Err: err}
	}
	var doc fileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, &Error{Op: "snapshot", Reason: "parsing " + f.Path, Err: err}
	}
	return &doc, nil
}

func (f *FileAdapter) Snapshot(_ context.Context, m BirthMoment) (*Snapshot, error) {
	doc, err := f.load()
	if err != nil {
		return nil, err
	}
	if doc.Moment.Key() != m.Key() {
		return nil, &Error{Op: "snapshot", Reason: "file was computed for a different birth moment"}
	}
	snap := &Snapshot{
		Bodies:       make(map[zodiac.Planet]Body, len(doc.Positions)),
		SiderealTime: doc.SiderealTime,
		Ayanamsa:     doc.Ayanamsa,
	}
	for name, b := range doc.Positions {
		p, ok := zodiac.ParsePlanet(name)
		if !ok {
			return nil, &Error{Op: "snapshot", Reason: "unknown body " + name + " in " + f.Path}
		}
		snap.Bodies[p] = b
	}
	return snap, nil
}

func (f *FileAdapter) SunTimes(_ context.Context, m BirthMoment) (SunTimes, error) {
	doc, err := f.load()
	if err != nil {
		return SunTimes{}, err
	}
	if doc.Moment.Key() != m.Key() {
		return SunTimes{}, &Error{Op: "sun_times", Reason: "file was computed for a different birth moment"}
	}
	return doc.SunTimes, nil
}
