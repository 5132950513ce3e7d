// Package ephemeris defines the birth-event data model and the external
// ephemeris-provider contract. The engine never computes raw planetary
// positions itself; it consumes them through the Adapter interface and
// enforces the structural invariants (Ketu opposition, retrograde-speed
// agreement, longitude range) before anything downstream runs.
package ephemeris

import (
	"strconv"
	"time"
)

// BirthMoment is a civil birth event: local date and time, the GMT offset
// in effect, and the geographic coordinates. Immutable once constructed.
type BirthMoment struct {
	Year      int     `yaml:"year" json:"year"`
	Month     int     `yaml:"month" json:"month"`
	Day       int     `yaml:"day" json:"day"`
	Hour      int     `yaml:"hour" json:"hour"`
	Minute    int     `yaml:"minute" json:"minute"`
	Second    int     `yaml:"second" json:"second"`
	GMTOffset float64 `yaml:"gmt_offset" json:"gmt_offset"` // hours east of Greenwich
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
}

// Validate checks every field range. It returns a *ValidationError naming
// the first offending field, or nil.
func (m BirthMoment) Validate() error {
	switch {
	case m.Year < 1 || m.Year > 9999:
		return validationErr("year", m.Year, "must be in 1..9999")
	case m.Month < 1 || m.Month > 12:
		return validationErr("month", m.Month, "must be in 1..12")
	case m.Day < 1 || m.Day > daysIn(m.Year, m.Month):
		return validationErr("day", m.Day, "not a day of the given month")
	case m.Hour < 0 || m.Hour > 23:
		return validationErr("hour", m.Hour, "must be in 0..23")
	case m.Minute < 0 || m.Minute > 59:
		return validationErr("minute", m.Minute, "must be in 0..59")
	case m.Second < 0 || m.Second > 59:
		return validationErr("second", m.Second, "must be in 0..59")
	case m.GMTOffset < -12 || m.GMTOffset > 14:
		return validationErr("gmt_offset", m.GMTOffset, "must be in [-12, +14]")
	case m.Latitude < -90 || m.Latitude > 90:
		return validationErr("latitude", m.Latitude, "must be in [-90, 90]")
	case m.Longitude < -180 || m.Longitude > 180:
		return validationErr("longitude", m.Longitude, "must be in [-180, 180]")
	}
	return nil
}

func daysIn(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// UTC returns the birth instant on the UTC timeline.
func (m BirthMoment) UTC() time.Time {
	local := time.Date(m.Year, time.Month(m.Month), m.Day, m.Hour, m.Minute, m.Second, 0, time.UTC)
	return local.Add(-time.Duration(m.GMTOffset * float64(time.Hour)))
}

// Weekday returns the civil weekday of the birth date (local calendar).
func (m BirthMoment) Weekday() time.Weekday {
	return time.Date(m.Year, time.Month(m.Month), m.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// Key returns a stable identity string suitable for cache lookups.
func (m BirthMoment) Key() string {
	return m.UTC().Format("2006-01-02T15:04:05Z") +
		"|" + formatCoord(m.Latitude) + "|" + formatCoord(m.Longitude)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
