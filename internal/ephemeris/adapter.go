package ephemeris

import (
	"context"
)

// Adapter is the external ephemeris collaborator. Implementations resolve
// raw sidereal positions for a birth moment; they are the only potentially
// blocking dependency of a chart computation, so both methods take a
// context and are called exactly once per request.
type Adapter interface {
	// Snapshot returns the raw positions for the moment. The caller runs
	// Normalize on the result; implementations need not derive Ketu.
	Snapshot(ctx context.Context, m BirthMoment) (*Snapshot, error)

	// SunTimes returns sunrise and sunset for the birth date and place.
	SunTimes(ctx context.Context, m BirthMoment) (SunTimes, error)
}

// Static is an Adapter that always serves one fixed snapshot. It backs
// tests and offline runs where positions were produced out of band.
type Static struct {
	Snap  Snapshot
	Times SunTimes
}

// Snapshot returns a deep copy of the fixed snapshot, so callers that
// normalize it never mutate the original.
func (s *Static) Snapshot(_ context.Context, _ BirthMoment) (*Snapshot, error) {
	return s.Snap.Clone(), nil
}

func (s *Static) SunTimes(_ context.Context, _ BirthMoment) (SunTimes, error) {
	return s.Times, nil
}
