package ephemeris

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jyotish/internal/zodiac"
)

func sampleMoment() BirthMoment {
	return BirthMoment{
		Year: 1990, Month: 5, Day: 15,
		Hour: 14, Minute: 30, Second: 0,
		GMTOffset: 5.5,
		Latitude:  19.0760, Longitude: 72.8777,
	}
}

func sampleSnapshot() Snapshot {
	return Snapshot{
		Bodies: map[zodiac.Planet]Body{
			zodiac.Sun:     {Longitude: 30.64, Speed: 0.96},
			zodiac.Moon:    {Longitude: 295.32, Speed: 13.18},
			zodiac.Mars:    {Longitude: 316.10, Speed: 0.71},
			zodiac.Mercury: {Longitude: 11.25, Speed: 1.79},
			zodiac.Jupiter: {Longitude: 71.81, Speed: 0.22},
			zodiac.Venus:   {Longitude: 346.48, Speed: 1.12},
			zodiac.Saturn:  {Longitude: 271.33, Speed: -0.04},
			zodiac.Rahu:    {Longitude: 285.71, Speed: -0.05},
		},
		SiderealTime: 205.43,
		Ayanamsa:     23.705,
	}
}

func TestValidateRanges(t *testing.T) {
	require.NoError(t, sampleMoment().Validate())

	cases := []struct {
		name   string
		mutate func(*BirthMoment)
		field  string
	}{
		{"offset too low", func(m *BirthMoment) { m.GMTOffset = -12.5 }, "gmt_offset"},
		{"offset too high", func(m *BirthMoment) { m.GMTOffset = 14.25 }, "gmt_offset"},
		{"latitude", func(m *BirthMoment) { m.Latitude = 90.1 }, "latitude"},
		{"longitude", func(m *BirthMoment) { m.Longitude = -180.5 }, "longitude"},
		{"month", func(m *BirthMoment) { m.Month = 13 }, "month"},
		{"day", func(m *BirthMoment) { m.Day = 31; m.Month = 2 }, "day"},
		{"hour", func(m *BirthMoment) { m.Hour = 24 }, "hour"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := sampleMoment()
			tc.mutate(&m)
			err := m.Validate()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestLeapDayValidates(t *testing.T) {
	m := sampleMoment()
	m.Year, m.Month, m.Day = 2000, 2, 29
	require.NoError(t, m.Validate())
	m.Year = 1900 // not a leap year
	require.Error(t, m.Validate())
}

func TestUTCAppliesOffset(t *testing.T) {
	m := sampleMoment()
	got := m.UTC()
	want := time.Date(1990, 5, 15, 9, 0, 0, 0, time.UTC)
	assert.True(t, got.Equal(want), "got %v", got)
}

func TestNormalizeDerivesKetu(t *testing.T) {
	snap := sampleSnapshot()
	// A provider-supplied Ketu must be discarded, not trusted.
	snap.Bodies[zodiac.Ketu] = Body{Longitude: 42, Speed: 1}
	require.NoError(t, snap.Normalize())

	rahu := snap.Bodies[zodiac.Rahu]
	ketu := snap.Bodies[zodiac.Ketu]
	assert.InDelta(t, math.Mod(rahu.Longitude+180, 360), ketu.Longitude, 1e-12)
	assert.True(t, rahu.Retrograde, "Rahu is conventionally retrograde")
	assert.True(t, ketu.Retrograde, "Ketu is conventionally retrograde")
	assert.Equal(t, rahu.Speed, ketu.Speed)
}

func TestNormalizeRetrogradeTracksSpeed(t *testing.T) {
	snap := sampleSnapshot()
	require.NoError(t, snap.Normalize())
	assert.True(t, snap.Bodies[zodiac.Saturn].Retrograde)
	assert.False(t, snap.Bodies[zodiac.Sun].Retrograde)
}

func TestNormalizeMissingBody(t *testing.T) {
	snap := sampleSnapshot()
	delete(snap.Bodies, zodiac.Rahu)
	err := snap.Normalize()
	var eerr *Error
	require.ErrorAs(t, err, &eerr)
	assert.Contains(t, eerr.Error(), "Rahu")
}

func TestStaticAdapterClones(t *testing.T) {
	st := &Static{Snap: sampleSnapshot()}
	a, err := st.Snapshot(context.Background(), sampleMoment())
	require.NoError(t, err)
	require.NoError(t, a.Normalize())
	// Normalizing the copy must not leak Ketu back into the original.
	_, ok := st.Snap.Bodies[zodiac.Ketu]
	assert.False(t, ok)
}

func TestFileAdapterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.yaml")
	doc := `
moment:
  year: 1990
  month: 5
  day: 15
  hour: 14
  minute: 30
  second: 0
  gmt_offset: 5.5
  latitude: 19.0760
  longitude: 72.8777
positions:
  Sun: {longitude: 30.64, speed: 0.96}
  Moon: {longitude: 295.32, speed: 13.18}
  Mars: {longitude: 316.10, speed: 0.71}
  Mercury: {longitude: 11.25, speed: 1.79}
  Jupiter: {longitude: 71.81, speed: 0.22}
  Venus: {longitude: 346.48, speed: 1.12}
  Saturn: {longitude: 271.33, speed: -0.04}
  Rahu: {longitude: 285.71, speed: -0.05}
sidereal_time: 205.43
ayanamsa: 23.705
sun_times:
  sunrise: 1990-05-15T00:39:00Z
  sunset: 1990-05-15T13:35:00Z
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	fa := &FileAdapter{Path: path}
	snap, err := fa.Snapshot(context.Background(), sampleMoment())
	require.NoError(t, err)
	require.NoError(t, snap.Normalize())
	assert.Len(t, snap.Bodies, 9)

	other := sampleMoment()
	other.Day = 16
	_, err = fa.Snapshot(context.Background(), other)
	var eerr *Error
	require.ErrorAs(t, err, &eerr)
}

// countingAdapter tracks provider calls to prove cache hits skip it.
type countingAdapter struct {
	Static
	calls int
}

func (c *countingAdapter) Snapshot(ctx context.Context, m BirthMoment) (*Snapshot, error) {
	c.calls++
	return c.Static.Snapshot(ctx, m)
}

func TestCacheMemoizesSnapshots(t *testing.T) {
	inner := &countingAdapter{Static: Static{Snap: sampleSnapshot()}}
	cache, err := NewCache(inner, filepath.Join(t.TempDir(), "ephem.db"))
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	first, err := cache.Snapshot(ctx, sampleMoment())
	require.NoError(t, err)
	second, err := cache.Snapshot(ctx, sampleMoment())
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls, "second call must be served from cache")
	assert.Equal(t, first.Bodies[zodiac.Moon], second.Bodies[zodiac.Moon])

	// A different moment misses.
	other := sampleMoment()
	other.Hour = 15
	_, err = cache.Snapshot(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachePassesProviderErrors(t *testing.T) {
	failing := adapterFunc(func() error { return &Error{Op: "snapshot", Reason: "date out of range"} })
	cache, err := NewCache(failing, filepath.Join(t.TempDir(), "ephem.db"))
	require.NoError(t, err)
	defer cache.Close()

	_, err = cache.Snapshot(context.Background(), sampleMoment())
	var eerr *Error
	require.True(t, errors.As(err, &eerr))
}

type adapterFunc func() error

func (f adapterFunc) Snapshot(context.Context, BirthMoment) (*Snapshot, error) {
	return nil, f()
}

func (f adapterFunc) SunTimes(context.Context, BirthMoment) (SunTimes, error) {
	return SunTimes{}, f()
}
