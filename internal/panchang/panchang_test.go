package panchang

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTithiHalves(t *testing.T) {
	cases := []struct {
		sun, moon float64
		index     int
		name      string
		paksha    string
	}{
		{0, 0, 1, "Pratipada", "Shukla"},
		{0, 11.99, 1, "Pratipada", "Shukla"},
		{0, 12, 2, "Dwitiya", "Shukla"},
		{0, 168, 15, "Purnima", "Shukla"},
		{0, 180, 16, "Pratipada", "Krishna"},
		{0, 348, 30, "Amavasya", "Krishna"},
		{0, 359.99, 30, "Amavasya", "Krishna"},
		{350, 2, 2, "Dwitiya", "Shukla"}, // elongation wraps zero
	}
	for _, tc := range cases {
		got := TithiAt(tc.sun, tc.moon)
		assert.Equal(t, tc.index, got.Index, "sun %.2f moon %.2f", tc.sun, tc.moon)
		assert.Equal(t, tc.name, got.Name)
		assert.Equal(t, tc.paksha, got.Paksha)
	}
}

func TestTithiBoundaryGoesToLater(t *testing.T) {
	// Exactly 24 degrees of elongation opens the third tithi.
	got := TithiAt(0, 24)
	assert.Equal(t, 3, got.Index)
	assert.Equal(t, "Tritiya", got.Name)
}

func TestYogaFromCombinedMotion(t *testing.T) {
	idx, name := YogaAt(0, 0)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "Vishkambha", name)

	// 100 + 250 = 350, in the last arc.
	idx, name = YogaAt(100, 250)
	assert.Equal(t, 27, idx)
	assert.Equal(t, "Vaidhriti", name)

	// The sum wraps past 360.
	idx, _ = YogaAt(200, 170)
	assert.Equal(t, 1, idx)
}

func TestKaranaCycle(t *testing.T) {
	cases := []struct {
		elong float64
		want  string
	}{
		{0, "Kimstughna"},
		{5.9, "Kimstughna"},
		{6, "Bava"},
		{12, "Balava"},
		{48, "Bava"}, // movable cycle repeats after seven halves
		{341.9, "Vishti"},
		{342, "Shakuni"},
		{348, "Chatushpada"},
		{354, "Naga"},
		{359.9, "Naga"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, KaranaAt(0, tc.elong), "elongation %.1f", tc.elong)
	}
}

func TestKaranaMovableCount(t *testing.T) {
	// Halves 1..56 must all be movable karanas, each appearing 8 times.
	counts := map[string]int{}
	for k := 1; k <= 56; k++ {
		counts[KaranaAt(0, float64(k)*KaranaSpan)]++
	}
	assert.Len(t, counts, 7)
	for name, n := range counts {
		assert.Equal(t, 8, n, "karana %s", name)
	}
}

func TestFullPanchang(t *testing.T) {
	p := At(95, 188, time.Sunday)
	assert.Equal(t, "Ravivara", p.Vara)
	assert.Equal(t, 8, p.Tithi.Index) // 93 degrees of elongation
	assert.Equal(t, "Ashtami", p.Tithi.Name)
	assert.Equal(t, "Shukla", p.Tithi.Paksha)
	assert.Equal(t, "Swati", p.Nakshatra) // Moon at 188
	assert.Equal(t, 22, p.YogaIndex)       // 283 over the yoga arc
	assert.Equal(t, "Sadhya", p.Yoga)
	assert.Equal(t, "Bava", p.Karana) // half-tithi 15
}
