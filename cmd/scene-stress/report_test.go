package main

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/plus3/cookiedog/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:     time.Second,
		Cookies:      100,
		TotalTicks:   42,
		Collected:    7,
		SoundsPlayed: 7,
		Systems:      []scene.SystemStats{{Name: "CollisionSystem", ExecutionCount: 42}},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Cookies:** 100")
	assert.Contains(t, out, "**Total Ticks:** 42")
	assert.Contains(t, out, "**Cookies Collected:** 7 (7 sounds)")
	assert.Contains(t, out, "- CollisionSystem: avg 0s, max 0s over 42 runs")
	assert.NotContains(t, out, "GC Pause")
}

func TestStressWorld(t *testing.T) {
	world := newStressWorld(rand.New(rand.NewSource(1)), 500)

	assert.Len(t, world.Collectibles, 500)
	for _, c := range world.Collectibles {
		assert.LessOrEqual(t, c.Position.X(), float32(fieldHalfWidth))
		assert.GreaterOrEqual(t, c.Position.Y(), float32(-fieldHalfWidth))
	}

	sounds := &countingSounds{}
	loop := scene.NewLoop(world, nil, sounds)
	loop.Tick(scene.Input{})
	assert.Equal(t, int64(world.Collected()), sounds.played)
}
