package main

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/asteroids/assets"
	"github.com/plus3/asteroids/world"
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
	manager, err := assets.DefaultManager()
	require.NoError(t, err)
	gen := world.DefaultGenerationConfig()
	gen.Asteroids = 10
	gen.EnemyFighters = 4
	session, err := world.NewSession(manager, world.PrefabTable(world.DefaultPrefabSpecs()), gen)
	require.NoError(t, err)

	b := newBuilder(session, rand.New(rand.NewPCG(1, 2)), 20)
	built := 0
	for range 5 {
		if b.build() {
			built++
		}
		session.World.Tick(0.1)
	}
	assert.Equal(t, 5, built)
	assert.False(t, session.Construction.IsBuilding())

	report := &Report{
		Duration:     time.Second,
		Entities:     session.World.Len(),
		TotalUpdates: 5,
		Built:        built,
		Systems:      session.World.Scheduler().GetStats().Systems,
		World:        newWorldSummary(session.World.CollectStats()),
	}

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Asteroids Stress Test Report")
	assert.Contains(t, out, "**ResourceSystem:** 5 runs")
	assert.Contains(t, out, "**MovementSystem:** 5 runs")
	assert.Contains(t, out, "- Asteroid: 10")
	assert.NotContains(t, out, "GC Pause")
}
