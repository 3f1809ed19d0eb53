package debugui

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/asteroids/assets"
	"github.com/plus3/asteroids/world"
)

func newSession(t *testing.T) *world.Session {
	t.Helper()
	manager, err := assets.DefaultManager()
	require.NoError(t, err)

	gen := world.DefaultGenerationConfig()
	gen.Asteroids = 5
	gen.EnemyFighters = 2
	session, err := world.NewSession(manager, world.PrefabTable(world.DefaultPrefabSpecs()), gen)
	require.NoError(t, err)
	return session
}

func TestBuildableTypes(t *testing.T) {
	session := newSession(t)
	assert.Equal(t, []world.EntityType{
		world.EntityTypeCommandCenter,
		world.EntityTypeMiner,
		world.EntityTypeTurret,
		world.EntityTypeHub,
	}, BuildableTypes(session.Prefabs))
}

func TestEntityBrowser(t *testing.T) {
	session := newSession(t)
	browser := NewEntityBrowser(session.World, 10)

	t.Run("lists every entity", func(t *testing.T) {
		rows := browser.Filtered()
		assert.Len(t, rows, session.World.Len())
		assert.Equal(t, world.EntityTypeCommandCenter, rows[0].Type)
	})

	t.Run("filters by type and flag", func(t *testing.T) {
		browser.SetFilter("asteroid")
		assert.Len(t, browser.Filtered(), 5)

		browser.SetFilter("enemy")
		assert.Len(t, browser.Filtered(), 2)

		browser.SetFilter("")
	})

	t.Run("changing the filter returns to the first page", func(t *testing.T) {
		browser.currentPage = 1
		browser.SetFilter("enemy")
		assert.Zero(t, browser.currentPage)

		browser.currentPage = 1
		browser.SetFilter("")
		assert.Zero(t, browser.currentPage)
	})

	t.Run("sorts descending", func(t *testing.T) {
		browser.SortBy(0, false)
		rows := browser.Filtered()
		assert.Equal(t, uint32(len(rows)-1), rows[0].ID.Index())
		browser.SortBy(0, true)
	})

	t.Run("picks up new entities", func(t *testing.T) {
		prefab, ok := session.Prefabs.Get(world.EntityTypeHub)
		require.True(t, ok)
		id := session.World.AddEntityFromPrefab(prefab, mgl32.Vec2{3, 3})
		browser.refresh()

		rows := browser.Filtered()
		assert.Len(t, rows, session.World.Len())
		assert.Equal(t, id, rows[len(rows)-1].ID)
	})

	t.Run("drops stale selection on regenerate", func(t *testing.T) {
		browser.Select(browser.Filtered()[0].ID)
		require.NoError(t, session.Regenerate())
		browser.refresh()

		assert.Equal(t, world.InvalidEntityId, browser.GetSelectedEntity())
		assert.Len(t, browser.Filtered(), session.World.Len())
	})
}

func TestPerformanceStatsHistory(t *testing.T) {
	session := newSession(t)
	stats := NewPerformanceStats(session.World, 4)

	stats.Record(0.010)
	stats.Record(0.030)
	assert.InDelta(t, 10.0, stats.AverageFrameTime(), 1e-4)

	for range 4 {
		stats.Record(0.016)
	}
	assert.InDelta(t, 16.0, stats.AverageFrameTime(), 1e-4)
}

func TestOverlayVisibility(t *testing.T) {
	overlay := NewOverlay()
	overlay.inputState = ImguiInputState{WantCaptureMouse: true}
	assert.True(t, overlay.InputState().WantCaptureMouse)

	overlay.Toggle()
	assert.False(t, overlay.Visible())
	assert.Equal(t, ImguiInputState{}, overlay.InputState())
}

func TestReflectionCache(t *testing.T) {
	cache := NewReflectionCache()
	fields := cache.GetFields(reflect.TypeFor[world.Entity]())

	kinds := make(map[string]fieldKind, len(fields))
	for _, f := range fields {
		kinds[f.Name] = f.Kind
	}
	assert.Equal(t, fieldStringer, kinds["Type"])
	assert.Equal(t, fieldFlags, kinds["Flags"])
	assert.Equal(t, fieldStruct, kinds["Mining"])
	assert.Equal(t, fieldText, kinds["Position"])

	render := cache.GetFields(reflect.TypeFor[world.Render]())
	require.Len(t, render, 1)
	assert.Equal(t, fieldModel, render[0].Kind)

	mining := cache.GetFields(reflect.TypeFor[world.Mining]())
	assert.Equal(t, []FieldInfo{
		{Name: "TimeSinceLastCycle", Index: 0, Kind: fieldFloat},
		{Name: "CycleDuration", Index: 1, Kind: fieldFloat},
		{Name: "MineralAmountPerCycle", Index: 2, Kind: fieldInt},
	}, mining)

	assert.Equal(t, fields, cache.GetFields(reflect.TypeFor[world.Entity]()))
}
