package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/plus3/asteroids/assets"
)

var testModelNames = []string{
	"link", "miner_laser",
	"command_center", "miner", "turret", "hub", "asteroid", "enemy",
}

func testResources(t testing.TB, names ...string) *assets.Manager {
	t.Helper()
	if len(names) == 0 {
		names = testModelNames
	}
	manager := assets.NewManager(nil)
	for _, name := range names {
		require.NoError(t, manager.Add(&assets.Model{
			Name:     name,
			Vertices: []mgl32.Vec3{{0, 0, 0}, {0, 1, 0}},
			Lines:    [][2]int{{0, 1}},
		}))
	}
	return manager
}

func testWorld(t testing.TB, opts ...Option) (*World, *Prefabs) {
	t.Helper()
	resources := testResources(t)
	w, err := New(resources, opts...)
	require.NoError(t, err)

	prefabs := NewPrefabs(resources)
	require.NoError(t, prefabs.Register(PrefabTable(DefaultPrefabSpecs())))
	return w, prefabs
}

func spawn(t testing.TB, w *World, prefabs *Prefabs, entityType EntityType, x, y float32) EntityId {
	t.Helper()
	prefab, ok := prefabs.Get(entityType)
	require.True(t, ok, "no prefab for %s", entityType)
	id := w.AddEntityFromPrefab(prefab, mgl32.Vec2{x, y})
	require.True(t, id.IsValid())
	return id
}
