package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/asteroids/assets"
)

func TestPrefabsSet(t *testing.T) {
	prefabs := NewPrefabs(testResources(t))

	err := prefabs.Set(EntityTypeMiner, func(resources ResourceManager, prefab *Entity) error {
		prefab.Type = EntityTypeAsteroid
		prefab.Electricity.ElectricityDelta = -5
		return nil
	})
	require.NoError(t, err)

	prefab, ok := prefabs.Get(EntityTypeMiner)
	require.True(t, ok)
	assert.Equal(t, EntityTypeMiner, prefab.Type)
	assert.Equal(t, -5, prefab.Electricity.ElectricityDelta)
	assert.Equal(t, InvalidEntityId, prefab.Target)

	_, ok = prefabs.Get(EntityTypeAsteroid)
	assert.False(t, ok)
}

func TestPrefabsSetFailure(t *testing.T) {
	prefabs := NewPrefabs(testResources(t))

	boom := errors.New("boom")
	err := prefabs.Set(EntityTypeHub, func(ResourceManager, *Entity) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "Hub")
	assert.Equal(t, 0, prefabs.Len())
}

func TestPrefabsRegister(t *testing.T) {
	t.Run("default table", func(t *testing.T) {
		prefabs := NewPrefabs(testResources(t))
		require.NoError(t, prefabs.Register(PrefabTable(DefaultPrefabSpecs())))
		assert.Equal(t, EntityTypes(), prefabs.Types())

		miner, _ := prefabs.Get(EntityTypeMiner)
		assert.Equal(t, FlagNeedsLink, miner.Flags)
		assert.Equal(t, "miner", miner.Render.Model.Name)
		assert.True(t, miner.Mines())

		center, _ := prefabs.Get(EntityTypeCommandCenter)
		assert.Equal(t, 20, center.Electricity.ElectricityDelta)
		assert.Equal(t, float32(1.5), center.Building.SelectionRadius)
	})

	t.Run("missing model stops registration", func(t *testing.T) {
		prefabs := NewPrefabs(testResources(t, "command_center", "link"))
		err := prefabs.Register(PrefabTable(DefaultPrefabSpecs()))

		assert.ErrorIs(t, err, ErrResourceMissing)
		assert.ErrorIs(t, err, assets.ErrModelNotFound)
		assert.Equal(t, []EntityType{EntityTypeCommandCenter}, prefabs.Types())
	})

	t.Run("nil resource manager", func(t *testing.T) {
		prefabs := NewPrefabs(nil)
		err := prefabs.Register(PrefabTable(DefaultPrefabSpecs()))
		assert.ErrorIs(t, err, ErrResourceMissing)
	})
}
