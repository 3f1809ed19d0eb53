package world

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kamstrup/intmap"
	"go.uber.org/zap"
)

// GenerationConfig controls the layout of a freshly generated world.
type GenerationConfig struct {
	Seed          uint64
	Asteroids     int
	EnemyFighters int
	// Asteroids and enemies are placed between MinSpawnRadius and SpawnRadius from the origin.
	MinSpawnRadius float32
	SpawnRadius    float32
	Miners         []mgl32.Vec2
}

func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Seed:           5244,
		Asteroids:      50,
		EnemyFighters:  20,
		MinSpawnRadius: 4,
		SpawnRadius:    100,
		Miners: []mgl32.Vec2{
			{10, 10},
			{5, 10},
			{-5, 5},
		},
	}
}

var requiredPrefabs = []EntityType{
	EntityTypeCommandCenter,
	EntityTypeMiner,
	EntityTypeAsteroid,
	EntityTypeEnemyFighter,
}

// Generate clears w and populates it from prefabs. Every required prefab is checked
// before the world is touched.
func Generate(w *World, prefabs *Prefabs, cfg GenerationConfig, rng *rand.Rand) error {
	templates := intmap.New[EntityType, *Entity](len(requiredPrefabs))
	for _, t := range requiredPrefabs {
		prefab, ok := prefabs.Get(t)
		if !ok {
			return fmt.Errorf("generate world: %w: %s", ErrPrefabMissing, t)
		}
		templates.Put(t, prefab)
	}
	template := func(t EntityType) *Entity {
		prefab, _ := templates.Get(t)
		return prefab
	}

	w.Clear()

	randomPosition := func() mgl32.Vec2 {
		theta := rng.Float64() * 2 * math.Pi
		distance := cfg.MinSpawnRadius + rng.Float32()*(cfg.SpawnRadius-cfg.MinSpawnRadius)
		sin, cos := math.Sincos(theta)
		return mgl32.Vec2{float32(cos) * distance, float32(sin) * distance}
	}

	w.AddEntityFromPrefab(template(EntityTypeCommandCenter), mgl32.Vec2{})

	// Asteroids go in before miners so the miners find a target at spawn.
	for range cfg.Asteroids {
		w.AddEntityFromPrefab(template(EntityTypeAsteroid), randomPosition())
	}

	for range cfg.EnemyFighters {
		id := w.AddEntityFromPrefab(template(EntityTypeEnemyFighter), randomPosition())
		if enemy, ok := w.Entity(id); ok {
			enemy.Movement.Direction = rng.Float32() * 2 * math.Pi
		}
	}

	for _, position := range cfg.Miners {
		w.AddEntityFromPrefab(template(EntityTypeMiner), position)
	}

	w.logger.Info("world generated",
		zap.Uint32("generation", w.Generation()),
		zap.Int("entities", w.Len()),
		zap.Int("asteroids", cfg.Asteroids),
		zap.Int("enemies", cfg.EnemyFighters),
		zap.Int("miners", len(cfg.Miners)))

	return nil
}
