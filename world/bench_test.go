package world

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func benchWorld(b *testing.B, asteroids, enemies int) *World {
	w, prefabs := testWorld(b, WithRand(rand.New(rand.NewPCG(1, 2))))
	cfg := DefaultGenerationConfig()
	cfg.Asteroids = asteroids
	cfg.EnemyFighters = enemies
	cfg.SpawnRadius = 500
	require.NoError(b, Generate(w, prefabs, cfg, rand.New(rand.NewPCG(cfg.Seed, 0))))
	return w
}

func BenchmarkAddEntityFromPrefab(b *testing.B) {
	w, prefabs := testWorld(b)
	miner, _ := prefabs.Get(EntityTypeMiner)
	spawn(b, w, prefabs, EntityTypeCommandCenter, 0, 0)
	spawn(b, w, prefabs, EntityTypeAsteroid, 3, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if w.Len() > 1000 {
			b.StopTimer()
			w.Clear()
			spawn(b, w, prefabs, EntityTypeCommandCenter, 0, 0)
			spawn(b, w, prefabs, EntityTypeAsteroid, 3, 3)
			b.StartTimer()
		}
		w.AddEntityFromPrefab(miner, mgl32.Vec2{float32(i % 97), float32(i % 89)})
	}
}

func BenchmarkClosest(b *testing.B) {
	w := benchWorld(b, 500, 100)
	position := mgl32.Vec2{12, -7}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Closest(MatchingMask(w.Entities(), FlagMinable), position)
	}
}

func BenchmarkSetCursorPosition(b *testing.B) {
	w := benchWorld(b, 500, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.SetCursorPosition(mgl32.Vec2{float32(i%200) - 100, 0})
	}
}

func BenchmarkTick(b *testing.B) {
	w := benchWorld(b, 500, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Tick(1.0 / 60.0)
	}
}
