package world

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"
)

// Session owns everything that lives for one play session: the prefab registry,
// the world and the construction controller.
type Session struct {
	Prefabs      *Prefabs
	World        *World
	Construction *ConstructionController

	generation GenerationConfig
	rng        *rand.Rand
}

// NewSession registers the prefab table, creates the world and generates the first
// layout. Any prefab or model failure aborts the session.
func NewSession(resources ResourceManager, table []PrefabDef, generation GenerationConfig, opts ...Option) (*Session, error) {
	prefabs := NewPrefabs(resources)
	if err := prefabs.Register(table); err != nil {
		return nil, fmt.Errorf("register prefabs: %w", err)
	}

	rng := rand.New(rand.NewPCG(generation.Seed, generation.Seed^0x9e3779b97f4a7c15))

	// Movement gets its own stream so layout stays reproducible from the seed alone.
	opts = append([]Option{WithRand(rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64())))}, opts...)
	w, err := New(resources, opts...)
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}
	w.logger.Info("prefabs registered", zap.Int("count", prefabs.Len()))

	s := &Session{
		Prefabs:      prefabs,
		World:        w,
		Construction: NewConstructionController(w, prefabs),
		generation:   generation,
		rng:          rng,
	}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate discards the current world contents and lays out a new one. Any
// pending placement is cancelled; all previously issued ids become stale.
func (s *Session) Regenerate() error {
	s.Construction.Cancel()
	return Generate(s.World, s.Prefabs, s.generation, s.rng)
}
