package world

import (
	"math"
	"math/rand/v2"
)

// WanderDistance is how far a roaming entity travels before picking a new heading.
const WanderDistance float32 = 5.0

// MovementSystem moves every entity with a positive speed along its heading and
// re-rolls the heading after each WanderDistance travelled.
type MovementSystem struct {
	rng *rand.Rand
}

func NewMovementSystem(rng *rand.Rand) *MovementSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &MovementSystem{rng: rng}
}

func (s *MovementSystem) Execute(frame *UpdateFrame) {
	for entity := range frame.Entities.All() {
		movement := &entity.Movement
		if movement.Speed <= 0 {
			continue
		}

		sin, cos := math.Sincos(float64(movement.Direction))
		distance := movement.Speed * frame.DeltaTime
		entity.Position[0] += float32(cos) * distance
		entity.Position[1] += float32(sin) * distance

		movement.DistanceTravelled += distance
		if movement.DistanceTravelled > WanderDistance {
			movement.Direction = s.rng.Float32() * 2 * math.Pi
			movement.DistanceTravelled = 0
		}
	}
}
