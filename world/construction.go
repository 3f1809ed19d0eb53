package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type ConstructionState int

const (
	ConstructionIdle ConstructionState = iota
	ConstructionPlacing
)

func (s ConstructionState) String() string {
	if s == ConstructionPlacing {
		return "Placing"
	}
	return "Idle"
}

// ConstructionController is the placement state machine: Idle until a prefab is
// selected, Placing until the placement is committed or cancelled.
type ConstructionController struct {
	world   *World
	prefabs *Prefabs

	cursorPosition mgl32.Vec2
	prefab         *Entity
}

func NewConstructionController(world *World, prefabs *Prefabs) *ConstructionController {
	return &ConstructionController{
		world:   world,
		prefabs: prefabs,
	}
}

// StartBuilding enters Placing with the prefab for entityType. If no prefab is
// registered the controller drops back to Idle.
func (c *ConstructionController) StartBuilding(entityType EntityType) error {
	prefab, ok := c.prefabs.Get(entityType)
	if !ok {
		c.prefab = nil
		return fmt.Errorf("%w: %s", ErrPrefabMissing, entityType)
	}
	c.prefab = prefab
	return nil
}

func (c *ConstructionController) State() ConstructionState {
	if c.prefab == nil {
		return ConstructionIdle
	}
	return ConstructionPlacing
}

func (c *ConstructionController) IsBuilding() bool {
	return c.prefab != nil
}

// Prefab is the template being placed, or nil when Idle.
func (c *ConstructionController) Prefab() *Entity {
	return c.prefab
}

// Build commits the pending placement at the cursor and returns to Idle. It is a
// no-op returning InvalidEntityId when Idle.
func (c *ConstructionController) Build() EntityId {
	if c.prefab == nil {
		return InvalidEntityId
	}

	id := c.world.AddEntityFromPrefab(c.prefab, c.cursorPosition)
	c.world.logger.Info("construction committed",
		zap.Stringer("type", c.prefab.Type),
		zap.Uint32("index", id.Index()),
		zap.Float32("x", c.cursorPosition.X()),
		zap.Float32("y", c.cursorPosition.Y()))

	c.prefab = nil
	return id
}

// Cancel abandons the pending placement.
func (c *ConstructionController) Cancel() {
	c.prefab = nil
}

func (c *ConstructionController) CursorPosition() mgl32.Vec2 {
	return c.cursorPosition
}

func (c *ConstructionController) SetCursorPosition(cursorPosition mgl32.Vec2) {
	c.cursorPosition = cursorPosition
}
