package world

import (
	"iter"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/asteroids/assets"
	"go.uber.org/zap"
)

const (
	linkModelName       = "link"
	minerLaserModelName = "miner_laser"
)

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used by the world and the components built on it.
func WithLogger(logger *zap.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// WithRand sets the random source used by the movement system.
func WithRand(rng *rand.Rand) Option {
	return func(w *World) {
		w.rng = rng
	}
}

// WithCapacity preallocates room for n entities.
func WithCapacity(n int) Option {
	return func(w *World) {
		w.capacity = n
	}
}

// World owns the entity list and the session resources, and runs the systems
// over them once per tick.
type World struct {
	logger   *zap.Logger
	rng      *rand.Rand
	capacity int

	generation uint32
	entities   *EntityList
	resources  Resources
	scheduler  *Scheduler

	cursorPosition   mgl32.Vec2
	selectedEntityId EntityId

	linkModel       *assets.Model
	minerLaserModel *assets.Model
}

// New creates a World, fetching the connector models through resources.
func New(resources ResourceManager, opts ...Option) (*World, error) {
	w := &World{
		logger:           zap.NewNop(),
		capacity:         256,
		selectedEntityId: InvalidEntityId,
	}
	for _, opt := range opts {
		opt(w)
	}

	var err error
	if w.linkModel, err = RequireModel(resources, linkModelName); err != nil {
		return nil, err
	}
	if w.minerLaserModel, err = RequireModel(resources, minerLaserModelName); err != nil {
		return nil, err
	}

	w.entities = NewEntityList(w.capacity)
	w.scheduler = NewScheduler(w.entities, &w.resources)
	// Resource production must see positions before movement relocates anything.
	w.scheduler.Register(NewResourceSystem())
	w.scheduler.Register(NewMovementSystem(w.rng))

	return w, nil
}

// Logger returns the world's logger.
func (w *World) Logger() *zap.Logger {
	return w.logger
}

// Generation increases on every Clear. Ids from older generations no longer resolve.
func (w *World) Generation() uint32 {
	return w.generation
}

// Clear removes every entity and invalidates all previously issued ids.
func (w *World) Clear() {
	w.entities.Clear()
	w.resources.Reset(0, 0)
	w.selectedEntityId = InvalidEntityId

	w.generation++
	if w.generation == math.MaxUint32 {
		w.generation = 0
	}
	w.logger.Debug("world cleared", zap.Uint32("generation", w.generation))
}

// Len returns the number of entities.
func (w *World) Len() int {
	return w.entities.Len()
}

// Entities iterates over all entities in spawn order.
func (w *World) Entities() iter.Seq[*Entity] {
	return w.entities.All()
}

// Entity resolves id to its entity. Ids from an older generation or out of range
// do not resolve.
func (w *World) Entity(id EntityId) (*Entity, bool) {
	if !id.IsValid() || id.Generation() != w.generation {
		return nil, false
	}
	index := int(id.Index())
	if index >= w.entities.Len() {
		return nil, false
	}
	return w.entities.At(index), true
}

// Resources returns a snapshot of the session counters.
func (w *World) Resources() Resources {
	return w.resources
}

// Scheduler exposes the system scheduler for statistics.
func (w *World) Scheduler() *Scheduler {
	return w.scheduler
}

// AddEntityFromPrefab copies prefab into the world at position and resolves its
// link and mining target against the entities that exist right now.
func (w *World) AddEntityFromPrefab(prefab *Entity, position mgl32.Vec2) EntityId {
	if prefab == nil {
		w.logger.Warn("spawn without prefab", zap.Float32("x", position.X()), zap.Float32("y", position.Y()))
		return InvalidEntityId
	}
	if uint64(w.entities.Len()) >= math.MaxUint32 {
		w.logger.Error("entity list full", zap.Int("len", w.entities.Len()))
		return InvalidEntityId
	}

	index, entity := w.entities.Append(*prefab)
	entityId := NewEntityId(w.generation, uint32(index))

	entity.Id = entityId
	entity.Position = position
	entity.Building.LinkedToId = InvalidEntityId
	entity.Target = InvalidEntityId

	if entity.HasFlags(FlagNeedsLink) {
		entity.Building.LinkedToId = w.FindClosestTo(entityId, FlagLinkable)
	}

	if entity.Mines() {
		entity.Target = w.FindClosestTo(entityId, FlagMinable)
	}

	return entityId
}

// FindClosestTo returns the entity nearest to id carrying any of mask, never id itself.
func (w *World) FindClosestTo(id EntityId, mask EntityFlags) EntityId {
	entity, ok := w.Entity(id)
	if !ok {
		return InvalidEntityId
	}

	candidates := MatchingMask(ExcludingId(w.entities.All(), id), mask)
	return Closest(candidates, entity.Position)
}

// FindClosestToPosition returns the entity nearest to position carrying any of mask.
func (w *World) FindClosestToPosition(position mgl32.Vec2, mask EntityFlags) EntityId {
	return Closest(MatchingMask(w.entities.All(), mask), position)
}

// SetCursorPosition records the ground-plane cursor and re-evaluates the selection.
func (w *World) SetCursorPosition(position mgl32.Vec2) {
	w.cursorPosition = position
	w.selectedEntityId = w.EntityUnderCursor()
}

// CursorPosition returns the last ground-plane cursor position.
func (w *World) CursorPosition() mgl32.Vec2 {
	return w.cursorPosition
}

// SelectedEntityId is the entity under the cursor as of the last SetCursorPosition.
func (w *World) SelectedEntityId() EntityId {
	return w.selectedEntityId
}

// EntityUnderCursor returns the first pickable entity, in list order, whose
// selection radius strictly contains the cursor.
func (w *World) EntityUnderCursor() EntityId {
	for entity := range w.entities.All() {
		if !entity.Selectable() {
			continue
		}

		distanceToCursor := entity.Position.Sub(w.cursorPosition).Len()
		if distanceToCursor < entity.Building.SelectionRadius {
			return entity.Id
		}
	}

	return InvalidEntityId
}

// Tick runs the systems once.
func (w *World) Tick(delta float32) {
	w.scheduler.Once(delta)
}
