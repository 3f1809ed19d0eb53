package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/asteroids/assets"
)

// EntityId encodes both the world generation (upper 32 bits) and the entity index (lower 32 bits).
// Only Index matches the entity's position in the list; the whole id equals the index only in
// generation 0, and a generated world is always at generation 1 or later.
type EntityId uint64

// InvalidEntityId is returned by every query that finds nothing.
const InvalidEntityId EntityId = math.MaxUint64

// NewEntityId creates an EntityId from a world generation and entity index
func NewEntityId(generation uint32, index uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the world generation from the entity ID
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}

// Index extracts the entity index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// IsValid reports whether the id refers to an entity at all. It does not check that the
// entity still exists; use World.Entity for that.
func (e EntityId) IsValid() bool {
	return e != InvalidEntityId
}

type EntityType uint32

const (
	EntityTypeUnknown EntityType = iota

	// Buildings
	EntityTypeCommandCenter
	EntityTypeMiner
	EntityTypeTurret
	EntityTypeHub

	// Static
	EntityTypeAsteroid

	// Enemies
	EntityTypeEnemyFighter

	entityTypeCount
)

var entityTypeNames = [...]string{
	EntityTypeUnknown:       "Unknown",
	EntityTypeCommandCenter: "CommandCenter",
	EntityTypeMiner:         "Miner",
	EntityTypeTurret:        "Turret",
	EntityTypeHub:           "Hub",
	EntityTypeAsteroid:      "Asteroid",
	EntityTypeEnemyFighter:  "EnemyFighter",
}

func (t EntityType) String() string {
	if t < entityTypeCount {
		return entityTypeNames[t]
	}
	return "Unknown"
}

// EntityTypes lists every concrete (non-Unknown) entity type in declaration order.
func EntityTypes() []EntityType {
	types := make([]EntityType, 0, entityTypeCount-1)
	for t := EntityTypeCommandCenter; t < entityTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// ParseEntityType maps a type name (as produced by String) back to its EntityType.
func ParseEntityType(name string) (EntityType, bool) {
	for t, n := range entityTypeNames {
		if n == name {
			return EntityType(t), true
		}
	}
	return EntityTypeUnknown, false
}

// EntityFlags is a capability bitmask. Gameplay queries filter on flags, never on EntityType.
type EntityFlags uint32

const (
	FlagNeedsLink EntityFlags = 1 << (iota + 1)
	FlagLinkable
	FlagMinable
	FlagEnemy

	FlagAll EntityFlags = math.MaxUint32
)

var flagNames = []struct {
	flag EntityFlags
	name string
}{
	{FlagNeedsLink, "NeedsLink"},
	{FlagLinkable, "Linkable"},
	{FlagMinable, "Minable"},
	{FlagEnemy, "Enemy"},
}

// ParseFlags converts a list of capability names into a bitmask.
func ParseFlags(names []string) (EntityFlags, bool) {
	var flags EntityFlags
next:
	for _, name := range names {
		for _, f := range flagNames {
			if f.name == name {
				flags |= f.flag
				continue next
			}
		}
		return 0, false
	}
	return flags, true
}

// Names returns the capability names set in the mask.
func (f EntityFlags) Names() []string {
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return names
}

type Movement struct {
	Direction         float32 // radians
	Speed             float32
	DistanceTravelled float32
}

type Building struct {
	LinkedToId EntityId
	// SelectionRadius of 0 means the entity cannot be picked or linked to.
	SelectionRadius float32
}

type Electricity struct {
	ElectricityDelta int
}

type Mining struct {
	TimeSinceLastCycle    float32
	CycleDuration         float32
	MineralAmountPerCycle int
}

type Render struct {
	Model *assets.Model
}

// Entity is a plain aggregate; every entity carries every component and
// behaviour is switched on by the component values and capability flags.
type Entity struct {
	Id       EntityId
	Type     EntityType
	Position mgl32.Vec2
	Flags    EntityFlags

	// Target is the entity this one acts upon, e.g. a miner's asteroid.
	Target EntityId

	Movement    Movement
	Building    Building
	Electricity Electricity
	Mining      Mining
	Render      Render
}

// NewEntity returns a blank entity of the given type with all references invalid.
func NewEntity(entityType EntityType) Entity {
	return Entity{
		Id:     InvalidEntityId,
		Type:   entityType,
		Target: InvalidEntityId,
		Building: Building{
			LinkedToId: InvalidEntityId,
		},
	}
}

// HasFlags reports whether all bits of mask are set.
func (e *Entity) HasFlags(mask EntityFlags) bool {
	return e.Flags&mask == mask
}

// Selectable reports whether the entity can be picked or linked to.
func (e *Entity) Selectable() bool {
	return e.Building.SelectionRadius > 0
}

// Mines reports whether the entity gathers minerals from a target.
func (e *Entity) Mines() bool {
	return e.Mining.CycleDuration > 0
}
