package world

import (
	"fmt"

	"github.com/kamstrup/intmap"
	"github.com/plus3/asteroids/assets"
)

// ResourceManager resolves renderer-side models by name.
type ResourceManager interface {
	Model(name string) (*assets.Model, error)
}

// Initializer configures a freshly created prefab. Returning an error aborts registration.
type Initializer func(resources ResourceManager, prefab *Entity) error

// PrefabDef is one row of a prefab table.
type PrefabDef struct {
	Type EntityType
	Init Initializer
}

// Prefabs maps entity types to fully configured template entities. It is populated
// once at startup and read-only afterwards.
type Prefabs struct {
	resources ResourceManager
	prefabs   *intmap.Map[EntityType, *Entity]
}

// NewPrefabs creates an empty registry whose initializers resolve models through resources.
func NewPrefabs(resources ResourceManager) *Prefabs {
	return &Prefabs{
		resources: resources,
		prefabs:   intmap.New[EntityType, *Entity](int(entityTypeCount)),
	}
}

// Set builds the prefab for entityType by running init against a blank entity. The
// prefab is only stored when init succeeds.
func (p *Prefabs) Set(entityType EntityType, init Initializer) error {
	prefab := NewEntity(entityType)
	if err := init(p.resources, &prefab); err != nil {
		return fmt.Errorf("prefab %s: %w", entityType, err)
	}
	// Initializers may not retype the template.
	prefab.Type = entityType
	p.prefabs.Put(entityType, &prefab)
	return nil
}

// Get returns the template for entityType. The template must not be modified.
func (p *Prefabs) Get(entityType EntityType) (*Entity, bool) {
	return p.prefabs.Get(entityType)
}

// Len returns the number of registered prefabs.
func (p *Prefabs) Len() int {
	return p.prefabs.Len()
}

// Types returns the registered entity types in declaration order.
func (p *Prefabs) Types() []EntityType {
	var types []EntityType
	for _, t := range EntityTypes() {
		if p.prefabs.Has(t) {
			types = append(types, t)
		}
	}
	return types
}

// Register resolves every row of table, stopping at the first failure.
func (p *Prefabs) Register(table []PrefabDef) error {
	for _, def := range table {
		if err := p.Set(def.Type, def.Init); err != nil {
			return err
		}
	}
	return nil
}

// RequireModel fetches a model, reporting failure as ErrResourceMissing.
func RequireModel(resources ResourceManager, name string) (*assets.Model, error) {
	if resources == nil {
		return nil, fmt.Errorf("%w: %s: no resource manager", ErrResourceMissing, name)
	}
	model, err := resources.Model(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceMissing, err)
	}
	if model == nil {
		return nil, fmt.Errorf("%w: %s", ErrResourceMissing, name)
	}
	return model, nil
}

// PrefabSpec describes a prefab as plain data.
type PrefabSpec struct {
	Type                  EntityType
	Model                 string
	Flags                 EntityFlags
	ElectricityDelta      int
	SelectionRadius       float32
	CycleDuration         float32
	MineralAmountPerCycle int
	Speed                 float32
}

// Initializer builds the template described by s, resolving its model through the resource manager.
func (s PrefabSpec) Initializer() Initializer {
	return func(resources ResourceManager, prefab *Entity) error {
		prefab.Flags = s.Flags
		prefab.Electricity.ElectricityDelta = s.ElectricityDelta
		prefab.Building.SelectionRadius = s.SelectionRadius
		prefab.Mining.CycleDuration = s.CycleDuration
		prefab.Mining.MineralAmountPerCycle = s.MineralAmountPerCycle
		prefab.Movement.Speed = s.Speed

		model, err := RequireModel(resources, s.Model)
		if err != nil {
			return err
		}
		prefab.Render.Model = model
		return nil
	}
}

// PrefabTable converts specs into table rows.
func PrefabTable(specs []PrefabSpec) []PrefabDef {
	table := make([]PrefabDef, 0, len(specs))
	for _, spec := range specs {
		table = append(table, PrefabDef{Type: spec.Type, Init: spec.Initializer()})
	}
	return table
}

// DefaultPrefabSpecs is the stock set of prefabs. Durations are in seconds and
// speeds in world units per second.
func DefaultPrefabSpecs() []PrefabSpec {
	return []PrefabSpec{
		{
			Type:             EntityTypeCommandCenter,
			Model:            "command_center",
			Flags:            FlagLinkable,
			ElectricityDelta: 20,
			SelectionRadius:  1.5,
		},
		{
			Type:                  EntityTypeMiner,
			Model:                 "miner",
			Flags:                 FlagNeedsLink,
			ElectricityDelta:      -5,
			SelectionRadius:       1.5,
			CycleDuration:         5,
			MineralAmountPerCycle: 10,
		},
		{
			Type:             EntityTypeTurret,
			Model:            "turret",
			Flags:            FlagNeedsLink,
			ElectricityDelta: -10,
			SelectionRadius:  1.2,
		},
		{
			Type:             EntityTypeHub,
			Model:            "hub",
			Flags:            FlagNeedsLink | FlagLinkable,
			ElectricityDelta: -2,
			SelectionRadius:  1.0,
		},
		{
			Type:            EntityTypeAsteroid,
			Model:           "asteroid",
			Flags:           FlagMinable,
			SelectionRadius: 0.5,
		},
		{
			Type:  EntityTypeEnemyFighter,
			Model: "enemy",
			Flags: FlagEnemy,
			Speed: 1.5,
		},
	}
}
