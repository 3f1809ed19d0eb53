package world

import (
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// EntityList is an index-stable, append-only sequence of entities. Entities are
// never removed individually; Clear drops all of them at once.
type EntityList struct {
	entities []Entity
}

// NewEntityList creates an empty list with room for capacity entities.
func NewEntityList(capacity int) *EntityList {
	return &EntityList{
		entities: make([]Entity, 0, capacity),
	}
}

// Len returns the number of entities in the list.
func (l *EntityList) Len() int {
	return len(l.entities)
}

// At returns the entity stored at index. The pointer is only valid until the next Append.
func (l *EntityList) At(index int) *Entity {
	return &l.entities[index]
}

// Append copies entity to the end of the list and returns its index and its stored copy.
func (l *EntityList) Append(entity Entity) (int, *Entity) {
	l.entities = append(l.entities, entity)
	index := len(l.entities) - 1
	return index, &l.entities[index]
}

// Clear removes every entity, keeping the allocated capacity.
func (l *EntityList) Clear() {
	clear(l.entities)
	l.entities = l.entities[:0]
}

// All returns an iterator over every entity in list order.
func (l *EntityList) All() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for i := range l.entities {
			if !yield(&l.entities[i]) {
				return
			}
		}
	}
}

// MatchingMask keeps entities whose flags intersect mask.
func MatchingMask(entities iter.Seq[*Entity], mask EntityFlags) iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for entity := range entities {
			if entity.Flags&mask == 0 {
				continue
			}
			if !yield(entity) {
				return
			}
		}
	}
}

// ExcludingId drops the entity with the given id.
func ExcludingId(entities iter.Seq[*Entity], id EntityId) iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for entity := range entities {
			if entity.Id == id {
				continue
			}
			if !yield(entity) {
				return
			}
		}
	}
}

// WithinRadius keeps entities no further than radius from center.
func WithinRadius(entities iter.Seq[*Entity], center mgl32.Vec2, radius float32) iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for entity := range entities {
			if entity.Position.Sub(center).Len() > radius {
				continue
			}
			if !yield(entity) {
				return
			}
		}
	}
}

// Closest returns the id of the entity nearest to position, or InvalidEntityId if
// the sequence is empty. Ties go to the entity seen first.
func Closest(entities iter.Seq[*Entity], position mgl32.Vec2) EntityId {
	closestDistance := float32(math.MaxFloat32)
	closestId := InvalidEntityId

	for entity := range entities {
		distance := entity.Position.Sub(position).Len()
		if distance < closestDistance {
			closestDistance = distance
			closestId = entity.Id
		}
	}

	return closestId
}
