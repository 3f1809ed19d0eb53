package world

import (
	"fmt"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func listOf(entities ...Entity) *EntityList {
	list := NewEntityList(len(entities))
	for i, e := range entities {
		e.Id = NewEntityId(0, uint32(i))
		list.Append(e)
	}
	return list
}

func at(x, y float32, flags EntityFlags) Entity {
	e := NewEntity(EntityTypeUnknown)
	e.Position = mgl32.Vec2{x, y}
	e.Flags = flags
	return e
}

func ids(list *EntityList) []EntityId {
	var out []EntityId
	for e := range list.All() {
		out = append(out, e.Id)
	}
	return out
}

func TestEntityList(t *testing.T) {
	list := NewEntityList(1)
	assert.Equal(t, 0, list.Len())

	i0, e0 := list.Append(at(1, 1, 0))
	i1, _ := list.Append(at(2, 2, 0))
	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, mgl32.Vec2{1, 1}, e0.Position)
	assert.Equal(t, mgl32.Vec2{2, 2}, list.At(1).Position)

	list.At(0).Position = mgl32.Vec2{5, 5}
	assert.Equal(t, mgl32.Vec2{5, 5}, list.At(0).Position)

	list.Clear()
	assert.Equal(t, 0, list.Len())
	assert.Empty(t, slices.Collect(list.All()))
}

func TestEntityListAllStopsEarly(t *testing.T) {
	list := listOf(at(0, 0, 0), at(1, 0, 0), at(2, 0, 0))
	seen := 0
	for range list.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestFilters(t *testing.T) {
	list := listOf(
		at(0, 0, FlagLinkable),
		at(3, 4, FlagMinable),
		at(10, 0, FlagLinkable|FlagNeedsLink),
		at(1, 0, 0),
	)

	t.Run("matching mask intersects", func(t *testing.T) {
		matched := slices.Collect(MatchingMask(list.All(), FlagLinkable|FlagMinable))
		assert.Len(t, matched, 3)
		assert.Empty(t, slices.Collect(MatchingMask(list.All(), FlagEnemy)))
	})

	t.Run("excluding id", func(t *testing.T) {
		rest := slices.Collect(ExcludingId(list.All(), NewEntityId(0, 0)))
		assert.Len(t, rest, 3)
		assert.Equal(t, NewEntityId(0, 1), rest[0].Id)
	})

	t.Run("within radius is inclusive", func(t *testing.T) {
		near := slices.Collect(WithinRadius(list.All(), mgl32.Vec2{0, 0}, 5))
		assert.Len(t, near, 3)
	})
}

func TestClosest(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, InvalidEntityId, Closest(NewEntityList(0).All(), mgl32.Vec2{}))
	})

	t.Run("nearest wins", func(t *testing.T) {
		list := listOf(at(10, 0, 0), at(2, 0, 0), at(-5, 0, 0))
		assert.Equal(t, NewEntityId(0, 1), Closest(list.All(), mgl32.Vec2{0, 0}))
	})

	t.Run("ties go to the first", func(t *testing.T) {
		list := listOf(at(-1, 0, 0), at(1, 0, 0))
		assert.Equal(t, NewEntityId(0, 0), Closest(list.All(), mgl32.Vec2{0, 0}))
	})
}

func ExampleClosest() {
	list := NewEntityList(3)
	for i, x := range []float32{8, 3, -6} {
		e := NewEntity(EntityTypeAsteroid)
		e.Id = NewEntityId(0, uint32(i))
		e.Position = mgl32.Vec2{x, 0}
		e.Flags = FlagMinable
		list.Append(e)
	}

	id := Closest(MatchingMask(list.All(), FlagMinable), mgl32.Vec2{0, 0})
	fmt.Println(id.Index())
	// Output: 1
}
