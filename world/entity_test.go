package world

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityId(t *testing.T) {
	id := NewEntityId(3, 42)
	assert.Equal(t, uint32(3), id.Generation())
	assert.Equal(t, uint32(42), id.Index())
	assert.True(t, id.IsValid())

	assert.False(t, InvalidEntityId.IsValid())
	assert.Equal(t, EntityId(7), NewEntityId(0, 7))
}

func TestEntityTypeNames(t *testing.T) {
	for _, entityType := range EntityTypes() {
		parsed, ok := ParseEntityType(entityType.String())
		assert.True(t, ok)
		assert.Equal(t, entityType, parsed)
	}

	assert.Len(t, EntityTypes(), 6)
	assert.Equal(t, "Unknown", EntityType(99).String())

	_, ok := ParseEntityType("Mothership")
	assert.False(t, ok)
}

func TestParseFlags(t *testing.T) {
	flags, ok := ParseFlags([]string{"NeedsLink", "Linkable"})
	assert.True(t, ok)
	assert.Equal(t, FlagNeedsLink|FlagLinkable, flags)
	assert.Equal(t, []string{"NeedsLink", "Linkable"}, flags.Names())

	_, ok = ParseFlags([]string{"Minable", "Shiny"})
	assert.False(t, ok)

	flags, ok = ParseFlags(nil)
	assert.True(t, ok)
	assert.Zero(t, flags)
}

func TestEntityCapabilities(t *testing.T) {
	e := NewEntity(EntityTypeHub)
	assert.Equal(t, InvalidEntityId, e.Id)
	assert.Equal(t, InvalidEntityId, e.Target)
	assert.Equal(t, InvalidEntityId, e.Building.LinkedToId)

	e.Flags = FlagNeedsLink | FlagLinkable
	assert.True(t, e.HasFlags(FlagNeedsLink))
	assert.True(t, e.HasFlags(FlagNeedsLink|FlagLinkable))
	assert.False(t, e.HasFlags(FlagNeedsLink|FlagMinable))

	assert.False(t, e.Selectable())
	e.Building.SelectionRadius = 1
	assert.True(t, e.Selectable())

	assert.False(t, e.Mines())
	e.Mining.CycleDuration = 2
	assert.True(t, e.Mines())
}

func ExampleNewEntityId() {
	id := NewEntityId(2, 10)
	fmt.Println(id.Generation(), id.Index(), id.IsValid())
	fmt.Println(InvalidEntityId.IsValid())
	// Output:
	// 2 10 true
	// false
}
