package world

import "errors"

var (
	// ErrResourceMissing is returned when a prefab initializer or the world could not
	// obtain a required model. It is fatal at startup.
	ErrResourceMissing = errors.New("resource missing")

	// ErrPrefabMissing is returned when no prefab is registered for an entity type.
	ErrPrefabMissing = errors.New("prefab missing")
)
