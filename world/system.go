package world

// System represents a behaviour that mutates the entity list once per tick.
// Systems hold no entity data of their own; any state they keep (targets,
// random sources) persists between ticks.
type System interface {
	Execute(frame *UpdateFrame)
}
