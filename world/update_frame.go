package world

type UpdateFrame struct {
	DeltaTime float32
	Entities  *EntityList
	Resources *Resources
}

func newUpdateFrame(dt float32, entities *EntityList, resources *Resources) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Entities:  entities,
		Resources: resources,
	}
}
