package world

// ResourceSystem recomputes the electricity balance from scratch every tick and
// accumulates minerals from completed mining cycles.
type ResourceSystem struct{}

func NewResourceSystem() *ResourceSystem {
	return &ResourceSystem{}
}

func (s *ResourceSystem) Execute(frame *UpdateFrame) {
	totalElectricity := 0
	totalMinerals := 0

	for entity := range frame.Entities.All() {
		totalElectricity += entity.Electricity.ElectricityDelta

		mining := &entity.Mining
		if mining.CycleDuration <= 0 {
			continue
		}

		// Subtract rather than reset so time past the cycle boundary carries over.
		mining.TimeSinceLastCycle += frame.DeltaTime
		for mining.TimeSinceLastCycle >= mining.CycleDuration {
			mining.TimeSinceLastCycle -= mining.CycleDuration
			totalMinerals += mining.MineralAmountPerCycle
		}
	}

	frame.Resources.SetElectricity(totalElectricity)
	frame.Resources.AddMinerals(totalMinerals)
}
