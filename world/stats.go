package world

import "github.com/kamstrup/intmap"

// Stats is a point-in-time summary of the world.
type Stats struct {
	Generation   uint32
	EntityCount  int
	Linked       int
	Unlinked     int
	Mining       int
	MiningIdle   int
	Enemies      int
	Electricity  int
	Minerals     int
	countsByType *intmap.Map[EntityType, int]
}

// CountOf returns how many entities of entityType exist.
func (s Stats) CountOf(entityType EntityType) int {
	if s.countsByType == nil {
		return 0
	}
	count, _ := s.countsByType.Get(entityType)
	return count
}

// CollectStats walks the entity list once and summarises it.
func (w *World) CollectStats() Stats {
	stats := Stats{
		Generation:   w.generation,
		EntityCount:  w.entities.Len(),
		Electricity:  w.resources.Electricity(),
		Minerals:     w.resources.Minerals(),
		countsByType: intmap.New[EntityType, int](int(entityTypeCount)),
	}

	for entity := range w.entities.All() {
		count, _ := stats.countsByType.Get(entity.Type)
		stats.countsByType.Put(entity.Type, count+1)

		if entity.HasFlags(FlagNeedsLink) {
			if _, ok := w.Entity(entity.Building.LinkedToId); ok {
				stats.Linked++
			} else {
				stats.Unlinked++
			}
		}

		if entity.Mines() {
			if _, ok := w.Entity(entity.Target); ok {
				stats.Mining++
			} else {
				stats.MiningIdle++
			}
		}

		if entity.HasFlags(FlagEnemy) {
			stats.Enemies++
		}
	}

	return stats
}
