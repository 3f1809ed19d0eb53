package world

import (
	"context"
	"math"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// scheduledSystem pairs a system with the timings of its executions.
type scheduledSystem struct {
	system System
	name   string
	count  int64
	min    time.Duration
	max    time.Duration
	last   time.Duration
	total  time.Duration
}

func (s *scheduledSystem) record(d time.Duration) {
	s.count++
	s.last = d
	s.total += d
	s.min = min(s.min, d)
	s.max = max(s.max, d)
}

func (s *scheduledSystem) stats() SystemStats {
	out := SystemStats{
		Name:           s.name,
		ExecutionCount: s.count,
		MaxDuration:    s.max,
		LastDuration:   s.last,
		TotalDuration:  s.total,
	}
	if s.count > 0 {
		out.MinDuration = s.min
		out.AvgDuration = s.total / time.Duration(s.count)
	}
	return out
}

// Scheduler executes systems sequentially in registration order. Later systems
// observe the writes of earlier ones within the same tick.
type Scheduler struct {
	entities  *EntityList
	resources *Resources
	systems   []*scheduledSystem
}

// NewScheduler creates a scheduler that runs systems over entities and resources.
func NewScheduler(entities *EntityList, resources *Resources) *Scheduler {
	return &Scheduler{entities: entities, resources: resources}
}

// Register appends a system to the execution order.
func (s *Scheduler) Register(system System) {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	s.systems = append(s.systems, &scheduledSystem{
		system: system,
		name:   t.Name(),
		min:    time.Duration(math.MaxInt64),
	})
}

// Once executes all registered systems once with the given delta time.
func (s *Scheduler) Once(dt float32) {
	frame := newUpdateFrame(dt, s.entities, s.resources)
	for _, entry := range s.systems {
		start := time.Now()
		entry.system.Execute(frame)
		entry.record(time.Since(start))
	}
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
// It is meant for headless drivers; interactive hosts call Once from their frame callback.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(float32(now.Sub(last).Seconds()))
			last = now
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, 0, len(s.systems)),
	}
	for _, entry := range s.systems {
		stats.Systems = append(stats.Systems, entry.stats())
		stats.TotalExecutions += entry.count
	}
	return stats
}
