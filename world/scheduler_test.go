package world_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/asteroids/world"
)

type countingSystem struct {
	ExecuteCount int
	LastDelta    float32
	order        *[]string
	name         string
}

func (s *countingSystem) Execute(frame *world.UpdateFrame) {
	s.ExecuteCount++
	s.LastDelta = frame.DeltaTime
	if s.order != nil {
		*s.order = append(*s.order, s.name)
	}
}

type driftSystem struct{}

func (driftSystem) Execute(frame *world.UpdateFrame) {
	for e := range frame.Entities.All() {
		e.Position = e.Position.Add(mgl32.Vec2{frame.DeltaTime, 0})
	}
}

type electricityProbe struct {
	Seen int
}

func (p *electricityProbe) Execute(frame *world.UpdateFrame) {
	p.Seen = frame.Resources.Electricity()
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		var order []string
		scheduler := world.NewScheduler(world.NewEntityList(0), &world.Resources{})

		first := &countingSystem{order: &order, name: "first"}
		second := &countingSystem{order: &order, name: "second"}
		scheduler.Register(first)
		scheduler.Register(second)

		scheduler.Once(1.0)
		scheduler.Once(0.5)

		if first.ExecuteCount != 2 || second.ExecuteCount != 2 {
			t.Errorf("expected both systems to execute twice, got %d and %d", first.ExecuteCount, second.ExecuteCount)
		}
		if fmt.Sprint(order) != "[first second first second]" {
			t.Errorf("unexpected execution order %v", order)
		}
		if second.LastDelta != 0.5 {
			t.Errorf("expected delta 0.5, got %f", second.LastDelta)
		}
	})

	t.Run("later systems observe earlier writes", func(t *testing.T) {
		entities := world.NewEntityList(1)
		e := world.NewEntity(world.EntityTypeCommandCenter)
		e.Electricity.ElectricityDelta = 7
		entities.Append(e)

		resources := &world.Resources{}
		scheduler := world.NewScheduler(entities, resources)
		probe := &electricityProbe{}
		scheduler.Register(world.NewResourceSystem())
		scheduler.Register(probe)

		scheduler.Once(1.0)

		if probe.Seen != 7 {
			t.Errorf("expected probe to see electricity 7, got %d", probe.Seen)
		}
	})

	t.Run("delta time is applied", func(t *testing.T) {
		entities := world.NewEntityList(1)
		entities.Append(world.NewEntity(world.EntityTypeUnknown))
		scheduler := world.NewScheduler(entities, &world.Resources{})
		scheduler.Register(driftSystem{})

		scheduler.Once(0.25)
		scheduler.Once(0.25)

		if got := entities.At(0).Position.X(); got != 0.5 {
			t.Errorf("expected x=0.5, got %f", got)
		}
	})

	t.Run("stats", func(t *testing.T) {
		scheduler := world.NewScheduler(world.NewEntityList(0), &world.Resources{})
		scheduler.Register(&countingSystem{})

		stats := scheduler.GetStats()
		if stats.Systems[0].MinDuration != 0 {
			t.Errorf("expected zero min duration before any execution, got %v", stats.Systems[0].MinDuration)
		}

		for range 3 {
			scheduler.Once(0.1)
		}

		stats = scheduler.GetStats()
		if stats.SystemCount != 1 || stats.TotalExecutions != 3 {
			t.Errorf("unexpected totals %+v", stats)
		}
		s := stats.Systems[0]
		if s.Name != "countingSystem" {
			t.Errorf("expected system name countingSystem, got %q", s.Name)
		}
		if s.MinDuration > s.AvgDuration || s.AvgDuration > s.MaxDuration {
			t.Errorf("expected min <= avg <= max, got %v %v %v", s.MinDuration, s.AvgDuration, s.MaxDuration)
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := world.NewScheduler(world.NewEntityList(0), &world.Resources{})
		counter := &countingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if counter.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})
}

// ExampleScheduler runs a custom system after the built-in resource system over
// a hand-built entity list.
func ExampleScheduler() {
	entities := world.NewEntityList(2)
	for _, delta := range []int{20, -5} {
		e := world.NewEntity(world.EntityTypeUnknown)
		e.Electricity.ElectricityDelta = delta
		entities.Append(e)
	}

	resources := &world.Resources{}
	scheduler := world.NewScheduler(entities, resources)
	scheduler.Register(world.NewResourceSystem())

	scheduler.Once(1.0 / 60.0)
	fmt.Println("electricity:", resources.Electricity())
	// Output: electricity: 15
}
