package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/plus3/asteroids/assets"
	"github.com/plus3/asteroids/config"
	"github.com/plus3/asteroids/world"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	asteroids := flag.Int("asteroids", 5000, "Asteroids in the generated world.")
	enemies := flag.Int("enemies", 2000, "Enemy fighters in the generated world.")
	buildEvery := flag.Int("build-every", 10, "Commit a construction every N updates (0 disables).")
	step := flag.Duration("step", 0, "Fixed simulation step; 0 uses wall-clock deltas.")
	seed := flag.Uint64("seed", 5244, "Generation seed.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	logLevel := flag.String("log-level", "info", "Log level.")
	flag.Parse()

	logger, err := config.NewLogger(config.LoggingConfig{Level: *logLevel, Format: "console"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting stress test")

	manager, err := assets.DefaultManager()
	if err != nil {
		logger.Fatal("load assets", zap.Error(err))
	}

	gen := world.DefaultGenerationConfig()
	gen.Seed = *seed
	gen.Asteroids = *asteroids
	gen.EnemyFighters = *enemies
	gen.SpawnRadius = float32(math.Sqrt(float64(*asteroids+*enemies))) * 4

	session, err := world.NewSession(manager, world.PrefabTable(world.DefaultPrefabSpecs()), gen,
		world.WithLogger(logger.Named("world").WithOptions(zap.IncreaseLevel(zap.WarnLevel))),
		world.WithCapacity(*asteroids+*enemies+1024))
	if err != nil {
		logger.Fatal("create session", zap.Error(err))
	}
	logger.Info("population complete", zap.Int("entities", session.World.Len()))

	report := &Report{
		Duration:       *duration,
		Entities:       session.World.Len(),
		BuildEvery:     *buildEvery,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running simulation", zap.Duration("duration", *duration))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	builder := newBuilder(session, rand.New(rand.NewPCG(*seed, 1)), gen.SpawnRadius)

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()
			if *step > 0 {
				deltaTime = *step
			}

			if *buildEvery > 0 && totalUpdates%int64(*buildEvery) == 0 {
				if builder.build() {
					report.Built++
				}
			}

			updateStart := time.Now()
			session.World.Tick(float32(deltaTime.Seconds()))
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Systems = session.World.Scheduler().GetStats().Systems
	report.World = newWorldSummary(session.World.CollectStats())
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("simulation finished", zap.Int64("updates", totalUpdates))

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}

// builder places random structures through the construction controller.
type builder struct {
	session *world.Session
	rng     *rand.Rand
	radius  float32
	types   []world.EntityType
}

func newBuilder(session *world.Session, rng *rand.Rand, radius float32) *builder {
	return &builder{
		session: session,
		rng:     rng,
		radius:  radius,
		types:   []world.EntityType{world.EntityTypeMiner, world.EntityTypeHub, world.EntityTypeTurret},
	}
}

func (b *builder) build() bool {
	construction := b.session.Construction
	t := b.types[b.rng.IntN(len(b.types))]
	if err := construction.StartBuilding(t); err != nil {
		return false
	}
	angle := b.rng.Float32() * 2 * math.Pi
	distance := b.rng.Float32() * b.radius
	construction.SetCursorPosition(mgl32.Vec2{
		distance * float32(math.Cos(float64(angle))),
		distance * float32(math.Sin(float64(angle))),
	})
	return construction.Build().IsValid()
}
