// Package config loads game settings from TOML, layered over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/asteroids/world"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Window     WindowConfig            `toml:"window"`
	Camera     CameraConfig            `toml:"camera"`
	Simulation SimulationConfig        `toml:"simulation"`
	Generation GenerationConfig        `toml:"generation"`
	Prefabs    map[string]PrefabConfig `toml:"prefabs"`
	Assets     AssetsConfig            `toml:"assets"`
	Logging    LoggingConfig           `toml:"logging"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type CameraConfig struct {
	Mode             string  `toml:"mode"` // "top_down" or "first_person"
	FieldOfView      float32 `toml:"field_of_view"`
	NearPlane        float32 `toml:"near_plane"`
	FarPlane         float32 `toml:"far_plane"`
	Height           float32 `toml:"height"`
	KeyboardSpeed    float32 `toml:"keyboard_speed"`
	MouseSensitivity float32 `toml:"mouse_sensitivity"`
	FlySpeed         float32 `toml:"fly_speed"`
}

type SimulationConfig struct {
	TPS int `toml:"tps"`
}

type GenerationConfig struct {
	Seed           uint64       `toml:"seed"`
	Asteroids      int          `toml:"asteroids"`
	EnemyFighters  int          `toml:"enemy_fighters"`
	MinSpawnRadius float32      `toml:"min_spawn_radius"`
	SpawnRadius    float32      `toml:"spawn_radius"`
	Miners         [][2]float32 `toml:"miners"`
}

// PrefabConfig is keyed by entity type name. A [prefabs.<Type>] table replaces
// the whole default prefab for that type.
type PrefabConfig struct {
	Model            string   `toml:"model"`
	Flags            []string `toml:"flags"`
	Electricity      int      `toml:"electricity"`
	SelectionRadius  float32  `toml:"selection_radius"`
	CycleDuration    float32  `toml:"cycle_duration"` // seconds
	MineralsPerCycle int      `toml:"minerals_per_cycle"`
	Speed            float32  `toml:"speed"`
}

type AssetsConfig struct {
	Catalog string `toml:"catalog"` // empty uses the embedded catalog
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

const (
	CameraModeTopDown     = "top_down"
	CameraModeFirstPerson = "first_person"
)

// Load reads path and overlays it on Default. The result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays TOML data on Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %s", ErrInvalidConfig, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Default() *Config {
	gen := world.DefaultGenerationConfig()
	miners := make([][2]float32, 0, len(gen.Miners))
	for _, m := range gen.Miners {
		miners = append(miners, [2]float32{m.X(), m.Y()})
	}

	prefabs := make(map[string]PrefabConfig)
	for _, spec := range world.DefaultPrefabSpecs() {
		prefabs[spec.Type.String()] = PrefabConfig{
			Model:            spec.Model,
			Flags:            spec.Flags.Names(),
			Electricity:      spec.ElectricityDelta,
			SelectionRadius:  spec.SelectionRadius,
			CycleDuration:    spec.CycleDuration,
			MineralsPerCycle: spec.MineralAmountPerCycle,
			Speed:            spec.Speed,
		}
	}

	return &Config{
		Window: WindowConfig{
			Title:  "Asteroids",
			Width:  1280,
			Height: 720,
		},
		Camera: CameraConfig{
			Mode:             CameraModeTopDown,
			FieldOfView:      45,
			NearPlane:        0.1,
			FarPlane:         1000,
			Height:           25,
			KeyboardSpeed:    30,
			MouseSensitivity: 90,
			FlySpeed:         20,
		},
		Simulation: SimulationConfig{
			TPS: 60,
		},
		Generation: GenerationConfig{
			Seed:           gen.Seed,
			Asteroids:      gen.Asteroids,
			EnemyFighters:  gen.EnemyFighters,
			MinSpawnRadius: gen.MinSpawnRadius,
			SpawnRadius:    gen.SpawnRadius,
			Miners:         miners,
		},
		Prefabs: prefabs,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate reports every problem found, joined.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, invalid(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)

	cam := c.Camera
	check(cam.Mode == CameraModeTopDown || cam.Mode == CameraModeFirstPerson, "camera mode %q", cam.Mode)
	check(cam.FieldOfView > 0 && cam.FieldOfView < 180, "camera field_of_view %v", cam.FieldOfView)
	check(cam.NearPlane > 0 && cam.FarPlane > cam.NearPlane, "camera clip planes %v..%v", cam.NearPlane, cam.FarPlane)
	check(cam.Height > 0, "camera height %v", cam.Height)

	check(c.Simulation.TPS > 0, "simulation tps %d", c.Simulation.TPS)

	gen := c.Generation
	check(gen.Asteroids >= 0 && gen.EnemyFighters >= 0, "generation counts must not be negative")
	check(gen.MinSpawnRadius >= 0 && gen.SpawnRadius >= gen.MinSpawnRadius,
		"generation spawn radius %v..%v", gen.MinSpawnRadius, gen.SpawnRadius)

	for _, name := range slices.Sorted(maps.Keys(c.Prefabs)) {
		p := c.Prefabs[name]
		if _, ok := world.ParseEntityType(name); !ok || name == world.EntityTypeUnknown.String() {
			errs = append(errs, invalid("prefab %q: unknown entity type", name))
			continue
		}
		if _, ok := world.ParseFlags(p.Flags); !ok {
			errs = append(errs, invalid("prefab %s: unknown flag in %v", name, p.Flags))
		}
		check(p.Model != "", "prefab %s: model is required", name)
		check(p.SelectionRadius >= 0, "prefab %s: selection_radius %v", name, p.SelectionRadius)
		check(p.CycleDuration >= 0, "prefab %s: cycle_duration %v", name, p.CycleDuration)
	}

	switch c.Logging.Format {
	case "", "console", "json":
	default:
		errs = append(errs, invalid("logging format %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}

// PrefabSpecs converts the prefab tables into specs ordered by entity type.
func (c *Config) PrefabSpecs() ([]world.PrefabSpec, error) {
	specs := make([]world.PrefabSpec, 0, len(c.Prefabs))
	for name, p := range c.Prefabs {
		t, ok := world.ParseEntityType(name)
		if !ok || t == world.EntityTypeUnknown {
			return nil, invalid("prefab %q: unknown entity type", name)
		}
		flags, ok := world.ParseFlags(p.Flags)
		if !ok {
			return nil, invalid("prefab %s: unknown flag in %v", name, p.Flags)
		}
		specs = append(specs, world.PrefabSpec{
			Type:                  t,
			Model:                 p.Model,
			Flags:                 flags,
			ElectricityDelta:      p.Electricity,
			SelectionRadius:       p.SelectionRadius,
			CycleDuration:         p.CycleDuration,
			MineralAmountPerCycle: p.MineralsPerCycle,
			Speed:                 p.Speed,
		})
	}
	slices.SortFunc(specs, func(a, b world.PrefabSpec) int { return int(a.Type) - int(b.Type) })
	return specs, nil
}

func (c *Config) GenerationConfig() world.GenerationConfig {
	miners := make([]mgl32.Vec2, 0, len(c.Generation.Miners))
	for _, m := range c.Generation.Miners {
		miners = append(miners, mgl32.Vec2{m[0], m[1]})
	}
	return world.GenerationConfig{
		Seed:           c.Generation.Seed,
		Asteroids:      c.Generation.Asteroids,
		EnemyFighters:  c.Generation.EnemyFighters,
		MinSpawnRadius: c.Generation.MinSpawnRadius,
		SpawnRadius:    c.Generation.SpawnRadius,
		Miners:         miners,
	}
}
