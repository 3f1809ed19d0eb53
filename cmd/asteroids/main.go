package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/plus3/asteroids/assets"
	"github.com/plus3/asteroids/config"
	debugui_ebiten "github.com/plus3/asteroids/debugui/ebiten"
	"github.com/plus3/asteroids/world"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file. Defaults are used when empty.")
	seed := flag.Uint64("seed", 0, "Override the generation seed.")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Generation.Seed = *seed
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("asteroids exited", zap.Error(err))
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func loadAssets(cfg config.AssetsConfig) (*assets.Manager, error) {
	if cfg.Catalog == "" {
		return assets.DefaultManager()
	}
	return assets.LoadManagerFile(cfg.Catalog)
}

func run(cfg *config.Config, logger *zap.Logger) error {
	manager, err := loadAssets(cfg.Assets)
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}
	logger.Info("assets loaded", zap.Strings("models", manager.Names()))

	specs, err := cfg.PrefabSpecs()
	if err != nil {
		return err
	}
	session, err := world.NewSession(manager, world.PrefabTable(specs), cfg.GenerationConfig(),
		world.WithLogger(logger.Named("world")))
	if err != nil {
		return err
	}

	backend := debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Simulation.TPS)

	game := NewGame(cfg, session, backend, logger)
	return ebiten.RunGame(game)
}
