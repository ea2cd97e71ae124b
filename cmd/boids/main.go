package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/render"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
)

const defaultSchemaFile = "config/config.schema.json"

func main() {
	configFile := flag.String("config", "", "path to the flock config json (defaults are used when empty)")
	schemaFile := flag.String("schema", defaultSchemaFile, "path to the config json schema")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("💥 could not load config: %v", err)
		}
		cfg = loaded
	}

	logger, err := simulation.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("💥 invalid log level: %v", err)
	}

	ctx := context.Background()

	system, err := actor.NewActorSystem("FlockWorld",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatalf("💥 could not create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatalf("💥 could not start actor system: %v", err)
	}
	defer func() { _ = system.Stop(ctx) }()

	game, err := render.NewGame(ctx, cfg, system)
	if err != nil {
		log.Fatalf("💥 could not create game: %v", err)
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Boids: Flocking Simulation")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
