package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"bubbles-sim/internal/config"
	"bubbles-sim/internal/logging"
	"bubbles-sim/internal/simulation"
	"bubbles-sim/internal/visualization"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	logger := logging.New(cfg.LogLevel)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim, err := simulation.NewSimulation(float64(cfg.Width), float64(cfg.Height), cfg.Simulation,
		simulation.WithRand(rand.New(rand.NewSource(seed))),
		simulation.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Error creating simulation: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	window := visualization.NewWindow(sim, cfg.Title, cfg.Width, cfg.Height)
	if err := sim.Run(ctx, window, window.Surface()); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Simulation failed: %v", err)
	}
}
