package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"bubbles-sim/internal/clock"
	"bubbles-sim/internal/config"
	"bubbles-sim/internal/logging"
	"bubbles-sim/internal/simulation"
	"bubbles-sim/internal/snapshot"
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
	logger.Infof("random seed %d", seed)

	sim, err := simulation.NewSimulation(float64(cfg.Width), float64(cfg.Height), cfg.Simulation,
		simulation.WithRand(rand.New(rand.NewSource(seed))),
		simulation.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Error creating simulation: %v", err)
	}

	surface, err := snapshot.NewCanvasSurface(cfg.Width, cfg.Height)
	if err != nil {
		log.Fatalf("Error creating canvas: %v", err)
	}

	var src clock.Source
	if cfg.TickInterval > 0 {
		src = &clock.Stepped{Step: cfg.TickInterval, Frames: cfg.Frames}
	} else {
		ticker, err := clock.NewTicker(cfg.FPS)
		if err != nil {
			log.Fatalf("Error creating ticker: %v", err)
		}
		src = ticker
		if cfg.Frames > 0 {
			src = clock.Limit(ticker, cfg.Frames)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("Initial State:")
	sim.PrintState()

	err = sim.Run(ctx, src, surface)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, clock.ErrFrameLimit) {
		log.Fatalf("Simulation failed: %v", err)
	}

	fmt.Println("\n--- Simulation Finished ---")
	sim.PrintState()
	fmt.Println(sim.Stats())

	if cfg.Snapshot != "" {
		if err := writeSnapshot(cfg.Snapshot, surface); err != nil {
			log.Fatalf("Error writing snapshot: %v", err)
		}
		logger.Infof("wrote snapshot to %s", cfg.Snapshot)
	}
}

func writeSnapshot(path string, surface *snapshot.CanvasSurface) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := surface.WritePNG(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
