package config

import (
	"io"
	"testing"
	"time"

	"bubbles-sim/internal/simulation"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("test", nil, envMap(nil), io.Discard)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Simulation != simulation.DefaultSettings() {
		t.Errorf("Expected default settings, got %s", cfg.Simulation)
	}
	if cfg.Width != 1024 || cfg.Height != 768 || cfg.FPS != 60 || cfg.LogLevel != "info" {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
	if cfg.TickInterval != 0 || cfg.Snapshot != "" || cfg.Seed != 0 {
		t.Errorf("Unexpected headless defaults %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	env := envMap(map[string]string{
		"BUBBLES_LARGE_COUNT":   "4",
		"BUBBLES_SMALL_COUNT":   "9",
		"BUBBLES_PAIRWISE":      "true",
		"BUBBLES_TICK_INTERVAL": "16ms",
	})
	args := []string{"-large-count", "7", "-width", "640", "-snapshot", "out.png"}

	cfg, err := Load("test", args, env, io.Discard)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	tests := []struct {
		name string
		ok   bool
	}{
		{"flag beats env", cfg.Simulation.LargeBubbleCount == 7},
		{"env beats default", cfg.Simulation.SmallBubbleCount == 9},
		{"env bool", cfg.Simulation.PairwiseCollisions},
		{"env duration", cfg.TickInterval == 16*time.Millisecond},
		{"flag int", cfg.Width == 640},
		{"default kept", cfg.Height == 768},
		{"flag string", cfg.Snapshot == "out.png"},
	}
	for _, tt := range tests {
		if !tt.ok {
			t.Errorf("%s: unexpected config %+v", tt.name, cfg)
		}
	}
}

func TestLoadNegativeCountsClamped(t *testing.T) {
	cfg, err := Load("test", []string{"-large-count", "-3"}, envMap(nil), io.Discard)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Simulation.LargeBubbleCount != 0 {
		t.Errorf("Expected clamped count 0, got %d", cfg.Simulation.LargeBubbleCount)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad int flag", []string{"-width", "wide"}, nil},
		{"bad float env", nil, map[string]string{"BUBBLES_LARGE_RADIUS": "big"}},
		{"bad bool", []string{"-pairwise", "maybe"}, nil},
		{"bad duration", []string{"-tick-interval", "soon"}, nil},
		{"zero height", []string{"-height", "0"}, nil},
		{"zero fps", []string{"-fps", "0"}, nil},
		{"negative frames", []string{"-frames", "-1"}, nil},
		{"unknown flag", []string{"-nope", "1"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load("test", tt.args, envMap(tt.env), io.Discard); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
