// Package config resolves command configuration from flags, environment variables and defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"bubbles-sim/internal/simulation"
)

// Config holds the configuration shared by the commands.
type Config struct {
	Simulation simulation.Settings

	Width  int
	Height int
	Title  string

	Seed         int64 // 0 seeds from the clock
	LogLevel     string
	FPS          int
	Frames       int // headless frame count; 0 runs until interrupted
	TickInterval time.Duration
	Snapshot     string // PNG written after a headless run; empty disables
}

// resolver defines how to resolve a single configuration value
type resolver struct {
	flagName    string
	envVarName  string
	defaultVal  string
	description string
	setter      func(*Config, string) error
}

func intSetter(dst func(*Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst(c) = n
		return nil
	}
}

func floatSetter(dst func(*Config) *float64) func(*Config, string) error {
	return func(c *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst(c) = f
		return nil
	}
}

func resolvers() []resolver {
	def := simulation.DefaultSettings()
	ftoa := func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

	return []resolver{
		{"large-count", "BUBBLES_LARGE_COUNT", strconv.Itoa(def.LargeBubbleCount), "number of large bubbles",
			intSetter(func(c *Config) *int { return &c.Simulation.LargeBubbleCount })},
		{"large-radius", "BUBBLES_LARGE_RADIUS", ftoa(def.LargeBubbleRadius), "base radius of large bubbles",
			floatSetter(func(c *Config) *float64 { return &c.Simulation.LargeBubbleRadius })},
		{"large-speed", "BUBBLES_LARGE_SPEED", ftoa(def.LargeBubbleSpeed), "max speed per axis of large bubbles",
			floatSetter(func(c *Config) *float64 { return &c.Simulation.LargeBubbleSpeed })},
		{"small-count", "BUBBLES_SMALL_COUNT", strconv.Itoa(def.SmallBubbleCount), "number of small bubbles",
			intSetter(func(c *Config) *int { return &c.Simulation.SmallBubbleCount })},
		{"small-radius", "BUBBLES_SMALL_RADIUS", ftoa(def.SmallBubbleRadius), "base radius of small bubbles",
			floatSetter(func(c *Config) *float64 { return &c.Simulation.SmallBubbleRadius })},
		{"small-speed", "BUBBLES_SMALL_SPEED", ftoa(def.SmallBubbleSpeed), "max speed per axis of small bubbles",
			floatSetter(func(c *Config) *float64 { return &c.Simulation.SmallBubbleSpeed })},
		{"pairwise", "BUBBLES_PAIRWISE", "false", "enable elastic bubble-bubble collisions",
			func(c *Config, v string) error {
				b, err := strconv.ParseBool(v)
				c.Simulation.PairwiseCollisions = b
				return err
			}},
		{"width", "BUBBLES_WIDTH", "1024", "canvas width in pixels",
			intSetter(func(c *Config) *int { return &c.Width })},
		{"height", "BUBBLES_HEIGHT", "768", "canvas height in pixels",
			intSetter(func(c *Config) *int { return &c.Height })},
		{"title", "BUBBLES_TITLE", "Bubbles", "window title",
			func(c *Config, v string) error { c.Title = v; return nil }},
		{"seed", "BUBBLES_SEED", "0", "random seed; 0 seeds from the clock",
			func(c *Config, v string) error {
				n, err := strconv.ParseInt(v, 10, 64)
				c.Seed = n
				return err
			}},
		{"log-level", "BUBBLES_LOG_LEVEL", "info", "log level: debug, info, warn, error",
			func(c *Config, v string) error { c.LogLevel = v; return nil }},
		{"fps", "BUBBLES_FPS", "60", "frames per second of the headless ticker",
			intSetter(func(c *Config) *int { return &c.FPS })},
		{"frames", "BUBBLES_FRAMES", "0", "number of frames for a headless run; 0 runs until interrupted",
			intSetter(func(c *Config) *int { return &c.Frames })},
		{"tick-interval", "BUBBLES_TICK_INTERVAL", "0s", "synthetic frame step for headless runs; 0 uses the wall clock",
			func(c *Config, v string) error {
				d, err := time.ParseDuration(v)
				c.TickInterval = d
				return err
			}},
		{"snapshot", "BUBBLES_SNAPSHOT", "", "write a PNG of the last frame to this path",
			func(c *Config, v string) error { c.Snapshot = v; return nil }},
	}
}

// Load resolves the configuration. Flags win over environment variables, which win over defaults.
func Load(name string, args []string, getenv func(string) string, output io.Writer) (Config, error) {
	var cfg Config
	rs := resolvers()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	flagVars := make(map[string]*string, len(rs))
	for _, r := range rs {
		flagVars[r.flagName] = fs.String(r.flagName, "", fmt.Sprintf("%s (env %s, default %q)", r.description, r.envVarName, r.defaultVal))
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	for _, r := range rs {
		value := r.defaultVal
		if v := *flagVars[r.flagName]; v != "" {
			value = v
		} else if v := getenv(r.envVarName); v != "" {
			value = v
		}
		if err := r.setter(&cfg, value); err != nil {
			return cfg, fmt.Errorf("invalid value %q for %s: %w", value, r.flagName, err)
		}
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("canvas size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FPS <= 0 {
		return cfg, fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	if cfg.Frames < 0 {
		return cfg, fmt.Errorf("frames must not be negative, got %d", cfg.Frames)
	}
	cfg.Simulation = cfg.Simulation.Normalize()
	return cfg, nil
}
