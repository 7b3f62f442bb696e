package simulation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"bubbles-sim/internal/clock"
	"bubbles-sim/internal/common"
)

// ErrInvalidDimensions is returned when the canvas size is not positive.
var ErrInvalidDimensions = errors.New("canvas dimensions must be positive")

// World is the state a circle sees while it updates.
type World struct {
	Width      float64
	Height     float64
	Circles    []*Circle
	Collisions *CollisionTable
	Pairwise   bool
}

// reseedRequest is a pending population replacement, applied at the next tick boundary.
type reseedRequest struct {
	settings Settings
	width    float64
	height   float64
}

// Simulation owns the circle population and advances and draws it once per tick.
type Simulation struct {
	width      float64
	height     float64
	settings   Settings
	circles    []*Circle
	collisions *CollisionTable
	ticks      uint64

	rng    *rand.Rand
	logger Logger

	mu      sync.Mutex // guards pending
	pending *reseedRequest
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithRand sets the random source used for seeding.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) { s.rng = rng }
}

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(s *Simulation) { s.logger = logger }
}

// NewSimulation creates a simulation for a canvas of the given size and seeds its population.
func NewSimulation(width, height float64, settings Settings, opts ...Option) (*Simulation, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("new simulation %vx%v: %w", width, height, ErrInvalidDimensions)
	}

	s := &Simulation{
		width:      width,
		height:     height,
		settings:   settings.Normalize(),
		collisions: NewCollisionTable(),
		logger:     &NoOpLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if err := s.reseed(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reconfigure queues a reseed with new settings for the next tick.
func (s *Simulation) Reconfigure(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req := s.pendingLocked()
	req.settings = settings.Normalize()
}

// Resize queues a reseed for a new canvas size. Unchanged or non-positive sizes are ignored.
func (s *Simulation) Resize(width, height float64) {
	if !(width > 0) || !(height > 0) {
		s.logger.Warnf("ignoring resize to %vx%v: %v", width, height, ErrInvalidDimensions)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	curW, curH := s.width, s.height
	if s.pending != nil {
		curW, curH = s.pending.width, s.pending.height
	}
	if width == curW && height == curH {
		return
	}
	req := s.pendingLocked()
	req.width, req.height = width, height
}

// pendingLocked returns the pending request, creating one from the current state. s.mu must be held.
func (s *Simulation) pendingLocked() *reseedRequest {
	if s.pending == nil {
		s.pending = &reseedRequest{settings: s.settings, width: s.width, height: s.height}
	}
	return s.pending
}

// Watch forwards settings from updates into Reconfigure until ctx is done or updates is closed.
func (s *Simulation) Watch(ctx context.Context, updates <-chan Settings) {
	for {
		select {
		case <-ctx.Done():
			return
		case settings, ok := <-updates:
			if !ok {
				return
			}
			s.Reconfigure(settings)
		}
	}
}

// applyPending performs a queued reseed, if any.
func (s *Simulation) applyPending() error {
	s.mu.Lock()
	req := s.pending
	s.pending = nil
	s.mu.Unlock()

	if req == nil {
		return nil
	}
	s.settings = req.settings
	s.width, s.height = req.width, req.height
	return s.reseed()
}

// reseed discards the population and generates a new one from the current settings.
func (s *Simulation) reseed() error {
	circles := make([]*Circle, 0, s.settings.Total())
	for _, class := range s.settings.classes() {
		for i := 0; i < class.count; i++ {
			pos := common.NewRandomVector(s.rng,
				class.inset, s.width-class.inset,
				class.inset, s.height-class.inset)
			vel := common.NewRandomVector(s.rng,
				-class.speed, class.speed,
				-class.speed, class.speed)
			radius := common.RandomInRange(s.rng, class.minRadius, class.maxRadius)

			circle, err := NewCircle(FromPoint(pos), radius, WithVelocity(FromPoint(vel)))
			if err != nil {
				return fmt.Errorf("failed to seed circle %d: %w", len(circles), err)
			}
			circles = append(circles, circle)
		}
	}

	s.circles = circles
	s.collisions.Reset()
	s.logger.Infof("seeded %d circles on %vx%v canvas (%s)", len(circles), s.width, s.height, s.settings)
	return nil
}

// Tick advances every circle by deltaTime seconds and draws the frame onto surface.
func (s *Simulation) Tick(deltaTime float64, surface Surface) error {
	if err := s.applyPending(); err != nil {
		return fmt.Errorf("reseed failed: %w", err)
	}

	world := &World{
		Width:      s.width,
		Height:     s.height,
		Circles:    s.circles,
		Collisions: s.collisions,
		Pairwise:   s.settings.PairwiseCollisions,
	}

	clearSurface(surface, s.width, s.height)
	for _, circle := range s.circles {
		circle.Update(deltaTime, world)
		drawCircle(surface, circle)
	}
	s.collisions.Reset()

	s.ticks++
	s.logger.Debugf("tick %d dt=%.4fs circles=%d", s.ticks, deltaTime, len(s.circles))
	return nil
}

// Run drives Tick from src until the source stops.
func (s *Simulation) Run(ctx context.Context, src clock.Source, surface Surface) error {
	frames := clock.New()
	s.logger.Infof("starting simulation: %vx%v, %d circles", s.width, s.height, len(s.circles))
	err := src.Run(ctx, func(timestamp float64) error {
		frame := frames.Advance(timestamp)
		return s.Tick(frame.Delta, surface)
	})
	s.logger.Infof("simulation stopped after %d ticks", s.ticks)
	return err
}

// Ticks returns the number of completed draw passes.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// Circles returns the current population in draw order.
func (s *Simulation) Circles() []*Circle {
	circles := make([]*Circle, len(s.circles))
	copy(circles, s.circles)
	return circles
}

// Width returns the canvas width.
func (s *Simulation) Width() float64 {
	return s.width
}

// Height returns the canvas height.
func (s *Simulation) Height() float64 {
	return s.height
}

// Settings returns the settings the current population was seeded from.
func (s *Simulation) Settings() Settings {
	return s.settings
}

// Collisions returns the per-tick collision table.
func (s *Simulation) Collisions() *CollisionTable {
	return s.collisions
}

// Stats returns population statistics.
func (s *Simulation) Stats() Stats {
	return ComputeStats(s.ticks, s.circles)
}

// PrintState prints the current positions of all circles.
func (s *Simulation) PrintState() {
	fmt.Println("--- Current Simulation State ---")
	fmt.Printf("Canvas: %vx%v, Ticks: %d\n", s.width, s.height, s.ticks)
	if len(s.circles) == 0 {
		fmt.Println("  None")
	}
	for _, c := range s.circles {
		fmt.Printf("  %s\n", c)
	}
	fmt.Println("-----------------------------")
}
