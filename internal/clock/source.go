package clock

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// FrameFunc is called once per animation frame with a timestamp in milliseconds.
// Returning an error stops the source.
type FrameFunc func(timestamp float64) error

// Source delivers animation-frame timestamps until its context is done.
type Source interface {
	// Run calls fn once per frame. It returns ctx.Err() when cancelled, or the first
	// error returned by fn.
	Run(ctx context.Context, fn FrameFunc) error
}

// Ticker is a wall-clock source firing every Interval. Timestamps are milliseconds since Run started.
type Ticker struct {
	Interval time.Duration
}

// NewTicker creates a ticker source for the given frame rate.
func NewTicker(fps int) (*Ticker, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("frame rate must be positive, got %d", fps)
	}
	return &Ticker{Interval: time.Second / time.Duration(fps)}, nil
}

func (t *Ticker) Run(ctx context.Context, fn FrameFunc) error {
	if t.Interval <= 0 {
		return fmt.Errorf("ticker interval must be positive, got %s", t.Interval)
	}
	start := time.Now()
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			ms := float64(now.Sub(start)) / float64(time.Millisecond)
			if err := fn(ms); err != nil {
				return err
			}
		}
	}
}

// Stepped is a synthetic source that delivers timestamps Step apart without waiting.
// Frames bounds the number of timestamps; zero runs until the context is done.
type Stepped struct {
	Step   time.Duration
	Frames int
}

func (s *Stepped) Run(ctx context.Context, fn FrameFunc) error {
	if s.Step <= 0 {
		return fmt.Errorf("step must be positive, got %s", s.Step)
	}
	stepMs := float64(s.Step) / float64(time.Millisecond)
	for i := 1; s.Frames == 0 || i <= s.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(float64(i) * stepMs); err != nil {
			return err
		}
	}
	return nil
}

// ErrFrameLimit is returned by a Limit source once its frame budget is spent.
var ErrFrameLimit = errors.New("frame limit reached")

type limited struct {
	src    Source
	frames int
}

// Limit wraps src so that it stops with ErrFrameLimit after frames timestamps.
func Limit(src Source, frames int) Source {
	return &limited{src: src, frames: frames}
}

func (l *limited) Run(ctx context.Context, fn FrameFunc) error {
	n := 0
	return l.src.Run(ctx, func(ts float64) error {
		if err := fn(ts); err != nil {
			return err
		}
		n++
		if n >= l.frames {
			return ErrFrameLimit
		}
		return nil
	})
}
