package clock

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFrameClockAdvance(t *testing.T) {
	c := New()
	if f := c.Frame(); f != (Frame{}) {
		t.Fatalf("Expected initial frame (0,0,0), got %s", f)
	}

	f := c.Advance(16)
	if f.Previous != 0 || f.Current != 16 || f.Delta != 0.016 {
		t.Errorf("Unexpected first frame %s", f)
	}

	f = c.Advance(48)
	if f.Previous != 16 || f.Current != 48 || f.Delta != 0.032 {
		t.Errorf("Unexpected second frame %s", f)
	}
}

func TestFrameClockDuplicateTimestamp(t *testing.T) {
	c := New()
	c.Advance(100)
	first := c.Advance(250)
	second := c.Advance(250)

	if first != second {
		t.Errorf("Expected duplicate timestamp to keep frame %s, got %s", first, second)
	}
	if second.Previous != 100 {
		t.Errorf("Expected previous 100, got %f", second.Previous)
	}
}

func TestFrameClockInitialDuplicate(t *testing.T) {
	c := New()
	if f := c.Advance(0); f != (Frame{}) {
		t.Errorf("Expected timestamp 0 on a fresh clock to be a no-op, got %s", f)
	}
}

func TestSteppedSource(t *testing.T) {
	tests := []struct {
		name     string
		source   *Stepped
		ctx      func() (context.Context, context.CancelFunc)
		fnErr    error
		wantErr  error
		wantCall int
	}{
		{
			name:     "bounded frames",
			source:   &Stepped{Step: 10 * time.Millisecond, Frames: 5},
			ctx:      func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) },
			wantCall: 5,
		},
		{
			name:   "cancelled context",
			source: &Stepped{Step: time.Millisecond},
			ctx: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx, cancel
			},
			wantErr:  context.Canceled,
			wantCall: 0,
		},
		{
			name:     "callback error stops",
			source:   &Stepped{Step: time.Millisecond, Frames: 10},
			ctx:      func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) },
			fnErr:    errors.New("boom"),
			wantCall: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			defer cancel()

			var stamps []float64
			err := tt.source.Run(ctx, func(ts float64) error {
				stamps = append(stamps, ts)
				return tt.fnErr
			})

			wantErr := tt.wantErr
			if tt.fnErr != nil {
				wantErr = tt.fnErr
			}
			if !errors.Is(err, wantErr) && !(err == nil && wantErr == nil) {
				t.Errorf("Expected error %v, got %v", wantErr, err)
			}
			if len(stamps) != tt.wantCall {
				t.Fatalf("Expected %d calls, got %d", tt.wantCall, len(stamps))
			}
			for i, ts := range stamps {
				want := float64(i+1) * float64(tt.source.Step) / float64(time.Millisecond)
				if ts != want {
					t.Errorf("Timestamp %d: expected %f, got %f", i, want, ts)
				}
			}
		})
	}
}

func TestSteppedInvalidStep(t *testing.T) {
	s := &Stepped{}
	if err := s.Run(context.Background(), func(float64) error { return nil }); err == nil {
		t.Error("Expected error for zero step")
	}
}

func TestTickerCancellation(t *testing.T) {
	ticker, err := NewTicker(200)
	if err != nil {
		t.Fatalf("NewTicker failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	var last float64
	err = ticker.Run(ctx, func(ts float64) error {
		calls++
		if ts <= last {
			t.Errorf("Expected increasing timestamps, got %f after %f", ts, last)
		}
		last = ts
		if calls == 3 {
			cancel()
		}
		return nil
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if calls < 3 {
		t.Errorf("Expected at least 3 calls, got %d", calls)
	}
}

func TestNewTickerInvalid(t *testing.T) {
	if _, err := NewTicker(0); err == nil {
		t.Error("Expected error for zero fps")
	}
}

func TestLimit(t *testing.T) {
	calls := 0
	src := Limit(&Stepped{Step: time.Millisecond}, 4)
	err := src.Run(context.Background(), func(float64) error {
		calls++
		return nil
	})
	if !errors.Is(err, ErrFrameLimit) {
		t.Errorf("Expected ErrFrameLimit, got %v", err)
	}
	if calls != 4 {
		t.Errorf("Expected 4 calls, got %d", calls)
	}
}
