// Package clock turns animation-frame timestamps into frame deltas and provides
// tick sources that deliver those timestamps.
package clock

import "fmt"

// Frame is the timing state of one tick. Timestamps are in milliseconds, Delta in seconds.
type Frame struct {
	Previous float64
	Current  float64
	Delta    float64
}

func (f Frame) String() string {
	return fmt.Sprintf("Frame[prev=%.3fms cur=%.3fms dt=%.4fs]", f.Previous, f.Current, f.Delta)
}

// FrameClock converts a stream of timestamps into frames. The zero value starts at (0, 0, 0).
type FrameClock struct {
	frame Frame
}

// New creates a new frame clock.
func New() *FrameClock {
	return &FrameClock{}
}

// Advance records a new timestamp and returns the resulting frame.
// A timestamp equal to the current one leaves the frame unchanged.
func (c *FrameClock) Advance(timestamp float64) Frame {
	if timestamp == c.frame.Current {
		return c.frame
	}
	c.frame = Frame{
		Previous: c.frame.Current,
		Current:  timestamp,
		Delta:    (timestamp - c.frame.Current) / 1000,
	}
	return c.frame
}

// Frame returns the current frame.
func (c *FrameClock) Frame() Frame {
	return c.frame
}
