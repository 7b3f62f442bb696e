package simulation

import (
	"fmt"
	"math"
)

// Settings is the host-supplied configuration the population is seeded from.
type Settings struct {
	LargeBubbleCount  int
	LargeBubbleRadius float64 // base size of the large class
	LargeBubbleSpeed  float64 // max speed per axis
	SmallBubbleCount  int
	SmallBubbleRadius float64 // base size of the small class
	SmallBubbleSpeed  float64

	// PairwiseCollisions enables elastic circle-circle collisions. Off by default:
	// circles only bounce off the walls.
	PairwiseCollisions bool
}

// DefaultSettings returns the host defaults.
func DefaultSettings() Settings {
	return Settings{
		LargeBubbleCount:  10,
		LargeBubbleRadius: 25,
		LargeBubbleSpeed:  150,
		SmallBubbleCount:  10,
		SmallBubbleRadius: 5,
		SmallBubbleSpeed:  150,
	}
}

// Normalize clamps negative counts to zero, replaces non-positive radii with the defaults
// and negative speeds with their magnitude.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()
	s.LargeBubbleCount = max(s.LargeBubbleCount, 0)
	s.SmallBubbleCount = max(s.SmallBubbleCount, 0)
	if !(s.LargeBubbleRadius > 0) {
		s.LargeBubbleRadius = def.LargeBubbleRadius
	}
	if !(s.SmallBubbleRadius > 0) {
		s.SmallBubbleRadius = def.SmallBubbleRadius
	}
	s.LargeBubbleSpeed = math.Abs(s.LargeBubbleSpeed)
	s.SmallBubbleSpeed = math.Abs(s.SmallBubbleSpeed)
	return s
}

// Total returns the number of circles a reseed produces.
func (s Settings) Total() int {
	return s.LargeBubbleCount + s.SmallBubbleCount
}

func (s Settings) String() string {
	return fmt.Sprintf("large=%d(r=%.1f,v=%.1f) small=%d(r=%.1f,v=%.1f) pairwise=%t",
		s.LargeBubbleCount, s.LargeBubbleRadius, s.LargeBubbleSpeed,
		s.SmallBubbleCount, s.SmallBubbleRadius, s.SmallBubbleSpeed,
		s.PairwiseCollisions)
}

// sizeClass describes how one class of circles is drawn at random.
type sizeClass struct {
	count     int
	minRadius float64
	maxRadius float64
	inset     float64
	speed     float64
}

func (s Settings) classes() []sizeClass {
	return []sizeClass{
		{
			count:     s.LargeBubbleCount,
			minRadius: s.LargeBubbleRadius,
			maxRadius: s.LargeBubbleRadius * 3,
			inset:     s.LargeBubbleRadius * 2,
			speed:     s.LargeBubbleSpeed,
		},
		{
			count:     s.SmallBubbleCount,
			minRadius: math.Min(1, s.SmallBubbleRadius),
			maxRadius: s.SmallBubbleRadius,
			inset:     s.SmallBubbleRadius * 2,
			speed:     s.SmallBubbleSpeed,
		},
	}
}
