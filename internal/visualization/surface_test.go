package visualization

import (
	"math"
	"testing"

	"bubbles-sim/internal/simulation"
)

func TestImageSurfaceWithoutTarget(t *testing.T) {
	s := NewImageSurface(nil)
	s.SetFillStyle(simulation.OverlayColor)
	s.FillRect(0, 0, 10, 10)
	s.BeginPath()
	s.Arc(5, 5, 2, 0, 2*math.Pi)
	s.Arc(7, 7, 1, 0, 2*math.Pi)
	s.ClosePath()
	s.Fill()
	s.Stroke()

	if len(s.path) != 2 {
		t.Errorf("Expected 2 recorded arcs, got %d", len(s.path))
	}
	s.BeginPath()
	if len(s.path) != 0 {
		t.Errorf("Expected BeginPath to reset the path, got %d arcs", len(s.path))
	}
}
