package simulation

import (
	"fmt"
	"image/color"
	"math"
	"testing"

	"bubbles-sim/internal/common"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// recordingSurface records every draw call as a string.
type recordingSurface struct {
	calls  []string
	onFill func()
}

func (r *recordingSurface) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingSurface) SetFillStyle(c color.Color)   { r.record("fillStyle %v", c) }
func (r *recordingSurface) SetStrokeStyle(c color.Color) { r.record("strokeStyle %v", c) }
func (r *recordingSurface) SetLineWidth(w float64)       { r.record("lineWidth %g", w) }
func (r *recordingSurface) FillRect(x, y, w, h float64)  { r.record("fillRect %g %g %g %g", x, y, w, h) }
func (r *recordingSurface) BeginPath()                   { r.record("beginPath") }
func (r *recordingSurface) Arc(x, y, radius, start, end float64) {
	r.record("arc %g %g %g %g %.4f", x, y, radius, start, end)
}
func (r *recordingSurface) ClosePath() { r.record("closePath") }
func (r *recordingSurface) Fill() {
	r.record("fill")
	if r.onFill != nil {
		r.onFill()
	}
}
func (r *recordingSurface) Stroke() { r.record("stroke") }

func (r *recordingSurface) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func mustCircle(t *testing.T, pos common.Vector, radius float64, vel common.Vector) *Circle {
	t.Helper()
	c, err := NewCircle(FromPoint(pos), radius, WithVelocity(FromPoint(vel)))
	if err != nil {
		t.Fatalf("NewCircle failed: %v", err)
	}
	return c
}
