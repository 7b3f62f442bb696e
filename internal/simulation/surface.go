package simulation

import (
	"image/color"
	"math"
)

// Surface is the 2D drawing target a Simulation paints into once per tick.
type Surface interface {
	SetFillStyle(c color.Color)
	SetStrokeStyle(c color.Color)
	SetLineWidth(width float64)
	FillRect(x, y, w, h float64)
	BeginPath()
	Arc(x, y, radius, startAngle, endAngle float64)
	ClosePath()
	Fill()
	Stroke()
}

var (
	// OverlayColor is laid over the previous frame instead of clearing it, leaving motion trails.
	OverlayColor = color.NRGBA{R: 35, G: 35, B: 35, A: 191}
	// BubbleFillColor is used for every circle regardless of its own color.
	BubbleFillColor = color.NRGBA{R: 86, G: 139, B: 214, A: 128}
	// BubbleStrokeColor outlines every circle.
	BubbleStrokeColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

const bubbleLineWidth = 1.0

func clearSurface(s Surface, width, height float64) {
	s.SetFillStyle(OverlayColor)
	s.FillRect(0, 0, width, height)
}

func drawCircle(s Surface, c *Circle) {
	pos := c.GetPosition()
	s.BeginPath()
	s.Arc(float64(pos[0]), float64(pos[1]), c.radius, 0, 2*math.Pi)
	s.ClosePath()

	s.SetFillStyle(BubbleFillColor)
	s.SetStrokeStyle(BubbleStrokeColor)
	s.SetLineWidth(bubbleLineWidth)
	s.Fill()
	s.Stroke()
}
