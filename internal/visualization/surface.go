package visualization

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type arc struct {
	x, y, radius float32
}

// ImageSurface draws simulation frames into an ebiten image.
// Arcs are rendered as full circles. Calls are dropped while no target is set.
type ImageSurface struct {
	target    *ebiten.Image
	fill      color.Color
	stroke    color.Color
	lineWidth float32
	path      []arc
}

// NewImageSurface creates a surface drawing into target.
func NewImageSurface(target *ebiten.Image) *ImageSurface {
	return &ImageSurface{
		target:    target,
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
	}
}

// SetTarget replaces the image drawn into.
func (s *ImageSurface) SetTarget(target *ebiten.Image) {
	s.target = target
}

func (s *ImageSurface) SetFillStyle(c color.Color)   { s.fill = c }
func (s *ImageSurface) SetStrokeStyle(c color.Color) { s.stroke = c }
func (s *ImageSurface) SetLineWidth(width float64)   { s.lineWidth = float32(width) }

func (s *ImageSurface) FillRect(x, y, w, h float64) {
	if s.target == nil {
		return
	}
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), s.fill, false)
}

func (s *ImageSurface) BeginPath() {
	s.path = s.path[:0]
}

func (s *ImageSurface) Arc(x, y, radius, startAngle, endAngle float64) {
	s.path = append(s.path, arc{x: float32(x), y: float32(y), radius: float32(radius)})
}

func (s *ImageSurface) ClosePath() {}

func (s *ImageSurface) Fill() {
	if s.target == nil {
		return
	}
	for _, a := range s.path {
		vector.DrawFilledCircle(s.target, a.x, a.y, a.radius, s.fill, true)
	}
}

func (s *ImageSurface) Stroke() {
	if s.target == nil {
		return
	}
	for _, a := range s.path {
		vector.StrokeCircle(s.target, a.x, a.y, a.radius, s.lineWidth, s.stroke, true)
	}
}
