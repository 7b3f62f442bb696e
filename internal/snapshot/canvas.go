// Package snapshot renders simulation frames in memory and encodes them as PNG.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"
)

// CanvasSurface draws simulation frames in memory with the canvas software renderer.
type CanvasSurface struct {
	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas
}

// NewCanvasSurface creates an in-memory surface of the given size.
func NewCanvasSurface(width, height int) (*CanvasSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", width, height)
	}
	backend := softwarebackend.New(width, height)
	return &CanvasSurface{backend: backend, cv: canvas.New(backend)}, nil
}

func (s *CanvasSurface) SetFillStyle(c color.Color)   { s.cv.SetFillStyle(c) }
func (s *CanvasSurface) SetStrokeStyle(c color.Color) { s.cv.SetStrokeStyle(c) }
func (s *CanvasSurface) SetLineWidth(width float64)   { s.cv.SetLineWidth(width) }
func (s *CanvasSurface) FillRect(x, y, w, h float64)  { s.cv.FillRect(x, y, w, h) }
func (s *CanvasSurface) BeginPath()                   { s.cv.BeginPath() }
func (s *CanvasSurface) ClosePath()                   { s.cv.ClosePath() }
func (s *CanvasSurface) Fill()                        { s.cv.Fill() }
func (s *CanvasSurface) Stroke()                      { s.cv.Stroke() }

func (s *CanvasSurface) Arc(x, y, radius, startAngle, endAngle float64) {
	s.cv.Arc(x, y, radius, startAngle, endAngle, false)
}

// Image returns the rendered pixels.
func (s *CanvasSurface) Image() image.Image {
	return s.backend.Image
}

// WritePNG encodes the current frame as PNG.
func (s *CanvasSurface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.backend.Image); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
