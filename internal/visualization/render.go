package visualization

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bubbles-sim/internal/clock"
	"bubbles-sim/internal/simulation"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Window implements ebiten.Game and acts as the animation-frame source of a simulation.
// Frames are painted into a persistent off-screen canvas so the translucent overlay
// leaves trails; Draw copies the canvas to the screen.
type Window struct {
	sim   *simulation.Simulation
	title string

	screenWidth  int
	screenHeight int

	canvas  *ebiten.Image
	surface *ImageSurface

	ctx      context.Context
	onFrame  clock.FrameFunc
	start    time.Time
	frameErr error

	ShowDebug bool
}

// NewWindow creates a window of the given size showing sim.
func NewWindow(sim *simulation.Simulation, title string, width, height int) *Window {
	return &Window{
		sim:          sim,
		title:        title,
		screenWidth:  width,
		screenHeight: height,
		surface:      NewImageSurface(nil),
		ShowDebug:    true,
	}
}

// Surface returns the surface the window's canvas is drawn through.
func (w *Window) Surface() simulation.Surface {
	return w.surface
}

// Run opens the window and calls fn once per ebiten tick with the milliseconds elapsed
// since the window opened. It returns when the window is closed, ctx is done, or fn fails.
func (w *Window) Run(ctx context.Context, fn clock.FrameFunc) error {
	w.ctx = ctx
	w.onFrame = fn
	w.start = time.Now()

	ebiten.SetWindowSize(w.screenWidth, w.screenHeight)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(w)
	if w.frameErr != nil {
		return w.frameErr
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update is called every tick and advances the simulation by one frame.
func (w *Window) Update() error {
	if w.ctx != nil && w.ctx.Err() != nil {
		return ebiten.Termination
	}
	w.ensureCanvas()
	if w.onFrame == nil {
		return nil
	}

	ms := float64(time.Since(w.start)) / float64(time.Millisecond)
	if err := w.onFrame(ms); err != nil {
		w.frameErr = fmt.Errorf("frame at %.1fms: %w", ms, err)
		return ebiten.Termination
	}
	return nil
}

// ensureCanvas (re)allocates the off-screen canvas to match the screen.
func (w *Window) ensureCanvas() {
	if w.canvas != nil {
		bounds := w.canvas.Bounds()
		if bounds.Dx() == w.screenWidth && bounds.Dy() == w.screenHeight {
			return
		}
		w.canvas.Deallocate()
	}
	w.canvas = ebiten.NewImage(w.screenWidth, w.screenHeight)
	w.surface.SetTarget(w.canvas)
}

// Draw is called every frame to show the canvas.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.canvas != nil {
		screen.DrawImage(w.canvas, nil)
	}
	if w.ShowDebug {
		w.drawDebugInfo(screen)
	}
}

func (w *Window) drawDebugInfo(screen *ebiten.Image) {
	msg := fmt.Sprintf("FPS: %.1f, TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	msg += fmt.Sprintf("Canvas: %.0fx%.0f\n", w.sim.Width(), w.sim.Height())
	msg += w.sim.Stats().String()
	ebitenutil.DebugPrint(screen, msg)
}

// Layout is called when the window size changes. A new size reseeds the simulation.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != w.screenWidth || outsideHeight != w.screenHeight) {
		w.screenWidth = outsideWidth
		w.screenHeight = outsideHeight
		w.sim.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return w.screenWidth, w.screenHeight
}
