package simulation

import "bubbles-sim/internal/common"

// BoundingBox is an axis-aligned bounding box in canvas coordinates (Y grows downwards).
type BoundingBox struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Bounded is implemented by shapes that can report an axis-aligned bounding box.
type Bounded interface {
	AABB() BoundingBox
}

// Integrator is implemented by shapes that advance their position from their velocity.
type Integrator interface {
	UpdatePosition(deltaTime float64)
}

// Body defines the interface for any moving object within the simulation.
type Body interface {
	Bounded
	Integrator
	// GetID returns the unique identifier of the object.
	GetID() string
	// Position returns the raw position of the object.
	Position() common.Vector
	// Update advances the object by one tick inside the given world.
	Update(deltaTime float64, world *World)
}

// Logger interface for logging operations, injectable into the simulation package.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

// NoOpLogger is a logger that does nothing.
type NoOpLogger struct{}

func (n *NoOpLogger) Debugf(format string, v ...any) {}
func (n *NoOpLogger) Infof(format string, v ...any)  {}
func (n *NoOpLogger) Warnf(format string, v ...any)  {}
func (n *NoOpLogger) Errorf(format string, v ...any) {}
