package simulation

import (
	"fmt"

	"bubbles-sim/internal/common"

	"github.com/google/uuid"
)

// Point is anything that exposes planar coordinates.
type Point interface {
	Coords() (float64, float64)
}

type inputKind int

const (
	inputUnknown inputKind = iota
	inputPair
	inputPoint
)

// VectorInput is the accepted argument of SetPosition and SetVelocity: either an ordered
// pair or a coordinate-like value. The zero value is unrecognized input and resolves to (0, 0).
type VectorInput struct {
	kind  inputKind
	pair  []float64
	point Point
}

// FromPair builds an input from an ordered pair. Pairs shorter than two elements are unrecognized.
func FromPair(pair ...float64) VectorInput {
	return VectorInput{kind: inputPair, pair: pair}
}

// FromPoint builds an input from a coordinate-like value. A nil Point is unrecognized.
func FromPoint(p Point) VectorInput {
	return VectorInput{kind: inputPoint, point: p}
}

// Vector resolves the input to a vector.
func (in VectorInput) Vector() common.Vector {
	switch in.kind {
	case inputPair:
		if len(in.pair) >= 2 {
			return common.NewVector(in.pair[0], in.pair[1])
		}
	case inputPoint:
		if in.point != nil {
			return common.NewVector(in.point.Coords())
		}
	}
	return common.Vector{}
}

// Shape is the moving body shared by every shape kind: identity, position and velocity.
type Shape struct {
	id       string
	position common.Vector
	velocity common.Vector
}

func newShape(pos, vel VectorInput) Shape {
	s := Shape{id: fmt.Sprintf("shape-%s", uuid.NewString()[:8])}
	s.SetPosition(pos)
	s.SetVelocity(vel)
	return s
}

// GetID returns the unique identifier of the shape.
func (s *Shape) GetID() string {
	return s.id
}

// SetPosition replaces the position.
func (s *Shape) SetPosition(in VectorInput) {
	s.position = in.Vector()
}

// SetVelocity replaces the velocity.
func (s *Shape) SetVelocity(in VectorInput) {
	s.velocity = in.Vector()
}

// Position returns the raw position.
func (s *Shape) Position() common.Vector {
	return s.position
}

// Velocity returns the raw velocity.
func (s *Shape) Velocity() common.Vector {
	return s.velocity
}

// GetPosition returns the position truncated toward zero, in whole pixels.
func (s *Shape) GetPosition() [2]int {
	return [2]int{int(s.position.X), int(s.position.Y)}
}

// GetVelocity returns the velocity as an ordered pair.
func (s *Shape) GetVelocity() [2]float64 {
	return [2]float64{s.velocity.X, s.velocity.Y}
}

// CollisionVector returns the velocity of a after an elastic collision with b.
// Coincident centers divide by zero and the result carries NaN components.
func CollisionVector(a, b *Circle) common.Vector {
	dPos := a.position.Subtract(b.position)
	dVel := a.velocity.Subtract(b.velocity)
	dist := dPos.Magnitude()
	scale := dVel.DotProduct(dPos) / (dist * dist)
	return a.velocity.Subtract(dPos.Multiply(scale).Multiply(2 * b.Mass() / (a.Mass() + b.Mass())))
}

// String representation for logging
func (s *Shape) String() string {
	return fmt.Sprintf("Shape[%s] Pos: %s Vel: %s", s.id, s.position, s.velocity)
}
