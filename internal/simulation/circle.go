package simulation

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

const (
	// collisionLossFactor scales velocities produced by a pairwise collision.
	collisionLossFactor = 1.0
	// collisionSpeedLimit bounds each velocity axis after a pairwise collision.
	collisionSpeedLimit = 150.0
)

// ErrInvalidRadius is returned when a circle is built with a non-positive radius.
var ErrInvalidRadius = errors.New("radius must be positive")

// DefaultCircleColor is the neutral gray given to circles built without a color.
var DefaultCircleColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

// Circle is a round body bouncing inside the world.
type Circle struct {
	Shape
	radius float64
	color  color.Color
}

// CircleOption configures optional circle properties.
type CircleOption func(*circleOptions)

type circleOptions struct {
	velocity VectorInput
	color    color.Color
}

// WithVelocity sets the initial velocity. Circles start at rest otherwise.
func WithVelocity(vel VectorInput) CircleOption {
	return func(o *circleOptions) { o.velocity = vel }
}

// WithColor sets the circle color.
func WithColor(c color.Color) CircleOption {
	return func(o *circleOptions) { o.color = c }
}

// NewCircle creates a new circle centered at pos.
func NewCircle(pos VectorInput, radius float64, opts ...CircleOption) (*Circle, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("new circle with radius %v: %w", radius, ErrInvalidRadius)
	}
	o := circleOptions{color: DefaultCircleColor}
	for _, opt := range opts {
		opt(&o)
	}
	if o.color == nil {
		o.color = DefaultCircleColor
	}
	return &Circle{
		Shape:  newShape(pos, o.velocity),
		radius: radius,
		color:  o.color,
	}, nil
}

// Radius returns the circle radius.
func (c *Circle) Radius() float64 {
	return c.radius
}

// Color returns the circle color.
func (c *Circle) Color() color.Color {
	return c.color
}

// Mass returns 4·π·r². This is the simulation's notion of mass, not the disc area.
func (c *Circle) Mass() float64 {
	return 4 * math.Pi * c.radius * c.radius
}

// HasIntersection reports whether the two circles touch or overlap.
func (c *Circle) HasIntersection(other *Circle) bool {
	return c.HasIntersectionAt(other.position.X, other.position.Y, other.radius)
}

// HasIntersectionAt is HasIntersection against a circle given by center and radius.
func (c *Circle) HasIntersectionAt(x, y, radius float64) bool {
	return math.Hypot(c.position.X-x, c.position.Y-y) <= c.radius+radius
}

// AABB returns the bounding box around the current position.
func (c *Circle) AABB() BoundingBox {
	return BoundingBox{
		Left:   c.position.X - c.radius,
		Right:  c.position.X + c.radius,
		Top:    c.position.Y - c.radius,
		Bottom: c.position.Y + c.radius,
	}
}

// UpdatePosition moves the circle along its velocity for deltaTime seconds.
func (c *Circle) UpdatePosition(deltaTime float64) {
	c.position = c.position.Add(c.velocity.Multiply(deltaTime))
}

// ResolveBoundary bounces the circle off the world edges.
//
// Touching a side wall flips vx and pins the circle inside every edge it touches, the
// top and bottom included. Touching the top or bottom flips vy without moving the circle.
func (c *Circle) ResolveBoundary(world *World) {
	box := c.AABB()

	if box.Left <= 0 || box.Right >= world.Width {
		c.velocity.X = -c.velocity.X

		if box.Left <= 0 {
			c.position.X = c.radius
		}
		if box.Right >= world.Width {
			c.position.X = world.Width - c.radius
		}
		if box.Top <= 0 {
			c.position.Y = c.radius
		}
		if box.Bottom >= world.Height {
			c.position.Y = world.Height - c.radius
		}
	}
	if box.Top <= 0 || box.Bottom >= world.Height {
		c.velocity.Y = -c.velocity.Y
	}
}

// Update advances the circle by one tick: boundary bounce, pairwise collisions when the
// world enables them, then integration.
func (c *Circle) Update(deltaTime float64, world *World) {
	c.ResolveBoundary(world)
	if world.Pairwise {
		c.collide(world)
	}
	c.UpdatePosition(deltaTime)
}

// collide exchanges velocities with every intersecting sibling not already handled this tick.
func (c *Circle) collide(world *World) {
	for _, other := range world.Circles {
		if other == c || world.Collisions.Has(c.id, other.id) {
			continue
		}
		if !c.HasIntersection(other) {
			continue
		}
		v1 := CollisionVector(c, other)
		v2 := CollisionVector(other, c)
		c.velocity = v1.Multiply(collisionLossFactor).Clamp(-collisionSpeedLimit, collisionSpeedLimit)
		other.velocity = v2.Multiply(collisionLossFactor).Clamp(-collisionSpeedLimit, collisionSpeedLimit)
		world.Collisions.Add(c.id, other.id)
	}
}

// String representation for logging
func (c *Circle) String() string {
	return fmt.Sprintf("Circle[%s] Pos: %s Vel: %s Radius: %.2f", c.id, c.position, c.velocity, c.radius)
}
