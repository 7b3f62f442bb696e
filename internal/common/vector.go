package common

import (
	"fmt"
	"math"
	"math/rand"
)

// Vector represents a point or a velocity in the 2D simulation plane.
// Vectors are values: every operation returns a new Vector and leaves its operands untouched.
type Vector struct {
	X float64
	Y float64
}

// NewVector creates a vector from its components.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// NewRandomVector creates a vector with coordinates drawn uniformly from [minX, maxX] and [minY, maxY].
// An empty range (max < min) collapses to its midpoint.
func NewRandomVector(rng *rand.Rand, minX, maxX, minY, maxY float64) Vector {
	return Vector{
		X: RandomInRange(rng, minX, maxX),
		Y: RandomInRange(rng, minY, maxY),
	}
}

// RandomInRange returns a float drawn uniformly from [min, max].
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	if max < min {
		return (min + max) / 2
	}
	return min + rng.Float64()*(max-min)
}

// Coords returns the components of the vector.
func (v Vector) Coords() (float64, float64) {
	return v.X, v.Y
}

// Add adds another vector to this vector.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Subtract subtracts another vector from this vector.
func (v Vector) Subtract(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Multiply multiplies the vector by a scalar value.
func (v Vector) Multiply(scalar float64) Vector {
	return Vector{X: v.X * scalar, Y: v.Y * scalar}
}

// DotProduct returns the dot product of the two vectors.
func (v Vector) DotProduct(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Clamp limits each axis independently into [min, max].
func (v Vector) Clamp(min, max float64) Vector {
	return Vector{
		X: math.Max(min, math.Min(max, v.X)),
		Y: math.Max(min, math.Min(max, v.Y)),
	}
}

// Magnitude returns the Euclidean length of the vector.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.NormSq())
}

// Direction returns atan2(x, y). The arguments are in (x, y) order, so the angle is
// measured from the +Y axis.
func (v Vector) Direction() float64 {
	return math.Atan2(v.X, v.Y)
}

// NormSq calculates the squared Euclidean norm (magnitude squared) of the vector.
func (v Vector) NormSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance calculates the Euclidean distance between two vectors.
func (v Vector) Distance(other Vector) float64 {
	return math.Hypot(v.X-other.X, v.Y-other.Y)
}

// String returns a string representation of the vector.
func (v Vector) String() string {
	return fmt.Sprintf("[%.3f, %.3f]", v.X, v.Y)
}
