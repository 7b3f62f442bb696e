package simulation

import (
	"iter"
	"slices"
)

// CollisionTable holds the collision partners recorded during one tick, keyed by shape ID.
// It is scratch state owned by the Simulation and reset after every draw pass.
type CollisionTable struct {
	partners map[string][]string
}

// NewCollisionTable creates an empty table.
func NewCollisionTable() *CollisionTable {
	return &CollisionTable{partners: make(map[string][]string)}
}

// Add records a symmetric pair. Pairing a shape with itself is ignored.
func (c *CollisionTable) Add(a, b string) {
	if a == b || c.Has(a, b) {
		return
	}
	c.partners[a] = append(c.partners[a], b)
	c.partners[b] = append(c.partners[b], a)
}

// Has reports whether a and b collided this tick.
func (c *CollisionTable) Has(a, b string) bool {
	return slices.Contains(c.partners[a], b)
}

// Partners returns a copy of the partners of id in the order they were recorded.
func (c *CollisionTable) Partners(id string) []string {
	return slices.Clone(c.partners[id])
}

// All returns a lazy sequence over the partners of id. The sequence can be ranged over
// more than once and reflects the table at iteration time.
func (c *CollisionTable) All(id string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, p := range c.partners[id] {
			if !yield(p) {
				return
			}
		}
	}
}

// Len returns the number of shapes with at least one partner.
func (c *CollisionTable) Len() int {
	return len(c.partners)
}

// Reset drops every recorded pair.
func (c *CollisionTable) Reset() {
	c.partners = make(map[string][]string)
}
