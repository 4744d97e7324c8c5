// Package geometry declares the abstractions a board's grid geometry
// must satisfy: bounds, linearization and neighbor enumeration. Concrete
// geometries (see package rect) implement these interfaces; the board,
// uniform and simple layers depend only on them, never on a concrete
// geometry, so a non-rectangular geometry can be substituted without
// touching any of those layers.
package geometry

import "iter"

// Dimensions describes the geometry of a single board. C is the
// coordinate type the geometry operates over.
type Dimensions[C comparable] interface {
	// TotalSize returns the number of cells in the geometry.
	TotalSize() int

	// TryLinearize maps a coordinate to a dense index in [0, TotalSize),
	// or reports false if the coordinate is out of bounds. This is the
	// sole bounds check used by placements and shots.
	TryLinearize(c C) (int, bool)

	// UnLinearize is the inverse of TryLinearize for valid indices.
	UnLinearize(i int) C

	// Neighbors yields the coordinates adjacent to c, in a fixed
	// deterministic order. An out-of-bounds c yields no neighbors.
	Neighbors(c C) iter.Seq[C]

	// IsNeighbor reports whether b is adjacent to a.
	IsNeighbor(a, b C) bool
}

// ColinearCheck extends Dimensions with a colinearity test, used by
// linear ship shapes to constrain the direction a projection may grow
// in.
type ColinearCheck[C comparable] interface {
	Dimensions[C]

	// IsColinear reports whether a, b and c all lie on one line, as
	// defined by the geometry (for rectangular geometries: all share an
	// x coordinate, or all share a y coordinate).
	IsColinear(a, b, c C) bool
}
