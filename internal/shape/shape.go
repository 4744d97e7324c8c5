// Package shape declares the ShipShape abstraction and its canonical
// implementation, Line.
package shape

import "iter"

// ShipShape enumerates the possible placements of a ship from an anchor
// coordinate, and validates a placement it may not have produced itself.
// C is the coordinate type; D is the geometry the shape projects onto.
type ShipShape[C comparable, D any] interface {
	// Project yields every placement starting at anchor, in a
	// deterministic order. Each yielded projection's first coordinate
	// equals anchor.
	Project(anchor C, dim D) iter.Seq[[]C]

	// IsValidPlacement reports whether proj is a placement this shape
	// could have produced: correct length, consecutive coordinates
	// adjacent and (for linear shapes) colinear with the initial
	// direction, in the exact order Project would walk them.
	IsValidPlacement(proj []C, dim D) bool
}
