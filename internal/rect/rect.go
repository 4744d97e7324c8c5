// Package rect implements a rectangular, optionally toroidal grid
// geometry: the concrete geometry.ColinearCheck the simple façade uses.
package rect

import (
	"fmt"
	"iter"
)

// Coordinate identifies a cell in a rectangular grid.
type Coordinate struct {
	X, Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Wrapping selects which axes of a Dimensions wrap around (are
// toroidal). The zero value wraps neither axis.
type Wrapping int

const (
	WrapNone       Wrapping = 0
	WrapHorizontal Wrapping = 1 << iota
	WrapVertical
)

// Dimensions is a rectangular grid of width x height cells, with
// optional wrapping along either axis.
type Dimensions struct {
	width, height int
	wrap          Wrapping
}

// New builds a Dimensions with no wrapping. width and height must be
// positive.
func New(width, height int) (Dimensions, error) {
	return NewWrapping(width, height, WrapNone)
}

// NewWrapping builds a Dimensions with the given wrap flags. width and
// height must be positive.
func NewWrapping(width, height int, wrap Wrapping) (Dimensions, error) {
	if width <= 0 || height <= 0 {
		return Dimensions{}, fmt.Errorf("rect: width and height must be positive, got %dx%d", width, height)
	}
	return Dimensions{width: width, height: height, wrap: wrap}, nil
}

// Default returns the canonical 10x10, no-wrap Dimensions.
func Default() Dimensions {
	d, err := New(10, 10)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Dimensions) Width() int  { return d.width }
func (d Dimensions) Height() int { return d.height }

func (d Dimensions) WrapsHorizontal() bool { return d.wrap&WrapHorizontal != 0 }
func (d Dimensions) WrapsVertical() bool   { return d.wrap&WrapVertical != 0 }

func (d Dimensions) inBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < d.width && c.Y >= 0 && c.Y < d.height
}

func (d Dimensions) TotalSize() int { return d.width * d.height }

func (d Dimensions) TryLinearize(c Coordinate) (int, bool) {
	if !d.inBounds(c) {
		return 0, false
	}
	return c.Y*d.width + c.X, true
}

func (d Dimensions) UnLinearize(i int) Coordinate {
	return Coordinate{X: i % d.width, Y: i / d.width}
}

// Neighbors yields the coordinates above, below, left and right of c,
// in that order. An out-of-bounds c yields no neighbors. A missing
// neighbor (off the grid edge) is replaced by the opposite edge cell
// when the corresponding axis wraps, and omitted otherwise.
func (d Dimensions) Neighbors(c Coordinate) iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		if !d.inBounds(c) {
			return
		}
		if c.Y > 0 {
			if !yield(Coordinate{X: c.X, Y: c.Y - 1}) {
				return
			}
		} else if d.WrapsVertical() {
			if !yield(Coordinate{X: c.X, Y: d.height - 1}) {
				return
			}
		}
		if c.Y < d.height-1 {
			if !yield(Coordinate{X: c.X, Y: c.Y + 1}) {
				return
			}
		} else if d.WrapsVertical() {
			if !yield(Coordinate{X: c.X, Y: 0}) {
				return
			}
		}
		if c.X > 0 {
			if !yield(Coordinate{X: c.X - 1, Y: c.Y}) {
				return
			}
		} else if d.WrapsHorizontal() {
			if !yield(Coordinate{X: d.width - 1, Y: c.Y}) {
				return
			}
		}
		if c.X < d.width-1 {
			if !yield(Coordinate{X: c.X + 1, Y: c.Y}) {
				return
			}
		} else if d.WrapsHorizontal() {
			if !yield(Coordinate{X: 0, Y: c.Y}) {
				return
			}
		}
	}
}

func (d Dimensions) IsNeighbor(a, b Coordinate) bool {
	for n := range d.Neighbors(a) {
		if n == b {
			return true
		}
	}
	return false
}

// IsColinear reports whether a, b and c all share an x coordinate or
// all share a y coordinate.
func (d Dimensions) IsColinear(a, b, c Coordinate) bool {
	sameX := a.X == b.X && b.X == c.X
	sameY := a.Y == b.Y && b.Y == c.Y
	return sameX || sameY
}

// Coordinates yields every coordinate in the grid in row-major order:
// y ascending, then x ascending.
func (d Dimensions) Coordinates() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for y := 0; y < d.height; y++ {
			for x := 0; x < d.width; x++ {
				if !yield(Coordinate{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
