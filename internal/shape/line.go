package shape

import (
	"fmt"
	"iter"

	"github.com/shipgrid/shipgrid/internal/geometry"
)

// Line is the canonical linear ship shape: a straight run of Length
// cells. A Line of length 1 has exactly one projection, the anchor
// itself.
type Line[C comparable, D geometry.ColinearCheck[C]] struct {
	length int
}

// NewLine builds a Line of the given length, which must be positive.
func NewLine[C comparable, D geometry.ColinearCheck[C]](length int) (Line[C, D], error) {
	if length <= 0 {
		return Line[C, D]{}, fmt.Errorf("shape: line length must be positive, got %d", length)
	}
	return Line[C, D]{length: length}, nil
}

// Length returns the number of cells the line occupies.
func (l Line[C, D]) Length() int { return l.length }

// Project yields, for each neighbor d of anchor, the chain
// [anchor, d, n2, n3, ...] built by repeatedly extending to an
// unvisited neighbor of the last point that is colinear with the
// anchor-to-d direction, stopping once Length cells have been chosen.
// A direction that cannot extend to a full chain yields nothing.
func (l Line[C, D]) Project(anchor C, dim D) iter.Seq[[]C] {
	return func(yield func([]C) bool) {
		if l.length == 1 {
			yield([]C{anchor})
			return
		}
		for dir := range dim.Neighbors(anchor) {
			route, ok := buildRoute(dim, l.length, anchor, dir)
			if !ok {
				continue
			}
			if !yield(route) {
				return
			}
		}
	}
}

func buildRoute[C comparable, D geometry.ColinearCheck[C]](dim D, length int, start, dir C) ([]C, bool) {
	route := make([]C, 0, length)
	visited := make(map[C]struct{}, length)

	route = append(route, start)
	visited[start] = struct{}{}
	route = append(route, dir)
	visited[dir] = struct{}{}
	last := dir

	for len(route) < length {
		extended := false
		for n := range dim.Neighbors(last) {
			if _, seen := visited[n]; seen {
				continue
			}
			if !dim.IsColinear(start, dir, n) {
				continue
			}
			route = append(route, n)
			visited[n] = struct{}{}
			last = n
			extended = true
			break
		}
		if !extended {
			return nil, false
		}
	}
	return route, true
}

// IsValidPlacement reports whether proj is exactly length cells long
// and walks a chain of colinear neighbors starting at proj[0], in the
// same order Project would have produced it.
func (l Line[C, D]) IsValidPlacement(proj []C, dim D) bool {
	if len(proj) != l.length {
		return false
	}
	if l.length == 1 {
		return true
	}
	start, dir := proj[0], proj[1]
	prev := start
	visited := make(map[C]struct{}, len(proj))
	visited[start] = struct{}{}
	for _, c := range proj[1:] {
		if _, seen := visited[c]; seen {
			return false
		}
		visited[c] = struct{}{}
		if !dim.IsNeighbor(prev, c) {
			return false
		}
		if !dim.IsColinear(start, dir, c) {
			return false
		}
		prev = c
	}
	return true
}
