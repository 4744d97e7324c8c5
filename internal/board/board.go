// Package board implements the per-player grid and ship registry: the
// setup-phase BoardSetup and its play-phase counterpart, Board. A
// BoardSetup accumulates ship registrations and placements; Start
// consumes it into a Board, which resolves shots.
//
// I is the ship id type, C the coordinate type, D the board's geometry
// and S the ship shape type ships on this board use.
package board

import (
	"iter"

	"github.com/shipgrid/shipgrid/internal/errs"
	"github.com/shipgrid/shipgrid/internal/geometry"
	"github.com/shipgrid/shipgrid/internal/shape"
)

type cell[I comparable] struct {
	ship *I
	hit  bool
}

type shipSetup[C comparable, D geometry.Dimensions[C], S shape.ShipShape[C, D]] struct {
	shape     S
	placement []C // nil until placed
}

// BoardSetup is the setup-phase board: ships can be registered and
// (un)placed, but no shots can be resolved against it.
type BoardSetup[I comparable, C comparable, D geometry.Dimensions[C], S shape.ShipShape[C, D]] struct {
	dim   D
	cells []cell[I]
	ships map[I]*shipSetup[C, D, S]
}

// NewBoardSetup returns an empty setup for the given geometry.
func NewBoardSetup[I comparable, C comparable, D geometry.Dimensions[C], S shape.ShipShape[C, D]](dim D) *BoardSetup[I, C, D, S] {
	return &BoardSetup[I, C, D, S]{
		dim:   dim,
		cells: make([]cell[I], dim.TotalSize()),
		ships: make(map[I]*shipSetup[C, D, S]),
	}
}

// Dimensions returns the board's geometry.
func (b *BoardSetup[I, C, D, S]) Dimensions() D { return b.dim }

// AddShip registers a new, unplaced ship under id. It fails if id is
// already registered.
func (b *BoardSetup[I, C, D, S]) AddShip(id I, sh S) error {
	if _, exists := b.ships[id]; exists {
		return &errs.AddShipError[I, S]{ID: id, Shape: sh}
	}
	b.ships[id] = &shipSetup[C, D, S]{shape: sh}
	return nil
}

// GetPlacements yields every projection ship id could occupy starting
// at anchor. Yields nothing for an unknown id.
func (b *BoardSetup[I, C, D, S]) GetPlacements(id I, anchor C) iter.Seq[[]C] {
	entry, ok := b.ships[id]
	if !ok {
		return func(func([]C) bool) {}
	}
	return entry.shape.Project(anchor, b.dim)
}

// CheckPlacement reports whether placement could be placed for ship id,
// without mutating the board.
func (b *BoardSetup[I, C, D, S]) CheckPlacement(id I, placement []C) error {
	entry, ok := b.ships[id]
	if !ok {
		return errs.ErrUnknownShip
	}
	return b.checkPlacement(entry, id, placement)
}

func (b *BoardSetup[I, C, D, S]) checkPlacement(entry *shipSetup[C, D, S], id I, placement []C) error {
	if entry.placement != nil {
		return &errs.PlaceError[I, C]{Reason: errs.ErrAlreadyPlaced, ID: id, Placement: placement}
	}
	if !entry.shape.IsValidPlacement(placement, b.dim) {
		return &errs.PlaceError[I, C]{Reason: errs.ErrInvalidProjection, ID: id, Placement: placement}
	}
	for _, c := range placement {
		idx, inBounds := b.dim.TryLinearize(c)
		if !inBounds {
			return &errs.PlaceError[I, C]{Reason: errs.ErrInvalidProjection, ID: id, Placement: placement}
		}
		if b.cells[idx].ship != nil {
			return &errs.PlaceError[I, C]{Reason: errs.ErrAlreadyOccupied, ID: id, Placement: placement}
		}
	}
	return nil
}

// Place registers placement as ship id's position. It fails with the
// same error space as CheckPlacement; on failure no cell is mutated.
func (b *BoardSetup[I, C, D, S]) Place(id I, placement []C) error {
	entry, ok := b.ships[id]
	if !ok {
		return errs.ErrUnknownShip
	}
	if err := b.checkPlacement(entry, id, placement); err != nil {
		return err
	}
	for _, c := range placement {
		idx, _ := b.dim.TryLinearize(c)
		b.cells[idx].ship = &id
	}
	entry.placement = placement
	return nil
}

// Unplace clears ship id's placement, returning its previous placement,
// or nil if it had none (or id is unknown).
func (b *BoardSetup[I, C, D, S]) Unplace(id I) []C {
	entry, ok := b.ships[id]
	if !ok || entry.placement == nil {
		return nil
	}
	placement := entry.placement
	for _, c := range placement {
		idx, _ := b.dim.TryLinearize(c)
		b.cells[idx].ship = nil
	}
	entry.placement = nil
	return placement
}

// Placement returns ship id's current placement, if any.
func (b *BoardSetup[I, C, D, S]) Placement(id I) ([]C, bool) {
	entry, ok := b.ships[id]
	if !ok || entry.placement == nil {
		return nil, false
	}
	return entry.placement, true
}

// PendingShips yields the ids of ships with no placement yet.
func (b *BoardSetup[I, C, D, S]) PendingShips() iter.Seq[I] {
	return func(yield func(I) bool) {
		for id, entry := range b.ships {
			if entry.placement == nil {
				if !yield(id) {
					return
				}
			}
		}
	}
}

// Ready reports whether at least one ship is registered and every
// registered ship has a placement.
func (b *BoardSetup[I, C, D, S]) Ready() bool {
	if len(b.ships) == 0 {
		return false
	}
	for _, entry := range b.ships {
		if entry.placement == nil {
			return false
		}
	}
	return true
}

// Start consumes the setup into a play-phase Board if Ready, leaving
// the receiver untouched and returning (nil, false) otherwise.
func (b *BoardSetup[I, C, D, S]) Start() (*Board[I, C, D], bool) {
	if !b.Ready() {
		return nil, false
	}
	ships := make(map[I][]C, len(b.ships))
	for id, entry := range b.ships {
		ships[id] = entry.placement
	}
	cells := make([]cell[I], len(b.cells))
	copy(cells, b.cells)
	return &Board[I, C, D]{dim: b.dim, cells: cells, ships: ships}, true
}
