package board

import (
	"fmt"
	"iter"

	"github.com/shipgrid/shipgrid/internal/errs"
	"github.com/shipgrid/shipgrid/internal/geometry"
)

// Board is the play-phase board: ships are fixed in place and shots can
// be resolved against it. No placement operation exists here.
type Board[I comparable, C comparable, D geometry.Dimensions[C]] struct {
	dim   D
	cells []cell[I]
	ships map[I][]C
}

// Dimensions returns the board's geometry.
func (b *Board[I, C, D]) Dimensions() D { return b.dim }

func (b *Board[I, C, D]) shipSunk(id I) bool {
	for _, c := range b.ships[id] {
		idx, _ := b.dim.TryLinearize(c)
		if !b.cells[idx].hit {
			return false
		}
	}
	return true
}

// Defeated reports whether every registered ship is sunk.
func (b *Board[I, C, D]) Defeated() bool {
	for id := range b.ships {
		if !b.shipSunk(id) {
			return false
		}
	}
	return true
}

// IterShips yields a handle for every ship on the board.
func (b *Board[I, C, D]) IterShips() iter.Seq[ShipRef[I, C, D]] {
	return func(yield func(ShipRef[I, C, D]) bool) {
		for id := range b.ships {
			if !yield(ShipRef[I, C, D]{id: id, board: b}) {
				return
			}
		}
	}
}

// GetShip returns a handle to ship id, or false if it is not registered.
func (b *Board[I, C, D]) GetShip(id I) (ShipRef[I, C, D], bool) {
	if _, ok := b.ships[id]; !ok {
		return ShipRef[I, C, D]{}, false
	}
	return ShipRef[I, C, D]{id: id, board: b}, true
}

// GetCoord returns a handle to the cell at c, or false if c is out of
// bounds.
func (b *Board[I, C, D]) GetCoord(c C) (CellRef[I, C, D], bool) {
	idx, ok := b.dim.TryLinearize(c)
	if !ok {
		return CellRef[I, C, D]{}, false
	}
	cl := b.cells[idx]
	var ship *ShipRef[I, C, D]
	if cl.ship != nil {
		ref := ShipRef[I, C, D]{id: *cl.ship, board: b}
		ship = &ref
	}
	return CellRef[I, C, D]{coord: c, hit: cl.hit, ship: ship}, true
}

// ShotKind classifies the result of a resolved shot.
type ShotKind int

const (
	ShotMiss ShotKind = iota
	ShotHit
	ShotSunk
	ShotDefeated
)

func (k ShotKind) String() string {
	switch k {
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	case ShotSunk:
		return "sunk"
	case ShotDefeated:
		return "defeated"
	default:
		return fmt.Sprintf("shotkind(%d)", int(k))
	}
}

// ShotOutcome describes the result of a resolved shot. Ship is the zero
// value of I when Kind is ShotMiss.
type ShotOutcome[I any] struct {
	Kind ShotKind
	Ship I
}

// Shoot resolves a shot at c: AlreadyDefeated if the board is already
// fully sunk, OutOfBounds if c is not on the grid, AlreadyShot if c was
// already targeted; otherwise the cell is marked hit and the outcome
// reflects whether that was a miss, a hit, a sinking hit, or the hit
// that defeats the whole board.
func (b *Board[I, C, D]) Shoot(c C) (ShotOutcome[I], error) {
	if b.Defeated() {
		return ShotOutcome[I]{}, &errs.ShotError[C]{Reason: errs.ErrAlreadyDefeated, Coord: c}
	}
	idx, ok := b.dim.TryLinearize(c)
	if !ok {
		return ShotOutcome[I]{}, &errs.ShotError[C]{Reason: errs.ErrOutOfBounds, Coord: c}
	}
	if b.cells[idx].hit {
		return ShotOutcome[I]{}, &errs.ShotError[C]{Reason: errs.ErrAlreadyShot, Coord: c}
	}

	b.cells[idx].hit = true
	shipID := b.cells[idx].ship
	if shipID == nil {
		return ShotOutcome[I]{Kind: ShotMiss}, nil
	}
	if b.Defeated() {
		return ShotOutcome[I]{Kind: ShotDefeated, Ship: *shipID}, nil
	}
	if b.shipSunk(*shipID) {
		return ShotOutcome[I]{Kind: ShotSunk, Ship: *shipID}, nil
	}
	return ShotOutcome[I]{Kind: ShotHit, Ship: *shipID}, nil
}

// ShipRef is a short-lived read-only handle to a ship on a Board. It
// must not be retained past the lifetime of that Board.
type ShipRef[I comparable, C comparable, D geometry.Dimensions[C]] struct {
	id    I
	board *Board[I, C, D]
}

func (s ShipRef[I, C, D]) ID() I { return s.id }

func (s ShipRef[I, C, D]) Sunk() bool { return s.board.shipSunk(s.id) }

// Coords yields the ship's placement.
func (s ShipRef[I, C, D]) Coords() iter.Seq[C] {
	return func(yield func(C) bool) {
		for _, c := range s.board.ships[s.id] {
			if !yield(c) {
				return
			}
		}
	}
}

// Hits yields each coordinate of the ship's placement alongside whether
// it has been shot.
func (s ShipRef[I, C, D]) Hits() iter.Seq2[C, bool] {
	return func(yield func(C, bool) bool) {
		for _, c := range s.board.ships[s.id] {
			idx, _ := s.board.dim.TryLinearize(c)
			if !yield(c, s.board.cells[idx].hit) {
				return
			}
		}
	}
}

// CellRef is a short-lived read-only handle to a single cell on a
// Board. It must not be retained past the lifetime of that Board.
type CellRef[I comparable, C comparable, D geometry.Dimensions[C]] struct {
	coord C
	hit   bool
	ship  *ShipRef[I, C, D]
}

func (c CellRef[I, C, D]) Coord() C { return c.coord }
func (c CellRef[I, C, D]) Hit() bool { return c.hit }

// Ship returns the ship occupying this cell, if any.
func (c CellRef[I, C, D]) Ship() (ShipRef[I, C, D], bool) {
	if c.ship == nil {
		return ShipRef[I, C, D]{}, false
	}
	return *c.ship, true
}
