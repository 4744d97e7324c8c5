// Package simple implements the fixed two-player, 10x10, five-ship
// façade over the generic engine: the canonical Battleship variant.
package simple

import (
	"errors"
	"fmt"

	"github.com/shipgrid/shipgrid/internal/rect"
	"github.com/shipgrid/shipgrid/internal/shape"
)

// Player identifies one of the two sides.
type Player int

const (
	P1 Player = iota
	P2
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == P1 {
		return P2
	}
	return P1
}

func (p Player) String() string {
	switch p {
	case P1:
		return "P1"
	case P2:
		return "P2"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// Ship identifies one of the five fixed ship types.
type Ship int

const (
	Carrier Ship = iota
	Battleship
	Cruiser
	Submarine
	Destroyer
)

// Ships lists every ship type, in fleet order.
var Ships = [...]Ship{Carrier, Battleship, Cruiser, Submarine, Destroyer}

// Length returns the ship's fixed length.
func (s Ship) Length() int {
	switch s {
	case Carrier:
		return 5
	case Battleship:
		return 4
	case Cruiser:
		return 3
	case Submarine:
		return 3
	case Destroyer:
		return 2
	default:
		panic(fmt.Sprintf("simple: unknown ship %d", int(s)))
	}
}

func (s Ship) String() string {
	switch s {
	case Carrier:
		return "Carrier"
	case Battleship:
		return "Battleship"
	case Cruiser:
		return "Cruiser"
	case Submarine:
		return "Submarine"
	case Destroyer:
		return "Destroyer"
	default:
		return fmt.Sprintf("ship(%d)", int(s))
	}
}

// Orientation is the direction a ship extends from its placement anchor.
type Orientation int

const (
	Up Orientation = iota
	Down
	Left
	Right
)

func (o Orientation) String() string {
	switch o {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// matches reports whether proj's second coordinate lies in direction o
// from proj's first coordinate. Up is decreasing y, Down increasing y,
// Left decreasing x, Right increasing x.
func (o Orientation) matches(proj []rect.Coordinate) bool {
	if len(proj) < 2 {
		return true
	}
	from, to := proj[0], proj[1]
	dx, dy := to.X-from.X, to.Y-from.Y
	switch o {
	case Up:
		return dx == 0 && dy < 0
	case Down:
		return dx == 0 && dy > 0
	case Left:
		return dx < 0 && dy == 0
	case Right:
		return dx > 0 && dy == 0
	default:
		return false
	}
}

type lineShape = shape.Line[rect.Coordinate, rect.Dimensions]

// Façade-level errors.
var (
	ErrInsufficientSpace = errors.New("insufficient space for ship in that direction")
	ErrAlreadyPlaced     = errors.New("ship already placed")
	ErrAlreadyOccupied   = errors.New("position already occupied")

	ErrAlreadyOver = errors.New("game is already over")
	ErrOutOfTurn   = errors.New("not your turn")
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	ErrAlreadyShot = errors.New("cell already shot")
)

func newLine(t Ship) lineShape {
	l, err := shape.NewLine[rect.Coordinate, rect.Dimensions](t.Length())
	if err != nil {
		panic(fmt.Sprintf("simple: building fixed-length %s line: %v", t, err))
	}
	return l
}
