package cli

import (
	"fmt"
	"strings"

	"github.com/shipgrid/shipgrid/internal/board"
	"github.com/shipgrid/shipgrid/internal/rect"
	"github.com/shipgrid/shipgrid/internal/simple"
)

// shipAbbrev is the two-letter abbreviation used in cell notation; it
// mirrors the ship-alias table's canonical short form.
func shipAbbrev(s simple.Ship) string {
	switch s {
	case simple.Carrier:
		return "cv"
	case simple.Battleship:
		return "bb"
	case simple.Cruiser:
		return "ca"
	case simple.Submarine:
		return "ss"
	case simple.Destroyer:
		return "dd"
	default:
		return "??"
	}
}

func writeHeader(b *strings.Builder, dim rect.Dimensions) {
	b.WriteString("    ")
	for x := 0; x < dim.Width(); x++ {
		fmt.Fprintf(b, "%-4s", fmt.Sprintf(" %d ", x))
	}
	b.WriteByte('\n')
}

// RenderGrid renders a 10x10 play-phase board: column headers 0..9
// centered in a 4-wide field, row index right-aligned in 2.
// revealUnshot controls whether unshot ship cells show their
// abbreviation (the owner's own view) or stay hidden as "~~" (the
// opponent's view).
func RenderGrid(game *simple.Game, p simple.Player, revealUnshot bool) string {
	dim := rect.Default()

	var b strings.Builder
	writeHeader(&b, dim)
	for y := 0; y < dim.Height(); y++ {
		fmt.Fprintf(&b, "%2d  ", y)
		for x := 0; x < dim.Width(); x++ {
			c := rect.Coordinate{X: x, Y: y}
			cellRef, ok := game.GetCoord(p, c)
			fmt.Fprintf(&b, "%-4s", cellNotation(cellRef, ok, revealUnshot))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellNotation(c board.CellRef[simple.Ship, rect.Coordinate, rect.Dimensions], ok bool, revealUnshot bool) string {
	if !ok {
		return "~~"
	}
	shipRef, hasShip := c.Ship()

	switch {
	case !c.Hit() && !hasShip:
		return "~~"
	case !c.Hit() && hasShip:
		if revealUnshot {
			return shipAbbrev(shipRef.ID())
		}
		return "~~"
	case c.Hit() && !hasShip:
		return "x"
	default:
		if shipRef.Sunk() {
			return "X" + shipAbbrev(shipRef.ID())
		}
		return "x" + shipAbbrev(shipRef.ID())
	}
}

// RenderSetupGrid renders p's board during the placement phase: every
// placed ship's cells show its abbreviation, since there is no "hit"
// concept yet and nothing is hidden from the owner.
func RenderSetupGrid(setup *simple.GameSetup, p simple.Player) string {
	dim := rect.Default()
	owner := make(map[rect.Coordinate]simple.Ship, dim.TotalSize())
	for _, s := range simple.Ships {
		placement, ok := setup.Placement(p, s)
		if !ok {
			continue
		}
		for _, c := range placement {
			owner[c] = s
		}
	}

	var b strings.Builder
	writeHeader(&b, dim)
	for y := 0; y < dim.Height(); y++ {
		fmt.Fprintf(&b, "%2d  ", y)
		for x := 0; x < dim.Width(); x++ {
			c := rect.Coordinate{X: x, Y: y}
			cell := "~~"
			if s, ok := owner[c]; ok {
				cell = shipAbbrev(s)
			}
			fmt.Fprintf(&b, "%-4s", cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
