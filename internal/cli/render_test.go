package cli_test

import (
	"strings"
	"testing"

	"github.com/shipgrid/shipgrid/internal/cli"
	"github.com/shipgrid/shipgrid/internal/rect"
	"github.com/shipgrid/shipgrid/internal/simple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoPlayerStartedGame places every ship along the top rows (row y holds
// the y-th ship in fleet order, columns 0..length-1), leaving rows 8-9
// guaranteed empty on both boards.
func twoPlayerStartedGame(t *testing.T) *simple.Game {
	t.Helper()
	setup := simple.NewGameSetup()
	fleet := []simple.Ship{simple.Carrier, simple.Battleship, simple.Cruiser, simple.Submarine, simple.Destroyer}
	for _, p := range []simple.Player{simple.P1, simple.P2} {
		for y, s := range fleet {
			require.NoError(t, setup.PlaceShip(p, s, rect.Coordinate{X: 0, Y: y}, simple.Right))
		}
	}
	game, ok := setup.Start()
	require.True(t, ok)
	return game
}

func TestRenderGridOwnViewRevealsUnshotShips(t *testing.T) {
	t.Parallel()

	game := twoPlayerStartedGame(t)
	out := cli.RenderGrid(game, simple.P1, true)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 11, "header row + 10 board rows")
	assert.Contains(t, out, "dd", "destroyer abbreviation must appear in the owner's own view")
	assert.NotContains(t, out, "~~dd")
}

func TestRenderGridOpponentViewHidesUnshotShips(t *testing.T) {
	t.Parallel()

	game := twoPlayerStartedGame(t)
	out := cli.RenderGrid(game, simple.P1, false)
	assert.NotContains(t, out, "dd")
}

func TestRenderSetupGridShowsPlacedShips(t *testing.T) {
	t.Parallel()

	setup := simple.NewGameSetup()
	require.NoError(t, setup.PlaceShip(simple.P1, simple.Destroyer, rect.Coordinate{X: 0, Y: 0}, simple.Right))

	out := cli.RenderSetupGrid(setup, simple.P1)
	assert.Contains(t, out, "dd")

	emptyOut := cli.RenderSetupGrid(setup, simple.P2)
	assert.NotContains(t, emptyOut, "dd")
}

func TestRenderGridShowsMissAndHit(t *testing.T) {
	t.Parallel()

	game := twoPlayerStartedGame(t)
	shooter := game.Current()
	target := shooter.Opponent()

	_, err := game.Shoot(target, rect.Coordinate{X: 9, Y: 9})
	require.NoError(t, err)
	_, err = game.Shoot(target, rect.Coordinate{X: 0, Y: 0})
	require.NoError(t, err)

	out := cli.RenderGrid(game, target, false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	lastRow := lines[len(lines)-1]
	assert.Contains(t, lastRow, "x ", "a plain miss renders bare x")
	assert.Contains(t, lines[1], "xcv", "a hit on an unsunk carrier renders x plus its abbreviation")
}
