package simple

import (
	"errors"

	"github.com/shipgrid/shipgrid/internal/randplay"
	"github.com/shipgrid/shipgrid/internal/rect"
)

// defaultRandomAttempts bounds retries for both random placement and
// random targeting before giving up with randplay's sentinel errors.
const defaultRandomAttempts = 200

// RandomizeRemaining places every ship p has not yet placed at a random
// valid anchor and orientation, leaving already-placed ships untouched.
// It fails fast on the first ship that cannot be placed within the
// attempt budget.
func (g *GameSetup) RandomizeRemaining(p Player) error {
	b := g.board(p)
	for s := range b.PendingShips() {
		if err := randplay.PlaceRandomly(b, s, defaultRandomAttempts); err != nil {
			return err
		}
	}
	return nil
}

// RandomShot shoots target's board at a uniformly sampled coordinate,
// retrying on ErrAlreadyShot up to an internal attempt budget. It is
// the engine behind the CLI's computer-opponent targeting.
func (g *Game) RandomShot(target Player) (ShotOutcome, error) {
	dim := rect.Default()
	return randplay.RandomShot(dim, defaultRandomAttempts,
		func(c rect.Coordinate) (ShotOutcome, error) { return g.Shoot(target, c) },
		func(err error) bool { return errors.Is(err, ErrAlreadyShot) },
	)
}
