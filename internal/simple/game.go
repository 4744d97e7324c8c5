package simple

import (
	"errors"

	ierrs "github.com/shipgrid/shipgrid/internal/errs"
	"github.com/shipgrid/shipgrid/internal/board"
	"github.com/shipgrid/shipgrid/internal/rect"
	"github.com/shipgrid/shipgrid/internal/uniform"
)

type innerSetup = uniform.GameSetup[Player, Ship, rect.Coordinate, rect.Dimensions, lineShape]
type innerGame = uniform.Game[Player, Ship, rect.Coordinate, rect.Dimensions]

// GameSetup is the setup-phase façade: both players and their five-ship
// fleets are pre-registered on construction; only placement remains.
type GameSetup struct {
	inner *innerSetup
}

// NewGameSetup returns a setup with P1 and P2 already registered on
// 10x10, no-wrap boards, each with an unplaced Carrier, Battleship,
// Cruiser, Submarine and Destroyer.
func NewGameSetup() *GameSetup {
	inner := uniform.NewGameSetup[Player, Ship, rect.Coordinate, rect.Dimensions, lineShape]()
	for _, p := range []Player{P1, P2} {
		b, err := inner.AddPlayer(p, rect.Default())
		if err != nil {
			panic("simple: fresh GameSetup cannot have duplicate players")
		}
		for _, s := range Ships {
			if err := b.AddShip(s, newLine(s)); err != nil {
				panic("simple: fresh board cannot have duplicate ships")
			}
		}
	}
	return &GameSetup{inner: inner}
}

func (g *GameSetup) board(p Player) *board.BoardSetup[Ship, rect.Coordinate, rect.Dimensions, lineShape] {
	b, ok := g.inner.GetBoard(p)
	if !ok {
		panic("simple: player not registered")
	}
	return b
}

// Ready reports whether both players have placed their entire fleet.
func (g *GameSetup) Ready() bool { return g.inner.Ready() }

// PlayerReady reports whether p has placed their entire fleet.
func (g *GameSetup) PlayerReady(p Player) bool { return g.board(p).Ready() }

// PendingShips yields p's ship types with no placement yet.
func (g *GameSetup) PendingShips(p Player) []Ship {
	var pending []Ship
	for s := range g.board(p).PendingShips() {
		pending = append(pending, s)
	}
	return pending
}

// Placement returns p's current placement for s, if any.
func (g *GameSetup) Placement(p Player, s Ship) ([]rect.Coordinate, bool) {
	return g.board(p).Placement(s)
}

func (g *GameSetup) findPlacement(p Player, s Ship, start rect.Coordinate, dir Orientation) ([]rect.Coordinate, error) {
	for proj := range g.board(p).GetPlacements(s, start) {
		if dir.matches(proj) {
			return proj, nil
		}
	}
	return nil, ErrInsufficientSpace
}

func translatePlaceErr(err error) error {
	switch {
	case errors.Is(err, ierrs.ErrAlreadyOccupied):
		return ErrAlreadyOccupied
	case errors.Is(err, ierrs.ErrAlreadyPlaced):
		return ErrAlreadyPlaced
	case errors.Is(err, ierrs.ErrInvalidProjection):
		panic("simple: underlying layer rejected a projection it enumerated itself: " + err.Error())
	default:
		panic("simple: unexpected placement error: " + err.Error())
	}
}

// CheckPlacement reports whether ship s could be placed at start
// extending in direction dir, without mutating p's board.
func (g *GameSetup) CheckPlacement(p Player, s Ship, start rect.Coordinate, dir Orientation) error {
	proj, err := g.findPlacement(p, s, start, dir)
	if err != nil {
		return err
	}
	if err := g.board(p).CheckPlacement(s, proj); err != nil {
		return translatePlaceErr(err)
	}
	return nil
}

// PlaceShip places ship s on p's board at start extending in direction
// dir. Fails with ErrInsufficientSpace if no such placement fits on the
// board, ErrAlreadyPlaced if s already has a placement, or
// ErrAlreadyOccupied if it would overlap another ship.
func (g *GameSetup) PlaceShip(p Player, s Ship, start rect.Coordinate, dir Orientation) error {
	proj, err := g.findPlacement(p, s, start, dir)
	if err != nil {
		return err
	}
	if err := g.board(p).Place(s, proj); err != nil {
		return translatePlaceErr(err)
	}
	return nil
}

// UnplaceShip clears ship s's placement on p's board, reporting whether
// it had one.
func (g *GameSetup) UnplaceShip(p Player, s Ship) bool {
	return g.board(p).Unplace(s) != nil
}

// UnplaceAll clears every placement on p's board.
func (g *GameSetup) UnplaceAll(p Player) {
	for _, s := range Ships {
		g.board(p).Unplace(s)
	}
}

// Start consumes the setup into a play-phase Game if both players are
// Ready, leaving the receiver untouched and returning (nil, false)
// otherwise.
func (g *GameSetup) Start() (*Game, bool) {
	inner, ok := g.inner.Start()
	if !ok {
		return nil, false
	}
	return &Game{inner: inner}, true
}

// Game is the play-phase façade.
type Game struct {
	inner *innerGame
}

// Current returns the player whose turn it is.
func (g *Game) Current() Player { return g.inner.Current() }

// AdvanceTurn moves to the other player. Shoot never calls this itself.
func (g *Game) AdvanceTurn() { g.inner.AdvanceTurn() }

// Winner returns the victorious player, if the game has ended.
func (g *Game) Winner() (Player, bool) { return g.inner.Winner() }

// ShotKind classifies the result of a shot at the façade level. It has
// no Defeated case: in a two-player game a board's defeat always also
// ends the game, so it always surfaces as Victory.
type ShotKind int

const (
	Miss ShotKind = iota
	Hit
	Sunk
	Victory
)

// ShotOutcome describes the result of a resolved shot.
type ShotOutcome struct {
	Kind ShotKind
	Ship Ship
}

// Shoot resolves a shot at target's board, coordinate c.
func (g *Game) Shoot(target Player, c rect.Coordinate) (ShotOutcome, error) {
	outcome, err := g.inner.Shoot(target, c)
	if err != nil {
		return ShotOutcome{}, translateShotErr(err)
	}
	switch outcome.Kind {
	case uniform.ShotMiss:
		return ShotOutcome{Kind: Miss}, nil
	case uniform.ShotHit:
		return ShotOutcome{Kind: Hit, Ship: outcome.Ship}, nil
	case uniform.ShotSunk:
		return ShotOutcome{Kind: Sunk, Ship: outcome.Ship}, nil
	case uniform.ShotVictory:
		return ShotOutcome{Kind: Victory, Ship: outcome.Ship}, nil
	case uniform.ShotDefeated:
		panic("simple: board defeated without a winner in a two-player game")
	default:
		panic("simple: unexpected shot kind from uniform layer")
	}
}

func translateShotErr(err error) error {
	var shotErr *ierrs.ShotError[rect.Coordinate]
	if !errors.As(err, &shotErr) {
		panic("simple: unexpected shot error shape: " + err.Error())
	}
	switch {
	case errors.Is(shotErr.Reason, ierrs.ErrAlreadyOver):
		return ErrAlreadyOver
	case errors.Is(shotErr.Reason, ierrs.ErrSelfShot):
		return ErrOutOfTurn
	case errors.Is(shotErr.Reason, ierrs.ErrOutOfBounds):
		return ErrOutOfBounds
	case errors.Is(shotErr.Reason, ierrs.ErrAlreadyShot):
		return ErrAlreadyShot
	default:
		panic("simple: unreachable shot error in a two-player game: " + err.Error())
	}
}

// GetCoord returns a handle to the cell at c on p's board.
func (g *Game) GetCoord(p Player, c rect.Coordinate) (board.CellRef[Ship, rect.Coordinate, rect.Dimensions], bool) {
	b, ok := g.inner.GetBoard(p)
	if !ok {
		panic("simple: player not registered")
	}
	return b.GetCoord(c)
}

// IterShips yields a handle for every ship on p's board.
func (g *Game) IterShips(p Player) []board.ShipRef[Ship, rect.Coordinate, rect.Dimensions] {
	b, ok := g.inner.GetBoard(p)
	if !ok {
		panic("simple: player not registered")
	}
	var ships []board.ShipRef[Ship, rect.Coordinate, rect.Dimensions]
	for ref := range b.IterShips() {
		ships = append(ships, ref)
	}
	return ships
}
