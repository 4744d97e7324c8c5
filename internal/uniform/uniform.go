// Package uniform implements the multi-player orchestrator: per-player
// boards, insertion-ordered turn order, shot dispatch and victory
// detection. It is "uniform" in the sense of spacebattleship's original
// game::uniform module: every player shares the same shape/geometry
// type parameters, as opposed to a hypothetical per-player-typed game.
package uniform

import (
	"github.com/shipgrid/shipgrid/internal/board"
	"github.com/shipgrid/shipgrid/internal/errs"
	"github.com/shipgrid/shipgrid/internal/geometry"
	"github.com/shipgrid/shipgrid/internal/shape"
)

// GameSetup is the setup-phase game: players can be added and their
// boards populated, but no shots can be resolved.
type GameSetup[P comparable, I comparable, C comparable, D geometry.Dimensions[C], S shape.ShipShape[C, D]] struct {
	boards    map[P]*board.BoardSetup[I, C, D, S]
	turnOrder []P
}

// NewGameSetup returns an empty game setup.
func NewGameSetup[P comparable, I comparable, C comparable, D geometry.Dimensions[C], S shape.ShipShape[C, D]]() *GameSetup[P, I, C, D, S] {
	return &GameSetup[P, I, C, D, S]{boards: make(map[P]*board.BoardSetup[I, C, D, S])}
}

// AddPlayer registers a new player with an empty board of the given
// geometry, returning a handle to that board. It fails if pid is
// already registered.
func (g *GameSetup[P, I, C, D, S]) AddPlayer(pid P, dim D) (*board.BoardSetup[I, C, D, S], error) {
	if _, exists := g.boards[pid]; exists {
		return nil, &errs.AddPlayerError[P, D]{ID: pid, Dims: dim}
	}
	b := board.NewBoardSetup[I, C, D, S](dim)
	g.boards[pid] = b
	g.turnOrder = append(g.turnOrder, pid)
	return b, nil
}

// GetBoard returns the setup-phase board for pid.
func (g *GameSetup[P, I, C, D, S]) GetBoard(pid P) (*board.BoardSetup[I, C, D, S], bool) {
	b, ok := g.boards[pid]
	return b, ok
}

// Ready reports whether at least two players are registered and every
// board is ready.
func (g *GameSetup[P, I, C, D, S]) Ready() bool {
	if len(g.boards) < 2 {
		return false
	}
	for _, b := range g.boards {
		if !b.Ready() {
			return false
		}
	}
	return true
}

// Start consumes the setup into a play-phase Game if Ready, preserving
// insertion order exactly and starting with the first player's turn. It
// leaves the receiver untouched and returns (nil, false) otherwise.
func (g *GameSetup[P, I, C, D, S]) Start() (*Game[P, I, C, D], bool) {
	if !g.Ready() {
		return nil, false
	}
	boards := make(map[P]*board.Board[I, C, D], len(g.boards))
	for pid, setup := range g.boards {
		b, ok := setup.Start()
		if !ok {
			return nil, false
		}
		boards[pid] = b
	}
	turnOrder := append([]P(nil), g.turnOrder...)
	return &Game[P, I, C, D]{boards: boards, turnOrder: turnOrder}, true
}

// Game is the play-phase game: players take turns shooting at each
// other's boards until one player remains undefeated.
type Game[P comparable, I comparable, C comparable, D geometry.Dimensions[C]] struct {
	boards    map[P]*board.Board[I, C, D]
	turnOrder []P
	current   int
}

// Current returns the player-id whose turn it is.
func (g *Game[P, I, C, D]) Current() P { return g.turnOrder[g.current] }

// AdvanceTurn moves to the next player in turn order, wrapping around.
// shoot never calls this itself; callers drive turn advancement.
func (g *Game[P, I, C, D]) AdvanceTurn() {
	g.current = (g.current + 1) % len(g.turnOrder)
}

// GetBoard returns the play-phase board for pid.
func (g *Game[P, I, C, D]) GetBoard(pid P) (*board.Board[I, C, D], bool) {
	b, ok := g.boards[pid]
	return b, ok
}

// Winner returns the sole undefeated player-id, if exactly one remains.
func (g *Game[P, I, C, D]) Winner() (P, bool) {
	var winner P
	count := 0
	for _, pid := range g.turnOrder {
		if !g.boards[pid].Defeated() {
			winner = pid
			count++
		}
	}
	if count == 1 {
		return winner, true
	}
	var zero P
	return zero, false
}

// ShotKind classifies the result of a resolved shot at the game level.
// It extends board.ShotKind with Victory: a Defeated board outcome that
// also ends the game.
type ShotKind int

const (
	ShotMiss ShotKind = iota
	ShotHit
	ShotSunk
	ShotDefeated
	ShotVictory
)

// ShotOutcome describes the result of a resolved shot.
type ShotOutcome[I any] struct {
	Kind ShotKind
	Ship I
}

// Shoot resolves player target's board being shot at coordinate c.
// AlreadyOver if the game already has a winner, SelfShot if target is
// the current player, UnknownPlayer if target is not registered;
// otherwise the shot is delegated to target's board. A board-level
// Defeated outcome that leaves exactly one undefeated player is lifted
// to Victory; every other board outcome passes through unchanged.
func (g *Game[P, I, C, D]) Shoot(target P, c C) (ShotOutcome[I], error) {
	if _, won := g.Winner(); won {
		return ShotOutcome[I]{}, &errs.ShotError[C]{Reason: errs.ErrAlreadyOver, Coord: c}
	}
	if target == g.Current() {
		return ShotOutcome[I]{}, &errs.ShotError[C]{Reason: errs.ErrSelfShot, Coord: c}
	}
	targetBoard, ok := g.boards[target]
	if !ok {
		return ShotOutcome[I]{}, &errs.ShotError[C]{Reason: errs.ErrUnknownPlayer, Coord: c}
	}

	outcome, err := targetBoard.Shoot(c)
	if err != nil {
		return ShotOutcome[I]{}, err
	}
	switch outcome.Kind {
	case board.ShotMiss:
		return ShotOutcome[I]{Kind: ShotMiss}, nil
	case board.ShotHit:
		return ShotOutcome[I]{Kind: ShotHit, Ship: outcome.Ship}, nil
	case board.ShotSunk:
		return ShotOutcome[I]{Kind: ShotSunk, Ship: outcome.Ship}, nil
	case board.ShotDefeated:
		if _, won := g.Winner(); won {
			return ShotOutcome[I]{Kind: ShotVictory, Ship: outcome.Ship}, nil
		}
		return ShotOutcome[I]{Kind: ShotDefeated, Ship: outcome.Ship}, nil
	default:
		panic("uniform: board produced an unknown shot kind")
	}
}
