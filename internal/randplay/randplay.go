// Package randplay implements the CLI's "random placement" and "random
// targeting" features. It is deliberately built on nothing but the
// public board/uniform operations plus a single uniform coordinate
// sampler; the engine itself has no notion of randomness.
package randplay

import (
	"errors"
	"math/rand/v2"

	"github.com/shipgrid/shipgrid/internal/board"
	"github.com/shipgrid/shipgrid/internal/geometry"
	"github.com/shipgrid/shipgrid/internal/shape"
)

// ErrNoPlacementFound is returned by PlaceRandomly when no anchor tried
// within the attempt budget yielded a placeable projection.
var ErrNoPlacementFound = errors.New("randplay: no placement found within attempt budget")

// ErrNoShotFound is returned by RandomShot when no coordinate tried
// within the attempt budget resolved to anything but AlreadyShot.
var ErrNoShotFound = errors.New("randplay: no shot found within attempt budget")

// Coordinate uniformly samples one coordinate from dim.
func Coordinate[C comparable, D geometry.Dimensions[C]](dim D) C {
	idx := rand.N(dim.TotalSize())
	return dim.UnLinearize(idx)
}

// PlaceRandomly places ship id on b by sampling random anchors and
// trying every projection get_placements yields from each, up to
// maxAttempts anchors.
func PlaceRandomly[I comparable, C comparable, D geometry.Dimensions[C], S shape.ShipShape[C, D]](
	b *board.BoardSetup[I, C, D, S], id I, maxAttempts int,
) error {
	dim := b.Dimensions()
	for attempt := 0; attempt < maxAttempts; attempt++ {
		anchor := Coordinate[C, D](dim)
		for proj := range b.GetPlacements(id, anchor) {
			if err := b.Place(id, proj); err == nil {
				return nil
			}
		}
	}
	return ErrNoPlacementFound
}

// RandomShot samples coordinates against dim and shoots through shoot,
// retrying only when retryable(err) is true, up to maxAttempts times.
// retryable lets each layer supply its own "cell already shot" sentinel
// (board, uniform and simple each wrap it differently).
func RandomShot[C comparable, D geometry.Dimensions[C], O any](
	dim D, maxAttempts int, shoot func(C) (O, error), retryable func(error) bool,
) (O, error) {
	var zero O
	for attempt := 0; attempt < maxAttempts; attempt++ {
		c := Coordinate[C, D](dim)
		outcome, err := shoot(c)
		if err == nil {
			return outcome, nil
		}
		if !retryable(err) {
			return zero, err
		}
	}
	return zero, ErrNoShotFound
}
