package board_test

import (
	"errors"
	"testing"

	"github.com/shipgrid/shipgrid/internal/board"
	"github.com/shipgrid/shipgrid/internal/errs"
	"github.com/shipgrid/shipgrid/internal/rect"
	"github.com/shipgrid/shipgrid/internal/shape"
)

type (
	setupT = board.BoardSetup[string, rect.Coordinate, rect.Dimensions, shape.Line[rect.Coordinate, rect.Dimensions]]
	lineT  = shape.Line[rect.Coordinate, rect.Dimensions]
)

func mustLine(t *testing.T, length int) lineT {
	t.Helper()
	l, err := shape.NewLine[rect.Coordinate, rect.Dimensions](length)
	if err != nil {
		t.Fatalf("NewLine(%d): %v", length, err)
	}
	return l
}

func newSetup(t *testing.T) *setupT {
	t.Helper()
	return board.NewBoardSetup[string, rect.Coordinate, rect.Dimensions, lineT](rect.Default())
}

func TestAddShipRejectsDuplicateID(t *testing.T) {
	t.Parallel()

	s := newSetup(t)
	if err := s.AddShip("carrier", mustLine(t, 5)); err != nil {
		t.Fatalf("AddShip: unexpected error: %v", err)
	}
	err := s.AddShip("carrier", mustLine(t, 5))
	var addErr *errs.AddShipError[string, lineT]
	if !errors.As(err, &addErr) {
		t.Fatalf("AddShip duplicate: error = %v, want *AddShipError", err)
	}
}

// Scenario 1: placement success on 10x10.
func TestPlaceCarrierRightFromOrigin(t *testing.T) {
	t.Parallel()

	s := newSetup(t)
	if err := s.AddShip("carrier", mustLine(t, 5)); err != nil {
		t.Fatalf("AddShip: %v", err)
	}

	anchor := rect.Coordinate{X: 0, Y: 0}
	var placement []rect.Coordinate
	for proj := range s.GetPlacements("carrier", anchor) {
		if proj[1].X > proj[0].X {
			placement = proj
			break
		}
	}
	if placement == nil {
		t.Fatal("no rightward projection found")
	}

	if err := s.Place("carrier", placement); err != nil {
		t.Fatalf("Place: unexpected error: %v", err)
	}
	want := []rect.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}
	if len(placement) != len(want) {
		t.Fatalf("placement = %v, want %v", placement, want)
	}
	for i := range want {
		if placement[i] != want[i] {
			t.Errorf("placement[%d] = %v, want %v", i, placement[i], want[i])
		}
	}
}

// Scenario 2: placement off the edge fails.
func TestPlaceCarrierOffEdgeFails(t *testing.T) {
	t.Parallel()

	s := newSetup(t)
	if err := s.AddShip("carrier", mustLine(t, 5)); err != nil {
		t.Fatalf("AddShip: %v", err)
	}

	anchor := rect.Coordinate{X: 7, Y: 0}
	for proj := range s.GetPlacements("carrier", anchor) {
		if proj[1].X > proj[0].X {
			t.Fatalf("expected no rightward projection from %v, got %v", anchor, proj)
		}
	}
}

// Scenario 3: overlap rejection, and the grid is unmutated on failure.
func TestPlaceOverlapRejectedAndGridUnmutated(t *testing.T) {
	t.Parallel()

	s := newSetup(t)
	if err := s.AddShip("carrier", mustLine(t, 5)); err != nil {
		t.Fatalf("AddShip carrier: %v", err)
	}
	if err := s.AddShip("battleship", mustLine(t, 4)); err != nil {
		t.Fatalf("AddShip battleship: %v", err)
	}

	carrierPlacement := []rect.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}
	if err := s.Place("carrier", carrierPlacement); err != nil {
		t.Fatalf("Place carrier: %v", err)
	}

	overlap := []rect.Coordinate{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}
	err := s.Place("battleship", overlap)
	var placeErr *errs.PlaceError[string, rect.Coordinate]
	if !errors.As(err, &placeErr) || !errors.Is(placeErr.Reason, errs.ErrAlreadyOccupied) {
		t.Fatalf("Place overlap: error = %v, want AlreadyOccupied", err)
	}

	if _, placed := s.Placement("battleship"); placed {
		t.Error("battleship should remain unplaced after failed overlap placement")
	}

	// (2,1)..(2,4) were left free by the failed attempt.
	if err := s.Place("battleship", []rect.Coordinate{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 4}}); err != nil {
		t.Errorf("Place battleship below the carrier: unexpected error: %v", err)
	}
}

func TestCheckPlacementAgreesWithPlace(t *testing.T) {
	t.Parallel()

	s := newSetup(t)
	if err := s.AddShip("destroyer", mustLine(t, 2)); err != nil {
		t.Fatalf("AddShip: %v", err)
	}
	placement := []rect.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}

	checkErr := s.CheckPlacement("destroyer", placement)
	placeErr := s.Place("destroyer", placement)
	if (checkErr == nil) != (placeErr == nil) {
		t.Fatalf("CheckPlacement() error = %v, Place() error = %v, want agreement", checkErr, placeErr)
	}
}

func TestUnplaceRestoresGridAndIsIdempotent(t *testing.T) {
	t.Parallel()

	s := newSetup(t)
	if err := s.AddShip("destroyer", mustLine(t, 2)); err != nil {
		t.Fatalf("AddShip: %v", err)
	}
	placement := []rect.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}
	if err := s.Place("destroyer", placement); err != nil {
		t.Fatalf("Place: %v", err)
	}

	got := s.Unplace("destroyer")
	if len(got) != len(placement) {
		t.Fatalf("Unplace() = %v, want %v", got, placement)
	}

	if again := s.Unplace("destroyer"); again != nil {
		t.Errorf("second Unplace() = %v, want nil", again)
	}

	// The cells are free again: re-placing the same ship must succeed.
	if err := s.Place("destroyer", placement); err != nil {
		t.Errorf("re-Place after Unplace: unexpected error: %v", err)
	}
}

func TestReadyRequiresAtLeastOneShipAndAllPlaced(t *testing.T) {
	t.Parallel()

	s := newSetup(t)
	if s.Ready() {
		t.Error("Ready() on empty setup = true, want false")
	}

	if err := s.AddShip("destroyer", mustLine(t, 2)); err != nil {
		t.Fatalf("AddShip: %v", err)
	}
	if s.Ready() {
		t.Error("Ready() with a pending ship = true, want false")
	}

	if err := s.Place("destroyer", []rect.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if !s.Ready() {
		t.Error("Ready() with all ships placed = false, want true")
	}
}

func TestStartFailsWhenNotReadyAndSetupStaysUsable(t *testing.T) {
	t.Parallel()

	s := newSetup(t)
	if err := s.AddShip("destroyer", mustLine(t, 2)); err != nil {
		t.Fatalf("AddShip: %v", err)
	}

	if _, ok := s.Start(); ok {
		t.Fatal("Start() on a not-ready setup = ok, want not ok")
	}

	if err := s.Place("destroyer", []rect.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if _, ok := s.Start(); !ok {
		t.Fatal("Start() after placing all ships = not ok, want ok")
	}
}

func TestShoot(t *testing.T) {
	t.Parallel()

	s := newSetup(t)
	if err := s.AddShip("destroyer", mustLine(t, 2)); err != nil {
		t.Fatalf("AddShip: %v", err)
	}
	placement := []rect.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}
	if err := s.Place("destroyer", placement); err != nil {
		t.Fatalf("Place: %v", err)
	}
	b, ok := s.Start()
	if !ok {
		t.Fatal("Start() = not ok")
	}

	outcome, err := b.Shoot(rect.Coordinate{X: 5, Y: 5})
	if err != nil || outcome.Kind != board.ShotMiss {
		t.Fatalf("Shoot(miss) = %v, %v, want ShotMiss, nil", outcome, err)
	}

	outcome, err = b.Shoot(rect.Coordinate{X: 0, Y: 0})
	if err != nil || outcome.Kind != board.ShotHit || outcome.Ship != "destroyer" {
		t.Fatalf("Shoot(hit) = %v, %v, want ShotHit destroyer, nil", outcome, err)
	}

	// Idempotent on an already-shot cell.
	_, err = b.Shoot(rect.Coordinate{X: 0, Y: 0})
	var shotErr *errs.ShotError[rect.Coordinate]
	if !errors.As(err, &shotErr) || !errors.Is(shotErr.Reason, errs.ErrAlreadyShot) {
		t.Fatalf("Shoot(already shot) error = %v, want AlreadyShot", err)
	}

	outcome, err = b.Shoot(rect.Coordinate{X: 1, Y: 0})
	if err != nil || outcome.Kind != board.ShotDefeated || outcome.Ship != "destroyer" {
		t.Fatalf("Shoot(final hit) = %v, %v, want ShotDefeated destroyer, nil", outcome, err)
	}
	if !b.Defeated() {
		t.Error("Defeated() = false after sole ship destroyed")
	}

	_, err = b.Shoot(rect.Coordinate{X: 5, Y: 5})
	if !errors.Is(err, errs.ErrAlreadyDefeated) {
		t.Fatalf("Shoot on defeated board: error = %v, want AlreadyDefeated", err)
	}
}

func TestShootOutOfBounds(t *testing.T) {
	t.Parallel()

	s := newSetup(t)
	if err := s.AddShip("destroyer", mustLine(t, 2)); err != nil {
		t.Fatalf("AddShip: %v", err)
	}
	if err := s.Place("destroyer", []rect.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	b, ok := s.Start()
	if !ok {
		t.Fatal("Start() = not ok")
	}

	_, err := b.Shoot(rect.Coordinate{X: 50, Y: 50})
	if !errors.Is(err, errs.ErrOutOfBounds) {
		t.Fatalf("Shoot(out of bounds) error = %v, want OutOfBounds", err)
	}
}

func TestSunkIffAllCellsHit(t *testing.T) {
	t.Parallel()

	s := newSetup(t)
	if err := s.AddShip("destroyer", mustLine(t, 2)); err != nil {
		t.Fatalf("AddShip: %v", err)
	}
	placement := []rect.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}
	if err := s.Place("destroyer", placement); err != nil {
		t.Fatalf("Place: %v", err)
	}
	b, ok := s.Start()
	if !ok {
		t.Fatal("Start() = not ok")
	}

	ship, ok := b.GetShip("destroyer")
	if !ok {
		t.Fatal("GetShip() = not ok")
	}
	if ship.Sunk() {
		t.Error("Sunk() = true before any hit")
	}

	if _, err := b.Shoot(placement[0]); err != nil {
		t.Fatalf("Shoot: %v", err)
	}
	if ship.Sunk() {
		t.Error("Sunk() = true after only one of two cells hit")
	}

	if _, err := b.Shoot(placement[1]); err != nil {
		t.Fatalf("Shoot: %v", err)
	}
	if !ship.Sunk() {
		t.Error("Sunk() = false after every cell hit")
	}
}
