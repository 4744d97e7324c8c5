package session

import (
	"fmt"

	"github.com/shipgrid/shipgrid/internal/cli"
	"github.com/shipgrid/shipgrid/internal/simple"
)

const helpText = `Commands:
  place <ship> <x>,<y> <dir>   place a ship (put/at/on/to/->/=> also accepted)
  unplace <ship>                clear one ship's placement (remove also accepted)
  unplace all | clear           clear every placement
  randomize                     fill every remaining ship at a random spot
  done | start                  finish placement and start the game
  help | h | ?                  show this text

Ships: cv/carrier(5) bb/battleship(4) ca/cl/cruiser(3) ss/sub/submarine(3) dd/destroyer(2)
Directions: up/north/u/n down/south/d/s left/west/l/w right/east/r/e
`

// runSetupPhase interactively places the human's fleet. The computer's
// fleet is filled separately by Run via RandomizeRemaining. The human
// must explicitly type done/start once ready; the loop does not exit
// merely because the fleet became complete.
func (s *Session) runSetupPhase(setup *simple.GameSetup) error {
	fmt.Fprintln(s.out, "Place your fleet. Type 'help' for the command list.")
	for {
		fmt.Fprint(s.out, cli.RenderSetupGrid(setup, human))
		if pending := setup.PendingShips(human); len(pending) > 0 {
			fmt.Fprintf(s.out, "Remaining: %v\n", pending)
		}

		line, err := s.readLine("> ")
		if err != nil {
			return err
		}
		cmd, err := cli.ParseSetupCommand(line)
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}

		done, err := s.applySetupCommand(setup, cmd)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (s *Session) applySetupCommand(setup *simple.GameSetup, cmd cli.Command) (done bool, err error) {
	switch cmd.Kind {
	case cli.CmdPlace:
		if err := setup.PlaceShip(human, cmd.Ship, cmd.Start, cmd.Dir); err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
		}
	case cli.CmdUnplace:
		setup.UnplaceShip(human, cmd.Ship)
	case cli.CmdUnplaceAll:
		setup.UnplaceAll(human)
	case cli.CmdRandomize:
		if err := setup.RandomizeRemaining(human); err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
		}
	case cli.CmdDone:
		if !setup.PlayerReady(human) {
			fmt.Fprintln(s.out, "Place every ship before starting.")
			return false, nil
		}
		return true, nil
	case cli.CmdHelp:
		fmt.Fprint(s.out, helpText)
	case cli.CmdUnrecognized:
		fmt.Fprintf(s.out, "Unrecognized command: %q. Type 'help' for the command list.\n", cmd.Raw)
	}
	return false, nil
}
