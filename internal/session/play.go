package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/shipgrid/shipgrid/internal/cli"
	"github.com/shipgrid/shipgrid/internal/randplay"
	"github.com/shipgrid/shipgrid/internal/simple"
)

// runPlayPhase alternates turns until the game reports a winner,
// rotating turns itself since simple.Game.Shoot never does.
func (s *Session) runPlayPhase(game *simple.Game) error {
	for {
		if winner, ok := game.Winner(); ok {
			s.announceWinner(winner)
			return nil
		}

		var (
			outcome simple.ShotOutcome
			err     error
		)
		if game.Current() == human {
			outcome, err = s.humanTurn(game)
		} else {
			outcome, err = s.botTurn(game)
		}
		if err != nil {
			return err
		}

		s.announceOutcome(game.Current(), outcome)
		game.AdvanceTurn()
	}
}

func (s *Session) humanTurn(game *simple.Game) (simple.ShotOutcome, error) {
	fmt.Fprintln(s.out, "Your fleet:")
	fmt.Fprint(s.out, cli.RenderGrid(game, human, true))
	fmt.Fprintln(s.out, "Opponent's waters:")
	fmt.Fprint(s.out, cli.RenderGrid(game, bot, false))

	for {
		line, err := s.readLine("Fire at (x,y): ")
		if err != nil {
			return simple.ShotOutcome{}, err
		}
		c, err := cli.ParseShot(line)
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}
		outcome, err := game.Shoot(bot, c)
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}
		return outcome, nil
	}
}

func (s *Session) botTurn(game *simple.Game) (simple.ShotOutcome, error) {
	if err := s.limiter.Wait(context.Background()); err != nil {
		return simple.ShotOutcome{}, err
	}
	outcome, err := game.RandomShot(human)
	for errors.Is(err, randplay.ErrNoShotFound) {
		// The attempt budget ran out on already-shot cells. The game is
		// not over, so an unshot cell remains: sample again.
		outcome, err = game.RandomShot(human)
	}
	if err != nil {
		return simple.ShotOutcome{}, fmt.Errorf("session: computer turn: %w", err)
	}
	return outcome, nil
}

func (s *Session) announceOutcome(shooter simple.Player, outcome simple.ShotOutcome) {
	name := "You"
	if shooter == bot {
		name = "The computer"
	}
	switch outcome.Kind {
	case simple.Miss:
		s.log.Printf("%s missed.", name)
	case simple.Hit:
		s.log.Printf("%s hit a %s!", name, outcome.Ship)
	case simple.Sunk:
		s.log.Printf("%s sank a %s!", name, outcome.Ship)
	case simple.Victory:
		s.log.Printf("%s sank the last %s!", name, outcome.Ship)
	}
}

func (s *Session) announceWinner(winner simple.Player) {
	if winner == human {
		fmt.Fprintln(s.out, "You win!")
	} else {
		fmt.Fprintln(s.out, "The computer wins.")
	}
}
