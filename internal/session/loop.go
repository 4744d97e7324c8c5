package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/shipgrid/shipgrid/internal/cli"
	"github.com/shipgrid/shipgrid/internal/simple"
)

// human and bot are the two fixed seats: the human plays P1 at the
// terminal, the computer opponent plays P2. A true networked two-human
// game is out of scope (see spec's Non-goals on networked play); this
// single local process only ever has one human at the keyboard.
const (
	human = simple.P1
	bot   = simple.P2
)

// botTurnInterval paces the computer opponent's shots so a human
// reading the board between moves isn't outrun by it.
const botTurnInterval = 600 * time.Millisecond

// Session drives one game end to end: setup prompts, the play loop, and
// graceful exit on EOF.
type Session struct {
	in      *bufio.Scanner
	out     io.Writer
	log     *log.Logger
	limiter *rate.Limiter
}

// New builds a Session reading commands from in and writing prompts and
// board renders to out. Every log line is tagged with a short run id
// from github.com/google/uuid.
func New(in io.Reader, out io.Writer) *Session {
	runID := uuid.NewString()[:8]
	logger := log.New(out, fmt.Sprintf("[shipgrid %s] ", runID), log.LstdFlags)
	return &Session{
		in:      bufio.NewScanner(in),
		out:     out,
		log:     logger,
		limiter: rate.NewLimiter(rate.Every(botTurnInterval), 1),
	}
}

// errEOF signals standard input closed mid-prompt: Run treats this as a
// graceful termination, not a failure.
var errEOF = errors.New("session: input closed")

func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return s.in.Text(), nil
}

// Run plays exactly one game and returns nil on completion or graceful
// EOF. Any other error is an I/O failure or a failure to set up the
// computer's fleet or start the game.
func (s *Session) Run(cfg Config) error {
	firstPlayer, err := s.resolveFirstPlayer(cfg)
	if err != nil {
		if errors.Is(err, errEOF) {
			return nil
		}
		return err
	}

	setup := simple.NewGameSetup()
	if err := s.runSetupPhase(setup); err != nil {
		if errors.Is(err, errEOF) {
			return nil
		}
		return err
	}
	if err := setup.RandomizeRemaining(bot); err != nil {
		return fmt.Errorf("session: randomizing computer fleet: %w", err)
	}

	game, ok := setup.Start()
	if !ok {
		return fmt.Errorf("session: setup reported ready but Start failed")
	}
	for game.Current() != firstPlayer {
		game.AdvanceTurn()
	}

	if err := s.runPlayPhase(game); err != nil {
		if errors.Is(err, errEOF) {
			return nil
		}
		return err
	}
	return nil
}

func (s *Session) resolveFirstPlayer(cfg Config) (simple.Player, error) {
	choice := cli.FirstPlayerHuman
	if cfg.FirstPlayer != nil {
		choice = *cfg.FirstPlayer
	} else {
		line, err := s.readLine("Would you like to go first? [Y/n] ")
		if err != nil {
			return 0, err
		}
		goesFirst, ok := cli.ParseFirstPlayerPrompt(line)
		if !ok {
			fmt.Fprintln(s.out, "Please answer yes or no.")
			return s.resolveFirstPlayer(cfg)
		}
		if goesFirst {
			choice = cli.FirstPlayerHuman
		} else {
			choice = cli.FirstPlayerBot
		}
	}

	switch choice {
	case cli.FirstPlayerHuman:
		return human, nil
	case cli.FirstPlayerBot:
		return bot, nil
	case cli.FirstPlayerRandom:
		if rand.N(2) == 0 {
			return human, nil
		}
		return bot, nil
	default:
		return human, nil
	}
}
