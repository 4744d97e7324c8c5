// Package cli implements the text front end's command grammar and grid
// rendering: parsing the placement/shot/meta commands a player types,
// and rendering a board as a fixed-width terminal grid.
package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shipgrid/shipgrid/internal/rect"
	"github.com/shipgrid/shipgrid/internal/simple"
)

// CommandKind classifies a parsed setup-phase command line.
type CommandKind int

const (
	CmdPlace CommandKind = iota
	CmdUnplace
	CmdUnplaceAll
	CmdRandomize
	CmdDone
	CmdHelp
	CmdUnrecognized
)

// Command is one parsed setup-phase line.
type Command struct {
	Kind  CommandKind
	Ship  simple.Ship
	Start rect.Coordinate
	Dir   simple.Orientation
	Raw   string
}

var shipAliases = map[string]simple.Ship{
	"cv": simple.Carrier, "carrier": simple.Carrier,
	"bb": simple.Battleship, "battleship": simple.Battleship,
	"ca": simple.Cruiser, "cl": simple.Cruiser, "cruiser": simple.Cruiser,
	"ss": simple.Submarine, "sub": simple.Submarine, "submarine": simple.Submarine,
	"dd": simple.Destroyer, "destroyer": simple.Destroyer,
}

var dirAliases = map[string]simple.Orientation{
	"up": simple.Up, "north": simple.Up, "u": simple.Up, "n": simple.Up,
	"down": simple.Down, "south": simple.Down, "d": simple.Down, "s": simple.Down,
	"left": simple.Left, "west": simple.Left, "l": simple.Left, "w": simple.Left,
	"right": simple.Right, "east": simple.Right, "r": simple.Right, "e": simple.Right,
}

// placeRegex captures: ship alias, x, y, dir. The verb, the optional
// preposition and the x/y separator are matched but not captured.
var placeRegex = regexp.MustCompile(
	`^(?:place|put)\s+(\S+)\s+(?:(?:at|on|to|->|=>)\s+)?(-?\d+)\s*[, ]\s*(-?\d+)\s+(\S+)$`,
)

var unplaceRegex = regexp.MustCompile(`^(?:unplace|remove)\s+(\S+)$`)

// ParseSetupCommand parses one line typed during the placement phase.
// line is matched case-insensitively after trimming; callers need not
// lowercase it first.
func ParseSetupCommand(line string) (Command, error) {
	raw := line
	line = strings.ToLower(strings.TrimSpace(line))

	switch line {
	case "done", "start":
		return Command{Kind: CmdDone, Raw: raw}, nil
	case "help", "h", "?":
		return Command{Kind: CmdHelp, Raw: raw}, nil
	case "randomize":
		return Command{Kind: CmdRandomize, Raw: raw}, nil
	case "unplace all", "clear":
		return Command{Kind: CmdUnplaceAll, Raw: raw}, nil
	}

	if m := unplaceRegex.FindStringSubmatch(line); m != nil {
		ship, ok := shipAliases[m[1]]
		if !ok {
			return Command{}, fmt.Errorf("cli: unknown ship %q", m[1])
		}
		return Command{Kind: CmdUnplace, Ship: ship, Raw: raw}, nil
	}

	if m := placeRegex.FindStringSubmatch(line); m != nil {
		ship, ok := shipAliases[m[1]]
		if !ok {
			return Command{}, fmt.Errorf("cli: unknown ship %q", m[1])
		}
		dir, ok := dirAliases[m[4]]
		if !ok {
			return Command{}, fmt.Errorf("cli: unknown direction %q", m[4])
		}
		x, err := strconv.Atoi(m[2])
		if err != nil {
			return Command{}, fmt.Errorf("cli: bad x coordinate %q", m[2])
		}
		y, err := strconv.Atoi(m[3])
		if err != nil {
			return Command{}, fmt.Errorf("cli: bad y coordinate %q", m[3])
		}
		if !inRange(x) || !inRange(y) {
			return Command{}, fmt.Errorf("cli: coordinate (%d,%d) out of [0,9]", x, y)
		}
		return Command{
			Kind: CmdPlace, Ship: ship,
			Start: rect.Coordinate{X: x, Y: y}, Dir: dir, Raw: raw,
		}, nil
	}

	return Command{Kind: CmdUnrecognized, Raw: raw}, nil
}

var shotRegex = regexp.MustCompile(`^(-?\d+)\s*[, ]\s*(-?\d+)$`)

// ParseShot parses a shot prompt line, `<x>,<y>` or `<x> <y>`.
func ParseShot(line string) (rect.Coordinate, error) {
	line = strings.ToLower(strings.TrimSpace(line))
	m := shotRegex.FindStringSubmatch(line)
	if m == nil {
		return rect.Coordinate{}, fmt.Errorf("cli: could not parse shot %q", line)
	}
	x, err := strconv.Atoi(m[1])
	if err != nil {
		return rect.Coordinate{}, fmt.Errorf("cli: bad x coordinate %q", m[1])
	}
	y, err := strconv.Atoi(m[2])
	if err != nil {
		return rect.Coordinate{}, fmt.Errorf("cli: bad y coordinate %q", m[2])
	}
	if !inRange(x) || !inRange(y) {
		return rect.Coordinate{}, fmt.Errorf("cli: coordinate (%d,%d) out of [0,9]", x, y)
	}
	return rect.Coordinate{X: x, Y: y}, nil
}

func inRange(v int) bool { return v >= 0 && v <= 9 }

// FirstPlayerChoice is the result of parsing --first_player/-f.
type FirstPlayerChoice int

const (
	FirstPlayerHuman FirstPlayerChoice = iota
	FirstPlayerBot
	FirstPlayerRandom
)

// ParseFirstPlayerFlag parses the --first_player/-f flag value.
func ParseFirstPlayerFlag(v string) (FirstPlayerChoice, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "human", "me":
		return FirstPlayerHuman, nil
	case "computer", "bot":
		return FirstPlayerBot, nil
	case "random", "rand":
		return FirstPlayerRandom, nil
	default:
		return 0, fmt.Errorf("cli: unknown --first_player value %q", v)
	}
}

// ParseFirstPlayerPrompt parses the interactive "go first?" answer.
// An empty line defaults to yes (human first), per spec.
func ParseFirstPlayerPrompt(line string) (human bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "yes", "y", "first", "1", "1st", "":
		return true, true
	case "no", "n", "second", "2", "2nd":
		return false, true
	default:
		return false, false
	}
}
