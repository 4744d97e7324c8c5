// Package session wires the simple façade, randplay and internal/cli
// into the interactive setup/play loop cmd/shipgrid drives.
package session

import (
	"fmt"
	"strings"

	"github.com/shipgrid/shipgrid/internal/cli"
)

// Config holds shipgrid's entire configuration surface: one flag.
type Config struct {
	// FirstPlayer is nil when --first_player/-f was left empty: the
	// session then falls back to the interactive yes/no prompt instead
	// of silently picking a default.
	FirstPlayer *cli.FirstPlayerChoice
}

// LoadConfig validates the --first_player/-f flag value. An empty
// firstPlayer defers the decision to the session's interactive prompt.
func LoadConfig(firstPlayer string) (Config, error) {
	if strings.TrimSpace(firstPlayer) == "" {
		return Config{}, nil
	}
	choice, err := cli.ParseFirstPlayerFlag(firstPlayer)
	if err != nil {
		return Config{}, fmt.Errorf("session: loading config: %w", err)
	}
	return Config{FirstPlayer: &choice}, nil
}
