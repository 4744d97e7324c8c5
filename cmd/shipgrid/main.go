// Command shipgrid is a text-based, single-process Battleship game: a
// human plays the computer opponent over standard input and output.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shipgrid/shipgrid/internal/session"
)

func main() {
	firstPlayer := flag.String("first_player", "", "who goes first: human|me|computer|bot|random|rand")
	flag.StringVar(firstPlayer, "f", *firstPlayer, "shorthand for --first_player")
	flag.Parse()

	cfg, err := session.LoadConfig(*firstPlayer)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s := session.New(os.Stdin, os.Stdout)
	if err := s.Run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
