// Copyright © 2024 The Tabiya Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package repl implements the line-oriented front-end of the rules
// engine. It reads moves in standard algebraic notation from its input
// and plays them on a game, printing the position after every accepted
// move.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/mitchellh/go-wordwrap"

	"tabiya.dev/x/tabiya/internal/logging"
	"tabiya.dev/x/tabiya/pkg/board"
	"tabiya.dev/x/tabiya/pkg/board/piece"
	"tabiya.dev/x/tabiya/pkg/board/square"
	"tabiya.dev/x/tabiya/pkg/game"
	"tabiya.dev/x/tabiya/pkg/san"
)

var log = logging.GetLog()

const helpText = "Enter a move for the side to move in standard algebraic " +
	"notation, for example e4, Nf3, exd5, O-O or e8=Q. Disambiguate with " +
	"a file, a rank or both, as in Nbd2 or R1e2. Commands: 'board' prints " +
	"the position again, 'new' starts a fresh game, 'fen <placement>' " +
	"starts from the given piece placement, 'help' shows this text and " +
	"'quit' leaves."

// REPL is an interactive session reading moves from In and reporting on
// Out. The zero value is not usable; create sessions with New.
type REPL struct {
	Game *game.Game

	in  *bufio.Scanner
	out io.Writer
}

// New creates a REPL playing the given game between the given streams.
func New(g *game.Game, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		Game: g,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run reads and dispatches input until the input ends or the session is
// quit. The game continues to accept input after it ends, so that the
// final position can still be inspected.
func (r *REPL) Run() error {
	r.printBoard()

	for {
		r.prompt()

		if !r.in.Scan() {
			return r.in.Err()
		}

		input := strings.TrimSpace(r.in.Text())
		switch {
		case input == "":
			continue
		case input == "quit" || input == "exit":
			return nil
		case input == "help":
			fmt.Fprintln(r.out, wordwrap.WrapString(helpText, 72))
		case input == "board":
			r.printBoard()
		case input == "new":
			r.Game = game.NewGame()
			r.printBoard()
		case strings.HasPrefix(input, "fen "):
			r.loadPlacement(strings.TrimPrefix(input, "fen "))
		default:
			r.submit(input)
		}
	}
}

func (r *REPL) prompt() {
	side := "white"
	if r.Game.SideToMove() == piece.Black {
		side = "black"
	}

	moveNumber := (r.Game.Turn + 1) / 2
	colorstring.Fprintf(r.out, "[bold]%d. %s>[reset] ", moveNumber, side)
}

func (r *REPL) loadPlacement(placement string) {
	b, err := board.FromPlacement(strings.TrimSpace(placement))
	if err != nil {
		colorstring.Fprintln(r.out, "[red]invalid piece placement")
		return
	}

	r.Game = game.New(b)
	r.printBoard()
}

func (r *REPL) submit(move string) {
	err := r.Game.Submit(move)
	if err == nil {
		r.printBoard()
		r.printState()
		return
	}

	log.Debugf("move %q rejected: %v", move, err)

	var parseErr san.ParseError
	switch {
	case errors.As(err, &parseErr):
		colorstring.Fprintf(r.out, "[red]cannot read %q[reset]: %v\n", move, parseErr)
	case errors.Is(err, game.ErrGameOver):
		colorstring.Fprintln(r.out, "[yellow]the game is over")
	default:
		colorstring.Fprintf(r.out, "[red]illegal move %q[reset]: %v\n", move, err)
	}
}

func (r *REPL) printState() {
	switch r.Game.Status {
	case game.Checkmate:
		winner := "white"
		if r.Game.SideToMove() == piece.White {
			winner = "black"
		}
		colorstring.Fprintf(r.out, "[green]checkmate, %s wins\n", winner)
	case game.Draw:
		colorstring.Fprintln(r.out, "[green]the game is a draw")
	default:
		if r.Game.Check {
			colorstring.Fprintln(r.out, "[yellow]check")
		}
	}
}

// printBoard renders the position with white pieces bold and black
// pieces cyan, from White's point of view.
func (r *REPL) printBoard() {
	for rank := square.Rank8; rank >= square.Rank1; rank-- {
		fmt.Fprintf(r.out, "%s ", rank)

		for file := square.FileA; file <= square.FileH; file++ {
			p := r.Game.Board.PieceTypeAt(square.From(file, rank))

			switch {
			case p == piece.NoPiece:
				fmt.Fprint(r.out, " .")
			case p.Color() == piece.White:
				colorstring.Fprintf(r.out, " [bold]%s", p)
			default:
				colorstring.Fprintf(r.out, " [cyan]%s", p)
			}
		}

		fmt.Fprintln(r.out)
	}

	fmt.Fprintln(r.out, "   a b c d e f g h")
}
