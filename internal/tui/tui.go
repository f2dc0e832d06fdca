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

// Package tui implements the terminal user interface of the rules
// engine: a board pane, a move-history pane, a status pane and a text
// entry line for moves in standard algebraic notation.
package tui

import (
	"fmt"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"tabiya.dev/x/tabiya/internal/logging"
	"tabiya.dev/x/tabiya/pkg/board/piece"
	"tabiya.dev/x/tabiya/pkg/board/square"
	"tabiya.dev/x/tabiya/pkg/game"
)

var log = logging.GetLog()

// glyphs of the twelve pieces, indexed by color and type
var glyphs = [piece.ColorN][piece.TypeN]rune{
	{' ', '♙', '♘', '♗', '♖', '♕', '♔'},
	{' ', '♟', '♞', '♝', '♜', '♛', '♚'},
}

// App is a running terminal interface around a single game.
type App struct {
	game    *game.Game
	input   string
	history []string
	message string

	board  *widgets.Paragraph
	status *widgets.Paragraph
	moves  *widgets.List
	entry  *widgets.Paragraph
}

// New creates an App playing the given game.
func New(g *game.Game) *App {
	a := &App{
		game:   g,
		board:  widgets.NewParagraph(),
		status: widgets.NewParagraph(),
		moves:  widgets.NewList(),
		entry:  widgets.NewParagraph(),
	}

	a.board.Title = "Board"
	a.status.Title = "Status"
	a.moves.Title = "Moves"
	a.entry.Title = "Move"

	return a
}

// Run initializes the terminal and processes keyboard events until the
// user quits with Escape or Ctrl-C.
func (a *App) Run() error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("tui: initializing terminal: %w", err)
	}
	defer ui.Close()

	width, height := ui.TerminalDimensions()
	a.layout(width, height)
	a.render()

	for e := range ui.PollEvents() {
		switch e.ID {
		case "<C-c>", "<Escape>":
			return nil
		case "<Resize>":
			resize := e.Payload.(ui.Resize)
			a.layout(resize.Width, resize.Height)
		case "<Enter>":
			a.submit()
		case "<Backspace>", "<C-8>":
			if a.input != "" {
				a.input = a.input[:len(a.input)-1]
			}
		default:
			if e.Type == ui.KeyboardEvent && len(e.ID) == 1 {
				a.input += e.ID
			}
		}

		a.render()
	}

	return nil
}

func (a *App) layout(width, height int) {
	boardWidth := 21
	if width < 40 {
		boardWidth = width / 2
	}

	a.board.SetRect(0, 0, boardWidth, height-3)
	a.moves.SetRect(boardWidth, 0, boardWidth+14, height-3)
	a.status.SetRect(boardWidth+14, 0, width, height-3)
	a.entry.SetRect(0, height-3, width, height)

	ui.Clear()
}

func (a *App) submit() {
	move := strings.TrimSpace(a.input)
	a.input = ""
	if move == "" {
		return
	}

	mover := a.game.SideToMove()
	moveNumber := (a.game.Turn + 1) / 2

	if err := a.game.Submit(move); err != nil {
		log.Debugf("move %q rejected: %v", move, err)
		a.message = err.Error()
		return
	}

	a.message = ""
	if mover == piece.White {
		a.history = append(a.history, fmt.Sprintf("%d. %s", moveNumber, move))
	} else {
		a.history = append(a.history, fmt.Sprintf("%d. ... %s", moveNumber, move))
	}
}

func (a *App) render() {
	a.board.Text = a.boardText()
	a.status.Text = a.statusText()
	a.moves.Rows = a.history
	if len(a.history) > 0 {
		a.moves.SelectedRow = len(a.history) - 1
	}
	a.entry.Text = a.input

	ui.Render(a.board, a.moves, a.status, a.entry)
}

func (a *App) boardText() string {
	var str strings.Builder
	for rank := square.Rank8; rank >= square.Rank1; rank-- {
		str.WriteString(rank.String())

		for file := square.FileA; file <= square.FileH; file++ {
			str.WriteByte(' ')

			p := a.game.Board.PieceTypeAt(square.From(file, rank))
			if p == piece.NoPiece {
				str.WriteRune('·')
			} else {
				str.WriteRune(glyphs[p.Color()][p.Type()])
			}
		}

		str.WriteByte('\n')
	}
	str.WriteString("  a b c d e f g h")

	return str.String()
}

func (a *App) statusText() string {
	var lines []string

	side := "white"
	if a.game.SideToMove() == piece.Black {
		side = "black"
	}

	switch a.game.Status {
	case game.Checkmate:
		lines = append(lines, fmt.Sprintf("checkmate, %s loses", side))
	case game.Draw:
		lines = append(lines, "draw")
	default:
		lines = append(lines, side+" to move")
		if a.game.Check {
			lines = append(lines, "check!")
		}
	}

	if a.message != "" {
		lines = append(lines, "", a.message)
	}

	lines = append(lines, "", "Enter submits, Esc quits")
	return strings.Join(lines, "\n")
}
