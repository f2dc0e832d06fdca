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

package game

import (
	"tabiya.dev/x/tabiya/pkg/board"
	"tabiya.dev/x/tabiya/pkg/board/attacks"
	"tabiya.dev/x/tabiya/pkg/board/bitboard"
	"tabiya.dev/x/tabiya/pkg/board/piece"
	"tabiya.dev/x/tabiya/pkg/board/square"
)

// updateStatus recomputes the game status for the side to move. It must
// run after the pin and check state has been refreshed, since checkmate
// and stalemate are properties of the new position.
func (g *Game) updateStatus() {
	if insufficientMaterial(g.Board) {
		g.Status = Draw
		return
	}

	if g.hasLegalMove(g.SideToMove()) {
		g.Status = Ongoing
		return
	}

	if g.Check {
		g.Status = Checkmate
	} else {
		g.Status = Draw // stalemate
	}
}

// insufficientMaterial checks whether the remaining material is too
// thin for either side to deliver mate: bare kings with at most two
// knights on one side, or at most one minor piece each.
func insufficientMaterial(b *board.Board) bool {
	// any pawn, rook or queen is mating material
	if b.PieceBBs[piece.White][piece.Pawn] != bitboard.Empty ||
		b.PieceBBs[piece.Black][piece.Pawn] != bitboard.Empty ||
		b.PieceBBs[piece.White][piece.Rook] != bitboard.Empty ||
		b.PieceBBs[piece.Black][piece.Rook] != bitboard.Empty ||
		b.PieceBBs[piece.White][piece.Queen] != bitboard.Empty ||
		b.PieceBBs[piece.Black][piece.Queen] != bitboard.Empty {
		return false
	}

	whiteKnights := b.PieceBBs[piece.White][piece.Knight].Count()
	blackKnights := b.PieceBBs[piece.Black][piece.Knight].Count()
	whiteBishops := b.PieceBBs[piece.White][piece.Bishop].Count()
	blackBishops := b.PieceBBs[piece.Black][piece.Bishop].Count()

	whiteMinors := whiteKnights + whiteBishops
	blackMinors := blackKnights + blackBishops

	switch {
	case whiteMinors == 0 && blackMinors == 0:
		return true // K vs K
	case whiteMinors <= 1 && blackMinors <= 1:
		return true // lone minor piece against at most a minor piece
	case whiteKnights == 2 && whiteBishops == 0 && blackMinors == 0:
		return true // two knights cannot force mate
	case blackKnights == 2 && blackBishops == 0 && whiteMinors == 0:
		return true
	default:
		return false
	}
}

// hasLegalMove checks whether the given color has at least one legal
// move, by running every pseudo-legal destination of every piece
// through the validation pipeline.
func (g *Game) hasLegalMove(c piece.Color) bool {
	for t := piece.Pawn; t <= piece.King; t++ {
		for pieces := g.Board.PieceBBs[c][t]; pieces != bitboard.Empty; {
			from := pieces.Pop()

			for moves := g.Board.MovesFrom(from, t, c); moves != bitboard.Empty; {
				if g.legalMove(t, from, moves.Pop(), c) {
					return true
				}
			}
		}
	}

	return false
}

// legalMove checks whether moving the piece of the given type and color
// between the given squares would pass validation.
func (g *Game) legalMove(t piece.Type, fromSq, toSq square.Square, c piece.Color) bool {
	from := bitboard.Squares[fromSq]
	to := bitboard.Squares[toSq]

	isCapture := g.Board.IsCapture(to, c)
	if t == piece.Pawn {
		// a pawn destination off its file is a capture attempt, onto
		// the en-passant target included
		isCapture = to&attacks.PawnAttacks[c][fromSq] != bitboard.Empty
	}

	if t == piece.King && to&g.Board.AttackBBs[c.Other()] != bitboard.Empty {
		return false
	}

	return g.validateMove(t, from, to, isCapture, c) == nil
}
