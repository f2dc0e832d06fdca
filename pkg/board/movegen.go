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

package board

import (
	"tabiya.dev/x/tabiya/pkg/board/attacks"
	"tabiya.dev/x/tabiya/pkg/board/bitboard"
	"tabiya.dev/x/tabiya/pkg/board/piece"
	"tabiya.dev/x/tabiya/pkg/board/square"
)

// Pseudo-legal move generation. The generated moves are within bounds,
// exclude squares occupied by friendly pieces, and account for blockers
// on sliding rays, but ignore king safety: pins, checks and castling are
// the rules engine's concern.

// pawnMoves computes the pseudo-legal moves and the diagonal attack
// squares of all pawns of the given color.
func (b *Board) pawnMoves(c piece.Color) (bitboard.Board, bitboard.Board) {
	var moves, attackMoves bitboard.Board

	for pawns := b.PieceBBs[c][piece.Pawn]; pawns != bitboard.Empty; {
		from := pawns.Pop()
		moves |= b.pawnMovesFrom(from, c)
		attackMoves |= attacks.PawnAttacks[c][from] &^ b.ColorBBs[c]
	}

	return moves, attackMoves
}

// pawnMovesFrom computes the pseudo-legal moves of a single pawn of the
// given color standing on the given square.
func (b *Board) pawnMovesFrom(from square.Square, c piece.Color) bitboard.Board {
	moves := attacks.Pawn[c][from] &^ b.ColorBBs[c]

	// the double push is only available from the starting rank, and
	// only while both squares in front of the pawn are free
	single := attacks.Pawn[c][from] &^ attacks.PawnAttacks[c][from]
	if single.Count() == 2 {
		var step, double bitboard.Board
		if c == piece.White {
			step = bitboard.Squares[from].North()
			double = step.North()
		} else {
			step = bitboard.Squares[from].South()
			double = step.South()
		}

		if step&b.Free == bitboard.Empty {
			moves &^= step | double
		} else if double&b.Free == bitboard.Empty {
			moves &^= double
		}
	}

	return moves
}

// knightMoves computes the pseudo-legal moves of all knights of the
// given color.
func (b *Board) knightMoves(c piece.Color) bitboard.Board {
	var moves bitboard.Board

	for knights := b.PieceBBs[c][piece.Knight]; knights != bitboard.Empty; {
		from := knights.Pop()
		moves |= attacks.Knight[from] &^ b.ColorBBs[c]
	}

	return moves
}

// kingMoves computes the pseudo-legal moves of the king of the given
// color.
func (b *Board) kingMoves(c piece.Color) bitboard.Board {
	king := b.PieceBBs[c][piece.King]
	if king == bitboard.Empty {
		return bitboard.Empty
	}

	return attacks.King[king.FirstOne()] &^ b.ColorBBs[c]
}

// slidingMoves computes the pseudo-legal moves of all sliding pieces of
// the given type and color.
func (b *Board) slidingMoves(t piece.Type, c piece.Color) bitboard.Board {
	var moves bitboard.Board

	for pieces := b.PieceBBs[c][t]; pieces != bitboard.Empty; {
		moves |= b.slidingMovesFrom(pieces.Pop(), t, c)
	}

	return moves
}

// slidingMovesFrom computes the pseudo-legal moves of a single sliding
// piece of the given type and color standing on the given square. Each
// ray is walked up to its first blocker, which is included in the move
// set only if it can be captured.
func (b *Board) slidingMovesFrom(from square.Square, t piece.Type, c piece.Color) bitboard.Board {
	var moves bitboard.Board

	for _, d := range attacks.SlidingDirections(t) {
		ray := attacks.Rays[from][d]

		blocker, blocked := attacks.Blockers(ray, b.Occupied, d)
		moves |= ray &^ blocked

		// the first blocked piece can be moved onto if it is an
		// opponent piece
		if blocker&b.ColorBBs[c] == bitboard.Empty {
			moves |= blocker
		}
	}

	return moves
}

// MovesFrom computes the pseudo-legal destination squares of the single
// piece of the given type and color standing on the given square.
func (b *Board) MovesFrom(from square.Square, t piece.Type, c piece.Color) bitboard.Board {
	switch t {
	case piece.Pawn:
		return b.pawnMovesFrom(from, c)
	case piece.Knight:
		return attacks.Knight[from] &^ b.ColorBBs[c]
	case piece.King:
		return attacks.King[from] &^ b.ColorBBs[c]
	default:
		return b.slidingMovesFrom(from, t, c)
	}
}
