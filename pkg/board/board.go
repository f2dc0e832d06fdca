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

// Package board implements a bitboard chess position along with
// pseudo-legal move generation and other related utilities.
package board

import (
	"strings"

	"tabiya.dev/x/tabiya/pkg/board/bitboard"
	"tabiya.dev/x/tabiya/pkg/board/piece"
	"tabiya.dev/x/tabiya/pkg/board/square"
)

// StartingPlacement is the piece placement of the standard chess
// starting position.
const StartingPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// Board represents the state of a chessboard at a given position. It
// holds one bitboard per color and piece type, together with derived
// aggregate and movement bitboards which are kept consistent with the
// piece bitboards by Recompute.
//
// Board is a plain value: copying it yields an independent position,
// which is what the king-safety simulation relies on.
type Board struct {
	// PieceBBs contains the bitboard of every color and piece type.
	// The piece.NoType slot of each color is always empty.
	PieceBBs [piece.ColorN][piece.TypeN]bitboard.Board

	// aggregates, derived from PieceBBs
	ColorBBs [piece.ColorN]bitboard.Board
	Occupied bitboard.Board
	Free     bitboard.Board

	// Pseudolegal contains the union of the pseudo-legal destination
	// squares of every color and piece type. The pawn entry includes
	// quiet pushes; PawnAttackBBs holds the diagonal attacks alone.
	Pseudolegal   [piece.ColorN][piece.TypeN]bitboard.Board
	PawnAttackBBs [piece.ColorN]bitboard.Board

	// AttackBBs is the union of every attack of a color: diagonal
	// attacks for pawns, pseudo-legal destinations for the rest.
	AttackBBs [piece.ColorN]bitboard.Board
}

// New creates a Board containing the standard starting position.
func New() *Board {
	b, err := FromPlacement(StartingPlacement)
	if err != nil {
		panic("board: bad starting placement: " + err.Error())
	}

	return b
}

// FromPlacement creates a Board from the piece-placement field of a FEN
// string: eight rank runs from rank 8 down to rank 1 separated by "/",
// with digits 1-8 advancing over empty files.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
func FromPlacement(placement string) (*Board, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != square.RankN {
		return nil, &PlacementError{placement}
	}

	var board Board
	for i, rankData := range ranks {
		rank := square.Rank8 - square.Rank(i)

		file := square.FileA
		for j := 0; j < len(rankData); j++ {
			if file > square.FileH {
				return nil, &PlacementError{placement}
			}

			id := rankData[j]
			if id >= '1' && id <= '8' {
				file += square.File(id - '0') // skip over empty squares
				continue
			}

			p := piece.NewFromString(id)
			if p == piece.NoPiece {
				return nil, &PlacementError{placement}
			}

			board.PieceBBs[p.Color()][p.Type()].Set(square.From(file, rank))
			file++
		}

		if file != square.FileN {
			return nil, &PlacementError{placement}
		}
	}

	board.updateAggregates()
	board.Recompute()
	return &board, nil
}

// PlacementError is the error returned for malformed FEN placements.
type PlacementError struct {
	Placement string
}

func (e *PlacementError) Error() string {
	return "board: invalid piece placement " + e.Placement
}

// updateAggregates rebuilds the aggregate bitboards from the piece
// bitboards.
func (b *Board) updateAggregates() {
	for c := piece.White; c <= piece.Black; c++ {
		b.ColorBBs[c] = bitboard.Empty
		for t := piece.Pawn; t <= piece.King; t++ {
			b.ColorBBs[c] |= b.PieceBBs[c][t]
		}
	}

	b.Occupied = b.ColorBBs[piece.White] | b.ColorBBs[piece.Black]
	b.Free = ^b.Occupied
}

// King returns the king bitboard of the given color.
func (b *Board) King(c piece.Color) bitboard.Board {
	return b.PieceBBs[c][piece.King]
}

// pieceAt finds the piece type of the given color whose bitboard
// contains the given position, or piece.NoType.
func (b *Board) pieceAt(pos bitboard.Board, c piece.Color) piece.Type {
	for t := piece.Pawn; t <= piece.King; t++ {
		if b.PieceBBs[c][t]&pos != bitboard.Empty {
			return t
		}
	}

	return piece.NoType
}

// PieceTypeAt returns the piece standing on the given square, or
// piece.NoPiece for an empty square.
func (b *Board) PieceTypeAt(s square.Square) piece.Piece {
	pos := bitboard.Squares[s]
	for c := piece.White; c <= piece.Black; c++ {
		if t := b.pieceAt(pos, c); t != piece.NoType {
			return piece.New(t, c)
		}
	}

	return piece.NoPiece
}

// MovePiece moves the piece of the given color standing on from to the
// to square, whichever piece bitboard it lives in. It is a no-op if no
// piece of that color stands on from. Both positions are single-bit
// bitboards. Only aggregates are refreshed; call Recompute to refresh
// the movement bitboards.
func (b *Board) MovePiece(from, to bitboard.Board, c piece.Color) {
	t := b.pieceAt(from, c)
	if t == piece.NoType {
		return
	}

	b.PieceBBs[c][t] = (b.PieceBBs[c][t] ^ from) | to
	b.updateAggregates()
}

// RemovePiece removes the piece of the given color standing on the
// given position, whichever piece bitboard it lives in. It is a no-op
// if no piece of that color stands there.
func (b *Board) RemovePiece(pos bitboard.Board, c piece.Color) {
	t := b.pieceAt(pos, c)
	if t == piece.NoType {
		return
	}

	b.PieceBBs[c][t] ^= pos
	b.updateAggregates()
}

// ReplacePawn promotes the pawn of the given color standing on the
// given position to the given piece type. It is a no-op if no pawn of
// that color stands there, or if the type is not a promotion target.
func (b *Board) ReplacePawn(pos bitboard.Board, c piece.Color, t piece.Type) {
	if !t.IsPromotion() {
		return
	}

	if b.PieceBBs[c][piece.Pawn]&pos == bitboard.Empty {
		return
	}

	b.PieceBBs[c][piece.Pawn] ^= pos
	b.PieceBBs[c][t] |= pos
	b.updateAggregates()
}

// Recompute rebuilds the pseudo-legal movement and attack bitboards
// from the piece bitboards. It must be called after the position has
// been mutated, before the movement bitboards are read again.
func (b *Board) Recompute() {
	for c := piece.White; c <= piece.Black; c++ {
		b.Pseudolegal[c][piece.Pawn], b.PawnAttackBBs[c] = b.pawnMoves(c)
		b.Pseudolegal[c][piece.Knight] = b.knightMoves(c)
		b.Pseudolegal[c][piece.Bishop] = b.slidingMoves(piece.Bishop, c)
		b.Pseudolegal[c][piece.Rook] = b.slidingMoves(piece.Rook, c)
		b.Pseudolegal[c][piece.Queen] = b.slidingMoves(piece.Queen, c)
		b.Pseudolegal[c][piece.King] = b.kingMoves(c)
	}

	// pawns attack only diagonally, so their pseudo-legal moves do not
	// contribute to the attacked squares
	for c := piece.White; c <= piece.Black; c++ {
		b.AttackBBs[c] = b.PawnAttackBBs[c] |
			b.Pseudolegal[c][piece.Knight] |
			b.Pseudolegal[c][piece.Bishop] |
			b.Pseudolegal[c][piece.Rook] |
			b.Pseudolegal[c][piece.Queen] |
			b.Pseudolegal[c][piece.King]
	}
}

// IsCapture checks if the given target position holds a piece of the
// opponent of the given color.
func (b *Board) IsCapture(to bitboard.Board, c piece.Color) bool {
	return to&b.ColorBBs[c.Other()] != bitboard.Empty
}

// String converts a Board into a human readable string.
func (b *Board) String() string {
	var str strings.Builder
	for rank := square.Rank8; rank >= square.Rank1; rank-- {
		str.WriteString(rank.String())
		for file := square.FileA; file <= square.FileH; file++ {
			str.WriteByte(' ')
			p := b.PieceTypeAt(square.From(file, rank))
			if p == piece.NoPiece {
				str.WriteByte('.')
			} else {
				str.WriteString(p.String())
			}
		}
		str.WriteByte('\n')
	}
	str.WriteString("  a b c d e f g h\n")

	return str.String()
}
