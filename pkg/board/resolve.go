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

// Source resolution: given the partially-specified origin of a textual
// move, find the candidate origin squares of the piece that could move
// to the target. The returned bitboard may be empty (no such move),
// single (resolved) or hold several squares (ambiguous move); judging
// that is the rules engine's concern.

// hintMask converts optional file and rank disambiguation hints into a
// bitboard mask of matching squares.
func hintMask(fromFile square.File, fromRank square.Rank) bitboard.Board {
	mask := bitboard.Universe
	if fromFile != square.FileNone {
		mask &= bitboard.Files[fromFile]
	}
	if fromRank != square.RankNone {
		mask &= bitboard.Ranks[fromRank]
	}

	return mask
}

// PawnSources finds the candidate origin squares of a pawn of the given
// color moving to the single-bit target to. Pawn captures always name
// their origin file, so fromFile must be valid when capture is set.
func (b *Board) PawnSources(to bitboard.Board, fromFile square.File, capture bool, c piece.Color) bitboard.Board {
	pawns := b.PieceBBs[c][piece.Pawn]
	target := to.FirstOne()
	if target == square.None {
		return bitboard.Empty
	}

	if capture {
		// the origin is on the named file, one rank behind the target
		rank := target.Rank() - 1
		if c == piece.Black {
			rank = target.Rank() + 1
		}

		if fromFile == square.FileNone || rank < square.Rank1 || rank > square.Rank8 {
			return bitboard.Empty
		}

		return bitboard.Squares[square.From(fromFile, rank)] & pawns
	}

	// quiet pushes come from one square behind the target, or from two
	// squares behind when the single-step square holds no pawn, the
	// double-push rank matches, and the skipped square is free
	var single, double bitboard.Board
	if c == piece.White {
		single = to.South()
		double = single.South() & bitboard.Ranks[square.Rank2]
	} else {
		single = to.North()
		double = single.North() & bitboard.Ranks[square.Rank7]
	}

	if from := single & pawns; from != bitboard.Empty {
		return from
	}

	if single&b.Free != bitboard.Empty {
		return double & pawns
	}

	return bitboard.Empty
}

// KnightSources finds the candidate origin squares of a knight of the
// given color moving to the single-bit target to, filtered by the
// optional disambiguation hints.
func (b *Board) KnightSources(to bitboard.Board, fromFile square.File, fromRank square.Rank, c piece.Color) bitboard.Board {
	target := to.FirstOne()
	if target == square.None {
		return bitboard.Empty
	}

	// the knight table is symmetric: the knights which reach the target
	// are the knight moves of the target square
	knights := b.PieceBBs[c][piece.Knight] & attacks.Knight[target]
	return knights & hintMask(fromFile, fromRank)
}

// KingSource returns the origin square of the king of the given color.
func (b *Board) KingSource(c piece.Color) bitboard.Board {
	return b.PieceBBs[c][piece.King]
}

// SlidingSources finds the candidate origin squares of a sliding piece
// of the given type and color moving to the single-bit target to,
// filtered by the optional disambiguation hints. A candidate's path to
// the target must be clear through the current occupancy; the target
// square itself is never counted as a blocker, so capturing moves
// resolve.
func (b *Board) SlidingSources(t piece.Type, to bitboard.Board, fromFile square.File, fromRank square.Rank, c piece.Color) bitboard.Board {
	var sources bitboard.Board

	occupied := b.Occupied &^ to
	pieces := b.PieceBBs[c][t] & hintMask(fromFile, fromRank)
	for pieces != bitboard.Empty {
		from := pieces.Pop()

		for _, d := range attacks.SlidingDirections(t) {
			ray := attacks.Rays[from][d]
			if ray&to == bitboard.Empty {
				continue
			}

			_, blocked := attacks.Blockers(ray, occupied, d)
			if (ray&^blocked)&to != bitboard.Empty {
				sources.Set(from)
				break
			}
		}
	}

	return sources
}
