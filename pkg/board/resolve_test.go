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

package board_test

import (
	"testing"

	"tabiya.dev/x/tabiya/pkg/board/bitboard"
	"tabiya.dev/x/tabiya/pkg/board/piece"
	"tabiya.dev/x/tabiya/pkg/board/square"
)

func TestPawnSources(t *testing.T) {
	b := mustPlacement(t, "4k3/8/8/3p4/4P3/8/PP6/4K3")

	// a quiet single push
	got := b.PawnSources(bitboard.Squares[square.E5], square.FileNone, false, piece.White)
	if got != bitboard.Squares[square.E4] {
		t.Errorf("sources of e5:\n%s", got)
	}

	// a quiet double push
	got = b.PawnSources(bitboard.Squares[square.A4], square.FileNone, false, piece.White)
	if got != bitboard.Squares[square.A2] {
		t.Errorf("sources of a4:\n%s", got)
	}

	// a capture names its origin file
	got = b.PawnSources(bitboard.Squares[square.D5], square.FileE, true, piece.White)
	if got != bitboard.Squares[square.E4] {
		t.Errorf("sources of exd5:\n%s", got)
	}

	// black pawns resolve backwards
	got = b.PawnSources(bitboard.Squares[square.D4], square.FileNone, false, piece.Black)
	if got != bitboard.Squares[square.D5] {
		t.Errorf("sources of d4:\n%s", got)
	}

	// no pawn reaches h4 in one quiet move
	got = b.PawnSources(bitboard.Squares[square.H4], square.FileNone, false, piece.White)
	if got != bitboard.Empty {
		t.Errorf("sources of h4:\n%s", got)
	}
}

func TestPawnSourcesPreferSingleStep(t *testing.T) {
	// pawns stacked on b2 and b3: only the b3 pawn can reach b4
	b := mustPlacement(t, "4k3/8/8/8/8/1P6/1P6/4K3")

	got := b.PawnSources(bitboard.Squares[square.B4], square.FileNone, false, piece.White)
	if got != bitboard.Squares[square.B3] {
		t.Errorf("sources of b4:\n%s", got)
	}
}

func TestKnightSources(t *testing.T) {
	// knights on b1 and f3 both reach d2
	b := mustPlacement(t, "4k3/8/8/8/8/5N2/8/1N2K3")

	to := bitboard.Squares[square.D2]

	got := b.KnightSources(to, square.FileNone, square.RankNone, piece.White)
	if got != squares(square.B1, square.F3) {
		t.Errorf("undisambiguated sources of Nd2:\n%s", got)
	}

	// a file hint singles out one knight
	got = b.KnightSources(to, square.FileB, square.RankNone, piece.White)
	if got != bitboard.Squares[square.B1] {
		t.Errorf("sources of Nbd2:\n%s", got)
	}

	// a rank hint works as well
	got = b.KnightSources(to, square.FileNone, square.Rank3, piece.White)
	if got != bitboard.Squares[square.F3] {
		t.Errorf("sources of N3d2:\n%s", got)
	}
}

func TestSlidingSources(t *testing.T) {
	// rooks on a1 and h1; a knight on c1 blocks the a1 rook
	b := mustPlacement(t, "4k3/8/8/8/8/8/8/R1N1K2R")

	to := bitboard.Squares[square.F1]

	got := b.SlidingSources(piece.Rook, to, square.FileNone, square.RankNone, piece.White)
	if got != bitboard.Squares[square.H1] {
		t.Errorf("sources of Rf1:\n%s", got)
	}

	// the blocked rook is not a source even when named explicitly
	got = b.SlidingSources(piece.Rook, to, square.FileA, square.RankNone, piece.White)
	if got != bitboard.Empty {
		t.Errorf("sources of Raf1:\n%s", got)
	}
}

func TestSlidingSourcesThroughTarget(t *testing.T) {
	// the capture target itself must not count as a blocker
	b := mustPlacement(t, "4k3/8/8/3q4/8/8/3R4/3RK3")

	to := bitboard.Squares[square.D5]

	got := b.SlidingSources(piece.Rook, to, square.FileNone, square.RankNone, piece.White)
	if got != bitboard.Squares[square.D2] {
		t.Errorf("sources of Rxd5:\n%s", got)
	}
}

func TestSlidingSourcesAmbiguous(t *testing.T) {
	// queens on d1 and d8 both reach d5
	b := mustPlacement(t, "3QK3/8/8/8/8/8/8/3Q3k")

	to := bitboard.Squares[square.D5]

	got := b.SlidingSources(piece.Queen, to, square.FileNone, square.RankNone, piece.White)
	if got != squares(square.D1, square.D8) {
		t.Errorf("sources of Qd5:\n%s", got)
	}

	got = b.SlidingSources(piece.Queen, to, square.FileNone, square.Rank8, piece.White)
	if got != bitboard.Squares[square.D8] {
		t.Errorf("sources of Q8d5:\n%s", got)
	}
}

func TestKingSource(t *testing.T) {
	b := mustPlacement(t, "4k3/8/8/8/8/8/8/4K3")

	if got := b.KingSource(piece.White); got != bitboard.Squares[square.E1] {
		t.Errorf("white king source:\n%s", got)
	}
	if got := b.KingSource(piece.Black); got != bitboard.Squares[square.E8] {
		t.Errorf("black king source:\n%s", got)
	}
}
