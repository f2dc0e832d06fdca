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

	"tabiya.dev/x/tabiya/pkg/board"
	"tabiya.dev/x/tabiya/pkg/board/bitboard"
	"tabiya.dev/x/tabiya/pkg/board/piece"
	"tabiya.dev/x/tabiya/pkg/board/square"
)

// mustPlacement builds a position for the move generation tests.
func mustPlacement(t *testing.T, placement string) *board.Board {
	t.Helper()

	b, err := board.FromPlacement(placement)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func squares(ss ...square.Square) bitboard.Board {
	var b bitboard.Board
	for _, s := range ss {
		b.Set(s)
	}
	return b
}

func TestPawnPseudolegal(t *testing.T) {
	// white pawns on a2, d2, e3 and f2; a black pawn blocks a3
	b := mustPlacement(t, "4k3/8/8/8/8/p3P3/P2P1P2/4K3")

	want := squares(
		// the blocked a2 pawn keeps only its diagonal
		square.B3,
		// d2 pushes once or twice; its e3 diagonal holds its own pawn
		square.D3, square.D4, square.C3,
		// e3 pushes once and attacks both diagonals
		square.E4, square.D4, square.F4,
		// f2 pushes once or twice; its e3 diagonal holds its own pawn
		square.F3, square.F4, square.G3,
	)

	if got := b.Pseudolegal[piece.White][piece.Pawn]; got != want {
		t.Errorf("white pawn pseudolegal moves:\n%s", got)
	}
}

func TestPawnDoublePushBlocked(t *testing.T) {
	// a piece on the intermediate square blocks both pushes; a piece
	// on the fourth rank blocks only the double push
	b := mustPlacement(t, "4k3/8/8/8/3n4/2n5/2PP4/4K3")

	if got := b.MovesFrom(square.C2, piece.Pawn, piece.White); got&squares(square.C3, square.C4) != bitboard.Empty {
		t.Errorf("fully blocked pawn can still push:\n%s", got)
	}

	got := b.MovesFrom(square.D2, piece.Pawn, piece.White)
	if !got.IsSet(square.D3) {
		t.Errorf("single push missing from half blocked pawn")
	}
	if got.IsSet(square.D4) {
		t.Errorf("double push through an occupied square")
	}
	if !got.IsSet(square.C3) {
		t.Errorf("capture of the blocking knight missing")
	}
}

func TestKnightPseudolegal(t *testing.T) {
	// a knight on b1 with a friendly pawn on d2
	b := mustPlacement(t, "4k3/8/8/8/8/8/3P4/1N2K3")

	want := squares(square.A3, square.C3)
	if got := b.MovesFrom(square.B1, piece.Knight, piece.White); got != want {
		t.Errorf("knight moves from b1:\n%s", got)
	}
}

func TestSlidingPseudolegal(t *testing.T) {
	// a rook on d4 with a friendly pawn on d6 and an enemy pawn on f4
	b := mustPlacement(t, "4k3/8/3P4/8/3R1p2/8/8/4K3")

	got := b.MovesFrom(square.D4, piece.Rook, piece.White)

	want := squares(
		square.D5,             // stops before the friendly pawn
		square.E4, square.F4,  // captures the enemy pawn
		square.D3, square.D2, square.D1,
		square.A4, square.B4, square.C4,
	)

	if got != want {
		t.Errorf("rook moves from d4:\n%s", got)
	}

	if got.IsSet(square.D6) {
		t.Errorf("rook can capture its own pawn")
	}
}

func TestQueenPseudolegal(t *testing.T) {
	b := mustPlacement(t, "4k3/8/8/8/8/8/8/QK6")

	got := b.MovesFrom(square.A1, piece.Queen, piece.White)

	if got.IsSet(square.B1) {
		t.Errorf("queen can move onto its own king")
	}
	for _, s := range []square.Square{square.A8, square.H8, square.A2, square.B2} {
		if !got.IsSet(s) {
			t.Errorf("queen move to %s missing", s)
		}
	}
}

func TestKingPseudolegal(t *testing.T) {
	b := board.New()

	// the king is boxed in at the start
	if got := b.Pseudolegal[piece.White][piece.King]; got != bitboard.Empty {
		t.Errorf("king has moves in the starting position:\n%s", got)
	}
}

func TestAttackSetsUsePawnAttacksOnly(t *testing.T) {
	b := board.New()

	// the double-push squares are pushes, not attacks
	if b.AttackBBs[piece.White].IsSet(square.E4) {
		t.Errorf("quiet pawn push counted as an attack")
	}
	if !b.AttackBBs[piece.White].IsSet(square.F3) {
		t.Errorf("pawn diagonal missing from the attack set")
	}
}
