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

package attacks_test

import (
	"testing"

	"tabiya.dev/x/tabiya/pkg/board/attacks"
	"tabiya.dev/x/tabiya/pkg/board/bitboard"
	"tabiya.dev/x/tabiya/pkg/board/piece"
	"tabiya.dev/x/tabiya/pkg/board/square"
)

func TestKnightSymmetry(t *testing.T) {
	for s := square.A1; s <= square.H8; s++ {
		for moves := attacks.Knight[s]; moves != bitboard.Empty; {
			target := moves.Pop()
			if !attacks.Knight[target].IsSet(s) {
				t.Errorf("%s in knight moves of %s but not vice versa", target, s)
			}
		}
	}
}

func TestKingSymmetry(t *testing.T) {
	for s := square.A1; s <= square.H8; s++ {
		for moves := attacks.King[s]; moves != bitboard.Empty; {
			target := moves.Pop()
			if !attacks.King[target].IsSet(s) {
				t.Errorf("%s in king moves of %s but not vice versa", target, s)
			}
		}
	}
}

func TestKnightCorners(t *testing.T) {
	want := bitboard.Squares[square.B3] | bitboard.Squares[square.C2]
	if attacks.Knight[square.A1] != want {
		t.Errorf("knight moves of a1:\n%s", attacks.Knight[square.A1])
	}

	if count := attacks.Knight[square.D4].Count(); count != 8 {
		t.Errorf("knight on d4 has %d moves, want 8", count)
	}
}

// Pawn attacks of the two colors mirror each other vertically.
func TestPawnAttackMirror(t *testing.T) {
	for s := square.A2; s <= square.H7; s++ {
		mirror := square.From(s.File(), square.Rank7-s.Rank()+square.Rank2)

		white := attacks.PawnAttacks[piece.White][s]
		black := attacks.PawnAttacks[piece.Black][mirror]

		for white != bitboard.Empty {
			target := white.Pop()
			mirrored := square.From(target.File(), square.Rank7-target.Rank()+square.Rank2)
			if !black.IsSet(mirrored) {
				t.Errorf("pawn attack %s of %s has no black mirror", target, s)
			}
		}
	}
}

func TestPawnTables(t *testing.T) {
	tests := []struct {
		color piece.Color
		from  square.Square
		moves bitboard.Board
	}{
		{
			// double push and both diagonals from the starting rank
			piece.White, square.E2,
			bitboard.Squares[square.E3] | bitboard.Squares[square.E4] |
				bitboard.Squares[square.D3] | bitboard.Squares[square.F3],
		},
		{
			// no double push past the starting rank
			piece.White, square.E3,
			bitboard.Squares[square.E4] |
				bitboard.Squares[square.D4] | bitboard.Squares[square.F4],
		},
		{
			// no wrap-around on the a file
			piece.White, square.A2,
			bitboard.Squares[square.A3] | bitboard.Squares[square.A4] |
				bitboard.Squares[square.B3],
		},
		{
			piece.Black, square.D7,
			bitboard.Squares[square.D6] | bitboard.Squares[square.D5] |
				bitboard.Squares[square.C6] | bitboard.Squares[square.E6],
		},
		{
			// no wrap-around on the h file
			piece.Black, square.H5,
			bitboard.Squares[square.H4] | bitboard.Squares[square.G4],
		},
	}

	for _, test := range tests {
		got := attacks.Pawn[test.color][test.from]
		if got != test.moves {
			t.Errorf("%v pawn moves of %s:\n%s", test.color, test.from, got)
		}
	}
}

func TestRays(t *testing.T) {
	// the north ray of e4 runs to the board edge, exclusive of e4
	want := bitboard.Squares[square.E5] | bitboard.Squares[square.E6] |
		bitboard.Squares[square.E7] | bitboard.Squares[square.E8]
	if got := attacks.Rays[square.E4][attacks.North]; got != want {
		t.Errorf("north ray of e4:\n%s", got)
	}

	// rays from a corner in the directions off the board are empty
	for _, d := range []attacks.Direction{attacks.South, attacks.SouthWest, attacks.West} {
		if attacks.Rays[square.A1][d] != bitboard.Empty {
			t.Errorf("%v ray of a1 is not empty", d)
		}
	}

	// the eight rays from d4 together cover 27 squares
	var all bitboard.Board
	for d := attacks.North; d < attacks.DirectionN; d++ {
		all |= attacks.Rays[square.D4][d]
	}
	if count := all.Count(); count != 27 {
		t.Errorf("d4 rays cover %d squares, want 27", count)
	}
}

func TestOpposite(t *testing.T) {
	pairs := [][2]attacks.Direction{
		{attacks.North, attacks.South},
		{attacks.NorthEast, attacks.SouthWest},
		{attacks.East, attacks.West},
		{attacks.SouthEast, attacks.NorthWest},
	}

	for _, pair := range pairs {
		if pair[0].Opposite() != pair[1] || pair[1].Opposite() != pair[0] {
			t.Errorf("%v and %v are not opposites", pair[0], pair[1])
		}
	}
}

func TestBlockers(t *testing.T) {
	// a blocker on e6 stops the north ray of e4 at e6
	ray := attacks.Rays[square.E4][attacks.North]
	occupied := bitboard.Squares[square.E6] | bitboard.Squares[square.A1]

	blocker, blocked := attacks.Blockers(ray, occupied, attacks.North)
	if blocker != bitboard.Squares[square.E6] {
		t.Errorf("north blocker:\n%s", blocker)
	}
	if available := ray &^ blocked; available != bitboard.Squares[square.E5] {
		t.Errorf("available north squares:\n%s", available)
	}

	// scanning south picks the highest blocker, the one nearest e4
	ray = attacks.Rays[square.E4][attacks.South]
	occupied = bitboard.Squares[square.E2] | bitboard.Squares[square.E1]

	blocker, blocked = attacks.Blockers(ray, occupied, attacks.South)
	if blocker != bitboard.Squares[square.E2] {
		t.Errorf("south blocker:\n%s", blocker)
	}
	if available := ray &^ blocked; available != bitboard.Squares[square.E3] {
		t.Errorf("available south squares:\n%s", available)
	}

	// an empty ray yields no blocker
	blocker, blocked = attacks.Blockers(ray, bitboard.Empty, attacks.South)
	if blocker != bitboard.Empty || blocked != bitboard.Empty {
		t.Errorf("blocker on empty ray:\n%s", blocker)
	}
}
