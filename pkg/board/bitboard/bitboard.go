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

// Package bitboard implements a 64-bit bitboard and other related
// functions for manipulating them.
package bitboard

import (
	"math/bits"

	"tabiya.dev/x/tabiya/pkg/board/square"
)

// Board is a 64-bit bitboard. Bit index i represents square.Square(i).
type Board uint64

// constants representing useful bitboards
const (
	Empty    Board = 0
	Universe Board = ^Empty
)

// Squares contains the single-bit bitboard of every square, indexed by
// the square.
var Squares = func() [square.N]Board {
	var squares [square.N]Board
	for s := square.A1; s <= square.H8; s++ {
		squares[s] = 1 << s
	}
	return squares
}()

// Files contains the bitboard of every file, indexed by the file.
var Files = func() [square.FileN]Board {
	var files [square.FileN]Board
	for f := square.FileA; f <= square.FileH; f++ {
		files[f] = 0x0101010101010101 << f
	}
	return files
}()

// Ranks contains the bitboard of every rank, indexed by the rank.
var Ranks = func() [square.RankN]Board {
	var ranks [square.RankN]Board
	for r := square.Rank1; r <= square.Rank8; r++ {
		ranks[r] = 0xFF << (8 * r)
	}
	return ranks
}()

// String returns a string representation of the given BB.
func (b Board) String() string {
	var str string
	for rank := square.Rank8; rank >= square.Rank1; rank-- {
		for file := square.FileA; file <= square.FileH; file++ {
			if b.IsSet(square.From(file, rank)) {
				str += "1"
			} else {
				str += "0"
			}

			if file == square.FileH {
				str += "\n"
			} else {
				str += " "
			}
		}
	}

	return str
}

// IsSet checks whether the given Square is set in the given BB.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != Empty
}

// Set sets the given Square in the given BB.
func (b *Board) Set(s square.Square) {
	*b |= Squares[s]
}

// Unset clears the given Square in the given BB.
func (b *Board) Unset(s square.Square) {
	*b &^= Squares[s]
}

// Count returns the number of set squares in the given BB.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Single checks whether the given BB has exactly one square set.
func (b Board) Single() bool {
	return b != Empty && b&(b-1) == Empty
}

// FirstOne returns the lowest set square of the given BB. It returns
// square.None if the BB is empty.
func (b Board) FirstOne() square.Square {
	if b == Empty {
		return square.None
	}

	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// LastOne returns the highest set square of the given BB. It returns
// square.None if the BB is empty.
func (b Board) LastOne() square.Square {
	if b == Empty {
		return square.None
	}

	return square.Square(63 - bits.LeadingZeros64(uint64(b)))
}

// Pop removes the lowest set square from the given BB and returns it.
func (b *Board) Pop() square.Square {
	s := b.FirstOne()
	*b &= *b - 1
	return s
}

// North shifts the given BB one rank towards the eighth rank.
func (b Board) North() Board {
	return b << 8
}

// South shifts the given BB one rank towards the first rank.
func (b Board) South() Board {
	return b >> 8
}
