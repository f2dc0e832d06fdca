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

// Package square declares constants representing every square on a
// chessboard, and related utility functions.
//
// Squares are represented using the algebraic notation.
// https://www.chessprogramming.org/Algebraic_Chess_Notation
//
// Square indexes increase from a1 (0) to h8 (63), so that
// index = rank*8 + file.
package square

import "fmt"

// New creates a new instance of a Square from the given identifier.
func New(id string) Square {
	if len(id) != 2 {
		panic("new square: invalid square id")
	}

	return From(FileFrom(id[0]), RankFrom(id[1]))
}

// From creates a new instance of a Square from the given file and rank.
func From(file File, rank Rank) Square {
	return Square(int(rank)*8 + int(file))
}

// Square represents a square on a chessboard.
type Square int

const None Square = -1

// N is the number of squares on a chessboard.
const N = 64

// constants representing various squares
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1

	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2

	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3

	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4

	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5

	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6

	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7

	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// String converts a square into it's algebraic string representation.
func (s Square) String() string {
	if s == None {
		return "-"
	}

	// <file><rank>
	return fmt.Sprintf("%s%s", s.File(), s.Rank())
}

// File returns the file of the given square.
func (s Square) File() File {
	return File(s % 8)
}

// Rank returns the rank of the given square.
func (s Square) Rank() Rank {
	return Rank(s / 8)
}

// File represents a file on a chessboard.
type File int

const FileNone File = -1

// constants representing various files
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// FileN is the number of files on a chessboard.
const FileN = 8

// IsValidFile reports whether the given byte names a file, 'a' to 'h'.
func IsValidFile(id byte) bool {
	return id >= 'a' && id <= 'h'
}

// FileFrom creates an instance of a File from the given file id.
func FileFrom(id byte) File {
	if !IsValidFile(id) {
		panic("new file: invalid file id")
	}

	return File(id - 'a')
}

// String converts a File into it's string representation.
func (f File) String() string {
	const fileToStr = "abcdefgh"
	return string(fileToStr[f])
}

// Rank represents a rank on a chessboard.
type Rank int

const RankNone Rank = -1

// constants representing various ranks
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// RankN is the number of ranks on a chessboard.
const RankN = 8

// IsValidRank reports whether the given byte names a rank, '1' to '8'.
func IsValidRank(id byte) bool {
	return id >= '1' && id <= '8'
}

// RankFrom creates an instance of a Rank from the given rank id.
func RankFrom(id byte) Rank {
	if !IsValidRank(id) {
		panic("new rank: invalid rank id")
	}

	return Rank(id - '1')
}

// String converts a Rank into it's string representation.
func (r Rank) String() string {
	const rankToStr = "12345678"
	return string(rankToStr[r])
}
