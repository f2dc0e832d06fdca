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

// Package castling provides various types and definitions which are
// useful when dealing with castling moves in a board representation.
package castling

import (
	"tabiya.dev/x/tabiya/pkg/board/piece"
	"tabiya.dev/x/tabiya/pkg/board/square"
)

// Rights represents the current castling rights of the position.
// [Black Queen-side][Black King-side][White Queen-side][White King-side]
type Rights byte

// Constants representing various castling rights.
const (
	WhiteK Rights = 1 << 0 // white king-side
	WhiteQ Rights = 1 << 1 // white queen-side
	BlackK Rights = 1 << 2 // black king-side
	BlackQ Rights = 1 << 3 // black queen-side

	NoCasl Rights = 0 // no castling possible

	WhiteA Rights = WhiteK | WhiteQ // only white can castle
	BlackA Rights = BlackK | BlackQ // only black can castle

	All Rights = WhiteA | BlackA // all castling possible
)

// Side reports the right for the given color and board side.
func Side(c piece.Color, kingside bool) Rights {
	if c == piece.White {
		if kingside {
			return WhiteK
		}
		return WhiteQ
	}

	if kingside {
		return BlackK
	}
	return BlackQ
}

// Of returns both rights of the given color.
func Of(c piece.Color) Rights {
	if c == piece.White {
		return WhiteA
	}
	return BlackA
}

// RightUpdates is a map of each chessboard square to the rights that
// need to be removed if a piece moves from or to that square. For
// example, if a piece moves from or to the square A1, either the white
// rook has moved or it has been captured, so white can no longer castle
// queen-side. Squares which are never occupied by a king or a rook on
// its home square do not effect the castling rights.
var RightUpdates = [square.N]Rights{
	square.A1: WhiteQ,
	square.E1: WhiteA,
	square.H1: WhiteK,
	square.A8: BlackQ,
	square.E8: BlackA,
	square.H8: BlackK,
}

// String converts the given castling.Rights to a readable string.
func (c Rights) String() string {
	var str string

	if c&WhiteK != 0 {
		str += "K"
	}

	if c&WhiteQ != 0 {
		str += "Q"
	}

	if c&BlackK != 0 {
		str += "k"
	}

	if c&BlackQ != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}

	return str
}

// RookInfo is a struct which contains information about castling a rook.
type RookInfo struct {
	From, To square.Square // source and target squares of the rook
}

// Rooks is a look up table which provides information about castling a
// rook when a king castles. The table is indexed using the king's target
// square. Squares other than the king's target squares during castling
// contain the zero-value of RookInfo.
var Rooks = [square.N]RookInfo{
	square.G1: {From: square.H1, To: square.F1},
	square.C1: {From: square.A1, To: square.D1},
	square.G8: {From: square.H8, To: square.F8},
	square.C8: {From: square.A8, To: square.D8},
}
