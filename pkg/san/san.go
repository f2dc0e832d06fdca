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

// Package san implements parsing of chess moves written in standard
// algebraic notation into structured move records.
//
// The parser is purely textual: it never consults the position, so the
// origin square of a parsed move is only as specified as the notation
// makes it. Resolving the origin against a position is the source
// resolver's concern.
package san

import (
	"strings"

	"tabiya.dev/x/tabiya/pkg/board/bitboard"
	"tabiya.dev/x/tabiya/pkg/board/piece"
	"tabiya.dev/x/tabiya/pkg/board/square"
)

// Piece represents the piece named by a move's leading token. Castling
// is a pseudo piece which appears only in parsed moves.
type Piece uint8

// constants representing the pieces a move can name
const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	Castling
)

// Type converts the named piece into its board representation. The
// Castling pseudo piece maps to the king, which is the piece a castling
// move is submitted for.
func (p Piece) Type() piece.Type {
	return [...]piece.Type{
		piece.Pawn, piece.Knight, piece.Bishop,
		piece.Rook, piece.Queen, piece.King, piece.King,
	}[p]
}

// Special represents the special effect of a parsed move, if any.
type Special uint8

// constants representing the special move kinds
const (
	None Special = iota
	Promotion
	CastlingKing
	CastlingQueen
)

// Move is the structured form of a parsed textual move.
type Move struct {
	Piece     Piece
	FromFile  square.File // disambiguation hint, or square.FileNone
	FromRank  square.Rank // disambiguation hint, or square.RankNone
	To        bitboard.Board
	IsCapture bool
	Special   Special
	Promotion piece.Type // promotion target, valid when Special == Promotion
}

// ParseError is the error type returned for unparseable move text.
type ParseError string

func (e ParseError) Error() string {
	return "san: " + string(e)
}

// constants representing the possible parse errors
const (
	ErrLength   ParseError = "invalid move length"
	ErrSource   ParseError = "invalid source piece"
	ErrTarget   ParseError = "invalid target square"
	ErrCastling ParseError = "invalid castling move"
)

// Parse converts the given textual move into a Move record. Trailing
// check, mate and annotation marks are accepted and ignored.
func Parse(input string) (Move, error) {
	cmd := strings.TrimRight(input, "+#!?")
	if len(cmd) <= 1 {
		return Move{}, ErrLength
	}

	switch source := cmd[0]; {
	case source == 'O':
		return parseCastling(cmd)
	case square.IsValidFile(source):
		return parsePawn(cmd)
	case strings.IndexByte("NBRQK", source) >= 0:
		return parsePiece(cmd)
	default:
		return Move{}, ErrSource
	}
}

func parseCastling(cmd string) (Move, error) {
	m := Move{
		Piece:    Castling,
		FromFile: square.FileNone,
		FromRank: square.RankNone,
	}

	switch cmd {
	case "O-O":
		m.Special = CastlingKing
	case "O-O-O":
		m.Special = CastlingQueen
	default:
		return Move{}, ErrCastling
	}

	return m, nil
}

// parsePawn parses the pawn forms "e4", "exd5", "e8=Q" and "exd8=N".
func parsePawn(cmd string) (Move, error) {
	m := Move{
		Piece:    Pawn,
		FromFile: square.FileNone,
		FromRank: square.RankNone,
	}

	file := square.FileFrom(cmd[0])
	rest := cmd[1:]

	if rest[0] == 'x' {
		// the origin file of a pawn capture is the leading file; the
		// target square follows the capture mark
		if len(rest) < 3 || !square.IsValidFile(rest[1]) || !square.IsValidRank(rest[2]) {
			return Move{}, ErrTarget
		}

		m.IsCapture = true
		m.FromFile = file
		m.To = bitboard.Squares[square.From(square.FileFrom(rest[1]), square.RankFrom(rest[2]))]
		rest = rest[3:]
	} else {
		if !square.IsValidRank(rest[0]) {
			return Move{}, ErrTarget
		}

		m.To = bitboard.Squares[square.From(file, square.RankFrom(rest[0]))]
		rest = rest[1:]
	}

	if rest == "" {
		return m, nil
	}

	// the only text allowed after the target is a promotion suffix
	if len(rest) != 2 || rest[0] != '=' {
		return Move{}, ErrTarget
	}

	promotion := piece.NewFromString(rest[1]).Type()
	if !promotion.IsPromotion() {
		return Move{}, ErrTarget
	}

	m.Special = Promotion
	m.Promotion = promotion
	return m, nil
}

// parsePiece parses the piece forms "Nf3", "Nbd2", "N1f3", "Nb1d2" and
// their capturing variants.
func parsePiece(cmd string) (Move, error) {
	m := Move{
		FromFile: square.FileNone,
		FromRank: square.RankNone,
	}

	switch cmd[0] {
	case 'N':
		m.Piece = Knight
	case 'B':
		m.Piece = Bishop
	case 'R':
		m.Piece = Rook
	case 'Q':
		m.Piece = Queen
	case 'K':
		m.Piece = King
	}

	body := cmd[1:]
	if len(body) < 2 {
		return Move{}, ErrTarget
	}

	// the last two characters are the target square
	fileId, rankId := body[len(body)-2], body[len(body)-1]
	if !square.IsValidFile(fileId) || !square.IsValidRank(rankId) {
		return Move{}, ErrTarget
	}
	m.To = bitboard.Squares[square.From(square.FileFrom(fileId), square.RankFrom(rankId))]

	// whatever remains is disambiguation hints and the capture mark
	hints := body[:len(body)-2]
	if n := len(hints); n > 0 && hints[n-1] == 'x' {
		m.IsCapture = true
		hints = hints[:n-1]
	}

	for _, id := range []byte(hints) {
		switch {
		case square.IsValidFile(id) && m.FromFile == square.FileNone:
			m.FromFile = square.FileFrom(id)
		case square.IsValidRank(id) && m.FromRank == square.RankNone:
			m.FromRank = square.RankFrom(id)
		default:
			return Move{}, ErrSource
		}
	}

	return m, nil
}
