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

// Package game implements the rules engine of chess: it accepts moves
// in standard algebraic notation, validates them under the full rules
// of the game, applies them to a position and tracks the game state up
// to checkmate, stalemate or an insufficient-material draw.
package game

import (
	"tabiya.dev/x/tabiya/pkg/board"
	"tabiya.dev/x/tabiya/pkg/board/attacks"
	"tabiya.dev/x/tabiya/pkg/board/bitboard"
	"tabiya.dev/x/tabiya/pkg/board/castling"
	"tabiya.dev/x/tabiya/pkg/board/piece"
	"tabiya.dev/x/tabiya/pkg/board/square"
	"tabiya.dev/x/tabiya/pkg/san"
)

// Status represents the state of a game.
type Status uint8

// constants representing the possible game states
const (
	Ongoing Status = iota
	Draw
	Checkmate
)

func (s Status) String() string {
	return [...]string{"ongoing", "draw", "checkmate"}[s]
}

// Game is a mutable chess game. It tracks the position together with
// the side to move, castling rights, the en-passant target, pinned
// pieces, the check flag and the game status. A Game is not safe for
// concurrent use; independent games are fully independent values.
type Game struct {
	Board *board.Board

	// Turn counts the submitted moves, starting at 1. White moves on
	// odd turns.
	Turn int

	CastlingRights castling.Rights

	// EnPassantTarget holds the square skipped by the last double pawn
	// push, or is empty. A pawn may capture onto it on the very next
	// move.
	EnPassantTarget bitboard.Board

	// Check reports whether the side to move is currently in check.
	Check bool

	// Pinned contains, for each color, that color's pieces which are
	// absolutely pinned against their own king.
	Pinned [piece.ColorN]bitboard.Board

	Status Status
}

// NewGame creates a Game starting from the standard starting position.
func NewGame() *Game {
	return New(board.New())
}

// New creates a Game starting from the given position, with White to
// move and all castling rights intact.
func New(b *board.Board) *Game {
	g := &Game{
		Board:          b,
		Turn:           1,
		CastlingRights: castling.All,
		Status:         Ongoing,
	}

	g.updatePins()
	g.updateCheck()
	return g
}

// SideToMove returns the color which moves next.
func (g *Game) SideToMove() piece.Color {
	if g.Turn&1 == 1 {
		return piece.White
	}
	return piece.Black
}

// Submit parses, validates and applies the given textual move for the
// side to move. On success the position, the derived state and the game
// status are updated. On any error the Game is left untouched.
func (g *Game) Submit(move string) error {
	parsed, err := san.Parse(move)
	if err != nil {
		return err
	}

	if g.Status != Ongoing {
		return ErrGameOver
	}

	c := g.SideToMove()
	switch parsed.Piece {
	case san.Castling:
		err = g.castle(parsed, c)
	case san.Pawn:
		err = g.movePawn(parsed, c)
	case san.King:
		err = g.moveKing(parsed, c)
	case san.Knight:
		err = g.moveKnight(parsed, c)
	default:
		err = g.moveSliding(parsed, c)
	}

	if err != nil {
		return err
	}

	// the en-passant window lasts exactly one move: only a double pawn
	// push, which sets a fresh target, keeps one open
	if parsed.Piece != san.Pawn {
		g.EnPassantTarget = bitboard.Empty
	}

	g.Turn++

	g.Board.Recompute()
	g.updatePins()
	g.updateCheck()
	g.updateStatus()
	return nil
}

// movePawn resolves, validates and applies a pawn move.
func (g *Game) movePawn(m san.Move, c piece.Color) error {
	from := g.Board.PawnSources(m.To, m.FromFile, m.IsCapture, c)

	if err := g.validatePawn(from, m, c); err != nil {
		return err
	}
	if err := g.validateMove(piece.Pawn, from, m.To, m.IsCapture, c); err != nil {
		return err
	}

	g.applyMove(piece.Pawn, from, m.To, m.IsCapture, c)

	if m.Special == san.Promotion {
		g.Board.ReplacePawn(m.To, c, m.Promotion)
	}

	// a double push opens an en-passant window on the skipped square
	switch {
	case c == piece.White && from<<16 == m.To:
		g.EnPassantTarget = from << 8
	case c == piece.Black && from>>16 == m.To:
		g.EnPassantTarget = from >> 8
	default:
		g.EnPassantTarget = bitboard.Empty
	}

	return nil
}

// moveKnight resolves, validates and applies a knight move.
func (g *Game) moveKnight(m san.Move, c piece.Color) error {
	from := g.Board.KnightSources(m.To, m.FromFile, m.FromRank, c)

	if err := g.validateKnight(from, m.To); err != nil {
		return err
	}
	if err := g.validateMove(piece.Knight, from, m.To, m.IsCapture, c); err != nil {
		return err
	}

	g.applyMove(piece.Knight, from, m.To, m.IsCapture, c)
	return nil
}

// moveSliding resolves, validates and applies a bishop, rook or queen
// move.
func (g *Game) moveSliding(m san.Move, c piece.Color) error {
	t := m.Piece.Type()
	from := g.Board.SlidingSources(t, m.To, m.FromFile, m.FromRank, c)

	if err := g.validateSliding(t, from, m.To); err != nil {
		return err
	}
	if err := g.validateMove(t, from, m.To, m.IsCapture, c); err != nil {
		return err
	}

	g.applyMove(t, from, m.To, m.IsCapture, c)
	return nil
}

// moveKing resolves, validates and applies a king move.
func (g *Game) moveKing(m san.Move, c piece.Color) error {
	from := g.Board.KingSource(c)

	if err := g.validateKing(from, m.To, c); err != nil {
		return err
	}
	if err := g.validateMove(piece.King, from, m.To, m.IsCapture, c); err != nil {
		return err
	}

	g.applyMove(piece.King, from, m.To, m.IsCapture, c)
	return nil
}

// validatePawn rejects geometrically impossible pawn moves: captures
// off the diagonals, targets outside the pawn's movement, and promotion
// suffixes away from the last rank.
func (g *Game) validatePawn(from bitboard.Board, m san.Move, c piece.Color) error {
	if from == bitboard.Empty {
		return nil // the generic validation reports missing sources
	}

	fromSq := from.FirstOne()

	if m.IsCapture && m.To&attacks.PawnAttacks[c][fromSq] == bitboard.Empty {
		return invalidMove(PawnNonDiagonalCapture)
	}

	if m.To&attacks.Pawn[c][fromSq] == bitboard.Empty {
		return invalidMove(InvalidSourceOrTarget)
	}

	if m.Special == san.Promotion {
		promotionRank := bitboard.Ranks[square.Rank8]
		if c == piece.Black {
			promotionRank = bitboard.Ranks[square.Rank1]
		}

		if m.To&promotionRank == bitboard.Empty {
			return invalidMove(PawnInvalidPromotion)
		}
	}

	return nil
}

// validateKnight rejects knight moves whose target is not a knight jump
// away from the source.
func (g *Game) validateKnight(from, to bitboard.Board) error {
	if from == bitboard.Empty {
		return nil
	}

	if to&attacks.Knight[from.FirstOne()] == bitboard.Empty {
		return invalidMove(InvalidSourceOrTarget)
	}

	return nil
}

// validateSliding rejects sliding moves whose target lies on none of
// the piece's rays from the source.
func (g *Game) validateSliding(t piece.Type, from, to bitboard.Board) error {
	if from == bitboard.Empty {
		return nil
	}

	fromSq := from.FirstOne()
	for _, d := range attacks.SlidingDirections(t) {
		if to&attacks.Rays[fromSq][d] != bitboard.Empty {
			return nil
		}
	}

	return invalidMove(InvalidSourceOrTarget)
}

// validateKing rejects king moves whose target is not adjacent, or
// steps straight into an attacked square.
func (g *Game) validateKing(from, to bitboard.Board, c piece.Color) error {
	if from == bitboard.Empty {
		return nil
	}

	if to&attacks.King[from.FirstOne()] == bitboard.Empty {
		return invalidMove(InvalidSourceOrTarget)
	}

	if to&g.Board.AttackBBs[c.Other()] != bitboard.Empty {
		return ErrChecked
	}

	return nil
}

// validateMove performs the generic legality checks shared by all piece
// moves, ordered from cheap bit arithmetic up to the simulated-move
// king-safety check.
func (g *Game) validateMove(t piece.Type, from, to bitboard.Board, isCapture bool, c piece.Color) error {
	if from == to {
		return invalidMove(InvalidSourceOrTarget)
	}

	if from == bitboard.Empty || to == bitboard.Empty {
		return invalidMove(NoSourceOrTarget)
	}

	if !to.Single() {
		return invalidMove(MultipleTargets)
	}

	if from.Count() > 1 {
		return ErrAmbiguousSource
	}

	if from&g.Board.PieceBBs[c][t] == bitboard.Empty {
		return invalidMove(InvalidSourceOrTarget)
	}

	if to&g.Board.Pseudolegal[c][t] == bitboard.Empty {
		return invalidMove(InvalidSourceOrTarget)
	}

	// the capture flag must agree with the board: captures must land on
	// an opponent piece or, for pawns, on the open en-passant target
	isEnPassant := t == piece.Pawn && to == g.EnPassantTarget &&
		g.EnPassantTarget != bitboard.Empty
	if isCapture != (g.Board.IsCapture(to, c) || isEnPassant) {
		return invalidMove(InvalidCaptureTarget)
	}

	// cannot arise in a well formed game, guarded anyway
	if isCapture && to&g.Board.King(c.Other()) != bitboard.Empty {
		return invalidMove(KingCaptureMove)
	}

	if from&g.Pinned[c] != bitboard.Empty && !g.staysOnKingRay(from, to, c) {
		return ErrPinned
	}

	// simulating the move is expensive, so it only runs when the king
	// is already in check, or when the king captures a piece which may
	// be defended
	if g.Check || (isCapture && t == piece.King) {
		if g.exposesKing(t, from, to, isCapture, c) {
			return ErrChecked
		}
	}

	return nil
}

// staysOnKingRay checks whether both the source and target of a move
// lie on the same ray through the mover's own king, which is the only
// way a pinned piece may move.
func (g *Game) staysOnKingRay(from, to bitboard.Board, c piece.Color) bool {
	king := g.Board.King(c)
	if king == bitboard.Empty {
		return true
	}

	kingSq := king.FirstOne()
	for d := attacks.North; d < attacks.DirectionN; d++ {
		ray := attacks.Rays[kingSq][d]
		if ray&from != bitboard.Empty && ray&to != bitboard.Empty {
			return true
		}
	}

	return false
}

// exposesKing simulates the move on a copy of the position and reports
// whether the mover's own king ends up attacked.
func (g *Game) exposesKing(t piece.Type, from, to bitboard.Board, isCapture bool, c piece.Color) bool {
	sim := *g.Board

	sim.MovePiece(from, to, c)
	if isCapture {
		victim := to
		if t == piece.Pawn && to == g.EnPassantTarget {
			victim = g.enPassantVictim(c)
		}
		sim.RemovePiece(victim, c.Other())
	}

	sim.Recompute()
	return sim.King(c)&sim.AttackBBs[c.Other()] != bitboard.Empty
}

// enPassantVictim returns the position of the pawn captured en passant,
// one square behind the current en-passant target relative to the given
// capturing color.
func (g *Game) enPassantVictim(c piece.Color) bitboard.Board {
	if c == piece.White {
		return g.EnPassantTarget.South()
	}
	return g.EnPassantTarget.North()
}

// applyMove performs a validated move: it relocates the moving piece,
// removes the captured piece (the en-passant victim for an en-passant
// capture) and updates the castling rights affected by the touched
// squares.
func (g *Game) applyMove(t piece.Type, from, to bitboard.Board, isCapture bool, c piece.Color) {
	if isCapture {
		victim := to
		if t == piece.Pawn && to == g.EnPassantTarget {
			victim = g.enPassantVictim(c)
		}
		g.Board.RemovePiece(victim, c.Other())
	}

	g.Board.MovePiece(from, to, c)

	// a king or rook leaving its home square, or a capture landing on a
	// rook's home square, voids the corresponding castling rights
	g.CastlingRights &^= castling.RightUpdates[from.FirstOne()]
	g.CastlingRights &^= castling.RightUpdates[to.FirstOne()]
}

// castle validates and applies a castling move per the castling state
// machine: the right must be intact, the rook must stand on its home
// square, the king must not be in check, the squares the king crosses
// must be empty and unattacked, and the queenside b-file square must be
// empty.
func (g *Game) castle(m san.Move, c piece.Color) error {
	kingside := m.Special == san.CastlingKing

	if g.Check {
		return ErrChecked
	}

	if g.CastlingRights&castling.Side(c, kingside) == 0 {
		return invalidMove(NoCastlingRight)
	}

	rank := square.Rank1
	if c == piece.Black {
		rank = square.Rank8
	}

	kingFile := square.FileG
	if !kingside {
		kingFile = square.FileC
	}
	kingTarget := square.From(kingFile, rank)

	rook := castling.Rooks[kingTarget]
	if g.Board.PieceBBs[c][piece.Rook]&bitboard.Squares[rook.From] == bitboard.Empty {
		return invalidMove(NoCastlingRook)
	}

	// every square the king passes through or lands on must be free
	// and safe
	kingPath := bitboard.Squares[kingTarget]
	if kingside {
		kingPath |= bitboard.Squares[square.From(square.FileF, rank)]
	} else {
		kingPath |= bitboard.Squares[square.From(square.FileD, rank)]
	}

	safe := g.Board.Free &^ g.Board.AttackBBs[c.Other()]
	if kingPath&safe != kingPath {
		return invalidMove(CastlingPathBlocked)
	}

	// the queenside rook additionally passes over the b file, which
	// must be empty but may be attacked
	if !kingside {
		b := bitboard.Squares[square.From(square.FileB, rank)]
		if b&g.Board.Free == bitboard.Empty {
			return invalidMove(CastlingPathBlocked)
		}
	}

	g.Board.MovePiece(g.Board.King(c), bitboard.Squares[kingTarget], c)
	g.Board.MovePiece(bitboard.Squares[rook.From], bitboard.Squares[rook.To], c)
	g.CastlingRights &^= castling.Of(c)
	return nil
}

// updatePins recomputes the absolutely pinned pieces of both colors.
func (g *Game) updatePins() {
	for c := piece.White; c <= piece.Black; c++ {
		g.Pinned[c] = g.detectPins(c)
	}
}

// detectPins walks each of the eight rays from the king of the given
// color. If the first piece on a ray is friendly, and the next piece
// beyond it is an opponent slider moving along that ray, the friendly
// piece is pinned.
func (g *Game) detectPins(c piece.Color) bitboard.Board {
	king := g.Board.King(c)
	if king == bitboard.Empty {
		return bitboard.Empty
	}

	kingSq := king.FirstOne()
	them := c.Other()

	var pinned bitboard.Board
	for d := attacks.North; d < attacks.DirectionN; d++ {
		blocker, _ := attacks.Blockers(attacks.Rays[kingSq][d], g.Board.Occupied, d)
		if blocker&g.Board.ColorBBs[c] == bitboard.Empty {
			continue // no piece on the ray, or an opponent piece first
		}

		beyond := attacks.Rays[blocker.FirstOne()][d]
		pinner, _ := attacks.Blockers(beyond, g.Board.Occupied, d)

		// rook rays and bishop rays alternate around the compass, so
		// even directions pin with rooks and odd ones with bishops
		sliders := g.Board.PieceBBs[them][piece.Queen]
		if d%2 == 0 {
			sliders |= g.Board.PieceBBs[them][piece.Rook]
		} else {
			sliders |= g.Board.PieceBBs[them][piece.Bishop]
		}

		if pinner&sliders != bitboard.Empty {
			pinned |= blocker
		}
	}

	return pinned
}

// updateCheck recomputes the check flag for the side to move.
func (g *Game) updateCheck() {
	c := g.SideToMove()
	g.Check = g.Board.King(c)&g.Board.AttackBBs[c.Other()] != bitboard.Empty
}
