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

package game

import "errors"

// Errors returned by Submit for moves which parse but break the rules
// of chess. Parse failures are reported as san.ParseError instead, so
// that front-ends can tell malformed input from illegal moves.
var (
	// ErrAmbiguousSource is returned when two or more pieces could
	// perform the submitted move and the disambiguation hints do not
	// single one out.
	ErrAmbiguousSource = errors.New("game: ambiguous move source")

	// ErrPinned is returned when the moving piece is absolutely pinned
	// and the move leaves the pin ray.
	ErrPinned = errors.New("game: piece is pinned to the king")

	// ErrChecked is returned when the move would leave the mover's own
	// king attacked, including king moves into an attacked square and
	// moves which fail to resolve an active check.
	ErrChecked = errors.New("game: move leaves the king in check")

	// ErrGameOver is returned for any move submitted after the game
	// has reached a terminal status.
	ErrGameOver = errors.New("game: game is over")
)

// Reason describes why a syntactically valid move is illegal.
type Reason uint8

// constants representing the invalid move reasons
const (
	NoSourceOrTarget Reason = iota
	InvalidSourceOrTarget
	MultipleTargets
	InvalidCaptureTarget
	KingCaptureMove
	PawnNonDiagonalCapture
	PawnInvalidPromotion
	NoCastlingRight
	CastlingPathBlocked
	NoCastlingRook
)

func (r Reason) String() string {
	return [...]string{
		"no source or target square",
		"invalid source or target square",
		"multiple target squares",
		"capture does not match target",
		"king cannot be captured",
		"pawn can only capture diagonally",
		"invalid promotion",
		"no castling right",
		"castling path is blocked or attacked",
		"castling rook is missing",
	}[r]
}

// InvalidMoveError is the error returned for moves which are well
// formed but illegal in the current position.
type InvalidMoveError struct {
	Reason Reason
}

func (e *InvalidMoveError) Error() string {
	return "game: invalid move: " + e.Reason.String()
}

// Is makes two InvalidMoveErrors with the same reason equal under
// errors.Is.
func (e *InvalidMoveError) Is(target error) bool {
	t, ok := target.(*InvalidMoveError)
	return ok && t.Reason == e.Reason
}

func invalidMove(r Reason) error {
	return &InvalidMoveError{Reason: r}
}
