package model

import (
	"errors"
	"fmt"
)

// Reasons a move is rejected. Use errors.Is against the error returned by
// Game.MakeMove.
var (
	ErrNoPiece          = errors.New("no piece at from square")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrInvalidPromotion = errors.New("invalid promotion piece")
	ErrIllegalMove      = errors.New("illegal move")
)

// MoveError records which move was rejected and at which ply.
type MoveError struct {
	Move Move
	Ply  int // 1-based ply the move would have been
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("ply %d, move %s: %v", e.Ply, e.Move, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
