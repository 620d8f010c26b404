package game

import "errors"

var (
	// ErrIllegalMove indicates a move that is not in the current legal set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidCell indicates a cell off the board or on a light square.
	ErrInvalidCell = errors.New("invalid cell")

	// ErrOccupied indicates a placement onto a cell that already holds a piece.
	ErrOccupied = errors.New("cell occupied")

	// ErrBoardDesync indicates the board no longer matches the piece sets.
	ErrBoardDesync = errors.New("board out of sync with piece sets")
)
