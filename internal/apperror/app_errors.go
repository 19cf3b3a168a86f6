package apperror

import "errors"

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrInvalidColumn  = errors.New("invalid column index")
	ErrColumnFull     = errors.New("column is full")
	ErrInvalidCell    = errors.New("invalid cell")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrMalformedInput = errors.New("malformed input")
	ErrQuit           = errors.New("player quit")

	ErrInvalidTower    = errors.New("invalid tower")
	ErrEmptyTower      = errors.New("tower has no disks")
	ErrLargerOnSmaller = errors.New("can't put larger disk on top of smaller one")
)
