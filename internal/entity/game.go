package entity

import (
	"fmt"

	"github.com/rocketscienceinc/fourinarow/internal/apperror"
)

type Status string

const (
	StatusOngoing    Status = "ongoing"
	StatusWon        Status = "won"
	StatusDrawn      Status = "drawn"
	StatusTerminated Status = "terminated"
)

type Game struct {
	Board  *Board
	Turn   Tile
	Winner Tile
	Status Status
	Moves  int
}

func NewGame() *Game {
	return &Game{
		Board:  NewBoard(),
		Turn:   PlayerX,
		Winner: EmptyCell,
		Status: StatusOngoing,
	}
}

// MakeTurn - drops tile into column and moves the game to its next state.
// It returns the row the tile landed on.
func (that *Game) MakeTurn(tile Tile, column int) (int, error) {
	if !that.IsOngoing() {
		return 0, apperror.ErrGameFinished
	}

	if that.Turn != tile {
		return 0, apperror.ErrNotYourTurn
	}

	row, err := that.Board.DropRow(column)
	if err != nil {
		return 0, fmt.Errorf("invalid turn: %w", err)
	}

	if err = that.Board.Place(column, row, tile); err != nil {
		return 0, fmt.Errorf("invalid turn: %w", err)
	}
	that.Moves++

	that.updateGameState(tile)

	return row, nil
}

func (that *Game) updateGameState(mover Tile) {
	switch {
	case that.Board.IsWinner(mover):
		that.Winner = mover
		that.Status = StatusWon
	case that.Board.IsFull():
		that.Status = StatusDrawn
	default:
		that.Turn = mover.Other()
	}
}

// Terminate - ends the game on a quit request, whatever state it is in.
func (that *Game) Terminate() {
	that.Status = StatusTerminated
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsFinished() bool {
	return !that.IsOngoing()
}
