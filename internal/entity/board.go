package entity

import (
	"fmt"

	"github.com/rocketscienceinc/fourinarow/internal/apperror"
)

const (
	BoardWidth  = 7
	BoardHeight = 6

	// WinLength is the number of same-tile cells in a line that wins the game.
	WinLength = 4
)

// ColumnLabels are the labels a player types to choose a column.
var ColumnLabels = [BoardWidth]string{"1", "2", "3", "4", "5", "6", "7"}

type Tile string

const (
	EmptyCell Tile = "."
	PlayerX   Tile = "X"
	PlayerO   Tile = "O"
)

// Other returns the opponent's tile.
func (that Tile) Other() Tile {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Board is indexed by (column, row); row 0 is the top of the board.
type Board [BoardWidth][BoardHeight]Tile

func NewBoard() *Board {
	board := &Board{}
	for column := range board {
		for row := range board[column] {
			board[column][row] = EmptyCell
		}
	}

	return board
}

// DropRow - returns the row a tile dropped into column would land on.
// The board is not modified.
func (that *Board) DropRow(column int) (int, error) {
	if column < 0 || column >= BoardWidth {
		return 0, fmt.Errorf("%w: column %d", apperror.ErrInvalidColumn, column)
	}

	if that[column][0] != EmptyCell {
		return 0, apperror.ErrColumnFull
	}

	for row := BoardHeight - 1; row >= 0; row-- {
		if that[column][row] == EmptyCell {
			return row, nil
		}
	}

	return 0, apperror.ErrColumnFull
}

// Place - puts tile on an empty cell. Occupied cells are never overwritten.
func (that *Board) Place(column, row int, tile Tile) error {
	if column < 0 || column >= BoardWidth || row < 0 || row >= BoardHeight {
		return fmt.Errorf("%w: column %d, row %d", apperror.ErrInvalidCell, column, row)
	}

	if that[column][row] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that[column][row] = tile

	return nil
}

func (that *Board) IsFull() bool {
	for column := range that {
		for row := range that[column] {
			if that[column][row] == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Filled - counts the cells holding a player tile.
func (that *Board) Filled() int {
	count := 0
	for column := range that {
		for row := range that[column] {
			if that[column][row] != EmptyCell {
				count++
			}
		}
	}

	return count
}

// Mirror - returns a copy of the board flipped left to right.
func (that *Board) Mirror() *Board {
	mirrored := &Board{}
	for column := range that {
		mirrored[BoardWidth-1-column] = that[column]
	}

	return mirrored
}

// Cells - lists the tiles left to right, top to bottom.
func (that *Board) Cells() []Tile {
	cells := make([]Tile, 0, BoardWidth*BoardHeight)
	for row := 0; row < BoardHeight; row++ {
		for column := 0; column < BoardWidth; column++ {
			cells = append(cells, that[column][row])
		}
	}

	return cells
}
