package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoard_IsWinner(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		tile   Tile
		winner bool
	}{
		{
			name: "Empty board",
			rows: []string{
				".......", ".......", ".......", ".......", ".......", ".......",
			},
			tile: PlayerX,
		},
		{
			name: "Horizontal in the bottom row",
			rows: []string{
				".......", ".......", ".......", ".......", ".......", "XXXXOOO",
			},
			tile:   PlayerX,
			winner: true,
		},
		{
			name: "Horizontal touching the right edge",
			rows: []string{
				"...OOOO", ".......", ".......", ".......", ".......", ".......",
			},
			tile:   PlayerO,
			winner: true,
		},
		{
			name: "Three across is not enough",
			rows: []string{
				".......", ".......", ".......", ".......", ".......", "XXX.XXX",
			},
			tile: PlayerX,
		},
		{
			name: "Vertical",
			rows: []string{
				".......", ".......", "......O", "......O", "......O", "......O",
			},
			tile:   PlayerO,
			winner: true,
		},
		{
			name: "Diagonal down right",
			rows: []string{
				".......", ".......", "X......", "OX.....", "OOX....", "OOOX...",
			},
			tile:   PlayerX,
			winner: true,
		},
		{
			name: "Diagonal down left from the right edge",
			rows: []string{
				"......X", ".....XO", "....XOO", "...XOOO", ".......", ".......",
			},
			tile:   PlayerX,
			winner: true,
		},
		{
			name: "Diagonal down left ending in the bottom left corner",
			rows: []string{
				".......", ".......", "...O...", "..OX...", ".OXX...", "OXXX...",
			},
			tile:   PlayerO,
			winner: true,
		},
		{
			name: "Other player's line does not count",
			rows: []string{
				".......", ".......", ".......", ".......", ".......", "OOOO...",
			},
			tile: PlayerX,
		},
		{
			name: "Empty tile never wins",
			rows: []string{
				".......", ".......", ".......", ".......", ".......", "XXXXOOO",
			},
			tile: EmptyCell,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardFromRows(t, tt.rows...)

			assert.Equal(t, tt.winner, board.IsWinner(tt.tile))
			// mirroring the board never changes the result
			assert.Equal(t, tt.winner, board.Mirror().IsWinner(tt.tile))
		})
	}
}

func TestBoard_IsWinner_Scenarios(t *testing.T) {
	t.Run("Three stacked tiles are not a win, the fourth makes a vertical line", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: X drops into column 4 three times
		for i := 0; i < 3; i++ {
			row, err := board.DropRow(3)
			assert.NoError(t, err)
			assert.NoError(t, board.Place(3, row, PlayerX))
		}

		// Then: X has not won yet
		assert.False(t, board.IsWinner(PlayerX))

		// When: X drops into column 4 a fourth time
		row, err := board.DropRow(3)
		assert.NoError(t, err)
		assert.NoError(t, board.Place(3, row, PlayerX))

		// Then: the stacked tiles form a vertical four-in-a-row
		assert.True(t, board.IsWinner(PlayerX))
		assert.False(t, board.IsWinner(PlayerO))
	})

	t.Run("Four drops across columns 1 to 4 win", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: X drops once into each of the columns 1 to 4
		for column := 0; column < 4; column++ {
			row, err := board.DropRow(column)
			assert.NoError(t, err)
			assert.NoError(t, board.Place(column, row, PlayerX))
		}

		// Then: the bottom row holds a four-in-a-row for X
		assert.True(t, board.IsWinner(PlayerX))
	})

	t.Run("Full board without a line is a tie", func(t *testing.T) {
		// Given: a full board where no line of four exists
		board := boardFromRows(t, drawnRows...)

		// Then: it is full and nobody has won
		assert.True(t, board.IsFull())
		assert.False(t, board.IsWinner(PlayerX))
		assert.False(t, board.IsWinner(PlayerO))
	})
}
