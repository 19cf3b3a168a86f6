package entity

// direction is a step between consecutive cells of a line, with the range of
// start cells for which a whole line stays on the board.
type direction struct {
	dColumn, dRow int

	minColumn, maxColumn int
	maxRow               int
}

var directions = []direction{
	// across to the right
	{dColumn: 1, dRow: 0, minColumn: 0, maxColumn: BoardWidth - WinLength, maxRow: BoardHeight - 1},
	// down
	{dColumn: 0, dRow: 1, minColumn: 0, maxColumn: BoardWidth - 1, maxRow: BoardHeight - WinLength},
	// down and to the right
	{dColumn: 1, dRow: 1, minColumn: 0, maxColumn: BoardWidth - WinLength, maxRow: BoardHeight - WinLength},
	// down and to the left
	{dColumn: -1, dRow: 1, minColumn: WinLength - 1, maxColumn: BoardWidth - 1, maxRow: BoardHeight - WinLength},
}

// IsWinner - reports whether tile has WinLength cells in a row horizontally,
// vertically or diagonally.
func (that *Board) IsWinner(tile Tile) bool {
	if tile == EmptyCell {
		return false
	}

	for _, dir := range directions {
		for column := dir.minColumn; column <= dir.maxColumn; column++ {
			for row := 0; row <= dir.maxRow; row++ {
				if that.lineOf(tile, column, row, dir) {
					return true
				}
			}
		}
	}

	return false
}

func (that *Board) lineOf(tile Tile, column, row int, dir direction) bool {
	for i := 0; i < WinLength; i++ {
		if that[column+i*dir.dColumn][row+i*dir.dRow] != tile {
			return false
		}
	}

	return true
}
