package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/fourinarow/internal/entity"
)

// ShowBoard - draws the board inside a box with the column labels on top.
func (that *Console) ShowBoard(board *entity.Board) {
	var sb strings.Builder

	sb.WriteString("\n     " + strings.Join(entity.ColumnLabels[:], "") + "\n")
	border := "    +" + strings.Repeat("-", entity.BoardWidth) + "+\n"
	sb.WriteString(border)

	cells := board.Cells()
	for row := 0; row < entity.BoardHeight; row++ {
		sb.WriteString("    |")
		for _, tile := range cells[row*entity.BoardWidth : (row+1)*entity.BoardWidth] {
			sb.WriteString(string(tile))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(strings.TrimSuffix(border, "\n"))

	that.Say("%s", sb.String())
}

// ShowTowers - draws the three towers with their disks and labels.
func (that *Console) ShowTowers(towers *entity.Towers) {
	var sb strings.Builder

	for level := towers.Disks; level >= 0; level-- {
		for _, label := range entity.TowerLabels {
			sb.WriteString(disk(towers.DiskAt(label, level), towers.Disks))
		}
		sb.WriteString("\n")
	}

	space := strings.Repeat(" ", towers.Disks)
	sb.WriteString(fmt.Sprintf("%[1]s A%[1]s%[1]s B%[1]s%[1]s C\n", space))

	that.Say("%s", sb.String())
}

// disk - a disk of the given width, or a bare pole segment for width 0.
func disk(width, total int) string {
	space := strings.Repeat(" ", total-width)
	if width == 0 {
		return space + "||" + space
	}

	body := strings.Repeat("@", width)
	label := strconv.Itoa(width)
	if len(label) < 2 {
		label = "_" + label
	}

	return space + body + label + body + space
}
