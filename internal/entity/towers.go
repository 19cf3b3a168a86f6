package entity

import (
	"fmt"

	"github.com/rocketscienceinc/fourinarow/internal/apperror"
)

// TotalDisks is the size of the Tower of Hanoi puzzle. More disks make it harder.
const TotalDisks = 5

type TowerLabel string

const (
	TowerA TowerLabel = "A"
	TowerB TowerLabel = "B"
	TowerC TowerLabel = "C"
)

var TowerLabels = []TowerLabel{TowerA, TowerB, TowerC}

// Towers holds the disks of each tower bottom first, so [5 4 3 2 1] is a
// complete tower and the last element is the top disk.
type Towers struct {
	Disks  int
	Stacks map[TowerLabel][]int
}

func NewTowers(disks int) *Towers {
	full := make([]int, 0, disks)
	for size := disks; size > 0; size-- {
		full = append(full, size)
	}

	return &Towers{
		Disks: disks,
		Stacks: map[TowerLabel][]int{
			TowerA: full,
			TowerB: {},
			TowerC: {},
		},
	}
}

// Move - takes the top disk of from and puts it on to.
func (that *Towers) Move(from, to TowerLabel) error {
	source, ok := that.Stacks[from]
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidTower, from)
	}

	target, ok := that.Stacks[to]
	if !ok || from == to {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidTower, to)
	}

	if len(source) == 0 {
		return apperror.ErrEmptyTower
	}

	disk := source[len(source)-1]
	if len(target) > 0 && target[len(target)-1] < disk {
		return apperror.ErrLargerOnSmaller
	}

	that.Stacks[from] = source[:len(source)-1]
	that.Stacks[to] = append(target, disk)

	return nil
}

// IsSolved - the whole tower has been moved to B or C.
func (that *Towers) IsSolved() bool {
	return len(that.Stacks[TowerB]) == that.Disks || len(that.Stacks[TowerC]) == that.Disks
}

// Height - number of disks on the tower.
func (that *Towers) Height(label TowerLabel) int {
	return len(that.Stacks[label])
}

// DiskAt - size of the disk at level (0 is the bottom), or 0 for a bare pole.
func (that *Towers) DiskAt(label TowerLabel, level int) int {
	stack := that.Stacks[label]
	if level < 0 || level >= len(stack) {
		return 0
	}

	return stack[level]
}
