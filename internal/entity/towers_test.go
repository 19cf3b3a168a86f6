package entity

import (
	"testing"

	"github.com/rocketscienceinc/fourinarow/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solveTowers - classic recursive solution, used to drive a full puzzle.
func solveTowers(t *testing.T, towers *Towers, disks int, from, to, via TowerLabel) int {
	t.Helper()

	if disks == 0 {
		return 0
	}

	moves := solveTowers(t, towers, disks-1, from, via, to)
	require.NoError(t, towers.Move(from, to))
	moves++

	return moves + solveTowers(t, towers, disks-1, via, to, from)
}

func TestNewTowers(t *testing.T) {
	towers := NewTowers(TotalDisks)

	assert.Equal(t, []int{5, 4, 3, 2, 1}, towers.Stacks[TowerA])
	assert.Empty(t, towers.Stacks[TowerB])
	assert.Empty(t, towers.Stacks[TowerC])
	assert.False(t, towers.IsSolved())
}

func TestTowers_Move(t *testing.T) {
	t.Run("Moves the top disk", func(t *testing.T) {
		// Given: a new puzzle
		towers := NewTowers(3)

		// When: the top disk of A goes to C
		err := towers.Move(TowerA, TowerC)

		// Then: the smallest disk sits on C
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2}, towers.Stacks[TowerA])
		assert.Equal(t, []int{1}, towers.Stacks[TowerC])
	})

	t.Run("Error on empty tower", func(t *testing.T) {
		towers := NewTowers(3)

		err := towers.Move(TowerB, TowerC)

		require.ErrorIs(t, err, apperror.ErrEmptyTower)
		assert.Equal(t, NewTowers(3), towers)
	})

	t.Run("Error on larger disk over smaller", func(t *testing.T) {
		// Given: disk 1 on B
		towers := NewTowers(3)
		require.NoError(t, towers.Move(TowerA, TowerB))

		// When: disk 2 is moved on top of it
		err := towers.Move(TowerA, TowerB)

		// Then: the move is refused and both towers keep their disks
		require.ErrorIs(t, err, apperror.ErrLargerOnSmaller)
		assert.Equal(t, []int{3, 2}, towers.Stacks[TowerA])
		assert.Equal(t, []int{1}, towers.Stacks[TowerB])
	})

	t.Run("Error on unknown tower", func(t *testing.T) {
		towers := NewTowers(3)

		assert.ErrorIs(t, towers.Move("D", TowerA), apperror.ErrInvalidTower)
		assert.ErrorIs(t, towers.Move(TowerA, "D"), apperror.ErrInvalidTower)
		assert.ErrorIs(t, towers.Move(TowerA, TowerA), apperror.ErrInvalidTower)
	})
}

func TestTowers_IsSolved(t *testing.T) {
	t.Run("Solved on tower C", func(t *testing.T) {
		towers := NewTowers(TotalDisks)

		moves := solveTowers(t, towers, TotalDisks, TowerA, TowerC, TowerB)

		assert.Equal(t, 1<<TotalDisks-1, moves)
		assert.True(t, towers.IsSolved())
		assert.Equal(t, []int{5, 4, 3, 2, 1}, towers.Stacks[TowerC])
	})

	t.Run("Solved on tower B", func(t *testing.T) {
		towers := NewTowers(3)

		solveTowers(t, towers, 3, TowerA, TowerB, TowerC)

		assert.True(t, towers.IsSolved())
	})
}

func TestTowers_DiskAt(t *testing.T) {
	towers := NewTowers(3)

	assert.Equal(t, 3, towers.DiskAt(TowerA, 0))
	assert.Equal(t, 1, towers.DiskAt(TowerA, 2))
	assert.Equal(t, 0, towers.DiskAt(TowerA, 3))
	assert.Equal(t, 0, towers.DiskAt(TowerB, 0))
	assert.Equal(t, 3, towers.Height(TowerA))
}
