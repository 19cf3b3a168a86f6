package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/fourinarow/internal/apperror"
	"github.com/rocketscienceinc/fourinarow/internal/entity"
)

type towersUI interface {
	RequestTowerMove(ctx context.Context) (entity.TowerLabel, entity.TowerLabel, error)
	ShowTowers(towers *entity.Towers)
	Say(format string, args ...any)
}

// Hanoi runs a single Tower of Hanoi puzzle.
type Hanoi struct {
	logger *slog.Logger
	ui     towersUI
	disks  int
}

func NewHanoi(logger *slog.Logger, ui towersUI) *Hanoi {
	return &Hanoi{
		logger: logger.With("component", "hanoi"),
		ui:     ui,
		disks:  entity.TotalDisks,
	}
}

// Play - moves disks until the tower is rebuilt on B or C, or the player quits.
// The bool result reports whether the puzzle was solved.
func (that *Hanoi) Play(ctx context.Context) (*entity.Towers, bool, error) {
	log := that.logger.With("method", "Play")

	towers := entity.NewTowers(that.disks)
	moves := 0

	for {
		that.ui.ShowTowers(towers)

		err := that.moveDisk(ctx, towers)
		if errors.Is(err, apperror.ErrQuit) {
			that.ui.Say("Thanks for playing!")
			log.Info("puzzle abandoned", "moves", moves)

			return towers, false, nil
		}

		if err != nil {
			return towers, false, fmt.Errorf("failed to move disk: %w", err)
		}

		moves++

		if towers.IsSolved() {
			that.ui.ShowTowers(towers)
			that.ui.Say("You have solved the puzzle! Well done!")
			log.Info("puzzle solved", "moves", moves)

			return towers, true, nil
		}
	}
}

func (that *Hanoi) moveDisk(ctx context.Context, towers *entity.Towers) error {
	log := that.logger.With("method", "moveDisk")

	for {
		from, to, err := that.ui.RequestTowerMove(ctx)
		if err != nil {
			return fmt.Errorf("failed to request move: %w", err)
		}

		err = towers.Move(from, to)
		switch {
		case errors.Is(err, apperror.ErrEmptyTower):
			that.ui.Say("You selected a tower with no disks.")
		case errors.Is(err, apperror.ErrLargerOnSmaller):
			that.ui.Say("Can't put larger disks on top of smaller ones.")
		case err != nil:
			return err
		default:
			log.Debug("disk moved", "from", from, "to", to)

			return nil
		}

		log.Debug("illegal move", "from", from, "to", to, "error", err)
	}
}
