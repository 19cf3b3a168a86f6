package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/fourinarow/internal/apperror"
	"github.com/rocketscienceinc/fourinarow/internal/entity"
)

type boardUI interface {
	RequestColumn(ctx context.Context, tile entity.Tile) (int, error)
	ShowBoard(board *entity.Board)
	Say(format string, args ...any)
}

// FourInARow runs a single game between two players sharing one terminal.
type FourInARow struct {
	logger *slog.Logger
	ui     boardUI
}

func NewFourInARow(logger *slog.Logger, ui boardUI) *FourInARow {
	return &FourInARow{
		logger: logger.With("component", "fourinarow"),
		ui:     ui,
	}
}

// Play - alternates turns until a player wins, the board fills up or a player quits.
func (that *FourInARow) Play(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("method", "Play")

	game := entity.NewGame()

	for {
		that.ui.ShowBoard(game.Board)

		err := that.makeTurn(ctx, game)
		if errors.Is(err, apperror.ErrQuit) {
			game.Terminate()
			that.ui.Say("Thanks for playing!")
			log.Info("game terminated", "moves", game.Moves)

			return game, nil
		}

		if err != nil {
			return game, fmt.Errorf("failed to make turn: %w", err)
		}

		switch game.Status {
		case entity.StatusWon:
			that.ui.ShowBoard(game.Board)
			that.ui.Say("Player %s has won!", game.Winner)
			log.Info("game won", "winner", game.Winner, "moves", game.Moves)

			return game, nil
		case entity.StatusDrawn:
			that.ui.ShowBoard(game.Board)
			that.ui.Say("There is a tie!")
			log.Info("game drawn", "moves", game.Moves)

			return game, nil
		}
	}
}

// makeTurn - asks the current player for columns until one has room.
func (that *FourInARow) makeTurn(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "makeTurn", "player", game.Turn)

	for {
		column, err := that.ui.RequestColumn(ctx, game.Turn)
		if err != nil {
			return fmt.Errorf("failed to request column: %w", err)
		}

		row, err := game.MakeTurn(game.Turn, column)
		if errors.Is(err, apperror.ErrColumnFull) {
			log.Debug("column is full", "column", column)
			that.ui.Say("That column is full, select another one.")

			continue
		}

		if err != nil {
			return err
		}

		log.Debug("tile dropped", "column", column, "row", row)

		return nil
	}
}
