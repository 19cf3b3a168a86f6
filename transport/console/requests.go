package console

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/fourinarow/internal/apperror"
	"github.com/rocketscienceinc/fourinarow/internal/entity"
)

var towerMoves = []string{"AB", "AC", "BA", "BC", "CA", "CB"}

// RequestColumn - asks the player with tile for a column until a valid label
// or QUIT is entered. Whether the column has room is up to the caller.
func (that *Console) RequestColumn(ctx context.Context, tile entity.Tile) (int, error) {
	for {
		var column int

		answer, err := that.ask(ctx, fmt.Sprintf("Player %s, enter 1 to %d or QUIT:", tile, entity.BoardWidth))
		if err == nil {
			column, err = parseColumn(answer)
		}

		if errors.Is(err, apperror.ErrMalformedInput) {
			that.logger.Debug("rejected column", "error", err)
			that.Say("Enter a number from 1 to %d.", entity.BoardWidth)

			continue
		}

		if err != nil {
			return 0, err
		}

		return column, nil
	}
}

// RequestTowerMove - asks for a pair of tower letters such as "AB" until a
// valid pair or QUIT is entered.
func (that *Console) RequestTowerMove(ctx context.Context) (entity.TowerLabel, entity.TowerLabel, error) {
	for {
		var from, to entity.TowerLabel

		answer, err := that.ask(ctx,
			`Enter the letters of "from" and "to" towers, or QUIT.`,
			"(e.g., AB to moves a disk from tower A to tower B.)",
			"",
		)
		if err == nil {
			from, to, err = parseTowerMove(answer)
		}

		if errors.Is(err, apperror.ErrMalformedInput) {
			that.logger.Debug("rejected tower move", "error", err)
			that.Say("Enter one of AB, AC, BA, BC, CA, or CB.")

			continue
		}

		if err != nil {
			return "", "", err
		}

		return from, to, nil
	}
}

func parseColumn(answer string) (int, error) {
	column := slices.Index(entity.ColumnLabels[:], answer)
	if column < 0 {
		return 0, fmt.Errorf("%w: %q is not a column", apperror.ErrMalformedInput, answer)
	}

	return column, nil
}

func parseTowerMove(answer string) (entity.TowerLabel, entity.TowerLabel, error) {
	if !slices.Contains(towerMoves, answer) {
		return "", "", fmt.Errorf("%w: %q is not a tower move", apperror.ErrMalformedInput, answer)
	}

	return entity.TowerLabel(answer[:1]), entity.TowerLabel(answer[1:]), nil
}
