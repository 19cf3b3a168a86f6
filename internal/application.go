package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/fourinarow/internal/config"
	"github.com/rocketscienceinc/fourinarow/internal/usecase"
	"github.com/rocketscienceinc/fourinarow/transport/console"
)

const fourInARowIntro = `Four-in-a-Row

Two players take turns dropping tiles into one of seven columns, trying
to make Four-in-a-Row horizontally, vertically, or diagonally.
`

const hanoiIntro = `THE TOWER OF HANOI

Move the tower of disks, one disk at a time, to another tower. Larger
disks cannot rest on top of a smaller disk.

More info at https://en.wikipedia.org/wiki/Tower_of_Hanoi
`

// RunApp - runs the game selected in the configuration on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
		// the game blocks on stdin, so a signal ends the process here
		os.Exit(0)
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - plays one game reading from in and writing to out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app", "game", conf.Game)

	term := console.New(logger, in, out)

	switch conf.Game {
	case config.GameHanoi:
		term.Say("%s", hanoiIntro)

		if _, _, err := usecase.NewHanoi(logger, term).Play(ctx); err != nil {
			return fmt.Errorf("tower of hanoi failed: %w", err)
		}
	case config.GameFourInARow:
		term.Say("%s", fourInARowIntro)

		if _, err := usecase.NewFourInARow(logger, term).Play(ctx); err != nil {
			return fmt.Errorf("four-in-a-row failed: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownGame, conf.Game)
	}

	log.Debug("game over")

	return nil
}
