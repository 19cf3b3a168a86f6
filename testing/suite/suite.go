package suite

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

// Suite - a scripted terminal for driving games in tests.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	Input  *strings.Reader
	Output *bytes.Buffer
}

// New - builds a suite whose input holds lines, one answer per line.
func New(t *testing.T, lines ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	script := ""
	if len(lines) > 0 {
		script = strings.Join(lines, "\n") + "\n"
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Input:  strings.NewReader(script),
		Output: &bytes.Buffer{},
	}
}

// Printed - reports how many times text appears in the output.
func (that *Suite) Printed(text string) int {
	return strings.Count(that.Output.String(), text)
}
