package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/fourinarow/internal/apperror"
)

const (
	quitCommand = "QUIT"
	prompt      = "> "

	// maxAnswerLength bounds a single answer; longer lines are skipped whole.
	maxAnswerLength = 64
)

// Console - prompts players on a text terminal and reads their answers line by line.
type Console struct {
	logger *slog.Logger

	in  *bufio.Reader
	out io.Writer
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Say - writes a line of text for the players.
func (that *Console) Say(format string, args ...any) {
	fmt.Fprintf(that.out, format+"\n", args...)
}

// ask - shows the question and returns the normalized answer.
// The end of input is treated as a quit request, an over-long line as
// malformed input.
func (that *Console) ask(ctx context.Context, question ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	for _, line := range question {
		that.Say("%s", line)
	}
	fmt.Fprint(that.out, prompt)

	line, err := that.readLine()
	switch {
	case errors.Is(err, io.EOF):
		that.logger.Debug("input closed, quitting")

		return "", apperror.ErrQuit
	case errors.Is(err, apperror.ErrMalformedInput):
		return "", err
	case err != nil:
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	answer := strings.ToUpper(strings.TrimSpace(line))
	if answer == quitCommand {
		return "", apperror.ErrQuit
	}

	return answer, nil
}

// readLine - reads up to the end of the line. A line longer than
// maxAnswerLength is consumed entirely and reported as malformed.
func (that *Console) readLine() (string, error) {
	var line []byte
	overflow := false

	for {
		chunk, isPrefix, err := that.in.ReadLine()
		if err != nil {
			// a final line cut by the end of input still counts
			if errors.Is(err, io.EOF) && (len(line) > 0 || overflow) {
				break
			}

			return "", err
		}

		if overflow || len(line)+len(chunk) > maxAnswerLength {
			overflow = true
		} else {
			line = append(line, chunk...)
		}

		if !isPrefix {
			break
		}
	}

	if overflow {
		return "", fmt.Errorf("%w: answer longer than %d bytes", apperror.ErrMalformedInput, maxAnswerLength)
	}

	return string(line), nil
}
