package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Open returns the input named by the positional arguments: stdin when there
// are none, the named file when there is exactly one. The caller must Close
// the result; closing stdin is a no-op.
func Open(args []string, stdin io.Reader, logger *slog.Logger) (io.ReadCloser, error) {
	switch len(args) {
	case 0:
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			logger.Warn("reading input from a terminal; end it with Ctrl-D")
		}
		logger.Debug("reading input", "source", "stdin")
		return io.NopCloser(stdin), nil
	case 1:
		f, err := os.Open(args[0])
		if err != nil {
			return nil, &ExitError{Code: 1, Message: fmt.Sprintf("cannot open input: %v", err)}
		}
		logger.Debug("reading input", "source", args[0])
		return f, nil
	default:
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one input file, got %d", len(args))}
	}
}
