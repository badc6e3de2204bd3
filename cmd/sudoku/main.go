// Command sudoku checks a solved sudoku stored as a 9x9 PGM with maxval 9. It
// exits 0 when the solution is valid and 1 otherwise.
package main

import (
	"errors"
	"io"
	"os"

	"pnmgrid/internal/app"
	"pnmgrid/internal/sudoku"
)

const name = "sudoku"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stderr))
}

func run(args []string, stdin io.Reader, stderr io.Writer) int {
	return app.ExitCode(name, check(args, stdin, stderr), stderr)
}

func check(args []string, stdin io.Reader, stderr io.Writer) error {
	cfg := app.NewConfig()
	rest, err := app.Parse(name, "[options] [file.pgm]", cfg, args, stderr)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)

	in, err := app.Open(rest, stdin, logger)
	if err != nil {
		return err
	}
	defer in.Close()

	board, err := sudoku.Load(in)
	if err != nil {
		return err
	}
	defer board.Free()

	if err := sudoku.Check(board); err != nil {
		var re *sudoku.RuleError
		if errors.As(err, &re) {
			logger.Debug("rule violation", "unit", re.Unit, "index", re.Index, "missing", re.Digit)
		}
		return err
	}
	logger.Info("valid solution")
	return nil
}
