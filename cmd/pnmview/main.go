//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"pnmgrid/internal/app"
	"pnmgrid/internal/pnm"

	"github.com/hajimehoshi/ebiten/v2"
)

const name = "pnmview"

func main() {
	os.Exit(app.ExitCode(name, view(os.Args[1:], os.Stdin, os.Stderr), os.Stderr))
}

func view(args []string, stdin io.Reader, stderr io.Writer) error {
	cfg := app.NewConfig()
	rest, err := app.Parse(name, "[options] [file.pbm]", cfg, args, stderr, cfg.BindScale)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)

	in, err := app.Open(rest, stdin, logger)
	if err != nil {
		return err
	}
	bitmap, err := pnm.ReadBits(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("pbm file promised but not delivered: %w", err)
	}
	defer bitmap.Free()

	game := app.New(bitmap, cfg.Scale)
	defer game.Close()

	ebiten.SetWindowTitle("pnmview: " + sourceName(rest))
	ebiten.SetWindowSize(bitmap.Width()*cfg.Scale, bitmap.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func sourceName(args []string) string {
	if len(args) == 0 {
		return "stdin"
	}
	return args[0]
}
