// Command unblackedges reads a PBM bitmap and writes it back with every black
// pixel connected to the border turned white.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"pnmgrid/internal/app"
	"pnmgrid/internal/pnm"
	"pnmgrid/internal/render"
	"pnmgrid/internal/unblack"
)

const name = "unblackedges"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return app.ExitCode(name, unblackEdges(args, stdin, stdout, stderr), stderr)
}

func unblackEdges(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := app.NewConfig()
	rest, err := app.Parse(name, "[options] [file.pbm]", cfg, args, stderr, cfg.BindScale, cfg.BindOutput)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)

	in, err := app.Open(rest, stdin, logger)
	if err != nil {
		return err
	}
	defer in.Close()

	start := time.Now()
	bitmap, err := pnm.ReadBits(in)
	if err != nil {
		return fmt.Errorf("pbm file promised but not delivered: %w", err)
	}
	defer bitmap.Free()
	set := bitmap.Count()

	st := unblack.Clear(bitmap)
	logger.Debug("cleared black edges",
		"width", bitmap.Width(),
		"height", bitmap.Height(),
		"black", set,
		"cleared", st.Cleared,
		"fills", st.Seeds,
		"max_stack", st.MaxStack,
		"dur", time.Since(start).Round(time.Microsecond),
	)

	write := pnm.WriteBits
	if cfg.Raw {
		write = pnm.WriteRawBits
	}
	if err := write(stdout, bitmap); err != nil {
		return fmt.Errorf("write bitmap: %w", err)
	}

	if cfg.Snapshot != "" {
		if err := render.SaveBMP(cfg.Snapshot, bitmap, cfg.Scale); err != nil {
			return err
		}
		logger.Info("wrote snapshot", "path", cfg.Snapshot, "scale", cfg.Scale)
	}
	return nil
}
