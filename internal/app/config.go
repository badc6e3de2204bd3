package app

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Config represents the command-line parameters shared by the tools.
type Config struct {
	LogLevel  string
	LogFormat string

	Snapshot string
	Scale    int
	Raw      bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{LogLevel: "warn", LogFormat: "text", Scale: 4}
}

// Bind attaches the logging options to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug|info|warn|error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "text|json")
}

// BindScale attaches the pixel scale option to the provided FlagSet.
func (c *Config) BindScale(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for snapshots and the viewer")
}

// BindOutput attaches the bitmap output options to the provided FlagSet.
func (c *Config) BindOutput(fs *flag.FlagSet) {
	fs.StringVar(&c.Snapshot, "snapshot", c.Snapshot, "also write the result as a BMP image to this path")
	fs.BoolVar(&c.Raw, "raw", c.Raw, "write raw (P4) instead of plain (P1) output")
}

// Validate rejects option values the tools cannot honour.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be debug, info, warn or error", c.LogLevel)
	}
	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log-format %q: must be text or json", c.LogFormat)
	}
	if c.Scale < 1 {
		return fmt.Errorf("invalid scale %d: must be at least 1", c.Scale)
	}
	return nil
}

// Parse binds the logging options of cfg plus any extra binders to a new
// FlagSet named name, parses args and validates the result. It returns the
// positional arguments.
func Parse(name, usage string, cfg *Config, args []string, output io.Writer, binds ...func(*flag.FlagSet)) ([]string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage:\n  %s %s\n\nOptions:\n", name, usage)
		fs.PrintDefaults()
	}
	cfg.Bind(fs)
	for _, bind := range binds {
		bind(fs)
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		// the flag package has already reported the problem
		return nil, &ExitError{Code: 2}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return fs.Args(), nil
}
