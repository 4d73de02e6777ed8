package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/rollgrid/grid"
)

// config holds command settings. Environment variables provide defaults;
// flags override them.
type config struct {
	Input   string `env:"PAPERROLLS_INPUT" envDefault:"inputs/day04.txt"`
	Marker  string `env:"PAPERROLLS_MARKER" envDefault:"@"`
	Verbose bool   `env:"PAPERROLLS_VERBOSE" envDefault:"false"`
}

// errUsage marks errors caused by bad command-line input.
var errUsage = errors.New("usage")

// parseConfig loads env defaults, then applies flags from args. A single
// positional argument is accepted as the input path.
func parseConfig(args []string, stderr io.Writer) (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("paperrolls", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Input, "input", cfg.Input, "puzzle input path (- for stdin)")
	fs.StringVar(&cfg.Marker, "marker", cfg.Marker, "character marking a paper roll")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "report erosion rounds and survivors on stderr")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: paperrolls [flags] [input]\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		return cfg, fmt.Errorf("%w: at most one input path, got %d", errUsage, fs.NArg())
	}
	if utf8.RuneCountInString(cfg.Marker) != 1 {
		return cfg, fmt.Errorf("%w: marker must be a single character, got %q", errUsage, cfg.Marker)
	}
	if err := grid.ValidateMarker(cfg.marker()); err != nil {
		return cfg, fmt.Errorf("%w: %w", errUsage, err)
	}
	return cfg, nil
}

// marker returns the configured marker rune. parseConfig guarantees exactly one.
func (c config) marker() rune {
	r, _ := utf8.DecodeRuneInString(c.Marker)
	return r
}
