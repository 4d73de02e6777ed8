// Command paperrolls solves the paper-roll puzzle: it reads a grid where '@'
// marks a roll and prints how many rolls are accessible by a forklift (fewer
// than four neighboring rolls) and how many can be removed once removals
// cascade.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/rollgrid/grid"
	"github.com/katalvlaran/rollgrid/puzzle"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	stop()
	os.Exit(code)
}

// newLogger returns the command logger writing plain text to w.
func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	return log
}

// run executes the command and returns its exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := newLogger(stderr).WithField("cmd", "paperrolls")

	cfg, err := parseConfig(args, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case err != nil:
		logger.Error(err)
		return 2
	}

	rows, err := readInput(cfg.Input, stdin)
	if err != nil {
		logger.Error(err)
		return 1
	}

	rep, err := puzzle.Analyze(ctx, rows, grid.WithMarker(cfg.marker()))
	if err != nil {
		logger.WithField("input", cfg.Input).Error(err)
		return 1
	}

	fmt.Fprintf(stdout, "Part 1: %d\n", rep.Accessible)
	fmt.Fprintf(stdout, "Part 2: %d\n", rep.Removed)
	if cfg.Verbose {
		writeReport(stderr, rep)
	}
	return 0
}

// readInput loads rows from path, or from stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		return puzzle.ReadRows(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return puzzle.ReadRows(f)
}

// writeReport prints the erosion breakdown with grouped digits.
func writeReport(w io.Writer, rep *puzzle.Report) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "grid: %d×%d, %d rolls\n", rep.Rows, rep.Cols, rep.Initial)
	p.Fprintf(w, "accessible: %d\n", rep.Accessible)
	for i, n := range rep.Rounds {
		p.Fprintf(w, "round %d: %d removed\n", i+1, n)
	}
	p.Fprintf(w, "removed: %d in %d rounds\n", rep.Removed, len(rep.Rounds))
	p.Fprintf(w, "survivors: %d in %d clusters\n", rep.Survivors, rep.Clusters)
}
