// Package erosion provides tunable options and error definitions
// for worklist erosion over a grid.Grid.
package erosion

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/rollgrid/grid"
)

// Threshold is the neighbor count below which a Present cell is removable.
const Threshold = 4

// Sentinel errors for erosion runs.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("erosion: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("erosion: invalid option supplied")
)

// Order selects which worklist entry is processed next.
type Order int

const (
	// FIFO processes entries in the order they were queued.
	FIFO Order = iota
	// LIFO processes the most recently queued entry first.
	LIFO
	// Random picks a uniformly random pending entry from a seeded source.
	Random
)

// String returns the lower-case order name.
func (o Order) String() string {
	switch o {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// Option configures an erosion run via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize an erosion run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Order is the worklist discipline.
	Order Order

	// Seed drives Random order. Zero selects a fixed default seed.
	Seed int64

	// OnRemove is called after a cell is removed. step is the running
	// removal count (1 for the first removal). A non-nil error aborts the run.
	OnRemove func(p grid.Position, step int) error

	// OnDiscard is called for each stale worklist entry.
	OnDiscard func(p grid.Position)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - FIFO order, Seed 0
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Order:     FIFO,
		OnRemove:  func(grid.Position, int) error { return nil },
		OnDiscard: func(grid.Position) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder sets the worklist discipline. Unknown values are an ErrOptionViolation.
func WithOrder(order Order) Option {
	return func(o *Options) {
		switch order {
		case FIFO, LIFO, Random:
			o.Order = order
		default:
			o.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, int(order))
		}
	}
}

// WithSeed sets the seed used by Random order.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithOnRemove registers a callback to run after each removal; returning an
// error from this callback stops the run.
func WithOnRemove(fn func(p grid.Position, step int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRemove = fn
		}
	}
}

// WithOnDiscard registers a callback for stale worklist entries.
func WithOnDiscard(fn func(p grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscard = fn
		}
	}
}

// Result holds the outcome of an erosion run:
//   - Removed:  number of cells removed.
//   - Removals: removed positions, in removal order.
//   - Dequeued: worklist entries processed, stale ones included.
//   - Stale:    entries discarded because the cell was already gone or
//     no longer below Threshold.
type Result struct {
	Removed  int
	Removals []grid.Position
	Dequeued int
	Stale    int
}
