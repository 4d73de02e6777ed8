// Package grid defines core types, options, and sentinel errors
// for the grid package of github.com/katalvlaran/rollgrid.
package grid

import (
	"errors"
	"fmt"
	"unicode"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input has no rows or a row with no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// DefaultMarker is the rune parsed as a Present cell.
const DefaultMarker = '@'

// absentGlyph is used by String for Absent cells.
const absentGlyph = '.'

// Cell is the binary occupancy state of a grid position.
type Cell uint8

const (
	// Absent marks an empty position.
	Absent Cell = iota
	// Present marks an occupied position.
	Present
)

// String returns "present" or "absent".
func (c Cell) String() string {
	if c == Present {
		return "present"
	}
	return "absent"
}

// Position addresses a cell by 0-indexed row and column.
type Position struct {
	Row, Col int
}

// Translate returns the position shifted by (dr, dc). The result may be out of bounds.
func (p Position) Translate(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats the position as "(r,c)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Option configures grid parsing via functional arguments.
type Option func(*Options)

// Options holds parameters for Parse.
type Options struct {
	// Marker is the rune interpreted as Present.
	Marker rune

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Marker=DefaultMarker.
func DefaultOptions() Options {
	return Options{Marker: DefaultMarker}
}

// ValidateMarker reports whether r can serve as the Present marker.
// Whitespace, control runes and '.' (the Absent glyph used by String)
// are rejected with ErrOptionViolation.
func ValidateMarker(r rune) error {
	if unicode.IsSpace(r) || unicode.IsControl(r) || r == absentGlyph {
		return fmt.Errorf("%w: marker %q is not usable", ErrOptionViolation, r)
	}
	return nil
}

// WithMarker sets the rune parsed as Present. Markers rejected by
// ValidateMarker surface as ErrOptionViolation from Parse.
func WithMarker(r rune) Option {
	return func(o *Options) {
		if err := ValidateMarker(r); err != nil {
			o.err = err
			return
		}
		o.Marker = r
	}
}

// Grid is a rows×cols arena of cells in row-major order.
// A Grid is not safe for concurrent mutation; callers own it exclusively.
type Grid struct {
	rows, cols int
	cells      []Cell
	marker     rune
}
