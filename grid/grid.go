package grid

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

// Parse constructs a Grid from text rows. Each rune equal to the marker
// (DefaultMarker unless WithMarker is given) becomes Present, every other rune Absent.
// Row length is measured in runes.
// Returns ErrEmptyGrid if there are no rows or a row is empty,
// ErrNonRectangular if any row length differs from the first,
// ErrOptionViolation for a bad option.
// Complexity: O(R×C) time and memory.
func Parse(rows []string, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), utf8.RuneCountInString(rows[0])
	for r, row := range rows {
		n := utf8.RuneCountInString(row)
		if n == 0 {
			return nil, fmt.Errorf("%w: row %d is empty", ErrEmptyGrid, r)
		}
		if n != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, n, w)
		}
	}

	g := &Grid{rows: h, cols: w, cells: make([]Cell, h*w), marker: o.Marker}
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if ch == o.Marker {
				g.cells[r*w+c] = Present
			}
			c++
		}
	}

	return g, nil
}

// New constructs a Grid from a non-empty, rectangular matrix of cells.
// It deep-copies the input; later changes to cells do not affect the Grid.
// Any value other than Present is stored as Absent.
// Returns ErrEmptyGrid or ErrNonRectangular like Parse.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for r, row := range cells {
		if len(row) == 0 {
			return nil, fmt.Errorf("%w: row %d is empty", ErrEmptyGrid, r)
		}
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	g := &Grid{rows: h, cols: w, cells: make([]Cell, 0, h*w), marker: DefaultMarker}
	for _, row := range cells {
		for _, c := range row {
			if c != Present {
				c = Absent
			}
			g.cells = append(g.cells, c)
		}
	}

	return g, nil
}

// Dimensions returns the number of rows and columns.
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Get returns the cell at p. It panics if p is out of bounds;
// callers check InBounds first.
func (g *Grid) Get(p Position) Cell {
	return g.cells[g.mustIndex(p)]
}

// Set stores c at p; values other than Present are stored as Absent.
// It panics if p is out of bounds.
func (g *Grid) Set(p Position, c Cell) {
	if c != Present {
		c = Absent
	}
	g.cells[g.mustIndex(p)] = c
}

// Index maps p to its row-major arena index: Row*cols + Col.
// The result is meaningless for out-of-bounds positions.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Position converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// Positions yields every position in row-major order.
func (g *Grid) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				if !yield(Position{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// PresentCount returns the number of Present cells.
// Complexity: O(R×C).
func (g *Grid) PresentCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Present {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]Cell, len(g.cells))
	copy(cp.cells, g.cells)
	return &cp
}

// Equal reports whether g and other have the same dimensions and cells.
// The marker rune is a rendering detail and is not compared.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// String renders the grid one row per line, using the parse marker for
// Present cells and '.' for Absent ones. No trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] == Present {
				sb.WriteRune(g.marker)
			} else {
				sb.WriteRune(absentGlyph)
			}
		}
	}
	return sb.String()
}

func (g *Grid) mustIndex(p Position) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: position %v out of bounds %dx%d", p, g.rows, g.cols))
	}
	return g.Index(p)
}
