package puzzle

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/rollgrid/erosion"
	"github.com/katalvlaran/rollgrid/grid"
)

// Answer holds the two puzzle answers.
type Answer struct {
	// Accessible is the number of rolls with fewer than erosion.Threshold
	// neighbors in the initial grid.
	Accessible int
	// Removed is the total number of rolls erosion removes.
	Removed int
}

// Report extends Answer with a description of the erosion process.
type Report struct {
	Answer
	Rows, Cols int
	// Initial is the number of rolls before erosion.
	Initial int
	// Rounds holds removals per synchronous wave.
	Rounds []int
	// Survivors is the number of rolls left at the fixed point.
	Survivors int
	// Clusters is the number of 8-connected groups of survivors.
	Clusters int
}

// ReadRows reads newline-separated rows from r. Carriage returns before a
// newline are dropped and trailing blank lines are ignored; blank lines in the
// middle are kept so grid.Parse can reject them.
func ReadRows(r io.Reader) ([]string, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		rows = append(rows, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("puzzle: read rows: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// Solve parses rows and computes both answers.
// Grid construction errors are returned unchanged (see grid.ErrEmptyGrid,
// grid.ErrNonRectangular, grid.ErrOptionViolation).
func Solve(rows []string, opts ...grid.Option) (Answer, error) {
	g, err := grid.Parse(rows, opts...)
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		Accessible: erosion.CountAccessible(g),
		Removed:    erosion.Erode(g.Clone()),
	}, nil
}

// Analyze parses rows and builds a full Report. The worklist run honors ctx;
// the round breakdown is computed on a separate clone and must agree with it.
func Analyze(ctx context.Context, rows []string, opts ...grid.Option) (*Report, error) {
	g, err := grid.Parse(rows, opts...)
	if err != nil {
		return nil, err
	}
	rep := &Report{Initial: g.PresentCount()}
	rep.Rows, rep.Cols = g.Dimensions()
	rep.Accessible = erosion.CountAccessible(g)

	work := g.Clone()
	res, err := erosion.Run(work, erosion.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("puzzle: erode: %w", err)
	}
	rep.Removed = res.Removed

	waves := g.Clone()
	rep.Rounds = erosion.Rounds(waves)
	total := 0
	for _, n := range rep.Rounds {
		total += n
	}
	if total != rep.Removed || !waves.Equal(work) {
		return nil, fmt.Errorf("puzzle: round erosion removed %d, worklist removed %d", total, rep.Removed)
	}

	rep.Survivors = work.PresentCount()
	rep.Clusters = len(work.Clusters())
	return rep, nil
}
