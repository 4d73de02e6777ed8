package erosion_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rollgrid/grid"
)

// exampleRows is the documented 10×10 warehouse: 71 rolls, 13 accessible,
// 43 removable in total.
var exampleRows = []string{
	"..@@.@@@@.",
	"@@@.@.@.@@",
	"@@@@@.@.@@",
	"@.@@@@..@.",
	"@@.@@@@.@@",
	".@@@@@@@.@",
	".@.@.@.@@@",
	"@.@@@.@@@@",
	".@@@@@@@@.",
	"@.@.@@@.@.",
}

// exampleStable is exampleRows after erosion reaches its fixed point.
var exampleStable = []string{
	"..........",
	"..........",
	"..........",
	"....@@....",
	"...@@@@...",
	"...@@@@@..",
	"...@.@.@@.",
	"...@@.@@@.",
	"...@@@@@..",
	"....@@@...",
}

// mustParse parses rows or fails the test.
func mustParse(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(rows)
	require.NoError(t, err)
	return g
}

// randomRows builds a rows×cols grid with roughly density Present cells,
// deterministic for a given seed.
func randomRows(rows, cols int, density float64, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))
	out := make([]string, rows)
	buf := make([]byte, cols)
	for r := range out {
		for c := range buf {
			if rng.Float64() < density {
				buf[c] = '@'
			} else {
				buf[c] = '.'
			}
		}
		out[r] = string(buf)
	}
	return out
}
