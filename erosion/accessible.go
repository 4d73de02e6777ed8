package erosion

import "github.com/katalvlaran/rollgrid/grid"

// CountAccessible returns the number of Present cells in g with fewer than
// Threshold Present neighbors. g is not modified.
func CountAccessible(g *grid.Grid) int {
	n := 0
	for p := range g.Positions() {
		if accessible(g, p) {
			n++
		}
	}
	return n
}

// Accessible returns the positions CountAccessible counts, in row-major order.
func Accessible(g *grid.Grid) []grid.Position {
	var out []grid.Position
	for p := range g.Positions() {
		if accessible(g, p) {
			out = append(out, p)
		}
	}
	return out
}

// accessible reports whether p holds a Present cell below Threshold.
func accessible(g *grid.Grid, p grid.Position) bool {
	return g.Get(p) == grid.Present && grid.CountPresentNeighbors(g, p) < Threshold
}
