package erosion

import "github.com/katalvlaran/rollgrid/grid"

// Rounds erodes g in place in synchronous waves: each round removes every
// cell that is accessible at the start of that round. It returns the number
// of cells removed per round; the slice is empty when nothing is accessible.
// The sum of the counts equals Erode on the same initial grid.
//
// Only neighbors of the previous round's removals are re-examined, so the
// total work is O(N) rather than O(N × rounds).
func Rounds(g *grid.Grid) []int {
	rows, cols := g.Dimensions()
	// mark[i] == round once index i is a candidate for the round after it
	mark := make([]int, rows*cols)

	var candidates []grid.Position
	for p := range g.Positions() {
		if g.Get(p) == grid.Present {
			candidates = append(candidates, p)
		}
	}

	var counts []int
	for round := 1; ; round++ {
		var batch []grid.Position
		for _, p := range candidates {
			if accessible(g, p) {
				batch = append(batch, p)
			}
		}
		if len(batch) == 0 {
			return counts
		}
		for _, p := range batch {
			g.Set(p, grid.Absent)
		}
		counts = append(counts, len(batch))

		candidates = candidates[:0]
		for _, p := range batch {
			for q := range g.Neighbors(p) {
				i := g.Index(q)
				if g.Get(q) != grid.Present || mark[i] == round {
					continue
				}
				mark[i] = round
				candidates = append(candidates, q)
			}
		}
	}
}
