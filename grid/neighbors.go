package grid

import "iter"

// neighborOffsets is the Moore neighborhood as (dRow, dCol) deltas,
// row-major around the center. It never changes.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NeighborOffsets returns a copy of the 8 Moore (dRow, dCol) deltas in
// the order every traversal in this module uses.
func NeighborOffsets() [8][2]int {
	return neighborOffsets
}

// CountPresentNeighbors returns how many of the 8 positions adjacent to p
// hold a Present cell. Out-of-bounds candidates are skipped. The result is in [0,8].
// p itself need not be Present, but must be in bounds for the count to be meaningful.
// Complexity: O(1).
func CountPresentNeighbors(g *Grid, p Position) int {
	n := 0
	for _, d := range neighborOffsets {
		q := p.Translate(d[0], d[1])
		if !g.InBounds(q) {
			continue
		}
		if g.cells[g.Index(q)] == Present {
			n++
		}
	}
	return n
}

// Neighbors yields the in-bounds Moore neighbors of p in offset order.
func (g *Grid) Neighbors(p Position) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, d := range neighborOffsets {
			q := p.Translate(d[0], d[1])
			if !g.InBounds(q) {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}
