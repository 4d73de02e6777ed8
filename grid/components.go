package grid

// Clusters finds all Moore-connected regions of Present cells.
// Clusters are returned in row-major order of their first cell; positions
// within a cluster are in BFS discovery order from that cell.
//
// Time:   O(R·C·8).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Clusters() [][]Position {
	seen := make([]bool, len(g.cells))
	var comps [][]Position

	for i0, c := range g.cells {
		if c != Present || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Position

		for qi := 0; qi < len(queue); qi++ {
			u := g.Position(queue[qi])
			comp = append(comp, u)
			for _, d := range neighborOffsets {
				v := u.Translate(d[0], d[1])
				if !g.InBounds(v) {
					continue
				}
				vi := g.Index(v)
				if g.cells[vi] == Present && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
