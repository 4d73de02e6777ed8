// Package grid models a rectangular 2D grid of binary cells (Present or Absent)
// stored as a flat row-major arena, together with the fixed 8-connected (Moore)
// neighborhood used by every erosion computation in this module.
//
// What:
//
//   - Grid wraps rows×cols cells addressed by Position{Row, Col}.
//   - Parse builds a Grid from text rows: the marker rune ('@' by default) is
//     Present, anything else is Absent.
//   - CountPresentNeighbors counts Present cells among the 8 Moore neighbors.
//   - Clusters groups Present cells into Moore-connected components.
//
// Why:
//
//   - Index arithmetic replaces any pointer graph: neighbors are implicit via
//     offsets, so mutation in place is a single slice store.
//   - The neighbor count is the only quantity erosion ever inspects.
//
// Complexity:
//
//   - Parse / New:            O(R×C) time and memory.
//   - Get / Set / InBounds:   O(1).
//   - CountPresentNeighbors:  O(1) (bounded by 8 lookups).
//   - Clusters:               O(R×C×8), Memory: O(R×C).
//
// Options:
//
//   - WithMarker(r): rune treated as Present when parsing (default '@').
//
// Errors:
//
//   - ErrEmptyGrid:        no rows, or a row of zero length.
//   - ErrNonRectangular:   rows have differing lengths.
//   - ErrOptionViolation:  an invalid Option was supplied.
package grid
