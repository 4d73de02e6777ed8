// Package erosion removes Present cells from a grid.Grid whose Moore neighbor
// count is below Threshold, cascading until a fixed point is reached.
//
// What
//
//   - CountAccessible / Accessible: a read-only pass over the initial grid that
//     reports which Present cells already have fewer than Threshold neighbors.
//   - Erode: the worklist-driven fixed-point loop. Every Present cell is queued
//     once in row-major order; a dequeued cell that is still Present and still
//     below Threshold is removed, and each of its Present neighbors that has
//     dropped below Threshold is queued again. Stale entries (already removed,
//     or no longer below Threshold) are discarded at dequeue time, so duplicate
//     entries are harmless.
//   - Run: the same engine with functional options: worklist order (FIFO, LIFO,
//     seeded Random), context cancellation, and hooks.
//   - Rounds: synchronous wave erosion; every cell accessible at the start of a
//     round is removed together. Reports per-round removal counts.
//
// Confluence
//
//	Removing a cell never increases any other cell's neighbor count, so a cell
//	that once falls below Threshold stays removable. The set of removed cells,
//	and therefore the final grid and the removal count, is the same for every
//	worklist order and equals the total of Rounds.
//
// Complexity (N = rows × cols)
//
//   - CountAccessible: O(N) time, O(1) memory.
//   - Erode / Run:     O(N) time; each removal re-queues at most 8 cells and
//     each dequeue costs at most 8 lookups. Memory O(N) for the worklist.
//   - Rounds:          O(N) time overall; each round only re-examines neighbors
//     of the previous round's removals.
//
// Usage
//
//	g, _ := grid.Parse(rows)
//	part1 := erosion.CountAccessible(g)
//	part2 := erosion.Erode(g.Clone())
//
//	// With functional options:
//	res, err := erosion.Run(
//	    g.Clone(),
//	    erosion.WithOrder(erosion.Random),
//	    erosion.WithSeed(7),
//	    erosion.WithContext(ctx),
//	    erosion.WithOnRemove(func(p grid.Position, step int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  if an invalid Option is supplied (e.g. unknown Order).
//   - ctx.Err()           if the context is cancelled mid-run.
//   - Wrapped user-supplied hook errors from OnRemove.
//
// CountAccessible, Erode and Rounds have no error path for a valid grid.
package erosion
