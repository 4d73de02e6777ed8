package erosion

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rollgrid/grid"
)

// eroder encapsulates mutable state for one erosion run.
type eroder struct {
	g    *grid.Grid
	opts Options
	ctx  context.Context
	work *worklist
	res  *Result
}

// Erode removes every Present cell whose neighbor count is below Threshold,
// cascading until no such cell remains, and returns the number removed.
// g is mutated in place to its stable configuration. Erode uses FIFO order;
// the result does not depend on order.
// Calling Erode on an already-eroded grid returns 0 and changes nothing.
// A nil grid returns 0; use Run to tell it apart via ErrGridNil.
func Erode(g *grid.Grid) int {
	res, err := Run(g)
	if err != nil {
		return 0
	}
	return res.Removed
}

// Run erodes g in place like Erode, applying any number of functional Options.
// Returns ErrGridNil for a nil grid, ErrOptionViolation for bad options,
// ctx.Err() on cancellation, or a wrapped OnRemove error. On error g holds
// whatever state the run reached, and the partial Result is returned with it.
func Run(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rows, cols := g.Dimensions()
	e := &eroder{
		g:    g,
		opts: o,
		ctx:  o.Ctx,
		work: newWorklist(o.Order, o.Seed, rows*cols),
		res:  &Result{},
	}

	// Seed the worklist with every Present cell, row-major.
	for p := range g.Positions() {
		if g.Get(p) == grid.Present {
			e.work.push(g.Index(p))
		}
	}

	return e.res, e.loop()
}

// loop processes the worklist until empty, error, or cancellation.
func (e *eroder) loop() error {
	for e.work.size() > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-e.ctx.Done():
			return e.ctx.Err()
		default:
		}

		p := e.g.Position(e.work.pop())
		e.res.Dequeued++
		if !accessible(e.g, p) {
			e.res.Stale++
			e.opts.OnDiscard(p)
			continue
		}
		if err := e.remove(p); err != nil {
			return err
		}
		e.enqueueNeighbors(p)
	}
	return nil
}

// remove clears p, records it, and calls OnRemove.
func (e *eroder) remove(p grid.Position) error {
	e.g.Set(p, grid.Absent)
	e.res.Removed++
	e.res.Removals = append(e.res.Removals, p)
	if err := e.opts.OnRemove(p, e.res.Removed); err != nil {
		return fmt.Errorf("erosion: OnRemove error at %v: %w", p, err)
	}
	return nil
}

// enqueueNeighbors queues each Present neighbor of p that is now below Threshold.
// A neighbor may already be pending; the duplicate is filtered on dequeue.
func (e *eroder) enqueueNeighbors(p grid.Position) {
	for q := range e.g.Neighbors(p) {
		if accessible(e.g, q) {
			e.work.push(e.g.Index(q))
		}
	}
}
