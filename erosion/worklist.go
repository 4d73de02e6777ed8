package erosion

import "math/rand"

// worklist is a slice-backed pool of arena indices. Entries may repeat.
// pop removes one entry according to order; live entries are items[head:].
type worklist struct {
	items []int
	head  int
	order Order
	rng   *rand.Rand
}

func newWorklist(order Order, seed int64, capacity int) *worklist {
	w := &worklist{
		items: make([]int, 0, capacity),
		order: order,
	}
	if order == Random {
		w.rng = rngFromSeed(seed)
	}
	return w
}

func (w *worklist) size() int {
	return len(w.items) - w.head
}

func (w *worklist) push(idx int) {
	w.items = append(w.items, idx)
}

// pop removes and returns the next entry. It must not be called on an empty list.
func (w *worklist) pop() int {
	var idx int
	switch w.order {
	case LIFO:
		last := len(w.items) - 1
		idx = w.items[last]
		w.items = w.items[:last]
	case Random:
		last := len(w.items) - 1
		j := w.head + w.rng.Intn(w.size())
		idx = w.items[j]
		w.items[j] = w.items[last]
		w.items = w.items[:last]
	default:
		idx = w.items[w.head]
		w.head++
	}
	if w.head == len(w.items) {
		// drained: reuse the backing array from the start
		w.items = w.items[:0]
		w.head = 0
	}
	return idx
}
