package dijkstra

import "github.com/katalvlaran/shortpath/core"

// step is one frontier entry: a vertex and its distance label at push time.
// seq orders entries of equal cost by insertion (FIFO).
type step struct {
	id   core.VertexID
	cost float64
	seq  uint64
}

// frontier is a min-heap of steps ordered by (cost, seq).
// It may hold several entries for the same vertex; stale entries are never
// removed, the settled set makes them harmless.
type frontier []step

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by cost, then by insertion sequence.
func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x, which must be a step. Called by heap.Push.
func (f *frontier) Push(x any) { *f = append(*f, x.(step)) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
