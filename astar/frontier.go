package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/cost"
)

// scoreTable holds the best known g (cost so far) and f (g + h) per State.
// Entries are only written by relaxation, whenever a strictly smaller g is found.
type scoreTable struct {
	g map[cost.State]int64
	f map[cost.State]int64
}

func newScoreTable() scoreTable {
	return scoreTable{
		g: make(map[cost.State]int64),
		f: make(map[cost.State]int64),
	}
}

// frontierItem is a discovered, not yet expanded State.
type frontierItem struct {
	state cost.State
	f     int64 // g + h
	h     int64 // heuristic part, first tie-breaker
	index int   // position in the heap, maintained by Swap
}

// itemPQ is a min-heap of *frontierItem ordered by (f, h, row, col, axis).
type itemPQ []*frontierItem

// Len returns the number of items in the heap.
func (pq itemPQ) Len() int { return len(pq) }

// Less orders by f, then h, then Position row-major, then Axis.
func (pq itemPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	if a.state.Pos != b.state.Pos {
		return a.state.Pos.Less(b.state.Pos)
	}
	return a.state.Axis < b.state.Axis
}

// Swap swaps two elements and keeps their indices in sync.
func (pq itemPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x onto the heap; x must be *frontierItem.
func (pq *itemPQ) Push(x interface{}) {
	it := x.(*frontierItem)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[:n-1]

	return it
}

// frontier is a set of States supporting remove-min and insert-or-refresh by value.
// Each State appears at most once; a refresh updates its key in place.
type frontier struct {
	pq     itemPQ
	byNode map[cost.State]*frontierItem
}

func newFrontier() *frontier {
	return &frontier{byNode: make(map[cost.State]*frontierItem)}
}

// Len returns the number of pending States.
func (fr *frontier) Len() int { return fr.pq.Len() }

// upsert inserts s or, if it is already pending, refreshes its priority.
func (fr *frontier) upsert(s cost.State, f, h int64) {
	if it, ok := fr.byNode[s]; ok {
		it.f, it.h = f, h
		heap.Fix(&fr.pq, it.index)
		return
	}
	it := &frontierItem{state: s, f: f, h: h}
	heap.Push(&fr.pq, it)
	fr.byNode[s] = it
}

// popMin removes and returns the State with minimum priority.
func (fr *frontier) popMin() *frontierItem {
	it := heap.Pop(&fr.pq).(*frontierItem)
	delete(fr.byNode, it.state)
	return it
}

// contains reports whether s is pending.
func (fr *frontier) contains(s cost.State) bool {
	_, ok := fr.byNode[s]
	return ok
}
