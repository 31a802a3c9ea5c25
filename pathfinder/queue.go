package pathfinder

// stateItem is a heap entry: an augmented state, the cost it was pushed
// with, its hazard usage and a push sequence number.
type stateItem struct {
	state int    // cell*layers + used
	cost  int    // accumulated cost when pushed
	used  int    // hazards crossed so far
	seq   uint64 // insertion order
}

// stateQueue is a min-heap of stateItem ordered by cost, then by fewer
// hazards used, then by insertion order. The last key makes the heap
// stable: equal-cost entries pop first-in, first-out.
//
// Outdated entries are left in place and skipped when popped
// (lazy decrease-key).
type stateQueue []stateItem

// Len returns the number of items in the heap.
func (pq stateQueue) Len() int { return len(pq) }

// Less orders by (cost, used, seq) ascending.
func (pq stateQueue) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.used != b.used {
		return a.used < b.used
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq stateQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a stateItem. Called by heap.Push.
func (pq *stateQueue) Push(x any) { *pq = append(*pq, x.(stateItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *stateQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
