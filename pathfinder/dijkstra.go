package pathfinder

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/lvmaze/maze"
)

// ShortestPathDijkstra returns a minimum-cost path from Start to End where
// each move costs StepCost of the destination cell. Hazard cells are legal
// but charged CostHazard. Equal-cost candidates leave the heap in the
// order they were pushed.
// Returns ErrNoPath if End is unreachable.
//
// Complexity: O(N log N) time, O(N) memory, N = R·C.
func (pf *Pathfinder) ShortestPathDijkstra() (Path, error) {
	r := newRunner(pf, 1, plainStep)
	p, err := r.run(pf.start, pf.end)
	return pf.finish(AlgoDijkstra, p, r.expanded, err)
}

// stepFunc decides whether a move into terrain t is allowed from a state
// that has crossed used hazards, and if so the resulting usage and cost.
type stepFunc func(used int, t maze.Terrain) (nextUsed, cost int, ok bool)

// plainStep charges every legal cell its table cost.
func plainStep(used int, t maze.Terrain) (int, int, bool) {
	cost, ok := StepCost(t)
	return used, cost, ok
}

// runner holds the mutable state of one weighted search. Each query
// builds its own runner; nothing is shared between calls.
//
// The search runs over layers copies of the grid. Node s stands for cell
// s/layers having crossed s%layers hazards. Plain Dijkstra uses a single
// layer.
type runner struct {
	pf       *Pathfinder
	layers   int
	step     stepFunc
	dist     []int // best known cost per node
	prev     []int // predecessor node, -1 for none
	pq       stateQueue
	seq      uint64
	expanded int
}

func newRunner(pf *Pathfinder, layers int, step stepFunc) *runner {
	n := pf.grid.Size() * layers
	r := &runner{
		pf:     pf,
		layers: layers,
		step:   step,
		dist:   make([]int, n),
		prev:   make([]int, n),
		pq:     make(stateQueue, 0, pf.grid.Size()),
	}
	for i := range r.dist {
		r.dist[i] = math.MaxInt
		r.prev[i] = -1
	}
	return r
}

func (r *runner) push(state, cost, used int) {
	r.seq++
	heap.Push(&r.pq, stateItem{state: state, cost: cost, used: used, seq: r.seq})
}

// run searches from (from, 0 hazards used) until any node of cell to is
// popped, then rebuilds the path back to the origin node.
func (r *runner) run(from, to maze.Coord) (Path, error) {
	g := r.pf.grid
	origin := g.Index(from) * r.layers
	goal := g.Index(to)

	// 1) The origin node (from, 0 used) costs nothing and seeds the heap.
	r.dist[origin] = 0
	r.push(origin, 0, 0)

	for r.pq.Len() > 0 {
		// 2) Pop the cheapest entry; ties leave in (used, seq) order.
		item := heap.Pop(&r.pq).(stateItem)

		// 3) A cost above the recorded best marks a stale duplicate.
		if item.cost > r.dist[item.state] {
			continue
		}

		// 4) Any layer of the goal cell ends the search. Its cost is final.
		cell := item.state / r.layers
		if cell == goal {
			return tracePath(r.prev, origin, item.state, r.coordOf)
		}

		// 5) Expand the node.
		r.expanded++
		r.relax(item)
	}

	// 6) Heap drained without reaching any goal node.
	return nil, ErrNoPath
}

// relax tries every neighbor of item's cell in maze.Directions order and
// pushes any node whose cost strictly improves.
func (r *runner) relax(item stateItem) {
	g := r.pf.grid
	u := g.Coord(item.state / r.layers)
	for _, d := range maze.Directions {
		// 1) Skip walls and cells off the grid.
		v := u.Add(d)
		if !r.pf.isLegal(v) {
			continue
		}

		// 2) The step rule picks the target layer and the move cost, or
		//    forbids the move (Hazard with no budget left).
		used, cost, ok := r.step(item.used, g.At(v))
		if !ok {
			continue
		}

		// 3) Only a strictly cheaper cost replaces the recorded one, so the
		//    first-pushed route keeps equal-cost ties.
		ns := g.Index(v)*r.layers + used
		nd := item.cost + cost
		if nd >= r.dist[ns] {
			continue
		}

		// 4) Record the improvement and queue the node again.
		r.dist[ns] = nd
		r.prev[ns] = item.state
		r.push(ns, nd, used)
	}
}

func (r *runner) coordOf(state int) maze.Coord {
	return r.pf.grid.Coord(state / r.layers)
}
