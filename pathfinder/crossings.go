package pathfinder

import (
	"container/list"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/maze"
)

// MinHazardCrossings returns the fewest Hazard cells any Start→End path
// must cross, ignoring all other costs. It is the smallest budget k for
// which ShortestPathWithHazardBudget(k) succeeds.
//
// Behavior:
//  1. 0-1 BFS from Start over legal cells:
//     • Moving into a Hazard cell → cost 1
//     • Moving into any other cell → cost 0
//  2. Stop when End is dequeued.
//
// Returns ErrNoPath when walls separate Start from End.
//
// Complexity: O(R·C) time and memory.
func (pf *Pathfinder) MinHazardCrossings() (int, error) {
	g := pf.grid
	n := g.Size()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
	}

	src, dst := g.Index(pf.start), g.Index(pf.end)
	dist[src] = 0

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushFront(src)
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			pf.log.Debug("hazard crossings computed", zap.Int("min", dist[u]))
			return dist[u], nil
		}
		cu := g.Coord(u)
		for _, d := range maze.Directions {
			v := cu.Add(d)
			if !pf.isLegal(v) {
				continue
			}
			vi := g.Index(v)
			step := 0
			if g.At(v) == maze.Hazard {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[vi] {
				dist[vi] = nd
				if step == 0 {
					dq.PushFront(vi)
				} else {
					dq.PushBack(vi)
				}
			}
		}
	}

	return 0, ErrNoPath
}
