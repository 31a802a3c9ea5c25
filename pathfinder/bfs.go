package pathfinder

import "github.com/katalvlaran/lvmaze/maze"

// ShortestPathBFS returns a path from Start to End with the fewest moves,
// ignoring terrain cost. Among equal-length paths the one discovered
// first under maze.Directions wins.
// Returns ErrNoPath if End is unreachable.
//
// Complexity: O(R·C) time and memory.
func (pf *Pathfinder) ShortestPathBFS() (Path, error) {
	p, expanded, err := pf.bfs(pf.start, pf.end)
	return pf.finish(AlgoBFS, p, expanded, err)
}

// bfs runs level-order search from from and stops when to is dequeued.
// Cells are marked on enqueue so each is queued at most once.
func (pf *Pathfinder) bfs(from, to maze.Coord) (Path, int, error) {
	g := pf.grid
	n := g.Size()
	prev := make([]int, n)
	seen := make([]bool, n)
	for i := range prev {
		prev[i] = -1
	}

	src, dst := g.Index(from), g.Index(to)
	queue := make([]int, 0, n)
	queue = append(queue, src)
	seen[src] = true

	for qi := 0; qi < len(queue); qi++ {
		// 1) Dequeue; the target ends the search at its first dequeue.
		u := queue[qi]
		if u == dst {
			p, err := tracePath(prev, src, dst, g.Coord)
			return p, qi + 1, err
		}
		// 2) Enqueue unseen legal neighbors in direction order, marking
		//    them seen now so each cell is queued once.
		cu := g.Coord(u)
		for _, d := range maze.Directions {
			v := cu.Add(d)
			if !pf.isLegal(v) {
				continue
			}
			vi := g.Index(v)
			if seen[vi] {
				continue
			}
			seen[vi] = true
			prev[vi] = u
			queue = append(queue, vi)
		}
	}

	return nil, len(queue), ErrNoPath
}
