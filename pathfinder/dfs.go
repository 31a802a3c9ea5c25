package pathfinder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/maze"
)

// ctxCheckInterval is how many frame steps pass between context checks.
const ctxCheckInterval = 1024

// frame is one level of the explicit DFS stack: the cell on the current
// path and the index of the next direction to try from it.
type frame struct {
	cell maze.Coord
	next int
}

// AllPathsDFS enumerates every simple path (no repeated cell) from Start
// to End. Paths are returned in the order End was reached, trying
// neighbors in maze.Directions order at every step.
//
// The visited set is scoped to the current path: a cell is marked when it
// joins the path and unmarked on backtrack, so every distinct simple path
// is found. The number of simple paths grows exponentially with open area;
// bound large grids with WithMaxPaths or WithContext.
//
// Returns ErrNoPath when no path exists, ErrOptionViolation for bad
// options, or the wrapped context error if the context ends first.
func (pf *Pathfinder) AllPathsDFS(opts ...QueryOption) ([]Path, error) {
	qo, err := buildQueryOptions(opts)
	if err != nil {
		return nil, err
	}
	paths, steps, err := pf.enumerate(pf.start, pf.end, qo)
	if err != nil {
		_, err = pf.finish(AlgoDFS, nil, steps, err)
		return nil, err
	}
	pf.log.Debug("enumeration finished",
		zap.Int("steps", steps),
		zap.Int("paths", len(paths)),
		zap.Bool("capped", qo.MaxPaths > 0 && len(paths) == qo.MaxPaths))
	return paths, nil
}

// enumerate walks the path tree with an explicit stack. It visits cells
// in exactly the order a recursive backtracking search would.
func (pf *Pathfinder) enumerate(from, to maze.Coord, qo QueryOptions) ([]Path, int, error) {
	g := pf.grid
	// A disconnected goal fails here, before any enumeration.
	if !g.Reachable(from, to) {
		return nil, 0, ErrNoPath
	}

	onPath := make([]bool, g.Size())
	stack := make([]frame, 1, 64)
	stack[0] = frame{cell: from}
	onPath[g.Index(from)] = true

	var paths []Path
	steps := 0
	for len(stack) > 0 {
		// 1) Poll the context every ctxCheckInterval steps.
		steps++
		if steps%ctxCheckInterval == 0 {
			if err := qo.Ctx.Err(); err != nil {
				return nil, steps, fmt.Errorf("pathfinder: enumeration aborted after %d paths: %w", len(paths), err)
			}
		}

		// 2) Reaching the goal copies the stack out as a path, then
		//    backtracks. The goal is never expanded further.
		top := &stack[len(stack)-1]
		if top.cell == to {
			p := make(Path, len(stack))
			for i := range stack {
				p[i] = stack[i].cell
			}
			paths = append(paths, p)
			if qo.MaxPaths > 0 && len(paths) >= qo.MaxPaths {
				break
			}
			onPath[g.Index(top.cell)] = false
			stack = stack[:len(stack)-1]
			continue
		}

		// 3) All four directions tried: unmark and pop.
		if top.next == len(maze.Directions) {
			onPath[g.Index(top.cell)] = false
			stack = stack[:len(stack)-1]
			continue
		}

		// 4) Try the next direction; descend into legal cells not already
		//    on the current path.
		next := top.cell.Add(maze.Directions[top.next])
		top.next++
		if !pf.isLegal(next) || onPath[g.Index(next)] {
			continue
		}
		onPath[g.Index(next)] = true
		stack = append(stack, frame{cell: next})
	}

	if len(paths) == 0 {
		return nil, steps, ErrNoPath
	}
	return paths, steps, nil
}
