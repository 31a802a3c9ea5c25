package pathfinder

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

// ShortestPathWithOneHazard returns a minimum-cost path that may cross at
// most one Hazard cell, with that crossing charged 0 instead of
// CostHazard. A path that avoids hazards entirely competes on equal terms
// and wins whenever it is cheaper.
//
// The admissible cost from a cell depends on whether the allowance is
// already spent, so the search runs over two nodes per cell:
// (cell, unused) and (cell, used). Whichever End node is popped first is
// accepted; the path is rebuilt back to (Start, unused).
// Returns ErrNoPath if neither End node is reachable.
func (pf *Pathfinder) ShortestPathWithOneHazard() (Path, error) {
	return pf.ShortestPathWithHazardBudget(1)
}

// ShortestPathWithHazardBudget generalises ShortestPathWithOneHazard to at
// most k free Hazard crossings. k = 0 never enters a Hazard cell.
// Returns ErrBadBudget for k < 0 and ErrNoPath if End is unreachable
// within the budget.
//
// Complexity: O(N·(k+1) log(N·(k+1))) time, O(N·(k+1)) memory, N = R·C.
func (pf *Pathfinder) ShortestPathWithHazardBudget(k int) (Path, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadBudget, k)
	}
	r := newRunner(pf, k+1, budgetStep(k))
	p, err := r.run(pf.start, pf.end)
	return pf.finish(AlgoHazard, p, r.expanded, err)
}

// budgetStep returns the transition rule for a hazard budget of k:
//
//	Hazard with budget left:  used+1, cost 0
//	Hazard with budget spent: illegal
//	anything else:            used unchanged, table cost
//
// Walls are rejected by StepCost.
func budgetStep(k int) stepFunc {
	return func(used int, t maze.Terrain) (int, int, bool) {
		if t == maze.Hazard {
			if used >= k {
				return used, 0, false
			}
			return used + 1, 0, true
		}
		cost, ok := StepCost(t)
		return used, cost, ok
	}
}
