package pathfinder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/maze"
)

// Pathfinder answers path queries over a borrowed, read-only grid.
// It holds no mutable state after New returns, so a single Pathfinder
// may serve concurrent queries.
type Pathfinder struct {
	grid       *maze.Grid
	start, end maze.Coord
	log        *zap.Logger
}

// New scans g once to locate its Start and End cells.
//
// Errors:
//   - ErrNilGrid if g is nil.
//   - ErrMissingEndpoint if Start or End is absent.
//   - ErrDuplicateEndpoint if either appears more than once, unless
//     WithLastEndpointWins is given.
func New(g *maze.Grid, opts ...Option) (*Pathfinder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var start, end maze.Coord
	starts, ends := 0, 0
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			at := maze.Coord{Row: r, Col: c}
			switch g.At(at) {
			case maze.Start:
				start = at
				starts++
			case maze.End:
				end = at
				ends++
			}
		}
	}

	if starts == 0 || ends == 0 {
		return nil, fmt.Errorf("%w: found %d start and %d end cells", ErrMissingEndpoint, starts, ends)
	}
	if !cfg.lastWins && (starts > 1 || ends > 1) {
		return nil, fmt.Errorf("%w: found %d start and %d end cells", ErrDuplicateEndpoint, starts, ends)
	}

	pf := &Pathfinder{grid: g, start: start, end: end, log: cfg.logger}
	pf.log.Debug("pathfinder ready",
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()),
		zap.Stringer("start", start),
		zap.Stringer("end", end))

	return pf, nil
}

// Grid returns the grid the pathfinder was built on.
func (pf *Pathfinder) Grid() *maze.Grid { return pf.grid }

// Start returns the Start cell.
func (pf *Pathfinder) Start() maze.Coord { return pf.start }

// End returns the End cell.
func (pf *Pathfinder) End() maze.Coord { return pf.end }

// isLegal reports whether c may be entered: in bounds and not a Wall.
func (pf *Pathfinder) isLegal(c maze.Coord) bool {
	return pf.grid.Passable(c)
}

// Validate checks that p starts at Start, ends at End and that every
// step moves to a 4-adjacent legal cell.
func (pf *Pathfinder) Validate(p Path) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if p[0] != pf.start {
		return fmt.Errorf("%w: begins at %v, start is %v", ErrInvalidPath, p[0], pf.start)
	}
	if p[len(p)-1] != pf.end {
		return fmt.Errorf("%w: ends at %v, end is %v", ErrInvalidPath, p[len(p)-1], pf.end)
	}
	return pf.checkSteps(p)
}

func (pf *Pathfinder) checkSteps(p Path) error {
	for i, c := range p {
		if !pf.isLegal(c) {
			return fmt.Errorf("%w: step %d at %v is not legal", ErrInvalidPath, i, c)
		}
		if i > 0 && !p[i-1].Adjacent(c) {
			return fmt.Errorf("%w: %v and %v are not adjacent", ErrInvalidPath, p[i-1], c)
		}
	}
	return nil
}

// PathCost sums the destination costs of every move in p.
// The first cell is not charged.
func (pf *Pathfinder) PathCost(p Path) (int, error) {
	return pf.BudgetedCost(p, 0)
}

// BudgetedCost is PathCost with the first k Hazard entries charged 0.
// Hazards beyond the budget are charged CostHazard.
func (pf *Pathfinder) BudgetedCost(p Path, k int) (int, error) {
	if k < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrBadBudget, k)
	}
	if err := pf.Validate(p); err != nil {
		return 0, err
	}
	total := 0
	for _, c := range p[1:] {
		t := pf.grid.At(c)
		if t == maze.Hazard && k > 0 {
			k--
			continue
		}
		cost, _ := StepCost(t)
		total += cost
	}
	return total, nil
}

// HazardCount returns how many cells of p after the first are Hazard.
func (pf *Pathfinder) HazardCount(p Path) int {
	n := 0
	for i, c := range p {
		if i > 0 && pf.grid.InBounds(c) && pf.grid.At(c) == maze.Hazard {
			n++
		}
	}
	return n
}

// tracePath follows prev links from node to back to node from, then
// reverses the walk so it reads from→to. prev holds -1 for nodes with
// no predecessor.
func tracePath(prev []int, from, to int, coordOf func(int) maze.Coord) (Path, error) {
	var path Path
	for cur := to; ; {
		path = append(path, coordOf(cur))
		if cur == from {
			break
		}
		cur = prev[cur]
		if cur < 0 {
			return nil, ErrNoPath
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// finish logs the outcome of a query and passes it through.
func (pf *Pathfinder) finish(algo Algorithm, p Path, expanded int, err error) (Path, error) {
	if err != nil {
		pf.log.Debug("search finished without path",
			zap.String("algo", string(algo)),
			zap.Int("expanded", expanded),
			zap.Error(err))
		return nil, err
	}
	pf.log.Debug("search finished",
		zap.String("algo", string(algo)),
		zap.Int("expanded", expanded),
		zap.Int("len", p.Len()))
	return p, nil
}
