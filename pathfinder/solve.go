package pathfinder

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Outcome is the result of one strategy inside a Report.
type Outcome struct {
	Algorithm Algorithm
	// Path is the returned path; for AlgoDFS the cheapest enumerated one
	// (first found on ties).
	Path Path
	// Cost is PathCost for bfs, dfs and dijkstra, and BudgetedCost with
	// the query budget for hazard.
	Cost int
	// Paths counts enumerated paths (AlgoDFS only).
	Paths int
	// Err is ErrNoPath or another query error; nil on success.
	Err error
}

// Found reports whether the strategy produced a path.
func (o Outcome) Found() bool { return o.Err == nil }

// Report gathers every strategy's outcome for one grid.
type Report struct {
	Outcomes []Outcome
	// MinHazardCrossings is -1 when walls separate Start from End.
	MinHazardCrossings int
}

// Outcome returns the entry for algo, if present.
func (r *Report) Outcome(algo Algorithm) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Algorithm == algo {
			return o, true
		}
	}
	return Outcome{}, false
}

// Run executes a single strategy and wraps its result as an Outcome.
// ctx, when non-nil, overrides any WithContext option.
// Option errors are reported in Outcome.Err.
func (pf *Pathfinder) Run(ctx context.Context, algo Algorithm, opts ...QueryOption) Outcome {
	out := Outcome{Algorithm: algo}
	qo, err := buildQueryOptions(opts)
	if err != nil {
		out.Err = err
		return out
	}
	if ctx != nil {
		qo.Ctx = ctx
	}

	switch algo {
	case AlgoBFS:
		out.Path, out.Err = pf.ShortestPathBFS()
	case AlgoDijkstra:
		out.Path, out.Err = pf.ShortestPathDijkstra()
	case AlgoHazard:
		out.Path, out.Err = pf.ShortestPathWithHazardBudget(qo.Budget)
	case AlgoDFS:
		var paths []Path
		paths, out.Err = pf.AllPathsDFS(WithContext(qo.Ctx), WithMaxPaths(qo.MaxPaths))
		out.Paths = len(paths)
		out.Path, out.Cost = pf.cheapest(paths)
		return out
	default:
		out.Err = fmt.Errorf("%w: unknown algorithm %q", ErrOptionViolation, algo)
		return out
	}

	if out.Err == nil {
		budget := 0
		if algo == AlgoHazard {
			budget = qo.Budget
		}
		out.Cost, out.Err = pf.BudgetedCost(out.Path, budget)
	}
	return out
}

func (pf *Pathfinder) cheapest(paths []Path) (Path, int) {
	var best Path
	bestCost := 0
	for _, p := range paths {
		c, err := pf.PathCost(p)
		if err != nil {
			continue
		}
		if best == nil || c < bestCost {
			best, bestCost = p, c
		}
	}
	return best, bestCost
}

// Solve runs BFS, Dijkstra, the hazard strategy and MinHazardCrossings
// concurrently, one goroutine each, and collects the results. Exhaustive
// enumeration joins only when WithMaxPaths bounds it.
//
// ErrNoPath is recorded per Outcome and never aborts the others. Solve
// itself fails only on invalid options or when ctx ends.
func (pf *Pathfinder) Solve(ctx context.Context, opts ...QueryOption) (*Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	qo, err := buildQueryOptions(opts)
	if err != nil {
		return nil, err
	}

	algos := []Algorithm{AlgoBFS, AlgoDijkstra, AlgoHazard}
	if qo.MaxPaths > 0 {
		algos = []Algorithm{AlgoBFS, AlgoDFS, AlgoDijkstra, AlgoHazard}
	}

	rep := &Report{Outcomes: make([]Outcome, len(algos))}
	eg, egCtx := errgroup.WithContext(ctx)
	for i, algo := range algos {
		i, algo := i, algo
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			out := pf.Run(egCtx, algo, opts...)
			if errors.Is(out.Err, context.Canceled) || errors.Is(out.Err, context.DeadlineExceeded) {
				return out.Err
			}
			rep.Outcomes[i] = out
			return nil
		})
	}
	eg.Go(func() error {
		n, err := pf.MinHazardCrossings()
		if err != nil {
			n = -1
		}
		rep.MinHazardCrossings = n
		return egCtx.Err()
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// The queries are synchronous and ignore cancellation; report it anyway.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pf.log.Debug("solve finished", zap.Int("strategies", len(algos)), zap.Int("min_hazards", rep.MinHazardCrossings))
	return rep, nil
}
