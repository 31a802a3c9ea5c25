package pathfinder_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/pathfinder"
)

func shortcut(t *testing.T) *pathfinder.Pathfinder {
	return finder(t,
		"S^E",
		".#.",
		"...",
	)
}

func TestSolve_Shortcut(t *testing.T) {
	rep, err := shortcut(t).Solve(context.Background(), pathfinder.WithMaxPaths(10))
	require.NoError(t, err)
	require.Len(t, rep.Outcomes, 4)
	assert.Equal(t, 0, rep.MinHazardCrossings)

	around := path(0, 0, 1, 0, 2, 0, 2, 1, 2, 2, 1, 2, 0, 2)
	direct := path(0, 0, 0, 1, 0, 2)

	cases := []struct {
		algo  pathfinder.Algorithm
		path  pathfinder.Path
		cost  int
		paths int
	}{
		{pathfinder.AlgoBFS, direct, 1001, 0},
		{pathfinder.AlgoDFS, around, 6, 2},
		{pathfinder.AlgoDijkstra, around, 6, 0},
		{pathfinder.AlgoHazard, direct, 1, 0},
	}
	for i, tc := range cases {
		out := rep.Outcomes[i]
		assert.Equal(t, tc.algo, out.Algorithm)
		require.True(t, out.Found(), "%s: %v", tc.algo, out.Err)
		assert.Equal(t, tc.path, out.Path, tc.algo)
		assert.Equal(t, tc.cost, out.Cost, tc.algo)
		assert.Equal(t, tc.paths, out.Paths, tc.algo)
	}
}

func TestSolve_SkipsEnumerationWithoutCap(t *testing.T) {
	rep, err := shortcut(t).Solve(context.Background())
	require.NoError(t, err)
	require.Len(t, rep.Outcomes, 3)

	_, ok := rep.Outcome(pathfinder.AlgoDFS)
	assert.False(t, ok)
	out, ok := rep.Outcome(pathfinder.AlgoDijkstra)
	require.True(t, ok)
	assert.Equal(t, 6, out.Cost)
}

func TestSolve_NoPath(t *testing.T) {
	pf := finder(t,
		"S#",
		"#E",
	)
	rep, err := pf.Solve(context.Background(), pathfinder.WithMaxPaths(1))
	require.NoError(t, err)
	assert.Equal(t, -1, rep.MinHazardCrossings)
	for _, out := range rep.Outcomes {
		assert.False(t, out.Found(), out.Algorithm)
		assert.ErrorIs(t, out.Err, pathfinder.ErrNoPath, out.Algorithm)
		assert.Nil(t, out.Path)
	}
}

func TestSolve_Budget(t *testing.T) {
	rep, err := finder(t, "S^^E").Solve(context.Background(), pathfinder.WithBudget(2))
	require.NoError(t, err)
	out, ok := rep.Outcome(pathfinder.AlgoHazard)
	require.True(t, ok)
	require.NoError(t, out.Err)
	assert.Equal(t, 1, out.Cost)
	assert.Equal(t, 2, rep.MinHazardCrossings)
}

func TestSolve_BadOptions(t *testing.T) {
	pf := shortcut(t)
	_, err := pf.Solve(context.Background(), pathfinder.WithMaxPaths(-3))
	assert.ErrorIs(t, err, pathfinder.ErrOptionViolation)

	_, err = pf.Solve(context.Background(), pathfinder.WithBudget(-1))
	assert.ErrorIs(t, err, pathfinder.ErrBadBudget)
}

func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := shortcut(t).Solve(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, rep)
}

func TestRun(t *testing.T) {
	pf := shortcut(t)

	out := pf.Run(context.Background(), pathfinder.AlgoHazard, pathfinder.WithBudget(0))
	require.NoError(t, out.Err)
	assert.Equal(t, 6, out.Cost)

	out = pf.Run(context.Background(), pathfinder.Algorithm("astar"))
	assert.ErrorIs(t, out.Err, pathfinder.ErrOptionViolation)

	out = pf.Run(context.Background(), pathfinder.AlgoDFS, pathfinder.WithMaxPaths(1))
	require.NoError(t, out.Err)
	assert.Equal(t, 1, out.Paths)
}

// TestConcurrentQueries shares one Pathfinder across goroutines.
func TestConcurrentQueries(t *testing.T) {
	pf := finder(t,
		"S.~..",
		".#^#.",
		"..^.E",
	)
	wantBFS, err := pf.ShortestPathBFS()
	require.NoError(t, err)
	wantDij, err := pf.ShortestPathDijkstra()
	require.NoError(t, err)
	wantHaz, err := pf.ShortestPathWithOneHazard()
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 24)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, q := range []struct {
				want pathfinder.Path
				run  func() (pathfinder.Path, error)
			}{
				{wantBFS, pf.ShortestPathBFS},
				{wantDij, pf.ShortestPathDijkstra},
				{wantHaz, pf.ShortestPathWithOneHazard},
			} {
				got, err := q.run()
				if err == nil && !got.Equal(q.want) {
					err = assert.AnError
				}
				if err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
