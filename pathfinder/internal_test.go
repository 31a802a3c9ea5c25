package pathfinder

import (
	"container/heap"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/maze"
)

func newInternal(t *testing.T) *Pathfinder {
	t.Helper()
	g := maze.MustGrid([][]maze.Terrain{
		{maze.Start, maze.Open, maze.Hazard},
		{maze.Open, maze.Slow, maze.End},
	})
	return &Pathfinder{grid: g, start: maze.Coord{}, end: maze.Coord{Row: 1, Col: 2}, log: zap.NewNop()}
}

// TestSameCell covers the degenerate query where source and target
// coincide; every strategy yields the one-cell path.
func TestSameCell(t *testing.T) {
	pf := newInternal(t)
	at := maze.Coord{Row: 0, Col: 1}
	want := Path{at}

	p, _, err := pf.bfs(at, at)
	require.NoError(t, err)
	assert.Equal(t, want, p)

	for layers := 1; layers <= 3; layers++ {
		step := plainStep
		if layers > 1 {
			step = budgetStep(layers - 1)
		}
		p, err = newRunner(pf, layers, step).run(at, at)
		require.NoError(t, err)
		assert.Equal(t, want, p, "layers %d", layers)
	}

	paths, _, err := pf.enumerate(at, at, DefaultQueryOptions())
	require.NoError(t, err)
	assert.Equal(t, []Path{want}, paths)
}

func TestStateQueue_Order(t *testing.T) {
	var pq stateQueue
	items := []stateItem{
		{state: 1, cost: 5, used: 0, seq: 1},
		{state: 2, cost: 3, used: 1, seq: 2},
		{state: 3, cost: 3, used: 0, seq: 3},
		{state: 4, cost: 3, used: 0, seq: 4},
		{state: 5, cost: 0, used: 1, seq: 5},
	}
	for _, it := range items {
		heap.Push(&pq, it)
	}
	var order []int
	for pq.Len() > 0 {
		order = append(order, heap.Pop(&pq).(stateItem).state)
	}
	assert.Equal(t, []int{5, 3, 4, 2, 1}, order)
}

func TestTracePath(t *testing.T) {
	pf := newInternal(t)
	g := pf.grid
	// 0 -> 1 -> 4 -> 5 in row-major indices.
	prev := []int{-1, 0, -1, -1, 1, 4}
	p, err := tracePath(prev, 0, 5, g.Coord)
	require.NoError(t, err)
	assert.Equal(t, Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}, p)

	// A chain that never reaches the origin is not a path.
	prev[1] = -1
	_, err = tracePath(prev, 0, 5, g.Coord)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestBudgetStep(t *testing.T) {
	step := budgetStep(1)

	used, cost, ok := step(0, maze.Hazard)
	assert.True(t, ok)
	assert.Equal(t, 1, used)
	assert.Zero(t, cost)

	_, _, ok = step(1, maze.Hazard)
	assert.False(t, ok)

	used, cost, ok = step(1, maze.Slow)
	assert.True(t, ok)
	assert.Equal(t, 1, used)
	assert.Equal(t, CostSlow, cost)

	_, _, ok = step(0, maze.Wall)
	assert.False(t, ok)
}

// TestEnumerate_PartialOnCancel reports how many paths were found before
// the context ended.
func TestEnumerate_PartialOnCancel(t *testing.T) {
	cells := make([][]maze.Terrain, 5)
	for r := range cells {
		cells[r] = make([]maze.Terrain, 5)
		for c := range cells[r] {
			cells[r][c] = maze.Open
		}
	}
	cells[0][0], cells[4][4] = maze.Start, maze.End
	pf, err := New(maze.MustGrid(cells))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	qo := DefaultQueryOptions()
	qo.Ctx = ctx

	_, steps, err := pf.enumerate(pf.start, pf.end, qo)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ctxCheckInterval, steps)
	assert.Contains(t, err.Error(), "enumeration aborted")
}
