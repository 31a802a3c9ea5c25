package pathfinder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/pathfinder"
)

// glyphs maps the fixture alphabet used throughout these tests.
var glyphs = map[rune]maze.Terrain{
	'#': maze.Wall,
	'S': maze.Start,
	'E': maze.End,
	'.': maze.Open,
	'~': maze.Slow,
	'^': maze.Hazard,
}

// grid builds a maze.Grid from glyph rows.
func grid(t testing.TB, rows ...string) *maze.Grid {
	t.Helper()
	cells := make([][]maze.Terrain, len(rows))
	for r, row := range rows {
		for _, ch := range row {
			tr, ok := glyphs[ch]
			require.True(t, ok, "unknown glyph %q", ch)
			cells[r] = append(cells[r], tr)
		}
	}
	g, err := maze.NewGrid(cells)
	require.NoError(t, err)
	return g
}

// finder builds a Pathfinder from glyph rows.
func finder(t testing.TB, rows ...string) *pathfinder.Pathfinder {
	t.Helper()
	pf, err := pathfinder.New(grid(t, rows...))
	require.NoError(t, err)
	return pf
}

// path is shorthand for a literal path of (row, col) pairs.
func path(rc ...int) pathfinder.Path {
	p := make(pathfinder.Path, 0, len(rc)/2)
	for i := 0; i+1 < len(rc); i += 2 {
		p = append(p, maze.Coord{Row: rc[i], Col: rc[i+1]})
	}
	return p
}

// randomGrid fills a rows×cols grid with weighted random terrain and
// places one Start and one End on distinct cells.
func randomGrid(rng *rand.Rand, rows, cols int) *maze.Grid {
	cells := make([][]maze.Terrain, rows)
	for r := range cells {
		cells[r] = make([]maze.Terrain, cols)
		for c := range cells[r] {
			switch x := rng.Intn(100); {
			case x < 50:
				cells[r][c] = maze.Open
			case x < 72:
				cells[r][c] = maze.Wall
			case x < 87:
				cells[r][c] = maze.Slow
			default:
				cells[r][c] = maze.Hazard
			}
		}
	}
	n := rows * cols
	s := rng.Intn(n)
	e := rng.Intn(n - 1)
	if e >= s {
		e++
	}
	cells[s/cols][s%cols] = maze.Start
	cells[e/cols][e%cols] = maze.End
	return maze.MustGrid(cells)
}

// openGrid returns an n×n grid of Open cells with Start top-left and End
// bottom-right.
func openGrid(n int) *maze.Grid {
	cells := make([][]maze.Terrain, n)
	for r := range cells {
		cells[r] = make([]maze.Terrain, n)
		for c := range cells[r] {
			cells[r][c] = maze.Open
		}
	}
	cells[0][0] = maze.Start
	cells[n-1][n-1] = maze.End
	return maze.MustGrid(cells)
}

// recursivePaths is a plain recursive backtracking enumerator used as the
// reference for AllPathsDFS ordering.
func recursivePaths(g *maze.Grid, from, to maze.Coord) []pathfinder.Path {
	var out []pathfinder.Path
	visited := map[maze.Coord]bool{from: true}
	cur := pathfinder.Path{from}
	var rec func(c maze.Coord)
	rec = func(c maze.Coord) {
		if c == to {
			out = append(out, append(pathfinder.Path(nil), cur...))
			return
		}
		for _, d := range maze.Directions {
			n := c.Add(d)
			if !g.Passable(n) || visited[n] {
				continue
			}
			visited[n] = true
			cur = append(cur, n)
			rec(n)
			cur = cur[:len(cur)-1]
			visited[n] = false
		}
	}
	rec(from)
	return out
}
