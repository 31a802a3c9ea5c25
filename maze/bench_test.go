package maze_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/maze"
)

// openGrid builds an n×n grid of Open cells with Start and End in opposite corners.
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

// BenchmarkRegions_Open measures region labelling on a 256×256 open grid.
func BenchmarkRegions_Open(b *testing.B) {
	g := openGrid(256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Regions()
	}
}

// BenchmarkReachable_Open measures a corner-to-corner flood fill.
func BenchmarkReachable_Open(b *testing.B) {
	g := openGrid(256)
	from, to := maze.Coord{}, maze.Coord{Row: 255, Col: 255}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Reachable(from, to)
	}
}
