package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvmaze/maze"
)

// TestRegions_Count verifies region labelling on a grid split by a wall column.
func TestRegions_Count(t *testing.T) {
	g := maze.MustGrid([][]maze.Terrain{
		{S, O, W, O},
		{O, G, W, H},
		{W, W, W, E},
	})
	labels, n := g.Regions()
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, labels[g.Index(maze.Coord{0, 0})])
	assert.Equal(t, 0, labels[g.Index(maze.Coord{1, 1})])
	assert.Equal(t, 1, labels[g.Index(maze.Coord{0, 3})])
	assert.Equal(t, 1, labels[g.Index(maze.Coord{2, 3})])
	assert.Equal(t, -1, labels[g.Index(maze.Coord{0, 2})])
}

func TestRegions_AllWalls(t *testing.T) {
	g := maze.MustGrid([][]maze.Terrain{{W, W}, {W, W}})
	labels, n := g.Regions()
	assert.Zero(t, n)
	for _, l := range labels {
		assert.Equal(t, -1, l)
	}
}

func TestReachable(t *testing.T) {
	g := maze.MustGrid([][]maze.Terrain{
		{S, H, W},
		{W, O, W},
		{W, W, E},
	})
	assert.True(t, g.Reachable(maze.Coord{0, 0}, maze.Coord{1, 1}), "hazard cells are passable")
	assert.False(t, g.Reachable(maze.Coord{0, 0}, maze.Coord{2, 2}))
	assert.True(t, g.Reachable(maze.Coord{0, 0}, maze.Coord{0, 0}))
	assert.False(t, g.Reachable(maze.Coord{0, 0}, maze.Coord{0, 2}), "wall target")
	assert.False(t, g.Reachable(maze.Coord{-1, 0}, maze.Coord{0, 0}), "out of bounds source")
}
