package maze

import "fmt"

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to cells do not leak in.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrUnknownTerrain
// for values outside the terrain set.
// Algorithmic complexity: O(R×C) time and memory.
func NewGrid(cells [][]Terrain) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	flat := make([]Terrain, 0, rows*cols)
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, t := range row {
			if !t.Valid() {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownTerrain, uint8(t), r, c)
			}
		}
		flat = append(flat, row...)
	}

	return &Grid{rows: rows, cols: cols, cells: flat}, nil
}

// MustGrid is like NewGrid but panics on error. Intended for fixtures.
func MustGrid(cells [][]Terrain) *Grid {
	g, err := NewGrid(cells)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the total number of cells.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the terrain at c. The caller must ensure InBounds(c).
func (g *Grid) At(c Coord) Terrain {
	return g.cells[g.Index(c)]
}

// Lookup returns the terrain at c, or ErrOutOfBounds.
func (g *Grid) Lookup(c Coord) (Terrain, error) {
	if !g.InBounds(c) {
		return Wall, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return g.At(c), nil
}

// Passable reports whether c is inside the grid and not a Wall.
// The bounds check always runs before the cell lookup.
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && g.At(c) != Wall
}

// Index maps c to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coord converts a row-major index back to a coordinate.
// Complexity: O(1).
func (g *Grid) Coord(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Find returns the coordinates of every cell holding t, in row-major order.
func (g *Grid) Find(t Terrain) []Coord {
	var out []Coord
	for i, v := range g.cells {
		if v == t {
			out = append(out, g.Coord(i))
		}
	}
	return out
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Terrain) int {
	n := 0
	for _, v := range g.cells {
		if v == t {
			n++
		}
	}
	return n
}

// Cells returns a fresh 2D copy of the grid contents.
func (g *Grid) Cells() [][]Terrain {
	out := make([][]Terrain, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]Terrain, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}
