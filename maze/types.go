package maze

import (
	"fmt"
	"strings"
)

// Terrain is the category of a single grid cell.
type Terrain uint8

const (
	// Wall cells can never be entered.
	Wall Terrain = iota
	// Start marks the unique origin of every query.
	Start
	// End marks the unique goal of every query.
	End
	// Open is ordinary ground.
	Open
	// Slow is passable but expensive ground (grass, mud).
	Slow
	// Hazard is passable at a prohibitive cost (lava).
	Hazard
)

var terrainNames = [...]string{
	Wall:   "wall",
	Start:  "start",
	End:    "end",
	Open:   "open",
	Slow:   "slow",
	Hazard: "hazard",
}

// Valid reports whether t belongs to the terrain set.
func (t Terrain) Valid() bool { return int(t) < len(terrainNames) }

// String returns the lower-case terrain name.
func (t Terrain) String() string {
	if !t.Valid() {
		return fmt.Sprintf("terrain(%d)", uint8(t))
	}
	return terrainNames[t]
}

// ParseTerrain maps a terrain name (case-insensitive) back to its Terrain.
func ParseTerrain(s string) (Terrain, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range terrainNames {
		if n == name {
			return Terrain(i), nil
		}
	}
	return Wall, fmt.Errorf("%w: %q", ErrUnknownTerrain, s)
}

// Coord identifies a cell by row and column.
// The zero value is the top-left cell.
type Coord struct {
	Row, Col int
}

// Offset is a (dRow, dCol) displacement between neighboring cells.
type Offset struct {
	DRow, DCol int
}

// Directions is the fixed neighbor order used by every expansion step:
// up, down, left, right. The order decides which of several equal paths
// a search discovers first.
var Directions = [4]Offset{
	{DRow: -1, DCol: 0},
	{DRow: 1, DCol: 0},
	{DRow: 0, DCol: -1},
	{DRow: 0, DCol: 1},
}

// Add returns c displaced by o.
func (c Coord) Add(o Offset) Coord {
	return Coord{Row: c.Row + o.DRow, Col: c.Col + o.DCol}
}

// Less reports whether c precedes o in row-major order.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Adjacent reports whether c and o differ by exactly one orthogonal step.
func (c Coord) Adjacent(o Coord) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// String renders c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is an immutable rectangular terrain grid.
// Cells are stored row-major; cells[Index(c)] holds the terrain at c.
type Grid struct {
	rows, cols int
	cells      []Terrain
}
