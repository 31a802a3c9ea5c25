package mazefile

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/maze"
)

// Legend maps layout glyphs to terrain.
type Legend map[rune]maze.Terrain

// DefaultLegend returns the glyph set used when no legend is given:
//
//	#  wall     .  open
//	S  start    ~  slow
//	E  end      ^  hazard
func DefaultLegend() Legend {
	return Legend{
		'#': maze.Wall,
		'S': maze.Start,
		'E': maze.End,
		'.': maze.Open,
		'~': maze.Slow,
		'^': maze.Hazard,
	}
}

// Glyph returns the rune drawn for t. When several glyphs share a
// terrain the smallest rune wins, so the choice is stable.
func (l Legend) Glyph(t maze.Terrain) (rune, bool) {
	var best rune
	found := false
	for g, tt := range l {
		if tt == t && (!found || g < best) {
			best, found = g, true
		}
	}
	return best, found
}

// ParseLayout builds a grid from one string per row. A nil legend means
// DefaultLegend. A trailing carriage return on a row is ignored.
//
// Errors: ErrUnknownGlyph, plus the shape errors of maze.NewGrid.
func ParseLayout(rows []string, legend Legend) (*maze.Grid, error) {
	if legend == nil {
		legend = DefaultLegend()
	}
	cells := make([][]maze.Terrain, len(rows))
	for r, row := range rows {
		row = strings.TrimSuffix(row, "\r")
		cells[r] = make([]maze.Terrain, 0, len(row))
		c := 0
		for _, ch := range row {
			t, ok := legend[ch]
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, ch, r, c)
			}
			cells[r] = append(cells[r], t)
			c++
		}
	}

	return maze.NewGrid(cells)
}

// FormatLayout renders g as rows of glyphs; the inverse of ParseLayout.
// A nil legend means DefaultLegend.
func FormatLayout(g *maze.Grid, legend Legend) ([]string, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if legend == nil {
		legend = DefaultLegend()
	}
	out := make([]string, g.Rows())
	var sb strings.Builder
	for r := range out {
		sb.Reset()
		for c := 0; c < g.Cols(); c++ {
			t := g.At(maze.Coord{Row: r, Col: c})
			ch, ok := legend.Glyph(t)
			if !ok {
				return nil, fmt.Errorf("%w: legend has no glyph for %v", ErrUnknownGlyph, t)
			}
			sb.WriteRune(ch)
		}
		out[r] = sb.String()
	}
	return out, nil
}
