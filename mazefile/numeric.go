package mazefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvmaze/maze"
)

// MaxCells bounds rows×cols in a numeric header. Larger headers are
// rejected with ErrBadHeader before any cell is read.
const MaxCells = 1 << 24

// codes maps numeric cell codes to terrain.
var codes = map[int]maze.Terrain{
	1:  maze.Wall,
	-1: maze.Start,
	0:  maze.Open,
	-2: maze.End,
	2:  maze.Slow,
	3:  maze.Hazard,
}

// Code returns the numeric code written for t.
func Code(t maze.Terrain) (int, bool) {
	for code, tt := range codes {
		if tt == t {
			return code, true
		}
	}
	return 0, false
}

// ReadNumeric decodes a grid in numeric form from r.
//
// Errors: ErrBadHeader (including headers above MaxCells), ErrTruncated,
// ErrUnknownCode, any read error from r, and the shape errors of
// maze.NewGrid.
func ReadNumeric(r io.Reader) (*maze.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var dims [2]int
	for i := range dims {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("mazefile: reading header: %w", err)
			}
			return nil, fmt.Errorf("%w: expected \"rows cols\"", ErrBadHeader)
		}
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrBadHeader, sc.Text())
		}
		dims[i] = n
	}
	rows, cols := dims[0], dims[1]
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", ErrBadHeader, rows, cols)
	}
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrBadHeader, rows, cols, MaxCells)
	}

	// Rows are built as codes arrive; nothing is sized from the header.
	var cells [][]maze.Terrain
	for r := 0; r < rows; r++ {
		var row []maze.Terrain
		for c := 0; c < cols; c++ {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, fmt.Errorf("mazefile: reading cell (%d,%d): %w", r, c, err)
				}
				return nil, fmt.Errorf("%w: input ends at (%d,%d)", ErrTruncated, r, c)
			}
			code, err := strconv.Atoi(sc.Text())
			if err != nil {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCode, sc.Text(), r, c)
			}
			t, ok := codes[code]
			if !ok {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownCode, code, r, c)
			}
			row = append(row, t)
		}
		cells = append(cells, row)
	}

	return maze.NewGrid(cells)
}

// WriteNumeric encodes g in numeric form, one grid row per line.
// ReadNumeric(WriteNumeric(g)) reproduces g.
func WriteNumeric(w io.Writer, g *maze.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.Rows(), g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			code, ok := Code(g.At(maze.Coord{Row: r, Col: c}))
			if !ok {
				return fmt.Errorf("%w: no code for %v at (%d,%d)", ErrUnknownCode, g.At(maze.Coord{Row: r, Col: c}), r, c)
			}
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(code))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
