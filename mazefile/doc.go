// Package mazefile reads and writes maze.Grid values in two on-disk forms.
//
// Numeric form
//
//	A whitespace-separated header "rows cols" followed by rows×cols integer
//	codes in row-major order:
//
//	   1  Wall      0  Open      2  Slow
//	  -1  Start    -2  End       3  Hazard
//
//	Line breaks carry no meaning; tokens after the last cell are ignored.
//
// Document form
//
//	A YAML document with a glyph layout, one string per row:
//
//	  name: detour
//	  layout:
//	    - "S.."
//	    - "##^"
//	    - "##E"
//	  legend:        # optional, overrides DefaultLegend
//	    "*": hazard
//
// Load picks the form from the file extension: .yaml and .yml are
// documents, everything else is numeric.
//
// Errors
//
//   - ErrBadHeader     missing, malformed or non-positive dimensions.
//   - ErrTruncated     fewer cell codes than rows×cols.
//   - ErrUnknownCode   a cell code outside the table above.
//   - ErrUnknownGlyph  a layout rune the legend does not define.
//
// Grid-shape errors (maze.ErrEmptyGrid, maze.ErrNonRectangular) pass
// through unchanged.
package mazefile
