// Package maze models a rectangular terrain grid as a 4-connected graph,
// the input shared by every search in package pathfinder.
//
// What:
//
//   - Grid wraps a rectangular [][]Terrain and is immutable once built.
//   - Terrain is the closed set {Wall, Start, End, Open, Slow, Hazard}.
//   - Coord addresses a cell by (Row, Col) with a row-major total order.
//   - Directions fixes the neighbor order: up, down, left, right.
//   - Regions labels contiguous groups of passable (non-Wall) cells.
//
// Why:
//
//   - A single read-only grid can be shared by any number of concurrent
//     searches; all scratch state lives with the caller.
//   - A fixed neighbor order makes tie-breaks between equal paths
//     reproducible from run to run.
//
// Complexity:
//
//   - NewGrid:   O(R×C) time and memory (deep copy).
//   - Regions:   O(R×C×4), Memory: O(R×C).
//   - Reachable: O(R×C×4) worst case, Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownTerrain: a cell holds a value outside the terrain set.
//   - ErrOutOfBounds: Lookup was asked for a coordinate outside the grid.
package maze
