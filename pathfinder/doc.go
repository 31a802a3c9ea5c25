// Package pathfinder answers path queries over a maze.Grid with four
// strategies that share one legality check, one cost table and one
// neighbor order.
//
// What
//
//   - AllPathsDFS: every simple Start→End path, in discovery order.
//   - ShortestPathBFS: fewest moves, terrain cost ignored.
//   - ShortestPathDijkstra: minimum cost, charging each move the cost of
//     the destination cell (Open/Start/End 1, Slow 3, Hazard 1000).
//   - ShortestPathWithOneHazard: minimum cost when one Hazard crossing is
//     free; ShortestPathWithHazardBudget widens that to k crossings.
//   - MinHazardCrossings: the smallest budget that reaches End at all.
//   - Solve: runs the strategies concurrently and returns a Report.
//
// Determinism
//
//	Neighbors are always tried in maze.Directions order (up, down, left,
//	right). BFS and DFS return the first of several equal paths under that
//	order; the weighted searches pop equal-cost entries first-in,
//	first-out. Repeated calls on the same grid return identical paths.
//
// Concurrency
//
//	A Pathfinder only reads its grid. Every query allocates its own
//	visited sets, distance and predecessor tables and heap, so any number
//	of goroutines may query one Pathfinder at once.
//
// Complexity (N = rows × cols)
//
//   - ShortestPathBFS:              O(N) time and memory
//   - ShortestPathDijkstra:         O(N log N) time, O(N) memory
//   - ShortestPathWithHazardBudget: O(N·(k+1) log(N·(k+1))) time
//   - MinHazardCrossings:           O(N) time and memory
//   - AllPathsDFS:                  exponential in the open area
//
// Usage
//
//	g, _ := maze.NewGrid(cells)
//	pf, err := pathfinder.New(g, pathfinder.WithLogger(logger))
//	if err != nil {
//	    // ErrNilGrid, ErrMissingEndpoint or ErrDuplicateEndpoint
//	}
//	path, err := pf.ShortestPathWithOneHazard()
//	if errors.Is(err, pathfinder.ErrNoPath) {
//	    // no solution under these constraints
//	}
//
// Errors
//
//   - ErrNilGrid            if New receives a nil grid.
//   - ErrMissingEndpoint    if the grid lacks Start or End.
//   - ErrDuplicateEndpoint  if Start or End appears twice (see WithLastEndpointWins).
//   - ErrNoPath             if a search cannot reach End.
//   - ErrBadBudget          for a negative hazard budget.
//   - ErrOptionViolation    for invalid query options.
//   - ErrInvalidPath        from Validate and the cost helpers.
package pathfinder
