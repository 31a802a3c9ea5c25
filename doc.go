// Package lvmaze is a small engine for finding paths through terrain
// grids: walls, open ground, slow ground and hazards, with one Start
// and one End.
//
// 🚀 What is lvmaze?
//
//	A read-only grid model plus four searches that share one legality
//	rule, one cost table and one neighbor order:
//		• Exhaustive DFS: every simple path, in discovery order
//		• BFS: fewest moves, cost ignored
//		• Dijkstra: cheapest route (open 1, slow 3, hazard 1000)
//		• Hazard budget: cheapest route with k hazard crossings free
//
// ✨ Why lvmaze?
//
//   - Deterministic: up, down, left, right everywhere; ties are stable
//   - Concurrent: one Pathfinder serves any number of goroutines
//   - Observable: structured zap logging on every query
//
// Layout:
//
//	maze/          Terrain, Coord, Grid, connected regions
//	pathfinder/    the searches, cost accounting, concurrent Solve
//	mazefile/      numeric and YAML maze files
//	cmd/mazepath/  CLI: solve and analyze maze files
//
// Quick ASCII example:
//
//	S . .
//	# # ^     plain Dijkstra pays 1003 through the lava,
//	# # E     one free hazard crossing pays 3.
//
//	go install github.com/katalvlaran/lvmaze/cmd/mazepath@latest
package lvmaze
