// Package dijkstra provides a precise implementation of the single-source
// lowest-risk search on dense, 4-connected risk grids (gridgraph.GridGraph).
//
// Overview:
//
//   - LowestRisk returns the minimum total risk from Source to Target, where
//     entering a cell costs its risk level and the Source cell is free.
//   - Distances returns the whole final Distance Table.
//   - The search runs until every cell is finalized; there is no early exit.
//
// Selection strategies:
//
//   - SelectLinearScan (default): each round scans the open set for the
//     smallest tentative distance. O(V²) overall, fine for inputs of a few
//     hundred thousand cells when patience is available.
//   - SelectHeap: lazy-deletion binary heap, O((V + E) log V). Same contract,
//     same results; only running time differs.
//
// Key features:
//
//   - Functional options: Source, Target, WithSelection, WithProgress, WithRoundHook.
//   - Progress reporting through an explicit callback; no package-level state.
//   - The grid is never mutated, so one grid may be searched many times,
//     including concurrently.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:
//     Returned if g is nil.
//   - ErrOutOfBounds:
//     Returned if Source or Target is not a cell of g; wrapped with the coordinate.
//   - ErrUnknownSelection:
//     Returned for an undefined Selection value, or by ParseSelection.
//   - ErrBadProgressInterval:
//     WithProgress panics with this message when every < 1.
//   - ErrUnreachable:
//     Returned if the target's distance is still Infinity once the open set is empty.
//
// Example usage:
//
//	base, _ := gridgraph.ParsePattern(lines)
//	full, _ := base.Expand(gridgraph.DefaultTiles)
//	risk, err := dijkstra.LowestRisk(full, dijkstra.WithSelection(dijkstra.SelectHeap))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(risk)
package dijkstra
