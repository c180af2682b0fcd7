// Package gridgraph treats a 2D risk map as a graph, and builds the full
// map by tiling a small digit pattern.
//
// What:
//
//   - GridGraph wraps a rectangular, immutable grid of risk levels in [1,9].
//   - ParsePattern turns lines of digits into the base tile.
//   - Expand replicates the base tile N×N times, raising each replica's
//     risk by its tile distance and wrapping 9 → 1.
//   - ReadPattern reads the raw lines from any io.Reader.
//
// Why:
//
//   - Route planning over cave or terrain maps where entering a cell costs its risk.
//   - Feeding dense, index-addressed grids into the dijkstra package without
//     building explicit edge lists.
//
// Complexity:
//
//   - ParsePattern: O(W×H), Memory: O(W×H).
//   - Expand:       O(N²×W×H), Memory: O(N²×W×H).
//   - Accessors:    O(1).
//
// Errors:
//
//   - ErrEmptyGrid: pattern has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidDigit: a pattern character is not 0–9.
//   - ErrNonPositiveWeight: a pattern cell is '0'.
//   - ErrWeightRange: a NewGridGraph value is outside [1,9].
//   - ErrBadTileCount: Expand called with N < 1.
package gridgraph
