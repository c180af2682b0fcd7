// Package gridgraph defines core types and constants for the gridgraph
// subpackage of github.com/katalvlaran/riskpath.
package gridgraph

const (
	// MinRisk is the lowest risk level a cell may carry.
	MinRisk = 1
	// MaxRisk is the highest risk level; incrementing past it wraps to MinRisk.
	MaxRisk = 9
	// DefaultTiles is the number of tile replicas along each axis of the full map.
	DefaultTiles = 5
)

// Coordinate identifies one grid cell by column (X) and row (Y).
// It is a comparable value type: equal components mean the same cell.
type Coordinate struct {
	X, Y int
}

// Add returns c shifted by d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

// GridGraph treats a dense 2D risk map as a 4-connected graph. It is immutable once built.
// Width and Height define dimensions; weights holds the risk levels in row-major order.
// Entering a cell costs its weight; leaving a cell costs nothing.
type GridGraph struct {
	Width, Height int
	weights       []int
}

// neighborOffsets lists the 4-directional moves: N, W, S, E.
var neighborOffsets = [4]Coordinate{
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 0},
}
