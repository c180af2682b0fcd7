// Package gridgraph provides utilities to treat a 2D grid of risk levels
// as a graph. It supports:
//
//   - Parsing a digit pattern into a base risk tile
//   - Tiling the base pattern with wraparound risk increments
//   - Four-connectivity lookups for shortest-path searches
//
// Every cell carries a risk level in [MinRisk, MaxRisk].
package gridgraph

import (
	"fmt"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed as values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrWeightRange if any value lies outside [MinRisk, MaxRisk].
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	weights := make([]int, 0, w*h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v < MinRisk || v > MaxRisk {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrWeightRange, x, y, v)
			}
		}
		weights = append(weights, row...)
	}

	return &GridGraph{Width: w, Height: h, weights: weights}, nil
}

// ParsePattern builds the base risk tile from lines of decimal digits.
// lines[y][x] is the risk level of cell (x,y).
// Returns ErrEmptyGrid, ErrNonRectangular, ErrInvalidDigit or ErrNonPositiveWeight;
// nothing is substituted for a malformed cell.
func ParsePattern(lines []string) (*GridGraph, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(lines), len(lines[0])
	weights := make([]int, 0, w*h)
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: line %d has %d characters, want %d", ErrNonRectangular, y, len(line), w)
		}
		for x := 0; x < w; x++ {
			c := line[x]
			switch {
			case c < '0' || c > '9':
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidDigit, c, x, y)
			case c == '0':
				return nil, fmt.Errorf("%w: '0' at (%d,%d)", ErrNonPositiveWeight, x, y)
			}
			weights = append(weights, int(c-'0'))
		}
	}

	return &GridGraph{Width: w, Height: h, weights: weights}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Contains reports whether c lies within the grid boundaries.
func (gg *GridGraph) Contains(c Coordinate) bool {
	return gg.InBounds(c.X, c.Y)
}

// Weight returns the risk level of cell (x,y). The caller must check InBounds.
func (gg *GridGraph) Weight(x, y int) int {
	return gg.weights[gg.Index(x, y)]
}

// WeightAt returns the risk level of cell c. The caller must check Contains.
func (gg *GridGraph) WeightAt(c Coordinate) int {
	return gg.Weight(c.X, c.Y)
}

// WeightIndex returns the risk level stored at row-major index idx.
func (gg *GridGraph) WeightIndex(idx int) int {
	return gg.weights[idx]
}

// Len returns the number of cells, Width×Height.
func (gg *GridGraph) Len() int {
	return len(gg.weights)
}

// NeighborOffsets returns the 4-directional neighbor offsets (N, W, S, E).
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [4]Coordinate {
	return neighborOffsets
}

// Corners returns the top-left and bottom-right cells.
func (gg *GridGraph) Corners() (start, end Coordinate) {
	return Coordinate{}, Coordinate{X: gg.Width - 1, Y: gg.Height - 1}
}

// Rows returns a copy of the risk levels as rows[y][x].
func (gg *GridGraph) Rows() [][]int {
	rows := make([][]int, gg.Height)
	for y := range rows {
		rows[y] = make([]int, gg.Width)
		copy(rows[y], gg.weights[y*gg.Width:(y+1)*gg.Width])
	}

	return rows
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % gg.Width, Y: idx / gg.Width}
}

// String renders the grid as lines of digits, the inverse of ParsePattern.
func (gg *GridGraph) String() string {
	buf := make([]byte, 0, gg.Len()+gg.Height)
	for i, v := range gg.weights {
		if i > 0 && i%gg.Width == 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, byte('0'+v))
	}

	return string(buf)
}
