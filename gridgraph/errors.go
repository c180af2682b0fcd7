package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input pattern has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidDigit indicates a pattern character that is not a decimal digit.
	ErrInvalidDigit = errors.New("gridgraph: pattern character is not a decimal digit")
	// ErrNonPositiveWeight indicates a '0' in the pattern; every cell must cost at least 1.
	ErrNonPositiveWeight = errors.New("gridgraph: risk level must be at least 1")
	// ErrWeightRange indicates a cell value outside [MinRisk, MaxRisk].
	ErrWeightRange = errors.New("gridgraph: risk level out of range")
	// ErrBadTileCount indicates a non-positive tile factor passed to Expand.
	ErrBadTileCount = errors.New("gridgraph: tile count must be positive")
)
