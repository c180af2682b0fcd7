// Package dijkstra defines core types and configuration options
// for the lowest-risk search over a gridgraph.GridGraph.
//
// Options:
//
//	– Source:        starting cell (default (0,0)); its own risk is never counted.
//	– Target:        cell whose distance LowestRisk reports (default bottom-right corner).
//	– Selection:     how the next cell to finalize is chosen (linear scan or binary heap).
//	– Progress:      optional callback invoked every N rounds with open-set size and timing.
//	– RoundHook:     optional callback observing the Distance Table after every round.
//
// Errors (sentinel):
//
//	– ErrNilGrid             if the provided grid pointer is nil.
//	– ErrOutOfBounds         if Source or Target lies outside the grid.
//	– ErrUnknownSelection    if Selection is not one of the defined strategies.
//	– ErrBadProgressInterval if the progress interval is < 1.
//	– ErrUnreachable         if the target was never reached (invariant violation).
package dijkstra

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/riskpath/gridgraph"
)

// Sentinel errors returned by the lowest-risk search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed in.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOutOfBounds indicates that Source or Target is not a cell of the grid.
	ErrOutOfBounds = errors.New("dijkstra: coordinate out of grid bounds")

	// ErrUnknownSelection indicates an undefined Selection strategy.
	ErrUnknownSelection = errors.New("dijkstra: unknown selection strategy")

	// ErrBadProgressInterval indicates a progress interval below one round.
	ErrBadProgressInterval = errors.New("dijkstra: progress interval must be positive")

	// ErrUnreachable indicates the open set emptied while the target still held
	// the infinity sentinel. A 4-connected grid is always connected, so this
	// signals a broken precondition rather than a valid outcome.
	ErrUnreachable = errors.New("dijkstra: target distance never finalized")
)

// Selection controls how each round picks the open cell to finalize.
//
// SelectLinearScan – scan the whole open set for the minimum: O(V²) total, no extra structure.
// SelectHeap       – lazy-deletion binary heap keyed by tentative distance: O((V+E) log V).
//
// Both finalize every cell and produce identical distances.
type Selection int

const (
	// SelectLinearScan picks the minimum by a full scan of the open set each round.
	SelectLinearScan Selection = iota

	// SelectHeap picks the minimum from a min-heap, skipping stale entries.
	SelectHeap
)

// String returns the selection name used in configuration files and flags.
func (s Selection) String() string {
	switch s {
	case SelectLinearScan:
		return "linear"
	case SelectHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// ParseSelection maps "linear" or "heap" to its Selection.
func ParseSelection(name string) (Selection, error) {
	switch name {
	case "linear", "":
		return SelectLinearScan, nil
	case "heap":
		return SelectHeap, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSelection, name)
	}
}

// Progress is a snapshot reported to a ProgressFunc.
type Progress struct {
	Round     int           // rounds completed so far
	Open      int           // cells not yet finalized
	Finalized int           // cells finalized so far
	Elapsed   time.Duration // time since the search started
	Interval  time.Duration // time since the previous report
}

// ProgressFunc receives periodic progress reports. It runs on the search goroutine.
type ProgressFunc func(Progress)

// RoundHook observes the Distance Table (row-major) after each round; round 0 is
// the state before the first selection. dist is owned by the search and must not be modified.
type RoundHook func(round int, dist []int64)

// Options configures the lowest-risk search.
//
// Source         – starting cell; distance 0.
// Target         – cell reported by LowestRisk; bottom-right corner unless set.
// Selection      – next-cell strategy; SelectLinearScan by default.
// Progress       – optional callback, invoked every ProgressEvery rounds (round 0 included).
// RoundHook      – optional observer of the Distance Table.
type Options struct {
	Source        gridgraph.Coordinate
	Target        gridgraph.Coordinate
	Selection     Selection
	Progress      ProgressFunc
	ProgressEvery int
	RoundHook     RoundHook

	targetSet bool
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// Source sets the starting cell.
func Source(c gridgraph.Coordinate) Option {
	return func(o *Options) {
		o.Source = c
	}
}

// Target sets the cell whose distance LowestRisk returns.
func Target(c gridgraph.Coordinate) Option {
	return func(o *Options) {
		o.Target = c
		o.targetSet = true
	}
}

// WithSelection chooses the next-cell strategy.
func WithSelection(s Selection) Option {
	return func(o *Options) {
		o.Selection = s
	}
}

// WithProgress installs fn, called every `every` rounds starting with round 0.
// Must pass every ≥ 1; smaller values panic with ErrBadProgressInterval.
func WithProgress(fn ProgressFunc, every int) Option {
	return func(o *Options) {
		if every < 1 {
			panic(ErrBadProgressInterval.Error())
		}
		o.Progress = fn
		o.ProgressEvery = every
	}
}

// WithRoundHook installs a Distance Table observer.
func WithRoundHook(fn RoundHook) Option {
	return func(o *Options) {
		o.RoundHook = fn
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//
//   - Source:    (0,0).
//   - Target:    bottom-right corner of the grid being searched.
//   - Selection: SelectLinearScan.
//   - Progress:  none.
func DefaultOptions() Options {
	return Options{
		Selection: SelectLinearScan,
	}
}
