// Package dijkstra implements the lowest-risk search over a dense risk grid.
//
// The search computes, from a single source cell, the minimum total risk of
// reaching every other cell, where entering a cell costs its risk level and
// the source's own risk is never counted. The grid is 4-connected and every
// risk level is positive, so the single-source relaxation is exact.
//
// Complexity:
//
//   - SelectLinearScan: O(V²) time; each of V rounds scans the shrinking open set.
//   - SelectHeap:       O((V + E) log V) time with lazy deletion, E ≤ 4V.
//   - Space: O(V) for the distance table and open set (plus O(E) heap entries).
//
// Notes on implementation choices:
//
//   - Grids are addressed by row-major index; no per-node objects are allocated.
//   - Every cell is finalized before the search returns, whichever selection is used.
//   - Relaxation uses strict “<”, so a finalized distance is never rewritten.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/riskpath/gridgraph"
)

// Infinity is the Distance Table sentinel for cells not yet reached.
const Infinity int64 = math.MaxInt64

// LowestRisk returns the minimum total risk of any 4-connected path from
// Options.Source to Options.Target in g: the sum of the risk levels of every
// cell entered, excluding the source cell itself.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Source and Target must lie within g (ErrOutOfBounds).
//  3. Selection must be defined (ErrUnknownSelection).
//
// Returns ErrUnreachable if the target still holds Infinity after every cell
// has been finalized.
func LowestRisk(g *gridgraph.GridGraph, opts ...Option) (int64, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return 0, err
	}
	r.process()

	d := r.dist[g.Index(r.options.Target.X, r.options.Target.Y)]
	if d == Infinity {
		return 0, fmt.Errorf("%w: %v from %v", ErrUnreachable, r.options.Target, r.options.Source)
	}

	return d, nil
}

// Distances runs the same search as LowestRisk and returns the final
// Distance Table in row-major order (index with g.Index). Target is validated
// when set but otherwise ignored.
func Distances(g *gridgraph.GridGraph, opts ...Option) ([]int64, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return nil, err
	}
	r.process()

	return r.dist, nil
}

// newRunner applies opts, validates them against g, and prepares the initial state.
func newRunner(g *gridgraph.GridGraph, opts []Option) (*runner, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the grid and the endpoints
	if g == nil {
		return nil, ErrNilGrid
	}
	if !cfg.targetSet {
		_, cfg.Target = g.Corners()
	}
	if !g.Contains(cfg.Source) {
		return nil, fmt.Errorf("%w: source %v in %dx%d grid", ErrOutOfBounds, cfg.Source, g.Width, g.Height)
	}
	if !g.Contains(cfg.Target) {
		return nil, fmt.Errorf("%w: target %v in %dx%d grid", ErrOutOfBounds, cfg.Target, g.Width, g.Height)
	}

	// 3) Validate the selection strategy
	if cfg.Selection != SelectLinearScan && cfg.Selection != SelectHeap {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSelection, cfg.Selection)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, g.Len()),
		done:    make([]bool, g.Len()),
	}
	r.init()

	return r, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *gridgraph.GridGraph // The input grid; read-only within the search.
	options Options              // Validated configuration.
	dist    []int64              // Distance Table: index → best known risk from Source.
	done    []bool               // index → finalized (no longer in the open set).
	open    []int                // Open set for SelectLinearScan, unordered.
	pq      nodePQ               // Min-heap for SelectHeap.
}

// init sets dist to Infinity everywhere except Source, and fills the open set.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = Infinity
	}
	src := r.g.Index(r.options.Source.X, r.options.Source.Y)
	r.dist[src] = 0

	switch r.options.Selection {
	case SelectHeap:
		r.pq = make(nodePQ, 0, len(r.dist))
		heap.Push(&r.pq, nodeItem{idx: src, dist: 0})
	default:
		r.open = make([]int, len(r.dist))
		for i := range r.open {
			r.open[i] = i
		}
	}
}

// process repeatedly finalizes the open cell with the smallest distance and
// relaxes its open neighbors, until no open cell remains.
func (r *runner) process() {
	var (
		total    = len(r.dist)
		start    = time.Now()
		last     = start
		every    = r.options.ProgressEvery
		progress = r.options.Progress
		hook     = r.options.RoundHook
	)
	if hook != nil {
		hook(0, r.dist)
	}

	for round := 0; round < total; round++ {
		if progress != nil && round%every == 0 {
			now := time.Now()
			progress(Progress{
				Round:     round,
				Open:      total - round,
				Finalized: round,
				Elapsed:   now.Sub(start),
				Interval:  now.Sub(last),
			})
			last = now
		}

		// 1) Select and finalize the closest open cell.
		u, ok := r.next()
		if !ok {
			// Heap drained with cells still open: they are unreachable.
			return
		}
		r.done[u] = true

		// 2) Relax open neighbors.
		r.relax(u)

		if hook != nil {
			hook(round+1, r.dist)
		}
	}
}

// next removes and returns the open cell with the minimum distance.
// Ties go to whichever candidate is met first; the result does not depend on it.
func (r *runner) next() (int, bool) {
	if r.options.Selection == SelectHeap {
		for r.pq.Len() > 0 {
			item := heap.Pop(&r.pq).(nodeItem)
			// Skip stale entries left by lazy decrease-key.
			if !r.done[item.idx] {
				return item.idx, true
			}
		}
		return 0, false
	}

	if len(r.open) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(r.open); i++ {
		if r.dist[r.open[i]] < r.dist[r.open[best]] {
			best = i
		}
	}
	u := r.open[best]
	last := len(r.open) - 1
	r.open[best] = r.open[last]
	r.open = r.open[:last]

	return u, true
}

// relax offers each open in-bounds neighbor v of u the distance dist[u] + risk(v).
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) {
	du := r.dist[u]
	if du == Infinity {
		return
	}
	c := r.g.Coordinate(u)
	for _, d := range r.g.NeighborOffsets() {
		n := c.Add(d)
		if !r.g.Contains(n) {
			continue
		}
		v := r.g.Index(n.X, n.Y)
		if r.done[v] {
			continue
		}
		cand := du + int64(r.g.WeightIndex(v))
		if cand >= r.dist[v] {
			continue
		}
		r.dist[v] = cand
		if r.options.Selection == SelectHeap {
			heap.Push(&r.pq, nodeItem{idx: v, dist: cand})
		}
	}
}

// nodeItem is a heap entry: a cell index and the distance it was pushed with.
type nodeItem struct {
	idx  int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
// Outdated entries stay in the heap and are dropped when popped (checked via done).
type nodePQ []nodeItem

// Len returns the number of entries, stale ones included.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
