package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start node is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for nodes the search never reached.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option configures BFS behaviour. Invalid values are recorded and surfaced
// as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for one BFS run. Callbacks are
// stored untyped and checked against the graph's node type at call time.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Logger receives debug events; zerolog.Nop() by default.
	Logger zerolog.Logger

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	onVisit        any
	filterNeighbor any
	err            error
}

// DefaultOptions returns background context, no hooks, no depth limit and
// no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zerolog.Nop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnVisit registers a visit callback; returning an error stops the BFS.
func WithOnVisit[N comparable](fn func(n N, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond depth d.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbours when fn returns false.
func WithFilterNeighbor[N comparable](fn func(curr, neighbor N) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.filterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal.
type Result[N comparable] struct {
	start  N
	order  []N
	depth  map[N]int
	parent map[N]N
}

// Start returns the node the search began at.
func (r *Result[N]) Start() N { return r.start }

// Order returns visited nodes in visit sequence.
func (r *Result[N]) Order() []N { return slices.Clone(r.order) }

// Depth returns the hop count of n and whether n was reached.
func (r *Result[N]) Depth(n N) (int, bool) {
	d, ok := r.depth[n]
	return d, ok
}

// PathTo reconstructs the BFS-tree path from the start to dest.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if _, ok := r.depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	path := []N{dest}
	for cur := dest; ; {
		prev, ok := r.parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
