package dijkstra

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvsearch/graph"
)

// Sentinel errors returned by Dijkstra and Result queries.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartNotFound indicates that the start node is not part of the graph.
	ErrStartNotFound = errors.New("dijkstra: start node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNodeUnreachable indicates a query for a node the search never reached.
	ErrNodeUnreachable = errors.New("dijkstra: node unreachable from start")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures a Dijkstra run.
//
// The tie-break comparator and distance cap are stored untyped because
// Option is shared by every instantiation; Dijkstra checks them against the
// graph's node and weight types and reports ErrOptionViolation on mismatch.
type Options struct {
	// Logger receives debug and trace events. Defaults to zerolog.Nop().
	Logger zerolog.Logger

	tieBreak    any // func(a, b N) int
	maxDistance any // W
	err         error
}

// Option configures Dijkstra via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Dijkstra is invoked.
type Option func(*Options)

// DefaultOptions returns Options with a no-op logger, push-order tie-breaking
// and no distance cap.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger routes search events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithTieBreak orders frontier entries of equal distance by cmp(a, b) < 0,
// e.g. WithTieBreak(cmp.Compare[string]). N must match the graph node type.
func WithTieBreak[N comparable](cmp func(a, b N) int) Option {
	return func(o *Options) {
		if cmp == nil {
			o.err = fmt.Errorf("%w: nil tie-break comparator", ErrOptionViolation)
			return
		}
		o.tieBreak = cmp
	}
}

// WithMaxDistance stops the search from reaching nodes farther than limit.
// The value's type must match the graph weight type, e.g.
// WithMaxDistance(int64(10)) for a graph.Graph[N, int64].
func WithMaxDistance[W graph.Weight](limit W) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%v)", ErrOptionViolation, limit)
			return
		}
		o.maxDistance = limit
	}
}

// Result holds the outcome of one single-source search. It owns its maps and
// keeps no reference to the graph it was computed from.
type Result[N comparable, W graph.Weight] struct {
	start   N
	dist    map[N]W   // reached node → minimum distance
	parents map[N][]N // reached node → every tied optimal predecessor
	order   []N       // nodes in finalization order
}

// Start returns the source node of the search.
func (r *Result[N, W]) Start() N { return r.start }

// Reached reports whether n was reached from the start node.
func (r *Result[N, W]) Reached(n N) bool {
	_, ok := r.dist[n]

	return ok
}

// Distance returns the minimum distance from the start node to n, or
// ErrNodeUnreachable if n was never reached.
func (r *Result[N, W]) Distance(n N) (W, error) {
	d, ok := r.dist[n]
	if !ok {
		var zero W
		return zero, fmt.Errorf("%w: %v", ErrNodeUnreachable, n)
	}

	return d, nil
}

// Distances returns a copy of the distance map (reached nodes only).
func (r *Result[N, W]) Distances() map[N]W {
	return maps.Clone(r.dist)
}

// Parents returns a copy of the tied optimal predecessors of n, in the order
// they were discovered. The start node and unreached nodes have none.
func (r *Result[N, W]) Parents(n N) []N {
	return slices.Clone(r.parents[n])
}

// Order returns the reached nodes in the order their distances were
// finalized, starting with the start node.
func (r *Result[N, W]) Order() []N {
	return slices.Clone(r.order)
}
