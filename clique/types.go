package clique

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"
)

// AnySize asks Engine.Cliques for the inclusion-maximal cliques.
const AnySize = 0

// Relation is an adjacency-set relation over nodes of type N.
// The zero value is not usable; construct relations with NewRelation.
type Relation[N comparable] struct {
	ids   map[N]uint       // node → dense id
	nodes []N              // dense id → node
	adj   []*bitset.BitSet // dense id → neighbour ids
}

// Options configures an Engine.
type Options struct {
	// Logger receives debug events. Defaults to zerolog.Nop().
	Logger zerolog.Logger

	// Dedup drops any clique whose member set was already emitted.
	Dedup bool
}

// Option configures an Engine via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a no-op logger and no dedup pass.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger routes enumeration events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithDedup enables a canonical-set dedup pass over emitted cliques. Both
// enumerations are duplicate-free by construction; this is a guard for
// relations that violate the symmetry convention.
func WithDedup() Option {
	return func(o *Options) {
		o.Dedup = true
	}
}
