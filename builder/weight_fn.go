// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// weight_fn.go — edge weight generators.
//
// Contract:
//   • A WeightFn is called once per logical edge; both arcs of an undirected
//     edge share the returned value.
//   • Generators must return non-negative weights when the graph is fed to
//     dijkstra, which rejects negative edges.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned by DefaultWeightFn.
const DefaultEdgeWeight int64 = 1

// WeightFn draws an edge weight. rng may be nil when no seed was configured.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn returns DefaultEdgeWeight for every edge.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn always yielding w.
func ConstantWeightFn(w int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return w
	}
}

// UniformWeightFn returns a WeightFn drawing uniformly from [lo, hi].
// With a nil rng it yields lo. Panics when lo > hi.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo > hi {
		panic(fmt.Sprintf("builder: UniformWeightFn(lo=%d > hi=%d)", lo, hi))
	}
	span := hi - lo + 1

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return lo
		}
		return lo + rng.Int63n(span)
	}
}
