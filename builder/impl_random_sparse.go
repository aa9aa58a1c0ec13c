// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_random_sparse.go — Erdős–Rényi G(n, p).
//
// Each unordered pair (i<j) is kept independently with probability p, pairs
// visited lexicographically. Requires an RNG (WithSeed or WithRand).

package builder

import "fmt"

const (
	methodRandomSparse = "RandomSparse"
	minRandomSparse    = 1
)

// RandomSparse returns a Constructor for G(n, p).
//
// Errors: ErrTooFewVertices (n < 1), ErrInvalidProbability (p ∉ [0,1]),
// ErrNeedRandSource (no RNG configured).
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minRandomSparse {
			return tooFew(methodRandomSparse, "n", n, minRandomSparse)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		vs := ids(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					connect(g, cfg, vs[i], vs[j])
				}
			}
		}

		return nil
	}
}
