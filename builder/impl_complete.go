// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_complete.go — complete graph K_n and complete bipartite K_{a,b}.
//
// Emission order:
//   • K_n: pairs (i,j) with i<j, lexicographic.
//   • K_{a,b}: left vertices prefix+0..a-1, right prefix+0..b-1, then pairs
//     (l,r) left-major.

package builder

import "strconv"

const (
	methodComplete  = "Complete"
	methodBipartite = "CompleteBipartite"
	minComplete     = 1
	minSide         = 1
)

// Complete returns a Constructor for K_n. Requires n ≥ 1.
//
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minComplete {
			return tooFew(methodComplete, "n", n, minComplete)
		}
		vs := ids(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				connect(g, cfg, vs[i], vs[j])
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{a,b}. Side labels come from
// WithPartitionPrefix. Requires a ≥ 1 and b ≥ 1.
func CompleteBipartite(a, b int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if a < minSide {
			return tooFew(methodBipartite, "a", a, minSide)
		}
		if b < minSide {
			return tooFew(methodBipartite, "b", b, minSide)
		}
		left := make([]string, a)
		for i := range left {
			left[i] = cfg.leftPrefix + strconv.Itoa(i)
			g.AddNode(left[i])
		}
		right := make([]string, b)
		for j := range right {
			right[j] = cfg.rightPrefix + strconv.Itoa(j)
			g.AddNode(right[j])
		}
		for _, l := range left {
			for _, r := range right {
				connect(g, cfg, l, r)
			}
		}

		return nil
	}
}
