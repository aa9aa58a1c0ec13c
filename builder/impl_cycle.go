// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_cycle.go — cycle C_n and path P_n.
//
// Emission order:
//   • vertices 0..n-1 via cfg.idFn
//   • edges i→i+1 (and n-1→0 for cycles), one weight draw per edge

package builder

const (
	methodCycle = "Cycle"
	methodPath  = "Path"
	minCycle    = 3
	minPath     = 2
)

// Cycle returns a Constructor for the cycle C_n. Requires n ≥ 3.
//
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCycle {
			return tooFew(methodCycle, "n", n, minCycle)
		}
		vs := ids(g, cfg, n)
		for i := range vs {
			connect(g, cfg, vs[i], vs[(i+1)%n])
		}

		return nil
	}
}

// Path returns a Constructor for the path P_n. Requires n ≥ 2.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPath {
			return tooFew(methodPath, "n", n, minPath)
		}
		vs := ids(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			connect(g, cfg, vs[i], vs[i+1])
		}

		return nil
	}
}
