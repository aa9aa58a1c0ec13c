// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_star.go — star S_n and wheel W_n.
//
// Star: hub "Center" plus leaves 1..n-1 (cfg.idFn), edges Center→leaf.
// Wheel: rim cycle over 0..n-2 (cfg.idFn), then spokes Center→rim vertex.

package builder

const (
	methodStar  = "Star"
	methodWheel = "Wheel"
	minStar     = 2
	minWheel    = 4

	// CenterID is the hub vertex of Star and Wheel.
	CenterID = "Center"
)

// Star returns a Constructor for a star with n vertices in total. Requires
// n ≥ 2.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minStar {
			return tooFew(methodStar, "n", n, minStar)
		}
		g.AddNode(CenterID)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			g.AddNode(leaf)
			connect(g, cfg, CenterID, leaf)
		}

		return nil
	}
}

// Wheel returns a Constructor for the wheel W_n: a rim cycle of n-1
// vertices and a hub joined to each of them. Requires n ≥ 4.
func Wheel(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minWheel {
			return tooFew(methodWheel, "n", n, minWheel)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return err
		}
		g.AddNode(CenterID)
		for i := 0; i < n-1; i++ {
			connect(g, cfg, CenterID, cfg.idFn(i))
		}

		return nil
	}
}
