// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// helpers.go — shared emission helpers used by every constructor.

package builder

import "fmt"

// connect emits one logical edge u–v with a single weight draw.
// Undirected builds add both arcs, directed builds only u→v.
func connect(g *Graph, cfg builderConfig, u, v string) {
	w := cfg.weightFn(cfg.rng)
	if cfg.directed {
		g.AddEdge(u, v, w)
		return
	}
	g.AddUndirectedEdge(u, v, w)
}

// ids materializes n vertex IDs and registers them in order.
func ids(g *Graph, cfg builderConfig, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = cfg.idFn(i)
		g.AddNode(out[i])
	}

	return out
}

// tooFew formats the shared minimum-size error.
func tooFew(method, param string, got, want int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, want, ErrTooFewVertices)
}
