// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_isolated.go — explicit vertices without edges.

package builder

// Isolated returns a Constructor that registers each id as a node. IDs
// already present are left untouched.
func Isolated(names ...string) Constructor {
	return func(g *Graph, _ builderConfig) error {
		for _, id := range names {
			g.AddNode(id)
		}
		return nil
	}
}
