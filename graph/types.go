package graph

import "golang.org/x/exp/constraints"

// Weight is the set of edge-cost types accepted by the engines: any integer
// or floating-point type. Its additive identity is W(0).
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge is one outgoing arc stored in a Graph adjacency list.
type Edge[N comparable, W Weight] struct {
	// To is the destination node.
	To N

	// Weight is the cost of traversing the arc.
	Weight W
}

// Graph is a directed, possibly multi-edge, weighted adjacency structure.
//
// The zero value is not usable; construct graphs with New.
type Graph[N comparable, W Weight] struct {
	adjacency map[N][]Edge[N, W] // node → outgoing edges (insertion order)
	order     []N                // nodes in first-seen order
	edgeCount int                // total number of arcs, parallel ones included
}

// New returns an empty graph.
func New[N comparable, W Weight]() *Graph[N, W] {
	return &Graph[N, W]{
		adjacency: make(map[N][]Edge[N, W]),
	}
}
