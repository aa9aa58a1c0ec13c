package graph

import "iter"

// AddNode registers n as a node without adding any edge.
// Adding an existing node is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[N, W]) AddNode(n N) {
	if _, ok := g.adjacency[n]; ok {
		return
	}
	g.adjacency[n] = nil
	g.order = append(g.order, n)
}

// AddEdge inserts the directed edge from → to with the given weight.
// Both endpoints become nodes of the graph. Repeated calls with the same
// pair add parallel edges; nothing is replaced.
// Complexity: O(1) amortized.
func (g *Graph[N, W]) AddEdge(from, to N, weight W) {
	g.AddNode(from)
	g.AddNode(to)
	g.adjacency[from] = append(g.adjacency[from], Edge[N, W]{To: to, Weight: weight})
	g.edgeCount++
}

// AddUndirectedEdge inserts a → b and b → a with the same weight.
func (g *Graph[N, W]) AddUndirectedEdge(a, b N, weight W) {
	g.AddEdge(a, b, weight)
	g.AddEdge(b, a, weight)
}

// HasNode reports whether n is a node of g.
func (g *Graph[N, W]) HasNode(n N) bool {
	_, ok := g.adjacency[n]

	return ok
}

// Nodes returns every node of g in first-seen order.
// The returned slice is a copy.
func (g *Graph[N, W]) Nodes() []N {
	out := make([]N, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph[N, W]) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of arcs, parallel arcs included.
func (g *Graph[N, W]) EdgeCount() int { return g.edgeCount }

// Edges returns a copy of the outgoing edges of from, in insertion order.
// Unknown nodes have no edges.
func (g *Graph[N, W]) Edges(from N) []Edge[N, W] {
	src := g.adjacency[from]
	if len(src) == 0 {
		return nil
	}
	out := make([]Edge[N, W], len(src))
	copy(out, src)

	return out
}

// Out iterates the outgoing edges of from as (destination, weight) pairs
// without allocating. The graph must not be mutated during iteration.
func (g *Graph[N, W]) Out(from N) iter.Seq2[N, W] {
	return func(yield func(N, W) bool) {
		for _, e := range g.adjacency[from] {
			if !yield(e.To, e.Weight) {
				return
			}
		}
	}
}
