package clique

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvsearch/graph"
)

// NewRelation returns an empty relation.
func NewRelation[N comparable]() *Relation[N] {
	return &Relation[N]{ids: make(map[N]uint)}
}

// FromGraph builds a relation with an undirected link for every edge of g.
// Weights, edge direction and parallel edges are ignored; isolated nodes are
// kept.
func FromGraph[N comparable, W graph.Weight](g *graph.Graph[N, W]) *Relation[N] {
	r := NewRelation[N]()
	for _, u := range g.Nodes() {
		r.AddNode(u)
		for v := range g.Out(u) {
			r.Connect(u, v)
		}
	}

	return r
}

// FromSets builds a relation from a caller adjacency map, recording exactly
// the listed directions. Keys are interned first, in map iteration order;
// pass nodes through NewRelation and AddNode beforehand for a fixed order.
func FromSets[N comparable](adj map[N][]N) *Relation[N] {
	r := NewRelation[N]()
	for n := range adj {
		r.AddNode(n)
	}
	for n, neighbours := range adj {
		for _, m := range neighbours {
			r.Link(n, m)
		}
	}

	return r
}

// AddNode registers n and returns its dense id. Existing nodes keep their id.
func (r *Relation[N]) AddNode(n N) uint {
	if id, ok := r.ids[n]; ok {
		return id
	}
	id := uint(len(r.nodes))
	r.ids[n] = id
	r.nodes = append(r.nodes, n)
	r.adj = append(r.adj, bitset.New(0))

	return id
}

// Connect records a and b as adjacent in both directions.
// Self-loops only register the node.
func (r *Relation[N]) Connect(a, b N) {
	r.Link(a, b)
	r.Link(b, a)
}

// Link records b as a neighbour of a, one direction only.
// Self-loops only register the node.
func (r *Relation[N]) Link(a, b N) {
	ia, ib := r.AddNode(a), r.AddNode(b)
	if ia == ib {
		return
	}
	r.adj[ia].Set(ib)
}

// Adjacent reports whether b is recorded as a neighbour of a.
func (r *Relation[N]) Adjacent(a, b N) bool {
	ia, ok := r.ids[a]
	if !ok {
		return false
	}
	ib, ok := r.ids[b]
	if !ok {
		return false
	}

	return r.adj[ia].Test(ib)
}

// Neighbors returns the neighbours of n in insertion order.
func (r *Relation[N]) Neighbors(n N) []N {
	id, ok := r.ids[n]
	if !ok {
		return nil
	}

	return r.members(r.adj[id])
}

// Nodes returns every node in insertion order.
func (r *Relation[N]) Nodes() []N {
	out := make([]N, len(r.nodes))
	copy(out, r.nodes)

	return out
}

// Len returns the number of nodes.
func (r *Relation[N]) Len() int { return len(r.nodes) }

// members maps the ids set in s back to nodes, in id order.
func (r *Relation[N]) members(s *bitset.BitSet) []N {
	out := make([]N, 0, s.Count())
	for id, ok := s.NextSet(0); ok; id, ok = s.NextSet(id + 1) {
		out = append(out, r.nodes[id])
	}

	return out
}

// clone returns a deep copy so an Engine is unaffected by later mutation.
func (r *Relation[N]) clone() *Relation[N] {
	c := &Relation[N]{
		ids:   make(map[N]uint, len(r.ids)),
		nodes: make([]N, len(r.nodes)),
		adj:   make([]*bitset.BitSet, len(r.adj)),
	}
	for n, id := range r.ids {
		c.ids[n] = id
	}
	copy(c.nodes, r.nodes)
	for i, row := range r.adj {
		c.adj[i] = row.Clone()
	}

	return c
}
