// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// Package builder assembles deterministic fixture topologies for the
// lvsearch engines: weighted graph.Graph[string, int64] values for Dijkstra
// and clique.Relation[string] values for Bron–Kerbosch.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSymbolIDs()},
//	    builder.Cycle(4),
//	    builder.Isolated("E"),
//	)
//
//	rel, err := builder.BuildRelation(nil, builder.Star(6))
//
// Topologies (each undirected unless WithDirected is set):
//
//	Cycle(n)              C_n, n ≥ 3
//	Path(n)               P_n, n ≥ 2
//	Star(n)               hub "Center" + n-1 leaves, n ≥ 2
//	Wheel(n)              C_{n-1} + hub "Center", n ≥ 4
//	Complete(n)           K_n, n ≥ 1
//	CompleteBipartite(a,b) K_{a,b} with "L"/"R" prefixed IDs, a,b ≥ 1
//	Grid(rows, cols)      4-neighbourhood lattice with IDs "r,c"
//	RandomSparse(n, p)    Erdős–Rényi G(n, p), seeded
//	Isolated(ids...)      nodes without edges
//
// Determinism:
//
//	Same options, seed and constructor order ⇒ identical node order, edge
//	order and weights. Undirected edges are emitted as two arcs u→v, v→u
//	sharing one weight draw.
//
// Errors:
//
//	Constructors return sentinel errors wrapped with the method name
//	(ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//	ErrConstructFailed). Option constructors panic on nil functions.
package builder
