// Package lvsearch is an in-memory toolkit for two classic search problems
// over generic graphs: tie-aware shortest paths and clique enumeration.
//
// What is inside?
//
//	graph/    — generic directed multigraph Graph[N, W] with ordered nodes
//	dijkstra/ — Dijkstra keeping every tied optimal predecessor, plus
//	            enumeration of all shortest walks, on-path node sets,
//	            a memoizing PathCache and an all-pairs table
//	clique/   — Bron–Kerbosch over a bitset relation: pivoted maximal
//	            cliques and bounded fixed-size cliques
//	bfs/      — hop-count breadth-first search over the same Graph
//	builder/  — deterministic fixture topologies (cycles, grids, wheels,
//	            complete and random graphs) for tests and demos
//
// Quick start:
//
//	g := graph.New[string, int]()
//	g.AddUndirectedEdge("A", "B", 1)
//	g.AddUndirectedEdge("B", "C", 1)
//	res, _ := dijkstra.Dijkstra(g, "A")
//	paths, _ := res.ShortestPaths("C") // [[A B C]]
//
//	rel := clique.FromGraph(g)
//	cl := clique.New(rel).MaximalCliques() // [[A B] [B C]]
//
// Everything is single-threaded and synchronous; results own their data
// and never alias the graph they were computed from.
package lvsearch
