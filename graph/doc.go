// Package graph provides the generic, in-memory weighted adjacency structure
// consumed by the lvsearch engines.
//
// A Graph[N, W] maps every node to the ordered list of its outgoing edges.
// Edges are directed; parallel edges between the same pair are kept as
// separate entries and never deduplicated. Every node referenced as an edge
// endpoint becomes a key of the graph, even when it has no outgoing edges, so
// the node universe is discoverable from the graph alone.
//
// Type parameters:
//
//	N – any comparable value (ints, strings, coordinate structs, …).
//	W – any integer or floating-point type (see Weight).
//
// Determinism:
//
//   - Nodes() returns nodes in first-seen order.
//   - Edges(from) and Out(from) yield edges in insertion order.
//
// Thread safety:
//
//   - A Graph is a plain value built by a single caller and then read by the
//     engines. Synchronize externally if you mutate it from several goroutines.
//
// Example:
//
//	g := graph.New[string, int]()
//	g.AddEdge("A", "B", 1)
//	g.AddUndirectedEdge("B", "C", 2)
//	g.AddNode("E") // isolated
//	fmt.Println(g.Nodes()) // [A B C E]
package graph
