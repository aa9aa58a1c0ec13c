// Package bfs provides breadth-first search over a graph.Graph, returning
// hop-count distances, parent links, and visit order. Edge weights are
// ignored, so on unit-weight graphs the depths equal dijkstra distances.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Result carries Order (visit sequence), Depth and Parent.
//   - Hooks: OnVisit (may abort with an error).
//   - Neighbour filtering via WithFilterNeighbor.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Neighbours are expanded in edge insertion order (graph.Out), so the
//	visit sequence is reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "wall" }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      for invalid options (negative MaxDepth).
//   - ErrNotReached           from Result.PathTo for unreached nodes.
//   - Wrapped OnVisit errors and context errors.
package bfs
