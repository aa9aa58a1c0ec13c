// Package dijkstra implements single-source Dijkstra over a generic
// graph.Graph, keeping every tied optimal predecessor so that all shortest
// walks to a node can be reconstructed, not just one of them.
//
// Overview:
//
//   - Dijkstra computes, from a start node, the minimum distance to every
//     reachable node in O((V + E) log V) time using a binary min-heap.
//   - Ties are first-class: when a relaxation reaches a node at exactly its
//     known distance, the relaxing node is appended to that node's parent list.
//   - The frontier uses lazy deletion: improved distances push a duplicate
//     entry and stale entries are discarded when popped. No decrease-key.
//   - Nodes never reached are absent from the result; querying them yields
//     ErrNodeUnreachable.
//
// Path reconstruction:
//
//   - Result.ShortestPaths(to) walks the parent relation backward and returns
//     every distinct shortest walk start → to. The number of walks can grow
//     exponentially with the number of tie branches; nothing is memoized.
//   - PathCache memoizes expansions per node for callers issuing many
//     destination queries against one Result.
//   - Result.PathNodes(to) returns the nodes lying on at least one shortest
//     walk without enumerating the walks.
//   - AllPairsShortestPaths runs one search per node and tabulates every
//     shortest walk between every ordered pair.
//
// Parent relation guarantees:
//
//   - The start node has distance zero and no parents.
//   - For every parent p of n there is an edge p→n of weight w with
//     dist(p) + w == dist(n) exactly.
//   - A parent is listed once even when several parallel edges tie.
//   - Zero-weight ties that would close a cycle in the parent relation are
//     ignored, so reconstruction always terminates.
//
// Options:
//
//   - WithLogger(zerolog.Logger): debug events per search, trace per settle.
//   - WithTieBreak(cmp):          order equal-distance frontier entries by node.
//     Without it, equal distances pop in push order.
//   - WithMaxDistance(w):         nodes farther than w are left unreached.
//
// Errors (sentinel):
//
//   - ErrNilGraph         if the graph pointer is nil.
//   - ErrStartNotFound    if the start node is not a node of the graph.
//   - ErrNegativeWeight   if any edge carries a negative weight.
//   - ErrOptionViolation  if an option is invalid for the graph's types.
//   - ErrNodeUnreachable  from Result queries on unreached nodes.
//
// Thread safety:
//
//   - A search only reads the graph; do not mutate it concurrently.
//   - A Result is immutable after Dijkstra returns. PathCache is not safe
//     for concurrent use.
package dijkstra
