// Package clique enumerates complete subgraphs of an undirected adjacency
// relation with the Bron–Kerbosch algorithm.
//
// Two enumeration modes are offered by Engine:
//
//   - MaximalCliques: pivoted Bron–Kerbosch over (R, P, X). Every
//     inclusion-maximal clique is emitted exactly once and no non-maximal
//     clique is ever emitted.
//   - CliquesOfSize(k): plain backtracking that stops descending once |R| == k.
//     Each candidate is consumed before its siblings recurse, so every k-clique
//     is emitted exactly once.
//
// Cliques(size) dispatches between the two: size <= 0 (AnySize) asks for the
// maximal cliques, any positive size for the cliques of exactly that size.
//
// Representation:
//
//	Nodes of a Relation are interned to dense ids in insertion order and each
//	adjacency row is a github.com/bits-and-blooms/bitset.BitSet. Candidate and
//	excluded sets are bitsets too, so intersecting with a neighbourhood is a
//	word-wise AND rather than a hash-set walk.
//
// Output:
//
//	Each clique is a []N listed in relation insertion order. Cliques are
//	returned in discovery order, which is deterministic for a given relation.
//
// Symmetry:
//
//	The relation is undirected by convention. Connect records both directions;
//	Link and FromSets record exactly what they are given and leave symmetry to
//	the caller. Self-loops are ignored.
//
// Complexity:
//
//	Maximal enumeration is O(3^(n/3)) in the worst case (Moon–Moser bound);
//	fixed-size enumeration is O(n^k) in the worst case, pruned when too few
//	candidates remain. Recursion depth is bounded by the largest clique.
package clique
