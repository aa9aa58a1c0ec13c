package clique

import (
	"slices"
	"strconv"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"
)

// Engine enumerates cliques of a snapshot of a Relation.
type Engine[N comparable] struct {
	rel  *Relation[N]
	opts Options
}

// New returns an Engine over a copy of rel; later changes to rel are not
// observed. A nil rel behaves like an empty relation.
func New[N comparable](rel *Relation[N], opts ...Option) *Engine[N] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if rel == nil {
		rel = NewRelation[N]()
	}

	return &Engine[N]{rel: rel.clone(), opts: cfg}
}

// Cliques returns the maximal cliques when size <= 0 (AnySize), otherwise
// every clique of exactly size members.
func (e *Engine[N]) Cliques(size int) [][]N {
	if size <= AnySize {
		return e.MaximalCliques()
	}

	return e.CliquesOfSize(size)
}

// MaximalCliques returns every inclusion-maximal clique exactly once.
// An empty relation has no cliques.
func (e *Engine[N]) MaximalCliques() [][]N {
	if e.rel.Len() == 0 {
		return nil
	}

	s := e.newSearch("maximal")
	s.pivoted(nil, e.universe(), bitset.New(uint(e.rel.Len())))

	return s.finish()
}

// CliquesOfSize returns every clique with exactly k members. k <= 0 yields
// nothing; use MaximalCliques for unbounded enumeration.
func (e *Engine[N]) CliquesOfSize(k int) [][]N {
	if k <= 0 || k > e.rel.Len() {
		return nil
	}

	s := e.newSearch("fixed")
	s.fixed(make([]uint, 0, k), e.universe(), k)

	return s.finish()
}

// Maximum returns a largest clique, the first one found when several share
// the maximum size. An empty relation yields nil.
func (e *Engine[N]) Maximum() []N {
	var best []N
	for _, c := range e.MaximalCliques() {
		if len(c) > len(best) {
			best = c
		}
	}

	return best
}

// universe returns the set of every node id.
func (e *Engine[N]) universe() *bitset.BitSet {
	n := uint(e.rel.Len())
	all := bitset.New(n)
	for i := uint(0); i < n; i++ {
		all.Set(i)
	}

	return all
}

// search is the mutable state of one enumeration.
type search[N comparable] struct {
	rel   *Relation[N]
	log   zerolog.Logger
	mode  string
	out   [][]N
	seen  map[string]struct{} // canonical keys, nil unless Dedup
	calls int
	drops int
}

func (e *Engine[N]) newSearch(mode string) *search[N] {
	s := &search[N]{
		rel:  e.rel,
		log:  e.opts.Logger,
		mode: mode,
	}
	if e.opts.Dedup {
		s.seen = make(map[string]struct{})
	}
	s.log.Debug().Str("mode", mode).Int("nodes", e.rel.Len()).Msg("clique: enumeration started")

	return s
}

func (s *search[N]) finish() [][]N {
	s.log.Debug().
		Str("mode", s.mode).
		Int("calls", s.calls).
		Int("cliques", len(s.out)).
		Int("duplicates", s.drops).
		Msg("clique: enumeration finished")

	return s.out
}

// pivoted is Bron–Kerbosch with pivoting. r is the clique under
// construction, p the candidates extending it and x the candidates already
// explored in this branch. p and x are owned by the call.
func (s *search[N]) pivoted(r []uint, p, x *bitset.BitSet) {
	s.calls++
	if p.None() && x.None() {
		s.emit(r)
		return
	}

	u := s.pivot(p, x)
	branch := p.Difference(s.rel.adj[u])
	for v, ok := branch.NextSet(0); ok; v, ok = branch.NextSet(v + 1) {
		nv := s.rel.adj[v]
		s.pivoted(append(r, v), p.Intersection(nv), x.Intersection(nv))
		p.Clear(v)
		x.Set(v)
	}
}

// pivot picks the member of p ∪ x with the most neighbours in p, which
// minimises the branching over p \ N(u).
func (s *search[N]) pivot(p, x *bitset.BitSet) uint {
	both := p.Union(x)
	best, bestDeg := uint(0), -1
	for u, ok := both.NextSet(0); ok; u, ok = both.NextSet(u + 1) {
		if d := int(p.IntersectionCardinality(s.rel.adj[u])); d > bestDeg {
			best, bestDeg = u, d
		}
	}

	return best
}

// fixed enumerates cliques of exactly k members. Each candidate is removed
// from p before recursing, so later siblings never revisit it and every
// clique is emitted once, as an increasing id sequence.
func (s *search[N]) fixed(r []uint, p *bitset.BitSet, k int) {
	s.calls++
	if len(r) == k {
		s.emit(r)
		return
	}
	if len(r)+int(p.Count()) < k {
		return
	}

	for v, ok := p.NextSet(0); ok; v, ok = p.NextSet(v + 1) {
		p.Clear(v)
		s.fixed(append(r, v), p.Intersection(s.rel.adj[v]), k)
	}
}

// emit records the clique r in id order.
func (s *search[N]) emit(r []uint) {
	ids := slices.Clone(r)
	slices.Sort(ids)

	if s.seen != nil {
		key := canonicalKey(ids)
		if _, dup := s.seen[key]; dup {
			s.drops++
			return
		}
		s.seen[key] = struct{}{}
	}

	members := make([]N, len(ids))
	for i, id := range ids {
		members[i] = s.rel.nodes[id]
	}
	s.out = append(s.out, members)
}

// canonicalKey renders sorted ids as "i,j,k".
func canonicalKey(ids []uint) string {
	buf := make([]byte, 0, len(ids)*4)
	for i, id := range ids {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendUint(buf, uint64(id), 10)
	}

	return string(buf)
}
