package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvsearch/graph"
)

// Dijkstra computes shortest distances and the tie-aware parent relation from
// start to every node reachable in g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain start (ErrStartNotFound).
//  4. No edge in g may have a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V), plus the parent-relation walk for zero-weight ties.
//   - Space: O(V + E); the lazy heap may hold up to E entries.
func Dijkstra[N comparable, W graph.Weight](g *graph.Graph[N, W], start N, opts ...Option) (*Result[N, W], error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	r := &runner[N, W]{
		g:       g,
		log:     cfg.Logger,
		dist:    make(map[N]W, g.NodeCount()),
		parents: make(map[N][]N, g.NodeCount()),
	}

	// 3) Bind untyped options to this instantiation.
	if cfg.tieBreak != nil {
		cmp, ok := cfg.tieBreak.(func(a, b N) int)
		if !ok {
			return nil, fmt.Errorf("%w: tie-break comparator %T does not accept %T nodes",
				ErrOptionViolation, cfg.tieBreak, start)
		}
		r.pq.tie = cmp
	}
	if cfg.maxDistance != nil {
		limit, ok := cfg.maxDistance.(W)
		if !ok {
			var zero W
			return nil, fmt.Errorf("%w: MaxDistance of type %T does not match weight type %T",
				ErrOptionViolation, cfg.maxDistance, zero)
		}
		r.maxDist, r.hasMax = limit, true
	}

	// 4) Pre-scan every edge for negative weights and fail fast.
	for _, u := range g.Nodes() {
		for v, w := range g.Out(u) {
			if w < 0 {
				return nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, v, w)
			}
		}
	}

	// 5) Run.
	r.log.Debug().
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Msg("dijkstra: search started")

	r.init(start)
	r.process()

	r.log.Debug().
		Int("settled", len(r.order)).
		Int("pushes", r.pushes).
		Int("stale", r.stale).
		Msg("dijkstra: search finished")

	return &Result[N, W]{
		start:   start,
		dist:    r.dist,
		parents: r.parents,
		order:   r.order,
	}, nil
}

// runner holds the mutable state of a single Dijkstra execution.
type runner[N comparable, W graph.Weight] struct {
	g       *graph.Graph[N, W] // read-only input
	log     zerolog.Logger
	dist    map[N]W   // best known distance; absent means unreached
	parents map[N][]N // tied optimal predecessors
	order   []N       // finalization order
	pq      frontier[N, W]

	maxDist W
	hasMax  bool

	seq    uint64 // push counter, default tie-break
	pushes int
	stale  int
}

// init records the start node at distance zero and seeds the frontier.
func (r *runner[N, W]) init(start N) {
	r.dist[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

func (r *runner[N, W]) push(n N, d W) {
	heap.Push(&r.pq, entry[N, W]{node: n, dist: d, seq: r.seq})
	r.seq++
	r.pushes++
}

// process pops the closest frontier entry until the heap is empty. Entries
// whose distance is greater than the best known one are stale and skipped.
func (r *runner[N, W]) process() {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(entry[N, W])

		if it.dist > r.dist[it.node] {
			r.stale++
			continue
		}

		r.order = append(r.order, it.node)
		if ev := r.log.Trace(); ev.Enabled() {
			ev.Interface("node", it.node).Interface("dist", it.dist).Msg("dijkstra: settled")
		}

		r.relax(it.node, it.dist)
	}
}

// relax examines every outgoing edge of u, settled at distance d.
//
//   - candidate < known: new best; parents reset to [u]; push.
//   - candidate == known: u is an additional tied parent; no push.
//   - candidate > known: nothing.
func (r *runner[N, W]) relax(u N, d W) {
	for v, w := range r.g.Out(u) {
		candidate := d + w
		if r.hasMax && candidate > r.maxDist {
			continue
		}

		known, seen := r.dist[v]
		switch {
		case !seen || candidate < known:
			r.dist[v] = candidate
			r.parents[v] = []N{u}
			r.push(v, candidate)
		case candidate == known:
			r.addTie(v, u, w)
		}
	}
}

// addTie appends u to the parents of v unless it is already listed or, for
// a zero-weight edge, v is u itself or one of u's ancestors.
func (r *runner[N, W]) addTie(v, u N, w W) {
	if slices.Contains(r.parents[v], u) {
		return
	}
	if w == 0 && r.isAncestor(v, u) {
		return
	}
	r.parents[v] = append(r.parents[v], u)
}

// isAncestor reports whether a equals b or is reachable from b by following
// parent links.
func (r *runner[N, W]) isAncestor(a, b N) bool {
	seen := map[N]struct{}{b: {}}
	stack := []N{b}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == a {
			return true
		}
		for _, p := range r.parents[n] {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				stack = append(stack, p)
			}
		}
	}

	return false
}

// entry is one frontier candidate: a node and the distance it was pushed at.
type entry[N comparable, W graph.Weight] struct {
	node N
	dist W
	seq  uint64
}

// frontier is a min-heap of entries ordered by (dist, tie(node), seq).
// Improved distances push a new entry; the outdated one stays in the heap
// and is discarded as stale when popped.
type frontier[N comparable, W graph.Weight] struct {
	items []entry[N, W]
	tie   func(a, b N) int
}

func (pq frontier[N, W]) Len() int { return len(pq.items) }

func (pq frontier[N, W]) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if pq.tie != nil {
		if c := pq.tie(a.node, b.node); c != 0 {
			return c < 0
		}
	}

	return a.seq < b.seq
}

func (pq frontier[N, W]) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *frontier[N, W]) Push(x any) { pq.items = append(pq.items, x.(entry[N, W])) }

func (pq *frontier[N, W]) Pop() any {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[:n-1]

	return it
}
