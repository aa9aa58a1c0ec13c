package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvsearch/graph"
)

// ShortestPaths returns every distinct shortest walk from the start node to
// to, each as a node sequence beginning with the start node and ending with
// to. The summed edge weight of every walk equals Distance(to).
//
// Walks are produced by recursive backward expansion of the parent relation,
// in parent discovery order. No memoization is performed; the result size is
// exponential in the number of tie branches. Use PathCache for repeated
// queries against the same Result.
func (r *Result[N, W]) ShortestPaths(to N) ([][]N, error) {
	if !r.Reached(to) {
		return nil, fmt.Errorf("%w: %v", ErrNodeUnreachable, to)
	}

	return r.expand(to), nil
}

// expand returns every walk start → n; each returned slice has its own
// backing array.
func (r *Result[N, W]) expand(n N) [][]N {
	parents := r.parents[n]
	if len(parents) == 0 {
		return [][]N{{n}}
	}

	var out [][]N
	for _, p := range parents {
		for _, path := range r.expand(p) {
			out = append(out, append(path, n))
		}
	}

	return out
}

// PathTo returns one shortest walk start → to, following the first recorded
// parent at every step.
func (r *Result[N, W]) PathTo(to N) ([]N, error) {
	if !r.Reached(to) {
		return nil, fmt.Errorf("%w: %v", ErrNodeUnreachable, to)
	}

	path := []N{to}
	for cur := to; len(r.parents[cur]) > 0; {
		cur = r.parents[cur][0]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// PathNodes returns every node lying on at least one shortest walk
// start → to, in finalization order. It walks the parent relation once and
// never enumerates the walks themselves.
func (r *Result[N, W]) PathNodes(to N) ([]N, error) {
	if !r.Reached(to) {
		return nil, fmt.Errorf("%w: %v", ErrNodeUnreachable, to)
	}

	onPath := map[N]struct{}{to: {}}
	stack := []N{to}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range r.parents[n] {
			if _, ok := onPath[p]; !ok {
				onPath[p] = struct{}{}
				stack = append(stack, p)
			}
		}
	}

	out := make([]N, 0, len(onPath))
	for _, n := range r.order {
		if _, ok := onPath[n]; ok {
			out = append(out, n)
		}
	}

	return out, nil
}

// PathCache memoizes shortest-walk expansions per node of one Result.
// It is not safe for concurrent use.
type PathCache[N comparable, W graph.Weight] struct {
	res  *Result[N, W]
	memo map[N][][]N
}

// NewPathCache returns an empty cache over r.
func NewPathCache[N comparable, W graph.Weight](r *Result[N, W]) *PathCache[N, W] {
	return &PathCache[N, W]{
		res:  r,
		memo: make(map[N][][]N),
	}
}

// ShortestPaths behaves like Result.ShortestPaths, reusing expansions
// computed by earlier calls. The returned walks are copies.
func (c *PathCache[N, W]) ShortestPaths(to N) ([][]N, error) {
	if !c.res.Reached(to) {
		return nil, fmt.Errorf("%w: %v", ErrNodeUnreachable, to)
	}

	cached := c.expand(to)
	out := make([][]N, len(cached))
	for i, path := range cached {
		out[i] = slices.Clone(path)
	}

	return out, nil
}

func (c *PathCache[N, W]) expand(n N) [][]N {
	if paths, ok := c.memo[n]; ok {
		return paths
	}

	parents := c.res.parents[n]
	var out [][]N
	if len(parents) == 0 {
		out = [][]N{{n}}
	}
	for _, p := range parents {
		for _, path := range c.expand(p) {
			walk := make([]N, len(path)+1)
			copy(walk, path)
			walk[len(path)] = n
			out = append(out, walk)
		}
	}
	c.memo[n] = out

	return out
}

// AllPairsShortestPaths runs Dijkstra from every node of g and returns, for
// each ordered pair (from, to) with to reachable from from, every shortest
// walk between them. opts are passed to each search.
//
// Complexity: V searches plus the size of the emitted walk table.
func AllPairsShortestPaths[N comparable, W graph.Weight](g *graph.Graph[N, W], opts ...Option) (map[N]map[N][][]N, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	table := make(map[N]map[N][][]N, g.NodeCount())
	for _, from := range g.Nodes() {
		res, err := Dijkstra(g, from, opts...)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: all pairs from %v: %w", from, err)
		}

		cache := NewPathCache(res)
		row := make(map[N][][]N, len(res.order))
		for _, to := range res.order {
			// Every node in order is reached, so the error is always nil.
			row[to], _ = cache.ShortestPaths(to)
		}
		table[from] = row
	}

	return table, nil
}
