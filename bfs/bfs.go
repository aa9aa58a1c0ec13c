package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/graph"
)

// queueItem pairs a node with its depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable, W graph.Weight] struct {
	graph   *graph.Graph[N, W]
	opts    Options
	onVisit func(N, int) error
	filter  func(curr, neighbor N) bool
	queue   []queueItem[N]
	res     *Result[N]
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or a wrapped hook/context error.
// On a hook or context error the partial result is returned alongside it.
func BFS[N comparable, W graph.Weight](g *graph.Graph[N, W], start N, opts ...Option) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	onVisit := func(N, int) error { return nil }
	if o.onVisit != nil {
		fn, ok := o.onVisit.(func(N, int) error)
		if !ok {
			return nil, fmt.Errorf("%w: OnVisit has type %T", ErrOptionViolation, o.onVisit)
		}
		onVisit = fn
	}
	filter := func(_, _ N) bool { return true }
	if o.filterNeighbor != nil {
		fn, ok := o.filterNeighbor.(func(N, N) bool)
		if !ok {
			return nil, fmt.Errorf("%w: FilterNeighbor has type %T", ErrOptionViolation, o.filterNeighbor)
		}
		filter = fn
	}

	n := g.NodeCount()
	w := &walker[N, W]{
		graph:   g,
		opts:    o,
		onVisit: onVisit,
		filter:  filter,
		queue:   make([]queueItem[N], 0, n),
		res: &Result[N]{
			start:  start,
			order:  make([]N, 0, n),
			depth:  make(map[N]int, n),
			parent: make(map[N]N, n),
		},
	}
	w.res.depth[start] = 0
	w.queue = append(w.queue, queueItem[N]{node: start})

	err := w.loop()
	o.Logger.Debug().
		Int("visited", len(w.res.order)).
		Int("reached", len(w.res.depth)).
		Err(err).
		Msg("bfs: traversal finished")

	return w.res, err
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N, W]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.order = append(w.res.order, item.node)
		if err := w.onVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
		}
		w.expand(item)
	}
	return nil
}

// expand enqueues each unseen, unfiltered neighbour within MaxDepth.
func (w *walker[N, W]) expand(item queueItem[N]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for nbr := range w.graph.Out(item.node) {
		if !w.filter(item.node, nbr) {
			continue
		}
		if _, seen := w.res.depth[nbr]; seen {
			continue
		}
		w.res.depth[nbr] = next
		w.res.parent[nbr] = item.node
		w.queue = append(w.queue, queueItem[N]{node: nbr, depth: next})
	}
}
