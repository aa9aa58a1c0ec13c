package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/dijkstra"
)

// On unit-weight graphs hop counts and shortest distances coincide.
func TestDijkstra_UnitWeightsMatchBFS(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithDirected()},
			builder.RandomSparse(15, 0.2),
		)
		require.NoError(t, err)

		for _, start := range []string{"0", "7"} {
			res, err := dijkstra.Dijkstra(g, start)
			require.NoError(t, err)
			hops, err := bfs.BFS(g, start)
			require.NoError(t, err)

			for _, n := range g.Nodes() {
				depth, reached := hops.Depth(n)
				require.Equal(t, reached, res.Reached(n), "seed %d start %s node %s", seed, start, n)
				if !reached {
					continue
				}
				d, err := res.Distance(n)
				require.NoError(t, err)
				assert.Equal(t, int64(depth), d, "seed %d start %s node %s", seed, start, n)
			}
			assert.ElementsMatch(t, hops.Order(), res.Order())
		}
	}
}
