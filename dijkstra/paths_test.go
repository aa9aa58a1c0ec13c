package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/graph"
)

func TestShortestPaths_SquareScenario(t *testing.T) {
	res, err := dijkstra.Dijkstra(squareWithIsolated(), "A")
	require.NoError(t, err)

	paths, err := res.ShortestPaths("C")
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]string{{"A", "B", "C"}, {"A", "D", "C"}}, paths)

	paths, err = res.ShortestPaths("A")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A"}}, paths)

	_, err = res.ShortestPaths("E")
	require.ErrorIs(t, err, dijkstra.ErrNodeUnreachable)
}

// TestShortestPaths_Grid counts the monotone lattice walks across a 3×3
// unit grid: C(4,2) = 6 walks from corner to corner.
func TestShortestPaths_Grid(t *testing.T) {
	type cell struct{ R, C int }

	g := graph.New[cell, int]()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if c+1 < 3 {
				g.AddUndirectedEdge(cell{r, c}, cell{r, c + 1}, 1)
			}
			if r+1 < 3 {
				g.AddUndirectedEdge(cell{r, c}, cell{r + 1, c}, 1)
			}
		}
	}

	res, err := dijkstra.Dijkstra(g, cell{0, 0})
	require.NoError(t, err)

	paths, err := res.ShortestPaths(cell{2, 2})
	require.NoError(t, err)
	require.Len(t, paths, 6)

	seen := make(map[[5]cell]bool)
	for _, p := range paths {
		require.Len(t, p, 5)
		var key [5]cell
		copy(key[:], p)
		require.False(t, seen[key], "duplicate walk %v", p)
		seen[key] = true
	}

	nodes, err := res.PathNodes(cell{2, 2})
	require.NoError(t, err)
	assert.Len(t, nodes, 9)
}

func TestPathTo(t *testing.T) {
	res, err := dijkstra.Dijkstra(squareWithIsolated(), "A")
	require.NoError(t, err)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	path, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)

	_, err = res.PathTo("E")
	require.ErrorIs(t, err, dijkstra.ErrNodeUnreachable)
}

func TestPathNodes(t *testing.T) {
	// Two tied routes to T plus a longer detour that must not count.
	g := graph.New[string, int]()
	g.AddEdge("S", "A", 1)
	g.AddEdge("S", "B", 1)
	g.AddEdge("A", "T", 1)
	g.AddEdge("B", "T", 1)
	g.AddEdge("S", "X", 1)
	g.AddEdge("X", "Y", 1)
	g.AddEdge("Y", "T", 1)

	res, err := dijkstra.Dijkstra(g, "S")
	require.NoError(t, err)

	nodes, err := res.PathNodes("T")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "B", "T"}, nodes)

	_, err = res.PathNodes("nowhere")
	require.ErrorIs(t, err, dijkstra.ErrNodeUnreachable)
}

// TestShortestPaths_RandomizedWalks checks that every returned sequence is a
// walk along existing arcs whose weight equals the reported distance.
func TestShortestPaths_RandomizedWalks(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for round := 0; round < 30; round++ {
		n := 2 + rng.Intn(9)
		g, arcs := randomGraph(rng, n, rng.Intn(3*n), 1, 3)
		start := rng.Intn(n)

		res, err := dijkstra.Dijkstra(g, start)
		require.NoError(t, err)
		cache := dijkstra.NewPathCache(res)

		for _, to := range res.Order() {
			want, err := res.Distance(to)
			require.NoError(t, err)

			paths, err := res.ShortestPaths(to)
			require.NoError(t, err)
			require.NotEmpty(t, paths)

			for _, p := range paths {
				require.Equal(t, start, p[0])
				require.Equal(t, to, p[len(p)-1])
				require.Equal(t, want, walkWeight(t, arcs, p))
			}

			cached, err := cache.ShortestPaths(to)
			require.NoError(t, err)
			require.ElementsMatch(t, paths, cached)
		}
	}
}

// walkWeight sums the cheapest arc between each consecutive pair of p and
// fails if a pair has no arc.
func walkWeight(t *testing.T, arcs []arc, p []int) int {
	t.Helper()

	total := 0
	for i := 1; i < len(p); i++ {
		best := -1
		for _, a := range arcs {
			if a.from == p[i-1] && a.to == p[i] && (best < 0 || a.w < best) {
				best = a.w
			}
		}
		require.GreaterOrEqual(t, best, 0, "no arc %d→%d", p[i-1], p[i])
		total += best
	}

	return total
}

func TestPathCache_ReturnsIndependentCopies(t *testing.T) {
	res, err := dijkstra.Dijkstra(squareWithIsolated(), "A")
	require.NoError(t, err)
	cache := dijkstra.NewPathCache(res)

	first, err := cache.ShortestPaths("C")
	require.NoError(t, err)
	first[0][0] = "mutated"

	second, err := cache.ShortestPaths("C")
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]string{{"A", "B", "C"}, {"A", "D", "C"}}, second)

	_, err = cache.ShortestPaths("E")
	require.ErrorIs(t, err, dijkstra.ErrNodeUnreachable)
}

func TestAllPairsShortestPaths(t *testing.T) {
	table, err := dijkstra.AllPairsShortestPaths(squareWithIsolated())
	require.NoError(t, err)

	require.Len(t, table, 5)
	assert.ElementsMatch(t, [][]string{{"A", "B", "C"}, {"A", "D", "C"}}, table["A"]["C"])
	assert.ElementsMatch(t, [][]string{{"B", "A", "D"}, {"B", "C", "D"}}, table["B"]["D"])
	assert.Equal(t, [][]string{{"E"}}, table["E"]["E"])
	assert.NotContains(t, table["A"], "E")
	assert.Len(t, table["E"], 1)
}

func TestAllPairsShortestPaths_Errors(t *testing.T) {
	_, err := dijkstra.AllPairsShortestPaths[string, int](nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := graph.New[string, int]()
	g.AddEdge("A", "B", -1)
	_, err = dijkstra.AllPairsShortestPaths(g)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}
