package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/graph"
)

// TestAddEdge_RegistersBothEndpoints checks that a destination without
// outgoing edges still shows up in the node universe.
func TestAddEdge_RegistersBothEndpoints(t *testing.T) {
	g := graph.New[string, int]()
	g.AddEdge("A", "B", 3)

	require.True(t, g.HasNode("A"))
	require.True(t, g.HasNode("B"))
	assert.Equal(t, []string{"A", "B"}, g.Nodes())
	assert.Empty(t, g.Edges("B"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_ParallelEdgesAreKept(t *testing.T) {
	g := graph.New[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "B", 7)

	edges := g.Edges("A")
	require.Len(t, edges, 3)
	assert.Equal(t, []graph.Edge[string, int]{
		{To: "B", Weight: 1},
		{To: "B", Weight: 1},
		{To: "B", Weight: 7},
	}, edges)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestAddNode_IsIdempotent(t *testing.T) {
	g := graph.New[int, float64]()
	g.AddNode(4)
	g.AddNode(4)
	g.AddEdge(1, 4, 0.5)

	assert.Equal(t, []int{4, 1}, g.Nodes())
	assert.Equal(t, 2, g.NodeCount())
	assert.False(t, g.HasNode(9))
}

func TestAddUndirectedEdge(t *testing.T) {
	g := graph.New[string, int64]()
	g.AddUndirectedEdge("X", "Y", 2)

	assert.Equal(t, []graph.Edge[string, int64]{{To: "Y", Weight: 2}}, g.Edges("X"))
	assert.Equal(t, []graph.Edge[string, int64]{{To: "X", Weight: 2}}, g.Edges("Y"))
	assert.Equal(t, 2, g.EdgeCount())
}

// TestEdges_ReturnsCopy ensures callers cannot corrupt the adjacency list.
func TestEdges_ReturnsCopy(t *testing.T) {
	g := graph.New[string, int]()
	g.AddEdge("A", "B", 1)

	edges := g.Edges("A")
	edges[0].Weight = 100

	assert.Equal(t, 1, g.Edges("A")[0].Weight)
}

func TestNodes_ReturnsCopy(t *testing.T) {
	g := graph.New[string, int]()
	g.AddEdge("A", "B", 1)

	nodes := g.Nodes()
	nodes[0] = "Z"

	assert.Equal(t, []string{"A", "B"}, g.Nodes())
}

func TestOut_IteratesInInsertionOrder(t *testing.T) {
	type cell struct{ R, C int }

	g := graph.New[cell, uint32]()
	g.AddEdge(cell{0, 0}, cell{0, 1}, 1)
	g.AddEdge(cell{0, 0}, cell{1, 0}, 1000)
	g.AddEdge(cell{0, 0}, cell{0, 1}, 2)

	var got []graph.Edge[cell, uint32]
	for to, w := range g.Out(cell{0, 0}) {
		got = append(got, graph.Edge[cell, uint32]{To: to, Weight: w})
	}
	assert.Equal(t, g.Edges(cell{0, 0}), got)

	// Early break must be honoured.
	n := 0
	for range g.Out(cell{0, 0}) {
		n++
		break
	}
	assert.Equal(t, 1, n)

	// Unknown nodes yield nothing.
	for range g.Out(cell{5, 5}) {
		t.Fatal("unexpected edge from unknown node")
	}
}
