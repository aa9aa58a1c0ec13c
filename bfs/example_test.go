package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/graph"
)

// ExampleBFS finds the fewest-hop route when two competing routes exist.
func ExampleBFS() {
	g := graph.New[string, int]()
	// A–B–C–D–K (4 hops)
	g.AddUndirectedEdge("A", "B", 1)
	g.AddUndirectedEdge("B", "C", 1)
	g.AddUndirectedEdge("C", "D", 1)
	g.AddUndirectedEdge("D", "K", 1)
	// A–E–F–K (3 hops)
	g.AddUndirectedEdge("A", "E", 1)
	g.AddUndirectedEdge("E", "F", 1)
	g.AddUndirectedEdge("F", "K", 1)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("K")
	fmt.Println(path)
	// Output:
	// [A E F K]
}
