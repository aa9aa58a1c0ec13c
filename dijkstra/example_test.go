// Package dijkstra_test provides runnable examples of the tie-aware search.
package dijkstra_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/graph"
)

// ExampleDijkstra searches a unit-weight square and lists both shortest
// walks to the opposite corner.
func ExampleDijkstra() {
	g := graph.New[string, int]()
	g.AddUndirectedEdge("A", "B", 1)
	g.AddUndirectedEdge("B", "C", 1)
	g.AddUndirectedEdge("C", "D", 1)
	g.AddUndirectedEdge("D", "A", 1)

	res, err := dijkstra.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, _ := res.Distance("C")
	fmt.Println("dist[C] =", d)

	paths, _ := res.ShortestPaths("C")
	slices.SortFunc(paths, slices.Compare[[]string])
	for _, p := range paths {
		fmt.Println(p)
	}
	// Output:
	// dist[C] = 2
	// [A B C]
	// [A D C]
}

// ExampleResult_PathNodes counts the tiles lying on any best route through a
// small maze where turning costs more than stepping.
func ExampleResult_PathNodes() {
	type tile struct{ X, Y int }

	g := graph.New[tile, int]()
	// Two equally cheap lanes from (0,0) to (2,1), one dead end.
	g.AddEdge(tile{0, 0}, tile{1, 0}, 1)
	g.AddEdge(tile{1, 0}, tile{2, 0}, 1)
	g.AddEdge(tile{2, 0}, tile{2, 1}, 1)
	g.AddEdge(tile{0, 0}, tile{0, 1}, 1)
	g.AddEdge(tile{0, 1}, tile{1, 1}, 1)
	g.AddEdge(tile{1, 1}, tile{2, 1}, 1)
	g.AddEdge(tile{0, 1}, tile{0, 2}, 1)

	res, _ := dijkstra.Dijkstra(g, tile{0, 0})
	nodes, _ := res.PathNodes(tile{2, 1})
	fmt.Println(len(nodes))
	// Output: 6
}

// ExampleAllPairsShortestPaths tabulates every best button sequence of a
// tiny directional pad.
func ExampleAllPairsShortestPaths() {
	g := graph.New[rune, int]()
	g.AddUndirectedEdge('^', 'v', 1)
	g.AddUndirectedEdge('<', 'v', 1)
	g.AddUndirectedEdge('v', '>', 1)
	g.AddUndirectedEdge('^', 'A', 1)
	g.AddUndirectedEdge('A', '>', 1)

	table, err := dijkstra.AllPairsShortestPaths(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var out []string
	for _, p := range table['<']['A'] {
		out = append(out, string(p))
	}
	slices.Sort(out)
	fmt.Println(out)
	// Output: [<v>A <v^A]
}
