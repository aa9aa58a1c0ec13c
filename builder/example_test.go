package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/clique"
)

func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(3)},
		builder.Cycle(4),
		builder.Isolated("E"),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Nodes(), g.EdgeCount())
	for v, w := range g.Out("A") {
		fmt.Printf("A→%s (%d)\n", v, w)
	}
	// Output:
	// [A B C D E] 8
	// A→B (3)
	// A→D (3)
}

func ExampleBuildRelation() {
	rel, err := builder.BuildRelation(nil, builder.Wheel(5))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range clique.New(rel).MaximalCliques() {
		fmt.Println(len(c))
	}
	// Output:
	// 3
	// 3
	// 3
	// 3
}
