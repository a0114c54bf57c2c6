package dfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/roadtrip/core"
	"github.com/katalvlaran/roadtrip/dfs"
)

// ExampleComponents splits a border graph into land masses.
func ExampleComponents() {
	g := core.NewGraph()
	g.SetEdge("FRA", "ESP", 623)
	g.SetEdge("FRA", "DEU", 451)
	g.AddVertex("ISL")

	comps, _ := dfs.Components(context.Background(), g)
	for _, c := range comps {
		fmt.Println(c)
	}

	// Output:
	// [DEU ESP FRA]
	// [ISL]
}
