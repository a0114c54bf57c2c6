package core_test

import (
	"fmt"

	"github.com/katalvlaran/roadtrip/core"
)

// ExampleGraph demonstrates building a small border graph and querying it.
func ExampleGraph() {
	g := core.NewGraph()

	// Borders are undirected: declaring FRA-ESP once connects both ways.
	g.SetEdge("FRA", "ESP", 623)
	g.SetEdge("FRA", "DEU", 451)
	// An island has no borders but is still a country.
	g.AddVertex("ISL")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("ESP borders FRA?", g.HasEdge("ESP", "FRA"))
	nbrs, _ := g.NeighborIDs("FRA")
	fmt.Println("FRA neighbors:", nbrs)

	// Output:
	// Vertices: [DEU ESP FRA ISL]
	// ESP borders FRA? true
	// FRA neighbors: [DEU ESP]
}

// ExampleGraph_SetEdge shows the last-write-wins upsert.
func ExampleGraph_SetEdge() {
	g := core.NewGraph()
	g.SetEdge("FRA", "ESP", 623)
	_, prev, replaced, _ := g.SetEdge("ESP", "FRA", 646)
	w, _ := g.Weight("FRA", "ESP")
	fmt.Println(prev, replaced, w)

	// Output:
	// 623 true 646
}
