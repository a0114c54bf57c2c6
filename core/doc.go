// Package core provides the thread-safe, undirected weighted Graph used for
// both relations of the road-trip dataset: shared land borders (weight =
// border length) and capital-to-capital distances (weight = geodesic km).
//
// Model:
//
//   - Vertices are canonical country identifiers ("FRA", "DEU", ...). A vertex
//     may exist without edges (an island, or a country whose borders line
//     lists no neighbors).
//   - At most one edge per unordered vertex pair. adjacency[u][v] and
//     adjacency[v][u] point at the same *Edge.
//   - SetEdge is an upsert: re-declaring a pair overwrites the weight and
//     reports the previous value, so callers can apply and log a
//     last-write-wins merge policy explicitly.
//   - Negative weights (ErrNegativeWeight) and self-loops (ErrLoopNotAllowed)
//     are rejected at insertion.
//   - Edge IDs are monotonic ("e1", "e2", ...), so creation order is observable
//     and stable across identical builds.
//
// Core Methods:
//
//	AddVertex(id string) error                                  // O(1)
//	HasVertex(id string) bool                                   // O(1)
//	SetEdge(from, to string, w int64) (id string, prev int64, replaced bool, err error) // O(1)
//	HasEdge(from, to string) bool                               // O(1)
//	Weight(from, to string) (int64, error)                      // O(1)
//	Neighbors(id string) ([]*Edge, error)                       // O(d·log d), by neighbor ID
//	NeighborIDs(id string) ([]string, error)                    // O(d·log d)
//	AdjacencyList() map[string][]string                         // O(V+E·log E)
//	Vertices() []string                                         // O(V·log V)
//	Edges() []Edge                                              // O(E·log E), creation order
//	Stats() *GraphStats                                         // O(V+E)
//	WriteTo(w io.Writer) (int64, error)                         // canonical dump
//
// Concurrency: a single sync.RWMutex guards all state. Once a graph is
// built it is only read, so any number of queries may share it.
package core
