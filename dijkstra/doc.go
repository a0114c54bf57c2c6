// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// undirected weighted graphs of package core.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to
//     reachable vertices in O((V + E) log V) time.
//   - A min-heap ordered by (distance, vertex ID) always expands the next
//     closest vertex; equal distances are settled in ID order, which makes
//     every result reproducible for a fixed graph.
//   - "Lazy decrease-key": an improved distance pushes a fresh heap entry and
//     stale entries are skipped when popped.
//   - WithTarget stops the search as soon as the destination is settled.
//   - PathTo rebuilds the route from the predecessor map and returns an empty
//     slice, never a partial path, when the destination was not reached.
//
// Each call allocates its own distance, predecessor and frontier state, so
// concurrent calls over a shared, read-only graph are safe.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(
//	    g,
//	    dijkstra.Source("ESP"),
//	    dijkstra.WithTarget("DEU"),
//	    dijkstra.WithReturnPath(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dijkstra.PathTo(prev, "ESP", "DEU"), dist["DEU"])
package dijkstra
