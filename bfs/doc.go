// Package bfs answers "fewest border crossings" questions over the border
// graph: a breadth-first search from a start vertex that records the visit
// order, hop depth and BFS-tree parent of every reached vertex.
//
// Determinism
//
//	core.Graph.NeighborIDs returns IDs sorted ascending and BFS enqueues
//	neighbors in that order, so the visit sequence and parent links are
//	fully reproducible.
//
// Options
//
//   - WithMaxDepth(d): do not enqueue vertices deeper than d (0 = unlimited).
//   - WithTarget(id):  stop once id is dequeued.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log E) (neighbor lists are sorted)
//   - Memory: O(V)
package bfs
