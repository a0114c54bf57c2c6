// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - Neighbors() and NeighborIDs() are ordered by neighbor ID ascending.
//   - AdjacencyList() slices are sorted; the returned map is a fresh copy.
// Concurrency:
//   - Read operations hold the mu read lock.

package core

import "sort"

// Neighbors returns the edges incident to id, ordered by the opposite
// endpoint's ID ascending. Use (*Edge).Other(id) to read the neighbor.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(nbrs))
	for _, e := range nbrs {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Other(id) < out[j].Other(id) })

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
// Errors are propagated from Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.Other(id)
	}

	return out, nil
}

// AdjacencyList returns vertex ID → sorted neighbor IDs for every vertex,
// isolated vertices included with an empty slice.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string][]string, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		ids := make([]string, 0, len(nbrs))
		for nbr := range nbrs {
			ids = append(ids, nbr)
		}
		sort.Strings(ids)
		out[id] = ids
	}

	return out
}
