// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// A vertex with no edges is a legitimate state: a country whose borders line
// lists no neighbors is still a node of the graph.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id and its adjacency bucket. Caller holds mu.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]*Edge)
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of distinct neighbors of id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}
