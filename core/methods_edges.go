// File: methods_edges.go
// Role: Edge lifecycle & queries: SetEdge/Weight/HasEdge/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by creation order (numeric part of Edge.ID).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// SetEdge connects from and to with the given weight, creating missing
// endpoints. If the pair is already connected (in either orientation) the
// existing edge keeps its ID and orientation and its weight is overwritten:
// the last write wins.
//
// Returns the edge ID, and previous/replaced describing an overwrite.
//
// Errors:
//   - ErrEmptyVertexID: if from or to is "".
//   - ErrNegativeWeight: if weight < 0.
//   - ErrLoopNotAllowed: if from == to.
//
// Complexity: O(1) amortized.
func (g *Graph) SetEdge(from, to string, weight int64) (eid string, previous int64, replaced bool, err error) {
	if from == "" || to == "" {
		return "", 0, false, ErrEmptyVertexID
	}
	if weight < 0 {
		return "", 0, false, ErrNegativeWeight
	}
	if from == to {
		return "", 0, false, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if e, ok := g.adjacency[from][to]; ok {
		previous = e.Weight
		e.Weight = weight

		return e.ID, previous, true, nil
	}

	e := &Edge{ID: nextEdgeID(g), From: from, To: to, Weight: weight}
	g.edges[e.ID] = e
	g.adjacency[from][to] = e
	g.adjacency[to][from] = e

	return e.ID, 0, false, nil
}

// HasEdge reports whether from and to are connected (orientation-free).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of the edge between from and to.
//
// Errors:
//   - ErrEdgeNotFound: the pair is not connected.
//
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.adjacency[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return e.Weight, nil
}

// Edges returns copies of all edges in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID.
// Uses a monotonic counter, so IDs reflect insertion order.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq extracts the numeric sequence from an ID produced by nextEdgeID.
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)

	return n
}
