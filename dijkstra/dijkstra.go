// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roadtrip/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to the vertices of g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (Infinity if unreachable).
//   - prev: predecessor map if ReturnPath was requested (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     Vertices never reached have no entry.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Weights are non-negative by construction (core.Graph rejects negative ones).
// Path totals never overflow: an edge that would bring a total to Infinity
// or beyond is not relaxed, so such a vertex is reported unreachable.
// records.MaxKm keeps parsed data far below that bound.
//
// Ties between frontier entries of equal distance are broken by vertex ID
// ascending, and an edge only replaces a predecessor when it is strictly
// shorter, so results are reproducible for a fixed graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, V)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
// Every call builds a fresh runner, so no state survives between queries.
type runner struct {
	g       *core.Graph       // The input graph; read-only within Dijkstra.
	options Options           // Source, Target, ReturnPath.
	dist    map[string]int64  // Vertex ID → current best distance from Source.
	prev    map[string]string // Vertex ID → predecessor on the shortest path.
	visited map[string]bool   // Tracks if a vertex's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist[v] = Infinity everywhere except the source and seeds the heap.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = Infinity
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its
// edges, until the heap is empty or the target has been settled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry left behind by the lazy decrease-key.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if u == r.options.Target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of u.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		// Edges are undirected: the neighbor is whichever endpoint is not u.
		v := e.Other(u)
		if r.visited[v] {
			continue
		}

		// Saturating add: a total that would reach Infinity is unreachable.
		if e.Weight >= Infinity-r.dist[u] {
			continue
		}
		newDist := r.dist[u] + e.Weight
		// Strictly shorter only: the first predecessor found at a given
		// distance is kept.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id) ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex ID for a deterministic tie-break.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
