package dfs

import (
	"fmt"

	"github.com/katalvlaran/roadtrip/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from startID, or over every
// component when WithFullTraversal is given (startID is then ignored).
// Neighbors are explored in ID order, so Order is reproducible.
//
// On cancellation or a hook error the partial result is returned with the
// error.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	w := &dfsWalker{graph: g, opts: o, res: &DFSResult{
		Order:   make([]string, 0, len(vertices)),
		Depth:   make(map[string]int, len(vertices)),
		Parent:  make(map[string]string, len(vertices)),
		Visited: make(map[string]bool, len(vertices)),
	}}

	roots := []string{startID}
	if o.FullTraversal {
		roots = vertices
	}
	for _, v := range roots {
		if w.res.Visited[v] {
			continue
		}
		w.res.Roots = append(w.res.Roots, v)
		if err := w.traverse(v, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits id at the given depth and recurses into its neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nid := range nbs {
		if nid == id || w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err := w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	w.res.Order = append(w.res.Order, id)

	return nil
}
