package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures a traversal.
type Option func(*DFSOptions)

// DFSOptions holds the traversal parameters.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a vertex is discovered (pre-order).
	// Returning an error aborts the traversal with that error.
	OnVisit func(id string) error

	// FullTraversal restarts from every unvisited vertex in ID order, so the
	// whole graph is covered even when it is disconnected.
	FullTraversal bool
}

// DefaultOptions returns options with a background context and no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit sets the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithFullTraversal covers every component instead of only the start's.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult holds the outcome of a traversal.
type DFSResult struct {
	// Order lists vertices in finish (post-order) sequence.
	Order []string
	// Depth is the tree depth of each visited vertex; roots are 0.
	Depth map[string]int
	// Parent maps each non-root vertex to its DFS-tree parent.
	Parent map[string]string
	// Visited marks every vertex reached.
	Visited map[string]bool
	// Roots lists the vertex each tree was started from, in order.
	Roots []string
}
