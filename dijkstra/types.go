// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source:     ID of the starting vertex (must be non-empty and present in the graph).
//	– Target:     optional destination; the search stops once it is settled.
//	– ReturnPath: if true, return the predecessor map for path reconstruction.
//
// Errors (sentinel):
//
//	– ErrEmptySource    if the provided source ID is empty.
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrVertexNotFound if the source vertex does not exist in the graph.
package dijkstra

import (
	"errors"
	"math"
)

// Infinity is the distance reported for vertices the search never reached.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source     – starting vertex ID (must be non-empty and present in the graph).
// Target     – if non-empty, stop as soon as Target is extracted from the frontier.
// ReturnPath – if true, return the predecessor map; otherwise prev map is nil.
type Options struct {
	Source     string // The ID of the source vertex
	Target     string // Optional early-exit destination
	ReturnPath bool   // Whether to return the predecessor map
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithTarget makes the search terminate once id is popped from the frontier.
// Distances of vertices not yet settled at that point may be tentative.
// An id absent from the graph is never popped, so the search runs to exhaustion.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns an Options struct for the given source vertex ID
// with no target and no predecessor map.
func DefaultOptions(source string) Options {
	return Options{Source: source}
}
