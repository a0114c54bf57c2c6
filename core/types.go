// Package core defines the Graph and Edge types that back both the border
// adjacency graph and the capital-distance relation.
//
// This file declares Edge, Graph, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrNegativeWeight - edge weight below zero.
//	ErrLoopNotAllowed - edge from a vertex to itself.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an edge weight below zero. Border lengths and
	// capital distances are kilometres and can never be negative.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself. A country
	// never borders itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected, weighted connection between two vertices.
//
// From and To keep the orientation in which the edge was first declared;
// traversal treats both endpoints symmetrically (see Other).
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the endpoint named first when the edge was created.
	From string

	// To is the endpoint named second when the edge was created.
	To string

	// Weight is the length of the edge in kilometres.
	Weight int64
}

// Other returns the endpoint of e opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Graph is an undirected weighted graph keyed by string vertex IDs.
//
// At most one edge exists per unordered vertex pair; SetEdge on an existing
// pair overwrites its weight. mu protects every map below.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	mu sync.RWMutex

	// Storage
	nextEdgeID uint64              // atomic edge ID generator
	vertices   map[string]struct{} // vertex ID set
	edges      map[string]*Edge    // edge ID → Edge

	// adjacency[u][v] and adjacency[v][u] point at the same *Edge.
	adjacency map[string]map[string]*Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]*Edge),
	}
}
