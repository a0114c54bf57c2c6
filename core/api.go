// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade: Stats snapshot and the canonical
//       text dump used to compare graphs byte for byte.
// Policy:
//   - No algorithms or hidden state here.
//   - Every output is deterministic for a fixed graph state.

package core

import (
	"bufio"
	"io"
	"strconv"
)

// GraphStats is a snapshot of a Graph's size and weight totals.
type GraphStats struct {
	VertexCount   int   // number of vertices
	EdgeCount     int   // number of edges
	IsolatedCount int   // vertices without any incident edge
	TotalWeight   int64 // sum of all edge weights
}

// Stats produces a read-only snapshot of counts and weights.
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for _, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			stats.IsolatedCount++
		}
	}
	for _, e := range g.edges {
		stats.TotalWeight += e.Weight
	}

	return &stats
}

// WriteTo writes the canonical text form of g to w: one "V <id>" line per
// vertex in ID order, then one "E <from> <to> <weight>" line per edge in
// creation order. Two graphs built from the same input produce identical bytes.
//
// WriteTo implements io.WriterTo.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	for _, id := range g.Vertices() {
		bw.WriteString("V ")
		bw.WriteString(id)
		bw.WriteByte('\n')
	}
	for _, e := range g.Edges() {
		bw.WriteString("E ")
		bw.WriteString(e.From)
		bw.WriteByte(' ')
		bw.WriteString(e.To)
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatInt(e.Weight, 10))
		bw.WriteByte('\n')
	}
	err := bw.Flush()

	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
