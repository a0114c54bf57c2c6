package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/roadtrip/bfs"
	"github.com/katalvlaran/roadtrip/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_WeightsIgnored checks that hop count, not border length, drives BFS.
func TestBFS_WeightsIgnored(t *testing.T) {
	// A-B is long (900) but one hop; A-C-B is short (2) but two hops.
	g := core.NewGraph()
	g.SetEdge("A", "B", 900)
	g.SetEdge("A", "C", 1)
	g.SetEdge("C", "B", 1)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo("B")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(B) = %v; want %v", path, want)
	}
	if res.Depth["C"] != 1 {
		t.Errorf("Depth[C] = %d; want 1", res.Depth["C"])
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	g.SetEdge("X", "Y", 1)
	g.SetEdge("P", "Q", 1)

	res, err := bfs.BFS(g, "X")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", res.Order)
	}
	if _, err := res.PathTo("Q"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(Q): want ErrNoPath, got %v", err)
	}
}

// TestBFS_MaxDepthAndTarget covers depth limiting and early stop.
func TestBFS_MaxDepthAndTarget(t *testing.T) {
	g := core.NewGraph()
	g.SetEdge("A", "B", 1)
	g.SetEdge("B", "C", 1)
	g.SetEdge("C", "D", 1)

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth(1) order = %v; want [A B]", res.Order)
	}

	res, err = bfs.BFS(g, "A", bfs.WithTarget("C"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("Target(C) order = %v; want [A B C]", res.Order)
	}
	if _, reached := res.Depth["D"]; reached {
		t.Errorf("D must not be discovered after stopping at C")
	}
}

// TestBFS_SelfPath: start equals destination.
func TestBFS_SelfPath(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("ISL")
	res, err := bfs.BFS(g, "ISL")
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo("ISL")
	if err != nil || !reflect.DeepEqual(path, []string{"ISL"}) {
		t.Errorf("PathTo(ISL) = %v, %v; want [ISL]", path, err)
	}
}
