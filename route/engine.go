// SPDX-License-Identifier: MIT

package route

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/roadtrip/atlas"
	"github.com/katalvlaran/roadtrip/bfs"
	"github.com/katalvlaran/roadtrip/dijkstra"
)

// Engine answers distance and path queries over an Atlas.
//
// An Engine holds no per-query state: every call builds its own distance,
// predecessor and frontier maps from the immutable Atlas, so one Engine may
// be used from several goroutines at once.
type Engine struct {
	atlas *atlas.Atlas
}

// New returns an Engine over a. The Atlas must not be modified afterwards.
func New(a *atlas.Atlas) *Engine {
	return &Engine{atlas: a}
}

// Atlas returns the data the engine queries.
func (e *Engine) Atlas() *atlas.Atlas { return e.atlas }

// Known reports whether id is in the country registry.
func (e *Engine) Known(id string) bool {
	return e.atlas.Countries.Has(id)
}

func (e *Engine) validate(ids ...string) error {
	for _, id := range ids {
		if !e.Known(id) {
			return fmt.Errorf("%w: %q", ErrUnknownCountry, id)
		}
	}

	return nil
}

// Distance returns the capital-to-capital distance between a and b in km.
//
// The capital table is consulted first under "a-b", then "b-a". When
// neither key exists the shortest chain of known capital distances is used.
// Distance(a, a) is 0. ErrUnknownCountry is returned when a or b is not a
// registered identifier and ErrNotFound when nothing connects them.
func (e *Engine) Distance(a, b string) (int64, error) {
	if err := e.validate(a, b); err != nil {
		return 0, err
	}
	if a == b {
		return 0, nil
	}
	if km, ok := e.atlas.CapitalDistance(a, b); ok {
		return km, nil
	}

	caps := e.atlas.Capitals
	if !caps.HasVertex(a) || !caps.HasVertex(b) {
		return 0, fmt.Errorf("%w: %s-%s", ErrNotFound, a, b)
	}
	path, km, err := dijkstra.ShortestPath(caps, a, b)
	if err != nil {
		return 0, fmt.Errorf("route: capital search %s-%s: %w", a, b, err)
	}
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: %s-%s", ErrNotFound, a, b)
	}

	return km, nil
}

// FindPath returns the route with the least total border length from a to
// b, endpoints included.
//
// FindPath(a, a) is []string{a}. When b cannot be reached the result is an
// empty, non-nil slice and a nil error; ErrUnknownCountry is kept for
// identifiers missing from the registry so the two cases stay distinct.
func (e *Engine) FindPath(a, b string) ([]string, error) {
	path, _, err := e.shortest(a, b)
	return path, err
}

func (e *Engine) shortest(a, b string) ([]string, int64, error) {
	if err := e.validate(a, b); err != nil {
		return nil, 0, err
	}
	if a == b {
		return []string{a}, 0, nil
	}

	g := e.atlas.Borders
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return []string{}, 0, nil
	}
	path, km, err := dijkstra.ShortestPath(g, a, b)
	if err != nil {
		return nil, 0, fmt.Errorf("route: border search %s-%s: %w", a, b, err)
	}
	if len(path) == 0 {
		return path, 0, nil
	}

	return path, km, nil
}

// FewestCrossings returns a route from a to b with the fewest border
// crossings, ignoring border lengths. Among routes of equal hop count the
// one through lower identifiers is chosen. The result follows the FindPath
// conventions.
func (e *Engine) FewestCrossings(a, b string) ([]string, error) {
	if err := e.validate(a, b); err != nil {
		return nil, err
	}
	if a == b {
		return []string{a}, nil
	}
	g := e.atlas.Borders
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return []string{}, nil
	}

	res, err := bfs.BFS(g, a, bfs.WithTarget(b))
	if err != nil {
		return nil, fmt.Errorf("route: crossing search %s-%s: %w", a, b, err)
	}
	path, err := res.PathTo(b)
	if errors.Is(err, bfs.ErrNoPath) {
		return []string{}, nil
	}

	return path, err
}

// Reach is a country reachable over land and the fewest crossings needed to
// get there.
type Reach struct {
	ID        string
	Crossings int
}

// Reachable lists the countries that can be reached from id with at most
// maxCrossings border crossings, ordered by crossings and then identifier.
// id itself is not listed. A maxCrossings of 0 means no limit, so the whole
// land mass of id is returned; a negative value fails with an error matching
// bfs.ErrOptionViolation.
//
// Dangling border names are reachable like any other vertex.
func (e *Engine) Reachable(id string, maxCrossings int) ([]Reach, error) {
	if err := e.validate(id); err != nil {
		return nil, err
	}
	g := e.atlas.Borders
	if !g.HasVertex(id) {
		if maxCrossings < 0 {
			return nil, fmt.Errorf("route: reach from %s: %w", id, bfs.ErrOptionViolation)
		}
		return []Reach{}, nil
	}

	res, err := bfs.BFS(g, id, bfs.WithMaxDepth(maxCrossings))
	if err != nil {
		return nil, fmt.Errorf("route: reach from %s: %w", id, err)
	}
	out := make([]Reach, 0, len(res.Order))
	for _, v := range res.Order {
		if v == id {
			continue
		}
		out = append(out, Reach{ID: v, Crossings: res.Depth[v]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Crossings != out[j].Crossings {
			return out[i].Crossings < out[j].Crossings
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}
