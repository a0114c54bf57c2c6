package dijkstra

import "github.com/katalvlaran/roadtrip/core"

// PathTo rebuilds the route from source to target by walking prev backward.
//
// It returns []string{source} when source == target, and an empty (non-nil)
// slice when target was never reached. A partial path is never returned.
func PathTo(prev map[string]string, source, target string) []string {
	if source == target {
		return []string{source}
	}
	if _, ok := prev[target]; !ok {
		return []string{}
	}

	var rev []string
	for step := target; ; {
		rev = append(rev, step)
		if step == source {
			break
		}
		p, ok := prev[step]
		if !ok || len(rev) > len(prev)+1 {
			// Broken chain; cannot happen for a prev map produced by Dijkstra.
			return []string{}
		}
		step = p
	}

	path := make([]string, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path
}

// ShortestPath runs Dijkstra from source, stopping at target, and returns the
// reconstructed path with its total weight. When target is unreachable (or
// absent from g) the path is empty and total is Infinity.
//
// Errors are those of Dijkstra (empty source, nil graph, unknown source).
func ShortestPath(g *core.Graph, source, target string) ([]string, int64, error) {
	dist, prev, err := Dijkstra(g, Source(source), WithTarget(target), WithReturnPath())
	if err != nil {
		return nil, Infinity, err
	}
	path := PathTo(prev, source, target)
	if len(path) == 0 {
		return path, Infinity, nil
	}

	return path, dist[target], nil
}
