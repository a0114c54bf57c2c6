// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"sort"

	"github.com/katalvlaran/roadtrip/core"
)

// Components partitions g into connected components, each sorted by ID.
// Components are ordered by size, largest first, then by their smallest ID.
// Two vertices can reach each other over g only if they share a component.
func Components(ctx context.Context, g *core.Graph) ([][]string, error) {
	var (
		comps [][]string
		cur   []string
	)
	collect := func(id string) error {
		cur = append(cur, id)
		return nil
	}

	res, err := DFS(g, "", WithContext(ctx), WithFullTraversal(), WithOnVisit(collect))
	if err != nil {
		return nil, err
	}
	// Roots come in ID order and each tree is visited before the next root,
	// so splitting the visit sequence at every root yields the components.
	idx := make(map[string]int, len(res.Roots))
	for _, r := range res.Roots {
		idx[r] = len(idx)
	}
	comps = make([][]string, len(res.Roots))
	n := -1
	for _, id := range cur {
		if i, ok := idx[id]; ok {
			n = i
		}
		comps[n] = append(comps[n], id)
	}

	for _, c := range comps {
		sort.Strings(c)
	}
	sort.SliceStable(comps, func(i, j int) bool {
		if len(comps[i]) != len(comps[j]) {
			return len(comps[i]) > len(comps[j])
		}
		return comps[i][0] < comps[j][0]
	})

	return comps, nil
}
