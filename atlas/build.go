package atlas

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/roadtrip/core"
	"github.com/katalvlaran/roadtrip/identity"
	"github.com/katalvlaran/roadtrip/records"
)

// Build merges the parsed tables into an Atlas keyed by identifiers.
//
// Borders: every country key and neighbor name is rewritten through the
// registry; names that do not resolve keep their free-text form (dangling
// vertices, never dropped). Entries are applied in file order and the border
// graph is undirected, so "A = B n" also connects B to A. When a pair is
// declared again with another length (two names for one country, or both
// sides of a border listing it) the merge policy decides, and the conflict
// is recorded. A country with no neighbors becomes a vertex without edges.
//
// Capitals: rows are keyed "A-B" as read; a repeated key keeps the later
// row. The capital graph holds the same pairs, undirected.
func Build(borders *records.BorderTable, capitals *records.CapitalTable, reg *identity.Registry, opts ...Option) (*Atlas, error) {
	o := newOptions(opts)
	a := &Atlas{
		Countries:    reg,
		Borders:      core.NewGraph(),
		Capitals:     core.NewGraph(),
		capitalTable: make(map[records.PairKey]int64),
	}

	res := identity.NewResolver(reg)
	if err := a.buildBorders(borders, res, o); err != nil {
		return nil, err
	}
	if err := a.buildCapitals(capitals, o); err != nil {
		return nil, err
	}
	a.Diagnostics.Unresolved = res.Unresolved()

	if n := len(a.Diagnostics.Unresolved); n > 0 {
		o.logger.Warn("border names kept their free-text key",
			slog.Int("count", n),
			slog.Any("names", a.Diagnostics.Unresolved))
	}

	return a, nil
}

func (a *Atlas) buildBorders(t *records.BorderTable, res *identity.Resolver, o options) error {
	if t == nil {
		return nil
	}
	sources := make(map[string][]string)
	noteSource := func(id, name string) {
		for _, s := range sources[id] {
			if s == name {
				return
			}
		}
		sources[id] = append(sources[id], name)
	}

	for _, entry := range t.Entries {
		country := res.ResolveOrKeep(entry.Country)
		noteSource(country, entry.Country)
		if err := a.Borders.AddVertex(country); err != nil {
			return fmt.Errorf("atlas: line %d: %w", entry.Line, err)
		}

		for _, nb := range entry.Neighbors {
			neighbor := res.ResolveOrKeep(nb.Name)
			noteSource(neighbor, nb.Name)
			if neighbor == country {
				a.Diagnostics.SelfBorders = append(a.Diagnostics.SelfBorders,
					fmt.Sprintf("%s: %s", entry.Country, nb.Name))
				continue
			}
			if err := a.setEdge(a.Borders, RelationBorders, country, neighbor, nb.Length, entry.Line, o); err != nil {
				return err
			}
		}
	}

	for id, names := range sources {
		if len(names) < 2 {
			continue
		}
		if a.Diagnostics.MergedNames == nil {
			a.Diagnostics.MergedNames = make(map[string][]string)
		}
		sort.Strings(names)
		a.Diagnostics.MergedNames[id] = names
	}

	return nil
}

func (a *Atlas) buildCapitals(t *records.CapitalTable, o options) error {
	if t == nil {
		return nil
	}
	unknown := make(map[string]struct{})
	for _, row := range t.Rows {
		a.capitalTable[row.Key] = row.Km
		for _, code := range []string{row.Key.A, row.Key.B} {
			if !a.Countries.Has(code) {
				unknown[code] = struct{}{}
			}
		}
		if row.Key.A == row.Key.B {
			continue
		}
		if err := a.setEdge(a.Capitals, RelationCapitals, row.Key.A, row.Key.B, row.Km, row.Line, o); err != nil {
			return err
		}
	}
	for code := range unknown {
		a.Diagnostics.UnknownCapitalCodes = append(a.Diagnostics.UnknownCapitalCodes, code)
	}
	sort.Strings(a.Diagnostics.UnknownCapitalCodes)

	return nil
}

// setEdge applies the merge policy to a (re)declared pair.
func (a *Atlas) setEdge(g *core.Graph, rel Relation, from, to string, w int64, line int, o options) error {
	kept := w
	if prev, err := g.Weight(from, to); err == nil && prev != w {
		kept = o.policy(prev, w)
		c := Conflict{Relation: rel, A: from, B: to, Previous: prev, Declared: w, Kept: kept, Line: line}
		a.Diagnostics.Conflicts = append(a.Diagnostics.Conflicts, c)
		o.logger.Debug("pair declared twice with different weights",
			slog.String("relation", string(rel)),
			slog.String("a", from),
			slog.String("b", to),
			slog.Int64("previous", prev),
			slog.Int64("declared", w),
			slog.Int64("kept", kept),
			slog.Int("line", line))
	}
	if _, _, _, err := g.SetEdge(from, to, kept); err != nil {
		return fmt.Errorf("atlas: %s line %d %s-%s: %w", rel, line, from, to, err)
	}

	return nil
}
