package identity

import "sort"

// Resolver rewrites free-text names into identifiers during graph
// construction and remembers every name it could not resolve.
//
// The fallback for an unresolved name is the name itself, so construction
// proceeds with a partially resolved dataset. Unresolved exposes what that
// fallback hid. A Resolver is meant for a single, single-goroutine build.
type Resolver struct {
	reg        *Registry
	unresolved map[string]struct{}
}

// NewResolver returns a Resolver backed by reg.
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{reg: reg, unresolved: make(map[string]struct{})}
}

// ResolveOrKeep returns the identifier for name, or name unchanged when it
// cannot be resolved.
func (r *Resolver) ResolveOrKeep(name string) string {
	if id, ok := r.reg.Resolve(name); ok {
		return id
	}
	r.unresolved[name] = struct{}{}

	return name
}

// Unresolved returns the distinct names that fell back to themselves, sorted.
func (r *Resolver) Unresolved() []string {
	out := make([]string, 0, len(r.unresolved))
	for name := range r.unresolved {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
