package route

import (
	"errors"
	"fmt"
)

// Hop is one border crossing of an Itinerary.
type Hop struct {
	From, To string
	// BorderKm is the shared-border length the path search used.
	BorderKm int64
	// CapitalKm is Distance(From, To), or -1 when no distance is known.
	CapitalKm int64
}

// Itinerary is a border route with a per-hop breakdown.
type Itinerary struct {
	From, To string
	Hops     []Hop
	// Total is the summed border length along Hops.
	Total int64
}

// Found reports whether the itinerary connects its endpoints. A route from a
// country to itself is found and has no hops.
func (it *Itinerary) Found() bool {
	return it.From == it.To || len(it.Hops) > 0
}

// Path returns the visited identifiers, endpoints included, or an empty
// slice when the itinerary was not found.
func (it *Itinerary) Path() []string {
	if !it.Found() {
		return []string{}
	}
	path := []string{it.From}
	for _, h := range it.Hops {
		path = append(path, h.To)
	}

	return path
}

// Itinerary runs FindPath and annotates each hop with its border length and
// capital distance. Errors are those of FindPath; an unreachable b yields an
// Itinerary without hops.
func (e *Engine) Itinerary(a, b string) (*Itinerary, error) {
	path, total, err := e.shortest(a, b)
	if err != nil {
		return nil, err
	}

	it := &Itinerary{From: a, To: b, Total: total}
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		border, err := e.atlas.Borders.Weight(from, to)
		if err != nil {
			return nil, fmt.Errorf("route: hop %s-%s: %w", from, to, err)
		}
		capital, err := e.Distance(from, to)
		switch {
		case err == nil:
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnknownCountry):
			// Dangling border names have no registry entry and no capital.
			capital = -1
		default:
			return nil, err
		}
		it.Hops = append(it.Hops, Hop{From: from, To: to, BorderKm: border, CapitalKm: capital})
	}

	return it, nil
}
