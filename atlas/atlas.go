package atlas

import (
	"fmt"
	"io"

	"github.com/katalvlaran/roadtrip/records"
)

// CapitalDistance looks a pair up in the capital-distance table, trying the
// key "a-b" first and "b-a" second. It does no path search.
func (a *Atlas) CapitalDistance(from, to string) (int64, bool) {
	k := records.PairKey{A: from, B: to}
	if km, ok := a.capitalTable[k]; ok {
		return km, true
	}
	km, ok := a.capitalTable[k.Reverse()]

	return km, ok
}

// CapitalPairs returns the number of distinct keys in the capital table.
func (a *Atlas) CapitalPairs() int { return len(a.capitalTable) }

// WriteTo writes the canonical text form of both relations. Building the
// same inputs twice yields identical bytes.
func (a *Atlas) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, part := range []struct {
		title string
		g     io.WriterTo
	}{
		{"# borders\n", a.Borders},
		{"# capitals\n", a.Capitals},
	} {
		n, err := io.WriteString(w, part.title)
		total += int64(n)
		if err != nil {
			return total, err
		}
		m, err := part.g.WriteTo(w)
		total += m
		if err != nil {
			return total, fmt.Errorf("atlas: dump: %w", err)
		}
	}

	return total, nil
}
