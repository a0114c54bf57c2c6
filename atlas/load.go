package atlas

import (
	"log/slog"

	"github.com/katalvlaran/roadtrip/identity"
	"github.com/katalvlaran/roadtrip/records"
)

// Sources are the three input paths, in command-line order.
type Sources struct {
	Borders    string
	Capitals   string
	StateNames string
}

// Load parses the three sources, builds the registry and returns the Atlas.
//
// Any source that cannot be opened or read aborts the load with a
// *records.FileError naming that file; no partial Atlas is returned.
// Malformed records are skipped and summarized in Diagnostics.Reports.
func Load(src Sources, opts ...Option) (*Atlas, error) {
	o := newOptions(opts)

	borders, err := records.LoadBorders(src.Borders, o.parse...)
	if err != nil {
		return nil, err
	}
	capitals, err := records.LoadCapitals(src.Capitals, o.parse...)
	if err != nil {
		return nil, err
	}
	states, err := records.LoadStateNames(src.StateNames, o.parse...)
	if err != nil {
		return nil, err
	}

	reg := identity.NewRegistry(states.Rows,
		identity.WithAliases(o.aliases),
		identity.WithLogger(o.logger))

	a, err := Build(borders, capitals, reg, opts...)
	if err != nil {
		return nil, err
	}
	a.Diagnostics.Reports = []records.Report{borders.Report, capitals.Report, states.Report}
	for _, r := range a.Diagnostics.Reports {
		o.logger.Info("loaded source",
			slog.String("source", string(r.Source)),
			slog.Int("records", r.Accepted),
			slog.Int("skipped", len(r.Skipped)))
	}

	return a, nil
}
