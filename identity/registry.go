package identity

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/katalvlaran/roadtrip/records"
)

// Record is the resolved identity of one country: its identifier, the
// display name of its most recent validity period, and that period.
type Record struct {
	ID    string
	Name  string
	Start time.Time
	End   time.Time
}

// nameEntry is one name index slot; the latest end date owns the name.
type nameEntry struct {
	id  string
	end time.Time
}

// Registry maps identifiers to records and free-text names to identifiers.
// It is immutable once NewRegistry returns and safe for concurrent reads.
type Registry struct {
	byID    map[string]Record
	byName  map[string]nameEntry
	aliases map[string]string // normalized alias → ID
}

// Option configures NewRegistry.
type Option func(*registryOptions)

type registryOptions struct {
	aliases Aliases
	logger  *slog.Logger
}

// WithAliases adds an alias table consulted after the display names.
func WithAliases(a Aliases) Option {
	return func(o *registryOptions) { o.aliases = a }
}

// WithLogger routes registry diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *registryOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewRegistry builds the registry from country name rows.
//
// When several rows share an identifier, the row with the latest end date
// supplies the display name; on equal end dates the later row wins. Every
// name any row carried is indexed, and a name shared by several identifiers
// belongs to the one whose row ends last.
//
// Aliases pointing at identifiers absent from rows are ignored.
func NewRegistry(rows []records.StateRow, opts ...Option) *Registry {
	o := registryOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		byID:    make(map[string]Record, len(rows)),
		byName:  make(map[string]nameEntry, len(rows)),
		aliases: make(map[string]string, len(o.aliases)),
	}
	for _, row := range rows {
		if cur, ok := r.byID[row.ID]; !ok || !row.End.Before(cur.End) {
			if ok {
				o.logger.Debug("newer country name supersedes older",
					slog.String("id", row.ID),
					slog.String("old", cur.Name),
					slog.String("new", row.Name))
			}
			r.byID[row.ID] = Record{ID: row.ID, Name: row.Name, Start: row.Start, End: row.End}
		}

		key := normalize(row.Name)
		if cur, ok := r.byName[key]; !ok || !row.End.Before(cur.end) {
			r.byName[key] = nameEntry{id: row.ID, end: row.End}
		}
	}

	// Deterministic order so a duplicated normalized alias resolves the same
	// way on every run.
	names := make([]string, 0, len(o.aliases))
	for name := range o.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		id := o.aliases[name]
		if _, ok := r.byID[id]; !ok {
			o.logger.Debug("alias targets unknown identifier", slog.String("alias", name), slog.String("id", id))
			continue
		}
		r.aliases[normalize(name)] = id
	}

	return r
}

// Resolve maps free text to a canonical identifier. It tries, in order: the
// text as an identifier, the display-name index (case-insensitive,
// parenthetical aliases ignored), then the alias table.
func (r *Registry) Resolve(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if _, ok := r.byID[trimmed]; ok {
		return trimmed, true
	}
	key := normalize(trimmed)
	if e, ok := r.byName[key]; ok {
		return e.id, true
	}
	if id, ok := r.aliases[key]; ok {
		return id, true
	}

	return "", false
}

// Has reports whether id is a known identifier.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Name returns the current display name of id.
func (r *Registry) Name(id string) (string, bool) {
	rec, ok := r.byID[id]
	return rec.Name, ok
}

// Record returns the resolved record of id.
func (r *Registry) Record(id string) (Record, bool) {
	rec, ok := r.byID[id]
	return rec, ok
}

// IDs returns every identifier, sorted.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.byID))
	for id := range r.byID {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Len returns the number of identifiers.
func (r *Registry) Len() int { return len(r.byID) }
