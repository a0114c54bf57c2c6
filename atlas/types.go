package atlas

import (
	"log/slog"

	"github.com/katalvlaran/roadtrip/core"
	"github.com/katalvlaran/roadtrip/identity"
	"github.com/katalvlaran/roadtrip/records"
)

// Atlas is the immutable result of the build step: the identity registry,
// the border graph and the capital-distance relation. The two relations
// share only the identifier space; neither is assumed to cover the other.
//
// Nothing mutates an Atlas after Build returns, so it may be shared by any
// number of concurrent readers.
type Atlas struct {
	Countries   *identity.Registry
	Borders     *core.Graph
	Capitals    *core.Graph
	Diagnostics Diagnostics

	capitalTable map[records.PairKey]int64
}

// Diagnostics records what the build repaired, merged or could not resolve.
type Diagnostics struct {
	// Unresolved lists border names that kept their free-text key.
	Unresolved []string
	// MergedNames maps an identifier to the distinct source names that
	// resolved to it, for identifiers reached through more than one name.
	MergedNames map[string][]string
	// Conflicts lists pairs declared more than once with different weights.
	Conflicts []Conflict
	// SelfBorders lists entries whose neighbor resolved to the country itself.
	SelfBorders []string
	// UnknownCapitalCodes lists capital-distance codes absent from the registry.
	UnknownCapitalCodes []string
	// Reports are the parser reports, when the atlas was built by Load.
	Reports []records.Report
}

// Relation names the relation a Conflict occurred in.
type Relation string

// Relations of the atlas.
const (
	RelationBorders  Relation = "borders"
	RelationCapitals Relation = "capitals"
)

// Conflict is a pair declared twice with different weights.
type Conflict struct {
	Relation Relation
	A, B     string
	Previous int64 // weight already stored
	Declared int64 // weight of the later declaration
	Kept     int64 // weight chosen by the merge policy
	Line     int   // source line of the later declaration
}

// MergePolicy picks the weight kept when a pair is declared again.
type MergePolicy func(previous, declared int64) int64

// LastWriteWins keeps the later declaration. It is the default policy.
func LastWriteWins(_, declared int64) int64 { return declared }

// Option configures Build and Load.
type Option func(*options)

type options struct {
	policy  MergePolicy
	logger  *slog.Logger
	aliases identity.Aliases
	parse   []records.Option
}

// WithMergePolicy replaces LastWriteWins.
func WithMergePolicy(p MergePolicy) Option {
	return func(o *options) {
		if p != nil {
			o.policy = p
		}
	}
}

// WithLogger routes build and parse diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
			o.parse = append(o.parse, records.WithLogger(l))
		}
	}
}

// WithAliases sets the alias table used by Load when building the registry.
func WithAliases(a identity.Aliases) Option {
	return func(o *options) { o.aliases = a }
}

func newOptions(opts []Option) options {
	o := options{policy: LastWriteWins, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
