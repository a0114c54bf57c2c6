package records

import "log/slog"

// Option configures a parser.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes per-record diagnostics (Debug level) to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// skip records m in the report and logs it.
func (o options) skip(r *Report, m Malformed) {
	r.Skipped = append(r.Skipped, m)
	o.logger.Debug("skipping malformed record",
		slog.String("source", string(r.Source)),
		slog.Int("line", m.Line),
		slog.String("reason", m.Reason),
		slog.String("text", m.Text))
}
