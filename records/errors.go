package records

import (
	"errors"
	"fmt"
)

// Sentinel errors for the record parsers.
var (
	// ErrFatalIO indicates that an input source could not be opened or read.
	// It is always fatal at startup.
	ErrFatalIO = errors.New("records: input unreadable")

	// ErrMalformedRecord classifies a single line or field that failed to
	// parse. Such records are skipped and listed in the Report; this error
	// is never returned by a parser.
	ErrMalformedRecord = errors.New("records: malformed record")
)

// MaxKm bounds every border length and capital distance. Larger values are
// reported as malformed, which keeps sums over any path far below the int64
// range.
const MaxKm int64 = 1 << 40

// Source names the three inputs in errors and logs.
type Source string

// The three input sources, in the order they are passed on the command line.
const (
	SourceBorders    Source = "borders"
	SourceCapitals   Source = "capital distance"
	SourceStateNames Source = "country name"
)

// FileError reports a fatal I/O failure on one input file.
// errors.Is(err, ErrFatalIO) holds for every FileError.
type FileError struct {
	Source Source
	Path   string
	Err    error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("records: cannot read %s file %q: %v", e.Source, e.Path, e.Err)
}

// Unwrap exposes both ErrFatalIO and the underlying cause.
func (e *FileError) Unwrap() []error { return []error{ErrFatalIO, e.Err} }

// Malformed describes one skipped record.
type Malformed struct {
	Line   int    // 1-based line number in the source
	Text   string // the raw line, or the offending entry for border neighbors
	Reason string
}

func (m Malformed) Error() string {
	return fmt.Sprintf("line %d: %s: %q", m.Line, m.Reason, m.Text)
}

// Unwrap makes every Malformed match ErrMalformedRecord.
func (m Malformed) Unwrap() error { return ErrMalformedRecord }

// Report summarizes one parse: how many records were read and which were
// dropped. Skipped is in source order.
type Report struct {
	Source   Source
	Lines    int
	Accepted int
	Skipped  []Malformed
}
