package records

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the date format of the country name file.
const DateLayout = "2006-01-02"

// StateRow is one accepted row of the country name file.
type StateRow struct {
	Line      int
	DatasetID int
	ID        string
	Name      string
	Start     time.Time // zero when the start date is absent
	End       time.Time
}

// StateTable holds the country name rows in file order. Duplicated
// identifiers are kept; picking the latest is the resolver's job.
type StateTable struct {
	Rows   []StateRow
	Report Report
}

// LoadStateNames reads the tab-separated country name file at path.
func LoadStateNames(path string, opts ...Option) (*StateTable, error) {
	var t *StateTable
	err := withFile(SourceStateNames, path, func(r io.Reader) error {
		var err error
		t, err = ParseStateNames(r, opts...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

// ParseStateNames parses tab-separated rows
//
//	dataset-id <TAB> identifier <TAB> display-name <TAB> start-date <TAB> end-date
//
// A leading header row (first field not numeric), blank lines and "#"
// comments are ignored. Rows with fewer than five fields, an empty
// identifier or name, an unparseable end date, or a start date that is
// present but unparseable are skipped entirely and reported. An empty start
// date is kept as the zero time.
//
// The only error is a read failure of r.
func ParseStateNames(r io.Reader, opts ...Option) (*StateTable, error) {
	o := newOptions(opts)
	t := &StateTable{Report: Report{Source: SourceStateNames}}

	sc := newLineScanner(r)
	first := true
	for n := 1; sc.Scan(); n++ {
		raw := sc.Text()
		line := strings.TrimRight(raw, "\r\n")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		dataset, dsErr := strconv.Atoi(strings.TrimSpace(fields[0]))
		if first {
			first = false
			if dsErr != nil {
				continue // header
			}
		}
		t.Report.Lines++

		row, reason := stateRow(fields)
		if reason != "" {
			o.skip(&t.Report, Malformed{Line: n, Text: raw, Reason: reason})
			continue
		}
		row.Line = n
		row.DatasetID = dataset
		t.Rows = append(t.Rows, row)
		t.Report.Accepted++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFatalIO, err)
	}

	return t, nil
}

func stateRow(fields []string) (StateRow, string) {
	if len(fields) < 5 {
		return StateRow{}, "expected 5 tab-separated fields"
	}
	id := strings.TrimSpace(fields[1])
	name := strings.TrimSpace(fields[2])
	if id == "" {
		return StateRow{}, "missing identifier"
	}
	if name == "" {
		return StateRow{}, "missing display name"
	}
	end, err := time.Parse(DateLayout, strings.TrimSpace(fields[4]))
	if err != nil {
		return StateRow{}, "unparseable end date"
	}
	var start time.Time
	if raw := strings.TrimSpace(fields[3]); raw != "" {
		if start, err = time.Parse(DateLayout, raw); err != nil {
			return StateRow{}, "unparseable start date"
		}
	}

	return StateRow{ID: id, Name: name, Start: start, End: end}, ""
}
