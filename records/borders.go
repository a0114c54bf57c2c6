package records

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Neighbor is one "NAME LENGTH" entry on the right side of a borders line.
type Neighbor struct {
	Name   string
	Length int64 // border length in km, always >= 0
}

// BorderEntry is one parsed borders line. Names are free text as found in
// the file, with parenthetical aliases removed.
type BorderEntry struct {
	Line      int
	Country   string
	Neighbors []Neighbor
}

// BorderTable is the raw borders relation in file order.
type BorderTable struct {
	Entries []BorderEntry
	Report  Report
}

// parenthetical matches "(alias)" groups together with leading blanks.
var parenthetical = regexp.MustCompile(`\s*\([^)]*\)`)

// StripAlias removes parenthetical aliases from a country name and trims it:
// "Burma (Myanmar)" → "Burma".
func StripAlias(name string) string {
	return strings.TrimSpace(parenthetical.ReplaceAllString(name, ""))
}

// LoadBorders reads the borders file at path.
func LoadBorders(path string, opts ...Option) (*BorderTable, error) {
	var t *BorderTable
	err := withFile(SourceBorders, path, func(r io.Reader) error {
		var err error
		t, err = ParseBorders(r, opts...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

// ParseBorders parses lines of the form
//
//	COUNTRY = NEIGHBOR1 LEN1 km; NEIGHBOR2 LEN2 km; ...
//
// A line with no "=" or an empty right side yields an entry without
// neighbors. A neighbor whose trailing token is not a run of digits (an
// optional "km" unit and "," thousands separators are accepted), or whose
// length exceeds MaxKm, is dropped and reported; the rest of the line is
// kept.
//
// The only error is a read failure of r.
func ParseBorders(r io.Reader, opts ...Option) (*BorderTable, error) {
	o := newOptions(opts)
	t := &BorderTable{Report: Report{Source: SourceBorders}}

	sc := newLineScanner(r)
	for n := 1; sc.Scan(); n++ {
		raw := sc.Text()
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		t.Report.Lines++

		left, right, _ := strings.Cut(line, "=")
		country := StripAlias(left)
		if country == "" {
			o.skip(&t.Report, Malformed{Line: n, Text: raw, Reason: "missing country name"})
			continue
		}

		entry := BorderEntry{Line: n, Country: country}
		for _, part := range strings.Split(right, ";") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			nb, err := parseNeighbor(part)
			if err != nil {
				o.skip(&t.Report, Malformed{Line: n, Text: part, Reason: err.Error()})
				continue
			}
			entry.Neighbors = append(entry.Neighbors, nb)
		}
		t.Entries = append(t.Entries, entry)
		t.Report.Accepted++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFatalIO, err)
	}

	return t, nil
}

// parseNeighbor splits "Name With Spaces 1,234 km" into name and length.
func parseNeighbor(s string) (Neighbor, error) {
	fields := strings.Fields(s)
	if n := len(fields); n > 0 && strings.EqualFold(fields[n-1], "km") {
		fields = fields[:n-1]
	}
	if len(fields) < 2 {
		return Neighbor{}, fmt.Errorf("missing border length")
	}

	digits := strings.ReplaceAll(fields[len(fields)-1], ",", "")
	if !isDigits(digits) {
		return Neighbor{}, fmt.Errorf("border length is not a non-negative integer")
	}
	length, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || length > MaxKm {
		return Neighbor{}, fmt.Errorf("border length out of range")
	}

	name := StripAlias(strings.Join(fields[:len(fields)-1], " "))
	if name == "" {
		return Neighbor{}, fmt.Errorf("missing neighbor name")
	}

	return Neighbor{Name: name, Length: length}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
