package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PairKey is an ordered pair of identifiers as read from the capital
// distance file. Lookups must also try the reverse key.
type PairKey struct {
	A, B string
}

// String renders the key as "A-B".
func (k PairKey) String() string { return k.A + "-" + k.B }

// Reverse returns the "B-A" key.
func (k PairKey) Reverse() PairKey { return PairKey{A: k.B, B: k.A} }

// CapitalRow is one accepted row of the capital distance file.
type CapitalRow struct {
	Line int
	Key  PairKey
	Km   int64
}

// CapitalTable is the raw capital-distance relation in file order.
type CapitalTable struct {
	Rows   []CapitalRow
	Report Report
}

// Header names of the reference capdist.csv ("numa,ida,numb,idb,kmdist,midist").
const (
	headerCodeA    = "ida"
	headerCodeB    = "idb"
	headerDistance = "kmdist"
)

// Positional layout used when the header does not name the columns:
// idx, codeA, nameA, codeB, nameB, distance.
var defaultCapitalColumns = capitalColumns{a: 1, b: 3, km: 5}

type capitalColumns struct {
	a, b, km int
}

func (c capitalColumns) max() int {
	return max(c.a, c.b, c.km)
}

// LoadCapitals reads the capital distance CSV at path.
func LoadCapitals(path string, opts ...Option) (*CapitalTable, error) {
	var t *CapitalTable
	err := withFile(SourceCapitals, path, func(r io.Reader) error {
		var err error
		t, err = ParseCapitals(r, opts...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

// ParseCapitals parses the capital distance CSV. The first row is a header;
// it is used to locate the code and distance columns and is otherwise
// skipped. Rows with a missing code, or a missing, non-integer, negative or
// out-of-range (> MaxKm) distance are skipped and reported. A header row
// that is not valid CSV is reported and the positional layout is used.
//
// The only error is a read failure of r.
func ParseCapitals(r io.Reader, opts ...Option) (*CapitalTable, error) {
	o := newOptions(opts)
	t := &CapitalTable{Report: Report{Source: SourceCapitals}}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	cols := defaultCapitalColumns
	header := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			t.Report.Lines++
			o.skip(&t.Report, Malformed{Line: perr.StartLine, Text: perr.Err.Error(), Reason: "invalid CSV"})
			header = false
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFatalIO, err)
		}

		line, _ := cr.FieldPos(0)
		if header {
			header = false
			cols = columnsFromHeader(rec)
			continue
		}
		t.Report.Lines++

		row, reason := capitalRow(rec, cols)
		if reason != "" {
			o.skip(&t.Report, Malformed{Line: line, Text: strings.Join(rec, ","), Reason: reason})
			continue
		}
		row.Line = line
		t.Rows = append(t.Rows, row)
		t.Report.Accepted++
	}

	return t, nil
}

// columnsFromHeader locates the code and distance columns by name, falling
// back to the positional layout when any of them is missing.
func columnsFromHeader(rec []string) capitalColumns {
	idx := make(map[string]int, len(rec))
	for i, name := range rec {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	a, okA := idx[headerCodeA]
	b, okB := idx[headerCodeB]
	km, okKm := idx[headerDistance]
	if !okA || !okB || !okKm {
		return defaultCapitalColumns
	}

	return capitalColumns{a: a, b: b, km: km}
}

func capitalRow(rec []string, cols capitalColumns) (CapitalRow, string) {
	if len(rec) <= cols.max() {
		return CapitalRow{}, "missing columns"
	}
	a := strings.TrimSpace(rec[cols.a])
	b := strings.TrimSpace(rec[cols.b])
	if a == "" || b == "" {
		return CapitalRow{}, "missing country code"
	}
	km, err := strconv.ParseInt(strings.TrimSpace(rec[cols.km]), 10, 64)
	if err != nil {
		return CapitalRow{}, "distance is not an integer"
	}
	if km < 0 {
		return CapitalRow{}, "negative distance"
	}
	if km > MaxKm {
		return CapitalRow{}, "distance out of range"
	}

	return CapitalRow{Key: PairKey{A: a, B: b}, Km: km}, ""
}
