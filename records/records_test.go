package records_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadtrip/records"
)

func TestParseBorders_Basic(t *testing.T) {
	in := "FRA = ESP 623; DEU 451;\n"
	tbl, err := records.ParseBorders(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, tbl.Entries, 1)

	e := tbl.Entries[0]
	assert.Equal(t, "FRA", e.Country)
	assert.Equal(t, []records.Neighbor{{Name: "ESP", Length: 623}, {Name: "DEU", Length: 451}}, e.Neighbors)
	assert.Empty(t, tbl.Report.Skipped)
}

func TestParseBorders_RealFormat(t *testing.T) {
	in := strings.Join([]string{
		"Argentina = Bolivia 942 km; Brazil 1,263 km; Chile 6,691 km",
		"Burma (Myanmar) = Bangladesh 271 km; Laos (Lao PDR) 238 km",
		"Central African Republic = Cameroon 901 km; Congo, Democratic Republic of the 1,747 km",
		"",
		"Iceland = ",
		"Australia",
	}, "\n")
	tbl, err := records.ParseBorders(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, tbl.Entries, 5)

	assert.Equal(t, int64(1263), tbl.Entries[0].Neighbors[1].Length)
	assert.Equal(t, "Burma", tbl.Entries[1].Country)
	assert.Equal(t, "Laos", tbl.Entries[1].Neighbors[1].Name)
	assert.Equal(t, "Congo, Democratic Republic of the", tbl.Entries[2].Neighbors[1].Name)

	// Boundary: country with no neighbors is kept, with zero neighbors.
	assert.Equal(t, "Iceland", tbl.Entries[3].Country)
	assert.Empty(t, tbl.Entries[3].Neighbors)
	assert.Equal(t, "Australia", tbl.Entries[4].Country)
	assert.Equal(t, 5, tbl.Report.Lines)
}

func TestParseBorders_DropsMalformedNeighbors(t *testing.T) {
	in := "FRA = ESP 623; DEU ?; ITA -5 km; CHE; BEL 620 km\n = ESP 1\n"
	tbl, err := records.ParseBorders(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, tbl.Entries, 1)

	names := []string{}
	for _, n := range tbl.Entries[0].Neighbors {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"ESP", "BEL"}, names, "bad lengths are dropped, never defaulted to 0")

	require.Len(t, tbl.Report.Skipped, 4)
	for _, m := range tbl.Report.Skipped {
		assert.ErrorIs(t, m, records.ErrMalformedRecord)
	}
	assert.Equal(t, 2, tbl.Report.Skipped[3].Line)
	assert.Equal(t, 1, tbl.Report.Accepted)
}

func TestStripAlias(t *testing.T) {
	assert.Equal(t, "Burma", records.StripAlias(" Burma (Myanmar) "))
	assert.Equal(t, "Korea, North", records.StripAlias("Korea, North"))
	assert.Equal(t, "Congo", records.StripAlias("Congo (Brazzaville) (ROC)"))
}

func TestParseCapitals_HeaderColumns(t *testing.T) {
	in := "numa,ida,numb,idb,kmdist,midist\n" +
		"2,USA,20,CAN,731,454\n" +
		"2,USA,31,BHM,1623,1008\n" +
		"20,CAN,31,BHM,n/a,0\n" +
		"20,CAN,40,CUB,-3,0\n" +
		"20,CAN\n"
	tbl, err := records.ParseCapitals(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)

	assert.Equal(t, records.PairKey{A: "USA", B: "CAN"}, tbl.Rows[0].Key)
	assert.Equal(t, "USA-CAN", tbl.Rows[0].Key.String())
	assert.Equal(t, "CAN-USA", tbl.Rows[0].Key.Reverse().String())
	assert.Equal(t, int64(731), tbl.Rows[0].Km)
	assert.Equal(t, 2, tbl.Rows[0].Line)

	require.Len(t, tbl.Report.Skipped, 3)
	assert.Equal(t, "distance is not an integer", tbl.Report.Skipped[0].Reason)
	assert.Equal(t, "negative distance", tbl.Report.Skipped[1].Reason)
	assert.Equal(t, "missing columns", tbl.Report.Skipped[2].Reason)
}

func TestParseCapitals_PositionalLayout(t *testing.T) {
	in := "idx,codeA,nameA,codeB,nameB,distance,extra\n" +
		"1,FRA,France,ESP,Spain,1053,x\n" +
		"2,FRA,France,DEU,Germany,878\n"
	tbl, err := records.ParseCapitals(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, records.PairKey{A: "FRA", B: "DEU"}, tbl.Rows[1].Key)
	assert.Equal(t, int64(878), tbl.Rows[1].Km)
}

func TestParseStateNames(t *testing.T) {
	in := "statenumber\tstateid\tcountryname\tstart\tend\n" +
		"255\tGMY\tGermany (Prussia)\t1816-01-01\t1945-05-08\n" +
		"260\tGFR\tGerman Federal Republic\t1955-05-05\t1990-10-02\n" +
		"255\tGMY\tGermany\t1990-10-03\t2020-12-31\n" +
		"999\tXXX\tNowhere\t1990-10-03\tsometime\n" +
		"998\t\tNameless\t1990-10-03\t2020-12-31\n" +
		"short\trow\n" +
		"# comment\n"
	tbl, err := records.ParseStateNames(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 3)

	last := tbl.Rows[2]
	assert.Equal(t, "GMY", last.ID)
	assert.Equal(t, "Germany", last.Name)
	assert.Equal(t, 255, last.DatasetID)
	assert.Equal(t, time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC), last.End)
	assert.Equal(t, 4, last.Line)

	require.Len(t, tbl.Report.Skipped, 3)
	assert.Equal(t, "unparseable end date", tbl.Report.Skipped[0].Reason)
	assert.Equal(t, "missing identifier", tbl.Report.Skipped[1].Reason)
	assert.Equal(t, "expected 5 tab-separated fields", tbl.Report.Skipped[2].Reason)
}

func TestParseStateNames_StartDate(t *testing.T) {
	in := "1\tAAA\tAlpha\tlong ago\t2020-12-31\n" +
		"2\tBBB\tBeta\t\t2020-12-31\n"
	tbl, err := records.ParseStateNames(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 1, "a present but unparseable start date drops the row")
	assert.Equal(t, "BBB", tbl.Rows[0].ID)
	assert.True(t, tbl.Rows[0].Start.IsZero(), "an empty start date is allowed")

	require.Len(t, tbl.Report.Skipped, 1)
	assert.Equal(t, "unparseable start date", tbl.Report.Skipped[0].Reason)
	assert.Equal(t, 1, tbl.Report.Skipped[0].Line)
}

func TestParseBorders_LengthBound(t *testing.T) {
	in := "FRA = ESP 9223372036854775807; PRT 99999999999999999999; DEU 1099511627776 km; ITA 1,099,511,627,777 km\n"
	tbl, err := records.ParseBorders(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, tbl.Entries, 1)

	assert.Equal(t, []records.Neighbor{{Name: "DEU", Length: records.MaxKm}}, tbl.Entries[0].Neighbors)
	require.Len(t, tbl.Report.Skipped, 3)
	for _, m := range tbl.Report.Skipped {
		assert.Equal(t, "border length out of range", m.Reason)
	}
}

func TestParseCapitals_DistanceBound(t *testing.T) {
	in := "numa,ida,numb,idb,kmdist,midist\n" +
		"220,FRA,230,ESP,9223372036854775807,0\n" +
		"220,FRA,235,PRT,1099511627777,0\n" +
		"220,FRA,255,DEU,1099511627776,0\n"
	tbl, err := records.ParseCapitals(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, records.MaxKm, tbl.Rows[0].Km)
	require.Len(t, tbl.Report.Skipped, 2)
	assert.Equal(t, "distance out of range", tbl.Report.Skipped[0].Reason)
	assert.Equal(t, "distance out of range", tbl.Report.Skipped[1].Reason)
}

func TestParseCapitals_InvalidHeaderKeepsFirstRow(t *testing.T) {
	in := "idx,co\"deA,nameA,codeB,nameB,distance\n" +
		"1,FRA,France,ESP,Spain,1053\n" +
		"2,FRA,France,DEU,Germany,878\n"
	tbl, err := records.ParseCapitals(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, tbl.Report.Skipped, 1)
	assert.Equal(t, "invalid CSV", tbl.Report.Skipped[0].Reason)
	assert.Equal(t, 1, tbl.Report.Skipped[0].Line)

	require.Len(t, tbl.Rows, 2, "the first data row must not be taken for a header")
	assert.Equal(t, records.PairKey{A: "FRA", B: "ESP"}, tbl.Rows[0].Key)
	assert.Equal(t, int64(1053), tbl.Rows[0].Km)
	assert.Equal(t, 2, tbl.Rows[0].Line)
}

func TestLoad_MissingFileIsFatal(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")

	_, err := records.LoadBorders(missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, records.ErrFatalIO)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var fe *records.FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, records.SourceBorders, fe.Source)
	assert.Equal(t, missing, fe.Path)
	assert.Contains(t, err.Error(), "borders file")

	_, err = records.LoadCapitals(missing)
	assert.ErrorIs(t, err, records.ErrFatalIO)
	_, err = records.LoadStateNames(missing)
	assert.ErrorIs(t, err, records.ErrFatalIO)
}

func TestLoad_ReadsFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "borders.txt")
	require.NoError(t, os.WriteFile(path, []byte("FRA = ESP 623\n"), 0o600))

	tbl, err := records.LoadBorders(path)
	require.NoError(t, err)
	require.Len(t, tbl.Entries, 1)
}

func TestParse_ReadFailureIsFatal(t *testing.T) {
	_, err := records.ParseBorders(errReader{})
	assert.ErrorIs(t, err, records.ErrFatalIO)
	_, err = records.ParseStateNames(errReader{})
	assert.ErrorIs(t, err, records.ErrFatalIO)
	_, err = records.ParseCapitals(errReader{})
	assert.ErrorIs(t, err, records.ErrFatalIO)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }
