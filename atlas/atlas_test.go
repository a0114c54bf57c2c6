package atlas_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadtrip/atlas"
	"github.com/katalvlaran/roadtrip/identity"
	"github.com/katalvlaran/roadtrip/records"
)

const stateNames = "statenumber\tstateid\tcountryname\tstart\tend\n" +
	"220\tFRA\tFrance\t1816-01-01\t2020-12-31\n" +
	"230\tESP\tSpain\t1816-01-01\t2020-12-31\n" +
	"255\tDEU\tGermany\t1990-10-03\t2020-12-31\n" +
	"395\tISL\tIceland\t1944-06-17\t2020-12-31\n"

func registry(t *testing.T, aliases identity.Aliases) *identity.Registry {
	t.Helper()
	tbl, err := records.ParseStateNames(strings.NewReader(stateNames))
	require.NoError(t, err)
	return identity.NewRegistry(tbl.Rows, identity.WithAliases(aliases))
}

func borders(t *testing.T, in string) *records.BorderTable {
	t.Helper()
	tbl, err := records.ParseBorders(strings.NewReader(in))
	require.NoError(t, err)
	return tbl
}

func capitals(t *testing.T, in string) *records.CapitalTable {
	t.Helper()
	tbl, err := records.ParseCapitals(strings.NewReader(in))
	require.NoError(t, err)
	return tbl
}

func TestBuild_IdentifierKeyedBorders(t *testing.T) {
	a, err := atlas.Build(borders(t, "FRA = ESP 623; DEU 451;\n"), nil, registry(t, nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"DEU", "ESP", "FRA"}, a.Borders.Vertices())
	assert.True(t, a.Borders.HasEdge("ESP", "FRA"), "borders are undirected")
	w, err := a.Borders.Weight("DEU", "FRA")
	require.NoError(t, err)
	assert.Equal(t, int64(451), w)
	assert.Empty(t, a.Diagnostics.Unresolved)
}

func TestBuild_ResolvesNamesAndKeepsDangling(t *testing.T) {
	in := "France = Spain 623 km; Germany 451 km; Atlantis 10 km\n" +
		"Mu = France 5 km\n" +
		"Iceland =\n"
	a, err := atlas.Build(borders(t, in), nil, registry(t, nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"Atlantis", "DEU", "ESP", "FRA", "ISL", "Mu"}, a.Borders.Vertices())
	assert.True(t, a.Borders.HasEdge("FRA", "Atlantis"))
	assert.True(t, a.Borders.HasEdge("Mu", "FRA"), "unresolved country keys stay under their free-text name")
	assert.Equal(t, []string{"Atlantis", "Mu"}, a.Diagnostics.Unresolved)

	// Boundary: a country with no neighbors is a vertex with zero edges.
	deg, err := a.Borders.Degree("ISL")
	require.NoError(t, err)
	assert.Zero(t, deg)
}

func TestBuild_MergeLastWriteWins(t *testing.T) {
	// Two names resolve to FRA; their neighbor sets merge and the later
	// declaration of FRA-ESP wins.
	in := "France = Spain 623 km\n" +
		"French Republic = Spain 650 km; Germany 451 km\n"
	a, err := atlas.Build(borders(t, in), nil, registry(t, identity.Aliases{"French Republic": "FRA"}))
	require.NoError(t, err)

	nbrs, err := a.Borders.NeighborIDs("FRA")
	require.NoError(t, err)
	assert.Equal(t, []string{"DEU", "ESP"}, nbrs)

	w, _ := a.Borders.Weight("FRA", "ESP")
	assert.Equal(t, int64(650), w)
	assert.Equal(t, 2, a.Borders.EdgeCount(), "no edge lost or duplicated")

	require.Len(t, a.Diagnostics.Conflicts, 1)
	c := a.Diagnostics.Conflicts[0]
	assert.Equal(t, atlas.Conflict{Relation: atlas.RelationBorders, A: "FRA", B: "ESP",
		Previous: 623, Declared: 650, Kept: 650, Line: 2}, c)
	assert.Equal(t, []string{"France", "French Republic"}, a.Diagnostics.MergedNames["FRA"])
}

func TestBuild_AsymmetricDeclarations(t *testing.T) {
	in := "France = Spain 623 km\nSpain = France 646 km\n"
	a, err := atlas.Build(borders(t, in), nil, registry(t, nil))
	require.NoError(t, err)
	w, _ := a.Borders.Weight("ESP", "FRA")
	assert.Equal(t, int64(646), w)
	require.Len(t, a.Diagnostics.Conflicts, 1)

	// Same input, first declaration kept by a custom policy.
	keepFirst := func(prev, _ int64) int64 { return prev }
	a, err = atlas.Build(borders(t, in), nil, registry(t, nil), atlas.WithMergePolicy(keepFirst))
	require.NoError(t, err)
	w, _ = a.Borders.Weight("ESP", "FRA")
	assert.Equal(t, int64(623), w)
	assert.Equal(t, int64(623), a.Diagnostics.Conflicts[0].Kept)
}

func TestBuild_SelfBorderSkipped(t *testing.T) {
	a, err := atlas.Build(borders(t, "France = France 3 km; Spain 623 km\n"), nil, registry(t, nil))
	require.NoError(t, err)
	assert.False(t, a.Borders.HasEdge("FRA", "FRA"))
	assert.Equal(t, []string{"France: France"}, a.Diagnostics.SelfBorders)
}

func TestBuild_Capitals(t *testing.T) {
	in := "numa,ida,numb,idb,kmdist,midist\n" +
		"220,FRA,230,ESP,1053,654\n" +
		"220,FRA,255,DEU,878,545\n" +
		"230,ESP,255,DEU,abc,0\n" +
		"220,FRA,999,XXX,10,6\n"
	a, err := atlas.Build(nil, capitals(t, in), registry(t, nil))
	require.NoError(t, err)

	km, ok := a.CapitalDistance("FRA", "ESP")
	require.True(t, ok)
	assert.Equal(t, int64(1053), km)

	km, ok = a.CapitalDistance("ESP", "FRA")
	require.True(t, ok, "lookup must try both key orders")
	assert.Equal(t, int64(1053), km)

	_, ok = a.CapitalDistance("ESP", "DEU")
	assert.False(t, ok, "non-numeric distance row is excluded")

	assert.Equal(t, 3, a.CapitalPairs())
	assert.Equal(t, []string{"XXX"}, a.Diagnostics.UnknownCapitalCodes)
	assert.True(t, a.Capitals.HasEdge("DEU", "FRA"))
}

func writeFixture(t *testing.T) atlas.Sources {
	t.Helper()
	dir := t.TempDir()
	src := atlas.Sources{
		Borders:    filepath.Join(dir, "borders.txt"),
		Capitals:   filepath.Join(dir, "capdist.csv"),
		StateNames: filepath.Join(dir, "state_name.tsv"),
	}
	files := map[string]string{
		src.Borders:    "France = Spain 623 km; Germany 451 km\nSpain = France 623 km; Portugal 1,214 km\nIceland =\n",
		src.Capitals:   "numa,ida,numb,idb,kmdist,midist\n220,FRA,230,ESP,1053,654\n220,FRA,255,DEU,878,545\n",
		src.StateNames: stateNames,
	}
	for path, body := range files {
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	}
	return src
}

func TestLoad_IdempotentBuild(t *testing.T) {
	src := writeFixture(t)

	var first, second bytes.Buffer
	a1, err := atlas.Load(src)
	require.NoError(t, err)
	_, err = a1.WriteTo(&first)
	require.NoError(t, err)

	a2, err := atlas.Load(src)
	require.NoError(t, err)
	_, err = a2.WriteTo(&second)
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
	assert.Contains(t, first.String(), "E FRA ESP 623\n")
	assert.Equal(t, []string{"Portugal"}, a1.Diagnostics.Unresolved)
	require.Len(t, a1.Diagnostics.Reports, 3)
	assert.Equal(t, records.SourceStateNames, a1.Diagnostics.Reports[2].Source)
}

func TestLoad_MissingFileNamesTheFile(t *testing.T) {
	src := writeFixture(t)
	src.Capitals = filepath.Join(t.TempDir(), "gone.csv")

	a, err := atlas.Load(src)
	assert.Nil(t, a)
	require.ErrorIs(t, err, records.ErrFatalIO)

	var fe *records.FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, records.SourceCapitals, fe.Source)
	assert.Equal(t, src.Capitals, fe.Path)
}

func TestLastWriteWins(t *testing.T) {
	assert.Equal(t, int64(7), atlas.LastWriteWins(3, 7))
}
