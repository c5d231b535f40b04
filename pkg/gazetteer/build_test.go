package gazetteer_test

import (
	"testing"

	"github.com/cogpn/cogpn/pkg/errcode"
	"github.com/cogpn/cogpn/pkg/gazetteer"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var capeTown = gazetteer.Settings{
	MetroName:         "Cape Town",
	MetroMunicipality: "City of Cape Town",
}

func TestBuildCapeTown(t *testing.T) {
	rows := []gazetteer.Row{
		{Suburb: "Muizenberg", Town: "Cape Town", SubID: "1001",
			SubCode: "MZB", Postcode: "7945", Municipality: "City of Cape Town"},
		{Suburb: "Ceres", Town: "Ceres", SubID: "2001",
			Postcode: "6835", Municipality: "Witzenberg"},
		{Suburb: "Bellville South", Town: "Bellville",
			Postcode: "7530", Municipality: "City of Cape Town"},
	}
	h, err := gazetteer.Build(rows, capeTown)
	require.NoError(t, err)

	ct := h.FindNodeByName("Cape Town")
	require.Len(t, ct, 1)
	assert.Equal(t, h.Metro().ID, ct[0].ID)

	mz := h.FindNodeByName("MUIZENBERG")
	require.Len(t, mz, 1)
	assert.Equal(t, gazetteer.Suburb, mz[0].Kind)
	assert.Equal(t, "7945", mz[0].Postcode)
	assert.Equal(t, "1001", mz[0].SubID)

	ceres := h.FindNodeByName("Ceres")
	require.Len(t, ceres, 1)
	assert.Equal(t, gazetteer.Town, ceres[0].Kind)
	assert.Equal(t, "2001", ceres[0].SubID)
	assert.Empty(t, ceres[0].Children)

	bv := h.FindNodeByName("Bellville")
	require.Len(t, bv, 1)
	bs := h.FindNodeByName("Bellville South")
	require.Len(t, bs, 1)

	assert.True(t, h.IsAncestor(ct[0], mz[0]))
	assert.False(t, h.IsAncestor(ct[0], ceres[0]))
	assert.True(t, h.IsAncestor(ct[0], bv[0]))
	assert.True(t, h.IsAncestor(ct[0], bs[0]))
	assert.True(t, h.IsAncestor(bv[0], bs[0]))
	assert.Equal(t, h.Root().ID, ceres[0].Parent)

	d, err := h.Depth()
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}

func TestBuildExclusions(t *testing.T) {
	rows := []gazetteer.Row{
		{Suburb: "Parklands", Town: "Bellville", Postcode: "7441",
			Municipality: "City of Cape Town"},
		{Suburb: "Parklands", Town: "Worcester", Postcode: "6850",
			Municipality: "Breede Valley"},
	}
	s := capeTown
	s.Exclusions = []gazetteer.Pair{{Suburb: "parklands", Town: "worcester"}}

	h, err := gazetteer.Build(rows, s)
	require.NoError(t, err)

	res := h.FindNodeByName("PARKLANDS")
	require.Len(t, res, 1)
	assert.Equal(t, "7441", res[0].Postcode)
	assert.Equal(t, "BELLVILLE", h.Parent(res[0]).Name)

	// the town of an excluded pair is not created either
	assert.Empty(t, h.FindNodeByName("WORCESTER"))
}

func TestBuildTownLevelRecord(t *testing.T) {
	rows := []gazetteer.Row{
		{Suburb: "Langa", Town: "Langa", SubID: "10618", SubCode: "LNG",
			Postcode: "7455", Municipality: "City of Cape Town"},
		{Suburb: "Joe Slovo Park", Town: "Langa", SubID: "10619",
			Postcode: "7455", Municipality: "City of Cape Town"},
	}
	h, err := gazetteer.Build(rows, capeTown)
	require.NoError(t, err)

	res := h.FindNodeByName("LANGA")
	require.Len(t, res, 1)
	langa := res[0]
	assert.Equal(t, gazetteer.Town, langa.Kind)
	assert.Equal(t, "10618", langa.SubID)
	assert.Equal(t, "LNG", langa.SubCode)
	assert.Equal(t, "7455", langa.Postcode)
	require.Len(t, langa.Children, 1)
	assert.Equal(t, "JOE-SLOVO-PARK", h.Node(langa.Children[0]).Name)

	suburbs, towns := h.Names()
	assert.Contains(t, suburbs, "LANGA")
	assert.Contains(t, towns, "LANGA")
	assert.Contains(t, suburbs, "JOE-SLOVO-PARK")
	assert.NotContains(t, towns, "JOE-SLOVO-PARK")
}

func TestBuildMetroTownLevelRecord(t *testing.T) {
	rows := []gazetteer.Row{
		{Suburb: "Cape Town", Town: "Cape Town", SubID: "9000",
			SubCode: "CPT", Postcode: "8001", Municipality: "City of Cape Town"},
		{Suburb: "Woodstock", Town: "Cape Town", SubID: "1002",
			Postcode: "7925", Municipality: "City of Cape Town"},
	}
	h, err := gazetteer.Build(rows, capeTown)
	require.NoError(t, err)

	metro := h.Metro()
	require.NotNil(t, metro)
	assert.Empty(t, metro.SubID)
	assert.Empty(t, metro.SubCode)
	assert.Empty(t, metro.Postcode)
	require.Len(t, metro.Children, 1)

	suburbs, _ := h.Names()
	assert.NotContains(t, suburbs, "CAPE-TOWN")
}

func TestBuildSameTownDifferentMunicipality(t *testing.T) {
	rows := []gazetteer.Row{
		{Suburb: "North", Town: "Riverside", Postcode: "1111",
			Municipality: "Muni A"},
		{Suburb: "South", Town: "Riverside", Postcode: "2222",
			Municipality: "Muni B"},
		{Suburb: "East", Town: "Riverside", Postcode: "1112",
			Municipality: "Muni A"},
	}
	h, err := gazetteer.Build(rows, capeTown)
	require.NoError(t, err)

	towns := h.FindNodeByName("RIVERSIDE")
	require.Len(t, towns, 2)
	assert.Len(t, towns[0].Children, 2)
	assert.Len(t, towns[1].Children, 1)
	assert.Equal(t, "MUNI-A", towns[0].Municipality)
	assert.Equal(t, "MUNI-B", towns[1].Municipality)
}

func TestBuildDuplicateSuburbRows(t *testing.T) {
	rows := []gazetteer.Row{
		{Suburb: "Woodstock", Town: "Cape Town", Postcode: "7925",
			Municipality: "City of Cape Town"},
		{Suburb: "Woodstock", Town: "Cape Town", Postcode: "7925",
			Municipality: "City of Cape Town"},
	}
	h, err := gazetteer.Build(rows, capeTown)
	require.NoError(t, err)
	assert.Len(t, h.FindNodeByName("WOODSTOCK"), 1)
	assert.Equal(t, 3, h.Len())
}

func TestBuildDuplicateTown(t *testing.T) {
	rows := []gazetteer.Row{
		{Suburb: "Mfuleni", Town: "Kuils River", Postcode: "7100",
			Municipality: "City of Cape Town"},
		{Suburb: "Mfuleni", Town: "Blackheath", Postcode: "7580",
			Municipality: "City of Cape Town"},
		{Suburb: "Extension 2", Town: "Mfuleni", Postcode: "7100",
			Municipality: "City of Cape Town"},
	}
	_, err := gazetteer.Build(rows, capeTown)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.GazetteerDuplicateTownError, gnErr.Code)
	assert.Contains(t, gnErr.Err.Error(), `"MFULENI"`)
	assert.Contains(t, gnErr.Err.Error(), "row 3")
}

func TestBuildSkipsEmptyTown(t *testing.T) {
	rows := []gazetteer.Row{
		{Suburb: "Nowhere", Town: "  ", Municipality: "City of Cape Town"},
		{Suburb: "", Town: "Atlantis", Postcode: "7349",
			Municipality: "City of Cape Town"},
	}
	h, err := gazetteer.Build(rows, capeTown)
	require.NoError(t, err)
	assert.Empty(t, h.FindNodeByName("NOWHERE"))

	at := h.FindNodeByName("ATLANTIS")
	require.Len(t, at, 1)
	assert.Equal(t, "7349", at[0].Postcode)
	assert.True(t, h.IsAncestor(h.Metro(), at[0]))
}

func TestBuildWithoutMetro(t *testing.T) {
	rows := []gazetteer.Row{
		{Suburb: "Muizenberg", Town: "Cape Town", Postcode: "7945",
			Municipality: "City of Cape Town"},
	}
	h, err := gazetteer.Build(rows, gazetteer.Settings{})
	require.NoError(t, err)
	assert.Nil(t, h.Metro())
	ct := h.FindNodeByName("CAPE-TOWN")
	require.Len(t, ct, 1)
	assert.Equal(t, h.Root().ID, ct[0].Parent)
}
