package iotsv

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cogpn/cogpn/pkg/address"
	"github.com/cogpn/cogpn/pkg/errcode"
	"github.com/cogpn/cogpn/pkg/gazetteer"
	"github.com/cogpn/cogpn/pkg/resolver"
	"github.com/cogpn/cogpn/pkg/textnorm"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "error should be *gn.Error")
	return gnErr.Code
}

func TestReadReference(t *testing.T) {
	assert := assert.New(t)
	content := strings.Join([]string{
		"TOWN\tSUBURB\tAG_SUB_ID\tAG_SUB_CDE\tSTRCODE\tLOCALMUNICIPALITY\tPROVINCE",
		"Cape Town\tMuizenberg\t101\tMZB\t7945\tCity of Cape Town\tWC",
		"Ceres\tCeres\t202\tCRS\t6835\tWitzenberg\tWC",
		"Cape Town\tLanga\t303\tLNG\t\tCity of Cape Town\tWC",
	}, "\n") + "\n"
	path := writeFile(t, "ref.tsv", content)

	rows, err := ReadReference(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(gazetteer.Row{
		Suburb:       "Muizenberg",
		Town:         "Cape Town",
		SubID:        "101",
		SubCode:      "MZB",
		Postcode:     "7945",
		Municipality: "City of Cape Town",
	}, rows[0])
	assert.Equal("Ceres", rows[1].Suburb)
	assert.Equal("", rows[2].Postcode)
}

func TestReadReferenceErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadReference(filepath.Join(t.TempDir(), "none.tsv"))
		require.Error(t, err)
		assert.Equal(t, errcode.InputFileNotFoundError, errCode(t, err))
		assert.Contains(t, err.(*gn.Error).Err.Error(), "none.tsv")
	})

	t.Run("missing columns", func(t *testing.T) {
		path := writeFile(t, "ref.tsv", "SUBURB\tTOWN\nA\tB\n")
		_, err := ReadReference(path)
		require.Error(t, err)
		assert.Equal(t, errcode.ParseReferenceError, errCode(t, err))
		assert.Contains(t, err.(*gn.Error).Err.Error(), "STRCODE")
	})
}

func TestReadAddresses(t *testing.T) {
	assert := assert.New(t)
	content := strings.Join([]string{
		"address_row_id\tpmi_id\tAddressLine1\tAddressLine2\tAddressLine3\tAddressLine4\tpostal_code\textra",
		"1\tP1\t12 Main Rd\tMuizenberg\t\t\t7945\tx",
		"2\tP2\t4 Long St\tCape Town\t\t\t800\tx",
		"3\tP3\tFarm 3\tCeres\t\t\tn/a\tx",
		"\t\t\t\t\t\t\t",
		"4\tP4\t7 Hill Rd\tLanga\t\t\t\tx",
	}, "\n") + "\n"
	path := writeFile(t, "addr.tsv", content)

	res, err := ReadAddresses(path)
	require.NoError(t, err)
	assert.Empty(res.Missing)
	assert.Equal([]string{
		"address_row_id", "pmi_id", "AddressLine1", "AddressLine2",
		"AddressLine3", "AddressLine4", "postal_code",
	}, res.Columns)
	require.Len(t, res.Records, 4)

	r := res.Records[0]
	assert.Equal(1, r.Line)
	assert.Equal("1", r.RowID)
	assert.Equal("P1", r.PMIID)
	assert.Equal("12 Main Rd Muizenberg  ", r.Text())
	assert.Equal("7945", r.Postcode)

	assert.Equal("0800", res.Records[1].Postcode)
	assert.Equal("", res.Records[2].Postcode)
	assert.Equal("", res.Records[3].Postcode)
	assert.Equal(5, res.Records[3].Line)
	assert.Equal(2, res.NoPostcode)
	assert.Equal(1, res.BadPostcode)
}

func TestReadAddressesDefaultColumns(t *testing.T) {
	assert := assert.New(t)
	content := strings.Join([]string{
		"id\tl1\tl2\tl3\tl4\tcode",
		"9\t1 Beach Rd\tMuizenberg\t\t\t7945",
	}, "\n") + "\n"
	path := writeFile(t, "addr.tsv", content)

	res, err := ReadAddresses(path)
	require.NoError(t, err)
	assert.Equal(address.DefaultColumns, res.Columns)
	assert.Contains(res.Missing, "address_row_id")
	assert.Contains(res.Missing, "postal_code")
	require.Len(t, res.Records, 1)
	assert.Equal("9", res.Records[0].RowID)
	assert.Equal("1 Beach Rd", res.Records[0].Lines[0])
	assert.Equal("7945", res.Records[0].Postcode)
}

func TestReadAddressesEmpty(t *testing.T) {
	path := writeFile(t, "addr.tsv", "")
	res, err := ReadAddresses(path)
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.Equal(t, address.DefaultColumns, res.Columns)
}

func TestCleanPostcode(t *testing.T) {
	tests := []struct {
		msg, in, out string
	}{
		{"four digits", "7945", "7945"},
		{"spaces", " 7945 ", "7945"},
		{"lost zero", "800", "0800"},
		{"float", "7945.0", "7945"},
		{"letters", "79A5", ""},
		{"too long", "79450", ""},
		{"empty", "", ""},
	}
	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			assert.Equal(t, v.out, cleanPostcode(v.in))
		})
	}
}

func TestReadSynonyms(t *testing.T) {
	content := "# term, replacement\nMitchel's Plain, Mitchells Plain\nkhaya, KHAYELITSHA\nbad\n, X\n"
	path := writeFile(t, "syn.csv", content)
	res, err := ReadSynonyms(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"MITCHEL'S PLAIN": "MITCHELLS PLAIN",
		"KHAYA":           "KHAYELITSHA",
	}, res)
}

func TestReadExclusions(t *testing.T) {
	content := "Langa, Cape Town\nBellville,Bellville\n\n"
	path := writeFile(t, "excl.csv", content)
	res, err := ReadExclusions(path)
	require.NoError(t, err)
	assert.Equal(t, []gazetteer.Pair{
		{Suburb: "Langa", Town: "Cape Town"},
		{Suburb: "Bellville", Town: "Bellville"},
	}, res)
}

func TestReadWords(t *testing.T) {
	content := "Road\n  st \n\"Mitchells Plain\",\nROAD\n\n# comment\n"
	path := writeFile(t, "words.txt", content)
	res, err := ReadWords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ROAD", "ST", "MITCHELLS PLAIN"}, res)

	_, err = ReadWords(filepath.Join(t.TempDir(), "none.txt"))
	require.Error(t, err)
	assert.Equal(t, errcode.InputFileNotFoundError, errCode(t, err))
}

func TestWriter(t *testing.T) {
	assert := assert.New(t)
	var buf bytes.Buffer
	cols := []string{address.ColRowID, address.ColLine1, address.ColPostcode}
	w, err := NewWriter(&buf, cols)
	require.NoError(t, err)

	res := resolver.Result{
		Record: address.Record{
			RowID:    "7",
			Lines:    [4]string{"12 Main Rd"},
			Postcode: "7945",
		},
		Normalized: textnorm.Result{
			Text:         "MUIZENBERG",
			StreetNumber: "12",
			StreetType:   "RD",
		},
		Suburb:           "MUIZENBERG",
		Town:             "CAPE-TOWN",
		SubID:            "101",
		SubCode:          "MZB",
		AfrigisMatch:     true,
		PostcodeResolved: true,
		SupportingTerms:  []string{"MUIZENBERG", "LAKESIDE"},
		Postcodes:        []string{"7945", "7950"},
		AmbiguousTerms:   []string{"A,B", "A,C"},
	}
	require.NoError(t, w.Write(res))
	require.NoError(t, w.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	header := strings.Split(lines[0], "\t")
	assert.Equal("address_row_id", header[0])
	assert.Equal("ambiguous_terms", header[len(header)-1])
	assert.Len(header, len(cols)+len(ResultColumns))

	row := strings.Split(lines[1], "\t")
	assert.Equal([]string{
		"7", "12 Main Rd", "7945",
		"MUIZENBERG", "12", "RD",
		"MUIZENBERG", "CAPE-TOWN", "101", "MZB",
		"Yes", "No", "No", "Yes", "No",
		"MUIZENBERG, LAKESIDE", "7945, 7950", "A,B|A,C",
	}, row)
}

func TestCreateWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")
	w, err := CreateWriter(path, address.DefaultColumns)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "address_row_id\t"))

	_, err = CreateWriter(filepath.Join(t.TempDir(), "no", "dir.tsv"), nil)
	require.Error(t, err)
	assert.Equal(t, errcode.ResolveWriteError, errCode(t, err))
}
