package address_test

import (
	"testing"

	"github.com/cogpn/cogpn/pkg/address"
	"github.com/stretchr/testify/assert"
)

func TestDedup(t *testing.T) {
	recs := []address.Record{
		{RowID: "1", Lines: [4]string{"12 MAIN RD"}, Postcode: "7925"},
		{RowID: "2", Lines: [4]string{"3 LONG ST"}},
		{RowID: "1", Lines: [4]string{"99 OTHER RD"}, Postcode: "8001"},
		{RowID: "3"},
		{RowID: "2"},
	}
	res, dups := address.Dedup(recs)
	assert.Equal(t, 2, dups)
	assert.Len(t, res, 3)
	assert.Equal(t, "12 MAIN RD", res[0].Lines[0])
	assert.Equal(t, "7925", res[0].Postcode)
	assert.Equal(t, []string{"1", "2", "3"},
		[]string{res[0].RowID, res[1].RowID, res[2].RowID})
}

func TestTextAndValue(t *testing.T) {
	r := address.Record{
		RowID:    "7",
		PMIID:    "P7",
		Lines:    [4]string{"1 A RD", "WOODSTOCK", "", "CAPE TOWN"},
		Postcode: "7925",
	}
	assert.Equal(t, "1 A RD WOODSTOCK  CAPE TOWN", r.Text())

	tests := []struct {
		col, val string
	}{
		{address.ColRowID, "7"},
		{address.ColPMIID, "P7"},
		{address.ColLine2, "WOODSTOCK"},
		{address.ColLine4, "CAPE TOWN"},
		{address.ColPostcode, "7925"},
		{"unknown", ""},
	}
	for _, v := range tests {
		assert.Equal(t, v.val, r.Value(v.col), v.col)
	}
}
