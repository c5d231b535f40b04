// Package address defines the address record shared by training and
// resolution.
package address

import "strings"

// Column names of an address file.
const (
	ColRowID    = "address_row_id"
	ColPMIID    = "pmi_id"
	ColLine1    = "AddressLine1"
	ColLine2    = "AddressLine2"
	ColLine3    = "AddressLine3"
	ColLine4    = "AddressLine4"
	ColPostcode = "postal_code"
)

// DefaultColumns is the schema used when a file header lacks any of the
// expected columns.
var DefaultColumns = []string{
	ColRowID, ColLine1, ColLine2, ColLine3, ColLine4, ColPostcode,
}

// Record is one address row. It serves both as a labelled training record
// and as resolver input.
type Record struct {
	// Line is the 1-based data line number in the source file.
	Line int

	RowID    string
	PMIID    string
	Lines    [4]string
	Postcode string
}

// Text joins the address lines with single spaces.
func (r Record) Text() string {
	return strings.Join(r.Lines[:], " ")
}

// Value returns the value of a named column.
func (r Record) Value(col string) string {
	switch col {
	case ColRowID:
		return r.RowID
	case ColPMIID:
		return r.PMIID
	case ColLine1:
		return r.Lines[0]
	case ColLine2:
		return r.Lines[1]
	case ColLine3:
		return r.Lines[2]
	case ColLine4:
		return r.Lines[3]
	case ColPostcode:
		return r.Postcode
	default:
		return ""
	}
}

// Dedup keeps the first record for every RowID and returns the kept
// records together with the number of dropped duplicates.
func Dedup(recs []Record) ([]Record, int) {
	seen := make(map[string]struct{}, len(recs))
	res := make([]Record, 0, len(recs))
	var dups int
	for _, r := range recs {
		if _, ok := seen[r.RowID]; ok {
			dups++
			continue
		}
		seen[r.RowID] = struct{}{}
		res = append(res, r)
	}
	return res, dups
}
