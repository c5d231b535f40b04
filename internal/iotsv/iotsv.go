// Package iotsv reads and writes the tab-separated and comma-separated
// files at the boundary of cogpn: the AfriGIS reference list, address
// files, auxiliary word lists, and the annotated output streams.
package iotsv

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/cogpn/cogpn/pkg/address"
	"github.com/cogpn/cogpn/pkg/gazetteer"
	"github.com/gnames/gn"
)

// Column names of the AfriGIS reference list.
const (
	RefSuburb       = "SUBURB"
	RefTown         = "TOWN"
	RefSubID        = "AG_SUB_ID"
	RefSubCode      = "AG_SUB_CDE"
	RefPostcode     = "STRCODE"
	RefMunicipality = "LOCALMUNICIPALITY"
)

var refColumns = []string{
	RefSuburb, RefTown, RefSubID, RefSubCode, RefPostcode, RefMunicipality,
}

var postcodeRe = regexp.MustCompile(`^\d{4}$`)

func newTSVReader(r io.Reader) *csv.Reader {
	res := csv.NewReader(r)
	res.Comma = '\t'
	res.LazyQuotes = true
	res.FieldsPerRecord = -1
	res.ReuseRecord = false
	return res
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	return f, nil
}

// headerIndex maps column names to their positions. Names are compared
// after trimming spaces and a byte-order mark.
func headerIndex(header []string) map[string]int {
	res := make(map[string]int, len(header))
	for i, v := range header {
		v = strings.TrimSpace(strings.TrimPrefix(v, "\ufeff"))
		if _, ok := res[v]; !ok {
			res[v] = i
		}
	}
	return res
}

func field(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// ReadReference reads the reference gazetteer list. The header must name
// the SUBURB, TOWN, AG_SUB_ID, AG_SUB_CDE, STRCODE and LOCALMUNICIPALITY
// columns, in any order.
func ReadReference(path string) ([]gazetteer.Row, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := parseReference(f)
	if err != nil {
		var pe *lineError
		if errors.As(err, &pe) {
			return nil, ParseReferenceError(path, pe.line, pe.err)
		}
		return nil, ParseReferenceError(path, 0, err)
	}
	slog.Info("Read reference list", "path", path, "rows", len(rows))
	return rows, nil
}

type lineError struct {
	line int
	err  error
}

func (e *lineError) Error() string { return e.err.Error() }

func (e *lineError) Unwrap() error { return e.err }

var errMissingColumns = errors.New("missing columns")

func parseReference(r io.Reader) ([]gazetteer.Row, error) {
	cr := newTSVReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, &lineError{line: 1, err: err}
	}
	idx := headerIndex(header)
	var missing []string
	for _, v := range refColumns {
		if _, ok := idx[v]; !ok {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return nil, &lineError{
			line: 1,
			err:  errors.Join(errMissingColumns, errors.New(strings.Join(missing, ", "))),
		}
	}

	var res []gazetteer.Row
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, &lineError{line: line, err: err}
		}
		res = append(res, gazetteer.Row{
			Suburb:       field(row, idx, RefSuburb),
			Town:         field(row, idx, RefTown),
			SubID:        field(row, idx, RefSubID),
			SubCode:      field(row, idx, RefSubCode),
			Postcode:     cleanPostcode(field(row, idx, RefPostcode)),
			Municipality: field(row, idx, RefMunicipality),
		})
	}
	return res, nil
}

// Addresses is the content of an address file.
type Addresses struct {
	Records []address.Record

	// Columns are the known columns of the file in output order.
	Columns []string

	// Missing are expected columns absent from the header. When it is not
	// empty the default schema was used and the first line was dropped.
	Missing []string

	// NoPostcode counts records without a postal code.
	NoPostcode int

	// BadPostcode counts postal codes that are not 4 digits. They are
	// treated as missing.
	BadPostcode int
}

// ReadAddresses reads an address file.
func ReadAddresses(path string) (*Addresses, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := parseAddresses(f)
	if err != nil {
		var pe *lineError
		if errors.As(err, &pe) {
			return nil, ParseAddressesError(path, pe.line, pe.err)
		}
		return nil, ParseAddressesError(path, 0, err)
	}
	if len(res.Missing) > 0 {
		gn.Warn(
			"<warn>Header of %s lacks columns %s, default columns are used</warn>",
			path, strings.Join(res.Missing, ", "),
		)
		slog.Warn("Address header lacks expected columns",
			"path", path, "missing", res.Missing)
	}
	slog.Info("Read addresses",
		"path", path,
		"records", len(res.Records),
		"no-postcode", res.NoPostcode,
		"bad-postcode", res.BadPostcode,
	)
	return res, nil
}

func parseAddresses(r io.Reader) (*Addresses, error) {
	cr := newTSVReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return &Addresses{Columns: address.DefaultColumns}, nil
	}
	if err != nil {
		return nil, &lineError{line: 1, err: err}
	}

	res := &Addresses{}
	idx := headerIndex(header)
	for _, v := range address.DefaultColumns {
		if _, ok := idx[v]; !ok {
			res.Missing = append(res.Missing, v)
		}
	}

	if len(res.Missing) > 0 {
		res.Columns = address.DefaultColumns
		idx = make(map[string]int, len(res.Columns))
		for i, v := range res.Columns {
			idx[v] = i
		}
	} else {
		res.Columns = knownColumns(header, idx)
	}

	var line int
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			l, _ := cr.FieldPos(0)
			return nil, &lineError{line: l, err: err}
		}
		line++
		if isBlank(row) {
			continue
		}
		rec := address.Record{
			Line:  line,
			RowID: field(row, idx, address.ColRowID),
			PMIID: field(row, idx, address.ColPMIID),
			Lines: [4]string{
				field(row, idx, address.ColLine1),
				field(row, idx, address.ColLine2),
				field(row, idx, address.ColLine3),
				field(row, idx, address.ColLine4),
			},
		}
		pc := field(row, idx, address.ColPostcode)
		rec.Postcode = cleanPostcode(pc)
		if rec.Postcode == "" {
			if pc != "" {
				res.BadPostcode++
			}
			res.NoPostcode++
		}
		res.Records = append(res.Records, rec)
	}
	return res, nil
}

// knownColumns returns the columns of the header that a Record carries,
// in header order.
func knownColumns(header []string, idx map[string]int) []string {
	known := append(slices.Clone(address.DefaultColumns), address.ColPMIID)
	var res []string
	for _, v := range header {
		v = strings.TrimSpace(strings.TrimPrefix(v, "\ufeff"))
		if !slices.Contains(known, v) || slices.Contains(res, v) {
			continue
		}
		if _, ok := idx[v]; ok {
			res = append(res, v)
		}
	}
	return res
}

// cleanPostcode returns a 4-digit postal code or an empty string. Numeric
// codes that lost leading zeros in a spreadsheet are padded.
func cleanPostcode(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".0")
	if s == "" {
		return ""
	}
	if len(s) < 4 && isDigits(s) {
		s = strings.Repeat("0", 4-len(s)) + s
	}
	if !postcodeRe.MatchString(s) {
		return ""
	}
	return s
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
