package iotsv

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/cogpn/cogpn/pkg/resolver"
)

// ResultColumns follow the input columns in both output streams.
var ResultColumns = []string{
	"normalized_address",
	"street_number",
	"street_type",
	"suburb",
	"town",
	"ag_sub_id",
	"ag_sub_cde",
	"afrigis_match",
	"ambiguous_match",
	"probably_in_ct",
	"postcode_resolved",
	"inconsistent_postcode",
	"supporting_terms",
	"postcodes",
	"ambiguous_terms",
}

// Writer writes resolution results as tab-separated rows.
type Writer struct {
	cols []string
	w    *csv.Writer
	c    io.Closer
	path string
}

// NewWriter creates a Writer over w and writes the header. Input columns
// are taken from cols.
func NewWriter(w io.Writer, cols []string) (*Writer, error) {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	res := &Writer{cols: cols, w: cw}
	header := make([]string, 0, len(cols)+len(ResultColumns))
	header = append(header, cols...)
	header = append(header, ResultColumns...)
	if err := cw.Write(header); err != nil {
		return nil, err
	}
	return res, nil
}

// CreateWriter creates the file at path and returns a Writer for it.
// Close must be called to flush the rows.
func CreateWriter(path string, cols []string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, WriteFileError(path, err)
	}
	res, err := NewWriter(f, cols)
	if err != nil {
		f.Close()
		return nil, WriteFileError(path, err)
	}
	res.c = f
	res.path = path
	return res, nil
}

// Write adds one result.
func (w *Writer) Write(r resolver.Result) error {
	row := make([]string, 0, len(w.cols)+len(ResultColumns))
	for _, v := range w.cols {
		row = append(row, r.Record.Value(v))
	}
	row = append(row,
		r.Normalized.Text,
		r.Normalized.StreetNumber,
		r.Normalized.StreetType,
		r.Suburb,
		r.Town,
		r.SubID,
		r.SubCode,
		yesNo(r.AfrigisMatch),
		yesNo(r.AmbiguousMatch),
		yesNo(r.ProbablyInMetro),
		yesNo(r.PostcodeResolved),
		yesNo(r.InconsistentPostcode),
		strings.Join(r.SupportingTerms, ", "),
		strings.Join(r.Postcodes, ", "),
		strings.Join(r.AmbiguousTerms, "|"),
	)
	if err := w.w.Write(row); err != nil {
		return WriteFileError(w.path, err)
	}
	return nil
}

// Close flushes buffered rows and closes the underlying file, if the
// Writer owns one.
func (w *Writer) Close() error {
	w.w.Flush()
	err := w.w.Error()
	if w.c != nil {
		if cerr := w.c.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return WriteFileError(w.path, err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
