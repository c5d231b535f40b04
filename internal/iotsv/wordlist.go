package iotsv

import (
	"bufio"
	"encoding/csv"
	"io"
	"log/slog"
	"strings"

	"github.com/cogpn/cogpn/pkg/gazetteer"
)

func newCSVReader(r io.Reader) *csv.Reader {
	res := csv.NewReader(r)
	res.Comment = '#'
	res.TrimLeadingSpace = true
	res.LazyQuotes = true
	res.FieldsPerRecord = -1
	return res
}

// ReadSynonyms reads 'term, replacement' rows. Rows with fewer than two
// fields or an empty term are skipped. A replacement can be empty, which
// deletes the term from addresses.
func ReadSynonyms(path string) (map[string]string, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := newCSVReader(f).ReadAll()
	if err != nil {
		return nil, ParseWordListError(path, err)
	}
	res := make(map[string]string, len(rows))
	for _, v := range rows {
		if len(v) < 2 {
			continue
		}
		term := strings.ToUpper(strings.TrimSpace(v[0]))
		if term == "" {
			continue
		}
		res[term] = strings.ToUpper(strings.TrimSpace(v[1]))
	}
	slog.Info("Read synonyms", "path", path, "count", len(res))
	return res, nil
}

// ReadExclusions reads 'suburb, town' pairs.
func ReadExclusions(path string) ([]gazetteer.Pair, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := newCSVReader(f).ReadAll()
	if err != nil {
		return nil, ParseWordListError(path, err)
	}
	var res []gazetteer.Pair
	for _, v := range rows {
		if len(v) < 2 {
			continue
		}
		p := gazetteer.Pair{
			Suburb: strings.TrimSpace(v[0]),
			Town:   strings.TrimSpace(v[1]),
		}
		if p.Suburb == "" && p.Town == "" {
			continue
		}
		res = append(res, p)
	}
	slog.Info("Read exclusions", "path", path, "count", len(res))
	return res, nil
}

// ReadWords reads a list with one word or phrase per line. Words are
// uppercased; commas and quotes are removed.
func ReadWords(path string) ([]string, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := parseWords(f)
	if err != nil {
		return nil, ParseWordListError(path, err)
	}
	slog.Info("Read word list", "path", path, "count", len(res))
	return res, nil
}

var wordCleaner = strings.NewReplacer(",", "", `"`, "", "'", "")

func parseWords(r io.Reader) ([]string, error) {
	var res []string
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := wordCleaner.Replace(sc.Text())
		w = strings.Join(strings.Fields(strings.ToUpper(w)), " ")
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		res = append(res, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
