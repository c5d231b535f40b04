// Package model learns term-to-postcode associations from labelled
// addresses and holds the resulting ResolutionModel.
//
// Training is split into two explicit steps. Accumulate folds addresses
// into a Stats value that the caller owns, Build turns Stats into a Model.
// Every ranking breaks ties by count descending and then by term, so the
// same corpus always yields the same Model.
package model

import (
	"fmt"
	"slices"
	"strings"
)

// Model is the persisted association model.
type Model struct {
	// TermToPostcode is the vocabulary: retained terms and the postcode
	// they point to.
	TermToPostcode map[string]string `json:"term_to_postcode"`

	// PostcodeToSuburbs lists gazetteer names retained for a postcode.
	PostcodeToSuburbs map[string][]string `json:"postcode_to_suburb"`

	// TermCounts holds every retained term with its corpus-wide count.
	// Membership in this map makes a term significant.
	TermCounts map[string]int `json:"most_common_terms_all_postcodes"`

	// TokenPairs are mutually associated co-occurring terms keyed by
	// PairKey.
	TokenPairs map[string]int `json:"token_pairs"`
}

// New returns an empty Model.
func New() *Model {
	return &Model{
		TermToPostcode:    make(map[string]string),
		PostcodeToSuburbs: make(map[string][]string),
		TermCounts:        make(map[string]int),
		TokenPairs:        make(map[string]int),
	}
}

// IsSignificant reports whether the term was retained for any postcode.
func (m *Model) IsSignificant(term string) bool {
	_, ok := m.TermCounts[term]
	return ok
}

// Postcode returns the postcode associated with a term.
func (m *Model) Postcode(term string) (string, bool) {
	pc, ok := m.TermToPostcode[term]
	return pc, ok
}

// Candidates returns the suburb-candidate names of a postcode.
func (m *Model) Candidates(postcode string) ([]string, bool) {
	res, ok := m.PostcodeToSuburbs[postcode]
	return res, ok
}

// DashedTerms returns significant terms that were joined from several
// words, sorted.
func (m *Model) DashedTerms() []string {
	var res []string
	for k := range m.TermCounts {
		if strings.Contains(k, "-") {
			res = append(res, k)
		}
	}
	slices.Sort(res)
	return res
}

// Empty reports whether the model has no significant terms.
func (m *Model) Empty() bool {
	return len(m.TermCounts) == 0
}

// Pair is an unordered pair of terms stored in sorted order.
type Pair [2]string

// NewPair creates a Pair with members in sorted order.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{a, b}
}

// PairKey is the stable string form of a pair, e.g. ('LANGA', 'ZONE-2').
func PairKey(p Pair) string {
	return fmt.Sprintf("('%s', '%s')", p[0], p[1])
}

// ParsePairKey reverses PairKey.
func ParsePairKey(key string) (Pair, bool) {
	s, ok := strings.CutPrefix(key, "('")
	if !ok {
		return Pair{}, false
	}
	s, ok = strings.CutSuffix(s, "')")
	if !ok {
		return Pair{}, false
	}
	a, b, ok := strings.Cut(s, "', '")
	if !ok || a == "" || b == "" {
		return Pair{}, false
	}
	return NewPair(a, b), true
}
