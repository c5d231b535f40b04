package model

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/cogpn/cogpn/pkg/address"
	"github.com/cogpn/cogpn/pkg/gazetteer"
	"github.com/cogpn/cogpn/pkg/textnorm"
)

var numericRe = regexp.MustCompile(`^\d+$`)

// Stats accumulate term statistics over a training corpus.
type Stats struct {
	// PerPostcode counts terms per postcode. Addresses without a postcode
	// are counted under the empty key.
	PerPostcode map[string]*Counter

	// Global counts terms across the whole corpus.
	Global *Counter

	// Pairs counts co-occurring distinct terms within one address.
	Pairs map[Pair]int

	Addresses  int
	NoPostcode int
	Duplicates int
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{
		PerPostcode: make(map[string]*Counter),
		Global:      NewCounter(),
		Pairs:       make(map[Pair]int),
	}
}

// Builder trains a Model from addresses labelled with postcodes.
type Builder struct {
	params      Params
	norm        *textnorm.Normalizer
	stopWords   map[string]struct{}
	streetTypes map[string]struct{}
	suburbs     map[string]struct{}
	towns       map[string]struct{}
}

// NewBuilder creates a Builder. Gazetteer names decide which postcodes
// are linked to places; street types are excluded from terms.
func NewBuilder(
	h *gazetteer.Hierarchy,
	norm *textnorm.Normalizer,
	streetTypes []string,
	p Params,
) *Builder {
	res := &Builder{
		params:      p,
		norm:        norm,
		stopWords:   make(map[string]struct{}, len(StopWords)),
		streetTypes: make(map[string]struct{}, len(streetTypes)),
	}
	for _, v := range StopWords {
		res.stopWords[v] = struct{}{}
	}
	for _, v := range streetTypes {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v != "" {
			res.streetTypes[v] = struct{}{}
		}
	}
	res.suburbs, res.towns = h.Names()
	return res
}

// Eligible reports whether a token can be counted as a term.
func (b *Builder) Eligible(tok string) bool {
	if utf8.RuneCountInString(tok) <= 2 {
		return false
	}
	if _, ok := b.stopWords[tok]; ok {
		return false
	}
	if _, ok := b.streetTypes[tok]; ok {
		return false
	}
	for _, v := range AfrikaansStreetEndings {
		if strings.HasSuffix(tok, v) {
			return false
		}
	}
	return !numericRe.MatchString(tok)
}

// Terms normalizes an address and returns its eligible tokens in order,
// repeats included.
func (b *Builder) Terms(text string) []string {
	toks := b.norm.Normalize(text).Tokens
	res := make([]string, 0, len(toks))
	for _, v := range toks {
		if b.Eligible(v) {
			res = append(res, v)
		}
	}
	return res
}

// Accumulate adds one record to the statistics.
func (b *Builder) Accumulate(st *Stats, rec address.Record) {
	st.Addresses++
	postcode := strings.TrimSpace(rec.Postcode)
	if postcode == "" {
		st.NoPostcode++
	}

	group, ok := st.PerPostcode[postcode]
	if !ok {
		group = NewCounter()
		st.PerPostcode[postcode] = group
	}

	terms := b.Terms(rec.Text())
	for _, v := range terms {
		group.Add(v)
		st.Global.Add(v)
	}

	uniq := b.pairTerms(terms)
	for i := range uniq {
		for j := i + 1; j < len(uniq); j++ {
			st.Pairs[Pair{uniq[i], uniq[j]}]++
		}
	}
}

// pairTerms returns distinct terms in sorted order, keeping at most
// MaxTermsPerAddress of them by first appearance.
func (b *Builder) pairTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	var res []string
	for _, v := range terms {
		if _, ok := seen[v]; ok {
			continue
		}
		if b.params.MaxTermsPerAddress > 0 &&
			len(res) >= b.params.MaxTermsPerAddress {
			break
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	slices.Sort(res)
	return res
}

// Retained returns the ranked terms of a postcode that pass the retention
// filters, in rank order.
func (b *Builder) Retained(st *Stats, postcode string) []TermCount {
	group, ok := st.PerPostcode[postcode]
	if !ok {
		return nil
	}
	p := b.params
	top := int(p.TopFraction * float64(group.Len()))
	ranked := group.MostCommon(top)

	var res []TermCount
	for _, tc := range ranked {
		global := st.Global.Count(tc.Term)
		if global < p.MinGlobalCount {
			continue
		}
		if len(ranked) > p.CrowdedListLen && tc.Count < p.MinGroupCount {
			continue
		}
		if float64(tc.Count) < p.GroupShare*float64(global) {
			slog.Debug("Group-inconsistent term dropped",
				"term", tc.Term, "postcode", postcode,
				"count", tc.Count, "global", global,
			)
			continue
		}
		if tc.Term == p.MetroTerm &&
			!strings.HasPrefix(postcode, p.MetroPostcodePrefix) {
			continue
		}
		res = append(res, tc)
	}
	return res
}

// Build turns statistics into a Model. Postcodes are processed in sorted
// order. A term retained for several postcodes points to the one where it
// is most frequent, the smaller postcode on a tie.
func (b *Builder) Build(st *Stats) *Model {
	res := New()

	type best struct {
		postcode string
		count    int
	}
	vocab := make(map[string]best)

	postcodes := make([]string, 0, len(st.PerPostcode))
	for k := range st.PerPostcode {
		postcodes = append(postcodes, k)
	}
	slices.Sort(postcodes)

	for _, pc := range postcodes {
		kept := b.Retained(st, pc)
		terms := make([]string, len(kept))
		for i, tc := range kept {
			terms[i] = tc.Term
			res.TermCounts[tc.Term] = st.Global.Count(tc.Term)
		}
		if pc == "" {
			continue
		}

		cands := intersect(terms, b.suburbs)
		if len(cands) == 0 {
			if towns := intersect(terms, b.towns); len(towns) == 1 {
				cands = towns
			}
		}
		if len(cands) > 0 {
			res.PostcodeToSuburbs[pc] = cands
		} else if b.params.LinkedOnly {
			continue
		}

		for _, tc := range kept {
			cur, ok := vocab[tc.Term]
			if !ok || tc.Count > cur.count {
				vocab[tc.Term] = best{postcode: pc, count: tc.Count}
			}
		}
	}

	for k, v := range vocab {
		res.TermToPostcode[k] = v.postcode
	}

	p := b.params
	for pair, n := range st.Pairs {
		if n <= p.PairMinCount {
			continue
		}
		if float64(n) <= p.PairShare*float64(st.Global.Count(pair[0])) ||
			float64(n) <= p.PairShare*float64(st.Global.Count(pair[1])) {
			continue
		}
		res.TokenPairs[PairKey(pair)] = n
	}
	return res
}

// Train deduplicates records by row ID, accumulates them and builds the
// Model.
func (b *Builder) Train(recs []address.Record) (*Model, *Stats) {
	recs, dups := address.Dedup(recs)
	st := NewStats()
	st.Duplicates = dups
	for _, r := range recs {
		b.Accumulate(st, r)
	}
	return b.Build(st), st
}

func intersect(terms []string, set map[string]struct{}) []string {
	var res []string
	for _, v := range terms {
		if _, ok := set[v]; ok {
			res = append(res, v)
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}
