// Package resolver assigns a gazetteer place to an address using the
// association model.
//
// An address is normalized, its significant terms are looked up in the
// gazetteer, and ambiguous names are settled by the known postcode or by
// the metro assumption. Resolver keeps no per-call state, so one value can
// serve many goroutines.
package resolver

import (
	"slices"
	"strings"
	"unicode"

	"github.com/cogpn/cogpn/pkg/address"
	"github.com/cogpn/cogpn/pkg/gazetteer"
	"github.com/cogpn/cogpn/pkg/model"
	"github.com/cogpn/cogpn/pkg/textnorm"
)

// Resolver matches addresses against a gazetteer and a model.
type Resolver struct {
	h         *gazetteer.Hierarchy
	m         *model.Model
	norm      *textnorm.Normalizer
	metroTerm string
}

// New creates a Resolver. The metroTerm token in an address enables the
// metro disambiguation rule.
func New(
	h *gazetteer.Hierarchy,
	m *model.Model,
	norm *textnorm.Normalizer,
	metroTerm string,
) *Resolver {
	return &Resolver{h: h, m: m, norm: norm, metroTerm: metroTerm}
}

type termMatch struct {
	term  string
	nodes []*gazetteer.Node
}

// Resolve processes one address.
func (r *Resolver) Resolve(rec address.Record) Result {
	raw := rec.Text()
	res := Result{
		Record:   rec,
		Postcode: strings.TrimSpace(rec.Postcode),
	}
	if res.Postcode == "" {
		res.Postcode = textnorm.FindPostcode(raw)
	}
	res.Normalized = r.norm.Normalize(raw)
	ws := words(res.Normalized.Tokens)

	var unambiguous, ambiguous []termMatch
	postcodes := make(map[string]struct{})
	for _, w := range ws {
		if !r.m.IsSignificant(w) {
			continue
		}
		res.SupportingTerms = append(res.SupportingTerms, w)
		if pc, ok := r.m.Postcode(w); ok {
			postcodes[pc] = struct{}{}
		}
		nodes := r.h.FindNodeByName(w)
		switch len(nodes) {
		case 0:
		case 1:
			unambiguous = append(unambiguous, termMatch{w, nodes})
		default:
			ambiguous = append(ambiguous, termMatch{w, nodes})
		}
	}
	for k := range postcodes {
		res.Postcodes = append(res.Postcodes, k)
	}
	slices.Sort(res.Postcodes)

	if len(res.SupportingTerms) == 0 {
		res.State = NoMatch
		res.Stream = NeedsReview
		return res
	}

	if res.Postcode != "" {
		_, seen := postcodes[res.Postcode]
		res.InconsistentPostcode = !seen
	}

	switch {
	case len(ambiguous) > 0:
		res.State = Ambiguous
		res.AfrigisMatch = true
		res.AmbiguousMatch = true
		r.disambiguate(&res, ambiguous, ws)
	case len(unambiguous) > 0:
		res.State = Unambiguous
		res.AfrigisMatch = true
		res.Method = ByUniqueName
		node := r.pickUnambiguous(unambiguous, res.Postcode)
		r.setPlace(&res, node)
	default:
		res.State = TermOnly
		if cands, ok := r.m.Candidates(res.Postcode); ok &&
			res.Postcode != "" {
			res.Postcodes = []string{res.Postcode}
			res.SupportingTerms = slices.Clone(cands)
		}
	}

	if res.Method == NotResolved {
		res.Stream = NeedsReview
	} else {
		res.Stream = Resolved
	}
	return res
}

// disambiguate applies the postcode rule, then the metro rule. If neither
// settles the address, every candidate is recorded for review.
func (r *Resolver) disambiguate(
	res *Result,
	ambiguous []termMatch,
	words []string,
) {
	slices.SortFunc(ambiguous, func(a, b termMatch) int {
		return strings.Compare(a.term, b.term)
	})

	if cands, ok := r.m.Candidates(res.Postcode); ok && res.Postcode != "" {
		if node := byPostcode(ambiguous, res.Postcode, cands); node != nil {
			res.Method = ByPostcode
			res.PostcodeResolved = true
			r.setPlace(res, node)
			return
		}
	} else if r.metroTerm != "" && slices.Contains(words, r.metroTerm) {
		if node := r.byMetro(ambiguous); node != nil {
			res.Method = ByMetro
			res.ProbablyInMetro = true
			r.setSuburb(res, node)
			return
		}
	}

	for _, tm := range ambiguous {
		for _, n := range tm.nodes {
			parent := ""
			if p := r.h.Parent(n); p != nil {
				parent = p.Name
			}
			res.AmbiguousTerms = append(res.AmbiguousTerms, n.Name+","+parent)
		}
	}
}

// byPostcode returns the first suburb node, in term order, whose postcode
// equals the known postcode. Only terms that are candidates of that
// postcode are considered.
func byPostcode(
	ambiguous []termMatch,
	postcode string,
	cands []string,
) *gazetteer.Node {
	for _, tm := range ambiguous {
		if !slices.Contains(cands, tm.term) {
			continue
		}
		for _, n := range tm.nodes {
			if n.Kind == gazetteer.Suburb && n.Postcode == postcode {
				return n
			}
		}
	}
	return nil
}

// byMetro assumes the address is inside the metro. Each ambiguous term is
// settled by its first candidate inside the metro. If any term has no such
// candidate the assumption is dropped for the whole address, even when an
// earlier term was settled.
func (r *Resolver) byMetro(ambiguous []termMatch) *gazetteer.Node {
	metro := r.h.Metro()
	if metro == nil {
		return nil
	}
	var res *gazetteer.Node
	for _, tm := range ambiguous {
		var found *gazetteer.Node
		for _, n := range tm.nodes {
			if r.h.IsAncestor(metro, n) {
				found = n
				break
			}
		}
		if found == nil {
			return nil
		}
		res = found
	}
	return res
}

// pickUnambiguous chooses among single-node terms: a node with the known
// postcode first, then suburbs over towns, then address order.
func (r *Resolver) pickUnambiguous(
	matches []termMatch,
	postcode string,
) *gazetteer.Node {
	rank := func(n *gazetteer.Node) int {
		var res int
		if postcode != "" && n.Postcode == postcode {
			res += 2
		}
		if n.Kind == gazetteer.Suburb {
			res++
		}
		return res
	}
	best := matches[0].nodes[0]
	for _, tm := range matches[1:] {
		if n := tm.nodes[0]; rank(n) > rank(best) {
			best = n
		}
	}
	return best
}

// setPlace fills town and suburb from a node. A town yields an empty
// suburb unless it is also a reference suburb.
func (r *Resolver) setPlace(res *Result, n *gazetteer.Node) {
	if n.Kind == gazetteer.Town {
		res.Town = n.Name
		if n.SubID != "" {
			res.Suburb = n.Name
		}
		res.SubID = n.SubID
		res.SubCode = n.SubCode
		return
	}
	r.setSuburb(res, n)
}

// setSuburb uses the node as suburb and its parent as town.
func (r *Resolver) setSuburb(res *Result, n *gazetteer.Node) {
	res.Suburb = n.Name
	if p := r.h.Parent(n); p != nil && p.Kind != gazetteer.Root {
		res.Town = p.Name
	}
	res.SubID = n.SubID
	res.SubCode = n.SubCode
}

// words returns distinct tokens in order, skipping those that start with a
// digit.
func words(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	res := make([]string, 0, len(tokens))
	for _, v := range tokens {
		if v == "" || unicode.IsDigit(rune(v[0])) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}
