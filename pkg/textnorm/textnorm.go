// Package textnorm turns free-form address text into a canonical token
// sequence. The same Normalizer is used when a model is trained and when
// addresses are resolved, so both sides see identical tokens.
package textnorm

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	fillerRe       = regexp.MustCompile(`\b(?:NONE|NULL)\b`)
	numberedAreaRe = regexp.MustCompile(`\b(SITE|SECTION|PHASE|ZONE|EXT)\s+(\d+)\b`)
	postcodeRe     = regexp.MustCompile(`(?:^|\D)(\d{4})(?:\D|$)`)

	stripper = strings.NewReplacer(",", " ", `"`, "", ".", "", "'", "")
)

// Result is a normalized address.
type Result struct {
	// Text is the cleaned address with street name and number removed.
	Text string

	// StreetType is the street-type word found after the street name.
	StreetType string

	// StreetNumber is the extracted street number, empty if none matched.
	StreetNumber string

	// NumberRule is the name of the rule that produced StreetNumber.
	NumberRule string

	// Tokens are the whitespace-separated words of Text.
	Tokens []string
}

type synonym struct {
	term, replacement string
}

// Normalizer holds the vocabularies and compiled patterns of the
// normalization pipeline. It is immutable after New and safe for
// concurrent use.
type Normalizer struct {
	synonyms   []synonym
	streetRe   *regexp.Regexp
	placeNames []string
	rules      []NumberRule
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// OptSynonyms sets substrings to replace. Longer terms are replaced first.
func OptSynonyms(m map[string]string) Option {
	return func(n *Normalizer) {
		n.synonyms = n.synonyms[:0]
		for k, v := range m {
			k = strings.ToUpper(strings.TrimSpace(k))
			if k == "" {
				continue
			}
			n.synonyms = append(n.synonyms, synonym{
				term:        k,
				replacement: strings.ToUpper(strings.TrimSpace(v)),
			})
		}
		slices.SortFunc(n.synonyms, func(a, b synonym) int {
			if c := cmp.Compare(len(b.term), len(a.term)); c != 0 {
				return c
			}
			return cmp.Compare(a.term, b.term)
		})
	}
}

// OptStreetTypes sets the street-type vocabulary (ROAD, STREET, RD...).
func OptStreetTypes(types []string) Option {
	return func(n *Normalizer) {
		n.streetRe = streetNameRe(types)
	}
}

// OptPlaceNames adds multi-word names that must stay one token. Names can
// be given with spaces or with dashes. Single-word names are ignored.
func OptPlaceNames(names []string) Option {
	return func(n *Normalizer) {
		seen := make(map[string]struct{}, len(n.placeNames))
		for _, v := range n.placeNames {
			seen[v] = struct{}{}
		}
		for _, v := range names {
			v = strings.ReplaceAll(v, "-", " ")
			v = strings.Join(strings.Fields(strings.ToUpper(v)), " ")
			if !strings.Contains(v, " ") {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			n.placeNames = append(n.placeNames, v)
		}
		slices.SortFunc(n.placeNames, func(a, b string) int {
			if c := cmp.Compare(len(b), len(a)); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})
	}
}

// OptNumberRules replaces the default street-number rule table.
func OptNumberRules(rules []NumberRule) Option {
	return func(n *Normalizer) {
		n.rules = rules
	}
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	res := &Normalizer{rules: NumberRules}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Normalize runs the pipeline over raw address text. It never fails: text
// without a recognizable street or number simply yields empty fields.
func (n *Normalizer) Normalize(raw string) Result {
	var res Result
	s := Fold(raw)
	s = strings.ToUpper(s)
	s = stripper.Replace(s)
	s = fillerRe.ReplaceAllString(s, " ")

	for _, v := range n.synonyms {
		if strings.Contains(s, v.term) {
			s = strings.ReplaceAll(s, v.term, v.replacement)
		}
	}

	s = numberedAreaRe.ReplaceAllString(s, "$1-$2")
	s = collapse(s)

	if n.streetRe != nil {
		if m := n.streetRe.FindStringSubmatch(s); m != nil {
			res.StreetType = m[1]
		}
		s = collapse(n.streetRe.ReplaceAllString(s, " "))
	}

	s = n.joinPlaceNames(s)

	for _, r := range n.rules {
		loc := r.re.FindStringSubmatchIndex(s)
		if loc == nil {
			continue
		}
		res.StreetNumber = s[loc[2]:loc[3]]
		res.NumberRule = r.Name
		s = collapse(s[:loc[0]] + " " + s[loc[1]:])
		break
	}

	res.Text = s
	res.Tokens = strings.Fields(s)
	return res
}

// joinPlaceNames replaces spaces with dashes inside known multi-word
// names. Only whole-token occurrences are joined.
func (n *Normalizer) joinPlaceNames(s string) string {
	if len(n.placeNames) == 0 {
		return s
	}
	s = " " + s + " "
	for _, name := range n.placeNames {
		spaced := " " + name + " "
		if !strings.Contains(s, spaced) {
			continue
		}
		dashed := " " + strings.ReplaceAll(name, " ", "-") + " "
		for strings.Contains(s, spaced) {
			s = strings.ReplaceAll(s, spaced, dashed)
		}
	}
	return strings.TrimSpace(s)
}

// FindPostcode returns the first standalone 4-digit number in the text,
// or an empty string.
func FindPostcode(s string) string {
	m := postcodeRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

// Fold removes diacritics, so "Schoongezicht" and "Schöngezicht" compare
// equal after uppercasing.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	res, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return res
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func streetNameRe(types []string) *regexp.Regexp {
	seen := make(map[string]struct{}, len(types))
	var ts []string
	for _, v := range types {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		ts = append(ts, regexp.QuoteMeta(v))
	}
	if len(ts) == 0 {
		return nil
	}
	slices.SortFunc(ts, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return regexp.MustCompile(
		`\w+\s+(` + strings.Join(ts, "|") + `)(?:\W|$)`,
	)
}
