package textnorm

import "regexp"

// NumberRule is one street-number pattern. The first capture group is the
// number; the whole match is removed from the text.
type NumberRule struct {
	Name string
	re   *regexp.Regexp
}

// NewNumberRule compiles a rule. The pattern must have one capture group.
func NewNumberRule(name, pattern string) NumberRule {
	return NumberRule{Name: name, re: regexp.MustCompile(pattern)}
}

// Match returns the number captured by the rule, if any.
func (r NumberRule) Match(s string) (string, bool) {
	m := r.re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// NumberRules is the default rule table. Rules are tried in order and the
// first one matching anywhere in the text wins. Every rule is anchored on
// whitespace, so numbered areas such as SITE-5 are never split. A number
// must be followed by a space: a trailing number is usually the postal
// code and is left in the text.
var NumberRules = []NumberRule{
	// NO 12, NO12A (the period is already stripped from "No.")
	NewNumberRule("no-prefix", `(?:^|\s)NO\s*(\d+[A-Z]?)\s`),
	// 12-14
	NewNumberRule("range", `(?:^|\s)(\d+-\d+)\s`),
	// A12, B-4
	NewNumberRule("letter-number", `(?:^|\s)([A-Z]-?\d+)\s`),
	// 12A
	NewNumberRule("number-letter", `(?:^|\s)(\d+[A-Z])\s`),
	// 12 A
	NewNumberRule("number-short-token", `(?:^|\s)(\d+\s[A-Z])\s`),
	// 12
	NewNumberRule("plain", `(?:^|\s)(\d+)\s`),
}
