package model

import (
	"cmp"
	"slices"
)

// TermCount is a term with its frequency.
type TermCount struct {
	Term  string
	Count int
}

// Counter counts term occurrences.
type Counter struct {
	counts map[string]int
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add increments the count of a term.
func (c *Counter) Add(term string) {
	c.counts[term]++
}

// Count returns the count of a term, zero if it was never added.
func (c *Counter) Count(term string) int {
	return c.counts[term]
}

// Len returns the number of distinct terms.
func (c *Counter) Len() int {
	return len(c.counts)
}

// MostCommon returns the n most frequent terms ordered by count descending
// and then by term. If n is not positive, all terms are returned.
func (c *Counter) MostCommon(n int) []TermCount {
	res := make([]TermCount, 0, len(c.counts))
	for k, v := range c.counts {
		res = append(res, TermCount{Term: k, Count: v})
	}
	slices.SortFunc(res, func(a, b TermCount) int {
		if d := cmp.Compare(b.Count, a.Count); d != 0 {
			return d
		}
		return cmp.Compare(a.Term, b.Term)
	})
	if n > 0 && n < len(res) {
		res = res[:n]
	}
	return res
}
