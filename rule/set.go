package rule

import (
	"slices"
	"strings"
)

// Set is an ordered list of rules for one field.
type Set []Rule

// String renders the set in pipe-delimited form, e.g. "ascii|decimal:2".
func (s Set) String() string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, Format(r))
	}

	return strings.Join(parts, "|")
}

// Strings renders every rule on its own.
func (s Set) Strings() []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, Format(r))
	}

	return out
}

// Has reports whether the set contains a rule with keyword.
func (s Set) Has(keyword string) bool {
	return slices.ContainsFunc(s, func(r Rule) bool { return r.Keyword() == keyword })
}
