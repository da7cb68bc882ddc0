package rule

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type builder func(params []string) (Rule, error)

var builders = map[string]builder{
	KeywordASCII:     noParams(ASCII{}),
	KeywordLowercase: noParams(Lowercase{}),
	KeywordUppercase: noParams(Uppercase{}),
	KeywordDecimal:   parseDecimal,
	KeywordRequiredWith: func(p []string) (Rule, error) {
		return RequiredWith(p...)
	},
	KeywordRequiredWithout: func(p []string) (Rule, error) {
		return RequiredWithout(p...)
	},
	KeywordMissingWith: func(p []string) (Rule, error) {
		return MissingWith(p...)
	},
	KeywordRequiredIf:   valueBuilder(RequiredIf),
	KeywordPresentIf:    valueBuilder(PresentIf),
	KeywordProhibitedIf: valueBuilder(ProhibitedIf),
}

// Keywords returns every keyword Parse understands, sorted.
func Keywords() []string {
	out := make([]string, 0, len(builders))
	for k := range builders {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}

// Parse builds a rule from its serialized form, the inverse of Format.
// Parameters are comma separated; double-quoted parameters may contain
// commas.
func Parse(s string) (Rule, error) {
	keyword, rawParams, hasParams := strings.Cut(strings.TrimSpace(s), ":")

	build, ok := builders[keyword]
	if !ok {
		return nil, fmt.Errorf("%w: unknown keyword %q", ErrInvalidRule, keyword)
	}

	var params []string

	if hasParams {
		r := csv.NewReader(strings.NewReader(rawParams))
		r.TrimLeadingSpace = true

		record, err := r.Read()
		if err != nil {
			return nil, fmt.Errorf("%w: parameters of %q: %w", ErrInvalidRule, keyword, err)
		}

		params = record
	}

	return build(params)
}

// ParseSet parses a pipe-delimited rule list. Pipes inside double-quoted
// parameters do not split rules.
func ParseSet(s string) (Set, error) {
	var set Set

	for _, part := range splitSet(s) {
		if strings.TrimSpace(part) == "" {
			continue
		}

		r, err := Parse(part)
		if err != nil {
			return nil, err
		}

		set = append(set, r)
	}

	return set, nil
}

func splitSet(s string) []string {
	var (
		parts    []string
		start    int
		inQuotes bool
	)

	for i := range len(s) {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case '|':
			if !inQuotes {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, s[start:])
}

func noParams(r Rule) builder {
	return func(params []string) (Rule, error) {
		if len(params) > 0 {
			return nil, fmt.Errorf("%w: %s takes no parameters", ErrInvalidRule, r.Keyword())
		}

		return r, nil
	}
}

func parseDecimal(params []string) (Rule, error) {
	places := make([]int, 0, 2)

	for _, p := range params {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: decimal place %q", ErrInvalidRule, p)
		}

		places = append(places, n)
	}

	switch len(places) {
	case 1:
		return NewDecimal(places[0], places[0])
	case 2:
		return NewDecimal(places[0], places[1])
	default:
		return nil, fmt.Errorf("%w: decimal takes one or two parameters", ErrInvalidRule)
	}
}

func valueBuilder(ctor func(string, ...any) (ValueRule, error)) builder {
	return func(params []string) (Rule, error) {
		if len(params) == 0 {
			return nil, fmt.Errorf("%w: missing field reference", ErrInvalidRule)
		}

		values := make([]any, 0, len(params)-1)
		for _, p := range params[1:] {
			values = append(values, p)
		}

		return ctor(params[0], values...)
	}
}
