package match

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// unitSuffixes are kind words people append to unit names, as in
// "BooleanCast" or "DateFormatTransformer".
var unitSuffixes = []string{"transformer", "transform", "cast", "pipe", "rule"}

// NormalizeIdent normalizes an identifier for lenient lookup.
// The normalization pipeline:
// 1. Split CamelCase, digits and separators into words.
// 2. Lowercase every word.
// 3. Join the words without separators.
//
// "NumberFormat", "number_format" and "number-format" all become
// "numberformat".
func NormalizeIdent(s string) string {
	return strings.Join(Tokens(s), "")
}

// NormalizeUnitName normalizes like NormalizeIdent and then drops a trailing
// kind word, so "Base64DecodeCast" and "base64_decode" compare equal. A name
// made only of a kind word is kept.
func NormalizeUnitName(s string) string {
	tokens := Tokens(s)

	if n := len(tokens); n > 1 {
		for _, suffix := range unitSuffixes {
			if tokens[n-1] == suffix {
				tokens = tokens[:n-1]

				break
			}
		}
	}

	return strings.Join(tokens, "")
}

// Tokens splits an identifier into lowercase words.
// Examples:
//   - "OrderID" -> ["order", "id"]
//   - "XMLParser" -> ["xml", "parser"]
//   - "null-if blank" -> ["null", "if", "blank"]
func Tokens(s string) []string {
	var tokens []string

	for _, t := range strings.Split(strcase.ToSnake(strings.TrimSpace(s)), "_") {
		if t != "" {
			tokens = append(tokens, t)
		}
	}

	return tokens
}
