// Package match provides name normalization, Levenshtein distance calculation
// and candidate ranking for looking up unit and property names leniently.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankNames: ranks known names against a requested one
//   - Suggest: "did you mean" suggestions for unknown names
package match
