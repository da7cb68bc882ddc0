package match

import "github.com/texttheater/golang-levenshtein/levenshtein"

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-rune insertions, deletions or substitutions that turn one
// into the other.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	return levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptionsWithSub)
}

// Similarity maps the edit distance onto 0..1, where 1 means identical:
// 1 - distance / max(runes(a), runes(b)).
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(longest)
}
