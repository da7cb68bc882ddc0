package match

import (
	"sort"
)

// Candidate is a known name scored against a requested one.
type Candidate struct {
	Name string

	// Score is the Levenshtein similarity (0-1) of the normalized names,
	// taking the better of NormalizeIdent and NormalizeUnitName.
	Score float64

	NormalizedName      string
	NormalizedRequested string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankNames scores every known name against requested.
// Returns candidates sorted by score (descending).
func RankNames(requested string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))

	requestedNorm := NormalizeIdent(requested)
	requestedUnit := NormalizeUnitName(requested)

	for _, name := range known {
		unit := NormalizeUnitName(name)

		candidates = append(candidates, Candidate{
			Name:                name,
			Score:               max(Similarity(NormalizeIdent(name), requestedNorm), Similarity(unit, requestedUnit)),
			NormalizedName:      unit,
			NormalizedRequested: requestedUnit,
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to n known names that look like requested, best first.
func Suggest(requested string, known []string, n int) []string {
	var out []string
	for _, c := range RankNames(requested, known).AboveThreshold(DefaultSuggestScore).Top(n) {
		out = append(out, c.Name)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// Exact returns the candidate whose unit name normalization equals the
// request's, or nil.
func (c CandidateList) Exact() *Candidate {
	for i := range c {
		if c[i].NormalizedName == c[i].NormalizedRequested {
			return &c[i]
		}
	}

	return nil
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}
	diff := c[0].Score - c[1].Score
	return diff < threshold
}

// AboveThreshold returns candidates with score above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}
	return result
}

const (
	// DefaultSuggestScore is the minimum score for a "did you mean" suggestion.
	DefaultSuggestScore = 0.5
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.1
)
