package match

import (
	"testing"
)

func TestRankNames(t *testing.T) {
	known := []string{"number_format", "base64_encode", "lowercase", "implode", "date_format"}

	candidates := RankNames("NumberFormat", known)

	if len(candidates) != len(known) {
		t.Fatalf("Expected %d candidates, got %d", len(known), len(candidates))
	}

	best := candidates.Best()
	if best == nil || best.Name != "number_format" {
		t.Fatalf("Expected best candidate number_format, got %+v", best)
	}

	if best.Score != 1.0 {
		t.Errorf("Expected exact normalized match score 1.0, got %f", best.Score)
	}

	if exact := candidates.Exact(); exact == nil || exact.Name != "number_format" {
		t.Errorf("Expected exact match number_format, got %+v", exact)
	}

	for i := 1; i < len(candidates); i++ {
		if candidates[i-1].Score < candidates[i].Score {
			t.Errorf("Candidates not sorted at %d: %f < %f", i, candidates[i-1].Score, candidates[i].Score)
		}
	}
}

func TestRankNames_Deterministic(t *testing.T) {
	candidates := RankNames("zzz", []string{"bbb", "aaa"})

	if candidates[0].Name != "aaa" {
		t.Errorf("Expected alphabetical tie-break, got %s first", candidates[0].Name)
	}

	if candidates.Exact() != nil {
		t.Error("Expected no exact match")
	}
}

func TestSuggest(t *testing.T) {
	known := []string{"lowercase", "uppercase", "base64_decode", "explode"}

	got := Suggest("lowercas", known, 2)
	if len(got) == 0 || got[0] != "lowercase" {
		t.Errorf("Expected lowercase as first suggestion, got %v", got)
	}

	if len(got) > 2 {
		t.Errorf("Expected at most 2 suggestions, got %v", got)
	}

	if none := Suggest("qqqqqqqqqq", known, 3); len(none) != 0 {
		t.Errorf("Expected no suggestions, got %v", none)
	}
}

func TestCandidateList_Helpers(t *testing.T) {
	list := CandidateList{
		{Name: "a", Score: 0.9},
		{Name: "b", Score: 0.85},
		{Name: "c", Score: 0.2},
	}

	if !list.IsAmbiguous(DefaultAmbiguityThreshold) {
		t.Error("Expected ambiguity between a and b")
	}

	if got := list.AboveThreshold(0.5); len(got) != 2 {
		t.Errorf("Expected 2 candidates above 0.5, got %d", len(got))
	}

	if got := list.Top(5); len(got) != 3 {
		t.Errorf("Expected Top to cap at list length, got %d", len(got))
	}

	var empty CandidateList
	if empty.Best() != nil {
		t.Error("Expected nil best for empty list")
	}
}

func TestRankNames_UnitSuffix(t *testing.T) {
	candidates := RankNames("BooleanCast", []string{"boolean", "boolean_word"})

	exact := candidates.Exact()
	if exact == nil || exact.Name != "boolean" {
		t.Fatalf("Expected BooleanCast to resolve to boolean, got %+v", exact)
	}
}
