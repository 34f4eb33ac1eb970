package similarity

import (
	"reflect"
	"testing"
)

func TestMatchPairs(t *testing.T) {
	tests := []struct {
		name           string
		deleted        []string
		added          []string
		wantPairs      []Pair
		wantUnmatchedD []int
		wantUnmatchedA []int
	}{
		{
			name:    "edited rule pairs up",
			deleted: []string{"Use camelCase for variable names"},
			added:   []string{"Use camelCase for all variable names"},
			wantPairs: []Pair{
				{Deleted: 0, Added: 0, Score: Similarity("Use camelCase for variable names", "Use camelCase for all variable names")},
			},
		},
		{
			name:           "unrelated strings stay unmatched",
			deleted:        []string{"Avoid global mutable state"},
			added:          []string{"Document every exported symbol"},
			wantUnmatchedD: []int{0},
			wantUnmatchedA: []int{0},
		},
		{
			name:           "empty deleted side",
			deleted:        nil,
			added:          []string{"anything"},
			wantUnmatchedA: []int{0},
		},
		{
			name:           "empty added side",
			deleted:        []string{"anything"},
			added:          nil,
			wantUnmatchedD: []int{0},
		},
		{
			name:    "each side participates at most once",
			deleted: []string{"Prefer table driven tests"},
			added:   []string{"Prefer table driven tests always", "Prefer table driven tests everywhere"},
			wantPairs: []Pair{
				{Deleted: 0, Added: 0, Score: Similarity("Prefer table driven tests", "Prefer table driven tests always")},
			},
			wantUnmatchedA: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchPairs(tt.deleted, tt.added)
			if !reflect.DeepEqual(got.Pairs, tt.wantPairs) {
				t.Errorf("Pairs = %v, want %v", got.Pairs, tt.wantPairs)
			}
			if !reflect.DeepEqual(got.UnmatchedDeleted, tt.wantUnmatchedD) {
				t.Errorf("UnmatchedDeleted = %v, want %v", got.UnmatchedDeleted, tt.wantUnmatchedD)
			}
			if !reflect.DeepEqual(got.UnmatchedAdded, tt.wantUnmatchedA) {
				t.Errorf("UnmatchedAdded = %v, want %v", got.UnmatchedAdded, tt.wantUnmatchedA)
			}
		})
	}
}

func TestMatchPairsShortStringsPairByEditDistance(t *testing.T) {
	// Short strings differing in one character score higher on edit
	// distance than a genuine rewording does on token overlap, so the
	// single-character variant wins the pairing. Numbered rule names
	// are the common case; the rest report as plain delete/add.
	got := MatchPairs(
		[]string{"Rule 1", "Rule 2"},
		[]string{"Rule 1 updated slightly", "Rule 3"},
	)

	if len(got.Pairs) != 1 || got.Pairs[0].Deleted != 0 || got.Pairs[0].Added != 1 {
		t.Fatalf("Pairs = %v, want the single-character variant pairing", got.Pairs)
	}
	if got.Pairs[0].Score <= 0.8 {
		t.Errorf("Score = %v, want the edit-distance score above 0.8", got.Pairs[0].Score)
	}
	if !reflect.DeepEqual(got.UnmatchedDeleted, []int{1}) {
		t.Errorf("UnmatchedDeleted = %v, want [1]", got.UnmatchedDeleted)
	}
	if !reflect.DeepEqual(got.UnmatchedAdded, []int{0}) {
		t.Errorf("UnmatchedAdded = %v, want [0]", got.UnmatchedAdded)
	}
}

func TestMatchPairsTieBreakIsDeterministic(t *testing.T) {
	// Both added strings score identically against the deleted string;
	// the lower added index must win every run.
	deleted := []string{"handle errors explicitly"}
	added := []string{"handle errors explicitly now", "handle errors explicitly too"}

	first := MatchPairs(deleted, added)
	for i := 0; i < 50; i++ {
		got := MatchPairs(deleted, added)
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}

	if len(first.Pairs) != 1 || first.Pairs[0].Added != 0 {
		t.Errorf("Pairs = %v, want single pair with added index 0", first.Pairs)
	}
}
