// Package similarity provides the string similarity measures and the
// bipartite pairing used to tell an edited rule apart from an unrelated
// delete+add pair.
package similarity

import "strings"

// Levenshtein computes the edit distance between two strings using the
// two-row dynamic programming form.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(curr[j-1]+1, min(prev[j]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// LevenshteinSimilarity normalizes edit distance to [0,1]. Two empty
// strings are defined as not similar and score 0.
func LevenshteinSimilarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 0
	}
	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

// TokenSetSimilarity is the Jaccard index over lower-cased,
// whitespace-split token sets. Two empty strings score 0.
func TokenSetSimilarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for token := range setA {
		if setB[token] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Similarity combines both measures by taking the maximum: restructured
// sentences score low on edit distance but can still score reasonably on
// token overlap.
func Similarity(a, b string) float64 {
	return max(LevenshteinSimilarity(a, b), TokenSetSimilarity(a, b))
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Fields(strings.ToLower(s)) {
		set[token] = true
	}
	return set
}
