package similarity

import "sort"

// MatchThreshold is the minimum combined similarity for a deleted/added
// pair to be treated as one edited item.
const MatchThreshold = 0.5

// Pair links one deleted item to one added item judged to be the same
// item edited.
type Pair struct {
	Deleted int
	Added   int
	Score   float64
}

// Match is the result of pairing server-only ("deleted") strings against
// local-only ("added") strings. Unmatched indices keep input order.
type Match struct {
	Pairs            []Pair
	UnmatchedDeleted []int
	UnmatchedAdded   []int
}

// MatchPairs pairs deleted against added strings greedily by descending
// combined similarity, accepting only scores at or above MatchThreshold.
// Each side participates in at most one pair. Ties break on the lower
// deleted index, then the lower added index, so the result is
// deterministic for identical input order.
func MatchPairs(deleted, added []string) Match {
	candidates := make([]Pair, 0, len(deleted)*len(added))
	for di, d := range deleted {
		for ai, a := range added {
			score := Similarity(d, a)
			if score >= MatchThreshold {
				candidates = append(candidates, Pair{Deleted: di, Added: ai, Score: score})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].Deleted != candidates[j].Deleted {
			return candidates[i].Deleted < candidates[j].Deleted
		}
		return candidates[i].Added < candidates[j].Added
	})

	usedDeleted := make(map[int]bool)
	usedAdded := make(map[int]bool)
	var match Match

	for _, c := range candidates {
		if usedDeleted[c.Deleted] || usedAdded[c.Added] {
			continue
		}
		usedDeleted[c.Deleted] = true
		usedAdded[c.Added] = true
		match.Pairs = append(match.Pairs, c)
	}

	for di := range deleted {
		if !usedDeleted[di] {
			match.UnmatchedDeleted = append(match.UnmatchedDeleted, di)
		}
	}
	for ai := range added {
		if !usedAdded[ai] {
			match.UnmatchedAdded = append(match.UnmatchedAdded, ai)
		}
	}

	return match
}
