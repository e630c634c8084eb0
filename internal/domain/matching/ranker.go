package matching

import "sort"

// Rank orders results best-first. The sort is stable, so results with equal
// scores keep their input order; callers that want "earlier application wins"
// pass pools ordered by application time. The input slice is not modified.
func Rank(results []MatchResult) []MatchResult {
	out := make([]MatchResult, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
