package search

import (
	"sort"
	"strings"
)

// ComputeRelevance scores one record against query variants: the first text field
// (title or name) weighs 3, skills 2, any other text field 1. Capped at 10.
func ComputeRelevance(s Searchable, queryVariants []string) float64 {
	if len(queryVariants) == 0 {
		return 0
	}

	text := s.SearchText()
	title := ""
	rest := make([]string, 0, len(text))
	for i, f := range text {
		f = NormalizeQuery(f)
		if i == 0 {
			title = f
			continue
		}
		if f != "" {
			rest = append(rest, f)
		}
	}
	skills := make([]string, 0, len(s.SearchSkills()))
	for _, sk := range s.SearchSkills() {
		skills = append(skills, NormalizeQuery(sk))
	}

	score := 0.0
	for _, v := range queryVariants {
		if v == "" {
			continue
		}
		if title != "" && strings.Contains(title, v) {
			score += 3
		}
		if anyContains(skills, v) {
			score += 2
		}
		if anyContains(rest, v) {
			score += 1
		}
		if score >= 10 {
			return 10
		}
	}
	return score
}

// RankByRelevance reorders items by relevance to the query, keeping input order
// on ties. When nothing is relevant the input is returned unchanged.
func RankByRelevance[T Searchable](items []T, query string) []T {
	if len(items) == 0 {
		return items
	}
	variants := ProcessQuery(query).Variants
	if len(variants) == 0 {
		return items
	}

	type scoredItem struct {
		idx   int
		score float64
	}
	scored := make([]scoredItem, len(items))
	maxScore := 0.0
	for i := range items {
		s := ComputeRelevance(items[i], variants)
		scored[i] = scoredItem{idx: i, score: s}
		if s > maxScore {
			maxScore = s
		}
	}
	if maxScore == 0 {
		return items
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	out := make([]T, 0, len(items))
	for _, it := range scored {
		out = append(out, items[it.idx])
	}
	return out
}

func anyContains(fields []string, v string) bool {
	for _, f := range fields {
		if strings.Contains(f, v) {
			return true
		}
	}
	return false
}
