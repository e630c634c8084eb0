package search

import (
	"strings"

	"talent-sync/internal/domain/matching"
)

type QueryContext struct {
	Original   string
	Normalized string
	Variants   []string
}

// NormalizeQuery lowercases and collapses whitespace. Punctuation is kept so that
// queries like "c#" or "node.js" still match.
func NormalizeQuery(input string) string {
	return strings.Join(strings.Fields(strings.ToLower(input)), " ")
}

// ExpandQuery returns the normalized query followed by its canonical skill form
// and the canonical form of each word, without duplicates.
func ExpandQuery(normalized string) []string {
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return []string{}
	}

	out := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(normalized)
	add(matching.NormalizeSkillName(normalized))

	words := strings.Fields(normalized)
	if len(words) > 1 {
		replaced := make([]string, 0, len(words))
		changed := false
		for _, w := range words {
			c := matching.NormalizeSkillName(w)
			if c != w {
				changed = true
			}
			replaced = append(replaced, c)
		}
		if changed {
			add(strings.Join(replaced, " "))
		}
	}

	return out
}

func ProcessQuery(input string) QueryContext {
	ctx := QueryContext{Original: input}
	ctx.Normalized = NormalizeQuery(input)
	ctx.Variants = ExpandQuery(ctx.Normalized)
	return ctx
}
