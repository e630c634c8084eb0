package search

import (
	"strings"

	"talent-sync/internal/domain/matching"
)

// All is the sentinel that disables a predicate field.
const All = "all"

// Searchable is implemented by anything the filter can run over: opportunities
// and candidates alike.
type Searchable interface {
	// SearchText returns the free-text fields, most important first (title or
	// name, then organization/department, then description).
	SearchText() []string
	SearchSkills() []string
	SearchType() string
	SearchLocation() string
}

type Predicate struct {
	Text     string
	Type     string
	Location string
	Skill    string
}

func active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, All)
}

func (p Predicate) IsEmpty() bool {
	return !active(p.Text) && !active(p.Type) && !active(p.Location) && !active(p.Skill)
}

// Filter keeps the records satisfying every active predicate field, in input
// order. The result is never nil.
func Filter[T Searchable](pool []T, p Predicate) []T {
	out := make([]T, 0, len(pool))
	if len(pool) == 0 {
		return out
	}
	m := p.compile()
	for _, it := range pool {
		if m.matches(it) {
			out = append(out, it)
		}
	}
	return out
}

// Matches reports whether a single record satisfies the predicate.
func (p Predicate) Matches(s Searchable) bool {
	return p.compile().matches(s)
}

type compiledPredicate struct {
	text      string
	textSkill string
	typ      string
	location string
	skill    string
}

func (p Predicate) compile() compiledPredicate {
	var c compiledPredicate
	if active(p.Text) {
		c.text = NormalizeQuery(p.Text)
		c.textSkill = matching.NormalizeSkillName(c.text)
	}
	if active(p.Type) {
		c.typ = NormalizeType(p.Type)
	}
	if active(p.Location) {
		c.location = NormalizeQuery(p.Location)
	}
	if active(p.Skill) {
		c.skill = matching.NormalizeSkillName(p.Skill)
	}
	return c
}

func (c compiledPredicate) matches(s Searchable) bool {
	if c.typ != "" && NormalizeType(s.SearchType()) != c.typ {
		return false
	}
	if c.location != "" && !strings.Contains(NormalizeQuery(s.SearchLocation()), c.location) {
		return false
	}
	if c.skill != "" && !hasSkill(s.SearchSkills(), c.skill) {
		return false
	}
	if c.text != "" && !c.matchesText(s) {
		return false
	}
	return true
}

func hasSkill(skills []string, want string) bool {
	for _, sk := range skills {
		if matching.NormalizeSkillName(sk) == want {
			return true
		}
	}
	return false
}

// matchesText is a case-insensitive substring test over the text fields and the
// raw skill names. Synonyms only count against whole skill names, so "js" finds
// a "JavaScript" skill while "golang" never matches "Google".
func (c compiledPredicate) matchesText(s Searchable) bool {
	for _, f := range s.SearchText() {
		if strings.Contains(NormalizeQuery(f), c.text) {
			return true
		}
	}
	for _, sk := range s.SearchSkills() {
		if strings.Contains(NormalizeQuery(sk), c.text) {
			return true
		}
		if c.textSkill != "" && matching.NormalizeSkillName(sk) == c.textSkill {
			return true
		}
	}
	return false
}
