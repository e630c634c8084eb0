package search

import "strings"

// TypeAliases maps informal opportunity type names to the stored type.
var TypeAliases = map[string]string{
	"intern":       "internship",
	"internships":  "internship",
	"lab":          "research",
	"research lab": "research",
	"course":       "training",
	"workshop":     "training",
	"bootcamp":     "training",
	"trainings":    "training",
}

func NormalizeType(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if v, ok := TypeAliases[s]; ok {
		return v
	}
	return s
}
