package matching

import "strings"

// Synonyms maps cleaned aliases to their canonical skill name. Canonical names must
// not appear as keys so that normalization stays idempotent.
var Synonyms = map[string]string{
	"js":            "javascript",
	"ecmascript":    "javascript",
	"ts":            "typescript",
	"py":            "python",
	"python3":       "python",
	"golang":        "go",
	"ml":            "machine learning",
	"ai":            "artificial intelligence",
	"dl":            "deep learning",
	"nlp":           "natural language processing",
	"cv":            "computer vision",
	"k8s":           "kubernetes",
	"postgres":      "postgresql",
	"psql":          "postgresql",
	"nodejs":        "node.js",
	"node":          "node.js",
	"reactjs":       "react",
	"react.js":      "react",
	"vuejs":         "vue",
	"vue.js":        "vue",
	"c sharp":       "c#",
	"cpp":           "c++",
	"ux":            "user experience design",
	"ui":            "user interface design",
	"stats":         "statistics",
	"excel":         "microsoft excel",
	"ms excel":      "microsoft excel",
	"gcp":           "google cloud platform",
	"aws":           "amazon web services",
	"data analysis": "data analytics",
}

// compactSynonyms lets "machinelearning" resolve to "machine learning".
var compactSynonyms = buildCompactSynonyms()

func buildCompactSynonyms() map[string]string {
	out := make(map[string]string)
	for _, canonical := range Synonyms {
		if !strings.Contains(canonical, " ") {
			continue
		}
		out[strings.ReplaceAll(canonical, " ", "")] = canonical
	}
	return out
}

func cleanSkillName(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// NormalizeSkillName returns the comparable form of a free-text skill name.
// Empty or whitespace-only input yields "".
func NormalizeSkillName(raw string) string {
	name := cleanSkillName(raw)
	if name == "" {
		return ""
	}
	if canonical, ok := Synonyms[name]; ok {
		return canonical
	}
	if !strings.Contains(name, " ") {
		if canonical, ok := compactSynonyms[name]; ok {
			return canonical
		}
	}
	return name
}
