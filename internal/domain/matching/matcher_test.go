package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchedNames(ms []MatchedSkill) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Name)
	}
	return out
}

func missingNames(ms []MissingSkill) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Name)
	}
	return out
}

func TestMatchSkills_PartialCoverage(t *testing.T) {
	candidate := []Skill{
		{Name: "Python", Proficiency: ProficiencyAdvanced},
		{Name: "SQL", Proficiency: ProficiencyIntermediate},
	}
	required := []Requirement{
		{Name: "Python", MinProficiency: ProficiencyIntermediate},
		{Name: "MachineLearning", MinProficiency: ProficiencyBeginner},
	}

	m := MatchSkills(candidate, required)

	assert.Equal(t, []string{"python"}, matchedNames(m.Matched))
	assert.Equal(t, []string{"machine learning"}, missingNames(m.Missing))
	assert.InDelta(t, 0.5, m.CoverageRatio, 1e-9)
	assert.Equal(t, MissingAbsent, m.Missing[0].Reason)
}

func TestMatchSkills_EmptyRequirementsIsVacuousMatch(t *testing.T) {
	m := MatchSkills([]Skill{{Name: "Go", Proficiency: ProficiencyExpert}}, nil)

	assert.Equal(t, 1.0, m.CoverageRatio)
	assert.Empty(t, m.Matched)
	assert.Empty(t, m.Missing)
	assert.NotNil(t, m.Matched)
	assert.NotNil(t, m.Missing)
}

func TestMatchSkills_UnderQualifiedIsAnnotatedButNotCounted(t *testing.T) {
	m := MatchSkills(
		[]Skill{{Name: "go", Proficiency: ProficiencyBeginner}},
		[]Requirement{{Name: "Golang", MinProficiency: ProficiencyAdvanced}},
	)

	require.Len(t, m.Missing, 1)
	assert.Equal(t, MissingUnderQualified, m.Missing[0].Reason)
	assert.Equal(t, ProficiencyBeginner, m.Missing[0].Actual)
	assert.Equal(t, ProficiencyAdvanced, m.Missing[0].Required)
	assert.Equal(t, 0.0, m.CoverageRatio)
}

func TestMatchSkills_SynonymsMatch(t *testing.T) {
	m := MatchSkills(
		[]Skill{{Name: "JS", Proficiency: ProficiencyExpert}, {Name: "k8s", Proficiency: ProficiencyIntermediate}},
		[]Requirement{{Name: "JavaScript", MinProficiency: ProficiencyAdvanced}, {Name: "Kubernetes", MinProficiency: ProficiencyIntermediate}},
	)

	assert.ElementsMatch(t, []string{"javascript", "kubernetes"}, matchedNames(m.Matched))
	assert.Equal(t, 1.0, m.CoverageRatio)
}

func TestMatchSkills_MalformedEntries(t *testing.T) {
	candidate := []Skill{
		{Name: "", Proficiency: ProficiencyExpert},
		{Name: "Docker", Proficiency: ProficiencyUnknown},
		{Name: "SQL", Proficiency: Proficiency(42)},
	}
	required := []Requirement{
		{Name: "   ", MinProficiency: ProficiencyBeginner},
		{Name: "Docker", MinProficiency: ProficiencyBeginner},
		{Name: "SQL", MinProficiency: ProficiencyUnknown},
	}

	m := MatchSkills(candidate, required)

	assert.Empty(t, m.Matched)
	assert.Equal(t, []string{"docker", "sql"}, missingNames(m.Missing))
	for _, ms := range m.Missing {
		assert.Equal(t, MissingAbsent, ms.Reason)
	}
	assert.Equal(t, ProficiencyBeginner, m.Missing[1].Required)
}

func TestMatchSkills_Duplicates(t *testing.T) {
	candidate := []Skill{
		{Name: "Python", Proficiency: ProficiencyBeginner},
		{Name: "python", Proficiency: ProficiencyExpert},
	}
	required := []Requirement{
		{Name: "Python", MinProficiency: ProficiencyBeginner},
		{Name: "PY", MinProficiency: ProficiencyAdvanced},
	}

	m := MatchSkills(candidate, required)

	require.Len(t, m.Matched, 1)
	assert.Equal(t, ProficiencyAdvanced, m.Matched[0].Required)
	assert.Equal(t, ProficiencyExpert, m.Matched[0].Proficiency)
	assert.Equal(t, 1.0, m.CoverageRatio)
}

func TestMatchSkills_ZeroCandidateSkills(t *testing.T) {
	m := MatchSkills(nil, []Requirement{
		{Name: "Go", MinProficiency: ProficiencyBeginner},
		{Name: "SQL", MinProficiency: ProficiencyBeginner},
		{Name: "Docker", MinProficiency: ProficiencyBeginner},
	})

	assert.Equal(t, 0.0, m.CoverageRatio)
	assert.Len(t, m.Missing, 3)
}
