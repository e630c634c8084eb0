package matching

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_ScoreAndRank(t *testing.T) {
	e := NewEngine(DefaultWeights())
	c := CandidateProfile{
		ID:     uuid.New(),
		Skills: []Skill{{Name: "Go", Proficiency: ProficiencyAdvanced}, {Name: "SQL", Proficiency: ProficiencyIntermediate}},
		GPA:    3.6,
	}
	weak := OpportunityRequirement{ID: uuid.New(), RequiredSkills: []Requirement{{Name: "Rust", MinProficiency: ProficiencyBeginner}}}
	strong := OpportunityRequirement{ID: uuid.New(), RequiredSkills: []Requirement{{Name: "golang", MinProficiency: ProficiencyIntermediate}}}
	partial := OpportunityRequirement{ID: uuid.New(), RequiredSkills: []Requirement{
		{Name: "Go", MinProficiency: ProficiencyBeginner},
		{Name: "Kubernetes", MinProficiency: ProficiencyBeginner},
	}}

	out := e.ScoreAndRank(c, []OpportunityRequirement{weak, strong, partial})

	require.Len(t, out, 3)
	assert.Equal(t, []uuid.UUID{strong.ID, partial.ID, weak.ID}, ids(out))
	assert.Equal(t, 100, out[0].Score)
	assert.Equal(t, 70, out[1].Score)
	assert.Equal(t, 20, out[2].Score)
}

func TestEngine_ScoreAndRank_EmptyPool(t *testing.T) {
	e := NewEngine(DefaultWeights())
	out := e.ScoreAndRank(CandidateProfile{}, nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestEngine_MatchDetailMatchesScore(t *testing.T) {
	e := NewEngine(DefaultWeights())
	c := CandidateProfile{Skills: []Skill{{Name: "Python", Proficiency: ProficiencyExpert}}, GPA: 3.0}
	o := OpportunityRequirement{RequiredSkills: []Requirement{{Name: "py", MinProficiency: ProficiencyAdvanced}}}

	assert.Equal(t, Score(c, o), e.MatchDetail(c, o))
}

func TestEngine_RankCandidatesKeepsApplicationOrderOnTies(t *testing.T) {
	e := NewEngine(DefaultWeights())
	o := OpportunityRequirement{ID: uuid.New(), RequiredSkills: []Requirement{{Name: "Go", MinProficiency: ProficiencyBeginner}}}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	early := CandidateProfile{ID: uuid.New(), Skills: []Skill{{Name: "Go", Proficiency: ProficiencyBeginner}}, AppliedAt: base}
	late := CandidateProfile{ID: uuid.New(), Skills: []Skill{{Name: "Go", Proficiency: ProficiencyExpert}}, AppliedAt: base.Add(time.Hour)}
	none := CandidateProfile{ID: uuid.New(), AppliedAt: base.Add(-time.Hour)}

	out := e.RankCandidates(o, []CandidateProfile{none, early, late})

	require.Len(t, out, 3)
	assert.Equal(t, early.ID, out[0].CandidateID)
	assert.Equal(t, late.ID, out[1].CandidateID)
	assert.Equal(t, none.ID, out[2].CandidateID)
}

func TestEngine_ConcurrentUse(t *testing.T) {
	e := NewEngine(DefaultWeights())
	c := CandidateProfile{Skills: []Skill{{Name: "Go", Proficiency: ProficiencyExpert}}}
	pool := []OpportunityRequirement{
		{RequiredSkills: []Requirement{{Name: "Go", MinProficiency: ProficiencyExpert}}},
		{RequiredSkills: []Requirement{{Name: "SQL", MinProficiency: ProficiencyBeginner}}},
	}
	want := e.ScoreAndRank(c, pool)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, e.ScoreAndRank(c, pool))
		}()
	}
	wg.Wait()
}
