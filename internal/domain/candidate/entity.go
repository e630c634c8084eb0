package candidate

import (
	"time"

	"github.com/google/uuid"

	"talent-sync/internal/domain/matching"
)

type Candidate struct {
	ID              uuid.UUID
	Name            string
	Institution     string
	Program         string
	Location        string
	Bio             string
	Skills          []matching.Skill
	GPA             float64
	ExperienceYears int
	// AppliedAt is only set when the candidate was loaded as an applicant.
	AppliedAt time.Time
	CreatedAt time.Time
}

func (c Candidate) Profile() matching.CandidateProfile {
	skills := make([]matching.Skill, len(c.Skills))
	copy(skills, c.Skills)
	return matching.CandidateProfile{
		ID:              c.ID,
		Skills:          skills,
		GPA:             c.GPA,
		ExperienceYears: c.ExperienceYears,
		AppliedAt:       c.AppliedAt,
	}
}

func (c Candidate) SearchText() []string {
	return []string{c.Name, c.Institution, c.Program, c.Bio}
}

func (c Candidate) SearchSkills() []string {
	out := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		out = append(out, s.Name)
	}
	return out
}

// Candidates carry no opportunity type, so a type predicate never matches them.
func (c Candidate) SearchType() string     { return "" }
func (c Candidate) SearchLocation() string { return c.Location }
