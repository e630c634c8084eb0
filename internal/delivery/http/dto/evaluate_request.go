package dto

import (
	"encoding/json"

	"talent-sync/internal/domain/matching"

	"github.com/google/uuid"
)

type SkillRequest struct {
	Name        string `json:"name" validate:"max=100"`
	Category    string `json:"category" validate:"max=100"`
	Proficiency string `json:"proficiency" validate:"max=32"`
}

type RequirementRequest struct {
	Name           string `json:"name" validate:"max=100"`
	MinProficiency string `json:"min_proficiency" validate:"max=32"`
}

type CandidateRequest struct {
	ID              string         `json:"id" validate:"omitempty,uuid"`
	Skills          []SkillRequest `json:"skills" validate:"max=200,dive"`
	GPA             float64        `json:"gpa" validate:"gte=0,lte=4"`
	ExperienceYears int            `json:"experience_years" validate:"gte=0,lte=80"`
}

type OpportunityRequest struct {
	ID                 string               `json:"id" validate:"omitempty,uuid"`
	RequiredSkills     []RequirementRequest `json:"required_skills" validate:"max=100,dive"`
	MinGPA             *float64             `json:"min_gpa" validate:"omitempty,gte=0,lte=4"`
	MinExperienceYears *int                 `json:"min_experience_years" validate:"omitempty,gte=0,lte=80"`
	Type               string               `json:"type" validate:"max=32"`
	Location           string               `json:"location" validate:"max=200"`
	Department         string               `json:"department" validate:"max=200"`
}

type EvaluateRequest struct {
	Candidate     *CandidateRequest    `json:"candidate" validate:"required"`
	Opportunities []OpportunityRequest `json:"opportunities" validate:"required,max=500,dive"`
}

type MatchDetailRequest struct {
	Candidate   *CandidateRequest   `json:"candidate" validate:"required"`
	Opportunity *OpportunityRequest `json:"opportunity" validate:"required"`
}

// Profile converts the request into an engine snapshot. Unknown proficiency names
// become ProficiencyUnknown, which the matcher ignores.
func (r CandidateRequest) Profile() matching.CandidateProfile {
	skills := make([]matching.Skill, 0, len(r.Skills))
	for _, s := range r.Skills {
		p, _ := matching.ParseProficiency(s.Proficiency)
		skills = append(skills, matching.Skill{Name: s.Name, Category: s.Category, Proficiency: p})
	}
	id, _ := uuid.Parse(r.ID)
	return matching.CandidateProfile{
		ID:              id,
		Skills:          skills,
		GPA:             r.GPA,
		ExperienceYears: r.ExperienceYears,
	}
}

// evaluateNamespace scopes ids derived for opportunities posted without one.
var evaluateNamespace = uuid.MustParse("0f6b8e1c-3d4a-5b7e-9c21-6a5d4e3f2b10")

// Requirement converts the request into an engine snapshot. A missing ID is
// derived from the opportunity's content, so the same body always yields the
// same opportunity_id.
func (r OpportunityRequest) Requirement() matching.OpportunityRequirement {
	reqs := make([]matching.Requirement, 0, len(r.RequiredSkills))
	for _, s := range r.RequiredSkills {
		p, _ := matching.ParseProficiency(s.MinProficiency)
		reqs = append(reqs, matching.Requirement{Name: s.Name, MinProficiency: p})
	}
	id, err := uuid.Parse(r.ID)
	if err != nil {
		raw, _ := json.Marshal(r)
		id = uuid.NewSHA1(evaluateNamespace, raw)
	}
	return matching.OpportunityRequirement{
		ID:                 id,
		RequiredSkills:     reqs,
		MinGPA:             r.MinGPA,
		MinExperienceYears: r.MinExperienceYears,
		Type:               r.Type,
		Location:           r.Location,
		Department:         r.Department,
	}
}
