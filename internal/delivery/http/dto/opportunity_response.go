package dto

import (
	"time"

	"talent-sync/internal/domain/opportunity"

	"github.com/google/uuid"
)

type RequirementResponse struct {
	Name           string `json:"name"`
	MinProficiency string `json:"min_proficiency"`
}

type OpportunityResponse struct {
	ID                 uuid.UUID             `json:"id"`
	Title              string                `json:"title"`
	Organization       string                `json:"organization"`
	Department         string                `json:"department"`
	Description        string                `json:"description"`
	Type               string                `json:"type"`
	Location           string                `json:"location"`
	RequiredSkills     []RequirementResponse `json:"required_skills"`
	MinGPA             *float64              `json:"min_gpa"`
	MinExperienceYears *int                  `json:"min_experience_years"`
	Details            any                   `json:"details,omitempty"`
	CreatedAt          string                `json:"created_at"`
}

type OpportunityListResponse struct {
	Items  []OpportunityResponse `json:"items"`
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

func NewOpportunityResponse(o opportunity.Opportunity) OpportunityResponse {
	skills := make([]RequirementResponse, 0, len(o.RequiredSkills))
	for _, r := range o.RequiredSkills {
		skills = append(skills, RequirementResponse{Name: r.Name, MinProficiency: r.MinProficiency.String()})
	}

	var details any
	switch {
	case o.Internship != nil:
		details = o.Internship
	case o.Research != nil:
		details = o.Research
	case o.Training != nil:
		details = o.Training
	}

	created := ""
	if !o.CreatedAt.IsZero() {
		created = o.CreatedAt.UTC().Format(time.RFC3339)
	}

	return OpportunityResponse{
		ID:                 o.ID,
		Title:              o.Title,
		Organization:       o.Organization,
		Department:         o.Department,
		Description:        o.Description,
		Type:               string(o.Type),
		Location:           o.Location,
		RequiredSkills:     skills,
		MinGPA:             o.MinGPA,
		MinExperienceYears: o.MinExperienceYears,
		Details:            details,
		CreatedAt:          created,
	}
}

type OpportunitySummaryResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Organization string    `json:"organization"`
	Type         string    `json:"type"`
	Location     string    `json:"location"`
}

func NewOpportunitySummaryResponse(o opportunity.Opportunity) OpportunitySummaryResponse {
	return OpportunitySummaryResponse{
		ID:           o.ID,
		Title:        o.Title,
		Organization: o.Organization,
		Type:         string(o.Type),
		Location:     o.Location,
	}
}
