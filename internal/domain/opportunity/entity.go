package opportunity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"talent-sync/internal/domain/matching"
)

type Type string

const (
	TypeInternship Type = "internship"
	TypeResearch   Type = "research"
	TypeTraining   Type = "training"
)

var ErrDetailsMismatch = errors.New("opportunity details do not match type")

func ParseType(s string) (Type, bool) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeInternship:
		return TypeInternship, true
	case TypeResearch:
		return TypeResearch, true
	case TypeTraining:
		return TypeTraining, true
	default:
		return "", false
	}
}

type InternshipDetails struct {
	DurationMonths *int    `json:"duration_months,omitempty"`
	Paid           bool    `json:"paid"`
	Stipend        *string `json:"stipend,omitempty"`
	Remote         bool    `json:"remote"`
}

type ResearchDetails struct {
	Supervisor  *string `json:"supervisor,omitempty"`
	Lab         *string `json:"lab,omitempty"`
	FundingNote *string `json:"funding_note,omitempty"`
}

type TrainingDetails struct {
	Provider    *string    `json:"provider,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	Hours       *int       `json:"hours,omitempty"`
	Certificate bool       `json:"certificate"`
}

type Opportunity struct {
	ID                 uuid.UUID
	Title              string
	Organization       string
	Department         string
	Description        string
	Type               Type
	Location           string
	RequiredSkills     []matching.Requirement
	MinGPA             *float64
	MinExperienceYears *int
	Internship         *InternshipDetails
	Research           *ResearchDetails
	Training           *TrainingDetails
	CreatedAt          time.Time
}

// Validate checks that exactly the detail struct belonging to Type is set.
// Having none is allowed.
func (o Opportunity) Validate() error {
	if _, ok := ParseType(string(o.Type)); !ok {
		return ErrDetailsMismatch
	}
	if o.Internship != nil && o.Type != TypeInternship {
		return ErrDetailsMismatch
	}
	if o.Research != nil && o.Type != TypeResearch {
		return ErrDetailsMismatch
	}
	if o.Training != nil && o.Type != TypeTraining {
		return ErrDetailsMismatch
	}
	return nil
}

func (o Opportunity) Requirement() matching.OpportunityRequirement {
	req := make([]matching.Requirement, len(o.RequiredSkills))
	copy(req, o.RequiredSkills)
	return matching.OpportunityRequirement{
		ID:                 o.ID,
		RequiredSkills:     req,
		MinGPA:             o.MinGPA,
		MinExperienceYears: o.MinExperienceYears,
		Type:               string(o.Type),
		Location:           o.Location,
		Department:         o.Department,
	}
}

func (o Opportunity) SearchText() []string {
	return []string{o.Title, o.Organization, o.Department, o.Description}
}

func (o Opportunity) SearchSkills() []string {
	out := make([]string, 0, len(o.RequiredSkills))
	for _, r := range o.RequiredSkills {
		out = append(out, r.Name)
	}
	return out
}

func (o Opportunity) SearchType() string     { return string(o.Type) }
func (o Opportunity) SearchLocation() string { return o.Location }
