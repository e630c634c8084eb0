package dto

import (
	"time"

	"talent-sync/internal/domain/candidate"
	"talent-sync/internal/domain/matching"

	"github.com/google/uuid"
)

type MatchedSkillResponse struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Proficiency string `json:"proficiency"`
	Required    string `json:"required"`
}

type MissingSkillResponse struct {
	Name     string  `json:"name"`
	Required string  `json:"required"`
	Reason   string  `json:"reason"`
	Actual   *string `json:"actual,omitempty"`
}

type BreakdownResponse struct {
	Coverage    float64 `json:"coverage"`
	Proficiency float64 `json:"proficiency"`
	GPA         float64 `json:"gpa"`
	Experience  float64 `json:"experience"`
}

type MatchResultResponse struct {
	CandidateID   uuid.UUID              `json:"candidate_id"`
	OpportunityID uuid.UUID              `json:"opportunity_id"`
	Score         int                    `json:"score"`
	CoverageRatio float64                `json:"coverage_ratio"`
	MatchedSkills []MatchedSkillResponse `json:"matched_skills"`
	MissingSkills []MissingSkillResponse `json:"missing_skills"`
	Breakdown     BreakdownResponse      `json:"breakdown"`
}

func NewMatchResultResponse(r matching.MatchResult) MatchResultResponse {
	out := MatchResultResponse{
		CandidateID:   r.CandidateID,
		OpportunityID: r.OpportunityID,
		Score:         r.Score,
		CoverageRatio: r.CoverageRatio,
		MatchedSkills: make([]MatchedSkillResponse, 0, len(r.MatchedSkills)),
		MissingSkills: make([]MissingSkillResponse, 0, len(r.MissingSkills)),
		Breakdown: BreakdownResponse{
			Coverage:    r.Breakdown.Coverage,
			Proficiency: r.Breakdown.Proficiency,
			GPA:         r.Breakdown.GPA,
			Experience:  r.Breakdown.Experience,
		},
	}
	for _, ms := range r.MatchedSkills {
		out.MatchedSkills = append(out.MatchedSkills, MatchedSkillResponse{
			Name:        ms.Name,
			Category:    ms.Category,
			Proficiency: ms.Proficiency.String(),
			Required:    ms.Required.String(),
		})
	}
	for _, ms := range r.MissingSkills {
		m := MissingSkillResponse{
			Name:     ms.Name,
			Required: ms.Required.String(),
			Reason:   string(ms.Reason),
		}
		if ms.Actual.Valid() {
			a := ms.Actual.String()
			m.Actual = &a
		}
		out.MissingSkills = append(out.MissingSkills, m)
	}
	return out
}

func NewMatchResultResponses(results []matching.MatchResult) []MatchResultResponse {
	out := make([]MatchResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, NewMatchResultResponse(r))
	}
	return out
}

type OpportunityMatchResponse struct {
	Opportunity OpportunitySummaryResponse `json:"opportunity"`
	Match       MatchResultResponse        `json:"match"`
}

type CandidateSummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Institution string    `json:"institution"`
	Program     string    `json:"program"`
	Location    string    `json:"location"`
	AppliedAt   string    `json:"applied_at,omitempty"`
}

func NewCandidateSummaryResponse(c candidate.Candidate) CandidateSummaryResponse {
	out := CandidateSummaryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Institution: c.Institution,
		Program:     c.Program,
		Location:    c.Location,
	}
	if !c.AppliedAt.IsZero() {
		out.AppliedAt = c.AppliedAt.UTC().Format(time.RFC3339)
	}
	return out
}

type ApplicantMatchResponse struct {
	Candidate CandidateSummaryResponse `json:"candidate"`
	Match     MatchResultResponse      `json:"match"`
}
