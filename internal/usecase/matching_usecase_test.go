package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-sync/internal/domain/candidate"
	"talent-sync/internal/domain/matching"
	"talent-sync/internal/search"

	"github.com/google/uuid"
)

func sampleCandidate() candidate.Candidate {
	return candidate.Candidate{
		ID:   uuid.New(),
		Name: "Ana",
		Skills: []matching.Skill{
			{Name: "Go", Proficiency: matching.ProficiencyAdvanced},
			{Name: "SQL", Proficiency: matching.ProficiencyBeginner},
		},
		GPA:             3.4,
		ExperienceYears: 1,
	}
}

func TestMatchingUsecase_ScoreAndRank(t *testing.T) {
	pool := opportunityPool()
	cand := sampleCandidate()
	uc := NewMatchingUsecase(mockCandidateStore{items: []candidate.Candidate{cand}}, &mockOpportunityStore{items: pool}, nil, nil)

	out, err := uc.ScoreAndRank(context.Background(), cand.ID, MatchParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 results, got %d", len(out))
	}
	// backend and bootcamp both score 100; creation order breaks the tie.
	if out[0].Opportunity.ID != pool[0].ID || out[1].Opportunity.ID != pool[2].ID || out[2].Opportunity.ID != pool[1].ID {
		t.Fatalf("unexpected order: %s, %s, %s", out[0].Opportunity.Title, out[1].Opportunity.Title, out[2].Opportunity.Title)
	}
	if out[0].Result.Score != 100 || out[1].Result.Score != 100 {
		t.Fatalf("expected top scores 100, got %d and %d", out[0].Result.Score, out[1].Result.Score)
	}
	if out[2].Result.Score != 20 {
		t.Fatalf("expected research score 20, got %d", out[2].Result.Score)
	}
	if out[2].Result.CandidateID != cand.ID || out[2].Result.OpportunityID != pool[1].ID {
		t.Fatalf("result ids not propagated")
	}
}

func TestMatchingUsecase_ScoreAndRankFilterMinScoreLimit(t *testing.T) {
	pool := opportunityPool()
	cand := sampleCandidate()
	uc := NewMatchingUsecase(mockCandidateStore{items: []candidate.Candidate{cand}}, &mockOpportunityStore{items: pool}, nil, nil)

	out, err := uc.ScoreAndRank(context.Background(), cand.ID, MatchParams{Filter: search.Predicate{Type: "research"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0].Opportunity.ID != pool[1].ID {
		t.Fatalf("expected only the research opportunity, got %d results", len(out))
	}

	out, err = uc.ScoreAndRank(context.Background(), cand.ID, MatchParams{MinScore: 50})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 results above 50, got %d", len(out))
	}

	out, err = uc.ScoreAndRank(context.Background(), cand.ID, MatchParams{Limit: 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0].Opportunity.ID != pool[0].ID {
		t.Fatalf("expected best result only")
	}
}

func TestMatchingUsecase_ScoreAndRankErrors(t *testing.T) {
	cand := sampleCandidate()

	uc := NewMatchingUsecase(mockCandidateStore{}, &mockOpportunityStore{}, nil, nil)
	if _, err := uc.ScoreAndRank(context.Background(), uuid.Nil, MatchParams{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.ScoreAndRank(context.Background(), cand.ID, MatchParams{MinScore: 101}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.ScoreAndRank(context.Background(), cand.ID, MatchParams{}); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}

	uc = NewMatchingUsecase(mockCandidateStore{items: []candidate.Candidate{cand}}, &mockOpportunityStore{listErr: errors.New("db down")}, nil, nil)
	if _, err := uc.ScoreAndRank(context.Background(), cand.ID, MatchParams{}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestMatchingUsecase_ScoreAndRankEmptyPool(t *testing.T) {
	cand := sampleCandidate()
	uc := NewMatchingUsecase(mockCandidateStore{items: []candidate.Candidate{cand}}, &mockOpportunityStore{}, nil, nil)

	out, err := uc.ScoreAndRank(context.Background(), cand.ID, MatchParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", out)
	}
}

func TestMatchingUsecase_MatchDetail(t *testing.T) {
	pool := opportunityPool()
	cand := sampleCandidate()
	uc := NewMatchingUsecase(mockCandidateStore{items: []candidate.Candidate{cand}}, &mockOpportunityStore{items: pool}, nil, nil)

	got, err := uc.MatchDetail(context.Background(), cand.ID, pool[1].ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Opportunity.ID != pool[1].ID {
		t.Fatalf("wrong opportunity")
	}
	if len(got.Result.MissingSkills) != 1 || got.Result.MissingSkills[0].Reason != matching.MissingAbsent {
		t.Fatalf("expected python missing as absent, got %+v", got.Result.MissingSkills)
	}
	want := matching.Score(cand.Profile(), pool[1].Requirement())
	if got.Result.Score != want.Score || got.Result.Breakdown != want.Breakdown {
		t.Fatalf("expected detail to equal a direct score, got %+v want %+v", got.Result, want)
	}

	if _, err := uc.MatchDetail(context.Background(), cand.ID, uuid.New()); !errors.Is(err, ErrOpportunityNotFound) {
		t.Fatalf("expected ErrOpportunityNotFound, got %v", err)
	}
}

func TestMatchingUsecase_RankApplicantsTiesKeepApplicationOrder(t *testing.T) {
	pool := opportunityPool()
	opp := pool[0]
	t0 := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	early := candidate.Candidate{ID: uuid.New(), Name: "Early", Location: "Jakarta", GPA: 3, AppliedAt: t0,
		Skills: []matching.Skill{{Name: "golang", Proficiency: matching.ProficiencyIntermediate}}}
	late := candidate.Candidate{ID: uuid.New(), Name: "Late", Location: "Jakarta", GPA: 3, AppliedAt: t0.Add(time.Hour),
		Skills: []matching.Skill{{Name: "Go", Proficiency: matching.ProficiencyExpert}}}
	weak := candidate.Candidate{ID: uuid.New(), Name: "Weak", Location: "Bandung", AppliedAt: t0.Add(2 * time.Hour),
		Skills: []matching.Skill{{Name: "Go", Proficiency: matching.ProficiencyBeginner}}}

	cands := mockCandidateStore{applicants: map[uuid.UUID][]candidate.Candidate{opp.ID: {early, late, weak}}}
	uc := NewMatchingUsecase(cands, &mockOpportunityStore{items: pool}, nil, nil)

	out, err := uc.RankApplicants(context.Background(), opp.ID, MatchParams{Filter: search.Predicate{Type: "research"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected type predicate to be ignored for applicants, got %d results", len(out))
	}
	if out[0].Candidate.ID != early.ID || out[1].Candidate.ID != late.ID || out[2].Candidate.ID != weak.ID {
		t.Fatalf("unexpected order: %s, %s, %s", out[0].Candidate.Name, out[1].Candidate.Name, out[2].Candidate.Name)
	}
	if out[0].Result.Score != out[1].Result.Score {
		t.Fatalf("expected a tie, got %d and %d", out[0].Result.Score, out[1].Result.Score)
	}

	out, err = uc.RankApplicants(context.Background(), opp.ID, MatchParams{Filter: search.Predicate{Location: "bandung"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0].Candidate.ID != weak.ID {
		t.Fatalf("expected only the bandung applicant")
	}
}

func TestMatchingUsecase_Evaluate(t *testing.T) {
	uc := NewMatchingUsecase(nil, nil, matching.NewEngine(matching.DefaultWeights()), nil)
	c := sampleCandidate().Profile()

	res := uc.Evaluate(c, nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil results")
	}

	one := uc.EvaluateOne(c, matching.OpportunityRequirement{ID: uuid.New()})
	if one.Score != 100 || one.CoverageRatio != 1 {
		t.Fatalf("expected vacuous match to score 100, got %d", one.Score)
	}
}
