package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"talent-sync/internal/domain/candidate"
	"talent-sync/internal/domain/matching"
	"talent-sync/internal/domain/opportunity"
	"talent-sync/internal/repository"
	"talent-sync/internal/search"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type MatchParams struct {
	Filter   search.Predicate
	MinScore int
	Limit    int
}

func (p MatchParams) normalize() (MatchParams, error) {
	if p.Limit == 0 {
		p.Limit = defaultPageLimit
	}
	if p.Limit < 0 || p.Limit > maxPageLimit {
		return MatchParams{}, ErrInvalidInput
	}
	if p.MinScore < 0 || p.MinScore > 100 {
		return MatchParams{}, ErrInvalidInput
	}
	return p, nil
}

type RankedOpportunity struct {
	Opportunity opportunity.Opportunity
	Result      matching.MatchResult
}

type RankedCandidate struct {
	Candidate candidate.Candidate
	Result    matching.MatchResult
}

type MatchingUsecase interface {
	ScoreAndRank(ctx context.Context, candidateID uuid.UUID, params MatchParams) ([]RankedOpportunity, error)
	MatchDetail(ctx context.Context, candidateID, opportunityID uuid.UUID) (RankedOpportunity, error)
	RankApplicants(ctx context.Context, opportunityID uuid.UUID, params MatchParams) ([]RankedCandidate, error)
	Evaluate(c matching.CandidateProfile, pool []matching.OpportunityRequirement) []matching.MatchResult
	EvaluateOne(c matching.CandidateProfile, o matching.OpportunityRequirement) matching.MatchResult
}

type Matching struct {
	candidates    repository.CandidateStore
	opportunities repository.OpportunityStore
	engine        *matching.Engine
	logger        *log.Logger
}

func NewMatchingUsecase(candidates repository.CandidateStore, opportunities repository.OpportunityStore, engine *matching.Engine, logger *log.Logger) *Matching {
	if engine == nil {
		engine = matching.NewEngine(matching.DefaultWeights())
	}
	return &Matching{candidates: candidates, opportunities: opportunities, engine: engine, logger: logger}
}

// ScoreAndRank scores the candidate against every opportunity passing the filter,
// best first. Equal scores keep the store's creation order.
func (u *Matching) ScoreAndRank(ctx context.Context, candidateID uuid.UUID, params MatchParams) ([]RankedOpportunity, error) {
	if candidateID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	params, err := params.normalize()
	if err != nil {
		return nil, err
	}

	var (
		cand candidate.Candidate
		pool []opportunity.Opportunity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cand, err = u.candidates.GetByID(gctx, candidateID)
		return err
	})
	g.Go(func() error {
		var err error
		pool, err = u.opportunities.List(gctx, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, u.mapStoreError(err, "load candidate and opportunities")
	}

	pool = search.Filter(pool, params.Filter)
	byID := make(map[uuid.UUID]opportunity.Opportunity, len(pool))
	reqs := make([]matching.OpportunityRequirement, 0, len(pool))
	for _, o := range pool {
		byID[o.ID] = o
		reqs = append(reqs, o.Requirement())
	}

	ranked := u.engine.ScoreAndRank(cand.Profile(), reqs)
	out := make([]RankedOpportunity, 0, min(len(ranked), params.Limit))
	for _, r := range ranked {
		if len(out) >= params.Limit {
			break
		}
		if r.Score < params.MinScore {
			continue
		}
		out = append(out, RankedOpportunity{Opportunity: byID[r.OpportunityID], Result: r})
	}

	u.logf("[Match] candidate=%s pool=%d returned=%d", candidateID, len(pool), len(out))
	return out, nil
}

func (u *Matching) MatchDetail(ctx context.Context, candidateID, opportunityID uuid.UUID) (RankedOpportunity, error) {
	if candidateID == uuid.Nil || opportunityID == uuid.Nil {
		return RankedOpportunity{}, ErrInvalidInput
	}

	var (
		cand candidate.Candidate
		opp  opportunity.Opportunity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cand, err = u.candidates.GetByID(gctx, candidateID)
		return err
	})
	g.Go(func() error {
		var err error
		opp, err = u.opportunities.GetByID(gctx, opportunityID)
		return err
	})
	if err := g.Wait(); err != nil {
		return RankedOpportunity{}, u.mapStoreError(err, "load match detail")
	}

	return RankedOpportunity{
		Opportunity: opp,
		Result:      u.engine.MatchDetail(cand.Profile(), opp.Requirement()),
	}, nil
}

// RankApplicants ranks the candidates who applied to one opportunity. Equal
// scores keep application order. The type predicate does not apply to
// candidates and is ignored.
func (u *Matching) RankApplicants(ctx context.Context, opportunityID uuid.UUID, params MatchParams) ([]RankedCandidate, error) {
	if opportunityID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	params, err := params.normalize()
	if err != nil {
		return nil, err
	}
	params.Filter.Type = ""

	var (
		opp        opportunity.Opportunity
		applicants []candidate.Candidate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		opp, err = u.opportunities.GetByID(gctx, opportunityID)
		return err
	})
	g.Go(func() error {
		var err error
		applicants, err = u.candidates.ListApplicants(gctx, opportunityID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, u.mapStoreError(err, "load applicants")
	}

	applicants = search.Filter(applicants, params.Filter)
	byID := make(map[uuid.UUID]candidate.Candidate, len(applicants))
	profiles := make([]matching.CandidateProfile, 0, len(applicants))
	for _, c := range applicants {
		byID[c.ID] = c
		profiles = append(profiles, c.Profile())
	}

	ranked := u.engine.RankCandidates(opp.Requirement(), profiles)
	out := make([]RankedCandidate, 0, min(len(ranked), params.Limit))
	for _, r := range ranked {
		if len(out) >= params.Limit {
			break
		}
		if r.Score < params.MinScore {
			continue
		}
		out = append(out, RankedCandidate{Candidate: byID[r.CandidateID], Result: r})
	}

	u.logf("[Match] opportunity=%s applicants=%d returned=%d", opportunityID, len(applicants), len(out))
	return out, nil
}

// Evaluate scores caller-supplied snapshots without touching the stores.
func (u *Matching) Evaluate(c matching.CandidateProfile, pool []matching.OpportunityRequirement) []matching.MatchResult {
	return u.engine.ScoreAndRank(c, pool)
}

func (u *Matching) EvaluateOne(c matching.CandidateProfile, o matching.OpportunityRequirement) matching.MatchResult {
	return u.engine.MatchDetail(c, o)
}

func (u *Matching) mapStoreError(err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrCandidateNotFound):
		return ErrCandidateNotFound
	case errors.Is(err, repository.ErrOpportunityNotFound):
		return ErrOpportunityNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		u.logf("[Match] %s failed: %v", op, err)
		return fmt.Errorf("%w: %s", ErrInternal, op)
	}
}

func (u *Matching) logf(format string, args ...any) {
	if u != nil && u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
