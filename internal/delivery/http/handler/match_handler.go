package handler

import (
	"talent-sync/internal/delivery/http/dto"
	"talent-sync/internal/pkg/response"
	"talent-sync/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	candidates := r.Group("/candidates")
	candidates.Get("/:candidate_id/matches", h.GetMatches)
	candidates.Get("/:candidate_id/matches/:opportunity_id", h.GetMatchDetail)

	opportunities := r.Group("/opportunities")
	opportunities.Get("/:opportunity_id/applicants", h.GetApplicants)
}

func (h *MatchHandler) GetMatches(c fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("candidate_id"))
	if err != nil {
		return badRequest(err)
	}
	params, err := matchParamsFromQuery(c)
	if err != nil {
		return badRequest(err)
	}

	ranked, err := h.uc.ScoreAndRank(c.Context(), candidateID, params)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.OpportunityMatchResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, dto.OpportunityMatchResponse{
			Opportunity: dto.NewOpportunitySummaryResponse(r.Opportunity),
			Match:       dto.NewMatchResultResponse(r.Result),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchHandler) GetMatchDetail(c fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("candidate_id"))
	if err != nil {
		return badRequest(err)
	}
	opportunityID, err := uuid.Parse(c.Params("opportunity_id"))
	if err != nil {
		return badRequest(err)
	}

	res, err := h.uc.MatchDetail(c.Context(), candidateID, opportunityID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.OpportunityMatchResponse{
		Opportunity: dto.NewOpportunitySummaryResponse(res.Opportunity),
		Match:       dto.NewMatchResultResponse(res.Result),
	})
}

func (h *MatchHandler) GetApplicants(c fiber.Ctx) error {
	opportunityID, err := uuid.Parse(c.Params("opportunity_id"))
	if err != nil {
		return badRequest(err)
	}
	params, err := matchParamsFromQuery(c)
	if err != nil {
		return badRequest(err)
	}

	ranked, err := h.uc.RankApplicants(c.Context(), opportunityID, params)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.ApplicantMatchResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, dto.ApplicantMatchResponse{
			Candidate: dto.NewCandidateSummaryResponse(r.Candidate),
			Match:     dto.NewMatchResultResponse(r.Result),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
