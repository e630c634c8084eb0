package handler

import (
	"talent-sync/internal/delivery/http/dto"
	"talent-sync/internal/domain/matching"
	"talent-sync/internal/pkg/response"
	"talent-sync/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// EvaluateHandler scores snapshots posted in the body. Nothing is read from or
// written to the stores.
type EvaluateHandler struct {
	uc       usecase.MatchingUsecase
	validate *validator.Validate
}

func NewEvaluateHandler(uc usecase.MatchingUsecase) *EvaluateHandler {
	return &EvaluateHandler{uc: uc, validate: newValidator()}
}

func (h *EvaluateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/match")
	grp.Post("/evaluate", h.HandleEvaluate)
	grp.Post("/detail", h.HandleDetail)
}

func (h *EvaluateHandler) HandleEvaluate(c fiber.Ctx) error {
	var req dto.EvaluateRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	pool := make([]matching.OpportunityRequirement, 0, len(req.Opportunities))
	for _, o := range req.Opportunities {
		pool = append(pool, o.Requirement())
	}

	results := h.uc.Evaluate(req.Candidate.Profile(), pool)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResultResponses(results))
}

func (h *EvaluateHandler) HandleDetail(c fiber.Ctx) error {
	var req dto.MatchDetailRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	res := h.uc.EvaluateOne(req.Candidate.Profile(), req.Opportunity.Requirement())
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResultResponse(res))
}
