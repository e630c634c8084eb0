package handler

import (
	"talent-sync/internal/delivery/http/dto"
	"talent-sync/internal/pkg/response"
	"talent-sync/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type OpportunityHandler struct {
	uc usecase.SearchUsecase
}

func NewOpportunityHandler(uc usecase.SearchUsecase) *OpportunityHandler {
	return &OpportunityHandler{uc: uc}
}

func (h *OpportunityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/opportunities")
	grp.Get("", h.HandleSearch)
}

func (h *OpportunityHandler) HandleSearch(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return badRequest(err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return badRequest(err)
	}

	res, err := h.uc.SearchOpportunities(c.Context(), usecase.SearchParams{
		Text:     c.Query("q"),
		Type:     c.Query("type"),
		Location: c.Query("location"),
		Skill:    c.Query("skill"),
		Sort:     c.Query("sort"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.OpportunityListResponse{
		Items:  make([]dto.OpportunityResponse, 0, len(res.Items)),
		Total:  res.Total,
		Limit:  res.Limit,
		Offset: res.Offset,
	}
	for _, o := range res.Items {
		out.Items = append(out.Items, dto.NewOpportunityResponse(o))
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
