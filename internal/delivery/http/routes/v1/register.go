package v1

import (
	"talent-sync/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Opportunity *handler.OpportunityHandler
	Match       *handler.MatchHandler
	Evaluate    *handler.EvaluateHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Opportunity != nil {
		h.Opportunity.RegisterRoutes(r)
	}
	if h.Match != nil {
		h.Match.RegisterRoutes(r)
	}
	if h.Evaluate != nil {
		h.Evaluate.RegisterRoutes(r)
	}
}
