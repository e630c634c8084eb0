package handler

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"talent-sync/internal/delivery/http/middleware"
	"talent-sync/internal/pkg/response"
	"talent-sync/internal/search"
	"talent-sync/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func predicateFromQuery(c fiber.Ctx) search.Predicate {
	return search.Predicate{
		Text:     c.Query("q"),
		Type:     c.Query("type"),
		Location: c.Query("location"),
		Skill:    c.Query("skill"),
	}
}

func matchParamsFromQuery(c fiber.Ctx) (usecase.MatchParams, error) {
	minScore, err := parseQueryIntStrict(c, "min_score", 0)
	if err != nil {
		return usecase.MatchParams{}, err
	}
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return usecase.MatchParams{}, err
	}
	return usecase.MatchParams{Filter: predicateFromQuery(c), MinScore: minScore, Limit: limit}, nil
}

func badRequest(err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return badRequest(err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrOpportunityNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Opportunity not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// validationError turns validator failures into a 422 whose data maps each
// field path to the rule it broke.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return badRequest(err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if i := strings.Index(ns, "."); i >= 0 {
			ns = ns[i+1:]
		}
		fields[ns] = fe.Tag()
	}
	return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", fields, err)
}
