package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"talent-sync/internal/domain/opportunity"
	"talent-sync/internal/repository"
	"talent-sync/internal/search"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100

	SortCreated   = "created"
	SortRelevance = "relevance"
)

type SearchParams struct {
	Text     string
	Type     string
	Location string
	Skill    string
	// Sort is "created" (pool order, default) or "relevance".
	Sort   string
	Limit  int
	Offset int
}

func (p SearchParams) Predicate() search.Predicate {
	return search.Predicate{Text: p.Text, Type: p.Type, Location: p.Location, Skill: p.Skill}
}

type SearchResult struct {
	Items  []opportunity.Opportunity
	Total  int
	Limit  int
	Offset int
}

type SearchUsecase interface {
	SearchOpportunities(ctx context.Context, params SearchParams) (SearchResult, error)
}

type Search struct {
	opportunities repository.OpportunityStore
	cache         SearchCache
	logger        *log.Logger
	lockWait      time.Duration
}

func NewSearchUsecase(opportunities repository.OpportunityStore, cache SearchCache, logger *log.Logger) *Search {
	return &Search{opportunities: opportunities, cache: cache, logger: logger, lockWait: 300 * time.Millisecond}
}

func (u *Search) SearchOpportunities(ctx context.Context, params SearchParams) (SearchResult, error) {
	limit := params.Limit
	if limit == 0 {
		limit = defaultPageLimit
	}
	if limit < 0 || limit > maxPageLimit {
		return SearchResult{}, ErrInvalidInput
	}
	if params.Offset < 0 {
		return SearchResult{}, ErrInvalidInput
	}
	sortBy := strings.ToLower(strings.TrimSpace(params.Sort))
	switch sortBy {
	case "":
		sortBy = SortCreated
	case SortCreated, SortRelevance:
	default:
		return SearchResult{}, ErrInvalidInput
	}
	params.Limit = limit
	params.Sort = sortBy

	cacheKey := OpportunitySearchCacheKey(params)
	lockKey := OpportunitySearchLockKey(cacheKey)

	if out, ok := u.cached(ctx, cacheKey); ok {
		return out, nil
	}

	lockAcquired := false
	if u.cacheEnabled() {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && ok {
			lockAcquired = true
		} else if err == nil && !ok {
			select {
			case <-ctx.Done():
				return SearchResult{}, ctx.Err()
			case <-time.After(u.lockWait):
			}
			if out, ok := u.cached(ctx, cacheKey); ok {
				return out, nil
			}
			u.logf("[Search] Lock wait fallback: %s", lockKey)
		}
	}
	if lockAcquired {
		defer func() {
			_ = u.cache.Delete(context.WithoutCancel(ctx), lockKey)
		}()
	}

	pool, err := u.opportunities.List(ctx, 0)
	if err != nil {
		u.logf("[Search] list opportunities failed: %v", err)
		return SearchResult{}, fmt.Errorf("%w: list opportunities", ErrInternal)
	}

	filtered := search.Filter(pool, params.Predicate())
	if sortBy == SortRelevance {
		filtered = search.RankByRelevance(filtered, params.Text)
	}

	out := SearchResult{
		Items:  paginate(filtered, params.Offset, limit),
		Total:  len(filtered),
		Limit:  limit,
		Offset: params.Offset,
	}

	if u.cacheEnabled() {
		if err := u.cache.SetJSON(ctx, cacheKey, out, 0); err == nil {
			u.logf("[Search] Cache SET: %s", cacheKey)
		}
	}
	return out, nil
}

func (u *Search) cached(ctx context.Context, key string) (SearchResult, bool) {
	if !u.cacheEnabled() {
		return SearchResult{}, false
	}
	var out SearchResult
	hit, err := u.cache.GetJSON(ctx, key, &out)
	if err == nil && hit {
		u.logf("[Search] Cache HIT: %s", key)
		if out.Items == nil {
			out.Items = []opportunity.Opportunity{}
		}
		return out, true
	}
	u.logf("[Search] Cache MISS: %s", key)
	return SearchResult{}, false
}

func (u *Search) cacheEnabled() bool {
	return u.cache != nil && u.cache.Available()
}

func (u *Search) logf(format string, args ...any) {
	if u != nil && u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return out
}
