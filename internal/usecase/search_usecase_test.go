package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-sync/internal/domain/matching"
	"talent-sync/internal/domain/opportunity"
	"talent-sync/internal/infrastructure/cache"

	"github.com/google/uuid"
)

func opportunityPool() []opportunity.Opportunity {
	t0 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return []opportunity.Opportunity{
		{ID: uuid.New(), Title: "Backend Intern", Organization: "Acme", Type: opportunity.TypeInternship, Location: "Jakarta",
			RequiredSkills: []matching.Requirement{{Name: "go", MinProficiency: matching.ProficiencyIntermediate}}, CreatedAt: t0},
		{ID: uuid.New(), Title: "Vision Research Assistant", Organization: "University", Type: opportunity.TypeResearch, Location: "Bandung",
			RequiredSkills: []matching.Requirement{{Name: "python", MinProficiency: matching.ProficiencyAdvanced}}, CreatedAt: t0.Add(time.Hour)},
		{ID: uuid.New(), Title: "Data Bootcamp", Organization: "Academy", Type: opportunity.TypeTraining, Location: "Remote",
			RequiredSkills: []matching.Requirement{{Name: "sql", MinProficiency: matching.ProficiencyBeginner}}, CreatedAt: t0.Add(2 * time.Hour)},
	}
}

func TestSearchUsecase_InvalidParams(t *testing.T) {
	uc := NewSearchUsecase(&mockOpportunityStore{}, nil, nil)

	for _, p := range []SearchParams{{Limit: -1}, {Limit: 101}, {Offset: -1}, {Sort: "score"}} {
		_, err := uc.SearchOpportunities(context.Background(), p)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("params %+v: expected ErrInvalidInput, got %v", p, err)
		}
	}
}

func TestSearchUsecase_FiltersTypeKeepingOrder(t *testing.T) {
	pool := opportunityPool()
	uc := NewSearchUsecase(&mockOpportunityStore{items: pool}, nil, nil)

	res, err := uc.SearchOpportunities(context.Background(), SearchParams{Type: "research"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Total != 1 || len(res.Items) != 1 {
		t.Fatalf("expected exactly 1 item, got total=%d items=%d", res.Total, len(res.Items))
	}
	if res.Items[0].ID != pool[1].ID {
		t.Fatalf("expected research opportunity, got %s", res.Items[0].Title)
	}
	if res.Limit != defaultPageLimit {
		t.Fatalf("expected default limit %d, got %d", defaultPageLimit, res.Limit)
	}
}

func TestSearchUsecase_EmptyResultIsNotError(t *testing.T) {
	uc := NewSearchUsecase(&mockOpportunityStore{items: opportunityPool()}, nil, nil)

	res, err := uc.SearchOpportunities(context.Background(), SearchParams{Skill: "rust"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Items == nil || len(res.Items) != 0 || res.Total != 0 {
		t.Fatalf("expected empty non-nil items, got %+v", res)
	}
}

func TestSearchUsecase_Paginates(t *testing.T) {
	pool := opportunityPool()
	uc := NewSearchUsecase(&mockOpportunityStore{items: pool}, nil, nil)

	res, err := uc.SearchOpportunities(context.Background(), SearchParams{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Total != 3 || len(res.Items) != 2 {
		t.Fatalf("expected total=3 items=2, got total=%d items=%d", res.Total, len(res.Items))
	}
	if res.Items[0].ID != pool[1].ID || res.Items[1].ID != pool[2].ID {
		t.Fatalf("unexpected page order")
	}

	res, err = uc.SearchOpportunities(context.Background(), SearchParams{Offset: 10})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Items) != 0 || res.Total != 3 {
		t.Fatalf("expected empty page with total 3, got %+v", res)
	}
}

func TestSearchUsecase_RelevanceSort(t *testing.T) {
	pool := opportunityPool()
	pool[0].Description = "some data work"
	uc := NewSearchUsecase(&mockOpportunityStore{items: pool}, nil, nil)

	res, err := uc.SearchOpportunities(context.Background(), SearchParams{Text: "data", Sort: "relevance"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Items) != 2 || res.Items[0].ID != pool[2].ID {
		t.Fatalf("expected title match first, got %+v", res.Items)
	}
}

func TestSearchUsecase_CachesListing(t *testing.T) {
	store := &mockOpportunityStore{items: opportunityPool()}
	c := newMemoryCache()
	uc := NewSearchUsecase(store, c, nil)

	first, err := uc.SearchOpportunities(context.Background(), SearchParams{Location: "Jakarta"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := uc.SearchOpportunities(context.Background(), SearchParams{Location: "  JAKARTA "})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if store.listCalls != 1 {
		t.Fatalf("expected 1 store call, got %d", store.listCalls)
	}
	if c.sets != 1 {
		t.Fatalf("expected 1 cache set, got %d", c.sets)
	}
	if len(second.Items) != 1 || second.Items[0].ID != first.Items[0].ID {
		t.Fatalf("cached listing differs: %+v vs %+v", second.Items, first.Items)
	}
	if second.Items[0].RequiredSkills[0].MinProficiency != matching.ProficiencyIntermediate {
		t.Fatalf("expected proficiency to survive the cache, got %v", second.Items[0].RequiredSkills[0].MinProficiency)
	}
	if len(c.locks) != 0 {
		t.Fatalf("expected rebuild lock to be released")
	}
}

func TestSearchUsecase_StoreErrorIsInternal(t *testing.T) {
	uc := NewSearchUsecase(&mockOpportunityStore{listErr: errors.New("boom")}, nil, nil)

	_, err := uc.SearchOpportunities(context.Background(), SearchParams{})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestOpportunitySearchCacheKey_Normalizes(t *testing.T) {
	a := OpportunitySearchCacheKey(SearchParams{Text: "Go  Developer", Type: "Intern", Skill: "JS", Limit: 20})
	b := OpportunitySearchCacheKey(SearchParams{Text: " go developer ", Type: "internship", Skill: "javascript", Limit: 20})
	if a != b {
		t.Fatalf("expected equal keys, got %s and %s", a, b)
	}

	all := OpportunitySearchCacheKey(SearchParams{Type: "ALL", Limit: 20})
	none := OpportunitySearchCacheKey(SearchParams{Limit: 20})
	if all != none {
		t.Fatalf("expected all sentinel to match empty filter")
	}

	other := OpportunitySearchCacheKey(SearchParams{Text: "go developer", Limit: 21})
	if other == b {
		t.Fatalf("expected different keys for different limits")
	}
}

func TestSearchUsecase_UnavailableCacheSkipsRebuildLock(t *testing.T) {
	store := &mockOpportunityStore{items: opportunityPool()}
	uc := NewSearchUsecase(store, cache.NewRedisWithClient(nil, 0, nil), nil)
	uc.lockWait = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	for i := 0; i < 3; i++ {
		res, err := uc.SearchOpportunities(ctx, SearchParams{})
		if err != nil {
			t.Fatalf("search %d: unexpected err: %v", i, err)
		}
		if res.Total != 3 {
			t.Fatalf("search %d: expected 3 items, got %d", i, res.Total)
		}
	}
	if store.listCalls != 3 {
		t.Fatalf("expected every search to hit the store, got %d list calls", store.listCalls)
	}
}
