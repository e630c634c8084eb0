package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"talent-sync/internal/domain/candidate"
	"talent-sync/internal/domain/opportunity"
	"talent-sync/internal/repository"

	"github.com/google/uuid"
)

type mockOpportunityStore struct {
	items   []opportunity.Opportunity
	listErr error
	getErr  error

	mu        sync.Mutex
	listCalls int
}

func (m *mockOpportunityStore) GetByID(_ context.Context, id uuid.UUID) (opportunity.Opportunity, error) {
	if m.getErr != nil {
		return opportunity.Opportunity{}, m.getErr
	}
	for _, o := range m.items {
		if o.ID == id {
			return o, nil
		}
	}
	return opportunity.Opportunity{}, repository.ErrOpportunityNotFound
}

func (m *mockOpportunityStore) List(context.Context, int) ([]opportunity.Opportunity, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]opportunity.Opportunity, len(m.items))
	copy(out, m.items)
	return out, nil
}

type mockCandidateStore struct {
	items      []candidate.Candidate
	applicants map[uuid.UUID][]candidate.Candidate
	err        error
}

func (m mockCandidateStore) GetByID(_ context.Context, id uuid.UUID) (candidate.Candidate, error) {
	if m.err != nil {
		return candidate.Candidate{}, m.err
	}
	for _, c := range m.items {
		if c.ID == id {
			return c, nil
		}
	}
	return candidate.Candidate{}, repository.ErrCandidateNotFound
}

func (m mockCandidateStore) ListApplicants(_ context.Context, opportunityID uuid.UUID) ([]candidate.Candidate, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.applicants[opportunityID], nil
}

type memoryCache struct {
	mu    sync.Mutex
	data  map[string][]byte
	locks map[string]bool
	sets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}, locks: map[string]bool{}}
}

func (c *memoryCache) Available() bool { return true }

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	c.sets++
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	delete(c.locks, key)
	return nil
}

func (c *memoryCache) SetIfNotExists(_ context.Context, key string, _ string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.locks[key] {
		return false, nil
	}
	c.locks[key] = true
	return true, nil
}
