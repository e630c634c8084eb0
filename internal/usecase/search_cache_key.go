package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"talent-sync/internal/domain/matching"
	"talent-sync/internal/infrastructure/cache"
	"talent-sync/internal/search"
)

type opportunitySearchCacheKeyInput struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Skill    string `json:"skill"`
	Sort     string `json:"sort"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	if s == search.All {
		return ""
	}
	return s
}

// OpportunitySearchCacheKey is stable under case and whitespace changes and
// treats "all" like an absent filter, mirroring how the filter reads params.
func OpportunitySearchCacheKey(params SearchParams) string {
	in := opportunitySearchCacheKeyInput{
		Text:     normalizeSearchValue(params.Text),
		Type:     normalizeSearchValue(params.Type),
		Location: normalizeSearchValue(params.Location),
		Skill:    matching.NormalizeSkillName(normalizeSearchValue(params.Skill)),
		Sort:     normalizeSearchValue(params.Sort),
		Limit:    params.Limit,
		Offset:   params.Offset,
	}
	if in.Type != "" {
		in.Type = search.NormalizeType(in.Type)
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	h := hex.EncodeToString(sum[:])
	return cache.SearchKeyPrefix + h
}

func OpportunitySearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	return cache.SearchLockPrefix + strings.TrimPrefix(searchKey, cache.SearchKeyPrefix)
}
