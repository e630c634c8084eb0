package usecase

import (
	"context"
	"time"
)

// SearchCache stores rendered listings. An unavailable cache is bypassed
// entirely, including the rebuild lock.
type SearchCache interface {
	Available() bool
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}
