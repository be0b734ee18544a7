package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../../application/service/projection/mock_cache_test.go -package=projection bondprojector/internal/domain/interfaces ProjectionCache

// ProjectionCache memoizes encoded projection tables.
type ProjectionCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
