package repository

import (
	"context"
	"errors"
)

// ErrCacheUnavailable is returned when the backing store cannot be reached.
var ErrCacheUnavailable = errors.New("cache unavailable")

// CacheRepository stores serialized calculation results by key.
// A miss and a backend failure both report ok=false from Get; callers
// recompute in either case.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
