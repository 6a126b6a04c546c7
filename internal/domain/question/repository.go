package question

import (
	"context"
	"time"
)

// Repository enumerates the fixed question collection. There is no lookup,
// update or delete; the only per-request operation is "enumerate, then
// slice". Implementations must return a snapshot the caller may not observe
// mutating.
type Repository interface {
	All(ctx context.Context) ([]Question, error)
}

// ListCache caches resolved pages keyed by the requested pagination. A miss
// is (nil, false, nil); failures are reported so the service can degrade to
// the repository.
type ListCache interface {
	Get(ctx context.Context, p Pagination) ([]Question, bool, error)
	Set(ctx context.Context, p Pagination, page []Question, ttl time.Duration) error
}
