package questioncache

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/question-board/internal/domain/question"
)

type cachedPage struct {
	page      []question.Question
	expiresAt time.Time
}

// MemoryStore is the in-process fallback for the page cache.
type MemoryStore struct {
	mu    sync.RWMutex
	pages map[question.Pagination]cachedPage
}

// NewMemoryStore constructs a cache backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{pages: make(map[question.Pagination]cachedPage)}
}

// Get implements question.ListCache.
func (s *MemoryStore) Get(_ context.Context, p question.Pagination) ([]question.Question, bool, error) {
	s.mu.RLock()
	entry, ok := s.pages[p]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if hasExpired(entry.expiresAt) {
		s.mu.Lock()
		delete(s.pages, p)
		s.mu.Unlock()
		return nil, false, nil
	}
	page := make([]question.Question, len(entry.page))
	copy(page, entry.page)
	return page, true, nil
}

// Set caches the page with optional TTL; ttl <= 0 means no expiry.
func (s *MemoryStore) Set(_ context.Context, p question.Pagination, page []question.Question, ttl time.Duration) error {
	stored := make([]question.Question, len(page))
	copy(stored, page)

	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.pages[p] = cachedPage{page: stored, expiresAt: exp}
	s.mu.Unlock()
	return nil
}

func hasExpired(expiresAt time.Time) bool {
	return !expiresAt.IsZero() && time.Now().After(expiresAt)
}

var _ question.ListCache = (*MemoryStore)(nil)
