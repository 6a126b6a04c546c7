package question

import (
	"context"
	"log/slog"
	"time"

	apperrors "github.com/yanqian/question-board/pkg/errors"
)

// Config carries the tunables of the question domain.
type Config struct {
	CacheTTL time.Duration
}

// Service exposes the read side of the question collection.
type Service interface {
	List(ctx context.Context, p Pagination) ([]Question, error)
}

type service struct {
	cfg    Config
	repo   Repository
	cache  ListCache
	logger *slog.Logger
}

// NewService wires up the question domain.
func NewService(cfg Config, repo Repository, cache ListCache, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		repo:   repo,
		cache:  cache,
		logger: logger.With("component", "question.service"),
	}
}

// List enumerates the collection and slices it by the clamped range. The
// result is never nil so an empty page serializes as a JSON array.
func (s *service) List(ctx context.Context, p Pagination) ([]Question, error) {
	if page, found, err := s.cache.Get(ctx, p); err != nil {
		s.logger.Warn("cache lookup failed", "error", err)
	} else if found {
		return page, nil
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, apperrors.Wrap(CodeUnavailable, "questions unavailable", err)
	}

	lo, hi := p.Bounds(len(all))
	page := make([]Question, hi-lo)
	copy(page, all[lo:hi])

	if err := s.cache.Set(ctx, p, page, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("cache save failed", "error", err)
	}
	return page, nil
}
