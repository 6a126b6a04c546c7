package question

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/question-board/pkg/errors"
)

var fixtureQuestions = []Question{
	{ID: "1", Title: "First", Content: "one", Tags: []string{"faq"}},
	{ID: "2", Title: "Second", Content: "two"},
	{ID: "3", Title: "Third", Content: "three"},
	{ID: "4", Title: "Fourth", Content: "four"},
	{ID: "5", Title: "Fifth", Content: "five"},
}

func TestServiceList_FullRange(t *testing.T) {
	svc := newServiceUnderTest(&stubRepo{questions: fixtureQuestions}, &stubCache{})

	got, err := svc.List(context.Background(), Pagination{Start: 0, End: UnboundedEnd})
	require.NoError(t, err)
	require.Equal(t, fixtureQuestions, got)
}

func TestServiceList_ClampsOversizedEnd(t *testing.T) {
	svc := newServiceUnderTest(&stubRepo{questions: fixtureQuestions}, &stubCache{})

	got, err := svc.List(context.Background(), Pagination{Start: 2, End: 10})
	require.NoError(t, err)
	require.Equal(t, fixtureQuestions[2:5], got)
}

func TestServiceList_EmptyPageIsNotNil(t *testing.T) {
	svc := newServiceUnderTest(&stubRepo{questions: fixtureQuestions}, &stubCache{})

	got, err := svc.List(context.Background(), Pagination{Start: 9, End: 12})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestServiceList_RepositoryFailure(t *testing.T) {
	repo := &stubRepo{err: errors.New("source gone")}
	svc := newServiceUnderTest(repo, &stubCache{})

	_, err := svc.List(context.Background(), Pagination{Start: 0, End: UnboundedEnd})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, CodeUnavailable))
}

func TestServiceList_CacheHitSkipsRepository(t *testing.T) {
	repo := &stubRepo{questions: fixtureQuestions}
	cache := &stubCache{entries: map[Pagination][]Question{}}
	svc := newServiceUnderTest(repo, cache)

	p := Pagination{Start: 1, End: 3}
	first, err := svc.List(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	second, err := svc.List(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)
	require.Equal(t, first, second)
}

func TestServiceList_CacheFailureDegradesToRepository(t *testing.T) {
	repo := &stubRepo{questions: fixtureQuestions}
	cache := &stubCache{getErr: errors.New("cache down"), setErr: errors.New("cache down")}
	svc := newServiceUnderTest(repo, cache)

	got, err := svc.List(context.Background(), Pagination{Start: 0, End: 2})
	require.NoError(t, err)
	require.Equal(t, fixtureQuestions[0:2], got)
}

func newServiceUnderTest(repo Repository, cache ListCache) Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(Config{CacheTTL: time.Minute}, repo, cache, logger)
}

type stubRepo struct {
	questions []Question
	err       error
	calls     int
}

func (r *stubRepo) All(context.Context) ([]Question, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.questions, nil
}

type stubCache struct {
	entries map[Pagination][]Question
	getErr  error
	setErr  error
}

func (c *stubCache) Get(_ context.Context, p Pagination) ([]Question, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	page, ok := c.entries[p]
	return page, ok, nil
}

func (c *stubCache) Set(_ context.Context, p Pagination, page []Question, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	if c.entries != nil {
		c.entries[p] = page
	}
	return nil
}
