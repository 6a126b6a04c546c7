package questioncache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/question-board/internal/domain/question"
)

var samplePage = []question.Question{
	{ID: "1", Title: "First", Content: "one", Tags: []string{"faq"}},
	{ID: "2", Title: "Second", Content: "two"},
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	p := question.Pagination{Start: 0, End: 2}

	require.NoError(t, store.Set(context.Background(), p, samplePage, 0))

	got, found, err := store.Get(context.Background(), p)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, samplePage, got)
}

func TestMemoryStoreMiss(t *testing.T) {
	store := NewMemoryStore()

	_, found, err := store.Get(context.Background(), question.Pagination{Start: 1, End: 2})
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	p := question.Pagination{Start: 0, End: 2}

	require.NoError(t, store.Set(context.Background(), p, samplePage, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, found, err := store.Get(context.Background(), p)
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	store := NewMemoryStore()
	p := question.Pagination{Start: 0, End: 2}

	original := append([]question.Question(nil), samplePage...)
	require.NoError(t, store.Set(context.Background(), p, original, 0))
	original[0].Title = "mutated"

	got, found, err := store.Get(context.Background(), p)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "First", got[0].Title)

	got[1].Title = "mutated too"
	again, _, err := store.Get(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, "Second", again[1].Title)
}
