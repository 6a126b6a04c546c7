package questioncache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/question-board/internal/domain/question"
)

// ValkeyStore caches resolved pages in a Valkey-compatible database so
// database-backed deployments can serve repeat ranges without re-reading the
// source.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a cache backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "questions"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Get implements question.ListCache.
func (s *ValkeyStore) Get(ctx context.Context, p question.Pagination) ([]question.Question, bool, error) {
	cmd := s.client.B().Get().Key(s.pageKey(p)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page []question.Question
	if err := json.Unmarshal([]byte(payload), &page); err != nil {
		return nil, false, err
	}
	if page == nil {
		page = []question.Question{}
	}
	return page, true, nil
}

// Set implements question.ListCache.
func (s *ValkeyStore) Set(ctx context.Context, p question.Pagination, page []question.Question, ttl time.Duration) error {
	payload, err := json.Marshal(page)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.pageKey(p)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) pageKey(p question.Pagination) string {
	return fmt.Sprintf("%s:%d:%d", s.prefix, p.Start, p.End)
}

var _ question.ListCache = (*ValkeyStore)(nil)
