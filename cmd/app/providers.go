package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/question-board/internal/domain/question"
	"github.com/yanqian/question-board/internal/infra/config"
	"github.com/yanqian/question-board/internal/infra/questioncache"
	"github.com/yanqian/question-board/internal/infra/questionrepo"
)

func provideQuestionConfig(cfg *config.Config) question.Config {
	return question.Config{
		CacheTTL: cfg.Questions.Cache.TTL,
	}
}

// provideQuestionRepository prefers Postgres when a DSN is configured,
// falling back to the bundled data on connection trouble. A malformed
// bundled or file source is fatal: the process must not start serving.
func provideQuestionRepository(cfg *config.Config, logger *slog.Logger) (question.Repository, error) {
	if dsn := strings.TrimSpace(cfg.Questions.Postgres.DSN); dsn != "" {
		if repo := providePostgresRepository(cfg, dsn, logger); repo != nil {
			return repo, nil
		}
	}
	if path := strings.TrimSpace(cfg.Questions.DataPath); path != "" {
		logger.Info("loading questions from file", "path", path)
		return questionrepo.NewFileRepository(path)
	}
	logger.Info("loading bundled question data")
	return questionrepo.NewBundledRepository()
}

func providePostgresRepository(cfg *config.Config, dsn string, logger *slog.Logger) question.Repository {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using bundled data", "error", err)
		return nil
	}
	if cfg.Questions.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Questions.Postgres.MaxConns
	}
	if cfg.Questions.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Questions.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using bundled data", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using bundled data", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres question source enabled")
	return questionrepo.NewPostgresRepository(pool)
}

func provideListCache(cfg *config.Config, logger *slog.Logger) question.ListCache {
	if cfg.Questions.Cache.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return questioncache.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return questioncache.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		} else {
			logger.Info("valkey page cache enabled", "addr", cfg.Questions.Cache.Addr)
			return questioncache.NewValkeyStore(client, "questions")
		}
	}
	return questioncache.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Questions.Cache.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Questions.Cache.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Questions.Cache.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
