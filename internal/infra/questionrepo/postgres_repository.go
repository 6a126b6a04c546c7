package questionrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/question-board/internal/domain/question"
)

// PostgresRepository reads the question collection from Postgres using pgx.
// The table is expected to be maintained out of band; this service never
// writes to it.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// All implements question.Repository.
func (r *PostgresRepository) All(ctx context.Context) ([]question.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, content, tags
		FROM questions
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []question.Question
	for rows.Next() {
		var (
			rawID   string
			record  question.Question
			rawTags []string
		)
		if err := rows.Scan(&rawID, &record.Title, &record.Content, &rawTags); err != nil {
			return nil, err
		}
		record.ID, err = question.ParseQuestionID(rawID)
		if err != nil {
			return nil, err
		}
		record.Tags = rawTags
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

var _ question.Repository = (*PostgresRepository)(nil)
