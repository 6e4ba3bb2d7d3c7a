package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/hitoshi/kokoro/internal/model"
)

// PostgresQuizRepo はPostgreSQLを使用したクイズ提出リポジトリ。
// 提出レコードは追記専用で、UPDATE/DELETEは発行しない。
type PostgresQuizRepo struct {
	db *sql.DB
}

// NewPostgresQuizRepo はPostgresQuizRepoを生成する。
func NewPostgresQuizRepo(db *sql.DB) *PostgresQuizRepo {
	return &PostgresQuizRepo{db: db}
}

// Create は提出レコードを保存する。
func (r *PostgresQuizRepo) Create(ctx context.Context, response *model.QuizResponse) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_responses (id, user_id, answers, score, category, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		response.ID, response.UserID, pq.Array(response.Answers), response.Score, response.Category, response.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert quiz response: %w", err)
	}

	return nil
}

// ListByUserID はユーザーの提出履歴を新しい順に返す。
func (r *PostgresQuizRepo) ListByUserID(ctx context.Context, userID string) ([]*model.QuizResponse, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, answers, score, category, created_at
		 FROM quiz_responses WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz responses: %w", err)
	}
	defer rows.Close()

	var responses []*model.QuizResponse
	for rows.Next() {
		response := &model.QuizResponse{}
		var answers pq.Int64Array
		if err := rows.Scan(&response.ID, &response.UserID, &answers, &response.Score, &response.Category, &response.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quiz response: %w", err)
		}
		response.Answers = make([]int, len(answers))
		for i, a := range answers {
			response.Answers[i] = int(a)
		}
		responses = append(responses, response)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quiz responses: %w", err)
	}

	return responses, nil
}

// compile-time interface check
var _ QuizRepository = (*PostgresQuizRepo)(nil)
