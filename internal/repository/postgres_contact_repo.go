package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/kokoro/internal/model"
)

// PostgresContactRepo はPostgreSQLを使用した問い合わせリポジトリ。
// レコードは追記専用。
type PostgresContactRepo struct {
	db *sql.DB
}

// NewPostgresContactRepo はPostgresContactRepoを生成する。
func NewPostgresContactRepo(db *sql.DB) *PostgresContactRepo {
	return &PostgresContactRepo{db: db}
}

// Create は問い合わせを保存する。
func (r *PostgresContactRepo) Create(ctx context.Context, submission *model.ContactSubmission) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_submissions (id, name, email, message, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		submission.ID, submission.Name, submission.Email, submission.Message, submission.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact submission: %w", err)
	}

	return nil
}

// List は全問い合わせを新しい順に返す。
func (r *PostgresContactRepo) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, message, created_at
		 FROM contact_submissions ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*model.ContactSubmission
	for rows.Next() {
		submission := &model.ContactSubmission{}
		if err := rows.Scan(&submission.ID, &submission.Name, &submission.Email, &submission.Message, &submission.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact submission: %w", err)
		}
		submissions = append(submissions, submission)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contact submissions: %w", err)
	}

	return submissions, nil
}

// compile-time interface check
var _ ContactRepository = (*PostgresContactRepo)(nil)
