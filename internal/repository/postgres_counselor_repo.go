package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/kokoro/internal/model"
)

// PostgresCounselorRepo はPostgreSQLを使用したカウンセラーリポジトリ。
type PostgresCounselorRepo struct {
	db *sql.DB
}

// NewPostgresCounselorRepo はPostgresCounselorRepoを生成する。
func NewPostgresCounselorRepo(db *sql.DB) *PostgresCounselorRepo {
	return &PostgresCounselorRepo{db: db}
}

// Create はカウンセラーを作成する。
func (r *PostgresCounselorRepo) Create(ctx context.Context, counselor *model.Counselor) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO counselors (id, name, specialization, bio, contact_number, image_url, portrait_data, portrait_mime, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		counselor.ID, counselor.Name, counselor.Specialization, counselor.Bio,
		counselor.ContactNumber, counselor.ImageURL, counselor.PortraitData, counselor.PortraitMime, counselor.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert counselor: %w", err)
	}

	return nil
}

// List は全カウンセラーを登録順に返す。
func (r *PostgresCounselorRepo) List(ctx context.Context) ([]*model.Counselor, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, specialization, bio, contact_number, image_url, portrait_data, portrait_mime, created_at
		 FROM counselors ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list counselors: %w", err)
	}
	defer rows.Close()

	var counselors []*model.Counselor
	for rows.Next() {
		counselor := &model.Counselor{}
		if err := rows.Scan(&counselor.ID, &counselor.Name, &counselor.Specialization, &counselor.Bio,
			&counselor.ContactNumber, &counselor.ImageURL, &counselor.PortraitData, &counselor.PortraitMime, &counselor.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan counselor: %w", err)
		}
		counselors = append(counselors, counselor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate counselors: %w", err)
	}

	return counselors, nil
}

// compile-time interface check
var _ CounselorRepository = (*PostgresCounselorRepo)(nil)
