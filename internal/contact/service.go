// Package contact は問い合わせフォームのドメインロジックを提供する。
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/kokoro/internal/model"
	"github.com/hitoshi/kokoro/internal/repository"
)

// Sanitizer は問い合わせ本文のサニタイズインターフェース。
type Sanitizer interface {
	SanitizePlainText(content string) string
}

// Service は問い合わせに関するビジネスロジックを提供する。
type Service struct {
	repo      repository.ContactRepository
	sanitizer Sanitizer
}

// NewService はServiceを生成する。
func NewService(repo repository.ContactRepository, sanitizer Sanitizer) *Service {
	return &Service{
		repo:      repo,
		sanitizer: sanitizer,
	}
}

// Submit は問い合わせを受け付けて保存する。本文と氏名はプレーンテキストに
// サニタイズされる。保存されたレコードは追記専用で変更されない。
func (s *Service) Submit(ctx context.Context, name, email, message string) (*model.ContactSubmission, error) {
	if name == "" || email == "" || message == "" {
		return nil, model.NewMissingFieldsError("Please provide name, email and message")
	}

	if s.sanitizer != nil {
		name = s.sanitizer.SanitizePlainText(name)
		message = s.sanitizer.SanitizePlainText(message)
	}
	if name == "" || message == "" {
		// サニタイズで全て除去された入力はフィールド欠落と同等
		return nil, model.NewMissingFieldsError("Please provide name, email and message")
	}

	submission := &model.ContactSubmission{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to create contact submission: %w", err)
	}

	slog.Info("contact submission received", slog.String("submission_id", submission.ID))

	return submission, nil
}

// List は全問い合わせを新しい順に返す。
func (s *Service) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	submissions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	return submissions, nil
}
