package counselor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/kokoro/internal/model"
	"github.com/hitoshi/kokoro/internal/repository"
)

// Sanitizer はカウンセラー紹介文のサニタイズインターフェース。
type Sanitizer interface {
	SanitizeBio(content string) string
}

// CreateInput はカウンセラー登録の入力。
type CreateInput struct {
	Name           string
	Specialization string
	Bio            string
	ContactNumber  string
	ImageURL       string
}

// Service はカウンセラー紹介のビジネスロジックを提供する。
type Service struct {
	repo      repository.CounselorRepository
	portraits PortraitFetcherService
	sanitizer Sanitizer
}

// NewService はServiceを生成する。
func NewService(repo repository.CounselorRepository, portraits PortraitFetcherService, sanitizer Sanitizer) *Service {
	return &Service{
		repo:      repo,
		portraits: portraits,
		sanitizer: sanitizer,
	}
}

// Create はカウンセラーを登録する。
// ポートレート画像の取得失敗は致命的ではなく、画像なしで登録を続行する。
func (s *Service) Create(ctx context.Context, input CreateInput) (*model.Counselor, error) {
	if input.Name == "" || input.Specialization == "" || input.Bio == "" || input.ContactNumber == "" {
		return nil, model.NewMissingFieldsError("Please provide name, specialization, bio and contact number")
	}

	bio := input.Bio
	if s.sanitizer != nil {
		bio = s.sanitizer.SanitizeBio(bio)
	}

	counselor := &model.Counselor{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Specialization: input.Specialization,
		Bio:            bio,
		ContactNumber:  input.ContactNumber,
		ImageURL:       input.ImageURL,
		CreatedAt:      time.Now(),
	}

	// ポートレート取得は失敗しても登録を中断しない
	if input.ImageURL != "" && s.portraits != nil {
		data, mime, err := s.portraits.FetchPortrait(ctx, input.ImageURL)
		if err != nil {
			slog.Warn("portrait fetch failed", "image_url", input.ImageURL, "error", err)
		} else {
			counselor.PortraitData = data
			counselor.PortraitMime = mime
		}
	}

	if err := s.repo.Create(ctx, counselor); err != nil {
		return nil, fmt.Errorf("failed to create counselor: %w", err)
	}

	slog.Info("counselor created",
		slog.String("counselor_id", counselor.ID),
		slog.Bool("has_portrait", len(counselor.PortraitData) > 0),
	)

	return counselor, nil
}

// List は全カウンセラーを登録順に返す。
func (s *Service) List(ctx context.Context) ([]*model.Counselor, error) {
	counselors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list counselors: %w", err)
	}
	return counselors, nil
}
