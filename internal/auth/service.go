// Package auth はメールアドレス+パスワードによるユーザー登録・ログインを提供する。
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hitoshi/kokoro/internal/model"
	"github.com/hitoshi/kokoro/internal/repository"
)

// TokenIssuer はセッショントークンの発行インターフェース。
type TokenIssuer interface {
	Issue(identityID string) (string, error)
}

// Metrics は認証イベントの計測インターフェース。
type Metrics interface {
	RecordAuthFailure()
}

// Service は認証に関するビジネスロジックを提供する。
type Service struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	metrics  Metrics
}

// NewService はServiceを生成する。metricsはnil可。
func NewService(userRepo repository.UserRepository, tokens TokenIssuer, metrics Metrics) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		metrics:  metrics,
	}
}

// Register は新規ユーザーを登録し、セッショントークンを発行する。
// roleが空の場合は一般ユーザー（"user"）となる。
// 登録済みメールアドレスの場合はUSER_EXISTSエラーを返す。
func (s *Service) Register(ctx context.Context, name, email, password string, role model.Role) (*model.Identity, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", model.NewMissingFieldsError("Please provide name, email and password")
	}

	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return nil, "", model.NewMissingFieldsError(fmt.Sprintf("Invalid role '%s'", role))
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find user by email: %w", err)
	}
	if existing != nil {
		return nil, "", model.NewUserExistsError()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	slog.Info("new user registered",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	return model.IdentityOf(user), tokenString, nil
}

// Login はメールアドレスとパスワードを検証し、セッショントークンを発行する。
// ユーザー不在とパスワード不一致は区別せず、同一のINVALID_CREDENTIALSエラーを返す。
func (s *Service) Login(ctx context.Context, email, password string) (*model.Identity, string, error) {
	if email == "" || password == "" {
		return nil, "", model.NewMissingFieldsError("Please provide an email and password")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find user by email: %w", err)
	}
	if user == nil {
		s.recordFailure()
		return nil, "", model.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.recordFailure()
		return nil, "", model.NewInvalidCredentialsError()
	}

	tokenString, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	slog.Info("user logged in", slog.String("user_id", user.ID))

	return model.IdentityOf(user), tokenString, nil
}

// ResolveIdentity はユーザーIDからIdentityを解決する。
// トークン検証後のユーザー存在確認に使用され、ユーザーが既に
// 削除されている場合はnilを返す。
func (s *Service) ResolveIdentity(ctx context.Context, userID string) (*model.Identity, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, nil
	}
	return model.IdentityOf(user), nil
}

func (s *Service) recordFailure() {
	if s.metrics != nil {
		s.metrics.RecordAuthFailure()
	}
}
