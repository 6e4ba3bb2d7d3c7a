// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/kokoro/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByEmail は指定メールアドレスのユーザーを取得する。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// Create はユーザーを作成する。
	Create(ctx context.Context, user *model.User) error
}

// QuizRepository はクイズ提出レコードの永続化インターフェース。
// レコードは追記専用で、作成後に更新・削除されることはない。
type QuizRepository interface {
	// Create は提出レコードを保存する。
	Create(ctx context.Context, response *model.QuizResponse) error

	// ListByUserID はユーザーの提出履歴を新しい順に返す。
	ListByUserID(ctx context.Context, userID string) ([]*model.QuizResponse, error)
}

// CounselorRepository はカウンセラーデータの永続化インターフェース。
type CounselorRepository interface {
	// Create はカウンセラーを作成する。
	Create(ctx context.Context, counselor *model.Counselor) error

	// List は全カウンセラーを登録順に返す。
	List(ctx context.Context) ([]*model.Counselor, error)
}

// ContactRepository は問い合わせデータの永続化インターフェース。
// レコードは追記専用。
type ContactRepository interface {
	// Create は問い合わせを保存する。
	Create(ctx context.Context, submission *model.ContactSubmission) error

	// List は全問い合わせを新しい順に返す。
	List(ctx context.Context) ([]*model.ContactSubmission, error)
}
