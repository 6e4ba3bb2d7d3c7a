// Package model はドメインモデルを定義する。
package model

import "time"

// Role はユーザーの権限を表す閉じた役割集合の要素。
type Role string

const (
	// RoleUser は一般ユーザー。
	RoleUser Role = "user"
	// RoleCounselor はカウンセラー。
	RoleCounselor Role = "counselor"
	// RoleAdmin は管理者。
	RoleAdmin Role = "admin"
)

// ValidRole はroleが閉じた役割集合の要素かどうかを判定する。
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleCounselor, RoleAdmin:
		return true
	}
	return false
}

// User はサービス利用ユーザーを表す。
// PasswordHashはbcryptハッシュで、APIレスポンスには決して含めない。
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity は認証済みリクエストに紐付くユーザー識別情報を表す。
// トークン検証後にユーザーストアから解決され、リクエストコンテキストに
// 読み取り専用で保持される。
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

// IdentityOf はUserからIdentityを構成する。
func IdentityOf(u *User) *Identity {
	return &Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
