// Package token は署名付きセッショントークンの発行と検証を提供する。
//
// トークンはHS256署名のJWTで、ユーザーIDと有効期限を自身に埋め込む。
// 検証はプロセス内の秘密鍵のみで完結し、サーバー側のセッションテーブルを
// 必要としない。その代償としてサーバー起点の失効はできない
// （ログアウトはクライアント側Cookieの削除のみ）。これは受容済みの制約。
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Service はセッショントークンの発行・検証を行う。
// 秘密鍵は起動時に1回設定され、以後読み取り専用。
// 検証は(トークン, 秘密鍵, 現在時刻)の純粋関数のため、
// ロックなしで並行リクエストから共有できる。
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService はServiceを生成する。
// ttlは発行時刻からの有効期間（例: 30日）。
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue は指定ユーザーIDを埋め込んだ署名付きトークンを発行する。
// 有効期限は発行時刻 + TTL。トークンの配送・保存は呼び出し側の責務。
func (s *Service) Issue(identityID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   identityID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify はトークンを検証し、埋め込まれたユーザーIDを返す。
// 署名不正・ペイロード不正・アルゴリズム不一致・期限切れはすべてエラー。
// ユーザーが現在も存在するかの確認は行わない（呼び出し側がユーザーストアで解決する）。
func (s *Service) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("token is empty")
	}

	t, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := t.Claims.(*jwt.RegisteredClaims)
	if !ok || !t.Valid {
		return "", fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}

	return claims.Subject, nil
}
