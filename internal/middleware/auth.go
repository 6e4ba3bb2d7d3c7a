// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hitoshi/kokoro/internal/model"
)

// TokenCookieName はセッショントークンを運ぶCookie名。
const TokenCookieName = "token"

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// identityContextKey はリクエストコンテキストに認証済みIdentityを格納するためのキー。
var identityContextKey = contextKey("identity")

// TokenVerifier はトークン検証に必要なインターフェース。
// token.Serviceの部分集合として定義する。
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// IdentityResolver はトークンに埋め込まれたIDからIdentityを解決するインターフェース。
// auth.Serviceの部分集合として定義する。ユーザーが現在も存在するかの判定は
// 解決側の責務で、消失していればnilを返す。
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, id string) (*model.Identity, error)
}

// AuthMetrics は認証失敗メトリクスの記録インターフェース。nil可。
type AuthMetrics interface {
	RecordAuthFailure()
}

// extractToken はリクエストからセッショントークンを取り出す。
// 優先順位は決定的な先勝ち: Authorizationヘッダー（Bearerスキーム）、次にCookie。
// 両方存在する場合はヘッダーが勝つ。どちらにも無ければ空文字を返す。
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if t := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")); t != "" {
			return t
		}
	}

	cookie, err := r.Cookie(TokenCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}

// NewSessionGuard は保護ルートのゲートとなるミドルウェアを返す。
// ヘッダーまたはCookieからトークンを取り出して検証し、埋め込まれたIDを
// ユーザーストアで解決してIdentityをリクエストコンテキストに注入する。
// トークン欠落・検証失敗・ユーザー消失はいずれも401で、ハンドラーは実行されない。
// どの検証に失敗したかはレスポンスに含めない。
func NewSessionGuard(verifier TokenVerifier, resolver IdentityResolver, metrics AuthMetrics) func(next http.Handler) http.Handler {
	reject := func(w http.ResponseWriter) {
		if metrics != nil {
			metrics.RecordAuthFailure()
		}
		WriteError(w, model.NewUnauthenticatedError())
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. ヘッダー優先でトークンを取得
			tokenString := extractToken(r)
			if tokenString == "" {
				reject(w)
				return
			}

			// 2. 署名と有効期限を検証
			identityID, err := verifier.Verify(tokenString)
			if err != nil {
				slog.Warn("token verification failed",
					slog.String("error", err.Error()),
				)
				reject(w)
				return
			}

			// 3. ユーザーストアでIdentityを解決
			identity, err := resolver.ResolveIdentity(r.Context(), identityID)
			if err != nil {
				slog.Error("failed to resolve identity",
					slog.String("error", err.Error()),
				)
				reject(w)
				return
			}
			if identity == nil {
				reject(w)
				return
			}

			// 上流のロギングミドルウェアにIdentityを共有する
			if holder, ok := r.Context().Value(identityHolderKey).(*identityHolder); ok {
				holder.identity = identity
			}

			// 4. 認証済みIdentityをコンテキストに注入
			ctx := context.WithValue(r.Context(), identityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext はリクエストコンテキストから認証済みIdentityを取得する。
// SessionGuardを通過したリクエストでのみ有効。
func IdentityFromContext(ctx context.Context) (*model.Identity, error) {
	identity, ok := ctx.Value(identityContextKey).(*model.Identity)
	if !ok || identity == nil {
		return nil, fmt.Errorf("identity not found in context")
	}
	return identity, nil
}

// ContextWithIdentity はコンテキストにIdentityを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithIdentity(ctx context.Context, identity *model.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}
