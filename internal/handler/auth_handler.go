package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/kokoro/internal/middleware"
	"github.com/hitoshi/kokoro/internal/model"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	Register(ctx context.Context, name, email, password string, role model.Role) (*model.Identity, string, error)
	Login(ctx context.Context, email, password string) (*model.Identity, string, error)
}

// AuthHandlerConfig は認証ハンドラーの設定。
type AuthHandlerConfig struct {
	CookieDomain string
	CookieSecure bool
	TokenMaxAge  int // トークンCookieの有効期間（秒）
}

// AuthHandler は認証関連のHTTPハンドラー。
type AuthHandler struct {
	service AuthServiceInterface
	config  AuthHandlerConfig
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(service AuthServiceInterface, config AuthHandlerConfig) *AuthHandler {
	return &AuthHandler{
		service: service,
		config:  config,
	}
}

// registerRequest はユーザー登録リクエストのボディ。
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// loginRequest はログインリクエストのボディ。
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// identityResponse はAPIレスポンスに含めるユーザー情報。
// パスワードハッシュは決して含めない。
type identityResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// sessionResponse はトークン発行を伴うレスポンス。
type sessionResponse struct {
	Success bool             `json:"success"`
	Token   string           `json:"token"`
	User    identityResponse `json:"user"`
}

func toIdentityResponse(identity *model.Identity) identityResponse {
	return identityResponse{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
		Role:  string(identity.Role),
	}
}

// Register は新規ユーザーを登録する。
// POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSONBody(r, &req); err != nil {
		middleware.WriteError(w, model.NewMissingFieldsError("Please provide name, email and password"))
		return
	}

	identity, tokenString, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password, model.Role(req.Role))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.setTokenCookie(w, tokenString)
	writeJSON(w, http.StatusCreated, sessionResponse{
		Success: true,
		Token:   tokenString,
		User:    toIdentityResponse(identity),
	})
}

// Login はログインを処理する。
// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSONBody(r, &req); err != nil {
		middleware.WriteError(w, model.NewMissingFieldsError("Please provide an email and password"))
		return
	}

	identity, tokenString, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.setTokenCookie(w, tokenString)
	writeJSON(w, http.StatusOK, sessionResponse{
		Success: true,
		Token:   tokenString,
		User:    toIdentityResponse(identity),
	})
}

// Logout はトークンCookieを削除する。
// 発行済みトークンは有効期限まで検証を通るため、これはクライアント側の
// Cookie削除のみ。
// GET /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.config.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Me は現在のログインユーザー情報を返す。
// GET /auth/me（SessionGuard必須）
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		middleware.WriteError(w, model.NewUnauthenticatedError())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    toIdentityResponse(identity),
	})
}

// setTokenCookie はセッショントークンをHTTP Only Cookieに設定する。
func (h *AuthHandler) setTokenCookie(w http.ResponseWriter, tokenString string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    tokenString,
		Path:     "/",
		Domain:   h.config.CookieDomain,
		MaxAge:   h.config.TokenMaxAge,
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
