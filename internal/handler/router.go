package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/kokoro/internal/middleware"
	"github.com/hitoshi/kokoro/internal/model"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	TokenVerifier     middleware.TokenVerifier
	IdentityResolver  middleware.IdentityResolver
	AuthMetrics       middleware.AuthMetrics
	HTTPMetrics       middleware.HTTPMetrics
	Logger            *slog.Logger
	CORSAllowedOrigin string

	// 認証
	AuthService AuthServiceInterface
	AuthConfig  AuthHandlerConfig

	// クイズ
	QuizService QuizServiceInterface

	// カウンセラー
	CounselorService CounselorServiceInterface

	// 問い合わせ
	ContactService ContactServiceInterface

	// 運用エンドポイント
	MetricsHandler http.Handler
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	CORSMiddleware → SecurityHeadersMiddleware → RecoveryMiddleware → LoggingMiddleware
//
// 保護ルートはさらにSessionGuardを通過し、管理者ルートはRoleGate(admin)を追加する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewLoggingMiddleware(deps.Logger, deps.HTTPMetrics))

	authHandler := NewAuthHandler(deps.AuthService, deps.AuthConfig)
	quizHandler := NewQuizHandler(deps.QuizService)
	counselorHandler := NewCounselorHandler(deps.CounselorService)
	contactHandler := NewContactHandler(deps.ContactService)

	sessionGuard := middleware.NewSessionGuard(deps.TokenVerifier, deps.IdentityResolver, deps.AuthMetrics)
	adminGate := middleware.NewRoleGate(model.RoleAdmin)

	// --- 認証不要のルート ---

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/logout", authHandler.Logout)

		// 現在ユーザーの参照のみ認証が必要
		r.With(sessionGuard).Get("/me", authHandler.Me)
	})

	// 質問票の取得は誰でもできる（回答の提出のみ認証が必要）
	r.Get("/quiz/questions", quizHandler.GetQuestions)
	r.Get("/counselors", counselorHandler.ListCounselors)
	r.Post("/contact", contactHandler.SubmitContact)

	// 運用エンドポイント
	r.Get("/health", healthHandler)
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	// --- 認証が必要なルート ---
	r.Group(func(r chi.Router) {
		r.Use(sessionGuard)

		r.Post("/quiz/submit", quizHandler.SubmitQuiz)

		// --- 管理者専用ルート ---
		r.Group(func(r chi.Router) {
			r.Use(adminGate)

			r.Post("/counselors", counselorHandler.CreateCounselor)
			r.Get("/contact", contactHandler.ListContacts)
		})
	})

	return r
}

// healthHandler は死活監視用のエンドポイント。
func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
