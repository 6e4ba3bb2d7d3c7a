package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/kokoro/internal/middleware"
	"github.com/hitoshi/kokoro/internal/model"
	"github.com/hitoshi/kokoro/internal/quiz"
)

// QuizServiceInterface はクイズハンドラーが必要とするサービスインターフェース。
type QuizServiceInterface interface {
	// Questions は質問票を順序通りに返す。
	Questions() []model.Question
	// Submit はクイズ提出パイプラインを実行する。
	Submit(ctx context.Context, userID string, answers []int) (*quiz.Result, error)
}

// QuizHandler はクイズ関連のHTTPハンドラー。
type QuizHandler struct {
	service QuizServiceInterface
}

// NewQuizHandler はQuizHandlerを生成する。
func NewQuizHandler(service QuizServiceInterface) *QuizHandler {
	return &QuizHandler{service: service}
}

// submitQuizRequest はクイズ提出リクエストのボディ。
// answersキー欠落時はnilスライスのままサービス層に渡り、
// 長さ検証で他の形状不正と同じ400に落ちる。
type submitQuizRequest struct {
	Answers []int `json:"answers"`
}

// submitQuizResponse はクイズ提出成功時のレスポンス。
type submitQuizResponse struct {
	Message   string   `json:"message"`
	Score     int      `json:"score"`
	Category  string   `json:"category"`
	DailyPlan []string `json:"dailyPlan"`
}

// GetQuestions は質問票を順序付き配列そのものとして返す。
// GET /quiz/questions
func (h *QuizHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	questions := h.service.Questions()
	if questions == nil {
		questions = []model.Question{}
	}
	writeJSON(w, http.StatusOK, questions)
}

// SubmitQuiz はクイズ提出を処理する。
// ボディの解析失敗・回答欠落・長さ不一致はいずれも同一メッセージの400。
// POST /quiz/submit（SessionGuard必須）
func (h *QuizHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		middleware.WriteError(w, model.NewUnauthenticatedError())
		return
	}

	var req submitQuizRequest
	if err := decodeJSONBody(r, &req); err != nil {
		middleware.WriteError(w, model.NewInvalidSubmissionError())
		return
	}

	result, err := h.service.Submit(r.Context(), identity.ID, req.Answers)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitQuizResponse{
		Message:   "Quiz submitted successfully!",
		Score:     result.Score,
		Category:  string(result.Category),
		DailyPlan: result.DailyPlan,
	})
}
