package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/hitoshi/kokoro/internal/model"
)

// ContactServiceInterface は問い合わせハンドラーが必要とするサービスインターフェース。
type ContactServiceInterface interface {
	Submit(ctx context.Context, name, email, message string) (*model.ContactSubmission, error)
	List(ctx context.Context) ([]*model.ContactSubmission, error)
}

// ContactHandler は問い合わせフォームのHTTPハンドラー。
type ContactHandler struct {
	service ContactServiceInterface
}

// NewContactHandler はContactHandlerを生成する。
func NewContactHandler(service ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// contactRequest は問い合わせ送信リクエストのボディ。
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// contactResponse は問い合わせレコードのAPIレスポンス。
type contactResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

func toContactResponse(s *model.ContactSubmission) contactResponse {
	return contactResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Message:   s.Message,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

// SubmitContact は問い合わせを受け付ける。
// POST /contact
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSONBody(r, &req); err != nil {
		handleServiceError(w, model.NewMissingFieldsError("Please provide name, email and message"))
		return
	}

	submission, err := h.service.Submit(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"data":    toContactResponse(submission),
	})
}

// ListContacts は全問い合わせを新しい順に返す。
// GET /contact（SessionGuard + RoleGate(admin)必須）
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	data := make([]contactResponse, 0, len(submissions))
	for _, s := range submissions {
		data = append(data, toContactResponse(s))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(data),
		"data":    data,
	})
}
