package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/kokoro/internal/counselor"
	"github.com/hitoshi/kokoro/internal/model"
)

// CounselorServiceInterface はカウンセラーハンドラーが必要とするサービスインターフェース。
type CounselorServiceInterface interface {
	Create(ctx context.Context, input counselor.CreateInput) (*model.Counselor, error)
	List(ctx context.Context) ([]*model.Counselor, error)
}

// CounselorHandler はカウンセラー紹介のHTTPハンドラー。
type CounselorHandler struct {
	service CounselorServiceInterface
}

// NewCounselorHandler はCounselorHandlerを生成する。
func NewCounselorHandler(service CounselorServiceInterface) *CounselorHandler {
	return &CounselorHandler{service: service}
}

// createCounselorRequest はカウンセラー登録リクエストのボディ。
type createCounselorRequest struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Bio            string `json:"bio"`
	ContactNumber  string `json:"contactNumber"`
	ImageURL       string `json:"imageUrl"`
}

// counselorResponse はカウンセラー情報のAPIレスポンス。
// ポートレート画像の生データは含めず、取得済みかどうかのみ公開する。
type counselorResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Bio            string `json:"bio"`
	ContactNumber  string `json:"contactNumber"`
	ImageURL       string `json:"imageUrl"`
	HasPortrait    bool   `json:"hasPortrait"`
}

func toCounselorResponse(c *model.Counselor) counselorResponse {
	return counselorResponse{
		ID:             c.ID,
		Name:           c.Name,
		Specialization: c.Specialization,
		Bio:            c.Bio,
		ContactNumber:  c.ContactNumber,
		ImageURL:       c.ImageURL,
		HasPortrait:    len(c.PortraitData) > 0,
	}
}

// ListCounselors は全カウンセラーを返す。
// GET /counselors
func (h *CounselorHandler) ListCounselors(w http.ResponseWriter, r *http.Request) {
	counselors, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	data := make([]counselorResponse, 0, len(counselors))
	for _, c := range counselors {
		data = append(data, toCounselorResponse(c))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(data),
		"data":    data,
	})
}

// CreateCounselor はカウンセラーを登録する。
// POST /counselors（SessionGuard + RoleGate(admin)必須）
func (h *CounselorHandler) CreateCounselor(w http.ResponseWriter, r *http.Request) {
	var req createCounselorRequest
	if err := decodeJSONBody(r, &req); err != nil {
		handleServiceError(w, model.NewMissingFieldsError("Please provide name, specialization, bio and contact number"))
		return
	}

	created, err := h.service.Create(r.Context(), counselor.CreateInput{
		Name:           req.Name,
		Specialization: req.Specialization,
		Bio:            req.Bio,
		ContactNumber:  req.ContactNumber,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"data":    toCounselorResponse(created),
	})
}
