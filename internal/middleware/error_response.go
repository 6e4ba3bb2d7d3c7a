package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/hitoshi/kokoro/internal/model"
)

// ErrorResponseBody は認証・認可エラーレスポンスの統一フォーマット。
type ErrorResponseBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteError はAPIErrorのステータスとメッセージでエラーレスポンスを書き込む。
// SessionGuard/RoleGateおよび認証ハンドラーで共通に使用する。
func WriteError(w http.ResponseWriter, apiErr *model.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	json.NewEncoder(w).Encode(ErrorResponseBody{
		Success: false,
		Message: apiErr.Message,
	})
}
