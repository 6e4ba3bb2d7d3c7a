package model

import (
	"fmt"
	"net/http"
)

// APIError はHTTP境界まで運ばれるドメインエラーを表す。
// Messageはそのままクライアントに返すため、認証エラーでは
// どの検証に失敗したかを含めない（オラクルリーク防止）。
type APIError struct {
	Code    string // エラーコード
	Message string // クライアント向けメッセージ
	Status  int    // 対応するHTTPステータスコード
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeUnauthenticated    = "UNAUTHENTICATED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInvalidSubmission  = "INVALID_SUBMISSION"
	ErrCodeUnknownCategory    = "UNKNOWN_CATEGORY"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUserExists         = "USER_EXISTS"
	ErrCodeMissingFields      = "MISSING_FIELDS"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewUnauthenticatedError は認証失敗エラーを生成する。
// トークン欠落・署名不正・期限切れ・ユーザー消失のいずれでも
// 同一メッセージを返す。
func NewUnauthenticatedError() *APIError {
	return &APIError{
		Code:    ErrCodeUnauthenticated,
		Message: "Not authorized to access this route",
		Status:  http.StatusUnauthorized,
	}
}

// NewForbiddenError は権限不足エラーを生成する。拒否された役割を含める。
func NewForbiddenError(role Role) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: fmt.Sprintf("User role '%s' is not authorized to access this route", role),
		Status:  http.StatusForbidden,
	}
}

// NewInvalidSubmissionError は回答ベクトルの形状不正エラーを生成する。
// メッセージは固定（欠落・非配列・長さ不一致のいずれでも同一）。
func NewInvalidSubmissionError() *APIError {
	return &APIError{
		Code:    ErrCodeInvalidSubmission,
		Message: fmt.Sprintf("Please provide %d answers.", QuestionCount),
		Status:  http.StatusBadRequest,
	}
}

// NewAnswerOutOfRangeError は回答値が[0, MaxAnswerValue]を外れた場合のエラーを生成する。
func NewAnswerOutOfRangeError() *APIError {
	return &APIError{
		Code:    ErrCodeInvalidSubmission,
		Message: fmt.Sprintf("Each answer must be between 0 and %d.", MaxAnswerValue),
		Status:  http.StatusBadRequest,
	}
}

// NewUnknownCategoryError は閉じたカテゴリ集合外の値に対する防御的エラーを生成する。
// 分類器は全域関数のため、通常は到達しない。
func NewUnknownCategoryError(category Category) *APIError {
	return &APIError{
		Code:    ErrCodeUnknownCategory,
		Message: "Server error, please try again.",
		Status:  http.StatusInternalServerError,
	}
}

// NewInvalidCredentialsError はログイン失敗エラーを生成する。
// ユーザー不在とパスワード不一致を区別しない。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:    ErrCodeInvalidCredentials,
		Message: "Invalid credentials",
		Status:  http.StatusUnauthorized,
	}
}

// NewUserExistsError は登録済みメールアドレスでの再登録エラーを生成する。
func NewUserExistsError() *APIError {
	return &APIError{
		Code:    ErrCodeUserExists,
		Message: "User already exists",
		Status:  http.StatusBadRequest,
	}
}

// NewMissingFieldsError は必須フィールド欠落エラーを生成する。
func NewMissingFieldsError(message string) *APIError {
	return &APIError{
		Code:    ErrCodeMissingFields,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewInternalError は内部エラーを生成する。詳細はログのみに記録し、
// クライアントには一般的なメッセージを返す。
func NewInternalError() *APIError {
	return &APIError{
		Code:    ErrCodeInternal,
		Message: "Server error, please try again later.",
		Status:  http.StatusInternalServerError,
	}
}
