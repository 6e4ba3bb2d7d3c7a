// Package counselor はカウンセラー紹介のドメインロジックを提供する。
package counselor

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// SSRFValidator はSSRF防止機能のインターフェース。
type SSRFValidator interface {
	ValidateURL(rawURL string) error
	NewSafeClient(timeout time.Duration, maxResponseSize int64) *http.Client
}

// PortraitFetcherService はポートレート画像取得のインターフェース。
type PortraitFetcherService interface {
	// FetchPortrait は指定URLからポートレート画像を取得する。
	// 取得失敗時はnilデータと空MIMEを返す（エラーは返さない）。
	// ポートレートなしでもカウンセラー登録自体は成功させるため。
	FetchPortrait(ctx context.Context, imageURL string) (data []byte, mimeType string, err error)
}

// PortraitFetcher はポートレート画像取得機能の実装。
type PortraitFetcher struct {
	ssrfGuard SSRFValidator
	timeout   time.Duration
	maxSize   int64
}

// NewPortraitFetcher はPortraitFetcherの新しいインスタンスを生成する。
func NewPortraitFetcher(ssrfGuard SSRFValidator, timeout time.Duration, maxSize int64) *PortraitFetcher {
	return &PortraitFetcher{
		ssrfGuard: ssrfGuard,
		timeout:   timeout,
		maxSize:   maxSize,
	}
}

// FetchPortrait は指定URLからポートレート画像を取得する。
// SSRFブロック・HTTP失敗・サイズ超過・非画像コンテンツはすべて
// 「画像なし」として扱い、エラーを返さない。
func (f *PortraitFetcher) FetchPortrait(ctx context.Context, imageURL string) ([]byte, string, error) {
	if imageURL == "" {
		return nil, "", nil
	}

	// SSRF検証
	if f.ssrfGuard != nil {
		if err := f.ssrfGuard.ValidateURL(imageURL); err != nil {
			slog.Warn("ポートレート取得: SSRFブロック", "url", imageURL, "error", err)
			return nil, "", nil
		}
	}

	client := f.getHTTPClient()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		slog.Warn("ポートレート取得: リクエスト作成失敗", "url", imageURL, "error", err)
		return nil, "", nil
	}
	req.Header.Set("User-Agent", "Kokoro/1.0")

	resp, err := client.Do(req)
	if err != nil {
		slog.Warn("ポートレート取得: HTTPリクエスト失敗", "url", imageURL, "error", err)
		return nil, "", nil
	}
	defer resp.Body.Close()

	// 2xx以外は取得失敗として扱う
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("ポートレート取得: HTTPステータス異常", "url", imageURL, "status", resp.StatusCode)
		return nil, "", nil
	}

	// レスポンスボディを読み込み（最大サイズ+1で超過検知）
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		slog.Warn("ポートレート取得: レスポンス読み取り失敗", "url", imageURL, "error", err)
		return nil, "", nil
	}

	if int64(len(body)) > f.maxSize {
		slog.Warn("ポートレート取得: サイズ超過", "url", imageURL, "size", len(body))
		return nil, "", nil
	}

	mimeType := extractMimeType(resp.Header.Get("Content-Type"))
	if !isImageMime(mimeType) {
		slog.Warn("ポートレート取得: 画像以外のContent-Type", "url", imageURL, "contentType", mimeType)
		return nil, "", nil
	}

	return body, mimeType, nil
}

func (f *PortraitFetcher) getHTTPClient() *http.Client {
	if f.ssrfGuard != nil {
		return f.ssrfGuard.NewSafeClient(f.timeout, f.maxSize)
	}
	return &http.Client{Timeout: f.timeout}
}

// extractMimeType はContent-Typeヘッダーからメディアタイプを抽出する。
func extractMimeType(contentType string) string {
	if contentType == "" {
		return ""
	}
	parts := strings.SplitN(contentType, ";", 2)
	return strings.TrimSpace(strings.ToLower(parts[0]))
}

// isImageMime はMIMEタイプが画像かどうかを判定する。
func isImageMime(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

// compile-time interface check
var _ PortraitFetcherService = (*PortraitFetcher)(nil)
