package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ContentSanitizer はユーザー入力のサニタイズ機能のインターフェースを定義する。
type ContentSanitizer interface {
	// SanitizePlainText はHTMLタグを全て除去しプレーンテキストを返す。
	// お問い合わせフォームの本文・氏名などに使用する。
	SanitizePlainText(content string) string

	// SanitizeBio は限定的な整形タグのみを許可してサニタイズする。
	// カウンセラーの自己紹介文に使用する。
	SanitizeBio(content string) string
}

// contentSanitizer はContentSanitizerの実装。
// ポリシーはスレッドセーフなので1回構築して使い回す。
type contentSanitizer struct {
	plainPolicy *bluemonday.Policy
	bioPolicy   *bluemonday.Policy
}

// NewContentSanitizer はContentSanitizerの新しいインスタンスを生成する。
func NewContentSanitizer() *contentSanitizer {
	// プレーンテキストポリシー: 全タグ除去
	plainPolicy := bluemonday.StrictPolicy()

	// 自己紹介ポリシー: 最低限の整形タグのみ許可
	bioPolicy := bluemonday.NewPolicy()
	bioPolicy.AllowElements("p", "br", "b", "strong", "i", "em", "ul", "ol", "li")

	return &contentSanitizer{
		plainPolicy: plainPolicy,
		bioPolicy:   bioPolicy,
	}
}

// SanitizePlainText はHTMLタグを全て除去しプレーンテキストを返す。
func (s *contentSanitizer) SanitizePlainText(content string) string {
	return strings.TrimSpace(s.plainPolicy.Sanitize(content))
}

// SanitizeBio は限定的な整形タグのみを許可してサニタイズする。
func (s *contentSanitizer) SanitizeBio(content string) string {
	return strings.TrimSpace(s.bioPolicy.Sanitize(content))
}

var _ ContentSanitizer = (*contentSanitizer)(nil)
