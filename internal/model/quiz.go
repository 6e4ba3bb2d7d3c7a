package model

import "time"

// 質問票の構造は固定で、ビルド時に確定する。
const (
	// QuestionCount は質問票の設問数。回答ベクトルの長さはこれと一致しなければならない。
	QuestionCount = 10
	// MaxAnswerValue は各回答の最大値。各回答は[0, MaxAnswerValue]の範囲に収まる。
	MaxAnswerValue = 3
	// MaxScore はスコアの上限（QuestionCount * MaxAnswerValue）。
	MaxScore = QuestionCount * MaxAnswerValue
)

// Category はスコアから導出されるリスクカテゴリ。
// 閉じた集合{none, mild, moderate, severe}の要素。
type Category string

const (
	// CategoryNone はスコア0に対応するカテゴリ。
	CategoryNone Category = "none"
	// CategoryMild はスコア[1,9]に対応するカテゴリ。
	CategoryMild Category = "mild"
	// CategoryModerate はスコア[10,19]に対応するカテゴリ。
	CategoryModerate Category = "moderate"
	// CategorySevere はスコア20以上に対応するカテゴリ。
	CategorySevere Category = "severe"
)

// QuestionOption は設問の選択肢を表す。
type QuestionOption struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Question は質問票の設問を表す。起動時に読み込まれる静的設定で、
// リクエスト処理中に変更されることはない。
type Question struct {
	ID      int              `json:"id"`
	Text    string           `json:"text"`
	Options []QuestionOption `json:"options"`
}

// QuizResponse はクイズ提出の永続化レコードを表す。
// 提出ごとに1件作成され、以後変更されない（追記専用）。
type QuizResponse struct {
	ID        string
	UserID    string
	Answers   []int
	Score     int
	Category  Category
	CreatedAt time.Time
}
