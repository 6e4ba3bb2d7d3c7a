// Package quiz は自己評価クイズの採点・分類・行動プラン生成を提供する。
//
// 採点と分類は副作用のない純粋関数で、同一の回答ベクトルは常に同一の
// スコア・カテゴリ・プランに写る。永続化（SubmissionRecorder）は
// パイプラインの最終段で、それ以前のどの段で失敗しても部分レコードは
// 保存されない。
package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hitoshi/kokoro/internal/model"
)

// SubmissionRecorder はクイズ提出レコードの永続化インターフェース。
// repository.QuizRepositoryの部分集合として定義する。
type SubmissionRecorder interface {
	// Create は提出レコードを保存する。レコードは以後変更されない。
	Create(ctx context.Context, response *model.QuizResponse) error
}

// MetricsRecorder はクイズ関連メトリクスの記録インターフェース。
type MetricsRecorder interface {
	RecordQuizSubmission(category string, score int)
}

// Result はクイズ提出の処理結果を表す。
type Result struct {
	Score     int
	Category  model.Category
	DailyPlan []string
}

// Service はクイズ提出パイプラインを統括する。
// 質問票とプランは起動時に注入される読み取り専用の設定。
type Service struct {
	recorder  SubmissionRecorder
	metrics   MetricsRecorder
	questions []model.Question
	plans     map[model.Category][]string
}

// NewService はServiceを生成する。
// questionsとplansは以後変更してはならない。metricsはnil可。
func NewService(recorder SubmissionRecorder, metrics MetricsRecorder, questions []model.Question, plans map[model.Category][]string) *Service {
	return &Service{
		recorder:  recorder,
		metrics:   metrics,
		questions: questions,
		plans:     plans,
	}
}

// Questions は質問票を順序通りに返す。
func (s *Service) Questions() []model.Question {
	return s.questions
}

// Score は回答ベクトルを検証し、合計スコアを返す。
// 回答が欠落している、長さがQuestionCountと異なる、または
// いずれかの値が[0, MaxAnswerValue]を外れる場合はAPIErrorを返す。
// 加算は可換のため順序に依存しない。
func Score(answers []int) (int, error) {
	if len(answers) != model.QuestionCount {
		return 0, model.NewInvalidSubmissionError()
	}

	total := 0
	for _, a := range answers {
		if a < 0 || a > model.MaxAnswerValue {
			return 0, model.NewAnswerOutOfRangeError()
		}
		total += a
	}

	return total, nil
}

// Classify はスコアをリスクカテゴリに写す。
// 区間は昇順に評価され、重複も隙間もない:
// [1,9]→mild, [10,19]→moderate, 20以上→severe, 0（および防御的にそれ以外）→none。
// 有効なスコア域全体で全域関数。
func Classify(score int) model.Category {
	switch {
	case score >= 1 && score <= 9:
		return model.CategoryMild
	case score >= 10 && score <= 19:
		return model.CategoryModerate
	case score >= 20:
		return model.CategorySevere
	default:
		return model.CategoryNone
	}
}

// Plan はカテゴリに対応する固定の行動プランを返す。
// 閉じたカテゴリ集合外の値にはUnknownCategoryエラーを返すが、
// Classifyが全域関数のため通常は到達しない。
func (s *Service) Plan(category model.Category) ([]string, error) {
	plan, ok := s.plans[category]
	if !ok {
		return nil, model.NewUnknownCategoryError(category)
	}
	return plan, nil
}

// Submit はクイズ提出パイプラインを実行する:
// 検証 → 採点 → 分類 → プラン生成 → 永続化。
// どの段で失敗してもレコーダーは呼ばれず、部分レコードは保存されない。
func (s *Service) Submit(ctx context.Context, userID string, answers []int) (*Result, error) {
	score, err := Score(answers)
	if err != nil {
		return nil, err
	}

	category := Classify(score)

	plan, err := s.Plan(category)
	if err != nil {
		return nil, err
	}

	response := &model.QuizResponse{
		ID:        uuid.New().String(),
		UserID:    userID,
		Answers:   answers,
		Score:     score,
		Category:  category,
		CreatedAt: time.Now(),
	}

	if err := s.recorder.Create(ctx, response); err != nil {
		return nil, fmt.Errorf("failed to record quiz submission: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordQuizSubmission(string(category), score)
	}

	slog.Info("quiz submitted",
		slog.String("user_id", userID),
		slog.Int("score", score),
		slog.String("category", string(category)),
	)

	return &Result{
		Score:     score,
		Category:  category,
		DailyPlan: plan,
	}, nil
}
