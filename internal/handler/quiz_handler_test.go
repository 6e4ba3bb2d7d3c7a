package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hitoshi/kokoro/internal/middleware"
	"github.com/hitoshi/kokoro/internal/model"
	"github.com/hitoshi/kokoro/internal/quiz"
)

// mockQuizService はQuizServiceInterfaceのモック実装。
type mockQuizService struct {
	questionsFunc func() []model.Question
	submitFunc    func(ctx context.Context, userID string, answers []int) (*quiz.Result, error)
}

func (m *mockQuizService) Questions() []model.Question {
	if m.questionsFunc != nil {
		return m.questionsFunc()
	}
	return nil
}

func (m *mockQuizService) Submit(ctx context.Context, userID string, answers []int) (*quiz.Result, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, userID, answers)
	}
	return &quiz.Result{Score: 12, Category: model.CategoryModerate, DailyPlan: []string{"a", "b", "c"}}, nil
}

func authedRequest(method, target string, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	identity := &model.Identity{ID: "user-1", Role: model.RoleUser}
	return req.WithContext(middleware.ContextWithIdentity(req.Context(), identity))
}

func TestQuizHandler_GetQuestions(t *testing.T) {
	service := &mockQuizService{
		questionsFunc: func() []model.Question {
			return []model.Question{
				{ID: 1, Text: "q1", Options: []model.QuestionOption{{ID: 0, Text: "never"}}},
				{ID: 2, Text: "q2"},
			}
		},
	}
	h := NewQuizHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/quiz/questions", nil)
	rec := httptest.NewRecorder()
	h.GetQuestions(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	// レスポンスはラッパーなしの配列そのもの
	var questions []model.Question
	if err := json.NewDecoder(rec.Body).Decode(&questions); err != nil {
		t.Fatalf("failed to decode response as bare array: %v", err)
	}
	if len(questions) != 2 || questions[0].ID != 1 {
		t.Errorf("questions = %+v, want ordered list", questions)
	}
	if questions[0].Options[0].Text != "never" {
		t.Errorf("options = %+v", questions[0].Options)
	}
}

func TestQuizHandler_GetQuestions_EmptyBankIsEmptyArray(t *testing.T) {
	h := NewQuizHandler(&mockQuizService{})

	req := httptest.NewRequest(http.MethodGet, "/quiz/questions", nil)
	rec := httptest.NewRecorder()
	h.GetQuestions(rec, req)

	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want empty JSON array", got)
	}
}

func TestQuizHandler_SubmitQuiz(t *testing.T) {
	t.Run("正常系_201とスコア・カテゴリ・プランが返る", func(t *testing.T) {
		var gotUserID string
		var gotAnswers []int
		service := &mockQuizService{
			submitFunc: func(ctx context.Context, userID string, answers []int) (*quiz.Result, error) {
				gotUserID = userID
				gotAnswers = answers
				return &quiz.Result{
					Score:     12,
					Category:  model.CategoryModerate,
					DailyPlan: []string{"p1", "p2", "p3"},
				}, nil
			},
		}
		h := NewQuizHandler(service)

		req := authedRequest(http.MethodPost, "/quiz/submit", `{"answers":[1,2,0,3,1,2,0,1,1,1]}`)
		rec := httptest.NewRecorder()
		h.SubmitQuiz(rec, req)

		if rec.Code != http.StatusCreated {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
		}
		if gotUserID != "user-1" {
			t.Errorf("userID = %q, want %q", gotUserID, "user-1")
		}
		if len(gotAnswers) != 10 {
			t.Errorf("answers = %v", gotAnswers)
		}

		var body submitQuizResponse
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.Message != "Quiz submitted successfully!" {
			t.Errorf("message = %q", body.Message)
		}
		if body.Score != 12 || body.Category != "moderate" || len(body.DailyPlan) != 3 {
			t.Errorf("body = %+v", body)
		}
	})

	t.Run("異常系_壊れたJSONは固定メッセージの400", func(t *testing.T) {
		h := NewQuizHandler(&mockQuizService{})

		req := authedRequest(http.MethodPost, "/quiz/submit", `{"answers": not json`)
		rec := httptest.NewRecorder()
		h.SubmitQuiz(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}

		var body middleware.ErrorResponseBody
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.Message != "Please provide 10 answers." {
			t.Errorf("message = %q, want fixed validation message", body.Message)
		}
	})

	t.Run("異常系_サービスの検証エラーがそのまま返る", func(t *testing.T) {
		service := &mockQuizService{
			submitFunc: func(ctx context.Context, userID string, answers []int) (*quiz.Result, error) {
				return nil, model.NewInvalidSubmissionError()
			},
		}
		h := NewQuizHandler(service)

		req := authedRequest(http.MethodPost, "/quiz/submit", `{"answers":[1,2]}`)
		rec := httptest.NewRecorder()
		h.SubmitQuiz(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}

		var body middleware.ErrorResponseBody
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.Message != "Please provide 10 answers." {
			t.Errorf("message = %q", body.Message)
		}
	})

	t.Run("異常系_Identityなしは401でサービスは呼ばれない", func(t *testing.T) {
		called := false
		service := &mockQuizService{
			submitFunc: func(ctx context.Context, userID string, answers []int) (*quiz.Result, error) {
				called = true
				return nil, nil
			},
		}
		h := NewQuizHandler(service)

		req := httptest.NewRequest(http.MethodPost, "/quiz/submit", strings.NewReader(`{"answers":[1,2,0,3,1,2,0,1,1,1]}`))
		rec := httptest.NewRecorder()
		h.SubmitQuiz(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
		if called {
			t.Error("service should not be called without identity")
		}
	})

	t.Run("異常系_内部エラーは一般メッセージの500", func(t *testing.T) {
		service := &mockQuizService{
			submitFunc: func(ctx context.Context, userID string, answers []int) (*quiz.Result, error) {
				return nil, context.DeadlineExceeded
			},
		}
		h := NewQuizHandler(service)

		req := authedRequest(http.MethodPost, "/quiz/submit", `{"answers":[1,2,0,3,1,2,0,1,1,1]}`)
		rec := httptest.NewRecorder()
		h.SubmitQuiz(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
		}

		var body middleware.ErrorResponseBody
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if strings.Contains(body.Message, "deadline") {
			t.Errorf("internal detail leaked: %q", body.Message)
		}
	})
}
