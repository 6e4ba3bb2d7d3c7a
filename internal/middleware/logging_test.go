package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitoshi/kokoro/internal/model"
)

type mockHTTPMetrics struct {
	statuses []int
}

func (m *mockHTTPMetrics) RecordHTTPStatus(statusCode int) {
	m.statuses = append(m.statuses, statusCode)
}

func captureLog(t *testing.T, handler http.Handler, req *http.Request) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewLoggingMiddleware(logger, nil)

	w := httptest.NewRecorder()
	mw(handler).ServeHTTP(w, req)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log entry: %v (%q)", err, buf.String())
	}
	return entry
}

func TestLoggingMiddleware_LogsRequestFields(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/quiz/submit", nil)
	entry := captureLog(t, handler, req)

	if entry["method"] != "POST" {
		t.Errorf("method = %v, want POST", entry["method"])
	}
	if entry["path"] != "/quiz/submit" {
		t.Errorf("path = %v, want /quiz/submit", entry["path"])
	}
	if entry["status"] != float64(http.StatusCreated) {
		t.Errorf("status = %v, want %d", entry["status"], http.StatusCreated)
	}
	if _, ok := entry["duration_ms"]; !ok {
		t.Error("duration_ms should be logged")
	}
}

func TestLoggingMiddleware_IncludesUserIDWhenAuthenticated(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(ContextWithIdentity(req.Context(), &model.Identity{ID: "user-123", Role: model.RoleUser}))
	entry := captureLog(t, handler, req)

	if entry["user_id"] != "user-123" {
		t.Errorf("user_id = %v, want user-123", entry["user_id"])
	}
}

func TestLoggingMiddleware_LogsUserIDResolvedBySessionGuard(t *testing.T) {
	// SessionGuardはロギングより下流でIdentityを解決するが、
	// holder経由でロギング側にユーザーIDが届くことを検証する
	verifier := &mockVerifier{
		verifyFn: func(tokenString string) (string, error) {
			return "user-123", nil
		},
	}
	guard := NewSessionGuard(verifier, resolverWithIdentity(testIdentity()), nil)

	handler := guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/quiz/submit", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	entry := captureLog(t, handler, req)

	if entry["user_id"] != "user-123" {
		t.Errorf("user_id = %v, want user-123", entry["user_id"])
	}
}

func TestLoggingMiddleware_NoUserIDForAnonymousRequest(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/quiz/questions", nil)
	entry := captureLog(t, handler, req)

	if _, ok := entry["user_id"]; ok {
		t.Errorf("user_id should not be logged for anonymous request, got %v", entry["user_id"])
	}
}

func TestLoggingMiddleware_ErrorStatusLogsAtWarnOrError(t *testing.T) {
	cases := []struct {
		status int
		level  string
	}{
		{http.StatusBadRequest, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}

	for _, tc := range cases {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})
		req := httptest.NewRequest(http.MethodGet, "/quiz/questions", nil)
		entry := captureLog(t, handler, req)

		if entry["level"] != tc.level {
			t.Errorf("status %d: level = %v, want %s", tc.status, entry["level"], tc.level)
		}
	}
}

func TestLoggingMiddleware_RecordsHTTPStatusMetric(t *testing.T) {
	metrics := &mockHTTPMetrics{}
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	mw := NewLoggingMiddleware(logger, metrics)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if len(metrics.statuses) != 1 || metrics.statuses[0] != http.StatusNotFound {
		t.Errorf("recorded statuses = %v, want [404]", metrics.statuses)
	}
}
