package counselor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hitoshi/kokoro/internal/model"
)

// mockCounselorRepo はrepository.CounselorRepositoryのモック実装。
type mockCounselorRepo struct {
	createFunc func(ctx context.Context, counselor *model.Counselor) error
	listFunc   func(ctx context.Context) ([]*model.Counselor, error)
}

func (m *mockCounselorRepo) Create(ctx context.Context, counselor *model.Counselor) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, counselor)
	}
	return nil
}

func (m *mockCounselorRepo) List(ctx context.Context) ([]*model.Counselor, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

// mockPortraitFetcher はPortraitFetcherServiceのモック実装。
type mockPortraitFetcher struct {
	fetchFunc func(ctx context.Context, imageURL string) ([]byte, string, error)
}

func (m *mockPortraitFetcher) FetchPortrait(ctx context.Context, imageURL string) ([]byte, string, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, imageURL)
	}
	return nil, "", nil
}

// mockSanitizer はSanitizerのモック実装。
type mockSanitizer struct {
	sanitizeBioFunc func(content string) string
}

func (m *mockSanitizer) SanitizeBio(content string) string {
	if m.sanitizeBioFunc != nil {
		return m.sanitizeBioFunc(content)
	}
	return content
}

func validInput() CreateInput {
	return CreateInput{
		Name:           "Dr. Mehta",
		Specialization: "Anxiety",
		Bio:            "10 years of experience.",
		ContactNumber:  "+91-9999999999",
		ImageURL:       "https://example.com/mehta.jpg",
	}
}

func TestService_Create(t *testing.T) {
	t.Run("正常系_ポートレート付きで登録される", func(t *testing.T) {
		var created *model.Counselor
		repo := &mockCounselorRepo{
			createFunc: func(ctx context.Context, counselor *model.Counselor) error {
				created = counselor
				return nil
			},
		}
		portraits := &mockPortraitFetcher{
			fetchFunc: func(ctx context.Context, imageURL string) ([]byte, string, error) {
				return []byte("fake-image"), "image/jpeg", nil
			},
		}
		service := NewService(repo, portraits, &mockSanitizer{})

		counselor, err := service.Create(context.Background(), validInput())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if counselor.ID == "" {
			t.Error("ID was not generated")
		}
		if string(created.PortraitData) != "fake-image" || created.PortraitMime != "image/jpeg" {
			t.Errorf("portrait not persisted: %q %q", created.PortraitData, created.PortraitMime)
		}
	})

	t.Run("正常系_ポートレート取得失敗でも登録は成功する", func(t *testing.T) {
		var created *model.Counselor
		repo := &mockCounselorRepo{
			createFunc: func(ctx context.Context, counselor *model.Counselor) error {
				created = counselor
				return nil
			},
		}
		portraits := &mockPortraitFetcher{
			fetchFunc: func(ctx context.Context, imageURL string) ([]byte, string, error) {
				return nil, "", errors.New("connection refused")
			},
		}
		service := NewService(repo, portraits, &mockSanitizer{})

		_, err := service.Create(context.Background(), validInput())
		if err != nil {
			t.Fatalf("Create failed despite non-fatal fetch error: %v", err)
		}
		if created.PortraitData != nil {
			t.Errorf("PortraitData = %q, want nil", created.PortraitData)
		}
	})

	t.Run("正常系_Bioがサニタイズされる", func(t *testing.T) {
		var created *model.Counselor
		repo := &mockCounselorRepo{
			createFunc: func(ctx context.Context, counselor *model.Counselor) error {
				created = counselor
				return nil
			},
		}
		sanitizer := &mockSanitizer{
			sanitizeBioFunc: func(content string) string {
				return "cleaned"
			},
		}
		service := NewService(repo, &mockPortraitFetcher{}, sanitizer)

		input := validInput()
		input.Bio = `<script>alert(1)</script>`
		if _, err := service.Create(context.Background(), input); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if created.Bio != "cleaned" {
			t.Errorf("Bio = %q, want %q", created.Bio, "cleaned")
		}
	})

	t.Run("異常系_必須フィールド欠落", func(t *testing.T) {
		service := NewService(&mockCounselorRepo{}, &mockPortraitFetcher{}, &mockSanitizer{})

		input := validInput()
		input.Specialization = ""
		_, err := service.Create(context.Background(), input)

		var apiErr *model.APIError
		if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeMissingFields {
			t.Errorf("err = %v, want MISSING_FIELDS", err)
		}
	})

	t.Run("異常系_リポジトリ障害", func(t *testing.T) {
		repo := &mockCounselorRepo{
			createFunc: func(ctx context.Context, counselor *model.Counselor) error {
				return errors.New("db down")
			},
		}
		service := NewService(repo, &mockPortraitFetcher{}, &mockSanitizer{})

		if _, err := service.Create(context.Background(), validInput()); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestService_List(t *testing.T) {
	repo := &mockCounselorRepo{
		listFunc: func(ctx context.Context) ([]*model.Counselor, error) {
			return []*model.Counselor{
				{ID: "c1", Name: "Dr. Mehta"},
				{ID: "c2", Name: "Dr. Rao"},
			}, nil
		},
	}
	service := NewService(repo, &mockPortraitFetcher{}, &mockSanitizer{})

	counselors, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(counselors) != 2 {
		t.Errorf("len = %d, want 2", len(counselors))
	}
}

// fakeSSRFGuard はSSRFValidatorのテスト実装。
type fakeSSRFGuard struct {
	validateErr error
}

func (f *fakeSSRFGuard) ValidateURL(rawURL string) error {
	return f.validateErr
}

func (f *fakeSSRFGuard) NewSafeClient(timeout time.Duration, maxResponseSize int64) *http.Client {
	return &http.Client{Timeout: timeout}
}

func TestPortraitFetcher_FetchPortrait(t *testing.T) {
	t.Run("正常系_画像を取得する", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte("png-bytes"))
		}))
		defer server.Close()

		fetcher := NewPortraitFetcher(&fakeSSRFGuard{}, 5*time.Second, 2*1024*1024)
		data, mime, err := fetcher.FetchPortrait(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("FetchPortrait failed: %v", err)
		}
		if string(data) != "png-bytes" || mime != "image/png" {
			t.Errorf("got %q %q", data, mime)
		}
	})

	t.Run("SSRFブロックはnilを返しエラーにしない", func(t *testing.T) {
		fetcher := NewPortraitFetcher(&fakeSSRFGuard{validateErr: errors.New("blocked")}, 5*time.Second, 2*1024*1024)

		data, mime, err := fetcher.FetchPortrait(context.Background(), "http://169.254.169.254/")
		if err != nil {
			t.Fatalf("FetchPortrait returned error: %v", err)
		}
		if data != nil || mime != "" {
			t.Errorf("got %q %q, want nil/empty", data, mime)
		}
	})

	t.Run("非画像のContent-Typeは破棄する", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html></html>"))
		}))
		defer server.Close()

		fetcher := NewPortraitFetcher(&fakeSSRFGuard{}, 5*time.Second, 2*1024*1024)
		data, _, err := fetcher.FetchPortrait(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("FetchPortrait failed: %v", err)
		}
		if data != nil {
			t.Errorf("data = %q, want nil", data)
		}
	})

	t.Run("サイズ超過は破棄する", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			w.Write(make([]byte, 64))
		}))
		defer server.Close()

		fetcher := NewPortraitFetcher(&fakeSSRFGuard{}, 5*time.Second, 16)
		data, _, err := fetcher.FetchPortrait(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("FetchPortrait failed: %v", err)
		}
		if data != nil {
			t.Errorf("data len = %d, want nil", len(data))
		}
	})

	t.Run("HTTPエラーステータスは破棄する", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := NewPortraitFetcher(&fakeSSRFGuard{}, 5*time.Second, 2*1024*1024)
		data, _, err := fetcher.FetchPortrait(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("FetchPortrait failed: %v", err)
		}
		if data != nil {
			t.Errorf("data = %q, want nil", data)
		}
	})

	t.Run("空URLはnilを返す", func(t *testing.T) {
		fetcher := NewPortraitFetcher(&fakeSSRFGuard{}, 5*time.Second, 2*1024*1024)
		data, mime, err := fetcher.FetchPortrait(context.Background(), "")
		if err != nil || data != nil || mime != "" {
			t.Errorf("got %q %q %v, want nil/empty/nil", data, mime, err)
		}
	})
}
