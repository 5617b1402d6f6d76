package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resumebench/internal/config"
	"resumebench/internal/errors"
	"resumebench/internal/observability"
	"resumebench/internal/service"
	"resumebench/internal/types"
)

const testCorpus = `Category,Resume
Data Science,python pandas machine learning models and statistics
Data Science,deep learning tensorflow python data pipelines
Java Developer,java spring hibernate microservices backend
Java Developer,java maven junit enterprise applications
Sales,quarterly targets negotiation pipeline crm outreach
`

func newTestServer(t *testing.T, serverConfig ServerConfig) (*Server, *http.ServeMux) {
	t.Helper()

	dir := t.TempDir()
	corpusPath := filepath.Join(dir, "resumes.csv")
	if err := os.WriteFile(corpusPath, []byte(testCorpus), 0o600); err != nil {
		t.Fatalf("writing corpus: %v", err)
	}

	cfg := &config.Config{
		Corpus: config.CorpusConfig{
			Path:          corpusPath,
			MaxFeatures:   2000,
			TopTermsCount: 5,
		},
		App: config.AppConfig{
			GapThresholdMonths: 6,
		},
	}

	logger, err := errors.New("error")
	if err != nil {
		t.Fatalf("creating logger: %v", err)
	}

	svc, err := service.New(cfg, logger)
	if err != nil {
		t.Fatalf("creating service: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })

	srv := NewServer(cfg, svc, serverConfig, logger)
	t.Cleanup(func() {
		if srv.RateLimiter != nil {
			srv.RateLimiter.Close()
		}
	})

	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, cfg)
	if err != nil {
		t.Fatalf("creating observability manager: %v", err)
	}

	return srv, srv.setupRoutes(om)
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestScoreEndpoint(t *testing.T) {
	_, mux := newTestServer(t, ServerConfig{Host: "localhost", Port: "0"})

	rec := postJSON(t, mux, "/score", ScoreRequest{
		Text:     "python and pandas experience building machine learning models",
		Category: "Data Science",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var report types.ScoreReport
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if report.Category != "Data Science" {
		t.Errorf("Category = %q, want %q", report.Category, "Data Science")
	}
	if report.Similarity <= 0 {
		t.Errorf("Similarity = %f, want > 0", report.Similarity)
	}
}

func TestScoreEndpointValidation(t *testing.T) {
	_, mux := newTestServer(t, ServerConfig{Host: "localhost", Port: "0"})

	t.Run("missing text", func(t *testing.T) {
		rec := postJSON(t, mux, "/score", ScoreRequest{Category: "Data Science"})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("missing category", func(t *testing.T) {
		rec := postJSON(t, mux, "/score", ScoreRequest{Text: "some resume"})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("wrong method", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/score", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	})

	t.Run("wrong content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/score", strings.NewReader("text=hi"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnsupportedMediaType {
			t.Errorf("status = %d, want 415", rec.Code)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/score", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestParseEndpointWithoutRecognizer(t *testing.T) {
	_, mux := newTestServer(t, ServerConfig{Host: "localhost", Port: "0"})

	rec := postJSON(t, mux, "/parse", ParseRequest{Text: "worked at Acme Corp from Jan 2020 to Mar 2022"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503, body: %s", rec.Code, rec.Body.String())
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if errResp.Error != errors.ErrCodeExtractorUnavailable {
		t.Errorf("error = %q, want %q", errResp.Error, errors.ErrCodeExtractorUnavailable)
	}
}

func TestTimelineEndpoint(t *testing.T) {
	_, mux := newTestServer(t, ServerConfig{Host: "localhost", Port: "0"})

	rec := postJSON(t, mux, "/timeline", TimelineRequest{
		Dates: []string{"Jan 2020 - Mar 2020", "Jun 2021 - Dec 2021"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var report types.TimelineReport
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(report.Gaps) != 1 {
		t.Errorf("Gaps = %d, want 1", len(report.Gaps))
	}

	rec = postJSON(t, mux, "/timeline", TimelineRequest{Dates: nil})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty dates status = %d, want 400", rec.Code)
	}
}

func TestAdviseEndpoint(t *testing.T) {
	_, mux := newTestServer(t, ServerConfig{Host: "localhost", Port: "0"})

	rec := postJSON(t, mux, "/advise", AdviseRequest{
		Category:      "Data Science",
		MissingSkills: []string{"nlp"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var advice types.Advice
	if err := json.NewDecoder(rec.Body).Decode(&advice); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if advice.Role != "Data Scientist" {
		t.Errorf("Role = %q, want %q", advice.Role, "Data Scientist")
	}
}

func TestReadabilityEndpoint(t *testing.T) {
	_, mux := newTestServer(t, ServerConfig{Host: "localhost", Port: "0"})

	rec := postJSON(t, mux, "/readability", ReadabilityRequest{
		Text: "Built machine learning models. The pipeline was deployed by the team.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var report types.ReadabilityReport
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(report.PassiveSentences) == 0 {
		t.Error("PassiveSentences is empty, want the passive sentence flagged")
	}
}

func TestUploadEndpoint(t *testing.T) {
	_, mux := newTestServer(t, ServerConfig{Host: "localhost", Port: "0"})

	upload := func(t *testing.T, filename, content string) *httptest.ResponseRecorder {
		t.Helper()
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("creating form file: %v", err)
		}
		if _, err := part.Write([]byte(content)); err != nil {
			t.Fatalf("writing form file: %v", err)
		}
		if err := writer.Close(); err != nil {
			t.Fatalf("closing multipart writer: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		return rec
	}

	t.Run("text file", func(t *testing.T) {
		rec := upload(t, "resume.txt", "experienced python developer")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
		}
		var resp UploadResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.Preview != "experienced python developer" {
			t.Errorf("Preview = %q", resp.Preview)
		}
		if resp.Format != "txt" {
			t.Errorf("Format = %q, want %q", resp.Format, "txt")
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		rec := upload(t, "resume.xlsx", "binary stuff")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	_, mux := newTestServer(t, ServerConfig{
		Host:    "localhost",
		Port:    "0",
		APIKeys: []string{"test-key-12345678"},
	})

	body := ScoreRequest{Text: "python models", Category: "Data Science"}
	data, _ := json.Marshal(body)

	t.Run("missing key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("invalid key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", "wrong-key")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("valid header key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", "test-key-12345678")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer test-key-12345678")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("health is open", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})
}

func TestRateLimiting(t *testing.T) {
	_, mux := newTestServer(t, ServerConfig{
		Host: "localhost",
		Port: "0",
		RateLimit: config.RateLimitConfig{
			Enabled:        true,
			RequestsPerMin: 60,
			BurstCapacity:  2,
			ByIP:           true,
		},
	})

	body := ScoreRequest{Text: "python models", Category: "Data Science"}

	codes := make([]int, 0, 4)
	for range 4 {
		rec := postJSON(t, mux, "/score", body)
		codes = append(codes, rec.Code)
	}

	limited := 0
	for _, code := range codes {
		if code == http.StatusTooManyRequests {
			limited++
		}
	}
	if limited == 0 {
		t.Errorf("expected at least one 429 after burst exhaustion, got %v", codes)
	}
	if codes[0] != http.StatusOK {
		t.Errorf("first request = %d, want 200", codes[0])
	}
}

func TestHealthEndpoint(t *testing.T) {
	_, mux := newTestServer(t, ServerConfig{Host: "localhost", Port: "0", Version: "test"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", resp["status"])
	}
}

func TestStatsEndpoint(t *testing.T) {
	_, mux := newTestServer(t, ServerConfig{Host: "localhost", Port: "0", Version: "test"})

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["categories"] != float64(3) {
		t.Errorf("categories = %v, want 3", resp["categories"])
	}
	if resp["version"] != "test" {
		t.Errorf("version = %v, want test", resp["version"])
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	_, mux := newTestServer(t, ServerConfig{Host: "localhost", Port: "0"})

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Categories []types.CategoryInfo `json:"categories"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Categories) != 3 {
		t.Errorf("categories = %d, want 3", len(resp.Categories))
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := maskAPIKey("short"); got != "****" {
		t.Errorf("maskAPIKey(short) = %q", got)
	}
	if got := maskAPIKey("abcdefgh12345"); got != "abcdefgh****" {
		t.Errorf("maskAPIKey(long) = %q", got)
	}
}
