package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resumebench/internal/config"
	"resumebench/internal/errors"
)

const testCorpus = `Category,Resume
Data Science,python pandas machine learning models and statistics
Data Science,deep learning tensorflow python data pipelines
Java Developer,java spring hibernate microservices backend
Java Developer,java maven junit enterprise applications
Sales,quarterly targets negotiation pipeline crm outreach
`

func newTestService(t *testing.T) *Service {
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

	svc, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() {
		if err := svc.Close(); err != nil {
			t.Errorf("Close() error: %v", err)
		}
	})
	return svc
}

func TestScoreReport(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	report, err := svc.Score(ctx, "python and pandas experience building models", "Data Science")
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}

	if report.Category != "Data Science" {
		t.Errorf("Category = %q, want %q", report.Category, "Data Science")
	}
	if report.Similarity <= 0 {
		t.Errorf("Similarity = %f, want > 0", report.Similarity)
	}
	if len(report.TopTerms) == 0 {
		t.Error("TopTerms should be populated for a known category")
	}
	if len(report.TopTerms) > 5 {
		t.Errorf("TopTerms length = %d, want at most 5", len(report.TopTerms))
	}

	for _, matched := range report.MatchedSkills {
		for _, missing := range report.MissingSkills {
			if matched == missing {
				t.Errorf("skill %q is both matched and missing", matched)
			}
		}
	}
	total := len(report.MatchedSkills) + len(report.MissingSkills)
	if curated := svc.Tables().CuratedSkillsFor("Data Science"); total != len(curated) {
		t.Errorf("matched+missing = %d, want %d", total, len(curated))
	}
}

func TestScoreUnknownCategoryDegrades(t *testing.T) {
	svc := newTestService(t)

	report, err := svc.Score(context.Background(), "some resume text", "Underwater Basket Weaving")
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}
	if report.Similarity != 0 || report.SkillMatch != 0 {
		t.Errorf("expected zeroed scores, got similarity=%f skillMatch=%f",
			report.Similarity, report.SkillMatch)
	}
	if report.MatchedSkills == nil || len(report.MatchedSkills) != 0 {
		t.Errorf("MatchedSkills = %v, want empty non-nil slice", report.MatchedSkills)
	}
	if len(report.TopTerms) != 0 {
		t.Errorf("TopTerms = %v, want empty for unknown category", report.TopTerms)
	}
}

func TestScoreEmptyTextRejected(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Score(context.Background(), "   ", "Data Science")
	if err == nil {
		t.Fatal("Score() with blank text should error")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("expected *errors.AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidRequest {
		t.Errorf("Code = %q, want %q", appErr.Code, errors.ErrCodeInvalidRequest)
	}
}

func TestParseWithoutRecognizer(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Parse(context.Background(), "python developer at Acme Corp")
	if err == nil {
		t.Fatal("Parse() without a recognizer should error")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("expected *errors.AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeExtractorUnavailable {
		t.Errorf("Code = %q, want %q", appErr.Code, errors.ErrCodeExtractorUnavailable)
	}
}

func TestTimelineThresholdResolution(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	dates := []string{"Jan 2020 - Mar 2020", "Jun 2021 - Dec 2021"}

	// 15-month gap: flagged with the default threshold of 6.
	report := svc.Timeline(ctx, dates, 0)
	if len(report.Gaps) != 1 {
		t.Fatalf("Gaps = %d, want 1 with default threshold", len(report.Gaps))
	}
	if report.Gaps[0].GapMonths != 15 {
		t.Errorf("GapMonths = %d, want 15", report.Gaps[0].GapMonths)
	}

	// An explicit threshold above the gap suppresses it.
	report = svc.Timeline(ctx, dates, 20)
	if len(report.Gaps) != 0 {
		t.Errorf("Gaps = %d, want 0 with threshold 20", len(report.Gaps))
	}
}

func TestAdvise(t *testing.T) {
	svc := newTestService(t)

	advice := svc.Advise(context.Background(), "Data Science", []string{"nlp", "spark"})
	if advice.Role != "Data Scientist" {
		t.Errorf("Role = %q, want %q", advice.Role, "Data Scientist")
	}
	if len(advice.NextRoles) == 0 {
		t.Error("NextRoles should not be empty for a mapped role")
	}
	for _, skill := range []string{"nlp", "spark"} {
		found := false
		for _, up := range advice.Upskilling {
			if up == skill {
				found = true
			}
		}
		if !found {
			t.Errorf("Upskilling %v missing %q", advice.Upskilling, skill)
		}
	}
}

func TestReadability(t *testing.T) {
	svc := newTestService(t)

	text := "Experienced python developer. Built machine learning models. " +
		"Education at a university. Skills include pandas and statistics."
	report, err := svc.Readability(context.Background(), text, "Data Science")
	if err != nil {
		t.Fatalf("Readability() error: %v", err)
	}
	if report.ReadabilityError != "" {
		t.Errorf("unexpected readability error: %s", report.ReadabilityError)
	}
	if report.KeywordCounts == nil {
		t.Error("KeywordCounts should be populated when a category is given")
	}
	if report.KeywordCounts["machine"] == 0 {
		t.Errorf("KeywordCounts[machine] = 0, want > 0 (%v)", report.KeywordCounts)
	}
}

func TestCategoriesAndStats(t *testing.T) {
	svc := newTestService(t)

	infos := svc.Categories()
	if len(infos) != 3 {
		t.Fatalf("Categories() length = %d, want 3", len(infos))
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
		if info.ResumeCount <= 0 {
			t.Errorf("ResumeCount for %s = %d, want > 0", info.Name, info.ResumeCount)
		}
	}
	joined := strings.Join(names, ",")
	for _, want := range []string{"Data Science", "Java Developer", "Sales"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Categories() = %v, missing %q", names, want)
		}
	}

	stats := svc.Stats()
	if stats["categories"] != 3 {
		t.Errorf("stats categories = %v, want 3", stats["categories"])
	}
	if stats["recognizerEnabled"] != false {
		t.Errorf("stats recognizerEnabled = %v, want false", stats["recognizerEnabled"])
	}
	if svc.RecognizerHealthy() {
		t.Error("RecognizerHealthy() = true without a recognizer")
	}
}

func TestMissingSkillsNormalizesCuratedEntries(t *testing.T) {
	curated := []string{" nlp", "Machine ", "python"}
	matched := []string{"nlp", "machine"}

	missing := missingSkills(curated, matched)
	if len(missing) != 1 || missing[0] != "python" {
		t.Errorf("missingSkills() = %v, want [python]", missing)
	}
}
