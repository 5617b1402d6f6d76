// Package service wires the benchmark engine, knowledge base, entity
// extractor and diagnostic analyzers into one facade shared by the CLI
// and the HTTP server. A Service is built once at startup and is
// read-only afterwards, so it is safe for concurrent request handling.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"resumebench/internal/advisor"
	"resumebench/internal/benchmark"
	"resumebench/internal/config"
	"resumebench/internal/corpus"
	"resumebench/internal/errors"
	"resumebench/internal/extract"
	"resumebench/internal/knowledge"
	"resumebench/internal/readability"
	"resumebench/internal/timeline"
	"resumebench/internal/types"
)

// Service owns the fitted benchmark engine, the knowledge tables and
// the recognizer-backed extractor.
type Service struct {
	cfg        *config.Config
	logger     *errors.Logger
	engine     *benchmark.Engine
	kb         *knowledge.Base
	recognizer extract.Recognizer
	extractor  *extract.Extractor
	watcher    *knowledge.Watcher
}

// New builds a Service from configuration: loads the corpus, fits the
// TF-IDF model, builds category profiles, loads knowledge table
// overrides and initializes the entity recognizer when enabled.
func New(cfg *config.Config, logger *errors.Logger) (*Service, error) {
	records, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		return nil, err
	}

	engine, err := benchmark.NewEngine(records, cfg.Corpus.MaxFeatures)
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Info("Benchmark engine ready",
			"resumes", len(records),
			"categories", len(engine.Categories()),
			"vocabulary", engine.VocabularySize())
	}

	svc := &Service{
		cfg:    cfg,
		logger: logger,
		engine: engine,
		kb:     knowledge.NewBase(logger),
	}

	if err := svc.initKnowledge(); err != nil {
		return nil, err
	}

	if err := svc.initRecognizer(); err != nil {
		return nil, err
	}

	svc.extractor = extract.NewExtractor(svc.recognizer, logger)

	return svc, nil
}

func (s *Service) initKnowledge() error {
	if s.cfg.Knowledge.Path == "" {
		return nil
	}

	if err := s.kb.LoadFile(s.cfg.Knowledge.Path); err != nil {
		return err
	}

	if s.cfg.Knowledge.Watch {
		s.watcher = knowledge.NewWatcher(s.kb, s.cfg.Knowledge.Path,
			s.cfg.Knowledge.DebounceDelay, s.logger)
		if err := s.watcher.Start(); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) initRecognizer() error {
	if !s.cfg.Recognizer.Enabled {
		if s.logger != nil {
			s.logger.Info("Entity recognizer disabled; parse and report operations will be unavailable")
		}
		return nil
	}

	recognizer, err := extract.NewGeminiRecognizer(&s.cfg.Recognizer, s.logger)
	if err != nil {
		return err
	}
	s.recognizer = recognizer
	return nil
}

// Close releases the recognizer client and stops the knowledge watcher.
func (s *Service) Close() error {
	var firstErr error
	if s.watcher != nil {
		if err := s.watcher.Stop(); err != nil {
			firstErr = err
		}
	}
	if s.recognizer != nil {
		if err := s.recognizer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Tables returns the current knowledge table snapshot.
func (s *Service) Tables() *knowledge.Tables {
	return s.kb.Snapshot()
}

// Categories lists every category with a benchmark profile.
func (s *Service) Categories() []types.CategoryInfo {
	tables := s.kb.Snapshot()
	names := s.engine.Categories()
	infos := make([]types.CategoryInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, types.CategoryInfo{
			Name:          name,
			ResumeCount:   s.engine.ResumeCount(name),
			CuratedSkills: tables.CuratedSkillsFor(name),
		})
	}
	return infos
}

// Score benchmarks a resume text against a category profile.
func (s *Service) Score(ctx context.Context, text, category string) (types.ScoreReport, error) {
	if strings.TrimSpace(text) == "" {
		return types.ScoreReport{}, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"resume text must not be empty", nil)
	}

	tables := s.kb.Snapshot()
	curated := tables.CuratedSkillsFor(category)
	result := s.engine.Score(text, category, curated)

	report := types.ScoreReport{
		Category:      category,
		Similarity:    result.Similarity,
		SkillMatch:    result.SkillMatch,
		MatchedSkills: result.MatchedSkills,
		MissingSkills: missingSkills(curated, result.MatchedSkills),
	}

	if s.engine.HasCategory(category) {
		topTerms, err := s.engine.TopTerms(category, s.cfg.Corpus.TopTermsCount)
		if err != nil {
			return types.ScoreReport{}, err
		}
		report.TopTerms = topTerms
	}

	return report, nil
}

// TopTerms returns the heaviest profile terms for a category.
func (s *Service) TopTerms(ctx context.Context, category string) ([]string, error) {
	return s.engine.TopTerms(category, s.cfg.Corpus.TopTermsCount)
}

// Parse extracts entities and keyword hits from raw resume text.
func (s *Service) Parse(ctx context.Context, text string) (types.Entities, error) {
	if strings.TrimSpace(text) == "" {
		return types.Entities{}, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"resume text must not be empty", nil)
	}
	return s.extractor.Extract(ctx, text, s.kb.Snapshot())
}

// Timeline analyzes a list of date strings for gaps and overlaps. A
// threshold of zero or less falls back to the configured default.
func (s *Service) Timeline(ctx context.Context, dates []string, gapThresholdMonths int) types.TimelineReport {
	return timeline.Analyze(dates, s.resolveGapThreshold(gapThresholdMonths))
}

// Advise suggests a role, next career rungs and upskilling targets.
func (s *Service) Advise(ctx context.Context, category string, missing []string) types.Advice {
	return advisor.Suggest(category, missing, s.kb.Snapshot())
}

// Readability runs the writing-quality diagnostics. When the category
// has curated skills they are checked as ATS keywords.
func (s *Service) Readability(ctx context.Context, text, category string) (types.ReadabilityReport, error) {
	if strings.TrimSpace(text) == "" {
		return types.ReadabilityReport{}, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"resume text must not be empty", nil)
	}

	tables := s.kb.Snapshot()
	var curated []string
	if category != "" {
		curated = tables.CuratedSkillsFor(category)
	}
	return readability.Analyze(text, curated, tables), nil
}

// Report runs the full diagnostic chain for one resume: score, entity
// extraction, timeline analysis over the extracted dates, career
// advice from the missing skills, and readability checks.
func (s *Service) Report(ctx context.Context, text, category string) (types.DiagnosticReport, error) {
	score, err := s.Score(ctx, text, category)
	if err != nil {
		return types.DiagnosticReport{}, err
	}

	entities, err := s.extractor.Extract(ctx, text, s.kb.Snapshot())
	if err != nil {
		return types.DiagnosticReport{}, err
	}

	tables := s.kb.Snapshot()

	return types.DiagnosticReport{
		Score:       score,
		Entities:    entities,
		Timeline:    timeline.Analyze(entities.Dates, s.resolveGapThreshold(0)),
		Advice:      advisor.Suggest(category, score.MissingSkills, tables),
		Readability: readability.Analyze(text, tables.CuratedSkillsFor(category), tables),
	}, nil
}

// RecognizerHealthy reports whether the recognizer is configured and
// its circuit breaker, if any, is closed.
func (s *Service) RecognizerHealthy() bool {
	if s.recognizer == nil {
		return false
	}
	type healthReporter interface{ IsHealthy() bool }
	if hr, ok := s.recognizer.(healthReporter); ok {
		return hr.IsHealthy()
	}
	return true
}

// Stats summarizes the loaded engine state for the stats endpoint.
func (s *Service) Stats() map[string]any {
	tables := s.kb.Snapshot()
	stats := map[string]any{
		"categories":         len(s.engine.Categories()),
		"vocabularySize":     s.engine.VocabularySize(),
		"recognizerEnabled":  s.recognizer != nil,
		"knowledgeWatcher":   s.watcher != nil && s.watcher.IsRunning(),
		"gapThresholdMonths": tables.GapThresholdMonths,
	}
	type statsReporter interface{ BreakerStats() map[string]any }
	if sr, ok := s.recognizer.(statsReporter); ok {
		stats["recognizerBreaker"] = sr.BreakerStats()
	}
	return stats
}

// resolveGapThreshold picks the timeline gap threshold: an explicit
// positive request value wins, then the app configuration, then the
// knowledge tables.
func (s *Service) resolveGapThreshold(requested int) int {
	if requested > 0 {
		return requested
	}
	if s.cfg.App.GapThresholdMonths > 0 {
		return s.cfg.App.GapThresholdMonths
	}
	return s.kb.Snapshot().GapThresholdMonths
}

// missingSkills returns the curated skills not present in the matched
// list, preserving curated order.
func missingSkills(curated, matched []string) []string {
	matchedSet := make(map[string]bool, len(matched))
	for _, skill := range matched {
		matchedSet[normalizeSkill(skill)] = true
	}

	// Curated entries come from editable YAML, so trim them the same
	// way the matcher trims its output.
	missing := []string{}
	for _, skill := range curated {
		if !matchedSet[normalizeSkill(skill)] {
			missing = append(missing, skill)
		}
	}
	return missing
}

func normalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

var (
	sharedOnce sync.Once
	shared     *Service
	sharedErr  error
)

// Shared returns the process-wide Service, building it on first use
// from the global configuration. Construction happens at most once; a
// failed build is sticky.
func Shared(logger *errors.Logger) (*Service, error) {
	sharedOnce.Do(func() {
		if config.GlobalConfig == nil {
			sharedErr = fmt.Errorf("configuration not initialized")
			return
		}
		shared, sharedErr = New(config.GlobalConfig, logger)
	})
	return shared, sharedErr
}
