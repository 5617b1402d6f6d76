package benchmark

import (
	"fmt"
	"sort"

	"resumebench/internal/errors"
	"resumebench/internal/types"
)

// Engine bundles the fitted vectorizer and the category profiles.
// After NewEngine returns, the engine is read-only and safe for
// concurrent scoring.
type Engine struct {
	vectorizer *Vectorizer
	profiles   map[string][]float64
	counts     map[string]int
	categories []string
}

// NewEngine fits the vocabulary over the full corpus and builds the
// per-category profiles. Fitting happens exactly once here; scoring
// never refits.
func NewEngine(records []types.Record, maxFeatures int) (*Engine, error) {
	if len(records) == 0 {
		return nil, errors.NewCorpusError(errors.ErrCodeEmptyCorpus,
			"cannot build benchmark engine from an empty corpus", nil)
	}

	texts := make([]string, len(records))
	for i, rec := range records {
		texts[i] = rec.Text
	}

	vectorizer, err := FitVectorizer(texts, maxFeatures)
	if err != nil {
		return nil, err
	}

	profiles := BuildProfiles(vectorizer, records)
	categories := make([]string, 0, len(profiles))
	for category := range profiles {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return &Engine{
		vectorizer: vectorizer,
		profiles:   profiles,
		counts:     countByCategory(records),
		categories: categories,
	}, nil
}

func countByCategory(records []types.Record) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Category]++
	}
	return counts
}

// Score benchmarks a resume text against a category profile. An
// unknown category returns the zeroed degraded result rather than an
// error; callers that need a hard failure should check HasCategory
// first.
func (e *Engine) Score(text, category string, curatedSkills []string) types.ScoreResult {
	profile, ok := e.profiles[category]
	if !ok {
		return types.ScoreResult{MatchedSkills: []string{}}
	}

	similarity := CosineSparse(e.vectorizer.Transform(text), profile)
	ratio, matched := MatchCuratedSkills(text, curatedSkills)
	if matched == nil {
		matched = []string{}
	}

	return types.ScoreResult{
		Similarity:    similarity,
		SkillMatch:    ratio,
		MatchedSkills: matched,
	}
}

// TopTerms returns the n heaviest profile terms for a category.
func (e *Engine) TopTerms(category string, n int) ([]string, error) {
	profile, ok := e.profiles[category]
	if !ok {
		return nil, errors.NewValidationError(errors.ErrCodeUnknownCategory,
			fmt.Sprintf("category %q has no benchmark profile", category), nil)
	}
	return TopTerms(e.vectorizer, profile, n), nil
}

// HasCategory reports whether a profile exists for the category.
func (e *Engine) HasCategory(category string) bool {
	_, ok := e.profiles[category]
	return ok
}

// Categories returns the profiled categories in sorted order.
func (e *Engine) Categories() []string {
	return e.categories
}

// ResumeCount returns how many corpus records a category has.
func (e *Engine) ResumeCount(category string) int {
	return e.counts[category]
}

// VocabularySize returns the size of the fitted vocabulary.
func (e *Engine) VocabularySize() int {
	return e.vectorizer.Size()
}
