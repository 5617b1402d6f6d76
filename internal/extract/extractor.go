package extract

import (
	"context"
	"strings"

	"resumebench/internal/errors"
	"resumebench/internal/knowledge"
	"resumebench/internal/types"
)

// Extractor combines static keyword matching with an external
// named-entity recognizer.
type Extractor struct {
	recognizer Recognizer
	logger     *errors.Logger
}

// NewExtractor creates an extractor. A nil recognizer is accepted at
// construction; use of it is what fails.
func NewExtractor(recognizer Recognizer, logger *errors.Logger) *Extractor {
	return &Extractor{
		recognizer: recognizer,
		logger:     logger,
	}
}

// Extract returns the structured entities found in the text. Skills,
// education and experience terms come from the static keyword tables
// and are deduplicated; organizations and dates come from the
// recognizer, verbatim and in emission order. A missing recognizer is
// a hard failure at call time.
func (e *Extractor) Extract(ctx context.Context, text string, tables *knowledge.Tables) (types.Entities, error) {
	if e.recognizer == nil {
		return types.Entities{}, errors.NewRecognizerError(errors.ErrCodeExtractorUnavailable,
			"entity recognizer is not configured", nil)
	}

	lower := strings.ToLower(text)
	entities := types.Entities{
		Skills:        matchKeywords(lower, tables.SkillKeywords),
		Education:     matchKeywords(lower, tables.EducationKeywords),
		Experience:    matchKeywords(lower, tables.ExperienceKeywords),
		Organizations: []string{},
		Dates:         []string{},
	}

	spans, err := e.recognizer.Recognize(ctx, text)
	if err != nil {
		return types.Entities{}, err
	}

	for _, span := range spans {
		switch span.Label {
		case "ORG":
			entities.Organizations = append(entities.Organizations, span.Text)
		case "DATE":
			entities.Dates = append(entities.Dates, span.Text)
		}
	}

	return entities, nil
}

// matchKeywords returns the keywords contained in the lowercased text,
// deduplicated, in table order. Matching is substring containment,
// consistent with curated-skill scoring.
func matchKeywords(lowerText string, keywords []string) []string {
	matched := []string{}
	seen := make(map[string]bool)
	for _, keyword := range keywords {
		term := strings.ToLower(keyword)
		if seen[term] {
			continue
		}
		if strings.Contains(lowerText, term) {
			seen[term] = true
			matched = append(matched, term)
		}
	}
	return matched
}
