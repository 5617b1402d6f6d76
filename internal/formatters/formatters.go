package formatters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"resumebench/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ScoreReport", &ScoreTextFormatter{})
	registry.RegisterFormatter("markdown", "ScoreReport", &ScoreMarkdownFormatter{})
	registry.RegisterFormatter("text", "Entities", &EntitiesTextFormatter{})
	registry.RegisterFormatter("markdown", "Entities", &EntitiesMarkdownFormatter{})
	registry.RegisterFormatter("text", "TimelineReport", &TimelineTextFormatter{})
	registry.RegisterFormatter("markdown", "TimelineReport", &TimelineMarkdownFormatter{})
	registry.RegisterFormatter("text", "Advice", &AdviceTextFormatter{})
	registry.RegisterFormatter("markdown", "Advice", &AdviceMarkdownFormatter{})
	registry.RegisterFormatter("text", "ReadabilityReport", &ReadabilityTextFormatter{})
	registry.RegisterFormatter("markdown", "ReadabilityReport", &ReadabilityMarkdownFormatter{})
	registry.RegisterFormatter("text", "DiagnosticReport", &DiagnosticTextFormatter{})
	registry.RegisterFormatter("markdown", "DiagnosticReport", &DiagnosticMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	format = strings.ToLower(format)
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ScoreReport:
		return "ScoreReport"
	case types.Entities:
		return "Entities"
	case types.TimelineReport:
		return "TimelineReport"
	case types.Advice:
		return "Advice"
	case types.ReadabilityReport:
		return "ReadabilityReport"
	case types.DiagnosticReport:
		return "DiagnosticReport"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

func writeList(output *strings.Builder, items []string) {
	for _, item := range items {
		output.WriteString(fmt.Sprintf("- %s\n", item))
	}
}

func sortedCountKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func writeScoreText(output *strings.Builder, result types.ScoreReport) {
	output.WriteString("=== BENCHMARK SCORE ===\n\n")
	output.WriteString(fmt.Sprintf("Category: %s\n", result.Category))
	output.WriteString(fmt.Sprintf("Similarity: %.4f\n", result.Similarity))
	output.WriteString(fmt.Sprintf("Skill Match: %.2f%%\n\n", result.SkillMatch*100))

	if len(result.MatchedSkills) > 0 {
		output.WriteString("Matched Skills:\n")
		writeList(output, result.MatchedSkills)
		output.WriteString("\n")
	}
	if len(result.MissingSkills) > 0 {
		output.WriteString("Missing Skills:\n")
		writeList(output, result.MissingSkills)
		output.WriteString("\n")
	}
	if len(result.TopTerms) > 0 {
		output.WriteString("Top Category Terms:\n")
		writeList(output, result.TopTerms)
		output.WriteString("\n")
	}
}

func writeScoreMarkdown(output *strings.Builder, result types.ScoreReport) {
	output.WriteString("# Benchmark Score\n\n")
	output.WriteString(fmt.Sprintf("**Category:** %s\n\n", result.Category))
	output.WriteString(fmt.Sprintf("**Similarity:** %.4f\n\n", result.Similarity))
	output.WriteString(fmt.Sprintf("**Skill Match:** %.2f%%\n\n", result.SkillMatch*100))

	if len(result.MatchedSkills) > 0 {
		output.WriteString("## Matched Skills\n")
		writeList(output, result.MatchedSkills)
		output.WriteString("\n")
	}
	if len(result.MissingSkills) > 0 {
		output.WriteString("## Missing Skills\n")
		writeList(output, result.MissingSkills)
		output.WriteString("\n")
	}
	if len(result.TopTerms) > 0 {
		output.WriteString("## Top Category Terms\n")
		writeList(output, result.TopTerms)
		output.WriteString("\n")
	}
}

// ScoreTextFormatter handles text formatting for benchmark scores
type ScoreTextFormatter struct{}

func (stf *ScoreTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ScoreReport)
	if !ok {
		return "", fmt.Errorf("expected ScoreReport, got %T", data)
	}

	var output strings.Builder
	writeScoreText(&output, result)
	return output.String(), nil
}

func (stf *ScoreTextFormatter) SupportedType() string {
	return "ScoreReport"
}

// ScoreMarkdownFormatter handles markdown formatting for benchmark scores
type ScoreMarkdownFormatter struct{}

func (smf *ScoreMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ScoreReport)
	if !ok {
		return "", fmt.Errorf("expected ScoreReport, got %T", data)
	}

	var output strings.Builder
	writeScoreMarkdown(&output, result)
	return output.String(), nil
}

func (smf *ScoreMarkdownFormatter) SupportedType() string {
	return "ScoreReport"
}

func writeEntitiesText(output *strings.Builder, result types.Entities) {
	output.WriteString("=== EXTRACTED ENTITIES ===\n\n")

	sections := []struct {
		title string
		items []string
	}{
		{"Skills", result.Skills},
		{"Education", result.Education},
		{"Experience", result.Experience},
		{"Organizations", result.Organizations},
		{"Dates", result.Dates},
	}
	for _, section := range sections {
		output.WriteString(section.title + ":\n")
		if len(section.items) == 0 {
			output.WriteString("  (none)\n")
		} else {
			writeList(output, section.items)
		}
		output.WriteString("\n")
	}
}

func writeEntitiesMarkdown(output *strings.Builder, result types.Entities) {
	output.WriteString("# Extracted Entities\n\n")

	sections := []struct {
		title string
		items []string
	}{
		{"Skills", result.Skills},
		{"Education", result.Education},
		{"Experience", result.Experience},
		{"Organizations", result.Organizations},
		{"Dates", result.Dates},
	}
	for _, section := range sections {
		output.WriteString("## " + section.title + "\n")
		if len(section.items) == 0 {
			output.WriteString("_none_\n")
		} else {
			writeList(output, section.items)
		}
		output.WriteString("\n")
	}
}

// EntitiesTextFormatter handles text formatting for extracted entities
type EntitiesTextFormatter struct{}

func (etf *EntitiesTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.Entities)
	if !ok {
		return "", fmt.Errorf("expected Entities, got %T", data)
	}

	var output strings.Builder
	writeEntitiesText(&output, result)
	return output.String(), nil
}

func (etf *EntitiesTextFormatter) SupportedType() string {
	return "Entities"
}

// EntitiesMarkdownFormatter handles markdown formatting for extracted entities
type EntitiesMarkdownFormatter struct{}

func (emf *EntitiesMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.Entities)
	if !ok {
		return "", fmt.Errorf("expected Entities, got %T", data)
	}

	var output strings.Builder
	writeEntitiesMarkdown(&output, result)
	return output.String(), nil
}

func (emf *EntitiesMarkdownFormatter) SupportedType() string {
	return "Entities"
}

func writeTimelineText(output *strings.Builder, result types.TimelineReport) {
	output.WriteString("=== TIMELINE ANALYSIS ===\n\n")

	if len(result.ParsedSpans) > 0 {
		output.WriteString("Parsed Spans:\n")
		for _, span := range result.ParsedSpans {
			output.WriteString(fmt.Sprintf("- %s (%s to %s)\n", span.Label, span.Start, span.End))
		}
		output.WriteString("\n")
	}

	if len(result.Gaps) > 0 {
		output.WriteString("Gaps:\n")
		for _, gap := range result.Gaps {
			output.WriteString(fmt.Sprintf("- %d months between %s\n",
				gap.GapMonths, strings.Join(gap.Between, " and ")))
		}
		output.WriteString("\n")
	}

	if len(result.Overlaps) > 0 {
		output.WriteString("Overlaps:\n")
		for _, overlap := range result.Overlaps {
			output.WriteString(fmt.Sprintf("- %d days between %s\n",
				overlap.OverlapDays, strings.Join(overlap.Between, " and ")))
		}
		output.WriteString("\n")
	}

	if len(result.Issues) > 0 {
		output.WriteString("Issues:\n")
		writeList(output, result.Issues)
		output.WriteString("\n")
	}

	if len(result.Gaps) == 0 && len(result.Overlaps) == 0 && len(result.Issues) == 0 {
		output.WriteString("No timeline issues found.\n")
	}
}

func writeTimelineMarkdown(output *strings.Builder, result types.TimelineReport) {
	output.WriteString("# Timeline Analysis\n\n")

	if len(result.ParsedSpans) > 0 {
		output.WriteString("## Parsed Spans\n")
		for _, span := range result.ParsedSpans {
			output.WriteString(fmt.Sprintf("- %s (%s to %s)\n", span.Label, span.Start, span.End))
		}
		output.WriteString("\n")
	}

	if len(result.Gaps) > 0 {
		output.WriteString("## Gaps\n")
		for _, gap := range result.Gaps {
			output.WriteString(fmt.Sprintf("- **%d months** between %s\n",
				gap.GapMonths, strings.Join(gap.Between, " and ")))
		}
		output.WriteString("\n")
	}

	if len(result.Overlaps) > 0 {
		output.WriteString("## Overlaps\n")
		for _, overlap := range result.Overlaps {
			output.WriteString(fmt.Sprintf("- **%d days** between %s\n",
				overlap.OverlapDays, strings.Join(overlap.Between, " and ")))
		}
		output.WriteString("\n")
	}

	if len(result.Issues) > 0 {
		output.WriteString("## Issues\n")
		writeList(output, result.Issues)
		output.WriteString("\n")
	}

	if len(result.Gaps) == 0 && len(result.Overlaps) == 0 && len(result.Issues) == 0 {
		output.WriteString("No timeline issues found.\n")
	}
}

// TimelineTextFormatter handles text formatting for timeline analysis
type TimelineTextFormatter struct{}

func (ttf *TimelineTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.TimelineReport)
	if !ok {
		return "", fmt.Errorf("expected TimelineReport, got %T", data)
	}

	var output strings.Builder
	writeTimelineText(&output, result)
	return output.String(), nil
}

func (ttf *TimelineTextFormatter) SupportedType() string {
	return "TimelineReport"
}

// TimelineMarkdownFormatter handles markdown formatting for timeline analysis
type TimelineMarkdownFormatter struct{}

func (tmf *TimelineMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.TimelineReport)
	if !ok {
		return "", fmt.Errorf("expected TimelineReport, got %T", data)
	}

	var output strings.Builder
	writeTimelineMarkdown(&output, result)
	return output.String(), nil
}

func (tmf *TimelineMarkdownFormatter) SupportedType() string {
	return "TimelineReport"
}

func writeAdviceText(output *strings.Builder, result types.Advice) {
	output.WriteString("=== CAREER ADVICE ===\n\n")
	output.WriteString(fmt.Sprintf("Current Role: %s\n\n", result.Role))

	if len(result.NextRoles) > 0 {
		output.WriteString("Next Roles:\n")
		writeList(output, result.NextRoles)
		output.WriteString("\n")
	}
	if len(result.Upskilling) > 0 {
		output.WriteString("Suggested Upskilling:\n")
		writeList(output, result.Upskilling)
		output.WriteString("\n")
	}
}

func writeAdviceMarkdown(output *strings.Builder, result types.Advice) {
	output.WriteString("# Career Advice\n\n")
	output.WriteString(fmt.Sprintf("**Current Role:** %s\n\n", result.Role))

	if len(result.NextRoles) > 0 {
		output.WriteString("## Next Roles\n")
		writeList(output, result.NextRoles)
		output.WriteString("\n")
	}
	if len(result.Upskilling) > 0 {
		output.WriteString("## Suggested Upskilling\n")
		writeList(output, result.Upskilling)
		output.WriteString("\n")
	}
}

// AdviceTextFormatter handles text formatting for career advice
type AdviceTextFormatter struct{}

func (atf *AdviceTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.Advice)
	if !ok {
		return "", fmt.Errorf("expected Advice, got %T", data)
	}

	var output strings.Builder
	writeAdviceText(&output, result)
	return output.String(), nil
}

func (atf *AdviceTextFormatter) SupportedType() string {
	return "Advice"
}

// AdviceMarkdownFormatter handles markdown formatting for career advice
type AdviceMarkdownFormatter struct{}

func (amf *AdviceMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.Advice)
	if !ok {
		return "", fmt.Errorf("expected Advice, got %T", data)
	}

	var output strings.Builder
	writeAdviceMarkdown(&output, result)
	return output.String(), nil
}

func (amf *AdviceMarkdownFormatter) SupportedType() string {
	return "Advice"
}

func writeReadabilityText(output *strings.Builder, result types.ReadabilityReport) {
	output.WriteString("=== READABILITY ANALYSIS ===\n\n")

	if result.ReadabilityError != "" {
		output.WriteString(fmt.Sprintf("Readability scores unavailable: %s\n\n", result.ReadabilityError))
	} else {
		output.WriteString(fmt.Sprintf("Reading Ease: %.2f\n", result.EaseScore))
		output.WriteString(fmt.Sprintf("Grade Level: %.2f\n\n", result.GradeScore))
	}

	if len(result.BuzzwordCounts) > 0 {
		output.WriteString("Buzzwords:\n")
		for _, word := range sortedCountKeys(result.BuzzwordCounts) {
			output.WriteString(fmt.Sprintf("- %s (%d)\n", word, result.BuzzwordCounts[word]))
		}
		if result.BuzzwordFlag {
			output.WriteString("Warning: heavy buzzword use detected\n")
		}
		output.WriteString("\n")
	}

	if len(result.PassiveSentences) > 0 {
		output.WriteString("Passive Voice:\n")
		for _, passive := range result.PassiveSentences {
			output.WriteString(fmt.Sprintf("- %q in %q\n", passive.Match, passive.Excerpt))
		}
		output.WriteString("\n")
	}

	output.WriteString("Sections Present:\n")
	if len(result.SectionsPresent) == 0 {
		output.WriteString("  (none)\n")
	} else {
		writeList(output, result.SectionsPresent)
	}
	output.WriteString("\nSections Missing:\n")
	if len(result.SectionsMissing) == 0 {
		output.WriteString("  (none)\n")
	} else {
		writeList(output, result.SectionsMissing)
	}
	output.WriteString("\n")

	if len(result.KeywordCounts) > 0 {
		output.WriteString("Keyword Coverage:\n")
		for _, keyword := range sortedCountKeys(result.KeywordCounts) {
			output.WriteString(fmt.Sprintf("- %s (%d)\n", keyword, result.KeywordCounts[keyword]))
		}
		output.WriteString("\n")
	}
	if len(result.MissingKeywords) > 0 {
		output.WriteString("Missing Keywords:\n")
		writeList(output, result.MissingKeywords)
		output.WriteString("\n")
	}
}

func writeReadabilityMarkdown(output *strings.Builder, result types.ReadabilityReport) {
	output.WriteString("# Readability Analysis\n\n")

	if result.ReadabilityError != "" {
		output.WriteString(fmt.Sprintf("_Readability scores unavailable: %s_\n\n", result.ReadabilityError))
	} else {
		output.WriteString(fmt.Sprintf("**Reading Ease:** %.2f\n\n", result.EaseScore))
		output.WriteString(fmt.Sprintf("**Grade Level:** %.2f\n\n", result.GradeScore))
	}

	if len(result.BuzzwordCounts) > 0 {
		output.WriteString("## Buzzwords\n")
		for _, word := range sortedCountKeys(result.BuzzwordCounts) {
			output.WriteString(fmt.Sprintf("- %s (%d)\n", word, result.BuzzwordCounts[word]))
		}
		if result.BuzzwordFlag {
			output.WriteString("\n**Warning:** heavy buzzword use detected\n")
		}
		output.WriteString("\n")
	}

	if len(result.PassiveSentences) > 0 {
		output.WriteString("## Passive Voice\n")
		for _, passive := range result.PassiveSentences {
			output.WriteString(fmt.Sprintf("- %q in %q\n", passive.Match, passive.Excerpt))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Sections Present\n")
	if len(result.SectionsPresent) == 0 {
		output.WriteString("_none_\n")
	} else {
		writeList(output, result.SectionsPresent)
	}
	output.WriteString("\n## Sections Missing\n")
	if len(result.SectionsMissing) == 0 {
		output.WriteString("_none_\n")
	} else {
		writeList(output, result.SectionsMissing)
	}
	output.WriteString("\n")

	if len(result.KeywordCounts) > 0 {
		output.WriteString("## Keyword Coverage\n")
		for _, keyword := range sortedCountKeys(result.KeywordCounts) {
			output.WriteString(fmt.Sprintf("- %s (%d)\n", keyword, result.KeywordCounts[keyword]))
		}
		output.WriteString("\n")
	}
	if len(result.MissingKeywords) > 0 {
		output.WriteString("## Missing Keywords\n")
		writeList(output, result.MissingKeywords)
		output.WriteString("\n")
	}
}

// ReadabilityTextFormatter handles text formatting for readability analysis
type ReadabilityTextFormatter struct{}

func (rtf *ReadabilityTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ReadabilityReport)
	if !ok {
		return "", fmt.Errorf("expected ReadabilityReport, got %T", data)
	}

	var output strings.Builder
	writeReadabilityText(&output, result)
	return output.String(), nil
}

func (rtf *ReadabilityTextFormatter) SupportedType() string {
	return "ReadabilityReport"
}

// ReadabilityMarkdownFormatter handles markdown formatting for readability analysis
type ReadabilityMarkdownFormatter struct{}

func (rmf *ReadabilityMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ReadabilityReport)
	if !ok {
		return "", fmt.Errorf("expected ReadabilityReport, got %T", data)
	}

	var output strings.Builder
	writeReadabilityMarkdown(&output, result)
	return output.String(), nil
}

func (rmf *ReadabilityMarkdownFormatter) SupportedType() string {
	return "ReadabilityReport"
}

// DiagnosticTextFormatter handles text formatting for full diagnostic reports
type DiagnosticTextFormatter struct{}

func (dtf *DiagnosticTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.DiagnosticReport)
	if !ok {
		return "", fmt.Errorf("expected DiagnosticReport, got %T", data)
	}

	var output strings.Builder
	writeScoreText(&output, result.Score)
	writeEntitiesText(&output, result.Entities)
	writeTimelineText(&output, result.Timeline)
	output.WriteString("\n")
	writeAdviceText(&output, result.Advice)
	writeReadabilityText(&output, result.Readability)
	return output.String(), nil
}

func (dtf *DiagnosticTextFormatter) SupportedType() string {
	return "DiagnosticReport"
}

// DiagnosticMarkdownFormatter handles markdown formatting for full diagnostic reports
type DiagnosticMarkdownFormatter struct{}

func (dmf *DiagnosticMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.DiagnosticReport)
	if !ok {
		return "", fmt.Errorf("expected DiagnosticReport, got %T", data)
	}

	var output strings.Builder
	writeScoreMarkdown(&output, result.Score)
	writeEntitiesMarkdown(&output, result.Entities)
	writeTimelineMarkdown(&output, result.Timeline)
	output.WriteString("\n")
	writeAdviceMarkdown(&output, result.Advice)
	writeReadabilityMarkdown(&output, result.Readability)
	return output.String(), nil
}

func (dmf *DiagnosticMarkdownFormatter) SupportedType() string {
	return "DiagnosticReport"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
