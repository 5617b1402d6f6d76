// Package readability computes writing-quality diagnostics for resume
// text: Flesch readability scores, buzzword overuse, passive-voice
// constructions, expected section headers and curated keyword coverage.
package readability

import (
	"regexp"
	"strings"

	"resumebench/internal/knowledge"
	"resumebench/internal/types"
)

// maxPassiveExamples caps how many passive-voice findings a report
// carries.
const maxPassiveExamples = 3

// buzzwordFlagThreshold is the per-term count above which buzzword use
// is flagged.
const buzzwordFlagThreshold = 2

// Auxiliary verb followed by a past-participle-shaped word. A shape
// heuristic, not a parse; it has false positives ("is tired") and
// false negatives (irregular participles).
var passivePattern = regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\s+(\w+(?:ed|en))\b`)

// Analyze runs every diagnostic over the text. Readability scoring
// failures are absorbed into the report's ReadabilityError field
// rather than returned; the remaining diagnostics are still produced.
// A nil curatedSkills skips keyword coverage.
func Analyze(text string, curatedSkills []string, tables *knowledge.Tables) types.ReadabilityReport {
	report := types.ReadabilityReport{
		BuzzwordCounts:   map[string]int{},
		PassiveSentences: []types.PassiveSentence{},
		SectionsPresent:  []string{},
		SectionsMissing:  []string{},
	}

	if scores, err := ComputeScores(text); err != nil {
		report.ReadabilityError = err.Error()
	} else {
		report.EaseScore = scores.Ease
		report.GradeScore = scores.Grade
	}

	lower := strings.ToLower(text)

	for _, buzzword := range tables.Buzzwords {
		count := strings.Count(lower, strings.ToLower(buzzword))
		if count > 0 {
			report.BuzzwordCounts[buzzword] = count
		}
		if count > buzzwordFlagThreshold {
			report.BuzzwordFlag = true
		}
	}

	for _, loc := range passivePattern.FindAllStringIndex(text, -1) {
		if len(report.PassiveSentences) >= maxPassiveExamples {
			break
		}
		report.PassiveSentences = append(report.PassiveSentences, types.PassiveSentence{
			Match:   text[loc[0]:loc[1]],
			Excerpt: excerptAround(text, loc[0], loc[1]),
		})
	}

	for _, header := range tables.SectionHeaders {
		if strings.Contains(lower, strings.ToLower(header)) {
			report.SectionsPresent = append(report.SectionsPresent, header)
		} else {
			report.SectionsMissing = append(report.SectionsMissing, header)
		}
	}

	if curatedSkills != nil {
		report.KeywordCounts = make(map[string]int, len(curatedSkills))
		report.MissingKeywords = []string{}
		for _, skill := range curatedSkills {
			term := strings.ToLower(strings.TrimSpace(skill))
			if term == "" {
				continue
			}
			count := strings.Count(lower, term)
			report.KeywordCounts[term] = count
			if count == 0 {
				report.MissingKeywords = append(report.MissingKeywords, term)
			}
		}
	}

	return report
}

// excerptAround returns a short context window surrounding a match,
// clipped to rune boundaries.
func excerptAround(text string, start, end int) string {
	const margin = 40

	from := start - margin
	if from < 0 {
		from = 0
	}
	for from > 0 && !isBoundaryByte(text[from]) {
		from--
	}

	to := end + margin
	if to > len(text) {
		to = len(text)
	}
	for to < len(text) && !isBoundaryByte(text[to]) {
		to++
	}

	return strings.TrimSpace(text[from:to])
}

func isBoundaryByte(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t'
}
