// Package timeline detects chronological inconsistencies in a resume's
// work history: employment gaps above a configurable threshold and
// overlapping date ranges.
package timeline

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"resumebench/internal/types"
)

// span is one parsed date or date range, local to a single analysis.
type span struct {
	label string
	start time.Time
	end   time.Time
}

var rangeSeparator = regexp.MustCompile(`\s+[-–]\s+|\s+to\s+`)

// now is a hook for tests that need a fixed analysis time.
var now = time.Now

// openEndedTokens are range endpoints that mean "still employed".
// They resolve to the analysis time.
var openEndedTokens = map[string]bool{
	"present": true,
	"current": true,
	"now":     true,
	"ongoing": true,
	"today":   true,
}

// Explicit layouts are tried before the permissive fallback so common
// resume date shapes parse the same way on every run.
var dateLayouts = []string{
	"Jan 2006",
	"January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"01/2006",
	"2006-01-02",
	"2006-01",
	"2006",
}

// Analyze parses the given date strings, sorts the surviving spans by
// start date and walks consecutive pairs looking for gaps longer than
// gapThresholdMonths and for overlaps. Open-ended endpoints such as
// "present" resolve to the analysis time. Unparsable entries are dropped
// silently; they are noise from extraction, not errors. A non-positive
// threshold selects the configured default of 6 months.
func Analyze(dateStrings []string, gapThresholdMonths int) types.TimelineReport {
	if gapThresholdMonths <= 0 {
		gapThresholdMonths = 6
	}

	spans := parseSpans(dateStrings)
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].start.Before(spans[j].start)
	})

	report := types.TimelineReport{
		ParsedSpans: make([]types.DateSpan, len(spans)),
		Gaps:        []types.TimelineGap{},
		Overlaps:    []types.TimelineOverlap{},
		Issues:      []string{},
	}
	for i, s := range spans {
		report.ParsedSpans[i] = types.DateSpan{
			Label: s.label,
			Start: s.start.Format("2006-01-02"),
			End:   s.end.Format("2006-01-02"),
		}
	}

	for i := 1; i < len(spans); i++ {
		prev, curr := spans[i-1], spans[i]

		gapMonths := 12*(curr.start.Year()-prev.end.Year()) +
			int(curr.start.Month()) - int(prev.end.Month())
		if gapMonths > gapThresholdMonths {
			report.Gaps = append(report.Gaps, types.TimelineGap{
				Between:   []string{prev.label, curr.label},
				GapMonths: gapMonths,
			})
			report.Issues = append(report.Issues, fmt.Sprintf(
				"gap of %d months between %q and %q", gapMonths, prev.label, curr.label))
		}

		if curr.start.Before(prev.end) {
			overlapDays := int(prev.end.Sub(curr.start).Hours() / 24)
			report.Overlaps = append(report.Overlaps, types.TimelineOverlap{
				Between:     []string{prev.label, curr.label},
				OverlapDays: overlapDays,
			})
			report.Issues = append(report.Issues, fmt.Sprintf(
				"overlap of %d days between %q and %q", overlapDays, prev.label, curr.label))
		}
	}

	return report
}

func parseSpans(dateStrings []string) []span {
	var spans []span
	for _, raw := range dateStrings {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		if parts := rangeSeparator.Split(trimmed, 2); len(parts) == 2 {
			start, okStart := parseDate(parts[0])
			end, okEnd := parseDate(parts[1])
			if okStart && okEnd {
				spans = append(spans, span{label: raw, start: start, end: end})
			}
			continue
		}

		if date, ok := parseDate(trimmed); ok {
			spans = append(spans, span{label: raw, start: date, end: date})
		}
	}
	return spans
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if openEndedTokens[strings.ToLower(s)] {
		return now(), true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	if t, err := dateparse.ParseStrict(s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
