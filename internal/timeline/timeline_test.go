package timeline

import (
	"testing"
	"time"
)

func TestAnalyzeGap(t *testing.T) {
	report := Analyze([]string{"Jan 2018 - Jun 2019", "Jan 2020 - Mar 2021"}, 0)

	if len(report.ParsedSpans) != 2 {
		t.Fatalf("Expected 2 parsed spans, got %d", len(report.ParsedSpans))
	}
	if len(report.Gaps) != 1 {
		t.Fatalf("Expected 1 gap, got %d", len(report.Gaps))
	}
	if report.Gaps[0].GapMonths != 7 {
		t.Errorf("Expected gap of 7 months, got %d", report.Gaps[0].GapMonths)
	}
	if len(report.Overlaps) != 0 {
		t.Errorf("Expected no overlaps, got %v", report.Overlaps)
	}
	if len(report.Issues) != 1 {
		t.Errorf("Expected 1 issue, got %v", report.Issues)
	}
}

func TestAnalyzeOverlap(t *testing.T) {
	report := Analyze([]string{"Jan 2019 - Dec 2020", "Jun 2020 - Dec 2021"}, 0)

	if len(report.Overlaps) != 1 {
		t.Fatalf("Expected 1 overlap, got %d", len(report.Overlaps))
	}
	if report.Overlaps[0].OverlapDays != 183 {
		t.Errorf("Expected overlap of 183 days, got %d", report.Overlaps[0].OverlapDays)
	}
	if len(report.Gaps) != 0 {
		t.Errorf("Expected no gaps, got %v", report.Gaps)
	}
}

func TestAnalyzeUnparsableDropped(t *testing.T) {
	t.Run("all unparsable", func(t *testing.T) {
		report := Analyze([]string{"not a date", "whenever - forever"}, 0)
		if len(report.ParsedSpans) != 0 || len(report.Gaps) != 0 || len(report.Overlaps) != 0 || len(report.Issues) != 0 {
			t.Errorf("Expected empty report, got %+v", report)
		}
	})

	t.Run("mixed input keeps parsable entries", func(t *testing.T) {
		report := Analyze([]string{"garbage", "Jan 2020 - Mar 2021"}, 0)
		if len(report.ParsedSpans) != 1 {
			t.Fatalf("Expected 1 parsed span, got %d", len(report.ParsedSpans))
		}
		if report.ParsedSpans[0].Label != "Jan 2020 - Mar 2021" {
			t.Errorf("Unexpected label: %q", report.ParsedSpans[0].Label)
		}
	})
}

func TestAnalyzeSingleAndEmpty(t *testing.T) {
	t.Run("single date", func(t *testing.T) {
		report := Analyze([]string{"Mar 2021"}, 0)
		if len(report.ParsedSpans) != 1 {
			t.Fatalf("Expected 1 parsed span, got %d", len(report.ParsedSpans))
		}
		span := report.ParsedSpans[0]
		if span.Start != "2021-03-01" || span.End != "2021-03-01" {
			t.Errorf("Expected single date span, got %+v", span)
		}
		if len(report.Gaps) != 0 || len(report.Overlaps) != 0 {
			t.Error("Expected no findings for a single span")
		}
	})

	t.Run("no input", func(t *testing.T) {
		report := Analyze(nil, 0)
		if len(report.ParsedSpans) != 0 || len(report.Issues) != 0 {
			t.Errorf("Expected empty report, got %+v", report)
		}
	})
}

func TestAnalyzeSortsByStart(t *testing.T) {
	report := Analyze([]string{"Jan 2022 - Jun 2022", "Jan 2018 - Jun 2019"}, 0)
	if len(report.ParsedSpans) != 2 {
		t.Fatalf("Expected 2 spans, got %d", len(report.ParsedSpans))
	}
	if report.ParsedSpans[0].Start != "2018-01-01" {
		t.Errorf("Expected earliest span first, got %+v", report.ParsedSpans[0])
	}
	// 12*(2022-2019) + (1-6) = 31 months.
	if len(report.Gaps) != 1 || report.Gaps[0].GapMonths != 31 {
		t.Errorf("Expected 31-month gap, got %+v", report.Gaps)
	}
}

func TestAnalyzeThreshold(t *testing.T) {
	dates := []string{"Jan 2020 - Mar 2020", "Aug 2020 - Dec 2020"}

	t.Run("below default threshold", func(t *testing.T) {
		// 5-month gap, default threshold 6.
		report := Analyze(dates, 0)
		if len(report.Gaps) != 0 {
			t.Errorf("Expected no gap at default threshold, got %v", report.Gaps)
		}
	})

	t.Run("custom threshold", func(t *testing.T) {
		report := Analyze(dates, 3)
		if len(report.Gaps) != 1 || report.Gaps[0].GapMonths != 5 {
			t.Errorf("Expected 5-month gap at threshold 3, got %v", report.Gaps)
		}
	})
}

func TestAnalyzeOpenEndedRange(t *testing.T) {
	restore := now
	now = func() time.Time { return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC) }
	defer func() { now = restore }()

	t.Run("present resolves to analysis time", func(t *testing.T) {
		report := Analyze([]string{"2019 - present"}, 6)
		if len(report.ParsedSpans) != 1 {
			t.Fatalf("Expected 1 parsed span, got %d", len(report.ParsedSpans))
		}
		if report.ParsedSpans[0].End != "2024-06-15" {
			t.Errorf("Expected end 2024-06-15, got %q", report.ParsedSpans[0].End)
		}
	})

	t.Run("gap before a current job is flagged", func(t *testing.T) {
		report := Analyze([]string{"Jan 2019 - Mar 2020", "Jun 2021 - present"}, 6)
		if len(report.ParsedSpans) != 2 {
			t.Fatalf("Expected 2 parsed spans, got %d", len(report.ParsedSpans))
		}
		if len(report.Gaps) != 1 {
			t.Fatalf("Expected 1 gap, got %d", len(report.Gaps))
		}
		if report.Gaps[0].GapMonths != 15 {
			t.Errorf("Expected gap of 15 months, got %d", report.Gaps[0].GapMonths)
		}
	})

	t.Run("current job overlaps a later range", func(t *testing.T) {
		report := Analyze([]string{"Jan 2020 - Current", "Jan 2023 - Dec 2023"}, 0)
		if len(report.Overlaps) != 1 {
			t.Fatalf("Expected 1 overlap, got %d", len(report.Overlaps))
		}
		if len(report.Gaps) != 0 {
			t.Errorf("Expected no gaps, got %v", report.Gaps)
		}
	})
}
