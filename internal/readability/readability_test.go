package readability

import (
	"reflect"
	"strings"
	"testing"

	"resumebench/internal/knowledge"
)

func TestComputeScores(t *testing.T) {
	t.Run("simple text", func(t *testing.T) {
		scores, err := ComputeScores("The cat sat on the mat. The dog ran.")
		if err != nil {
			t.Fatalf("ComputeScores failed: %v", err)
		}
		// 9 monosyllabic words over 2 sentences:
		// ease = 206.835 - 1.015*4.5 - 84.6*1 = 117.6675
		if diff := scores.Ease - 117.6675; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Unexpected ease score: %f", scores.Ease)
		}
		if scores.Grade >= 0 {
			t.Errorf("Expected negative grade for trivial text, got %f", scores.Grade)
		}
	})

	t.Run("empty text fails", func(t *testing.T) {
		if _, err := ComputeScores(""); err == nil {
			t.Error("Expected error for empty text")
		}
		if _, err := ComputeScores("... !!!"); err == nil {
			t.Error("Expected error for text without words")
		}
	})

	t.Run("no terminator counts one sentence", func(t *testing.T) {
		if _, err := ComputeScores("just a fragment without punctuation"); err != nil {
			t.Errorf("Expected fragment to be scorable: %v", err)
		}
	})
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"beautiful", 3},
		{"rhythm", 1},
		{"engineer", 3},
		{"xyz", 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := countSyllables(tt.word); got != tt.want {
				t.Errorf("countSyllables(%q) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}

func TestAnalyzeBuzzwords(t *testing.T) {
	tables := knowledge.Defaults()

	t.Run("overuse flagged", func(t *testing.T) {
		text := "Synergy here. synergy there. More synergy and extra synergy. Experience and skills."
		report := Analyze(text, nil, tables)

		if report.BuzzwordCounts["synergy"] != 4 {
			t.Errorf("Expected synergy count 4, got %d", report.BuzzwordCounts["synergy"])
		}
		if !report.BuzzwordFlag {
			t.Error("Expected buzzword flag to be set")
		}
	})

	t.Run("moderate use not flagged", func(t *testing.T) {
		report := Analyze("A dynamic team with synergy. Experience section.", nil, tables)
		if report.BuzzwordFlag {
			t.Errorf("Expected no flag, counts: %v", report.BuzzwordCounts)
		}
		if report.BuzzwordCounts["dynamic"] != 1 {
			t.Errorf("Expected dynamic count 1, got %d", report.BuzzwordCounts["dynamic"])
		}
	})
}

func TestAnalyzePassiveVoice(t *testing.T) {
	tables := knowledge.Defaults()

	t.Run("detects and caps examples", func(t *testing.T) {
		text := "The project was completed early. Reports were generated nightly. " +
			"The system is maintained by ops. Budgets are approved quarterly."
		report := Analyze(text, nil, tables)

		if len(report.PassiveSentences) != 3 {
			t.Fatalf("Expected 3 capped examples, got %d", len(report.PassiveSentences))
		}
		if report.PassiveSentences[0].Match != "was completed" {
			t.Errorf("Unexpected first match: %q", report.PassiveSentences[0].Match)
		}
		if !strings.Contains(report.PassiveSentences[0].Excerpt, "was completed") {
			t.Errorf("Excerpt should contain the match: %q", report.PassiveSentences[0].Excerpt)
		}
	})

	t.Run("active voice clean", func(t *testing.T) {
		report := Analyze("I completed the project. I generated reports.", nil, tables)
		if len(report.PassiveSentences) != 0 {
			t.Errorf("Expected no passive findings, got %v", report.PassiveSentences)
		}
	})
}

func TestAnalyzeSections(t *testing.T) {
	tables := knowledge.Defaults()
	text := "Summary\nExperienced developer.\nExperience\nAcme Corp.\nSkills\nGo, SQL.\nEducation\nB.Sc."
	report := Analyze(text, nil, tables)

	for _, section := range []string{"summary", "experience", "education", "skills"} {
		if !contains(report.SectionsPresent, section) {
			t.Errorf("Expected %q in present sections: %v", section, report.SectionsPresent)
		}
	}
	for _, section := range []string{"projects", "certifications", "contact"} {
		if !contains(report.SectionsMissing, section) {
			t.Errorf("Expected %q in missing sections: %v", section, report.SectionsMissing)
		}
	}
}

func TestAnalyzeKeywordCoverage(t *testing.T) {
	tables := knowledge.Defaults()

	t.Run("counts and missing list", func(t *testing.T) {
		report := Analyze("Python and pandas every day. More python.", []string{"python", "spark", "pandas"}, tables)

		if report.KeywordCounts["python"] != 2 {
			t.Errorf("Expected python count 2, got %d", report.KeywordCounts["python"])
		}
		if report.KeywordCounts["spark"] != 0 {
			t.Errorf("Expected spark count 0, got %d", report.KeywordCounts["spark"])
		}
		if !reflect.DeepEqual(report.MissingKeywords, []string{"spark"}) {
			t.Errorf("Expected missing [spark], got %v", report.MissingKeywords)
		}
	})

	t.Run("nil skills skip coverage", func(t *testing.T) {
		report := Analyze("Some text here.", nil, tables)
		if report.KeywordCounts != nil {
			t.Errorf("Expected no keyword counts, got %v", report.KeywordCounts)
		}
	})
}

func TestAnalyzeUnscorableText(t *testing.T) {
	tables := knowledge.Defaults()
	report := Analyze("!!! ???", nil, tables)

	if report.ReadabilityError == "" {
		t.Error("Expected readability error for unscorable text")
	}
	if report.EaseScore != 0 || report.GradeScore != 0 {
		t.Errorf("Expected zero scores, got %f / %f", report.EaseScore, report.GradeScore)
	}
	// Other diagnostics still run.
	if len(report.SectionsMissing) == 0 {
		t.Error("Expected section analysis to run despite scoring failure")
	}
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
