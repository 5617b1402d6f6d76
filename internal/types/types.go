// Package types defines the shared data structures exchanged between the
// benchmarking engine, the diagnostic analyzers, the HTTP API and the CLI.
package types

// Record is a single labeled resume from the benchmark corpus.
type Record struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// ScoreResult holds the outcome of benchmarking one resume against a
// category profile.
type ScoreResult struct {
	Similarity    float64  `json:"similarity"`
	SkillMatch    float64  `json:"skillMatch"`
	MatchedSkills []string `json:"matchedSkills"`
}

// ScoreReport extends ScoreResult with the category context a client
// needs to act on the score.
type ScoreReport struct {
	Category      string   `json:"category"`
	Similarity    float64  `json:"similarity"`
	SkillMatch    float64  `json:"skillMatch"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	TopTerms      []string `json:"topTerms,omitempty"`
}

// Entities holds the structured items extracted from raw resume text.
type Entities struct {
	Skills        []string `json:"skills"`
	Education     []string `json:"education"`
	Experience    []string `json:"experience"`
	Organizations []string `json:"organizations"`
	Dates         []string `json:"dates"`
}

// DateSpan is one successfully parsed date or date range from a resume,
// rendered back out in a normalized form.
type DateSpan struct {
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimelineGap marks an employment gap between two consecutive spans.
type TimelineGap struct {
	Between   []string `json:"between"`
	GapMonths int      `json:"gapMonths"`
}

// TimelineOverlap marks two consecutive spans that overlap in time.
type TimelineOverlap struct {
	Between     []string `json:"between"`
	OverlapDays int      `json:"overlapDays"`
}

// TimelineReport is the full gap and overlap analysis of a set of
// resume date strings.
type TimelineReport struct {
	ParsedSpans []DateSpan        `json:"parsedSpans"`
	Gaps        []TimelineGap     `json:"gaps"`
	Overlaps    []TimelineOverlap `json:"overlaps"`
	Issues      []string          `json:"issues"`
}

// Advice is the career-path suggestion for a scored resume.
type Advice struct {
	Role       string   `json:"role"`
	NextRoles  []string `json:"nextRoles"`
	Upskilling []string `json:"upskilling"`
}

// PassiveSentence is one detected passive-voice construction with a
// short excerpt for display.
type PassiveSentence struct {
	Match   string `json:"match"`
	Excerpt string `json:"excerpt"`
}

// ReadabilityReport carries the writing-quality diagnostics for a resume.
type ReadabilityReport struct {
	EaseScore        float64           `json:"easeScore"`
	GradeScore       float64           `json:"gradeScore"`
	ReadabilityError string            `json:"readabilityError,omitempty"`
	BuzzwordCounts   map[string]int    `json:"buzzwordCounts"`
	BuzzwordFlag     bool              `json:"buzzwordFlag"`
	PassiveSentences []PassiveSentence `json:"passiveSentences"`
	SectionsPresent  []string          `json:"sectionsPresent"`
	SectionsMissing  []string          `json:"sectionsMissing"`
	KeywordCounts    map[string]int    `json:"keywordCounts"`
	MissingKeywords  []string          `json:"missingKeywords"`
}

// DiagnosticReport bundles every analysis for a single resume into one
// response.
type DiagnosticReport struct {
	Score       ScoreReport       `json:"score"`
	Entities    Entities          `json:"entities"`
	Timeline    TimelineReport    `json:"timeline"`
	Advice      Advice            `json:"advice"`
	Readability ReadabilityReport `json:"readability"`
}

// CategoryInfo describes one benchmark category exposed by the API.
type CategoryInfo struct {
	Name          string   `json:"name"`
	ResumeCount   int      `json:"resumeCount"`
	CuratedSkills []string `json:"curatedSkills"`
}
