package benchmark

import "strings"

// MatchCuratedSkills counts curated skill terms appearing in the
// resume text. Matching is case-insensitive substring containment, so
// broader terms match their extensions ("java" also matches
// "javascript"); the ratio is matched over total, 0 for an empty list.
func MatchCuratedSkills(text string, curated []string) (float64, []string) {
	if len(curated) == 0 {
		return 0, nil
	}

	lower := strings.ToLower(text)
	var matched []string
	for _, skill := range curated {
		term := strings.ToLower(strings.TrimSpace(skill))
		if term == "" {
			continue
		}
		if strings.Contains(lower, term) {
			matched = append(matched, term)
		}
	}
	return float64(len(matched)) / float64(len(curated)), matched
}
