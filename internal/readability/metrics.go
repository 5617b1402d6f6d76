package readability

import (
	"strings"
	"unicode"

	"resumebench/internal/errors"
)

// Scores holds the two standard readability measures: Flesch reading
// ease and Flesch-Kincaid grade level.
type Scores struct {
	Ease  float64
	Grade float64
}

// ComputeScores calculates readability scores from word, sentence and
// syllable counts. Text without countable words or sentences cannot be
// scored and returns an error for the caller to absorb.
func ComputeScores(text string) (Scores, error) {
	words := splitWords(text)
	if len(words) == 0 {
		return Scores{}, errors.NewValidationError(errors.ErrCodeReadabilityFailed,
			"text contains no words", nil)
	}

	sentences := countSentences(text)
	if sentences == 0 {
		return Scores{}, errors.NewValidationError(errors.ErrCodeReadabilityFailed,
			"text contains no sentences", nil)
	}

	var syllables int
	for _, word := range words {
		syllables += countSyllables(word)
	}

	wordCount := float64(len(words))
	sentenceCount := float64(sentences)
	syllableCount := float64(syllables)

	return Scores{
		Ease:  206.835 - 1.015*(wordCount/sentenceCount) - 84.6*(syllableCount/wordCount),
		Grade: 0.39*(wordCount/sentenceCount) + 11.8*(syllableCount/wordCount) - 15.59,
	}, nil
}

func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// countSentences counts terminator runs with content before them. Text
// with words but no terminators counts as one sentence.
func countSentences(text string) int {
	count := 0
	content := false
	for _, r := range text {
		switch {
		case r == '.' || r == '!' || r == '?':
			if content {
				count++
				content = false
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			content = true
		}
	}
	if content {
		count++
	}
	return count
}

// countSyllables approximates syllables as runs of consecutive vowels,
// with a floor of one per word.
func countSyllables(word string) int {
	count := 0
	prevVowel := false
	for _, r := range strings.ToLower(word) {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if count == 0 {
		count = 1
	}
	return count
}
