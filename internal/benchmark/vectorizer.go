// Package benchmark implements the vector-space model behind resume
// scoring: a TF-IDF vectorizer fit once over the labeled corpus,
// per-category mean profiles, and cosine-similarity scoring against
// those profiles.
package benchmark

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"resumebench/internal/errors"
)

// DefaultMaxFeatures caps the fitted vocabulary size.
const DefaultMaxFeatures = 2000

// Vectorizer is an immutable TF-IDF model fit once from the corpus.
// Transform never mutates the model, so a fitted Vectorizer is safe
// for concurrent use.
type Vectorizer struct {
	vocabulary map[string]int // term -> vector index
	terms      []string       // vector index -> term
	idf        []float64
}

// FitVectorizer builds a TF-IDF model over the given texts. The
// vocabulary keeps at most maxFeatures terms, selected by total corpus
// frequency with lexicographic tie-breaking, then indexed in
// alphabetical order so fitting the same corpus twice yields an
// identical model.
func FitVectorizer(texts []string, maxFeatures int) (*Vectorizer, error) {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}

	totalCounts := make(map[string]int)
	docFreq := make(map[string]int)
	nonEmpty := 0

	for _, text := range texts {
		tokens := Tokenize(text)
		if len(tokens) == 0 {
			continue
		}
		nonEmpty++
		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			totalCounts[tok]++
			if !seen[tok] {
				seen[tok] = true
				docFreq[tok]++
			}
		}
	}

	if nonEmpty == 0 {
		return nil, errors.NewCorpusError(errors.ErrCodeEmptyCorpus,
			"corpus has no non-empty texts to fit a vocabulary from", nil)
	}

	selected := make([]string, 0, len(totalCounts))
	for term := range totalCounts {
		selected = append(selected, term)
	}
	if len(selected) > maxFeatures {
		sort.Slice(selected, func(i, j int) bool {
			if totalCounts[selected[i]] != totalCounts[selected[j]] {
				return totalCounts[selected[i]] > totalCounts[selected[j]]
			}
			return selected[i] < selected[j]
		})
		selected = selected[:maxFeatures]
	}
	sort.Strings(selected)

	v := &Vectorizer{
		vocabulary: make(map[string]int, len(selected)),
		terms:      selected,
		idf:        make([]float64, len(selected)),
	}

	n := float64(len(texts))
	for i, term := range selected {
		v.vocabulary[term] = i
		// Smoothed IDF keeps weights finite for terms present in every
		// document.
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	return v, nil
}

// Transform maps a text to its L2-normalized sparse TF-IDF vector over
// the fitted vocabulary. Terms outside the vocabulary are dropped. An
// empty or fully out-of-vocabulary text yields an empty vector.
func (v *Vectorizer) Transform(text string) map[int]float64 {
	vec := make(map[int]float64)
	for _, tok := range Tokenize(text) {
		if idx, ok := v.vocabulary[tok]; ok {
			vec[idx]++
		}
	}

	var sumSq float64
	for idx, tf := range vec {
		w := tf * v.idf[idx]
		vec[idx] = w
		sumSq += w * w
	}
	if sumSq > 0 {
		norm := math.Sqrt(sumSq)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// Size returns the number of terms in the fitted vocabulary.
func (v *Vectorizer) Size() int {
	return len(v.terms)
}

// Term returns the term at a vector index.
func (v *Vectorizer) Term(idx int) string {
	return v.terms[idx]
}

// Tokenize lowercases text and splits it into alphanumeric tokens of
// at least two characters, the same word-boundary scheme the model is
// fit with.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	var tokens []string
	start := -1
	for i, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			appendToken(&tokens, lower[start:i])
			start = -1
		}
	}
	if start >= 0 {
		appendToken(&tokens, lower[start:])
	}
	return tokens
}

func appendToken(tokens *[]string, tok string) {
	// Single-character tokens and stop words carry no signal.
	if len([]rune(tok)) < 2 {
		return
	}
	if stopWords[tok] {
		return
	}
	*tokens = append(*tokens, tok)
}
