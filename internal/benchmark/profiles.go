package benchmark

import (
	"math"
	"sort"

	"resumebench/internal/types"
)

// BuildProfiles computes one dense profile vector per distinct
// category: the elementwise mean of the TF-IDF vectors of every resume
// in that category. Categories appear in the result only if the corpus
// contains at least one record for them.
func BuildProfiles(v *Vectorizer, records []types.Record) map[string][]float64 {
	sums := make(map[string][]float64)
	counts := make(map[string]int)

	for _, rec := range records {
		sum, ok := sums[rec.Category]
		if !ok {
			sum = make([]float64, v.Size())
			sums[rec.Category] = sum
		}
		counts[rec.Category]++
		for idx, w := range v.Transform(rec.Text) {
			sum[idx] += w
		}
	}

	for category, sum := range sums {
		n := float64(counts[category])
		for i := range sum {
			sum[i] /= n
		}
	}
	return sums
}

// CosineSparse computes cosine similarity between a sparse document
// vector and a dense profile vector. Either side having zero magnitude
// yields 0.
func CosineSparse(doc map[int]float64, profile []float64) float64 {
	var dot, docSq float64
	for idx, w := range doc {
		if idx < len(profile) {
			dot += w * profile[idx]
		}
		docSq += w * w
	}

	var profSq float64
	for _, w := range profile {
		profSq += w * w
	}

	if docSq == 0 || profSq == 0 {
		return 0
	}
	return dot / (math.Sqrt(docSq) * math.Sqrt(profSq))
}

// TopTerms returns the n highest-weighted vocabulary terms of a
// profile, heaviest first, ties broken lexicographically.
func TopTerms(v *Vectorizer, profile []float64, n int) []string {
	type weighted struct {
		term   string
		weight float64
	}

	var entries []weighted
	for idx, w := range profile {
		if w > 0 {
			entries = append(entries, weighted{term: v.Term(idx), weight: w})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].weight != entries[j].weight {
			return entries[i].weight > entries[j].weight
		}
		return entries[i].term < entries[j].term
	})

	if n > len(entries) {
		n = len(entries)
	}
	terms := make([]string, n)
	for i := 0; i < n; i++ {
		terms[i] = entries[i].term
	}
	return terms
}
