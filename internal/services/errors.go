package services

import (
	"errors"
	"fmt"
	"math"
)

// ErrScoringUnavailable marks a genuine infrastructure fault in the embedding
// provider, as opposed to a neutral zero score from degenerate input. Callers
// can test for it with errors.Is.
var ErrScoringUnavailable = errors.New("scoring unavailable")

func scoringUnavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrScoringUnavailable, err)
}

// cosineSimilarity returns the cosine of the angle between two vectors, or 0
// when either vector is empty or zero.
func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
