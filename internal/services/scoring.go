package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRe     = regexp.MustCompile(`[\w.-]+@[\w.-]+`)
	phoneRunRe  = regexp.MustCompile(`\d{10}`)
	phoneCodeRe = regexp.MustCompile(`\+\d{1,3}`)
	bulletRe    = regexp.MustCompile(`(?m)^\s*[\x{2022}\x{2023}\x{25E6}\x{2043}\x{2219}\-*]`)
)

var sectionKeywords = []string{"education", "experience", "skills", "projects"}

var strongVerbs = map[string]bool{
	"analyzed": true, "built": true, "created": true, "designed": true,
	"developed": true, "led": true, "managed": true, "optimized": true,
}

type scorer struct {
	gemini GeminiService
}

// calculateSemanticScore computes whole-document embedding cosine similarity
// between resume and JD, scaled and clamped to [0,100]. Empty input yields 0;
// only a provider fault yields an error.
func (s *scorer) calculateSemanticScore(ctx context.Context, resumeText, jdText string) (float64, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jdText) == "" {
		return 0, nil
	}

	vecs, err := s.gemini.EmbedTexts(ctx, []string{resumeText, jdText})
	if err != nil {
		return 0, fmt.Errorf("failed to embed documents: %w", err)
	}

	score := cosineSimilarity(vecs[0], vecs[1]) * 100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return round2(score), nil
}

// CalculateFormatScore scores resume formatting heuristics: contact info,
// section headers, bullet glyphs, and word count. Additive, capped at 100.
func CalculateFormatScore(resumeText string) float64 {
	score := 0.0
	text := strings.ToLower(resumeText)

	if emailRe.MatchString(text) {
		score += 10
	}
	if phoneRunRe.MatchString(text) || phoneCodeRe.MatchString(text) {
		score += 10
	}
	for _, section := range sectionKeywords {
		if strings.Contains(text, section) {
			score += 10
		}
	}
	// Bullet detection runs on the raw text: lowercasing keeps glyphs intact
	// but the line structure matters here.
	if bulletRe.MatchString(resumeText) {
		score += 20
	}

	wc := len(strings.Fields(text))
	switch {
	case wc >= 300 && wc <= 1200:
		score += 20
	case wc > 1200:
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// CalculateExperienceScore scores experience signals: section keywords plus
// action-verb density. Additive, capped at 100.
func CalculateExperienceScore(resumeText string) float64 {
	score := 0.0
	text := strings.ToLower(resumeText)

	if strings.Contains(text, "internships") || strings.Contains(text, "experience") {
		score += 30
	}
	if strings.Contains(text, "project") {
		score += 20
	}

	verbCount := 0
	for _, w := range strings.Fields(text) {
		if strongVerbs[w] {
			verbCount++
		}
	}
	verbBonus := float64(verbCount * 2)
	if verbBonus > 50 {
		verbBonus = 50
	}
	score += verbBonus

	if score > 100 {
		score = 100
	}
	return score
}
