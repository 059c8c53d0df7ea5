package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"alfredoptarigan/ats-analyzer/internal/models"
)

// PresenceChecker decides, per keyword, whether it appears in a body of text:
// exact substring first, then token overlap, then embedding similarity against
// text chunks.
type PresenceChecker interface {
	CheckPresence(ctx context.Context, keywords []string, text string, simThreshold float64) (models.PresenceResult, error)
}

// DefaultSimThreshold is the semantic-tier cosine cutoff.
const DefaultSimThreshold = 0.6

const snippetLen = 200

// genericKeywordTokens add no matching signal on their own; they are excluded
// from the token tier unless the keyword consists of nothing else.
var genericKeywordTokens = map[string]bool{
	"development": true, "skills": true, "experience": true,
	"role": true, "model": true, "concepts": true,
}

var keywordTokenRe = regexp.MustCompile(`[^a-z0-9_]+`)

type presenceChecker struct {
	gemini GeminiService
}

func NewPresenceChecker(gemini GeminiService) PresenceChecker {
	return &presenceChecker{gemini: gemini}
}

func emptyPresence(keywords []string) models.PresenceResult {
	return models.PresenceResult{
		Score:        0,
		MatchedCount: 0,
		Total:        len(keywords),
		Matched:      []string{},
		Unmatched:    append([]string{}, keywords...),
		Details:      []models.MatchDetail{},
	}
}

// CheckPresence implements PresenceChecker. Keywords are tested in input
// order; the first successful tier wins. Chunk embeddings are computed at most
// once per call, on first use of the semantic tier, and reused for every
// keyword. A provider fault surfaces as an error; degenerate input never does.
func (p *presenceChecker) CheckPresence(ctx context.Context, keywords []string, text string, simThreshold float64) (models.PresenceResult, error) {
	resumeClean := NormalizeLower(text)
	if len(keywords) == 0 || resumeClean == "" {
		return emptyPresence(keywords), nil
	}

	chunks := ChunkText(text, DefaultChunkLen)
	if len(chunks) == 0 {
		return emptyPresence(keywords), nil
	}

	var chunkVecs [][]float32
	embedChunks := func() error {
		if chunkVecs != nil {
			return nil
		}
		vecs, err := p.gemini.EmbedTexts(ctx, chunks)
		if err != nil {
			return fmt.Errorf("failed to embed text chunks: %w", err)
		}
		chunkVecs = vecs
		return nil
	}

	result := models.PresenceResult{
		Total:     len(keywords),
		Matched:   []string{},
		Unmatched: []string{},
		Details:   []models.MatchDetail{},
	}

	for _, kw := range keywords {
		kwLower := strings.TrimSpace(strings.ToLower(kw))
		if kwLower == "" {
			result.Unmatched = append(result.Unmatched, kw)
			continue
		}

		// Tier 1: exact substring.
		if strings.Contains(resumeClean, kwLower) {
			result.Matched = append(result.Matched, kw)
			result.Details = append(result.Details, models.MatchDetail{
				Keyword: kw, MatchType: models.MatchExact, Similarity: 1.0, Snippet: "substring",
			})
			continue
		}

		// Tier 2: any important token is a substring.
		tokens := splitKeywordTokens(kwLower)
		important := importantTokens(tokens)
		if anyTokenPresent(important, resumeClean) {
			result.Matched = append(result.Matched, kw)
			result.Details = append(result.Details, models.MatchDetail{
				Keyword: kw, MatchType: models.MatchToken, Similarity: 1.0, Snippet: "token match",
			})
			continue
		}

		// Tier 3: best chunk cosine similarity.
		if err := embedChunks(); err != nil {
			return models.PresenceResult{}, err
		}
		kwVec, err := p.gemini.EmbedText(ctx, kwLower)
		if err != nil {
			return models.PresenceResult{}, fmt.Errorf("failed to embed keyword %q: %w", kw, err)
		}

		bestIdx, bestSim := 0, -1.0
		for i, cv := range chunkVecs {
			if sim := cosineSimilarity(kwVec, cv); sim > bestSim {
				bestSim = sim
				bestIdx = i
			}
		}

		// Short phrases get a lenient threshold, floored at 0.5.
		thresh := simThreshold
		if len(tokens) <= 2 {
			thresh = simThreshold - 0.05
			if thresh < 0.5 {
				thresh = 0.5
			}
		}

		if bestSim >= thresh {
			snippet := chunks[bestIdx]
			if r := []rune(snippet); len(r) > snippetLen {
				snippet = string(r[:snippetLen])
			}
			result.Matched = append(result.Matched, kw)
			result.Details = append(result.Details, models.MatchDetail{
				Keyword: kw, MatchType: models.MatchSemantic, Similarity: round3(bestSim), Snippet: snippet,
			})
		} else {
			result.Unmatched = append(result.Unmatched, kw)
		}
	}

	result.MatchedCount = len(result.Matched)
	if result.Total > 0 {
		result.Score = round2(float64(result.MatchedCount) / float64(result.Total) * 100)
	}
	return result, nil
}

func splitKeywordTokens(kw string) []string {
	var tokens []string
	for _, t := range keywordTokenRe.Split(kw, -1) {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func importantTokens(tokens []string) []string {
	var important []string
	for _, t := range tokens {
		if !genericKeywordTokens[t] {
			important = append(important, t)
		}
	}
	if len(important) == 0 {
		return tokens
	}
	return important
}

func anyTokenPresent(tokens []string, text string) bool {
	for _, t := range tokens {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
