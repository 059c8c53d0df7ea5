package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"alfredoptarigan/ats-analyzer/internal/models"
)

// ATSService orchestrates keyphrase extraction, skill matching, presence
// checking and the sub-score calculators into a single weighted report.
type ATSService interface {
	CalculateATSAnalysis(ctx context.Context, resumeText, jdText string) (*models.ATSReport, error)
	CalculateKeywordScore(ctx context.Context, resumeText, jdText string) (*models.KeywordScoreResult, error)
	EvaluateJDResume(ctx context.Context, jdText, resumeText string) (*models.JDResumeEvaluation, error)
}

// Final-score weights.
const (
	weightKeyword    = 0.4
	weightSemantic   = 0.3
	weightFormat     = 0.2
	weightExperience = 0.1
)

// Keyword-level blend between technical skills and JD phrases.
const (
	weightTechPresence   = 0.6
	weightPhrasePresence = 0.4
)

// Score bands.
const (
	BandExcellent = "Excellent Match"
	BandStrong    = "Strong Match"
	BandModerate  = "Moderate Match"
	BandWeak      = "Weak Match"
)

const maxMissingSkills = 5

// DefaultJDTopK is how many JD keyphrases feed the keyword score.
const DefaultJDTopK = 20

type atsService struct {
	scorer       scorer
	keyphrases   KeyphraseExtractor
	skills       SkillMatcher
	presence     PresenceChecker
	topKJD       int
	simThreshold float64
}

func NewATSService(
	gemini GeminiService,
	keyphrases KeyphraseExtractor,
	skills SkillMatcher,
	presence PresenceChecker,
	topKJD int,
	simThreshold float64,
) ATSService {
	if topKJD <= 0 {
		topKJD = DefaultJDTopK
	}
	if simThreshold <= 0 {
		simThreshold = DefaultSimThreshold
	}
	return &atsService{
		scorer:       scorer{gemini: gemini},
		keyphrases:   keyphrases,
		skills:       skills,
		presence:     presence,
		topKJD:       topKJD,
		simThreshold: simThreshold,
	}
}

// CalculateATSAnalysis implements ATSService. The semantic and keyword
// sub-scores both call the embedding provider and run concurrently; format and
// experience are pure text heuristics. A provider fault aborts the analysis
// with ErrScoringUnavailable.
func (a *atsService) CalculateATSAnalysis(ctx context.Context, resumeText, jdText string) (*models.ATSReport, error) {
	formatScore := CalculateFormatScore(resumeText)
	experienceScore := CalculateExperienceScore(resumeText)

	var semanticScore float64
	var kwData *models.KeywordScoreResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := a.scorer.calculateSemanticScore(gctx, resumeText, jdText)
		if err != nil {
			return err
		}
		semanticScore = s
		return nil
	})
	g.Go(func() error {
		kw, err := a.CalculateKeywordScore(gctx, resumeText, jdText)
		if err != nil {
			return err
		}
		kwData = kw
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, scoringUnavailable(err)
	}

	finalScore := round1(
		weightKeyword*kwData.KeywordScore +
			weightSemantic*semanticScore +
			weightFormat*formatScore +
			weightExperience*experienceScore,
	)

	band := scoreBand(finalScore)
	suggestion := buildSuggestion(band, finalScore, kwData.MissingSkills, formatScore)

	return &models.ATSReport{
		ATSScore:   finalScore,
		ATSBand:    band,
		Suggestion: suggestion,
		Scores: models.ScoreBreakdown{
			KeywordScore:    kwData.KeywordScore,
			SemanticScore:   semanticScore,
			FormatScore:     formatScore,
			ExperienceScore: experienceScore,
		},
		MissingSkills: kwData.MissingSkills,
		Meta: models.ReportMeta{
			ResumeWordCount: len(strings.Fields(resumeText)),
			JDWordCount:     len(strings.Fields(jdText)),
		},
	}, nil
}

func scoreBand(score float64) string {
	switch {
	case score >= 85:
		return BandExcellent
	case score >= 70:
		return BandStrong
	case score >= 55:
		return BandModerate
	default:
		return BandWeak
	}
}

func buildSuggestion(band string, score float64, missingSkills []string, formatScore float64) string {
	suggestion := fmt.Sprintf("Current resume has a %s (%.1f). ", band, score)
	if len(missingSkills) > 0 {
		top := missingSkills
		if len(top) > 3 {
			top = top[:3]
		}
		suggestion += fmt.Sprintf("Add skills like: %s.", strings.Join(top, ", "))
	} else if formatScore < 60 {
		suggestion += "Focus on improving your formatting and section headers."
	}
	return suggestion
}

// CalculateKeywordScore implements ATSService. When both inputs are
// empty/whitespace the extraction pipeline is skipped entirely.
func (a *atsService) CalculateKeywordScore(ctx context.Context, resumeText, jdText string) (*models.KeywordScoreResult, error) {
	if strings.TrimSpace(jdText) == "" && strings.TrimSpace(resumeText) == "" {
		return &models.KeywordScoreResult{KeywordScore: 0, MissingSkills: []string{}}, nil
	}

	eval, err := a.EvaluateJDResume(ctx, jdText, resumeText)
	if err != nil {
		return nil, err
	}

	// Unmatched technical skills first, then unmatched phrases, deduplicated
	// with stable first-occurrence order.
	missing := make([]string, 0, maxMissingSkills)
	seen := make(map[string]bool)
	for _, kw := range append(append([]string{}, eval.TechPresence.Unmatched...), eval.JDPhrasePresence.Unmatched...) {
		if seen[kw] {
			continue
		}
		seen[kw] = true
		missing = append(missing, kw)
		if len(missing) == maxMissingSkills {
			break
		}
	}

	return &models.KeywordScoreResult{
		KeywordScore:  eval.OverallKeywordScore,
		MissingSkills: missing,
		Details:       eval,
	}, nil
}

// EvaluateJDResume implements ATSService: extracts JD keyphrases and technical
// skills, checks their presence in the resume, and blends the two presence
// scores.
func (a *atsService) EvaluateJDResume(ctx context.Context, jdText, resumeText string) (*models.JDResumeEvaluation, error) {
	jdPhrases, err := a.keyphrases.ExtractJDPhrases(ctx, jdText, a.topKJD)
	if err != nil {
		return nil, err
	}
	phrasePresence, err := a.presence.CheckPresence(ctx, jdPhrases, resumeText, a.simThreshold)
	if err != nil {
		return nil, err
	}

	jdTech := FlattenSkills(a.skills.ExtractTechKeywords(jdText))
	resumeTech := FlattenSkills(a.skills.ExtractTechKeywords(resumeText))
	techPresence, err := a.presence.CheckPresence(ctx, jdTech, resumeText, a.simThreshold)
	if err != nil {
		return nil, err
	}

	var overall float64
	switch {
	case len(jdTech) > 0 && len(jdPhrases) > 0:
		overall = weightTechPresence*techPresence.Score + weightPhrasePresence*phrasePresence.Score
	case len(jdTech) > 0:
		overall = techPresence.Score
	case len(jdPhrases) > 0:
		overall = phrasePresence.Score
	default:
		overall = 0
	}

	return &models.JDResumeEvaluation{
		JDPhrases:           jdPhrases,
		JDPhrasePresence:    phrasePresence,
		JDTechFlat:          jdTech,
		TechPresence:        techPresence,
		ResumeTechFlat:      resumeTech,
		ResumeOnlyTech:      diffSorted(resumeTech, jdTech),
		OverallKeywordScore: round2(overall),
	}, nil
}

func diffSorted(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	var out []string
	for _, s := range a {
		if !inB[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
