package models

// MatchType identifies which tier of the presence checker accepted a keyword.
type MatchType string

const (
	MatchExact    MatchType = "exact"
	MatchToken    MatchType = "token"
	MatchSemantic MatchType = "semantic"
)

// MatchDetail records how a single keyword matched. Similarity is 1.0 for
// exact and token matches by convention; they never reach the embedding tier.
type MatchDetail struct {
	Keyword    string    `json:"keyword"`
	MatchType  MatchType `json:"match_type"`
	Similarity float64   `json:"similarity"`
	Snippet    string    `json:"snippet"`
}

// PresenceResult reports, for a keyword list, which keywords were found in a
// body of text. MatchedCount == len(Matched) == Total - len(Unmatched).
type PresenceResult struct {
	Score        float64       `json:"score"`
	MatchedCount int           `json:"matched_count"`
	Total        int           `json:"total"`
	Matched      []string      `json:"matched"`
	Unmatched    []string      `json:"unmatched"`
	Details      []MatchDetail `json:"details"`
}

// ScoreBreakdown holds the four weighted sub-scores, each in [0,100].
type ScoreBreakdown struct {
	KeywordScore    float64 `json:"keyword_score"`
	SemanticScore   float64 `json:"semantic_score"`
	FormatScore     float64 `json:"format_score"`
	ExperienceScore float64 `json:"experience_score"`
}

// ReportMeta carries word counts for the inputs that produced a report.
type ReportMeta struct {
	ResumeWordCount int `json:"resume_word_count"`
	JDWordCount     int `json:"jd_word_count"`
}

// ATSReport is the final scoring verdict returned to the caller. Created fresh
// per request; nothing in it is shared across requests.
type ATSReport struct {
	ATSScore      float64        `json:"ats_score"`
	ATSBand       string         `json:"ats_band"`
	Suggestion    string         `json:"suggestion"`
	Scores        ScoreBreakdown `json:"scores"`
	MissingSkills []string       `json:"missing_skills"`
	Meta          ReportMeta     `json:"meta"`
}

// JDResumeEvaluation is the keyword-level evaluation detail behind the keyword
// sub-score.
type JDResumeEvaluation struct {
	JDPhrases           []string       `json:"jd_phrases"`
	JDPhrasePresence    PresenceResult `json:"jd_phrase_presence"`
	JDTechFlat          []string       `json:"jd_tech_flat"`
	TechPresence        PresenceResult `json:"tech_presence"`
	ResumeTechFlat      []string       `json:"resume_tech_flat"`
	ResumeOnlyTech      []string       `json:"resume_only_tech"`
	OverallKeywordScore float64        `json:"overall_keyword_score"`
}

// KeywordScoreResult pairs the combined keyword score with the missing-skill
// suggestions derived from it.
type KeywordScoreResult struct {
	KeywordScore  float64             `json:"keyword_score"`
	MissingSkills []string            `json:"missing_skills"`
	Details       *JDResumeEvaluation `json:"details,omitempty"`
}
