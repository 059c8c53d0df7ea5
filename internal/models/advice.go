package models

// PredictedRole is one of the top roles the advice model suggests for a
// candidate.
type PredictedRole struct {
	Role          string   `json:"role"`
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	Evidence      []string `json:"evidence"`
	Reason        string   `json:"reason"`
}

// SkillLevel is the model's estimate of proficiency for a single skill.
type SkillLevel struct {
	Skill      string   `json:"skill"`
	Level      string   `json:"level"`
	Confidence float64  `json:"confidence"`
	Evidence   []string `json:"evidence"`
}

// BoosterSuggestion is a resume bullet point proposed for a missing skill.
// DerivedFromResume is false when the resume holds no evidence for the skill.
type BoosterSuggestion struct {
	Skill             string `json:"skill"`
	Snippet           string `json:"snippet"`
	DerivedFromResume bool   `json:"derived_from_resume"`
}

// LearningStep is one step of a generated learning path.
type LearningStep struct {
	Step          int     `json:"step"`
	Title         string  `json:"title"`
	DurationWeeks float64 `json:"duration_weeks"`
	Type          string  `json:"type"`
	Notes         string  `json:"notes"`
}

// FutureTrend names an industry trend relevant to the predicted role.
type FutureTrend struct {
	Name string `json:"name"`
	Why  string `json:"why"`
}

// AdvicePayload bundles every LLM-generated advice section. Generic is true
// when the booster suggestions were produced from the fallback skill set
// because the resume had no missing skills.
type AdvicePayload struct {
	Roles              []PredictedRole     `json:"roles"`
	PrimaryRole        string              `json:"primary_role"`
	SkillLevels        []SkillLevel        `json:"skill_levels"`
	BoosterSuggestions []BoosterSuggestion `json:"booster_suggestions"`
	LearningPath       []LearningStep      `json:"learning_path"`
	FutureTrends       []FutureTrend       `json:"future_trends"`
	Generic            bool                `json:"generic"`
}
