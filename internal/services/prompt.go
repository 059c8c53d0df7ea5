package services

import (
	"encoding/json"
	"fmt"
)

// Prompt truncation limits keep advice requests bounded regardless of resume
// length.
const (
	promptResumeLimitRoles = 4000
	promptResumeLimitOther = 3000
	promptJDLimit          = 2000
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

func truncate(text string, limit int) string {
	if len(text) > limit {
		return text[:limit]
	}
	return text
}

func jsonList(items []string) string {
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// BuildRolePredictionPrompt asks for the top predicted roles for a candidate.
func (pb *PromptBuilder) BuildRolePredictionPrompt(resumeText string) string {
	return fmt.Sprintf(`CONTEXT:
RESUME: %s

TASK: Output top 3 predicted roles for this candidate. The reason should be in 1-2 lines.
RETURN JSON ONLY:
{
  "predicted_roles": [
    { "role": "str", "score": 0.0-1.0, "matched_skills": ["str"], "evidence": ["str"], "reason": "str" }
  ]
}`, truncate(resumeText, promptResumeLimitRoles))
}

// BuildSkillLevelPrompt asks for a proficiency estimate per skill.
func (pb *PromptBuilder) BuildSkillLevelPrompt(resumeText string, skills []string) string {
	return fmt.Sprintf(`RESUME: %s
SKILLS: %s
TASK: Estimate level (Beginner/Intermediate/Expert) for each skill based on resume.
RETURN JSON ONLY:
{
  "skill_levels": [
    { "skill": "str", "level": "str", "confidence": 0.0-1.0, "evidence": ["str"] }
  ]
}`, truncate(resumeText, promptResumeLimitOther), jsonList(skills))
}

// BuildBoosterPrompt asks for resume bullet points covering missing skills.
func (pb *PromptBuilder) BuildBoosterPrompt(resumeText, jdText string, missingSkills []string, generic bool) string {
	note := ""
	if generic {
		note = "\nNote: These are generic improvements."
	}
	return fmt.Sprintf(`RESUME: %s
JD: %s
MISSING_SKILLS: %s

TASK: Create resume bullet points for the MISSING_SKILLS.
If the resume has NO evidence for a skill, mark 'derived_from_resume': false.%s

RETURN JSON ONLY:
{
  "booster_suggestions": [
    { "skill": "str", "snippet": "str", "derived_from_resume": bool }
  ]
}`, truncate(resumeText, promptResumeLimitOther), truncate(jdText, promptJDLimit), jsonList(missingSkills), note)
}

// BuildLearningPathPrompt asks for a 5-step learning path toward a role.
func (pb *PromptBuilder) BuildLearningPathPrompt(role string, missingSkills []string) string {
	focus := "General Advanced Skills"
	if len(missingSkills) > 0 {
		focus = jsonList(missingSkills)
	}
	return fmt.Sprintf(`ROLE: %s
FOCUS_AREAS: %s
TASK: Create a 5-step learning path to master this role and gaps.
RETURN JSON ONLY:
{
  "learning_path": [
    { "step": int, "title": "str", "duration_weeks": float, "type": "course|project", "notes": "str" }
  ]
}`, role, focus)
}

// BuildTrendsPrompt asks for future trends relevant to a role.
func (pb *PromptBuilder) BuildTrendsPrompt(role string) string {
	return fmt.Sprintf(`ROLE: %s
TASK: Suggest 3 future trends in 2-3 lines only.
RETURN JSON ONLY:
{
  "future_trends": [
    { "name": "str", "why": "str" }
  ]
}`, role)
}
