package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ats-analyzer/internal/models"
)

func TestGenerateAdvice(t *testing.T) {
	fake := newFakeGemini()
	fake.responses["predicted_roles"] = "```json\n" + `{
		"predicted_roles": [
			{"role": "Backend Engineer", "score": 0.9, "matched_skills": ["python", "docker"], "evidence": ["built services"], "reason": "strong backend signal"},
			{"role": "DevOps Engineer", "score": 0.6, "matched_skills": ["docker"], "evidence": [], "reason": "container exposure"}
		]
	}` + "\n```"
	fake.responses["skill_levels"] = `{"skill_levels": [
		{"skill": "python", "level": "Expert", "confidence": 0.8, "evidence": ["five years"]}
	]}`
	fake.responses["booster_suggestions"] = `{"booster_suggestions": [
		{"skill": "kubernetes", "snippet": "Deployed workloads to Kubernetes", "derived_from_resume": false}
	]}`
	fake.responses["learning_path"] = `{"learning_path": [
		{"step": 1, "title": "Kubernetes fundamentals", "duration_weeks": 2, "type": "course", "notes": "start here"}
	]}`
	fake.responses["future_trends"] = `{"future_trends": [
		{"name": "Platform engineering", "why": "internal platforms keep growing"}
	]}`

	svc := NewAdvisorService(fake, 3)
	payload := svc.GenerateAdvice(context.Background(),
		"python and docker resume", "backend jd", []string{"kubernetes"})

	require.Len(t, payload.Roles, 2)
	assert.Equal(t, "Backend Engineer", payload.PrimaryRole)
	assert.False(t, payload.Generic)

	require.Len(t, payload.SkillLevels, 1)
	assert.Equal(t, "Expert", payload.SkillLevels[0].Level)

	require.Len(t, payload.BoosterSuggestions, 1)
	assert.Equal(t, "kubernetes", payload.BoosterSuggestions[0].Skill)
	assert.False(t, payload.BoosterSuggestions[0].DerivedFromResume)

	require.Len(t, payload.LearningPath, 1)
	assert.Equal(t, 1, payload.LearningPath[0].Step)

	require.Len(t, payload.FutureTrends, 1)
	assert.Equal(t, "Platform engineering", payload.FutureTrends[0].Name)
}

func TestGenerateAdviceGenericFallback(t *testing.T) {
	fake := newFakeGemini()
	svc := NewAdvisorService(fake, 3)

	payload := svc.GenerateAdvice(context.Background(), "a resume", "a jd", nil)

	assert.True(t, payload.Generic)
	assert.Equal(t, DefaultPrimaryRole, payload.PrimaryRole)

	// The booster prompt falls back to the generic skill set and is flagged.
	var boosterPrompt string
	for _, p := range fake.recordedPrompts() {
		if strings.Contains(p, "booster_suggestions") {
			boosterPrompt = p
		}
	}
	require.NotEmpty(t, boosterPrompt)
	assert.Contains(t, boosterPrompt, "Advanced Optimization")
	assert.Contains(t, boosterPrompt, "generic improvements")
}

func TestGenerateAdviceSkillLevelFallback(t *testing.T) {
	fake := newFakeGemini()
	// Roles come back without matched skills, so the level estimate runs on the
	// fallback soft-skill set.
	fake.responses["predicted_roles"] = `{"predicted_roles": [
		{"role": "Data Analyst", "score": 0.7, "matched_skills": [], "evidence": [], "reason": "spreadsheets"}
	]}`

	svc := NewAdvisorService(fake, 3)
	payload := svc.GenerateAdvice(context.Background(), "a resume", "a jd", []string{"sql"})

	assert.Equal(t, "Data Analyst", payload.PrimaryRole)

	var levelPrompt string
	for _, p := range fake.recordedPrompts() {
		if strings.Contains(p, "skill_levels") {
			levelPrompt = p
		}
	}
	require.NotEmpty(t, levelPrompt)
	assert.Contains(t, levelPrompt, "Communication")
}

func TestGenerateAdviceDegradesOnModelFailure(t *testing.T) {
	fake := newFakeGemini()
	fake.textErr = errors.New("model unavailable")

	svc := NewAdvisorService(fake, 3)
	payload := svc.GenerateAdvice(context.Background(), "a resume", "a jd", []string{"kubernetes"})

	require.NotNil(t, payload)
	assert.Equal(t, DefaultPrimaryRole, payload.PrimaryRole)
	assert.Empty(t, payload.Roles)
	assert.Empty(t, payload.SkillLevels)
	assert.Empty(t, payload.BoosterSuggestions)
	assert.Empty(t, payload.LearningPath)
	assert.Empty(t, payload.FutureTrends)
}

func TestGenerateAdviceTruncatesMissingSkills(t *testing.T) {
	fake := newFakeGemini()
	svc := NewAdvisorService(fake, 3)

	skills := []string{"one", "two", "three", "four", "five", "six", "seven"}
	svc.GenerateAdvice(context.Background(), "a resume", "a jd", skills)

	var boosterPrompt string
	for _, p := range fake.recordedPrompts() {
		if strings.Contains(p, "booster_suggestions") {
			boosterPrompt = p
		}
	}
	require.NotEmpty(t, boosterPrompt)
	assert.Contains(t, boosterPrompt, `"five"`)
	assert.NotContains(t, boosterPrompt, `"six"`)
}

func TestMatchedSkillsFromRoles(t *testing.T) {
	roles := []models.PredictedRole{
		{Role: "A", MatchedSkills: []string{"python", "docker", "python"}},
		{Role: "B", MatchedSkills: []string{"docker", "kubernetes"}},
	}
	assert.Equal(t, []string{"python", "docker", "kubernetes"}, matchedSkillsFromRoles(roles))

	many := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	got := matchedSkillsFromRoles([]models.PredictedRole{{Role: "A", MatchedSkills: many}})
	assert.Len(t, got, maxSkillsToCheck)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"fenced object", "```json\n{\"a\": 1}\n```", "{\"a\": 1}"},
		{"prose wrapped object", "Here you go: {\"a\": 1} hope it helps", "{\"a\": 1}"},
		{"bare array", "[1, 2, 3]", "[1, 2, 3]"},
		{"no json at all", "nothing here", "nothing here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strings.TrimSpace(extractJSON(tt.in)))
		})
	}
}
