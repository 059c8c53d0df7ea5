package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"alfredoptarigan/ats-analyzer/internal/models"
)

// AdvisorService generates LLM career advice for a scored resume. It is fully
// independent of the scoring engine: every section degrades to empty on
// failure and nothing here can fail an analysis response.
type AdvisorService interface {
	GenerateAdvice(ctx context.Context, resumeText, jdText string, missingSkills []string) *models.AdvicePayload
}

// DefaultPrimaryRole is used when role prediction returns nothing.
const DefaultPrimaryRole = "Software Engineer"

// fallbackLevelSkills is assessed when no concrete skills are available.
var fallbackLevelSkills = []string{"Communication", "Problem Solving", "Technical Skills"}

// fallbackBoosterSkills seed generic booster suggestions when the resume has
// no missing skills; the payload is flagged generic in that case.
var fallbackBoosterSkills = []string{"Advanced Optimization", "System Design", "Leadership"}

const (
	adviceTemperature = 0.7
	maxSkillsToCheck  = 10
)

type advisorService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	maxAttempts   int
}

func NewAdvisorService(gemini GeminiService, maxAttempts int) AdvisorService {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &advisorService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		maxAttempts:   maxAttempts,
	}
}

// GenerateAdvice implements AdvisorService. Role prediction runs first because
// the other sections depend on its output; the remaining four sections run
// concurrently.
func (a *advisorService) GenerateAdvice(ctx context.Context, resumeText, jdText string, missingSkills []string) *models.AdvicePayload {
	payload := &models.AdvicePayload{
		Roles:              []models.PredictedRole{},
		PrimaryRole:        DefaultPrimaryRole,
		SkillLevels:        []models.SkillLevel{},
		BoosterSuggestions: []models.BoosterSuggestion{},
		LearningPath:       []models.LearningStep{},
		FutureTrends:       []models.FutureTrend{},
	}

	if len(missingSkills) > maxMissingSkills {
		missingSkills = missingSkills[:maxMissingSkills]
	}

	payload.Roles = a.predictRoles(ctx, resumeText)
	if len(payload.Roles) > 0 {
		payload.PrimaryRole = payload.Roles[0].Role
	}

	skillsToCheck := matchedSkillsFromRoles(payload.Roles)

	boosterSkills := missingSkills
	if len(boosterSkills) == 0 {
		boosterSkills = fallbackBoosterSkills
		payload.Generic = true
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		payload.SkillLevels = a.estimateSkillLevels(gctx, resumeText, skillsToCheck)
		return nil
	})
	g.Go(func() error {
		payload.BoosterSuggestions = a.generateBoosters(gctx, resumeText, jdText, boosterSkills, payload.Generic)
		return nil
	})
	g.Go(func() error {
		payload.LearningPath = a.buildLearningPath(gctx, payload.PrimaryRole, missingSkills)
		return nil
	})
	g.Go(func() error {
		payload.FutureTrends = a.suggestTrends(gctx, payload.PrimaryRole)
		return nil
	})
	// Sections never return errors, they degrade to empty.
	_ = g.Wait()

	return payload
}

func matchedSkillsFromRoles(roles []models.PredictedRole) []string {
	seen := make(map[string]bool)
	var skills []string
	for _, r := range roles {
		for _, s := range r.MatchedSkills {
			if seen[s] {
				continue
			}
			seen[s] = true
			skills = append(skills, s)
			if len(skills) == maxSkillsToCheck {
				return skills
			}
		}
	}
	return skills
}

func (a *advisorService) predictRoles(ctx context.Context, resumeText string) []models.PredictedRole {
	var out struct {
		PredictedRoles []models.PredictedRole `json:"predicted_roles"`
	}
	prompt := a.promptBuilder.BuildRolePredictionPrompt(resumeText)
	if err := a.generateJSON(ctx, prompt, &out); err != nil {
		log.Printf("⚠️  Role prediction failed: %v\n", err)
		return []models.PredictedRole{}
	}
	return out.PredictedRoles
}

func (a *advisorService) estimateSkillLevels(ctx context.Context, resumeText string, skills []string) []models.SkillLevel {
	if len(skills) == 0 {
		skills = fallbackLevelSkills
	}
	var out struct {
		SkillLevels []models.SkillLevel `json:"skill_levels"`
	}
	prompt := a.promptBuilder.BuildSkillLevelPrompt(resumeText, skills)
	if err := a.generateJSON(ctx, prompt, &out); err != nil {
		log.Printf("⚠️  Skill level estimation failed: %v\n", err)
		return []models.SkillLevel{}
	}
	return out.SkillLevels
}

func (a *advisorService) generateBoosters(ctx context.Context, resumeText, jdText string, missingSkills []string, generic bool) []models.BoosterSuggestion {
	var out struct {
		BoosterSuggestions []models.BoosterSuggestion `json:"booster_suggestions"`
	}
	prompt := a.promptBuilder.BuildBoosterPrompt(resumeText, jdText, missingSkills, generic)
	if err := a.generateJSON(ctx, prompt, &out); err != nil {
		log.Printf("⚠️  Booster generation failed: %v\n", err)
		return []models.BoosterSuggestion{}
	}
	return out.BoosterSuggestions
}

func (a *advisorService) buildLearningPath(ctx context.Context, role string, missingSkills []string) []models.LearningStep {
	var out struct {
		LearningPath []models.LearningStep `json:"learning_path"`
	}
	prompt := a.promptBuilder.BuildLearningPathPrompt(role, missingSkills)
	if err := a.generateJSON(ctx, prompt, &out); err != nil {
		log.Printf("⚠️  Learning path generation failed: %v\n", err)
		return []models.LearningStep{}
	}
	return out.LearningPath
}

func (a *advisorService) suggestTrends(ctx context.Context, role string) []models.FutureTrend {
	var out struct {
		FutureTrends []models.FutureTrend `json:"future_trends"`
	}
	prompt := a.promptBuilder.BuildTrendsPrompt(role)
	if err := a.generateJSON(ctx, prompt, &out); err != nil {
		log.Printf("⚠️  Trend suggestion failed: %v\n", err)
		return []models.FutureTrend{}
	}
	return out.FutureTrends
}

func (a *advisorService) generateJSON(ctx context.Context, prompt string, target interface{}) error {
	response, err := a.gemini.GenerateTextWithRetry(ctx, prompt, adviceTemperature, a.maxAttempts)
	if err != nil {
		return fmt.Errorf("failed to generate advice: %w", err)
	}

	jsonStr := extractJSON(response)
	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal advice JSON: %w", err)
	}
	return nil
}

// extractJSON strips markdown fences and trims to the outermost JSON object or
// array, since the model often wraps its output.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
