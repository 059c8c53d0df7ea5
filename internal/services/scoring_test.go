package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFormatScore(t *testing.T) {
	tests := []struct {
		name   string
		resume string
		want   float64
	}{
		{"empty", "", 0},
		{"email only", "reach me at john@example.com", 10},
		{"ten digit phone", "call 9876543210 anytime", 10},
		{"country code phone", "call +62 for info", 10},
		{"single section header", "skills: none to speak of", 10},
		{"all four sections", "education experience skills projects", 40},
		{"bullet lines", "summary\n- shipped things\n- fixed things", 20},
		{"asterisk bullet", "summary\n* shipped things", 20},
		{"email and phone and section", "a@b.com +1 9876543210 experience", 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateFormatScore(tt.resume))
		})
	}
}

func TestCalculateFormatScoreWordCount(t *testing.T) {
	// 300 filler words land in the ideal range.
	ideal := strings.Repeat("word ", 300)
	assert.Equal(t, 20.0, CalculateFormatScore(ideal))

	long := strings.Repeat("word ", 1300)
	assert.Equal(t, 10.0, CalculateFormatScore(long))

	short := strings.Repeat("word ", 50)
	assert.Equal(t, 0.0, CalculateFormatScore(short))
}

func TestCalculateFormatScoreMonotonic(t *testing.T) {
	// Adding an independent signal to a fixed text never lowers the score.
	bases := []string{
		"",
		"skills and experience",
		"education experience skills projects\n- bullet",
		strings.Repeat("word ", 400),
	}
	for _, base := range bases {
		without := CalculateFormatScore(base)
		with := CalculateFormatScore(base + " contact: jane@example.com")
		assert.GreaterOrEqual(t, with, without, "base %q", base)
	}
}

func TestCalculateFormatScoreCap(t *testing.T) {
	resume := "a@b.com +1 education experience skills projects\n- bullet\n" +
		strings.Repeat("word ", 400)
	assert.Equal(t, 100.0, CalculateFormatScore(resume))
}

func TestCalculateExperienceScore(t *testing.T) {
	tests := []struct {
		name   string
		resume string
		want   float64
	}{
		{"empty", "", 0},
		{"experience section", "work experience at acme", 30},
		{"internships", "summer internships only", 30},
		{"project only", "capstone project", 20},
		{"verbs only", "developed built led", 6},
		{"sections and verbs", "experience with a project where i developed and optimized things", 54},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateExperienceScore(tt.resume))
		})
	}
}

func TestCalculateExperienceScoreVerbBonusCap(t *testing.T) {
	// 30 strong verbs would be worth 60, capped at 50.
	resume := strings.Repeat("developed ", 30)
	assert.Equal(t, 50.0, CalculateExperienceScore(resume))

	// Sections plus the capped verb bonus stays at 100.
	resume = "experience project " + strings.Repeat("developed ", 30)
	assert.Equal(t, 100.0, CalculateExperienceScore(resume))
}

func TestCalculateSemanticScore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty input is neutral zero", func(t *testing.T) {
		s := scorer{gemini: newFakeGemini()}
		got, err := s.calculateSemanticScore(ctx, "", "some jd")
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)

		got, err = s.calculateSemanticScore(ctx, "some resume", "   ")
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})

	t.Run("scaled cosine similarity", func(t *testing.T) {
		fake := newFakeGemini()
		fake.setVector("resume text", []float32{1, 0})
		fake.setVector("jd text", []float32{0.8, 0.6})
		s := scorer{gemini: fake}

		got, err := s.calculateSemanticScore(ctx, "resume text", "jd text")
		require.NoError(t, err)
		assert.Equal(t, 80.0, got)
	})

	t.Run("negative similarity clamps to zero", func(t *testing.T) {
		fake := newFakeGemini()
		fake.setVector("resume text", []float32{1, 0})
		fake.setVector("jd text", []float32{-1, 0})
		s := scorer{gemini: fake}

		got, err := s.calculateSemanticScore(ctx, "resume text", "jd text")
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})

	t.Run("provider failure surfaces", func(t *testing.T) {
		fake := newFakeGemini()
		fake.embedErr = errors.New("quota exceeded")
		s := scorer{gemini: fake}

		_, err := s.calculateSemanticScore(ctx, "resume text", "jd text")
		assert.Error(t, err)
	})
}
