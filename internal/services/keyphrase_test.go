package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatePhrases(t *testing.T) {
	cands := candidatePhrases("Build REST APIs with Python")
	assert.Equal(t, []string{
		"build", "build rest",
		"rest", "rest apis",
		"apis", "apis python",
		"python",
	}, cands)
}

func TestCandidatePhrasesSkipsStopAndShortWords(t *testing.T) {
	// "a", "to", "the" are stop words; "c" is below the 2-char minimum.
	assert.Empty(t, candidatePhrases("a c to the"))

	// "within" and "also" sit in the vectorizer stop list even though they are
	// not JD stop words.
	assert.Equal(t, []string{"deploying", "deploying services", "services"},
		candidatePhrases("also deploying services within"))

	// Two-char tokens survive tokenization; the length-3 phrase filter in
	// ExtractJDPhrases is what drops them later.
	assert.Equal(t, []string{"ai", "ai models", "models"}, candidatePhrases("ai models"))
}

func TestExtractJDPhrasesEmptyText(t *testing.T) {
	extractor := NewKeyphraseExtractor(newFakeGemini())

	phrases, err := extractor.ExtractJDPhrases(context.Background(), "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, phrases)
}

func TestExtractJDPhrasesRanksByRelevance(t *testing.T) {
	fake := newFakeGemini()
	jd := "Kubernetes engineer working on Python automation"
	doc := NormalizeLower(jd)

	fake.setVector(doc, []float32{1, 0, 0})
	fake.setVector("kubernetes", []float32{0.9, 0.1, 0})
	fake.setVector("python", []float32{0.8, 0, 0.1})

	extractor := NewKeyphraseExtractor(fake)
	phrases, err := extractor.ExtractJDPhrases(context.Background(), jd, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"kubernetes", "python"}, phrases)
}

func TestExtractJDPhrasesFiltersStopLists(t *testing.T) {
	fake := newFakeGemini()
	jd := "Senior role within our global services team delivering Python microservices"

	extractor := NewKeyphraseExtractor(fake)
	phrases, err := extractor.ExtractJDPhrases(context.Background(), jd, 25)
	require.NoError(t, err)

	assert.Contains(t, phrases, "python")
	for _, p := range phrases {
		assert.GreaterOrEqual(t, len(p), 3)
		assert.False(t, phraseHasStopWord(p), "phrase %q contains a JD stop word", p)
		assert.False(t, jdStopPhrases[p], "phrase %q is a JD stop phrase", p)
	}
	assert.NotContains(t, phrases, "role")
	assert.NotContains(t, phrases, "team")
	assert.NotContains(t, phrases, "global services team")
}

func TestExtractJDPhrasesDeduplicates(t *testing.T) {
	fake := newFakeGemini()
	jd := "python python python tooling"

	extractor := NewKeyphraseExtractor(fake)
	phrases, err := extractor.ExtractJDPhrases(context.Background(), jd, 25)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, p := range phrases {
		seen[p]++
	}
	assert.Equal(t, 1, seen["python"])
}

func TestExtractJDPhrasesProviderFailure(t *testing.T) {
	fake := newFakeGemini()
	fake.embedErr = errors.New("provider down")

	extractor := NewKeyphraseExtractor(fake)
	_, err := extractor.ExtractJDPhrases(context.Background(), "Python developer wanted", 10)
	assert.Error(t, err)
}

func TestMMRSelectPrefersDiversePhrases(t *testing.T) {
	// Two near-identical high-relevance phrases and one distinct phrase:
	// with diversity 0.3 the distinct phrase beats the duplicate for the
	// second slot.
	phrases := []string{"cloud infra", "cloud infrastructure", "python"}
	vecs := [][]float32{
		{1, 0},
		{0.99, 0.01},
		{0, 1},
	}
	relevance := []float64{0.95, 0.94, 0.70}
	pool := []int{0, 1, 2}

	picked := mmrSelect(pool, relevance, vecs, phrases, 2, keyphraseDiversity)
	require.Len(t, picked, 2)
	assert.Equal(t, "cloud infra", picked[0].phrase)
	assert.Equal(t, "python", picked[1].phrase)
}
