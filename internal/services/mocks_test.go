package services

import (
	"context"
	"strings"
	"sync"
)

// fakeGemini is a deterministic GeminiService double. Texts without an entry
// in vectors get mutually orthogonal basis vectors, so unrelated texts always
// have cosine similarity 0 and identical texts 1.
type fakeGemini struct {
	mu       sync.Mutex
	vectors  map[string][]float32
	nextDim  int
	assigned map[string]int

	embedErr error

	// responses maps a marker substring of the prompt to the reply.
	responses map[string]string
	textErr   error
	prompts   []string
}

func newFakeGemini() *fakeGemini {
	return &fakeGemini{
		vectors:   map[string][]float32{},
		assigned:  map[string]int{},
		responses: map[string]string{},
		// Basis dimensions start past any hand-set low-dimensional vector,
		// so auto-assigned texts stay orthogonal to those too.
		nextDim: 100,
	}
}

func (f *fakeGemini) setVector(text string, vec []float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vectors[text] = vec
}

func (f *fakeGemini) EmbedText(ctx context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	return f.vectorLocked(text), nil
}

func (f *fakeGemini) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = f.vectorLocked(t)
	}
	return out, nil
}

func (f *fakeGemini) vectorLocked(text string) []float32 {
	if v, ok := f.vectors[text]; ok {
		return v
	}
	idx, ok := f.assigned[text]
	if !ok {
		idx = f.nextDim
		f.nextDim++
		f.assigned[text] = idx
	}
	vec := make([]float32, idx+1)
	vec[idx] = 1
	return vec
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.textErr != nil {
		return "", f.textErr
	}
	for marker, resp := range f.responses {
		if strings.Contains(prompt, marker) {
			return resp, nil
		}
	}
	return "{}", nil
}

func (f *fakeGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	return f.GenerateText(ctx, prompt, temperature)
}

func (f *fakeGemini) recordedPrompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}
