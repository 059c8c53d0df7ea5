package services

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// DefaultChunkLen bounds the length of a similarity chunk in characters.
const DefaultChunkLen = 256

// Normalize trims the text and collapses whitespace runs to single spaces.
func Normalize(text string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
}

// NormalizeLower is Normalize plus lowercasing.
func NormalizeLower(text string) string {
	return Normalize(strings.ToLower(text))
}

// ChunkText splits text into lowercase sentence-like units on '.', ';' and
// newlines, then greedily packs consecutive units into chunks of at most maxLen
// characters. The accumulator is flushed whenever the next unit would overflow
// it. Empty input yields no chunks.
func ChunkText(text string, maxLen int) []string {
	if maxLen <= 0 {
		maxLen = DefaultChunkLen
	}

	norm := NormalizeLower(text)
	if norm == "" {
		return nil
	}

	units := strings.FieldsFunc(norm, func(r rune) bool {
		return r == '.' || r == ';' || r == '\n'
	})

	var chunks []string
	var cur strings.Builder

	for _, u := range units {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}

		if cur.Len()+len(u) < maxLen {
			if cur.Len() > 0 {
				cur.WriteString(" ")
			}
			cur.WriteString(u)
		} else {
			if cur.Len() > 0 {
				chunks = append(chunks, cur.String())
			}
			cur.Reset()
			cur.WriteString(u)
		}
	}

	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}

	return chunks
}
