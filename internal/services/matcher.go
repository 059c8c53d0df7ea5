package services

import (
	"sort"

	"alfredoptarigan/ats-analyzer/internal/taxonomy"
)

// SkillMatcher scans free text for every known skill or alias and resolves
// matches to canonical names grouped by category.
type SkillMatcher interface {
	ExtractTechKeywords(text string) map[string][]string
}

type matcherEntry struct {
	key string
}

type skillMatcher struct {
	tax *taxonomy.Taxonomy
	// Skill keys indexed by first byte, so the text is scanned in a single
	// left-to-right pass instead of one regex per skill.
	index map[byte][]matcherEntry
}

func NewSkillMatcher(tax *taxonomy.Taxonomy) SkillMatcher {
	m := &skillMatcher{
		tax:   tax,
		index: make(map[byte][]matcherEntry),
	}
	for _, key := range tax.Keys() {
		if key == "" {
			continue
		}
		b := key[0]
		m.index[b] = append(m.index[b], matcherEntry{key: key})
	}
	// Longer keys first so "spring boot" is tried before "spring"; both can
	// still match, this only keeps the scan order deterministic.
	for b := range m.index {
		entries := m.index[b]
		sort.Slice(entries, func(i, j int) bool {
			if len(entries[i].key) != len(entries[j].key) {
				return len(entries[i].key) > len(entries[j].key)
			}
			return entries[i].key < entries[j].key
		})
	}
	return m
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

// ExtractTechKeywords returns a mapping category -> sorted canonical skill
// names found in the text. A skill matches only as a standalone token
// sequence: not preceded or followed by an alphanumeric character.
func (m *skillMatcher) ExtractTechKeywords(text string) map[string][]string {
	norm := NormalizeLower(text)

	found := make(map[string]map[string]struct{})

	for i := 0; i < len(norm); i++ {
		if i > 0 && isAlnum(norm[i-1]) {
			continue // inside a word, not a boundary
		}
		for _, e := range m.index[norm[i]] {
			end := i + len(e.key)
			if end > len(norm) || norm[i:end] != e.key {
				continue
			}
			if end < len(norm) && isAlnum(norm[end]) {
				continue
			}
			canon, cat, ok := m.tax.Resolve(e.key)
			if !ok {
				continue
			}
			set, exists := found[cat]
			if !exists {
				set = make(map[string]struct{})
				found[cat] = set
			}
			set[canon] = struct{}{}
		}
	}

	result := make(map[string][]string, len(found))
	for cat, set := range found {
		skills := make([]string, 0, len(set))
		for s := range set {
			skills = append(skills, s)
		}
		sort.Strings(skills)
		result[cat] = skills
	}
	return result
}

// FlattenSkills unions every canonical skill across categories into one
// sorted, deduplicated list.
func FlattenSkills(byCategory map[string][]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, skills := range byCategory {
		for _, s := range skills {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
