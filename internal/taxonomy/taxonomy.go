package taxonomy

// CategoryOther is assigned when an alias target cannot be resolved to any
// category (unknown canonical, or an alias chain that never reaches a skill).
const CategoryOther = "other"

// Taxonomy is the immutable skill lookup built once at process start and shared
// read-only across requests. Lookups are case-sensitive on pre-lowercased input.
type Taxonomy struct {
	flat      map[string]string // skill-or-alias -> category
	canonical map[string]string // canonical skill -> authoritative category
	aliases   map[string]string // alias -> canonical
	keys      []string          // every skill-or-alias, build order
}

// New builds the taxonomy from the static skill and alias tables.
func New() *Taxonomy {
	return build(techSkills, aliases)
}

func build(cats []Category, aliasTable map[string]string) *Taxonomy {
	t := &Taxonomy{
		flat:      make(map[string]string),
		canonical: make(map[string]string),
		aliases:   make(map[string]string, len(aliasTable)),
	}

	for _, cat := range cats {
		for _, s := range cat.Skills {
			if _, seen := t.flat[s]; !seen {
				t.keys = append(t.keys, s)
			}
			// Later categories overwrite earlier ones for duplicated skills.
			t.flat[s] = cat.Name
			t.canonical[s] = cat.Name
		}
	}

	for alias, canon := range aliasTable {
		t.aliases[alias] = canon
		cat := CategoryOther
		// Follow at most one alias hop past the declared target; deeper
		// chains fall through to "other".
		if c, ok := t.canonical[canon]; ok {
			cat = c
		} else if next, ok := aliasTable[canon]; ok {
			if c, ok := t.canonical[next]; ok {
				cat = c
			}
		}
		if _, seen := t.flat[alias]; !seen {
			t.keys = append(t.keys, alias)
		}
		t.flat[alias] = cat
	}

	return t
}

// Resolve looks up a lowercased token and returns its canonical skill name and
// authoritative category. Returns ok=false when the token is neither a known
// skill nor an alias.
func (t *Taxonomy) Resolve(token string) (canonical, category string, ok bool) {
	category, ok = t.flat[token]
	if !ok {
		return "", "", false
	}

	canonical = token
	if canon, isAlias := t.aliases[token]; isAlias {
		canonical = canon
	}

	// The canonical->category map is authoritative; the flat entry is only a
	// fallback for aliases whose target is not a listed skill.
	if cat, known := t.canonical[canonical]; known {
		category = cat
	}
	return canonical, category, true
}

// CategoryOf returns the authoritative category of a canonical skill name.
func (t *Taxonomy) CategoryOf(canonical string) (string, bool) {
	cat, ok := t.canonical[canonical]
	return cat, ok
}

// Keys returns every known skill-or-alias string, in build order. The slice is
// shared; callers must not mutate it.
func (t *Taxonomy) Keys() []string {
	return t.keys
}

// Categories returns the category names in table order.
func (t *Taxonomy) Categories() []string {
	names := make([]string, 0, len(techSkills))
	for _, c := range techSkills {
		names = append(names, c.Name)
	}
	return names
}
