package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// KeyphraseExtractor pulls salient 1-2 word phrases out of a job description,
// ranked by embedding similarity to the whole document with diversity
// re-ranking, then filtered through the JD stop lists.
type KeyphraseExtractor interface {
	ExtractJDPhrases(ctx context.Context, jdText string, topK int) ([]string, error)
}

const (
	keyphraseCandidatePool = 80
	keyphraseDiversity     = 0.3
)

// jdStopPhrases are boilerplate phrases dropped verbatim from JD extraction.
var jdStopPhrases = map[string]bool{
	"role offers": true, "customer facing role": true, "software industry": true,
	"organization position require": true, "requirements deliver project": true,
	"role requires strong": true, "adapt dynamic business": true,
	"global services team": true, "experience providing technical": true,
}

// jdStopWords reject any extracted phrase containing one of them.
var jdStopWords = map[string]bool{
	"role": true, "offers": true, "experience": true, "position": true,
	"require": true, "requirements": true, "project": true, "business": true,
	"team": true, "services": true, "dynamic": true, "global": true, "based": true,
}

// englishStopWords filters candidate n-grams before ranking. This is the
// 318-word "english" stop list of the upstream vectorizer.
var englishStopWords = map[string]bool{
	"a": true, "about": true, "above": true, "across": true, "after": true,
	"afterwards": true, "again": true, "against": true, "all": true,
	"almost": true, "alone": true, "along": true, "already": true, "also": true,
	"although": true, "always": true, "am": true, "among": true,
	"amongst": true, "amoungst": true, "amount": true, "an": true, "and": true,
	"another": true, "any": true, "anyhow": true, "anyone": true,
	"anything": true, "anyway": true, "anywhere": true, "are": true,
	"around": true, "as": true, "at": true, "back": true, "be": true,
	"became": true, "because": true, "become": true, "becomes": true,
	"becoming": true, "been": true, "before": true, "beforehand": true,
	"behind": true, "being": true, "below": true, "beside": true,
	"besides": true, "between": true, "beyond": true, "bill": true,
	"both": true, "bottom": true, "but": true, "by": true, "call": true,
	"can": true, "cannot": true, "cant": true, "co": true, "con": true,
	"could": true, "couldnt": true, "cry": true, "de": true, "describe": true,
	"detail": true, "do": true, "done": true, "down": true, "due": true,
	"during": true, "each": true, "eg": true, "eight": true, "either": true,
	"eleven": true, "else": true, "elsewhere": true, "empty": true,
	"enough": true, "etc": true, "even": true, "ever": true, "every": true,
	"everyone": true, "everything": true, "everywhere": true, "except": true,
	"few": true, "fifteen": true, "fifty": true, "fill": true, "find": true,
	"fire": true, "first": true, "five": true, "for": true, "former": true,
	"formerly": true, "forty": true, "found": true, "four": true, "from": true,
	"front": true, "full": true, "further": true, "get": true, "give": true,
	"go": true, "had": true, "has": true, "hasnt": true, "have": true,
	"he": true, "hence": true, "her": true, "here": true, "hereafter": true,
	"hereby": true, "herein": true, "hereupon": true, "hers": true,
	"herself": true, "him": true, "himself": true, "his": true, "how": true,
	"however": true, "hundred": true, "i": true, "ie": true, "if": true,
	"in": true, "inc": true, "indeed": true, "interest": true, "into": true,
	"is": true, "it": true, "its": true, "itself": true, "keep": true,
	"last": true, "latter": true, "latterly": true, "least": true,
	"less": true, "ltd": true, "made": true, "many": true, "may": true,
	"me": true, "meanwhile": true, "might": true, "mill": true, "mine": true,
	"more": true, "moreover": true, "most": true, "mostly": true, "move": true,
	"much": true, "must": true, "my": true, "myself": true, "name": true,
	"namely": true, "neither": true, "never": true, "nevertheless": true,
	"next": true, "nine": true, "no": true, "nobody": true, "none": true,
	"noone": true, "nor": true, "not": true, "nothing": true, "now": true,
	"nowhere": true, "of": true, "off": true, "often": true, "on": true,
	"once": true, "one": true, "only": true, "onto": true, "or": true,
	"other": true, "others": true, "otherwise": true, "our": true,
	"ours": true, "ourselves": true, "out": true, "over": true, "own": true,
	"part": true, "per": true, "perhaps": true, "please": true, "put": true,
	"rather": true, "re": true, "same": true, "see": true, "seem": true,
	"seemed": true, "seeming": true, "seems": true, "serious": true,
	"several": true, "she": true, "should": true, "show": true, "side": true,
	"since": true, "sincere": true, "six": true, "sixty": true, "so": true,
	"some": true, "somehow": true, "someone": true, "something": true,
	"sometime": true, "sometimes": true, "somewhere": true, "still": true,
	"such": true, "system": true, "take": true, "ten": true, "than": true,
	"that": true, "the": true, "their": true, "them": true, "themselves": true,
	"then": true, "thence": true, "there": true, "thereafter": true,
	"thereby": true, "therefore": true, "therein": true, "thereupon": true,
	"these": true, "they": true, "thick": true, "thin": true, "third": true,
	"this": true, "those": true, "though": true, "three": true,
	"through": true, "throughout": true, "thru": true, "thus": true,
	"to": true, "together": true, "too": true, "top": true, "toward": true,
	"towards": true, "twelve": true, "twenty": true, "two": true, "un": true,
	"under": true, "until": true, "up": true, "upon": true, "us": true,
	"very": true, "via": true, "was": true, "we": true, "well": true,
	"were": true, "what": true, "whatever": true, "when": true, "whence": true,
	"whenever": true, "where": true, "whereafter": true, "whereas": true,
	"whereby": true, "wherein": true, "whereupon": true, "wherever": true,
	"whether": true, "which": true, "while": true, "whither": true,
	"who": true, "whoever": true, "whole": true, "whom": true, "whose": true,
	"why": true, "will": true, "with": true, "within": true, "without": true,
	"would": true, "yet": true, "you": true, "your": true, "yours": true,
	"yourself": true, "yourselves": true,
}

type rankedPhrase struct {
	phrase string
	score  float64
}

type keyphraseExtractor struct {
	gemini GeminiService
}

func NewKeyphraseExtractor(gemini GeminiService) KeyphraseExtractor {
	return &keyphraseExtractor{gemini: gemini}
}

// ExtractJDPhrases implements KeyphraseExtractor. Returns lowercase phrases in
// ranking order after filtering, at most topK of them. Malformed or empty text
// yields an empty list; only an embedding-provider fault produces an error.
func (k *keyphraseExtractor) ExtractJDPhrases(ctx context.Context, jdText string, topK int) ([]string, error) {
	doc := Normalize(jdText)
	if doc == "" {
		return nil, nil
	}

	ranked, err := k.rankPhrases(ctx, doc, topK)
	if err != nil {
		return nil, err
	}

	cleaned := make([]string, 0, len(ranked))
	seen := make(map[string]bool)
	for _, rp := range ranked {
		phrase := strings.TrimSpace(strings.ToLower(rp.phrase))
		if phrase == "" || len(phrase) < 3 {
			continue
		}
		if jdStopPhrases[phrase] || seen[phrase] {
			continue
		}
		if phraseHasStopWord(phrase) {
			continue
		}
		seen[phrase] = true
		cleaned = append(cleaned, phrase)
	}
	return cleaned, nil
}

func phraseHasStopWord(phrase string) bool {
	for _, tok := range strings.Fields(phrase) {
		if jdStopWords[tok] {
			return true
		}
	}
	return false
}

// rankPhrases generates 1-2 word candidates, scores them against the whole
// document, keeps the best candidate pool, and re-ranks with MMR for
// diversity.
func (k *keyphraseExtractor) rankPhrases(ctx context.Context, doc string, topN int) ([]rankedPhrase, error) {
	candidates := candidatePhrases(doc)
	if len(candidates) == 0 || topN <= 0 {
		return nil, nil
	}

	// One batch: document first, candidates after.
	texts := append([]string{strings.ToLower(doc)}, candidates...)
	vectors, err := k.gemini.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed keyphrase candidates: %w", err)
	}

	docVec := vectors[0]
	candVecs := vectors[1:]

	order := make([]int, len(candidates))
	relevance := make([]float64, len(candidates))
	for i := range candidates {
		order[i] = i
		relevance[i] = cosineSimilarity(docVec, candVecs[i])
	}
	sort.SliceStable(order, func(a, b int) bool {
		return relevance[order[a]] > relevance[order[b]]
	})
	if len(order) > keyphraseCandidatePool {
		order = order[:keyphraseCandidatePool]
	}

	return mmrSelect(order, relevance, candVecs, candidates, topN, keyphraseDiversity), nil
}

// mmrSelect applies maximal marginal relevance over the candidate pool:
// each pick maximizes (1-diversity)*relevance - diversity*max-similarity to
// the already selected phrases.
func mmrSelect(pool []int, relevance []float64, vecs [][]float32, phrases []string, topN int, diversity float64) []rankedPhrase {
	if topN > len(pool) {
		topN = len(pool)
	}

	selected := make([]int, 0, topN)
	remaining := append([]int(nil), pool...)

	for len(selected) < topN && len(remaining) > 0 {
		bestPos := 0
		bestVal := -1.0
		for pos, idx := range remaining {
			maxSim := 0.0
			for _, s := range selected {
				if sim := cosineSimilarity(vecs[idx], vecs[s]); sim > maxSim {
					maxSim = sim
				}
			}
			val := (1-diversity)*relevance[idx] - diversity*maxSim
			if len(selected) == 0 {
				val = relevance[idx]
			}
			if val > bestVal {
				bestVal = val
				bestPos = pos
			}
		}
		selected = append(selected, remaining[bestPos])
		remaining = append(remaining[:bestPos], remaining[bestPos+1:]...)
	}

	out := make([]rankedPhrase, 0, len(selected))
	for _, idx := range selected {
		out = append(out, rankedPhrase{phrase: phrases[idx], score: relevance[idx]})
	}
	return out
}

// candidatePhrases produces unique lowercase 1-2 word n-grams from the
// document, excluding English stop words, in first-occurrence order.
func candidatePhrases(doc string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		if len(w) >= 2 && !englishStopWords[w] {
			tokens = append(tokens, w)
		}
	}
	for _, r := range strings.ToLower(doc) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for i, tok := range tokens {
		add(tok)
		if i+1 < len(tokens) {
			add(tok + " " + tokens[i+1])
		}
	}
	return out
}
