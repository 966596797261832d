package catalog

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Score scale, lower is closer: 0 phrase containment, 1 two or more query
// tokens matched exactly, 2 one token matched, 3 fuzzy/prefix token match
// only. Anything at or above searchCutoff is rejected.
const (
	searchCutoff = 4
	noMatch      = 1 << 30
)

// typo tolerance in edits for token-level fuzzy matching
const maxEditDistance = 2

// Search fuzzy-searches the per-language knowledge index and returns the top
// hit, or nil when no item clears the acceptance cutoff. The two language
// indexes are independent so answers never bleed across languages.
func (s *Store) Search(query, lang string) *KnowledgeItem {
	items := s.knowledge[lang]
	if len(items) == 0 {
		items = s.knowledge["en"]
	}

	var best *KnowledgeItem
	bestScore := searchCutoff
	for i := range items {
		item := &items[i]
		score := scoreItem(query, item)
		if score < bestScore {
			bestScore = score
			best = item
		}
	}
	if best == nil {
		return nil
	}
	item := *best
	return &item
}

func scoreItem(query string, item *KnowledgeItem) int {
	phrases := make([]string, 0, len(item.Questions)+len(item.Tags)+1)
	phrases = append(phrases, item.Questions...)
	phrases = append(phrases, item.Tags...)
	if item.Category != "" {
		phrases = append(phrases, item.Category)
	}

	score := scoreAny(query, phrases)

	// The answer text participates only via whole-phrase containment; token
	// matching against long answers drowns the variant signal in noise.
	if score > 0 {
		nq := normalize(query)
		if len(nq) >= 6 && strings.Contains(normalize(item.Answer), nq) {
			score = 1
		}
	}
	return score
}

// scoreAny scores free text against a set of candidate phrases describing one
// item. Candidates are alternatives, so exact token matches are counted
// across all of them.
func scoreAny(query string, phrases []string) int {
	nq := normalize(query)
	if nq == "" {
		return noMatch
	}
	qTokens := contentTokens(nq)

	matched := make(map[string]bool)
	fuzzyHit := false

	for _, phrase := range phrases {
		np := normalize(phrase)
		if np == "" {
			continue
		}
		if strings.Contains(nq, np) || strings.Contains(np, nq) {
			return 0
		}
		for _, ct := range contentTokens(np) {
			for _, qt := range qTokens {
				if qt == ct {
					matched[qt] = true
					continue
				}
				if fuzzyHit || len(qt) < 4 || len(ct) < 4 {
					continue
				}
				if strings.HasPrefix(ct, qt) || strings.HasPrefix(qt, ct) {
					fuzzyHit = true
					continue
				}
				if r := fuzzy.RankMatchNormalizedFold(qt, ct); r >= 0 && r <= maxEditDistance {
					fuzzyHit = true
					continue
				}
				if fuzzy.LevenshteinDistance(qt, ct) <= maxEditDistance {
					fuzzyHit = true
				}
			}
		}
	}

	switch {
	case len(matched) >= 2:
		return 1
	case len(matched) == 1:
		return 2
	case fuzzyHit:
		return 3
	default:
		return noMatch
	}
}

// stopwords are excluded from token matching in both languages; without this,
// filler words like "what" or "que" make every FAQ look like a hit.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "at": true, "be": true,
	"can": true, "do": true, "does": true, "for": true, "how": true, "i": true,
	"in": true, "is": true, "it": true, "me": true, "my": true, "of": true,
	"on": true, "or": true, "the": true, "to": true, "we": true, "what": true,
	"when": true, "will": true, "you": true, "your": true,
	"con": true, "cual": true, "cuál": true, "de": true, "el": true, "en": true,
	"es": true, "la": true, "las": true, "lo": true, "los": true, "mi": true,
	"o": true, "para": true, "por": true, "que": true, "qué": true, "se": true,
	"su": true, "un": true, "una": true, "y": true,
}

func contentTokens(normalized string) []string {
	fields := strings.Fields(normalized)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if !stopwords[f] {
			out = append(out, f)
		}
	}
	return out
}

// normalize lowercases and strips punctuation so phrase containment survives
// question marks and commas.
func normalize(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, " ")
}
