package keywords

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

// stopwords excluded from phrase boundaries. Candidates may not start or end
// with one, so "machine learning" survives while "of learning" does not.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "by": {},
	"for": {}, "from": {}, "has": {}, "have": {}, "in": {}, "is": {}, "it": {}, "its": {},
	"of": {}, "on": {}, "or": {}, "our": {}, "that": {}, "the": {}, "their": {}, "this": {},
	"to": {}, "was": {}, "we": {}, "were": {}, "will": {}, "with": {}, "you": {}, "your": {},
}

var wordPattern = regexp.MustCompile(`[a-z0-9][a-z0-9+#.\-]*`)

const (
	defaultMaxPhrases = 12
	// bigramBonus favors two-word phrases over their parts; a bigram carries
	// more meaning than either word alone
	bigramBonus = 2.0
	minWordLen  = 2
)

// Ranker extracts the top keyphrases of a document by term frequency, with a
// bonus for two-word phrases. Deterministic: identical input yields an
// identical ranking.
type Ranker struct {
	maxPhrases int
}

// NewRanker creates a keyphrase ranker returning at most maxPhrases phrases
func NewRanker(maxPhrases int) *Ranker {
	if maxPhrases <= 0 {
		maxPhrases = defaultMaxPhrases
	}
	return &Ranker{maxPhrases: maxPhrases}
}

type candidate struct {
	phrase   string
	score    float64
	firstPos int
}

// Extract returns the ranked keyphrases of the text, best first
func (r *Ranker) Extract(_ context.Context, text string) ([]string, error) {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]*candidate)
	bump := func(phrase string, pos int, weight float64) {
		c, ok := counts[phrase]
		if !ok {
			counts[phrase] = &candidate{phrase: phrase, score: weight, firstPos: pos}
			return
		}
		c.score += weight
	}

	for i, w := range words {
		if !isCandidateWord(w) {
			continue
		}
		bump(w, i, 1)

		if i+1 < len(words) && isCandidateWord(words[i+1]) {
			bump(w+" "+words[i+1], i, bigramBonus)
		}
	}

	ranked := make([]*candidate, 0, len(counts))
	for _, c := range counts {
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].score != ranked[b].score {
			return ranked[a].score > ranked[b].score
		}
		if ranked[a].firstPos != ranked[b].firstPos {
			return ranked[a].firstPos < ranked[b].firstPos
		}
		return ranked[a].phrase < ranked[b].phrase
	})

	n := min(r.maxPhrases, len(ranked))
	phrases := make([]string, 0, n)
	for _, c := range ranked[:n] {
		phrases = append(phrases, c.phrase)
	}
	return phrases, nil
}

func isCandidateWord(w string) bool {
	if len(w) < minWordLen {
		return false
	}
	_, stop := stopwords[w]
	return !stop
}
