package profilesrv

import (
	"strings"
	"unicode"
)

// actionVerbs mark duty-describing sentences
var actionVerbs = []string{
	"work", "design", "build", "develop", "maintain", "lead", "manage", "implement",
	"coordinate", "analyze", "optimize", "test", "debug", "collaborate", "deploy",
	"monitor", "research", "create", "integrate", "drive", "participate", "support",
}

// boilerplateDenylist drops marketing sentences that pass the verb filter
var boilerplateDenylist = []string{
	"visa is the world's leader",
	"we are not a bank",
	"we are a global team",
	"financial literacy",
	"digital commerce to millions",
}

const (
	minResponsibilityLen = 25
	maxResponsibilityLen = 220
)

// ExtractResponsibilities mines duty-describing sentences from the raw text,
// de-duplicated by exact value in first-seen order.
func ExtractResponsibilities(raw string) []string {
	var kept []string
	for _, sent := range splitSentences(raw) {
		s := strings.TrimSpace(sent)
		n := len([]rune(s))
		if n < minResponsibilityLen || n > maxResponsibilityLen {
			continue
		}

		lower := strings.ToLower(s)
		if strings.Contains(lower, "you will") {
			kept = append(kept, s)
			continue
		}
		if containsActionVerb(lower) {
			kept = append(kept, s)
		}
	}

	seen := make(map[string]struct{}, len(kept))
	var out []string
	for _, s := range kept {
		if isBoilerplate(s) {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// splitSentences cuts the text at whitespace runs that follow a period or a
// newline, the closest approximation of sentence boundaries noisy extracted
// text supports.
func splitSentences(raw string) []string {
	var sents []string
	var b strings.Builder

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		b.WriteRune(r)
		if (r == '.' || r == '\n') && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			sents = append(sents, b.String())
			b.Reset()
			for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				i++
			}
		}
	}
	if b.Len() > 0 {
		sents = append(sents, b.String())
	}
	return sents
}

func containsActionVerb(lower string) bool {
	for _, v := range actionVerbs {
		if strings.Contains(lower, v) {
			return true
		}
	}
	return false
}

func isBoilerplate(s string) bool {
	lower := strings.ToLower(s)
	for _, bad := range boilerplateDenylist {
		if strings.Contains(lower, bad) {
			return true
		}
	}
	return false
}
