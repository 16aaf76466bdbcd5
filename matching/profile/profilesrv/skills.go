package profilesrv

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/skovr/talentmatch/matching/profile"
)

// techHints anchor the skill extractor: a token counts as technology-like
// when it contains one of these as a substring
var techHints = []string{
	"python", "java", "javascript", "c++", "c#", "react", "angular", "node", "django", "flask",
	"aws", "azure", "gcp", "sql", "nosql", "docker", "kubernetes", "rest", "api", "android", "ios",
	"html", "css", "swift", "ui", "ux", "sdk", "objective", "tensorflow", "pytorch",
}

// skillStopwords are generic posting filler that the token pattern would
// otherwise pick up
var skillStopwords = map[string]struct{}{
	"experience": {}, "preferred": {}, "year": {}, "years": {}, "ability": {}, "knowledge": {},
	"team": {}, "work": {}, "candidate": {}, "company": {}, "including": {}, "role": {}, "intern": {},
}

var (
	// skillToken matches one or two words of letters/digits/+/#/./-
	skillToken = regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9+#.\-]{1,40}(?: [A-Za-z0-9+#.\-]{1,40})?\b`)
	// listSplitter approximates list items: commas, slashes, semicolons and
	// the literal word "and"
	listSplitter = regexp.MustCompile(`(?i)[,/;]| and `)
)

const (
	maxSkillTokenWords = 6
	maxAcronymLen      = 5
	// looseLineMaxLen bounds the whole-document retry to list-like lines
	looseLineMaxLen = 140
)

// ExtractSkills mines technology-like tokens from candidate lines, keeping
// first-seen casing, de-duplicating case-insensitively and capping the result.
func ExtractSkills(lines []string) []string {
	var found []string
	for _, line := range lines {
		for _, part := range listSplitter.Split(line, -1) {
			for _, tok := range skillToken.FindAllString(part, -1) {
				tok = strings.TrimSpace(tok)
				if _, stop := skillStopwords[strings.ToLower(tok)]; stop {
					continue
				}
				if len(strings.Fields(tok)) > maxSkillTokenWords {
					continue
				}
				if isTechLike(tok) {
					found = append(found, tok)
				}
			}
		}
	}

	seen := make(map[string]struct{}, len(found))
	final := make([]string, 0, len(found))
	for _, s := range found {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		final = append(final, s)
		if len(final) == profile.MaxSkills {
			break
		}
	}
	return final
}

// LooseDocumentLines returns every short non-empty line of the raw document,
// the wider net used when the located section yields no skills.
func LooseDocumentLines(raw string) []string {
	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		l = strings.TrimSpace(l)
		if l != "" && len([]rune(l)) < looseLineMaxLen {
			lines = append(lines, l)
		}
	}
	return lines
}

// isTechLike keeps tokens containing a technology hint, plus short
// all-uppercase acronyms (SQL, ETL, CI)
func isTechLike(tok string) bool {
	lower := strings.ToLower(tok)
	for _, h := range techHints {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return isAcronym(tok)
}

func isAcronym(tok string) bool {
	runes := []rune(tok)
	if len(runes) > maxAcronymLen {
		return false
	}

	hasLetter := false
	for _, r := range runes {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// TechStack filters skills down to those with an explicit technology hint,
// falling back to the first six skills when nothing qualifies.
func TechStack(skills []string) []string {
	var stack []string
	for _, s := range skills {
		lower := strings.ToLower(s)
		for _, h := range techHints {
			if strings.Contains(lower, h) {
				stack = append(stack, s)
				break
			}
		}
	}
	if len(stack) > 0 {
		return stack
	}
	if len(skills) > 6 {
		return skills[:6]
	}
	return skills
}
