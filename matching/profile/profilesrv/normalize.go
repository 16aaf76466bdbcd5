package profilesrv

import (
	"regexp"
	"strings"
)

var (
	lineBreakReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
	whitespaceRun     = regexp.MustCompile(`\s+`)
)

// Normalize collapses newlines and whitespace runs into single spaces and
// trims the result. Whole-document analyses (domain, keywords, embedding)
// operate on this single-line form.
func Normalize(raw string) string {
	flat := lineBreakReplacer.Replace(raw)
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(flat, " "))
}
