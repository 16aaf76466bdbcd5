package profilesrv

import (
	"strings"
	"unicode"
)

// sectionHeaders are the phrases that introduce a skill/requirement listing.
// Checked case-insensitively as substrings, in order.
var sectionHeaders = []string{
	"requirements",
	"qualifications",
	"skills",
	"what we are looking for",
	"you will",
	"responsibilities",
}

const (
	// headingBoundaryMaxLen: a short all-uppercase line is treated as the
	// start of the next section
	headingBoundaryMaxLen = 50
	// fallbackLineCap bounds the whole-document fallback
	fallbackLineCap = 200
)

// LocateSkillSection finds the lines of the raw document most likely to hold
// a flat skill/requirement list. Job postings rarely carry consistent markup,
// so this is a layered-fallback heuristic rather than a structural parser.
func LocateSkillSection(raw string) []string {
	lines := splitTrimmedLines(raw)

	start := -1
	for i, line := range lines {
		if line == "" {
			continue
		}
		if containsSectionHeader(line) {
			start = i
			break
		}
	}

	if start >= 0 {
		block := collectSectionBlock(lines, start+1)

		// Bulleted or comma-separated lines are more likely a flat list
		var candidates []string
		for _, line := range block {
			if isBulleted(line) || strings.Contains(line, ",") {
				candidates = append(candidates, line)
			}
		}
		if len(candidates) > 0 {
			return candidates
		}
		return block
	}

	// No header anywhere: fall back to every bulleted line
	var bullets []string
	var nonEmpty []string
	for _, line := range lines {
		if line == "" {
			continue
		}
		nonEmpty = append(nonEmpty, line)
		if isBulleted(line) {
			bullets = append(bullets, line)
		}
	}
	if len(bullets) > 0 {
		return bullets
	}
	if len(nonEmpty) > fallbackLineCap {
		return nonEmpty[:fallbackLineCap]
	}
	return nonEmpty
}

// collectSectionBlock gathers lines after the header until a section boundary
func collectSectionBlock(lines []string, from int) []string {
	var block []string
	for i := from; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			break
		}
		if isHeadingBoundary(line) {
			break
		}
		if containsSectionHeader(line) {
			break
		}
		block = append(block, line)
	}
	return block
}

func splitTrimmedLines(raw string) []string {
	rawLines := strings.Split(raw, "\n")
	lines := make([]string, len(rawLines))
	for i, l := range rawLines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

func containsSectionHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, h := range sectionHeaders {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}

// isHeadingBoundary reports whether a line looks like the heading of the next
// section: short and entirely uppercase
func isHeadingBoundary(line string) bool {
	runes := []rune(line)
	if len(runes) >= headingBoundaryMaxLen {
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

func isBulleted(line string) bool {
	return strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*") ||
		strings.HasPrefix(line, "•")
}
