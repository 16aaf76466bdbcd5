package profilesrv

import (
	"strings"

	"github.com/skovr/talentmatch/matching/profile"
)

// seniorityRules resolve in priority order. Intern comes first on purpose:
// internship postings routinely mention the senior engineers the intern will
// be mentored by, and must not classify as Senior.
var seniorityRules = []struct {
	terms []string
	level profile.Seniority
}{
	{[]string{"intern"}, profile.SeniorityIntern},
	{[]string{"senior", "sr.", "lead", "principal", "staff"}, profile.SenioritySenior},
	{[]string{"mid", "intermediate"}, profile.SeniorityMid},
	{[]string{"junior", "entry level"}, profile.SeniorityJunior},
}

// ClassifySeniority assigns the single seniority label for the raw text
func ClassifySeniority(raw string) profile.Seniority {
	lower := strings.ToLower(raw)
	for _, rule := range seniorityRules {
		for _, term := range rule.terms {
			if strings.Contains(lower, term) {
				return rule.level
			}
		}
	}
	return profile.SeniorityNotSpecified
}
