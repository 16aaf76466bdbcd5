package profilesrv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skovr/talentmatch/matching/profile"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf and lf collapse", "Senior Engineer\r\nBerlin\noffice", "Senior Engineer Berlin office"},
		{"whitespace runs collapse", "too   many\t\tspaces", "too many spaces"},
		{"trimmed", "  padded  ", "padded"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestLocateSkillSectionPrefersBulletedBlock(t *testing.T) {
	raw := "About us\nWe build things.\n\nRequirements:\n- Python, Django\n- Docker and Kubernetes\nSome prose in the same block\n\nBenefits\nFree coffee"

	lines := LocateSkillSection(raw)

	assert.Equal(t, []string{"- Python, Django", "- Docker and Kubernetes"}, lines)
}

func TestLocateSkillSectionStopsAtUppercaseHeading(t *testing.T) {
	raw := "Qualifications\nPython and SQL\nBENEFITS\nFree coffee, snacks"

	lines := LocateSkillSection(raw)

	assert.Equal(t, []string{"Python and SQL"}, lines)
}

func TestLocateSkillSectionFallsBackToBullets(t *testing.T) {
	raw := "A posting with no header anywhere.\n- Python\n- AWS\nClosing prose."

	lines := LocateSkillSection(raw)

	assert.Equal(t, []string{"- Python", "- AWS"}, lines)
}

func TestLocateSkillSectionFallsBackToAllLines(t *testing.T) {
	raw := "No header here.\nJust prose lines.\nNothing bulleted."

	lines := LocateSkillSection(raw)

	assert.Len(t, lines, 3)
}

func TestExtractSkills(t *testing.T) {
	lines := []string{
		"- Python, Django, REST APIs",
		"- Docker and Kubernetes",
		"- SQL / NoSQL databases",
		"- 3 years experience preferred",
	}

	skills := ExtractSkills(lines)

	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "Django")
	assert.Contains(t, skills, "Docker")
	assert.Contains(t, skills, "Kubernetes")
	assert.Contains(t, skills, "SQL")
	assert.NotContains(t, skills, "experience")
	assert.NotContains(t, skills, "preferred")
}

func TestExtractSkillsDedupKeepsFirstCasing(t *testing.T) {
	skills := ExtractSkills([]string{"Python, PYTHON, python"})

	assert.Equal(t, []string{"Python"}, skills)
}

func TestExtractSkillsCapped(t *testing.T) {
	var lines []string
	for i := 0; i < profile.MaxSkills+20; i++ {
		lines = append(lines, "skill"+strings.Repeat("x", i%5)+"-python")
	}

	skills := ExtractSkills(lines)

	assert.LessOrEqual(t, len(skills), profile.MaxSkills)
}

func TestLooseDocumentLines(t *testing.T) {
	raw := "short line\n\n" + strings.Repeat("x", 200) + "\nanother"

	lines := LooseDocumentLines(raw)

	assert.Equal(t, []string{"short line", "another"}, lines)
}

func TestTechStack(t *testing.T) {
	t.Run("keeps hint-bearing skills", func(t *testing.T) {
		stack := TechStack([]string{"Python", "ETL", "Docker", "CRM"})
		assert.Equal(t, []string{"Python", "Docker"}, stack)
	})

	t.Run("falls back to first six", func(t *testing.T) {
		skills := []string{"A1", "A2", "A3", "A4", "A5", "A6", "A7"}
		stack := TechStack(skills)
		assert.Equal(t, skills[:6], stack)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, TechStack(nil))
	})
}

func TestExtractResponsibilities(t *testing.T) {
	raw := "You will build scalable data pipelines for analytics teams. " +
		"Design and maintain the payment reconciliation service. " +
		"Too short. " +
		strings.Repeat("design ", 40) + ". " +
		"Visa is the world's leader in digital payments and we design everything."

	resps := ExtractResponsibilities(raw)

	assert.Contains(t, resps, "You will build scalable data pipelines for analytics teams.")
	assert.Contains(t, resps, "Design and maintain the payment reconciliation service.")
	for _, r := range resps {
		n := len([]rune(r))
		assert.GreaterOrEqual(t, n, 25)
		assert.LessOrEqual(t, n, 220)
		assert.NotContains(t, strings.ToLower(r), "visa is the world's leader")
	}
}

func TestExtractResponsibilitiesDedup(t *testing.T) {
	sentence := "You will collaborate with product managers daily."
	raw := sentence + " " + sentence

	resps := ExtractResponsibilities(raw)

	assert.Equal(t, []string{sentence}, resps)
}

func TestClassifySeniority(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want profile.Seniority
	}{
		{"intern wins over senior mention", "The intern reports to a senior engineer", profile.SeniorityIntern},
		{"senior", "Senior Backend Engineer", profile.SenioritySenior},
		{"lead counts as senior", "Tech Lead, Platform", profile.SenioritySenior},
		{"mid", "Mid-level developer wanted", profile.SeniorityMid},
		{"junior", "Junior developer position", profile.SeniorityJunior},
		{"entry level", "Entry level role in QA", profile.SeniorityJunior},
		{"unmarked", "Backend Engineer", profile.SeniorityNotSpecified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySeniority(tt.raw))
		})
	}
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"explicit pattern beats remote", "Location: Berlin. This role is fully remote.", "Berlin"},
		{"based in", "We are based in singapore. Great team.", "Singapore"},
		{"city gazetteer", "Our office in Bangalore is hiring", "Bangalore"},
		{"country gazetteer", "Anywhere in Germany works for us", "Germany"},
		{"remote only", "This is a fully remote position", profile.LocationRemote},
		{"nothing", "A role on a great team", profile.LocationNotSpecified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractLocation(Normalize(tt.in)))
		})
	}
}
