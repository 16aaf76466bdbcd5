package profile

import (
	"strings"
	"time"

	"github.com/skovr/talentmatch/pkg/kernel"
)

// Kind distinguishes which side of a match a profile describes
type Kind string

const (
	KindJob    Kind = "job"
	KindResume Kind = "resume"
)

// Seniority is the single-label seniority classification
type Seniority string

const (
	SeniorityIntern       Seniority = "Intern"
	SeniorityJunior       Seniority = "Junior"
	SeniorityMid          Seniority = "Mid"
	SenioritySenior       Seniority = "Senior"
	SeniorityNotSpecified Seniority = "Not Specified"
)

// Domain is the topical cluster assigned by nearest-prototype classification
type Domain string

const (
	DomainFinance    Domain = "Finance"
	DomainAI         Domain = "AI"
	DomainCloud      Domain = "Cloud"
	DomainHealthcare Domain = "Healthcare"
	DomainSecurity   Domain = "Security"
	DomainGeneral    Domain = "General"
)

// Location sentinels used when no concrete location is found
const (
	LocationNotSpecified = "Not Specified"
	LocationRemote       = "Remote"
)

const (
	// MaxSkills caps the extracted skill list
	MaxSkills = 50
	// MaxKeywords caps the ranked keyword list
	MaxKeywords = 12
	// MinReadableChars is the minimum trimmed length for a document to be accepted
	MinReadableChars = 10
)

// Profile is the structured record extracted from one document
type Profile struct {
	ID   kernel.ProfileID `db:"id" json:"id"`
	Kind Kind             `db:"kind" json:"kind"`

	// CandidateName is a heuristic guess, only meaningful for resumes
	CandidateName string `db:"candidate_name" json:"candidate_name,omitempty"`

	CleanedText      string    `db:"cleaned_text" json:"cleaned_text"`
	Skills           []string  `db:"skills" json:"skills"`
	TechStack        []string  `db:"tech_stack" json:"tech_stack"`
	Responsibilities []string  `db:"responsibilities" json:"responsibilities"`
	Seniority        Seniority `db:"seniority_level" json:"seniority_level"`
	Domain           Domain    `db:"domain" json:"domain"`
	Location         string    `db:"location" json:"location"`
	Keywords         []string  `db:"keywords" json:"keywords"`
	Embedding        []float32 `db:"embedding" json:"embedding"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// HasEmbedding reports whether the encoder produced a vector for this profile
func (p *Profile) HasEmbedding() bool {
	return len(p.Embedding) > 0
}

// HasSkills reports whether any skills were extracted
func (p *Profile) HasSkills() bool {
	return len(p.Skills) > 0
}

// HasResponsibilities reports whether any duty sentences were extracted
func (p *Profile) HasResponsibilities() bool {
	return len(p.Responsibilities) > 0
}

// SkillSet returns the skills keyed by lower-cased form for overlap comparison
func (p *Profile) SkillSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}

// JoinedResponsibilities concatenates the duty sentences for embedding
func (p *Profile) JoinedResponsibilities() string {
	return strings.Join(p.Responsibilities, " ")
}
