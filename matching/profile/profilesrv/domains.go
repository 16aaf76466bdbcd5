package profilesrv

import (
	"context"
	"fmt"

	"github.com/skovr/talentmatch/matching/profile"
	"github.com/skovr/talentmatch/pkg/vecx"
)

// DefaultDomainThreshold is the tuned minimum similarity for a domain label;
// below it the text is considered domain-neutral and classified General.
const DefaultDomainThreshold = 0.42

// domainPrototypes are the fixed reference texts anchoring each topical
// cluster. Their embeddings are computed once at startup and shared read-only.
var domainPrototypes = []struct {
	domain profile.Domain
	text   string
}{
	{profile.DomainFinance, "fintech banking payments commerce transactions credit cards"},
	{profile.DomainAI, "machine learning nlp deep learning neural networks"},
	{profile.DomainCloud, "aws azure gcp cloud devops kubernetes infrastructure"},
	{profile.DomainHealthcare, "hospital healthcare medical clinical patient"},
	{profile.DomainSecurity, "cyber security vulnerabilities encryption risk"},
}

// DomainClassifier assigns a domain label by nearest-prototype comparison.
// Immutable after construction, safe for concurrent use.
type DomainClassifier struct {
	domains   []profile.Domain
	vectors   [][]float32
	threshold float64
}

// NewDomainClassifier embeds the five domain prototypes through the encoder.
// Call once at startup, before any concurrent classification.
func NewDomainClassifier(ctx context.Context, enc profile.Encoder, threshold float64) (*DomainClassifier, error) {
	if threshold <= 0 {
		threshold = DefaultDomainThreshold
	}

	c := &DomainClassifier{
		domains:   make([]profile.Domain, 0, len(domainPrototypes)),
		vectors:   make([][]float32, 0, len(domainPrototypes)),
		threshold: threshold,
	}

	for _, proto := range domainPrototypes {
		vec, err := enc.Encode(ctx, proto.text)
		if err != nil {
			return nil, fmt.Errorf("embed domain prototype %q: %w", proto.domain, err)
		}
		c.domains = append(c.domains, proto.domain)
		c.vectors = append(c.vectors, vec)
	}

	return c, nil
}

// Classify returns the nearest domain for a document embedding, or General
// when the best similarity falls under the threshold or the embedding is
// missing.
func (c *DomainClassifier) Classify(embedding []float32) profile.Domain {
	if len(embedding) == 0 {
		return profile.DomainGeneral
	}

	best := profile.DomainGeneral
	bestSim := -1.0
	for i, vec := range c.vectors {
		sim := vecx.Cosine(vec, embedding)
		if sim > bestSim {
			bestSim = sim
			best = c.domains[i]
		}
	}

	if bestSim <= c.threshold {
		return profile.DomainGeneral
	}
	return best
}
