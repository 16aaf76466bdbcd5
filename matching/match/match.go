package match

import (
	"math"

	"github.com/skovr/talentmatch/pkg/kernel"
)

// weightTolerance absorbs float noise when validating that weights sum to 1
const weightTolerance = 1e-9

// Weights blend the three component scores into the final score. Skill
// overlap dominates because it is the directly verifiable signal.
type Weights struct {
	Skill          float64 `json:"skill"`
	Embedding      float64 `json:"embedding"`
	Responsibility float64 `json:"responsibility"`
}

// DefaultWeights returns the tuned production blend
func DefaultWeights() Weights {
	return Weights{
		Skill:          0.55,
		Embedding:      0.30,
		Responsibility: 0.15,
	}
}

// Validate checks that all weights are non-negative and sum to 1
func (w Weights) Validate() error {
	if w.Skill < 0 || w.Embedding < 0 || w.Responsibility < 0 {
		return ErrInvalidWeights().WithDetail("reason", "negative weight")
	}
	if math.Abs(w.Skill+w.Embedding+w.Responsibility-1) > weightTolerance {
		return ErrInvalidWeights().
			WithDetail("reason", "weights must sum to 1").
			WithDetail("sum", w.Skill+w.Embedding+w.Responsibility)
	}
	return nil
}

// OverlapWeights blend recall and precision inside the skill score. Recall is
// weighted higher: failing to cover a required skill hurts more than carrying
// extra unrelated ones.
type OverlapWeights struct {
	Recall    float64 `json:"recall"`
	Precision float64 `json:"precision"`
}

// DefaultOverlapWeights returns the tuned recall/precision blend
func DefaultOverlapWeights() OverlapWeights {
	return OverlapWeights{
		Recall:    0.6,
		Precision: 0.4,
	}
}

// Validate checks that both weights are non-negative and sum to 1
func (w OverlapWeights) Validate() error {
	if w.Recall < 0 || w.Precision < 0 {
		return ErrInvalidWeights().WithDetail("reason", "negative weight")
	}
	if math.Abs(w.Recall+w.Precision-1) > weightTolerance {
		return ErrInvalidWeights().
			WithDetail("reason", "weights must sum to 1").
			WithDetail("sum", w.Recall+w.Precision)
	}
	return nil
}

// Result is the immutable outcome of scoring one candidate profile against
// one job profile
type Result struct {
	JobID               kernel.ProfileID `json:"job_id,omitempty"`
	CandidateID         kernel.ProfileID `json:"candidate_id,omitempty"`
	MatchedSkills       []string         `json:"matched_skills"`
	MissingSkills       []string         `json:"missing_skills"`
	SkillScore          float64          `json:"skill_score"`
	EmbeddingScore      float64          `json:"embedding_score"`
	ResponsibilityScore float64          `json:"responsibility_score"`
	FinalScore          float64          `json:"final_score"`
}
