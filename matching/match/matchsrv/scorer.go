package matchsrv

import (
	"context"
	"sort"
	"strings"

	"github.com/skovr/talentmatch/matching/match"
	"github.com/skovr/talentmatch/matching/profile"
	"github.com/skovr/talentmatch/pkg/logx"
	"github.com/skovr/talentmatch/pkg/vecx"
)

// SkillOverlap compares two skill lists case-insensitively. Matched is the
// intersection, missing is what the required side lists and the offered side
// lacks, both sorted ascending for deterministic output.
func SkillOverlap(required, offered []string, w match.OverlapWeights) (matched, missing []string, score float64) {
	reqSet := skillSet(required)
	offSet := skillSet(offered)

	for skill := range reqSet {
		if _, ok := offSet[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	var recall float64
	if len(reqSet) > 0 {
		recall = float64(len(matched)) / float64(len(reqSet))
	}
	precision := float64(len(matched)) / float64(max(1, len(offSet)))

	score = w.Recall*recall + w.Precision*precision
	return matched, missing, score
}

// EmbeddingScore is the cosine similarity of two full-profile embeddings.
// A missing embedding on either side scores 0 rather than failing.
func EmbeddingScore(a, b []float32) float64 {
	return vecx.Cosine(a, b)
}

// Scorer computes explainable match results. Immutable after construction,
// safe for concurrent use.
type Scorer struct {
	encoder        profile.Encoder
	weights        match.Weights
	overlapWeights match.OverlapWeights
}

// NewScorer validates the weight blends and builds a scorer
func NewScorer(encoder profile.Encoder, weights match.Weights, overlapWeights match.OverlapWeights) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if err := overlapWeights.Validate(); err != nil {
		return nil, err
	}

	return &Scorer{
		encoder:        encoder,
		weights:        weights,
		overlapWeights: overlapWeights,
	}, nil
}

// Score compares a candidate profile against a job profile. Missing
// embeddings or responsibilities degrade the affected component to 0, the
// call itself never fails.
func (s *Scorer) Score(ctx context.Context, job, candidate *profile.Profile) match.Result {
	matched, missing, skillScore := SkillOverlap(job.Skills, candidate.Skills, s.overlapWeights)
	embeddingScore := EmbeddingScore(job.Embedding, candidate.Embedding)
	respScore := s.responsibilityScore(ctx, job, candidate)

	return match.Result{
		JobID:               job.ID,
		CandidateID:         candidate.ID,
		MatchedSkills:       matched,
		MissingSkills:       missing,
		SkillScore:          skillScore,
		EmbeddingScore:      embeddingScore,
		ResponsibilityScore: respScore,
		FinalScore: s.weights.Skill*skillScore +
			s.weights.Embedding*embeddingScore +
			s.weights.Responsibility*respScore,
	}
}

// responsibilityScore embeds each side's joined responsibility sentences and
// compares them. Zero when either side has none or encoding fails.
func (s *Scorer) responsibilityScore(ctx context.Context, job, candidate *profile.Profile) float64 {
	if !job.HasResponsibilities() || !candidate.HasResponsibilities() {
		return 0
	}

	jobVec, err := s.encoder.Encode(ctx, job.JoinedResponsibilities())
	if err != nil {
		logx.Warnf("Responsibility embedding failed for job %s, scoring component as 0: %v", job.ID, err)
		return 0
	}
	candVec, err := s.encoder.Encode(ctx, candidate.JoinedResponsibilities())
	if err != nil {
		logx.Warnf("Responsibility embedding failed for candidate %s, scoring component as 0: %v", candidate.ID, err)
		return 0
	}

	return vecx.Cosine(jobVec, candVec)
}

func skillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	return set
}
