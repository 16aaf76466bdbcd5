package match

import (
	"github.com/skovr/talentmatch/pkg/kernel"
)

// ============================================================================
// Request DTOs
// ============================================================================

// ScoreRequest - Score one stored candidate profile against a stored job profile
type ScoreRequest struct {
	JobID       kernel.ProfileID `json:"job_id" validate:"required"`
	CandidateID kernel.ProfileID `json:"candidate_id" validate:"required"`
}

// ScoreBatchRequest - Score many stored candidate profiles against one job,
// ranked by final score
type ScoreBatchRequest struct {
	JobID        kernel.ProfileID   `json:"job_id" validate:"required"`
	CandidateIDs []kernel.ProfileID `json:"candidate_ids" validate:"required,min=1"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// ScoreBatchResponse - Ranked results for a batch, best match first
type ScoreBatchResponse struct {
	JobID   kernel.ProfileID   `json:"job_id"`
	Results []Result           `json:"results"`
	Skipped []SkippedCandidate `json:"skipped,omitempty"`
}

// SkippedCandidate - A batch member that could not be scored, with the reason
type SkippedCandidate struct {
	CandidateID kernel.ProfileID `json:"candidate_id"`
	Reason      string           `json:"reason"`
}
