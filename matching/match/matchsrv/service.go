package matchsrv

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/skovr/talentmatch/matching/match"
	"github.com/skovr/talentmatch/matching/profile"
	"github.com/skovr/talentmatch/pkg/kernel"
	"github.com/skovr/talentmatch/pkg/logx"
)

const (
	// DefaultWorkers bounds concurrent scoring against the embedding backend
	DefaultWorkers = 8
	// DefaultCandidateTimeout caps one candidate's scoring; on expiry the
	// candidate still gets a result with degraded embedding components
	DefaultCandidateTimeout = 30 * time.Second
	// MaxBatchSize caps one batch request
	MaxBatchSize = 500
)

// Service scores stored profiles against each other
type Service struct {
	repo    profile.Repository
	scorer  *Scorer
	workers int
	timeout time.Duration
}

// NewService creates a match service. Non-positive workers or timeout fall
// back to the defaults.
func NewService(repo profile.Repository, scorer *Scorer, workers int, timeout time.Duration) *Service {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if timeout <= 0 {
		timeout = DefaultCandidateTimeout
	}

	return &Service{
		repo:    repo,
		scorer:  scorer,
		workers: workers,
		timeout: timeout,
	}
}

// Score compares one stored candidate profile against one stored job profile
func (s *Service) Score(ctx context.Context, req match.ScoreRequest) (*match.Result, error) {
	job, err := s.repo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	candidate, err := s.repo.GetByID(ctx, req.CandidateID)
	if err != nil {
		return nil, err
	}

	result := s.scorer.Score(ctx, job, candidate)
	return &result, nil
}

// ScoreBatch scores every candidate against the job and ranks the results.
// Candidates are scored concurrently; one slow or failing candidate never
// affects its siblings. The ranking is deterministic: final score descending,
// ties broken by candidate ID ascending.
func (s *Service) ScoreBatch(ctx context.Context, req match.ScoreBatchRequest) (*match.ScoreBatchResponse, error) {
	if len(req.CandidateIDs) == 0 {
		return nil, match.ErrEmptyBatch().WithDetail("job_id", req.JobID.String())
	}
	if len(req.CandidateIDs) > MaxBatchSize {
		return nil, match.ErrBatchTooLarge().
			WithDetail("size", len(req.CandidateIDs)).
			WithDetail("max_size", MaxBatchSize)
	}

	job, err := s.repo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.repo.GetByIDs(ctx, uniqueIDs(req.CandidateIDs))
	if err != nil {
		return nil, err
	}

	found := make(map[kernel.ProfileID]struct{}, len(candidates))
	for _, c := range candidates {
		found[c.ID] = struct{}{}
	}
	var skipped []match.SkippedCandidate
	for _, id := range uniqueIDs(req.CandidateIDs) {
		if _, ok := found[id]; !ok {
			skipped = append(skipped, match.SkippedCandidate{
				CandidateID: id,
				Reason:      "profile not found",
			})
		}
	}

	results := make([]match.Result, len(candidates))
	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup
	for i, candidate := range candidates {
		wg.Add(1)
		go func(i int, candidate *profile.Profile) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			cctx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()
			results[i] = s.scorer.Score(cctx, job, candidate)
		}(i, candidate)
	}
	wg.Wait()

	sort.Slice(results, func(a, b int) bool {
		if results[a].FinalScore != results[b].FinalScore {
			return results[a].FinalScore > results[b].FinalScore
		}
		return results[a].CandidateID < results[b].CandidateID
	})
	sort.Slice(skipped, func(a, b int) bool {
		return skipped[a].CandidateID < skipped[b].CandidateID
	})

	logx.Infof("Scored batch for job %s: %d ranked, %d skipped", req.JobID, len(results), len(skipped))
	return &match.ScoreBatchResponse{
		JobID:   req.JobID,
		Results: results,
		Skipped: skipped,
	}, nil
}

func uniqueIDs(ids []kernel.ProfileID) []kernel.ProfileID {
	seen := make(map[kernel.ProfileID]struct{}, len(ids))
	out := make([]kernel.ProfileID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
