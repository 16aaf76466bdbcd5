package matchsrv

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skovr/talentmatch/matching/match"
	"github.com/skovr/talentmatch/matching/profile"
	"github.com/skovr/talentmatch/pkg/errx"
	"github.com/skovr/talentmatch/pkg/kernel"
)

type fakeRepo struct {
	profiles map[kernel.ProfileID]*profile.Profile
}

func newFakeRepo(profiles ...*profile.Profile) *fakeRepo {
	f := &fakeRepo{profiles: make(map[kernel.ProfileID]*profile.Profile)}
	for _, p := range profiles {
		f.profiles[p.ID] = p
	}
	return f
}

func (f *fakeRepo) Create(_ context.Context, p *profile.Profile) error {
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id kernel.ProfileID) (*profile.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, profile.ErrProfileNotFound().WithDetail("profile_id", id.String())
	}
	return p, nil
}

func (f *fakeRepo) GetByIDs(_ context.Context, ids []kernel.ProfileID) ([]*profile.Profile, error) {
	var out []*profile.Profile
	for _, id := range ids {
		if p, ok := f.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) List(_ context.Context, _ profile.Kind, pg kernel.PaginationOptions) (*kernel.Paginated[profile.Profile], error) {
	n := pg.Normalize()
	out := kernel.NewPaginated([]profile.Profile{}, n.Page, n.PageSize, 0)
	return &out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id kernel.ProfileID) error {
	delete(f.profiles, id)
	return nil
}

func (f *fakeRepo) SemanticSearch(_ context.Context, _ []float32, _ profile.Kind, _ int) ([]profile.SimilarProfile, error) {
	return nil, nil
}

func jobProfile() *profile.Profile {
	return &profile.Profile{
		ID:     "job-1",
		Kind:   profile.KindJob,
		Skills: []string{"python", "aws", "docker"},
	}
}

func candidateProfile(id kernel.ProfileID, skills ...string) *profile.Profile {
	return &profile.Profile{
		ID:     id,
		Kind:   profile.KindResume,
		Skills: skills,
	}
}

func newTestService(t *testing.T, repo profile.Repository) *Service {
	t.Helper()
	scorer := testScorer(t, &stubEncoder{fallback: []float32{1, 0, 0}})
	return NewService(repo, scorer, 4, 0)
}

func TestServiceScore(t *testing.T) {
	repo := newFakeRepo(jobProfile(), candidateProfile("cand-1", "python", "docker", "sql"))
	svc := newTestService(t, repo)

	r, err := svc.Score(context.Background(), match.ScoreRequest{JobID: "job-1", CandidateID: "cand-1"})
	require.NoError(t, err)

	assert.Equal(t, kernel.ProfileID("job-1"), r.JobID)
	assert.Equal(t, kernel.ProfileID("cand-1"), r.CandidateID)
	assert.Equal(t, []string{"docker", "python"}, r.MatchedSkills)
	assert.Equal(t, []string{"aws"}, r.MissingSkills)
}

func TestServiceScoreMissingProfile(t *testing.T) {
	svc := newTestService(t, newFakeRepo(jobProfile()))

	_, err := svc.Score(context.Background(), match.ScoreRequest{JobID: "job-1", CandidateID: "ghost"})

	var e *errx.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, profile.CodeProfileNotFound, e.Code)
}

func TestServiceScoreBatchRanksDeterministically(t *testing.T) {
	repo := newFakeRepo(
		jobProfile(),
		candidateProfile("cand-weak", "python"),
		candidateProfile("cand-b", "python", "docker"),
		candidateProfile("cand-a", "python", "docker"),
		candidateProfile("cand-strong", "python", "aws", "docker"),
	)
	svc := newTestService(t, repo)

	req := match.ScoreBatchRequest{
		JobID:        "job-1",
		CandidateIDs: []kernel.ProfileID{"cand-weak", "cand-b", "cand-a", "cand-strong"},
	}

	first, err := svc.ScoreBatch(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.ScoreBatch(context.Background(), req)
	require.NoError(t, err)

	var order []kernel.ProfileID
	for _, r := range first.Results {
		order = append(order, r.CandidateID)
	}

	// Best first, equal scores tie-broken by candidate ID
	assert.Equal(t, []kernel.ProfileID{"cand-strong", "cand-a", "cand-b", "cand-weak"}, order)
	assert.Equal(t, first.Results, second.Results)
}

func TestServiceScoreBatchSkipsMissingCandidates(t *testing.T) {
	repo := newFakeRepo(jobProfile(), candidateProfile("cand-1", "python"))
	svc := newTestService(t, repo)

	resp, err := svc.ScoreBatch(context.Background(), match.ScoreBatchRequest{
		JobID:        "job-1",
		CandidateIDs: []kernel.ProfileID{"cand-1", "ghost-2", "ghost-1"},
	})
	require.NoError(t, err)

	assert.Len(t, resp.Results, 1)
	require.Len(t, resp.Skipped, 2)
	assert.Equal(t, kernel.ProfileID("ghost-1"), resp.Skipped[0].CandidateID)
	assert.Equal(t, kernel.ProfileID("ghost-2"), resp.Skipped[1].CandidateID)
}

func TestServiceScoreBatchEmpty(t *testing.T) {
	svc := newTestService(t, newFakeRepo(jobProfile()))

	_, err := svc.ScoreBatch(context.Background(), match.ScoreBatchRequest{JobID: "job-1"})

	var e *errx.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, match.CodeEmptyBatch, e.Code)
}

func TestServiceScoreBatchTooLarge(t *testing.T) {
	svc := newTestService(t, newFakeRepo(jobProfile()))

	ids := make([]kernel.ProfileID, MaxBatchSize+1)
	for i := range ids {
		ids[i] = kernel.NewProfileID(fmt.Sprintf("cand-%d", i))
	}

	_, err := svc.ScoreBatch(context.Background(), match.ScoreBatchRequest{JobID: "job-1", CandidateIDs: ids})

	var e *errx.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, match.CodeBatchTooLarge, e.Code)
}

func TestServiceScoreBatchDeduplicatesCandidates(t *testing.T) {
	repo := newFakeRepo(jobProfile(), candidateProfile("cand-1", "python"))
	svc := newTestService(t, repo)

	resp, err := svc.ScoreBatch(context.Background(), match.ScoreBatchRequest{
		JobID:        "job-1",
		CandidateIDs: []kernel.ProfileID{"cand-1", "cand-1", "cand-1"},
	})
	require.NoError(t, err)

	assert.Len(t, resp.Results, 1)
}
