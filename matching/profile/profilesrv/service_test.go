package profilesrv

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skovr/talentmatch/matching/profile"
	"github.com/skovr/talentmatch/pkg/errx"
	"github.com/skovr/talentmatch/pkg/kernel"
)

const jobPosting = `Senior Backend Engineer

Requirements:
- Python, Django, PostgreSQL
- AWS, Docker and Kubernetes

You will build and maintain payment services for our merchants.

Location: Berlin`

type stubKeywords struct {
	words []string
	err   error
}

func (s *stubKeywords) Extract(_ context.Context, _ string) ([]string, error) {
	return s.words, s.err
}

type fakeRepo struct {
	profiles  map[kernel.ProfileID]*profile.Profile
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{profiles: make(map[kernel.ProfileID]*profile.Profile)}
}

func (f *fakeRepo) Create(_ context.Context, p *profile.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
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
	var items []profile.Profile
	for _, p := range f.profiles {
		items = append(items, *p)
	}
	n := pg.Normalize()
	out := kernel.NewPaginated(items, n.Page, n.PageSize, len(items))
	return &out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id kernel.ProfileID) error {
	delete(f.profiles, id)
	return nil
}

func (f *fakeRepo) SemanticSearch(_ context.Context, _ []float32, _ profile.Kind, _ int) ([]profile.SimilarProfile, error) {
	return nil, nil
}

func newTestService(t *testing.T, enc profile.Encoder, kw profile.KeywordExtractor, repo profile.Repository) *Service {
	t.Helper()
	domains, err := NewDomainClassifier(context.Background(), prototypeEncoder(), 0)
	require.NoError(t, err)
	return NewService(repo, enc, kw, nil, nil, domains)
}

func TestExtractJobPosting(t *testing.T) {
	enc := prototypeEncoder()
	enc.fallback = []float32{1, 0, 0, 0, 0}
	svc := newTestService(t, enc, &stubKeywords{words: []string{"payment services", "backend"}}, nil)

	p, err := svc.Extract(context.Background(), jobPosting, profile.KindJob)
	require.NoError(t, err)

	assert.Equal(t, profile.KindJob, p.Kind)
	assert.Empty(t, p.CandidateName)
	for _, want := range []string{"Python", "Django", "PostgreSQL", "Docker", "Kubernetes", "AWS"} {
		assert.Contains(t, p.Skills, want)
	}
	assert.Equal(t, []string{"You will build and maintain payment services for our merchants."}, p.Responsibilities)
	assert.Equal(t, profile.SenioritySenior, p.Seniority)
	assert.Equal(t, "Berlin", p.Location)
	assert.Equal(t, profile.DomainFinance, p.Domain)
	assert.Equal(t, []string{"payment services", "backend"}, p.Keywords)
	assert.NotEmpty(t, p.TechStack)
	assert.True(t, p.HasEmbedding())
}

func TestExtractResumeGetsCandidateName(t *testing.T) {
	svc := newTestService(t, prototypeEncoder(), &stubKeywords{}, nil)
	raw := "Jane Smith. Backend engineer with Python and Docker experience in Berlin."

	p, err := svc.Extract(context.Background(), raw, profile.KindResume)
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", p.CandidateName)
}

func TestExtractCandidateNameCapped(t *testing.T) {
	svc := newTestService(t, prototypeEncoder(), &stubKeywords{}, nil)
	raw := "A headline with no period that keeps going and going far beyond the length anyone would call a name"

	p, err := svc.Extract(context.Background(), raw, profile.KindResume)
	require.NoError(t, err)

	assert.LessOrEqual(t, len([]rune(p.CandidateName)), 80)
	assert.NotEmpty(t, p.CandidateName)
}

func TestExtractRejectsUnreadableText(t *testing.T) {
	svc := newTestService(t, prototypeEncoder(), &stubKeywords{}, nil)

	for _, raw := range []string{"", "   \n\t  ", "too short"} {
		_, err := svc.Extract(context.Background(), raw, profile.KindJob)
		require.Error(t, err)

		var e *errx.Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, profile.CodeNoReadableText, e.Code)
		assert.Equal(t, errx.TypeValidation, e.Type)
	}
}

func TestExtractDegradesOnEncoderFailure(t *testing.T) {
	enc := &stubEncoder{err: errors.New("embeddings api down")}
	svc := newTestService(t, enc, &stubKeywords{words: []string{"backend"}}, nil)

	p, err := svc.Extract(context.Background(), jobPosting, profile.KindJob)
	require.NoError(t, err)

	assert.False(t, p.HasEmbedding())
	assert.Equal(t, profile.DomainGeneral, p.Domain)
	assert.NotEmpty(t, p.Skills)
}

func TestExtractDegradesOnKeywordFailure(t *testing.T) {
	svc := newTestService(t, prototypeEncoder(), &stubKeywords{err: errors.New("ranker failed")}, nil)

	p, err := svc.Extract(context.Background(), jobPosting, profile.KindJob)
	require.NoError(t, err)

	assert.Empty(t, p.Keywords)
	assert.NotEmpty(t, p.Skills)
}

func TestExtractCapsKeywords(t *testing.T) {
	var many []string
	for i := 0; i < profile.MaxKeywords+8; i++ {
		many = append(many, fmt.Sprintf("keyword-%d", i))
	}
	svc := newTestService(t, prototypeEncoder(), &stubKeywords{words: many}, nil)

	p, err := svc.Extract(context.Background(), jobPosting, profile.KindJob)
	require.NoError(t, err)

	assert.Len(t, p.Keywords, profile.MaxKeywords)
}

func TestExtractSkillsRetryOnShortLines(t *testing.T) {
	svc := newTestService(t, prototypeEncoder(), &stubKeywords{}, nil)
	// The located section holds no technology tokens, skills only appear in
	// loose lines outside it
	raw := "Qualifications:\nGreat communication talent\n\nPython, Docker"

	p, err := svc.Extract(context.Background(), raw, profile.KindJob)
	require.NoError(t, err)

	assert.Contains(t, p.Skills, "Python")
	assert.Contains(t, p.Skills, "Docker")
}

func TestBuildProfilePersists(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, prototypeEncoder(), &stubKeywords{}, repo)

	resp, err := svc.BuildProfile(context.Background(), profile.BuildProfileRequest{
		RawText: jobPosting,
		Kind:    profile.KindJob,
	})
	require.NoError(t, err)

	assert.False(t, resp.ID.IsEmpty())
	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.Skills, stored.Skills)
}

func TestBuildProfilePropagatesRepoError(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = profile.ErrStorageFailed()
	svc := newTestService(t, prototypeEncoder(), &stubKeywords{}, repo)

	_, err := svc.BuildProfile(context.Background(), profile.BuildProfileRequest{
		RawText: jobPosting,
		Kind:    profile.KindJob,
	})

	assert.ErrorIs(t, err, profile.ErrStorageFailed())
}

func TestGetProfileNotFound(t *testing.T) {
	svc := newTestService(t, prototypeEncoder(), &stubKeywords{}, newFakeRepo())

	_, err := svc.GetProfile(context.Background(), kernel.NewProfileID("missing"))

	var e *errx.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, profile.CodeProfileNotFound, e.Code)
}

func TestDeleteProfile(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, prototypeEncoder(), &stubKeywords{}, repo)

	resp, err := svc.BuildProfile(context.Background(), profile.BuildProfileRequest{
		RawText: jobPosting,
		Kind:    profile.KindJob,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProfile(context.Background(), resp.ID))
	_, err = repo.GetByID(context.Background(), resp.ID)
	assert.Error(t, err)
}
