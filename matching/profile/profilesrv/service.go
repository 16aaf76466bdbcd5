package profilesrv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skovr/talentmatch/matching/profile"
	"github.com/skovr/talentmatch/pkg/fsx"
	"github.com/skovr/talentmatch/pkg/kernel"
	"github.com/skovr/talentmatch/pkg/logx"
)

const maxCandidateNameLen = 80

// Service builds structured profiles from raw document text
type Service struct {
	repo       profile.Repository
	encoder    profile.Encoder
	keywords   profile.KeywordExtractor
	extractor  profile.TextExtractor
	fileReader fsx.FileReader
	domains    *DomainClassifier
}

// NewService creates a new profile service
func NewService(
	repo profile.Repository,
	encoder profile.Encoder,
	keywords profile.KeywordExtractor,
	extractor profile.TextExtractor,
	fileReader fsx.FileReader,
	domains *DomainClassifier,
) *Service {
	return &Service{
		repo:       repo,
		encoder:    encoder,
		keywords:   keywords,
		extractor:  extractor,
		fileReader: fileReader,
		domains:    domains,
	}
}

// ============================================================================
// Extraction Pipeline
// ============================================================================

// Extract runs the full pipeline over raw text and assembles a profile. It is
// a pure transformation apart from the encoder and keyword capabilities;
// failures of either degrade the profile instead of failing the call.
func (s *Service) Extract(ctx context.Context, rawText string, kind profile.Kind) (*profile.Profile, error) {
	if len([]rune(strings.TrimSpace(rawText))) < profile.MinReadableChars {
		return nil, profile.ErrNoReadableText().
			WithDetail("length", len(strings.TrimSpace(rawText))).
			WithDetail("min_length", profile.MinReadableChars)
	}

	cleaned := Normalize(rawText)

	skills := ExtractSkills(LocateSkillSection(rawText))
	if len(skills) == 0 {
		// Wider net: every short line of the whole document
		skills = ExtractSkills(LooseDocumentLines(rawText))
	}

	p := &profile.Profile{
		Kind:             kind,
		CleanedText:      cleaned,
		Skills:           skills,
		TechStack:        TechStack(skills),
		Responsibilities: ExtractResponsibilities(rawText),
		Seniority:        ClassifySeniority(rawText),
		Location:         ExtractLocation(cleaned),
		CreatedAt:        time.Now(),
	}

	if kind == profile.KindResume {
		p.CandidateName = guessCandidateName(cleaned)
	}

	embedding, err := s.encoder.Encode(ctx, cleaned)
	if err != nil {
		logx.Warnf("Embedding failed, building partial profile: %v", err)
		embedding = nil
	}
	p.Embedding = embedding
	p.Domain = s.domains.Classify(embedding)

	keywords, err := s.keywords.Extract(ctx, cleaned)
	if err != nil {
		logx.Warnf("Keyword extraction failed, building partial profile: %v", err)
		keywords = nil
	}
	if len(keywords) > profile.MaxKeywords {
		keywords = keywords[:profile.MaxKeywords]
	}
	p.Keywords = keywords

	return p, nil
}

// BuildProfile extracts a profile from raw text and persists it
func (s *Service) BuildProfile(ctx context.Context, req profile.BuildProfileRequest) (*profile.ProfileResponse, error) {
	p, err := s.Extract(ctx, req.RawText, req.Kind)
	if err != nil {
		return nil, err
	}

	p.ID = kernel.NewProfileID(uuid.NewString())
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	logx.Infof("Built %s profile %s: %d skills, %d responsibilities, domain=%s",
		p.Kind, p.ID, len(p.Skills), len(p.Responsibilities), p.Domain)
	return profile.ToProfileResponse(p), nil
}

// BuildFromDocument reads a stored document, extracts its text and builds a
// profile from it
func (s *Service) BuildFromDocument(ctx context.Context, req profile.BuildDocumentProfileRequest) (*profile.ProfileResponse, error) {
	data, err := s.fileReader.ReadFile(ctx, req.FilePath)
	if err != nil {
		return nil, profile.ErrFileReadFailed().
			WithDetail("file_path", req.FilePath).
			WithDetail("error", err.Error())
	}

	rawText, err := s.extractor.ExtractText(ctx, data, req.FileType)
	if err != nil {
		return nil, profile.ErrTextExtractionFailed().
			WithDetail("file_path", req.FilePath).
			WithDetail("file_type", req.FileType).
			WithDetail("error", err.Error())
	}

	return s.BuildProfile(ctx, profile.BuildProfileRequest{
		RawText: rawText,
		Kind:    req.Kind,
	})
}

// ============================================================================
// Stored Profile Operations
// ============================================================================

// GetProfile retrieves a stored profile by ID
func (s *Service) GetProfile(ctx context.Context, id kernel.ProfileID) (*profile.ProfileResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return profile.ToProfileResponse(p), nil
}

// ListProfiles lists stored profiles with pagination
func (s *Service) ListProfiles(ctx context.Context, req profile.ListProfilesRequest) (*kernel.Paginated[profile.ProfileSummaryResponse], error) {
	paginated, err := s.repo.List(ctx, req.Kind, req.Pagination)
	if err != nil {
		return nil, err
	}

	summaries := make([]profile.ProfileSummaryResponse, len(paginated.Items))
	for i := range paginated.Items {
		summaries[i] = *profile.ToProfileSummaryResponse(&paginated.Items[i])
	}

	out := kernel.NewPaginated(summaries, paginated.Page.Number, paginated.Page.Size, paginated.Page.Total)
	return &out, nil
}

// DeleteProfile removes a stored profile
func (s *Service) DeleteProfile(ctx context.Context, id kernel.ProfileID) error {
	return s.repo.Delete(ctx, id)
}

// SearchProfiles runs a semantic similarity search over stored profiles
func (s *Service) SearchProfiles(ctx context.Context, req profile.SearchProfilesRequest) (*profile.SearchProfilesResponse, error) {
	embedding, err := s.encoder.Encode(ctx, Normalize(req.Query))
	if err != nil {
		return nil, profile.ErrSearchFailed().
			WithDetail("query", req.Query).
			WithDetail("error", err.Error())
	}

	topK := req.TopK
	if topK <= 0 {
		topK = 10
	}

	hits, err := s.repo.SemanticSearch(ctx, embedding, req.Kind, topK)
	if err != nil {
		return nil, err
	}

	return profile.ToSearchProfilesResponse(req.Query, hits), nil
}

// guessCandidateName takes the first sentence of the cleaned text, capped to
// a plausible name/headline length
func guessCandidateName(cleaned string) string {
	name := cleaned
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[:idx]
	}
	runes := []rune(name)
	if len(runes) > maxCandidateNameLen {
		runes = runes[:maxCandidateNameLen]
	}
	return strings.TrimSpace(string(runes))
}
