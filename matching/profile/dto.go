package profile

import (
	"time"

	"github.com/skovr/talentmatch/pkg/kernel"
)

// ============================================================================
// Request DTOs
// ============================================================================

// BuildProfileRequest - Build a profile from already-extracted plain text
type BuildProfileRequest struct {
	RawText string `json:"raw_text" validate:"required"`
	Kind    Kind   `json:"kind" validate:"required,oneof=job resume"`
}

// BuildDocumentProfileRequest - Build a profile from a stored document
type BuildDocumentProfileRequest struct {
	FilePath string `json:"file_path" validate:"required"`
	FileType string `json:"file_type" validate:"required,oneof=pdf txt"`
	Kind     Kind   `json:"kind" validate:"required,oneof=job resume"`
}

// ListProfilesRequest - List stored profiles
type ListProfilesRequest struct {
	Kind       Kind                     `json:"kind,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// SearchProfilesRequest - Semantic similarity search over stored profiles
type SearchProfilesRequest struct {
	Query string `json:"query" validate:"required"`
	Kind  Kind   `json:"kind,omitempty"`
	TopK  int    `json:"top_k" validate:"min=1,max=100"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// ProfileResponse - Full structured profile
type ProfileResponse struct {
	ID               kernel.ProfileID `json:"id"`
	Kind             Kind             `json:"kind"`
	CandidateName    string           `json:"candidate_name,omitempty"`
	CleanedText      string           `json:"cleaned_text"`
	Skills           []string         `json:"skills"`
	TechStack        []string         `json:"tech_stack"`
	Responsibilities []string         `json:"responsibilities"`
	Seniority        Seniority        `json:"seniority_level"`
	Domain           Domain           `json:"domain"`
	Location         string           `json:"location"`
	Keywords         []string         `json:"keywords"`
	EmbeddingDim     int              `json:"embedding_dim"`
	CreatedAt        time.Time        `json:"created_at"`
}

// ProfileSummaryResponse - Lightweight profile view for lists and search hits
type ProfileSummaryResponse struct {
	ID            kernel.ProfileID `json:"id"`
	Kind          Kind             `json:"kind"`
	CandidateName string           `json:"candidate_name,omitempty"`
	Seniority     Seniority        `json:"seniority_level"`
	Domain        Domain           `json:"domain"`
	Location      string           `json:"location"`
	TopSkills     []string         `json:"top_skills"`
	CreatedAt     time.Time        `json:"created_at"`
}

// SimilarProfile - A search hit with its similarity score
type SimilarProfile struct {
	Profile    Profile `json:"profile"`
	Similarity float64 `json:"similarity"`
}

// SearchProfilesResponse - Results from semantic search
type SearchProfilesResponse struct {
	Query   string                    `json:"query"`
	Results []ProfileSimilarityResult `json:"results"`
}

// ProfileSimilarityResult - Summary plus similarity for API responses
type ProfileSimilarityResult struct {
	Profile    ProfileSummaryResponse `json:"profile"`
	Similarity float64                `json:"similarity"`
}

// ============================================================================
// Mappers
// ============================================================================

// ToProfileResponse converts a Profile to its full response DTO
func ToProfileResponse(p *Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:               p.ID,
		Kind:             p.Kind,
		CandidateName:    p.CandidateName,
		CleanedText:      p.CleanedText,
		Skills:           p.Skills,
		TechStack:        p.TechStack,
		Responsibilities: p.Responsibilities,
		Seniority:        p.Seniority,
		Domain:           p.Domain,
		Location:         p.Location,
		Keywords:         p.Keywords,
		EmbeddingDim:     len(p.Embedding),
		CreatedAt:        p.CreatedAt,
	}
}

// ToProfileSummaryResponse converts a Profile to its summary DTO
func ToProfileSummaryResponse(p *Profile) *ProfileSummaryResponse {
	topSkills := p.Skills
	if len(topSkills) > 10 {
		topSkills = topSkills[:10]
	}

	return &ProfileSummaryResponse{
		ID:            p.ID,
		Kind:          p.Kind,
		CandidateName: p.CandidateName,
		Seniority:     p.Seniority,
		Domain:        p.Domain,
		Location:      p.Location,
		TopSkills:     topSkills,
		CreatedAt:     p.CreatedAt,
	}
}

// ToSearchProfilesResponse converts search hits to the API response
func ToSearchProfilesResponse(query string, hits []SimilarProfile) *SearchProfilesResponse {
	results := make([]ProfileSimilarityResult, len(hits))
	for i, hit := range hits {
		p := hit.Profile
		results[i] = ProfileSimilarityResult{
			Profile:    *ToProfileSummaryResponse(&p),
			Similarity: hit.Similarity,
		}
	}

	return &SearchProfilesResponse{
		Query:   query,
		Results: results,
	}
}
