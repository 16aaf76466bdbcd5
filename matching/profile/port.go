package profile

import (
	"context"

	"github.com/skovr/talentmatch/pkg/kernel"
)

// Encoder maps text to a fixed-length vector. Implementations must be
// deterministic: identical input yields an identical vector.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
	Dimension() int
}

// KeywordExtractor ranks keyphrases for a cleaned document
type KeywordExtractor interface {
	Extract(ctx context.Context, text string) ([]string, error)
}

// TextExtractor converts a raw document into best-effort plain text
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte, fileType string) (string, error)
}

// Repository persists built profiles
type Repository interface {
	// Create stores a new profile
	Create(ctx context.Context, p *Profile) error

	// GetByID retrieves a profile by ID
	GetByID(ctx context.Context, id kernel.ProfileID) (*Profile, error)

	// GetByIDs retrieves several profiles at once, skipping missing IDs
	GetByIDs(ctx context.Context, ids []kernel.ProfileID) ([]*Profile, error)

	// List retrieves profiles with pagination, newest first
	List(ctx context.Context, kind Kind, pagination kernel.PaginationOptions) (*kernel.Paginated[Profile], error)

	// Delete removes a profile
	Delete(ctx context.Context, id kernel.ProfileID) error

	// SemanticSearch returns the profiles nearest to the query embedding
	SemanticSearch(ctx context.Context, embedding []float32, kind Kind, topK int) ([]SimilarProfile, error)
}
