package profileinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"

	"github.com/skovr/talentmatch/matching/profile"
	"github.com/skovr/talentmatch/pkg/kernel"
)

// PostgresProfileRepository persists structured profiles with their
// embeddings in a pgvector-enabled Postgres
type PostgresProfileRepository struct {
	db *sqlx.DB
}

func NewPostgresProfileRepository(db *sqlx.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `
	id, kind, candidate_name, cleaned_text,
	skills, tech_stack, responsibilities,
	seniority_level, domain, location, keywords,
	embedding::text AS embedding, created_at`

// ============================================================================
// Row Mapping
// ============================================================================

type profileRow struct {
	ID               string         `db:"id"`
	Kind             string         `db:"kind"`
	CandidateName    sql.NullString `db:"candidate_name"`
	CleanedText      string         `db:"cleaned_text"`
	Skills           []byte         `db:"skills"`
	TechStack        []byte         `db:"tech_stack"`
	Responsibilities []byte         `db:"responsibilities"`
	Seniority        string         `db:"seniority_level"`
	Domain           string         `db:"domain"`
	Location         string         `db:"location"`
	Keywords         []byte         `db:"keywords"`
	Embedding        sql.NullString `db:"embedding"`
	CreatedAt        time.Time      `db:"created_at"`
}

func (row *profileRow) ToDomain() (*profile.Profile, error) {
	p := &profile.Profile{
		ID:            kernel.NewProfileID(row.ID),
		Kind:          profile.Kind(row.Kind),
		CandidateName: row.CandidateName.String,
		CleanedText:   row.CleanedText,
		Seniority:     profile.Seniority(row.Seniority),
		Domain:        profile.Domain(row.Domain),
		Location:      row.Location,
		CreatedAt:     row.CreatedAt,
	}

	for _, field := range []struct {
		raw  []byte
		dest *[]string
	}{
		{row.Skills, &p.Skills},
		{row.TechStack, &p.TechStack},
		{row.Responsibilities, &p.Responsibilities},
		{row.Keywords, &p.Keywords},
	} {
		if len(field.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(field.raw, field.dest); err != nil {
			return nil, err
		}
	}

	if row.Embedding.Valid {
		p.Embedding = parseVector(row.Embedding.String)
	}

	return p, nil
}

// ============================================================================
// CRUD Operations
// ============================================================================

// Create stores a new profile
func (r *PostgresProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (
			id, kind, candidate_name, cleaned_text,
			skills, tech_stack, responsibilities,
			seniority_level, domain, location, keywords,
			embedding, created_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10, $11,
			$12, $13
		)`

	skills, err := json.Marshal(p.Skills)
	if err != nil {
		return profile.ErrInvalidProfileData().
			WithDetail("field", "skills").
			WithDetail("error", err.Error())
	}
	techStack, err := json.Marshal(p.TechStack)
	if err != nil {
		return profile.ErrInvalidProfileData().
			WithDetail("field", "tech_stack").
			WithDetail("error", err.Error())
	}
	responsibilities, err := json.Marshal(p.Responsibilities)
	if err != nil {
		return profile.ErrInvalidProfileData().
			WithDetail("field", "responsibilities").
			WithDetail("error", err.Error())
	}
	keywords, err := json.Marshal(p.Keywords)
	if err != nil {
		return profile.ErrInvalidProfileData().
			WithDetail("field", "keywords").
			WithDetail("error", err.Error())
	}

	_, err = r.db.ExecContext(ctx, query,
		p.ID, p.Kind, nullIfEmpty(p.CandidateName), p.CleanedText,
		skills, techStack, responsibilities,
		p.Seniority, p.Domain, p.Location, keywords,
		vectorOrNil(p.Embedding), p.CreatedAt,
	)
	if err != nil {
		// Check for duplicate key error
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return profile.ErrProfileAlreadyExists().
				WithDetail("profile_id", p.ID)
		}
		return profile.ErrRegistry.NewWithCause(profile.CodeStorageFailed, err).
			WithDetail("profile_id", p.ID).
			WithDetail("operation", "insert")
	}

	return nil
}

// GetByID retrieves a profile by ID
func (r *PostgresProfileRepository) GetByID(ctx context.Context, id kernel.ProfileID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	row := &profileRow{}
	err := r.db.GetContext(ctx, row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, profile.ErrProfileNotFound().
				WithDetail("profile_id", id)
		}
		return nil, profile.ErrRegistry.NewWithCause(profile.CodeStorageFailed, err).
			WithDetail("profile_id", id).
			WithDetail("operation", "get")
	}

	p, err := row.ToDomain()
	if err != nil {
		return nil, profile.ErrInvalidProfileData().
			WithDetail("profile_id", id).
			WithDetail("error", err.Error())
	}
	return p, nil
}

// GetByIDs retrieves several profiles at once, skipping missing IDs
func (r *PostgresProfileRepository) GetByIDs(ctx context.Context, ids []kernel.ProfileID) ([]*profile.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ANY($1) ORDER BY id`

	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}

	rows := []profileRow{}
	err := r.db.SelectContext(ctx, &rows, query, pq.Array(strIDs))
	if err != nil {
		return nil, profile.ErrRegistry.NewWithCause(profile.CodeStorageFailed, err).
			WithDetail("operation", "get_by_ids").
			WithDetail("count", len(ids))
	}

	profiles := make([]*profile.Profile, 0, len(rows))
	for i := range rows {
		p, err := rows[i].ToDomain()
		if err != nil {
			return nil, profile.ErrInvalidProfileData().
				WithDetail("profile_id", rows[i].ID).
				WithDetail("error", err.Error())
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// List retrieves profiles with pagination, newest first. An empty kind lists
// both jobs and resumes.
func (r *PostgresProfileRepository) List(ctx context.Context, kind profile.Kind, pagination kernel.PaginationOptions) (*kernel.Paginated[profile.Profile], error) {
	pagination = pagination.Normalize()

	countQuery := `SELECT COUNT(*) FROM profiles WHERE ($1 = '' OR kind = $1)`
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, kind); err != nil {
		return nil, profile.ErrRegistry.NewWithCause(profile.CodeStorageFailed, err).
			WithDetail("operation", "count")
	}

	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE ($1 = '' OR kind = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows := []profileRow{}
	err := r.db.SelectContext(ctx, &rows, query, kind, pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, profile.ErrRegistry.NewWithCause(profile.CodeStorageFailed, err).
			WithDetail("operation", "list").
			WithDetails(map[string]any{
				"page":      pagination.Page,
				"page_size": pagination.PageSize,
			})
	}

	profiles := make([]profile.Profile, len(rows))
	for i := range rows {
		p, err := rows[i].ToDomain()
		if err != nil {
			return nil, profile.ErrInvalidProfileData().
				WithDetail("profile_id", rows[i].ID).
				WithDetail("error", err.Error())
		}
		profiles[i] = *p
	}

	out := kernel.NewPaginated(profiles, pagination.Page, pagination.PageSize, total)
	return &out, nil
}

// Delete removes a profile
func (r *PostgresProfileRepository) Delete(ctx context.Context, id kernel.ProfileID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return profile.ErrRegistry.NewWithCause(profile.CodeStorageFailed, err).
			WithDetail("profile_id", id).
			WithDetail("operation", "delete")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return profile.ErrRegistry.NewWithCause(profile.CodeStorageFailed, err).
			WithDetail("profile_id", id)
	}
	if rows == 0 {
		return profile.ErrProfileNotFound().
			WithDetail("profile_id", id)
	}

	return nil
}

// ============================================================================
// Semantic Search with pgvector
// ============================================================================

type searchRow struct {
	profileRow
	Similarity float64 `db:"similarity"`
}

// SemanticSearch returns the profiles nearest to the query embedding by
// cosine similarity, best first
func (r *PostgresProfileRepository) SemanticSearch(ctx context.Context, embedding []float32, kind profile.Kind, topK int) ([]profile.SimilarProfile, error) {
	query := `
		SELECT ` + profileColumns + `,
			1 - (embedding <=> $1) AS similarity
		FROM profiles
		WHERE embedding IS NOT NULL
			AND ($2 = '' OR kind = $2)
		ORDER BY embedding <=> $1
		LIMIT $3`

	rows := []searchRow{}
	err := r.db.SelectContext(ctx, &rows, query, pgvector.NewVector(embedding), kind, topK)
	if err != nil {
		return nil, profile.ErrRegistry.NewWithCause(profile.CodeSearchFailed, err).
			WithDetail("operation", "semantic_search").
			WithDetail("top_k", topK)
	}

	results := make([]profile.SimilarProfile, 0, len(rows))
	for i := range rows {
		p, err := rows[i].ToDomain()
		if err != nil {
			return nil, profile.ErrInvalidProfileData().
				WithDetail("profile_id", rows[i].ID).
				WithDetail("error", err.Error())
		}
		results = append(results, profile.SimilarProfile{
			Profile:    *p,
			Similarity: rows[i].Similarity,
		})
	}
	return results, nil
}

// ============================================================================
// pgvector Conversion Helpers
// ============================================================================

func vectorOrNil(embedding []float32) interface{} {
	if len(embedding) == 0 {
		return nil
	}
	return pgvector.NewVector(embedding)
}

// parseVector converts the pgvector text form ([1.0,2.0,3.0]) to []float32
func parseVector(vectorStr string) []float32 {
	if vectorStr == "" || vectorStr == "[]" {
		return nil
	}

	vec := pgvector.Vector{}
	if err := vec.Scan(vectorStr); err != nil {
		return nil
	}
	return vec.Slice()
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
