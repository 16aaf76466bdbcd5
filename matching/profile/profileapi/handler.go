package profileapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skovr/talentmatch/matching/auth"
	"github.com/skovr/talentmatch/matching/profile"
	"github.com/skovr/talentmatch/matching/profile/profilesrv"
	"github.com/skovr/talentmatch/pkg/kernel"
)

// Handlers provides HTTP handlers for profile operations
type Handlers struct {
	service *profilesrv.Service
}

// NewHandlers creates a new profile handlers instance
func NewHandlers(service *profilesrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// BuildProfile builds a structured profile from raw text
// POST /api/profiles
func (h *Handlers) BuildProfile(c *fiber.Ctx) error {
	var req profile.BuildProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return profile.ErrInvalidProfileData().WithDetail("parse_error", err.Error())
	}
	if req.Kind != profile.KindJob && req.Kind != profile.KindResume {
		return profile.ErrInvalidProfileData().
			WithDetail("field", "kind").
			WithDetail("value", req.Kind)
	}

	resp, err := h.service.BuildProfile(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// BuildFromDocument builds a structured profile from a stored document
// POST /api/profiles/document
func (h *Handlers) BuildFromDocument(c *fiber.Ctx) error {
	var req profile.BuildDocumentProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return profile.ErrInvalidProfileData().WithDetail("parse_error", err.Error())
	}
	if req.FilePath == "" {
		return profile.ErrInvalidProfileData().WithDetail("field", "file_path")
	}
	if req.Kind != profile.KindJob && req.Kind != profile.KindResume {
		return profile.ErrInvalidProfileData().
			WithDetail("field", "kind").
			WithDetail("value", req.Kind)
	}

	resp, err := h.service.BuildFromDocument(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetProfile retrieves a stored profile by ID
// GET /api/profiles/:id
func (h *Handlers) GetProfile(c *fiber.Ctx) error {
	profileID := kernel.ProfileID(c.Params("id"))
	if profileID.IsEmpty() {
		return profile.ErrProfileNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetProfile(c.Context(), profileID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListProfiles lists stored profiles with pagination
// GET /api/profiles?kind=job&page=1&page_size=20
func (h *Handlers) ListProfiles(c *fiber.Ctx) error {
	req := profile.ListProfilesRequest{
		Kind:       profile.Kind(c.Query("kind")),
		Pagination: parsePaginationOptions(c),
	}

	resp, err := h.service.ListProfiles(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// DeleteProfile removes a stored profile
// DELETE /api/profiles/:id
func (h *Handlers) DeleteProfile(c *fiber.Ctx) error {
	profileID := kernel.ProfileID(c.Params("id"))
	if profileID.IsEmpty() {
		return profile.ErrProfileNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteProfile(c.Context(), profileID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// SearchProfiles runs a semantic similarity search over stored profiles
// POST /api/profiles/search
func (h *Handlers) SearchProfiles(c *fiber.Ctx) error {
	var req profile.SearchProfilesRequest
	if err := c.BodyParser(&req); err != nil {
		return profile.ErrInvalidProfileData().WithDetail("parse_error", err.Error())
	}
	if req.Query == "" {
		return profile.ErrInvalidProfileData().WithDetail("field", "query")
	}

	resp, err := h.service.SearchProfiles(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ============================================================================
// Helper Functions
// ============================================================================

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	return kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}.Normalize()
}

// RegisterRoutes registers all profile routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, tokens *auth.TokenService) {
	api := app.Group("/api/profiles", auth.Middleware(tokens))

	api.Get("/", handlers.ListProfiles)
	api.Get("/:id", handlers.GetProfile)
	api.Post("/", handlers.BuildProfile)
	api.Post("/document", handlers.BuildFromDocument)
	api.Post("/search", handlers.SearchProfiles)
	api.Delete("/:id", handlers.DeleteProfile)
}
