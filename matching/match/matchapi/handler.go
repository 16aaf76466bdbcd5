package matchapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skovr/talentmatch/matching/auth"
	"github.com/skovr/talentmatch/matching/match"
	"github.com/skovr/talentmatch/matching/match/matchsrv"
)

// Handlers provides HTTP handlers for match scoring
type Handlers struct {
	service *matchsrv.Service
}

// NewHandlers creates a new match handlers instance
func NewHandlers(service *matchsrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Score compares one candidate profile against one job profile
// POST /api/match
func (h *Handlers) Score(c *fiber.Ctx) error {
	var req match.ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return match.ErrScoringFailed().WithDetail("parse_error", err.Error())
	}
	if req.JobID.IsEmpty() || req.CandidateID.IsEmpty() {
		return match.ErrScoringFailed().
			WithDetail("reason", "job_id and candidate_id are required")
	}

	result, err := h.service.Score(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// ScoreBatch ranks many candidates against one job
// POST /api/match/batch
func (h *Handlers) ScoreBatch(c *fiber.Ctx) error {
	var req match.ScoreBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return match.ErrScoringFailed().WithDetail("parse_error", err.Error())
	}
	if req.JobID.IsEmpty() {
		return match.ErrScoringFailed().WithDetail("reason", "job_id is required")
	}

	resp, err := h.service.ScoreBatch(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers all match routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, tokens *auth.TokenService) {
	api := app.Group("/api/match", auth.Middleware(tokens))

	api.Post("/", handlers.Score)
	api.Post("/batch", handlers.ScoreBatch)
}
