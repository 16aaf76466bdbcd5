package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skovr/talentmatch/pkg/kernel"
)

type Handlers struct {
	service *Service
}

func NewHandlers(service *Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

type TokenRequest struct {
	ClientID     kernel.ClientID `json:"client_id" validate:"required"`
	ClientSecret string          `json:"client_secret" validate:"required"`
}

// IssueToken exchanges client credentials for a bearer token
// POST /auth/token
func (h *Handlers) IssueToken(c *fiber.Ctx) error {
	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidCredentials().WithDetail("parse_error", err.Error())
	}
	if req.ClientID.IsEmpty() || req.ClientSecret == "" {
		return ErrInvalidCredentials().WithDetail("reason", "client_id and client_secret are required")
	}

	session, err := h.service.Authenticate(req.ClientID, req.ClientSecret)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// RegisterRoutes registers the auth routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	app.Post("/auth/token", handlers.IssueToken)
}
