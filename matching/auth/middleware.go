package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/skovr/talentmatch/pkg/kernel"
)

const clientIDKey = "client_id"

// Middleware validates bearer tokens on protected routes
func Middleware(tokens *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get token from Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return ErrMissingToken()
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ErrInvalidToken().WithDetail("reason", "invalid authorization format")
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			return err
		}

		c.Locals(clientIDKey, claims.ClientID)
		return c.Next()
	}
}

// GetClientID extracts the authenticated client ID from the request context
func GetClientID(c *fiber.Ctx) (kernel.ClientID, bool) {
	clientID, ok := c.Locals(clientIDKey).(kernel.ClientID)
	return clientID, ok
}
