package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/skovr/talentmatch/pkg/kernel"
)

// Service authenticates API clients against their registered secret hashes
// and issues session tokens
type Service struct {
	// clientID -> bcrypt hash of the client secret
	clients map[kernel.ClientID]string
	tokens  *TokenService
}

// NewService creates an auth service for a fixed set of registered clients
func NewService(clients map[kernel.ClientID]string, tokens *TokenService) *Service {
	return &Service{
		clients: clients,
		tokens:  tokens,
	}
}

// Session is an issued token with its expiry
type Session struct {
	ClientID  kernel.ClientID `json:"client_id"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Authenticate checks client credentials and issues a session token
func (s *Service) Authenticate(clientID kernel.ClientID, clientSecret string) (*Session, error) {
	hash, ok := s.clients[clientID]
	if !ok {
		// Compare against a dummy hash so unknown and known clients take the
		// same time
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$0000000000000000000000uGZwkz9vIRT0Sp8bIFvvpFUmQ9gXv9G"), []byte(clientSecret))
		return nil, ErrInvalidCredentials().WithDetail("client_id", clientID)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(clientSecret)); err != nil {
		return nil, ErrInvalidCredentials().WithDetail("client_id", clientID)
	}

	token, expiresAt, err := s.tokens.GenerateToken(clientID)
	if err != nil {
		return nil, err
	}

	return &Session{
		ClientID:  clientID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// HashSecret produces the bcrypt hash to register for a client secret
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
