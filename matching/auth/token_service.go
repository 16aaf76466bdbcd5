package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/skovr/talentmatch/pkg/kernel"
)

// DefaultTokenTTL is the service token lifetime
const DefaultTokenTTL = 1 * time.Hour

// TokenService issues and validates signed service tokens
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a token service. A non-positive ttl falls back to
// the default.
func NewTokenService(secret []byte, issuer string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &TokenService{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
	}
}

// Claims are the validated contents of a service token
type Claims struct {
	ClientID  kernel.ClientID
	ExpiresAt time.Time
}

// GenerateToken issues a signed token for an authenticated client
func (s *TokenService) GenerateToken(clientID kernel.ClientID) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   clientID.String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken parses and verifies a token, returning its claims
func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken().WithDetail("alg", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, ErrInvalidToken().WithDetail("error", err.Error())
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken()
	}

	return &Claims{
		ClientID:  kernel.NewClientID(claims.Subject),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
