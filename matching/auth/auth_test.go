package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skovr/talentmatch/pkg/kernel"
)

func newTestService(t *testing.T, ttl time.Duration) *Service {
	t.Helper()
	hash, err := HashSecret("s3cret")
	require.NoError(t, err)

	tokens := NewTokenService([]byte("test-signing-key"), "talentmatch", ttl)
	return NewService(map[kernel.ClientID]string{"ats-frontend": hash}, tokens)
}

func TestAuthenticateIssuesValidToken(t *testing.T) {
	svc := newTestService(t, time.Hour)

	session, err := svc.Authenticate("ats-frontend", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, kernel.ClientID("ats-frontend"), session.ClientID)
	assert.NotEmpty(t, session.Token)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	claims, err := svc.tokens.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, kernel.ClientID("ats-frontend"), claims.ClientID)
}

func TestAuthenticateRejectsWrongSecret(t *testing.T) {
	svc := newTestService(t, time.Hour)

	_, err := svc.Authenticate("ats-frontend", "wrong")

	assert.Error(t, err)
}

func TestAuthenticateRejectsUnknownClient(t *testing.T) {
	svc := newTestService(t, time.Hour)

	_, err := svc.Authenticate("ghost", "s3cret")

	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	hash, err := HashSecret("s3cret")
	require.NoError(t, err)
	tokens := NewTokenService([]byte("test-signing-key"), "talentmatch", time.Nanosecond)
	svc := NewService(map[kernel.ClientID]string{"ats-frontend": hash}, tokens)

	session, err := svc.Authenticate("ats-frontend", "s3cret")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = tokens.ValidateToken(session.Token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	issuer := NewTokenService([]byte("other-key"), "talentmatch", time.Hour)
	verifier := NewTokenService([]byte("test-signing-key"), "talentmatch", time.Hour)

	token, _, err := issuer.GenerateToken("ats-frontend")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	tokens := NewTokenService([]byte("test-signing-key"), "talentmatch", time.Hour)

	_, err := tokens.ValidateToken("not-a-token")

	assert.Error(t, err)
}
