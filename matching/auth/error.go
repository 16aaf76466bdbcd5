package auth

import (
	"net/http"

	"github.com/skovr/talentmatch/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeMissingToken       = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Missing authorization header")
	CodeInvalidToken       = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
	CodeInvalidCredentials = ErrRegistry.Register("INVALID_CREDENTIALS", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid client credentials")
)

func ErrMissingToken() *errx.Error {
	return ErrRegistry.New(CodeMissingToken)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrInvalidCredentials() *errx.Error {
	return ErrRegistry.New(CodeInvalidCredentials)
}
