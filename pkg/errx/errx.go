package errx

import (
	"fmt"
)

// Type classifies an error for transport mapping and logging
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeBusiness       Type = "BUSINESS"
	TypeExternal       Type = "EXTERNAL"
	TypeInternal       Type = "INTERNAL"
)

// Code identifies a registered error within a registry
type Code string

// definition holds the registered metadata for a code
type definition struct {
	Type       Type
	HTTPStatus int
	Message    string
}

// Registry holds the error codes of one domain (e.g. "PROFILE", "MATCH")
type Registry struct {
	prefix string
	codes  map[Code]definition
}

// NewRegistry creates a registry with a domain prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[Code]definition),
	}
}

// Register adds an error code to the registry and returns it
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	c := Code(r.prefix + "_" + code)
	r.codes[c] = definition{
		Type:       t,
		HTTPStatus: httpStatus,
		Message:    message,
	}
	return c
}

// New creates an error for a registered code
func (r *Registry) New(code Code) *Error {
	def, ok := r.codes[code]
	if !ok {
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			HTTPStatus: 500,
			Message:    "unregistered error code",
		}
	}

	return &Error{
		Code:       code,
		Type:       def.Type,
		HTTPStatus: def.HTTPStatus,
		Message:    def.Message,
	}
}

// NewWithCause creates an error for a registered code wrapping an underlying cause
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	err := r.New(code)
	err.Cause = cause
	return err
}

// Error is a structured application error
type Error struct {
	Code       Code           `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	Cause      error          `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the cause for errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches two errx errors by code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithDetail attaches a single key/value detail, returning the error for chaining
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails attaches multiple details at once
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// ToHTTPResponse returns the JSON-serializable body for HTTP transport
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Wrap converts an arbitrary error into an errx.Error without a registry
func Wrap(err error, message string, t Type) *Error {
	status := 500
	switch t {
	case TypeValidation:
		status = 400
	case TypeNotFound:
		status = 404
	case TypeConflict:
		status = 409
	case TypeAuthentication:
		status = 401
	case TypeAuthorization:
		status = 403
	case TypeBusiness:
		status = 422
	}

	return &Error{
		Code:       Code("WRAPPED"),
		Type:       t,
		HTTPStatus: status,
		Message:    message,
		Cause:      err,
	}
}
