// Package apierrors defines user-facing errors shared by the gRPC and HTTP surfaces.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
)

// Kind classifies an APIError.
type Kind string

const (
	KindValidation         Kind = "validation"
	KindGenerationFailed   Kind = "generation_failed"
	KindParseEmpty         Kind = "parse_empty"
	KindPersistence        Kind = "persistence"
	KindNotFound           Kind = "not_found"
	KindBusy               Kind = "busy"
	KindEmailTaken         Kind = "email_taken"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindUnauthenticated    Kind = "unauthenticated"
)

// APIError is an error carrying a user-displayable message and transport codes.
type APIError struct {
	Kind       Kind
	Message    string
	GRPCCode   codes.Code
	HTTPStatus int
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches any APIError of the same kind.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrValidation       = &APIError{Kind: KindValidation}
	ErrGenerationFailed = &APIError{Kind: KindGenerationFailed}
	ErrParseEmpty       = &APIError{Kind: KindParseEmpty}
	ErrPersistence      = &APIError{Kind: KindPersistence}
	ErrNotFound         = &APIError{Kind: KindNotFound}
	ErrBusy             = &APIError{Kind: KindBusy}
	ErrEmailTaken       = &APIError{Kind: KindEmailTaken}
	ErrInvalidCreds     = &APIError{Kind: KindInvalidCredentials}
	ErrUnauthenticated  = &APIError{Kind: KindUnauthenticated}
)

// As returns the APIError in err's chain, if any.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// NewErrValidation reports a missing or malformed input field.
func NewErrValidation(field, message string) *APIError {
	return &APIError{
		Kind:       KindValidation,
		Message:    fmt.Sprintf("%s: %s", field, message),
		GRPCCode:   codes.InvalidArgument,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewErrGenerationFailed reports a relay or provider failure.
func NewErrGenerationFailed(message string, cause error) *APIError {
	if message == "" {
		message = "Failed to generate presentation"
	}
	return &APIError{
		Kind:       KindGenerationFailed,
		Message:    message,
		GRPCCode:   codes.Unavailable,
		HTTPStatus: http.StatusBadGateway,
		Err:        cause,
	}
}

// NewErrParseEmpty reports slide-by-slide input without any slide marker.
func NewErrParseEmpty() *APIError {
	return &APIError{
		Kind:       KindParseEmpty,
		Message:    `no slides found, use the "Slide 1: Title" format`,
		GRPCCode:   codes.FailedPrecondition,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// NewErrPersistence reports a storage or serialization failure.
func NewErrPersistence(cause error) *APIError {
	return &APIError{
		Kind:       KindPersistence,
		Message:    "Failed to save presentation",
		GRPCCode:   codes.Internal,
		HTTPStatus: http.StatusInternalServerError,
		Err:        cause,
	}
}

// NewErrDeckNotFound reports an unknown deck id.
func NewErrDeckNotFound(id string) *APIError {
	return &APIError{
		Kind:       KindNotFound,
		Message:    fmt.Sprintf("presentation %s not found", id),
		GRPCCode:   codes.NotFound,
		HTTPStatus: http.StatusNotFound,
	}
}

// NewErrTemplateNotFound reports an unknown template id.
func NewErrTemplateNotFound(id string) *APIError {
	return &APIError{
		Kind:       KindNotFound,
		Message:    fmt.Sprintf("template %s not found", id),
		GRPCCode:   codes.NotFound,
		HTTPStatus: http.StatusNotFound,
	}
}

// NewErrBusy reports a generation already in flight.
func NewErrBusy() *APIError {
	return &APIError{
		Kind:       KindBusy,
		Message:    "a presentation is already being generated",
		GRPCCode:   codes.Aborted,
		HTTPStatus: http.StatusConflict,
	}
}

// NewErrEmailIsTaken reports a registration with an existing email.
func NewErrEmailIsTaken(email string) *APIError {
	return &APIError{
		Kind:       KindEmailTaken,
		Message:    fmt.Sprintf("email %s is already taken", email),
		GRPCCode:   codes.AlreadyExists,
		HTTPStatus: http.StatusConflict,
	}
}

// NewErrInvalidCredentials reports a failed login.
func NewErrInvalidCredentials() *APIError {
	return &APIError{
		Kind:       KindInvalidCredentials,
		Message:    "invalid email or password",
		GRPCCode:   codes.Unauthenticated,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewErrMissingAuthorizationToken reports a request without a bearer token.
func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{
		Kind:       KindUnauthenticated,
		Message:    "missing authorization token",
		GRPCCode:   codes.Unauthenticated,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewErrInvalidAuthorizationToken reports a bearer token that failed validation.
func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{
		Kind:       KindUnauthenticated,
		Message:    "invalid authorization token",
		GRPCCode:   codes.Unauthenticated,
		HTTPStatus: http.StatusUnauthorized,
	}
}
