package apperrors

import (
	"errors"

	"google.golang.org/grpc/codes"
)

// Common errors
var (
	// Resource errors
	ErrCourseNotFound  = errors.New("course not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrUserNotFound    = errors.New("user not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// AppError is an application error tagged with a status kind. The kind
// vocabulary is the gRPC code set so the gateway can map every error to an
// HTTP status without special cases.
type AppError struct {
	Kind    codes.Code
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with an explicit kind
func New(kind codes.Code, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Wrap attaches a kind and message to an underlying error
func Wrap(kind codes.Code, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// NewNotFoundError creates an error for a missing required resource
func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: codes.NotFound, Message: message}
}

// NewInvalidArgumentError creates an error for a malformed request
func NewInvalidArgumentError(message string) *AppError {
	return &AppError{Kind: codes.InvalidArgument, Message: message}
}

// NewPermissionDeniedError creates an error for a read-path authorization denial
func NewPermissionDeniedError(message string) *AppError {
	return &AppError{Kind: codes.PermissionDenied, Message: message}
}

// NewUnauthenticatedError creates an error for a failed or missing authentication
func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Kind: codes.Unauthenticated, Message: message}
}

// NewInternalError wraps an unexpected infrastructure failure
func NewInternalError(message string, err error) *AppError {
	return &AppError{Kind: codes.Internal, Message: message, Err: err}
}

// KindOf extracts the status kind from any error. Errors that carry no
// AppError in their chain are treated as Internal.
func KindOf(err error) codes.Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return codes.Internal
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
