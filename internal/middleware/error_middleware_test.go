package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"

	"github.com/campuscore/registrar/internal/app/models/dto"
	"github.com/campuscore/registrar/internal/pkg/apperrors"
)

func TestMapKindToStatusTotal(t *testing.T) {
	cases := []struct {
		kind   codes.Code
		status int
	}{
		{codes.Canceled, 499},
		{codes.Unknown, http.StatusInternalServerError},
		{codes.InvalidArgument, http.StatusBadRequest},
		{codes.DeadlineExceeded, http.StatusGatewayTimeout},
		{codes.NotFound, http.StatusNotFound},
		{codes.AlreadyExists, http.StatusConflict},
		{codes.PermissionDenied, http.StatusForbidden},
		{codes.ResourceExhausted, http.StatusTooManyRequests},
		{codes.FailedPrecondition, http.StatusBadRequest},
		{codes.Aborted, http.StatusConflict},
		{codes.OutOfRange, http.StatusBadRequest},
		{codes.Unimplemented, http.StatusNotImplemented},
		{codes.Internal, http.StatusInternalServerError},
		{codes.Unavailable, http.StatusServiceUnavailable},
		{codes.DataLoss, http.StatusInternalServerError},
		{codes.Unauthenticated, http.StatusUnauthorized},
	}

	for _, c := range cases {
		status, _ := MapKindToStatus(c.kind)
		if status != c.status {
			t.Errorf("MapKindToStatus(%v) = %d, want %d", c.kind, status, c.status)
		}
	}

	// Kinds outside the table fall back to 500
	status, code := MapKindToStatus(codes.Code(200))
	if status != http.StatusInternalServerError || code != dto.ErrorCodeInternalServer {
		t.Errorf("unknown kind mapped to %d/%s", status, code)
	}
}

func TestHandleAPIErrorNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/courses/sections/42", nil)

	HandleAPIError(c, apperrors.NewNotFoundError("course not found"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Error.Message != "course not found" {
		t.Fatalf("message = %q", resp.Error.Message)
	}
}

// Internal failures must not leak their message to the client.
func TestHandleAPIErrorMasksInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/grades", nil)

	HandleAPIError(c, apperrors.NewInternalError("pgx: connection refused to 10.0.0.3", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Error.Message != "Internal server error" {
		t.Fatalf("internal details leaked: %q", resp.Error.Message)
	}
}

// Errors with no AppError in the chain are treated as Internal.
func TestHandleAPIErrorPlainError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/ping", nil)

	HandleAPIError(c, http.ErrBodyNotAllowed)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
