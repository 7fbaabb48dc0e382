package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"

	"github.com/campuscore/registrar/internal/app/models/dto"
	"github.com/campuscore/registrar/internal/pkg/apperrors"
	"github.com/campuscore/registrar/internal/pkg/logger"
)

// statusMapping maps every error kind to an HTTP status and response error
// code. The table is total over the code set; kinds without an entry fall
// back to 500.
var statusMapping = map[codes.Code]struct {
	status int
	code   dto.ErrorCode
}{
	codes.Canceled:           {499, dto.ErrorCodeRequestCancelled},
	codes.Unknown:            {http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	codes.InvalidArgument:    {http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	codes.DeadlineExceeded:   {http.StatusGatewayTimeout, dto.ErrorCodeTimeout},
	codes.NotFound:           {http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	codes.AlreadyExists:      {http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
	codes.PermissionDenied:   {http.StatusForbidden, dto.ErrorCodeForbidden},
	codes.ResourceExhausted:  {http.StatusTooManyRequests, dto.ErrorCodeResourceExhausted},
	codes.FailedPrecondition: {http.StatusBadRequest, dto.ErrorCodePreconditionFailed},
	codes.Aborted:            {http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
	codes.OutOfRange:         {http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	codes.Unimplemented:      {http.StatusNotImplemented, dto.ErrorCodeNotImplemented},
	codes.Internal:           {http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	codes.Unavailable:        {http.StatusServiceUnavailable, dto.ErrorCodeUnavailable},
	codes.DataLoss:           {http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	codes.Unauthenticated:    {http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
}

// MapKindToStatus resolves an error kind to its HTTP status and response code.
func MapKindToStatus(kind codes.Code) (int, dto.ErrorCode) {
	if m, ok := statusMapping[kind]; ok {
		return m.status, m.code
	}
	return http.StatusInternalServerError, dto.ErrorCodeInternalServer
}

// HandleAPIError maps an infrastructure error to its transport response and
// logs it at the boundary. Business outcomes never reach this function; they
// travel as successful responses with success=false.
func HandleAPIError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	status, code := MapKindToStatus(kind)

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).
		Str("kind", kind.String()).
		Int("status", status).
		Str("path", c.FullPath()).
		Msg("Request failed")

	message := err.Error()
	if status >= http.StatusInternalServerError {
		// Internal details stay in the logs.
		message = "Internal server error"
	}

	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
