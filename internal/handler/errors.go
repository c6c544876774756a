package handler

import (
	"errors"
	"net/http"

	apperrors "frent-client/internal/errors"
	"frent-client/pkg/response"

	"github.com/gin-gonic/gin"
)

// Messages for failures whose details stay in the logs.
const (
	msgCheckoutFailed    = "checkout could not be completed, refresh your cart and rentals before retrying"
	msgUpstreamFailed    = "rental service unreachable"
	msgUpstreamMalformed = "inconsistent response from rental service"
)

// writeError maps the error taxonomy onto HTTP responses.
func writeError(c *gin.Context, err error) {
	var remote *apperrors.RemoteError

	switch {
	case errors.Is(err, apperrors.ErrCompoundPartialFailure):
		response.InternalErrorMessage(c, msgCheckoutFailed)
	case errors.Is(err, apperrors.ErrForbidden):
		response.Forbidden(c, "insufficient permissions")
	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrInvalidToken):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidArgument):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperrors.ErrStorageUnavailable),
		errors.Is(err, apperrors.ErrJournalUnavailable):
		response.ServiceUnavailable(c, err.Error())
	case errors.Is(err, apperrors.ErrInconsistentRental):
		response.BadGateway(c, msgUpstreamMalformed)
	case errors.Is(err, apperrors.ErrTransportFailure):
		response.BadGateway(c, msgUpstreamFailed)
	case errors.As(err, &remote):
		status := remote.StatusCode
		if status < http.StatusBadRequest || status >= http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
		response.Error(c, status, remote.Message)
	case errors.Is(err, apperrors.ErrNotFound):
		response.NotFound(c, apperrors.Message(err))
	case errors.Is(err, apperrors.ErrAuthRequired):
		response.Unauthorized(c, apperrors.ErrAuthRequired.Error())
	default:
		response.InternalError(c)
	}
}

// writeCompoundError reports a failed compound transaction. Only session and
// argument problems keep their own status; anything else, including a remote
// rejection before the first commit, gets the generic checkout message.
func writeCompoundError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrAuthRequired),
		errors.Is(err, apperrors.ErrForbidden),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrInvalidArgument):
		writeError(c, err)
	default:
		response.InternalErrorMessage(c, msgCheckoutFailed)
	}
}
