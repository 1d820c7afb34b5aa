package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"carrierops/internal/pkg/errs"
)

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError translates a core error into an HTTP response. The mapping is
// by error kind, not by message: validation problems are 400, authorization
// splits into 401 and 403, lifecycle rejections are 422 so clients can tell
// "bad request shape" from "legal request, wrong state".
func respondError(ctx echo.Context, err error) error {
	return ctx.JSON(statusFor(err), ErrorResponse{
		Code:    statusFor(err),
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrMissingStop):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrInvalidPayload):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrTransientStorage):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
