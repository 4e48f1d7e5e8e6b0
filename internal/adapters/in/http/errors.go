package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps a use case error to its HTTP status. A joined error takes the
// status of the first class it matches, checked from most to least specific.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrRoutingUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrDuplicateStopOrder),
		errors.Is(err, errs.ErrReferencedEntityExists),
		errors.Is(err, errs.ErrInsufficientInventory):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidLocationCode),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a servers.Error body. Unclassified errors are logged and
// their text is not sent to the client.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)

		return ctx.JSON(status, servers.Error{
			Code:    status,
			Message: http.StatusText(status),
		})
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
