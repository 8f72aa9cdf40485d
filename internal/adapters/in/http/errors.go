package http

import (
	"errors"
	"net/http"

	"agritrade/internal/generated/servers"
	"agritrade/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeDomainError translates a use case error into an HTTP response.
// Validation failures that are not one of the known domain error kinds are
// treated as bad requests: every command constructor fails fast on malformed
// input before any state is touched.
func writeDomainError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	code := http.StatusBadRequest
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrAccessDenied):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrConcurrencyConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidStatusTransition):
		code = http.StatusUnprocessableEntity
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: err.Error(),
	})
}
