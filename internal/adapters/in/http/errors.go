package http

import (
	"errors"
	"net/http"

	"tableside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application errors onto HTTP status codes: validation
// failures are client errors, missing objects are 404, terminal-state
// violations are conflicts, and everything else is a 500 with a generic
// message so internals do not leak.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, Envelope{Message: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Envelope{Message: err.Error()})
	case errors.Is(err, errs.ErrInvalidState):
		return ctx.JSON(http.StatusConflict, Envelope{Message: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, Envelope{Message: "internal server error"})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Envelope{Message: message})
}
