package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/transitbook/internal/booking"
	"github.com/dharmasatrya/transitbook/internal/generator"
	"github.com/dharmasatrya/transitbook/internal/models"
)

// errorResponse maps service errors onto the JSON error envelope.
func errorResponse(c echo.Context, err error) error {
	var validationErr models.ValidationError
	var fieldErr *FieldError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &fieldErr):
		return writeError(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, generator.ErrUnknownTransportType):
		return writeError(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, booking.ErrNotFound):
		return writeError(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return writeError(c, http.StatusGatewayTimeout, "timeout", "The request took too long, please try again")
	case errors.Is(err, context.Canceled):
		return writeError(c, http.StatusServiceUnavailable, "cancelled", "The request was cancelled")
	}

	slog.ErrorContext(c.Request().Context(), "request failed", "path", c.Path(), "error", err)
	return writeError(c, http.StatusInternalServerError, "internal_error", "Something went wrong")
}

func writeError(c echo.Context, code int, kind, message string) error {
	return c.JSON(code, models.ErrorResponse{
		Error:   kind,
		Message: message,
		Code:    code,
	})
}
