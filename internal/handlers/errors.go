package handlers

import (
	"errors"
	"net/http"

	"organizer/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// respondError maps the error taxonomy to HTTP statuses at the call site
// nearest the user action.
func respondError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrInvalidFormat):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, apperr.ErrUploadFailed):
		status = http.StatusBadGateway
	case errors.Is(err, apperr.ErrRemoteUnavailable):
		status = http.StatusServiceUnavailable
	}
	return c.Status(status).JSON(map[string]interface{}{"error": err.Error()})
}
