package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return writeError(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, service.ErrServiceUnavailable):
		return writeError(c, http.StatusInternalServerError, "service unavailable")
	case errors.Is(err, service.ErrUpstream):
		return writeError(c, http.StatusInternalServerError, "upstream error")
	default:
		return writeError(c, http.StatusInternalServerError, "internal error")
	}
}

// writeError writes a JSON error body with the given status.
func writeError(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
