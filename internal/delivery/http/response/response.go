// Package response shapes every payload the API returns. Success bodies are
// flat objects carrying "success": true plus route-specific fields; error
// bodies carry "success": false and a single user-facing message.
package response

import (
	"net/http"

	domainerrors "journal/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Body holds the route-specific fields of a success response.
type Body map[string]any

// ErrorResponse defines the structure for error responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Success returns a successful response. The "success" flag is always set;
// extra fields are merged in alongside it.
func Success(c echo.Context, statusCode int, fields Body) error {
	payload := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["success"] = true

	return c.JSON(statusCode, payload)
}

// Error returns an error response. Only the user-facing message is exposed;
// internal detail stays in the logs.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.Message())
	}

	return errors.WithStack(err)
}
