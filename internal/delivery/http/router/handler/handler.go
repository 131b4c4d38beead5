// Package handler contains the echo request handlers.
package handler

import (
	"net/http"

	"aquatrace/internal/delivery/http/response"
	domainerrors "aquatrace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// handleAppError translates domain errors into the uniform error envelope.
// Anything that is not an AppError bubbles up to echo's error handler.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
