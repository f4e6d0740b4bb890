package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/docrouter-ce/docrouter/pkg/blob"
	"github.com/docrouter-ce/docrouter/pkg/crypto"
	"github.com/docrouter-ce/docrouter/pkg/services"
)

// errorDetail is the wire error body.
type errorDetail struct {
	Detail string `json:"detail"`
}

// httpErrorHandler renders every error as a {"detail": "..."} body.
func httpErrorHandler(c *echo.Context, err error) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	detail := "internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			detail = msg
		}
	}

	if jsonErr := c.JSON(code, &errorDetail{Detail: detail}); jsonErr != nil {
		slog.Error("Failed to write error response", "error", jsonErr)
	}
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, blob.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrUnauthorized) {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if errors.Is(err, services.ErrForbidden) {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, services.ErrTagReferenced) {
		return echo.NewHTTPError(http.StatusConflict, "tag is referenced by documents or prompts")
	}
	if errors.Is(err, services.ErrInsufficientCredits) {
		return echo.NewHTTPError(http.StatusPaymentRequired, "insufficient credits")
	}
	if errors.Is(err, crypto.ErrDecryptionFailed) {
		return echo.NewHTTPError(http.StatusUnauthorized, "decryption failed")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
