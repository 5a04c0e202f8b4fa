package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/adaptation_plan_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-empty error response.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// respondError maps a service error onto an HTTP response. Unknown errors are
// logged and reported as a generic 500 carrying fallback.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrPermissionDenied):
		logger.Warn("Permission denied", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "permission denied", Detail: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, apperrors.ErrInvalidState):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid state", Detail: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error", Detail: err.Error()})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "conflict", Detail: err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// respondBindError reports a request that failed binding or validation.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format", Detail: err.Error()})
}
