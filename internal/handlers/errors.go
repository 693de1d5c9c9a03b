package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps service errors onto HTTP responses following the
// error taxonomy: validation 400, not found 404, conflicts 409, imbalance
// 422, transient storage 503, everything else 500.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAlreadyReversed):
		logger.Warn("Transaction already reversed", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrImbalance):
		logger.Error("Imbalanced entries", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrTransient):
		logger.Error("Transient storage error", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage temporarily unavailable, retry the request"})
	default:
		logger.Error("Internal error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
