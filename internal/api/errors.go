package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/publication-cms-api/internal/apperr"
	"github.com/rs/zerolog"
)

// respondError maps the app-level error taxonomy to a structured HTTP
// payload with a stable category. Storage failures are logged in full but
// surfaced as a generic message: query text never reaches the caller.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	if fields, ok := apperr.IsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": err.Error(),
			"fields":  fields,
		})
		return
	}

	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "unauthenticated",
			"message": "authentication required",
		})
	case errors.Is(err, apperr.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "forbidden",
			"message": "forbidden",
		})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "invalid_credentials",
			"message": apperr.ErrInvalidCredentials.Error(),
		})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "resource not found",
		})
	case errors.Is(err, apperr.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "duplicate_email",
			"message": apperr.ErrDuplicateEmail.Error(),
		})
	default:
		log.Error().Err(err).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "something went wrong",
		})
	}
}
