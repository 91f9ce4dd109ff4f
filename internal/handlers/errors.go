package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vericred/vericred-api/pkg/apperrors"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends an error JSON response and attaches the error to the gin context
// so the observability middleware can include the reason in the request log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message})
}

// respondErrorWithDetails sends an error response with an additional details field.
func respondErrorWithDetails(c *gin.Context, status int, message string, details any, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message, "details": details})
}

// respondDomainError maps a domain error to its HTTP shape. Expired tokens
// get the same 404 body as unknown ones so responses never reveal whether a
// guessed token ever existed.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error(), err)
	case apperrors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, err.Error(), err)
	case apperrors.Is(err, apperrors.ErrExpired), apperrors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, "Not found", err)
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
