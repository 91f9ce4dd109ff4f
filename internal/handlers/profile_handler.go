package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vericred/vericred-api/internal/services"
	"github.com/vericred/vericred-api/pkg/slug"
)

// ProfileHandler serves public candidate profiles
type ProfileHandler struct {
	service services.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service services.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfile handles GET /api/v1/profiles/:slug
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	candidateSlug := c.Param("slug")
	if !slug.IsValid(candidateSlug) {
		respondError(c, http.StatusNotFound, "Not found", nil)
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), candidateSlug)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
