package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/internal/services"
)

// CandidateHandler handles candidate registration and assets
type CandidateHandler struct {
	service services.CandidateServiceInterface
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(service services.CandidateServiceInterface) *CandidateHandler {
	return &CandidateHandler{service: service}
}

// Register handles POST /api/v1/candidates
func (h *CandidateHandler) Register(c *gin.Context) {
	var req models.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", ParseValidationErrors(err), err)
		return
	}

	candidate, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, candidate)
}

// GetCandidate handles GET /api/v1/candidates/:candidateId
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	candidateID := c.Param("candidateId")
	if candidateID == "" {
		respondError(c, http.StatusBadRequest, "Missing candidate ID", nil)
		return
	}

	candidate, err := h.service.GetCandidate(c.Request.Context(), candidateID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// UploadPhoto handles PUT /api/v1/candidates/:candidateId/photo
func (h *CandidateHandler) UploadPhoto(c *gin.Context) {
	candidateID := c.Param("candidateId")
	if candidateID == "" {
		respondError(c, http.StatusBadRequest, "Missing candidate ID", nil)
		return
	}

	var req models.UploadPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", ParseValidationErrors(err), err)
		return
	}

	photoURL, err := h.service.UploadPhoto(c.Request.Context(), candidateID, &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UploadPhotoResponse{PhotoURL: photoURL})
}
