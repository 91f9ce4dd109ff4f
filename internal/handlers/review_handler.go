package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/internal/services"
)

// ReviewHandler handles candidate control over reviews
type ReviewHandler struct {
	service services.ReviewServiceInterface
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service services.ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// GetReview handles GET /api/v1/reviews/:reviewId
func (h *ReviewHandler) GetReview(c *gin.Context) {
	reviewID := c.Param("reviewId")
	if reviewID == "" {
		respondError(c, http.StatusBadRequest, "Missing review ID", nil)
		return
	}

	review, err := h.service.GetReview(c.Request.Context(), reviewID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// SetApproval handles PUT /api/v1/reviews/:reviewId/approval
func (h *ReviewHandler) SetApproval(c *gin.Context) {
	reviewID := c.Param("reviewId")
	if reviewID == "" {
		respondError(c, http.StatusBadRequest, "Missing review ID", nil)
		return
	}

	var req models.SetApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", ParseValidationErrors(err), err)
		return
	}

	review, err := h.service.SetApproval(c.Request.Context(), reviewID, *req.Approve)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}
