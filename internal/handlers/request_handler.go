package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/internal/services"
)

// RequestHandler handles review-request lifecycle HTTP requests
type RequestHandler struct {
	service services.RequestServiceInterface
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(service services.RequestServiceInterface) *RequestHandler {
	return &RequestHandler{service: service}
}

// IssueRequest handles POST /api/v1/review-requests
func (h *RequestHandler) IssueRequest(c *gin.Context) {
	var req models.CreateReviewRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", ParseValidationErrors(err), err)
		return
	}

	resp, err := h.service.IssueRequest(c.Request.Context(), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ResolveToken handles GET /api/v1/review-requests/:token
func (h *RequestHandler) ResolveToken(c *gin.Context) {
	rawToken := c.Param("token")
	if rawToken == "" {
		respondError(c, http.StatusBadRequest, "Missing token", nil)
		return
	}

	info, err := h.service.ResolveToken(c.Request.Context(), rawToken)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// SubmitReview handles POST /api/v1/review-requests/:token/review
func (h *RequestHandler) SubmitReview(c *gin.Context) {
	rawToken := c.Param("token")
	if rawToken == "" {
		respondError(c, http.StatusBadRequest, "Missing token", nil)
		return
	}

	var req models.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", ParseValidationErrors(err), err)
		return
	}

	review, err := h.service.SubmitReview(c.Request.Context(), rawToken, &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}
