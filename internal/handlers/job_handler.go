package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/internal/services"
)

// JobHandler handles employment-record HTTP requests
type JobHandler struct {
	service services.JobServiceInterface
}

// NewJobHandler creates a new job handler
func NewJobHandler(service services.JobServiceInterface) *JobHandler {
	return &JobHandler{service: service}
}

// CreateJob handles POST /api/v1/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", ParseValidationErrors(err), err)
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// GetJob handles GET /api/v1/jobs/:jobId
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("jobId")
	if jobID == "" {
		respondError(c, http.StatusBadRequest, "Missing job ID", nil)
		return
	}

	job, err := h.service.GetJob(c.Request.Context(), jobID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListJobs handles GET /api/v1/candidates/:candidateId/jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	candidateID := c.Param("candidateId")
	if candidateID == "" {
		respondError(c, http.StatusBadRequest, "Missing candidate ID", nil)
		return
	}

	jobs, err := h.service.ListJobs(c.Request.Context(), candidateID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
