package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/pkg/apperrors"
)

func jobRouter(svc *MockJobService) *gin.Engine {
	handler := NewJobHandler(svc)
	router := gin.New()
	router.POST("/api/v1/jobs", handler.CreateJob)
	router.GET("/api/v1/jobs/:jobId", handler.GetJob)
	router.GET("/api/v1/candidates/:candidateId/jobs", handler.ListJobs)
	return router
}

func TestJobHandler_CreateJob(t *testing.T) {
	svc := new(MockJobService)
	svc.On("CreateJob", mock.Anything, mock.Anything).
		Return(&models.Job{ID: "job-1", Company: "Acme Corp"}, nil)

	router := jobRouter(svc)

	body := `{
		"candidate_id": "3f1f8a62-01f0-4a4c-9d3e-6f2e5b7c8d90",
		"company": "Acme Corp",
		"title": "Engineering Manager"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/jobs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Acme Corp")
}

func TestJobHandler_CreateJob_UnknownCandidate(t *testing.T) {
	svc := new(MockJobService)
	svc.On("CreateJob", mock.Anything, mock.Anything).
		Return(nil, apperrors.NotFoundError("candidate"))

	router := jobRouter(svc)

	body := `{
		"candidate_id": "3f1f8a62-01f0-4a4c-9d3e-6f2e5b7c8d90",
		"company": "Acme Corp",
		"title": "Engineering Manager"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/jobs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJobHandler_ListJobs(t *testing.T) {
	svc := new(MockJobService)
	svc.On("ListJobs", mock.Anything, "cand-1").
		Return([]*models.Job{{ID: "job-1"}, {ID: "job-2"}}, nil)

	router := jobRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/candidates/cand-1/jobs", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "job-2")
}
