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

func candidateRouter(svc *MockCandidateService) *gin.Engine {
	handler := NewCandidateHandler(svc)
	router := gin.New()
	router.POST("/api/v1/candidates", handler.Register)
	router.GET("/api/v1/candidates/:candidateId", handler.GetCandidate)
	router.PUT("/api/v1/candidates/:candidateId/photo", handler.UploadPhoto)
	return router
}

func TestCandidateHandler_Register(t *testing.T) {
	svc := new(MockCandidateService)
	svc.On("Register", mock.Anything, mock.Anything).
		Return(&models.Candidate{ID: "cand-1", Slug: "jane-doe"}, nil)

	router := candidateRouter(svc)

	body := `{"name": "Jane Doe", "email": "jane@example.com", "slug": "jane-doe"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/candidates", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "jane-doe")
}

func TestCandidateHandler_Register_SlugTaken(t *testing.T) {
	svc := new(MockCandidateService)
	svc.On("Register", mock.Anything, mock.Anything).
		Return(nil, apperrors.ConflictError("slug already in use"))

	router := candidateRouter(svc)

	body := `{"name": "Jane Doe", "email": "jane@example.com", "slug": "jane-doe"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/candidates", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCandidateHandler_UploadPhoto(t *testing.T) {
	svc := new(MockCandidateService)
	svc.On("UploadPhoto", mock.Anything, "cand-1", mock.Anything).
		Return("https://storage.example.com/bucket/candidates/cand-1/photo.png", nil)

	router := candidateRouter(svc)

	body := `{"photo": "aGVsbG8=", "file_name": "me.png", "content_type": "image/png"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/v1/candidates/cand-1/photo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "photo.png")
}
