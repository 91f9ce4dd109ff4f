package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/vericred/vericred-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockRequestService is a mock implementation of services.RequestServiceInterface
type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) IssueRequest(ctx context.Context, req *models.CreateReviewRequestRequest) (*models.CreateReviewRequestResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreateReviewRequestResponse), args.Error(1)
}

func (m *MockRequestService) ResolveToken(ctx context.Context, rawToken string) (*models.TokenInfo, error) {
	args := m.Called(ctx, rawToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenInfo), args.Error(1)
}

func (m *MockRequestService) SubmitReview(ctx context.Context, rawToken string, req *models.SubmitReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, rawToken, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

// MockReviewService is a mock implementation of services.ReviewServiceInterface
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) GetReview(ctx context.Context, reviewID string) (*models.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) SetApproval(ctx context.Context, reviewID string, approve bool) (*models.Review, error) {
	args := m.Called(ctx, reviewID, approve)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

// MockProfileService is a mock implementation of services.ProfileServiceInterface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, candidateSlug string) (*models.PublicProfile, error) {
	args := m.Called(ctx, candidateSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublicProfile), args.Error(1)
}

// MockCandidateService is a mock implementation of services.CandidateServiceInterface
type MockCandidateService struct {
	mock.Mock
}

func (m *MockCandidateService) Register(ctx context.Context, req *models.CreateCandidateRequest) (*models.Candidate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateService) GetCandidate(ctx context.Context, candidateID string) (*models.Candidate, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateService) UploadPhoto(ctx context.Context, candidateID string, req *models.UploadPhotoRequest) (string, error) {
	args := m.Called(ctx, candidateID, req)
	return args.String(0), args.Error(1)
}

// MockJobService is a mock implementation of services.JobServiceInterface
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) ListJobs(ctx context.Context, candidateID string) ([]*models.Job, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Job), args.Error(1)
}
