package services

import (
	"context"

	"github.com/vericred/vericred-api/internal/models"
)

// RequestServiceInterface defines the review-request lifecycle operations
type RequestServiceInterface interface {
	IssueRequest(ctx context.Context, req *models.CreateReviewRequestRequest) (*models.CreateReviewRequestResponse, error)
	ResolveToken(ctx context.Context, rawToken string) (*models.TokenInfo, error)
	SubmitReview(ctx context.Context, rawToken string, req *models.SubmitReviewRequest) (*models.Review, error)
}

// ReviewServiceInterface defines candidate control over submitted reviews
type ReviewServiceInterface interface {
	GetReview(ctx context.Context, reviewID string) (*models.Review, error)
	SetApproval(ctx context.Context, reviewID string, approve bool) (*models.Review, error)
}

// ProfileServiceInterface defines public profile assembly
type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, candidateSlug string) (*models.PublicProfile, error)
}

// CandidateServiceInterface defines candidate registration and assets
type CandidateServiceInterface interface {
	Register(ctx context.Context, req *models.CreateCandidateRequest) (*models.Candidate, error)
	GetCandidate(ctx context.Context, candidateID string) (*models.Candidate, error)
	UploadPhoto(ctx context.Context, candidateID string, req *models.UploadPhotoRequest) (string, error)
}

// JobServiceInterface defines employment-record operations
type JobServiceInterface interface {
	CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)
	GetJob(ctx context.Context, jobID string) (*models.Job, error)
	ListJobs(ctx context.Context, candidateID string) ([]*models.Job, error)
}

// Ensure services implement their interfaces
var _ RequestServiceInterface = (*RequestService)(nil)
var _ ReviewServiceInterface = (*ReviewService)(nil)
var _ ProfileServiceInterface = (*ProfileService)(nil)
var _ CandidateServiceInterface = (*CandidateService)(nil)
var _ JobServiceInterface = (*JobService)(nil)
