package repository

import (
	"context"
	"time"

	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/pkg/metrics"
)

// The stores below are the persistence collaborator boundary. Services only
// see these interfaces, which keeps the atomic-consume requirement testable
// against an in-memory fake.

// CandidateStore defines candidate persistence operations
type CandidateStore interface {
	// Create inserts a candidate and returns the stored entity
	Create(ctx context.Context, candidate *models.Candidate) (*models.Candidate, error)

	// GetByID fetches a candidate by id
	GetByID(ctx context.Context, id string) (*models.Candidate, error)

	// GetBySlug fetches a candidate by public slug
	GetBySlug(ctx context.Context, slug string) (*models.Candidate, error)

	// UpdatePhotoURL sets the photo URL and returns the updated entity
	UpdatePhotoURL(ctx context.Context, id, photoURL string) (*models.Candidate, error)
}

// JobStore defines employment-record persistence operations
type JobStore interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]*models.Job, error)
}

// RequestStore defines review-request persistence operations
type RequestStore interface {
	// Create inserts a review request and returns the stored entity
	Create(ctx context.Context, req *models.ReviewRequest) (*models.ReviewRequest, error)

	// GetByToken fetches a request by exact token match, any status
	GetByToken(ctx context.Context, token string) (*models.ReviewRequest, error)

	// Consume atomically transitions the request pending -> submitted and
	// creates the review in the same transaction. The transition is a single
	// conditional update: of any number of concurrent calls on one token,
	// exactly one succeeds; the rest fail with ErrConflict (already used),
	// ErrExpired, or ErrNotFound.
	Consume(ctx context.Context, reqToken string, now time.Time, review *models.Review) (*models.Review, error)
}

// ReviewStore defines review persistence operations
type ReviewStore interface {
	GetByID(ctx context.Context, id string) (*models.Review, error)

	// SetApproval flips the candidate-approval flag and returns the
	// post-mutation review directly (no re-fetch round trip)
	SetApproval(ctx context.Context, id string, approve bool) (*models.Review, error)

	// ListApprovedByCandidate returns only reviews the candidate approved
	ListApprovedByCandidate(ctx context.Context, candidateID string) ([]*models.Review, error)
}

func recordMetrics(operation, status string, duration float64) {
	metrics.DBRequestDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.DBRequestTotal.WithLabelValues(operation, status).Inc()
}
