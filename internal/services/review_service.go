package services

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/vericred/vericred-api/internal/cache"
	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/internal/repository"
	"github.com/vericred/vericred-api/pkg/logger"
	"github.com/vericred/vericred-api/pkg/metrics"
)

// ReviewService handles candidate control over submitted reviews
type ReviewService struct {
	reviewRepo   repository.ReviewStore
	profileCache *cache.ProfileCache
}

// NewReviewService creates a new review service instance
func NewReviewService(reviewRepo repository.ReviewStore, profileCache *cache.ProfileCache) *ReviewService {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		profileCache: profileCache,
	}
}

// GetReview fetches a single review by id
func (s *ReviewService) GetReview(ctx context.Context, reviewID string) (*models.Review, error) {
	id, err := models.ParseLookupID("review", reviewID)
	if err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(ctx, id)
}

// SetApproval sets the candidate-approval flag on a review. The operation is
// idempotent and reversible: approving an approved review or hiding a hidden
// one succeeds without change.
func (s *ReviewService) SetApproval(ctx context.Context, reviewID string, approve bool) (*models.Review, error) {
	id, err := models.ParseLookupID("review", reviewID)
	if err != nil {
		metrics.ApprovalUpdates.WithLabelValues("not_found", strconv.FormatBool(approve)).Inc()
		return nil, err
	}

	review, err := s.reviewRepo.SetApproval(ctx, id, approve)
	if err != nil {
		metrics.ApprovalUpdates.WithLabelValues("error", strconv.FormatBool(approve)).Inc()
		return nil, err
	}

	// The public profile only shows approved reviews, so any flip must evict
	// the cached aggregate.
	s.profileCache.InvalidateCandidate(review.CandidateID)

	metrics.ApprovalUpdates.WithLabelValues("success", strconv.FormatBool(approve)).Inc()
	logger.Info("Review approval updated",
		zap.String("review_id", id),
		zap.String("candidate_id", review.CandidateID),
		zap.Bool("approve", approve))

	return review, nil
}
