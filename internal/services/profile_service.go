package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/vericred/vericred-api/internal/cache"
	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/internal/repository"
	"github.com/vericred/vericred-api/pkg/logger"
	"github.com/vericred/vericred-api/pkg/metrics"
)

// ProfileService assembles public candidate profiles
type ProfileService struct {
	candidateRepo repository.CandidateStore
	jobRepo       repository.JobStore
	reviewRepo    repository.ReviewStore
	profileCache  *cache.ProfileCache
}

// NewProfileService creates a new profile service instance
func NewProfileService(
	candidateRepo repository.CandidateStore,
	jobRepo repository.JobStore,
	reviewRepo repository.ReviewStore,
	profileCache *cache.ProfileCache,
) *ProfileService {
	return &ProfileService{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		reviewRepo:    reviewRepo,
		profileCache:  profileCache,
	}
}

// GetProfile returns the public aggregate for a candidate slug: the
// candidate, their jobs, and only candidate-approved reviews, each joined to
// its job. A review whose job is missing keeps an empty job object rather
// than dropping off the profile.
func (s *ProfileService) GetProfile(ctx context.Context, candidateSlug string) (*models.PublicProfile, error) {
	if cached := s.profileCache.Get(candidateSlug); cached != nil {
		metrics.ProfileViews.WithLabelValues("success").Inc()
		return cached, nil
	}

	candidate, err := s.candidateRepo.GetBySlug(ctx, candidateSlug)
	if err != nil {
		metrics.ProfileViews.WithLabelValues("not_found").Inc()
		return nil, err
	}

	jobs, err := s.jobRepo.ListByCandidate(ctx, candidate.ID)
	if err != nil {
		metrics.ProfileViews.WithLabelValues("error").Inc()
		return nil, err
	}

	reviews, err := s.reviewRepo.ListApprovedByCandidate(ctx, candidate.ID)
	if err != nil {
		metrics.ProfileViews.WithLabelValues("error").Inc()
		return nil, err
	}

	jobsByID := make(map[string]*models.Job, len(jobs))
	jobList := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		jobsByID[job.ID] = job
		jobList = append(jobList, *job)
	}

	profileReviews := make([]models.ProfileReview, 0, len(reviews))
	for _, review := range reviews {
		pr := models.ProfileReview{Review: *review}
		if job, ok := jobsByID[review.JobID]; ok {
			pr.Job = *job
		} else {
			logger.Warn("Approved review references unknown job",
				zap.String("review_id", review.ID),
				zap.String("job_id", review.JobID))
		}
		profileReviews = append(profileReviews, pr)
	}

	profile := &models.PublicProfile{
		Candidate: *candidate,
		Jobs:      jobList,
		Reviews:   profileReviews,
	}

	s.profileCache.Set(profile)
	metrics.ProfileViews.WithLabelValues("success").Inc()

	return profile, nil
}
