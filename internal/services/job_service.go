package services

import (
	"context"

	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/internal/repository"
)

// JobService handles employment records
type JobService struct {
	candidateRepo repository.CandidateStore
	jobRepo       repository.JobStore
}

// NewJobService creates a new job service instance
func NewJobService(candidateRepo repository.CandidateStore, jobRepo repository.JobStore) *JobService {
	return &JobService{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
	}
}

// CreateJob adds an employment record to an existing candidate
func (s *JobService) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	candidateID, err := models.ParseID("candidate_id", req.CandidateID)
	if err != nil {
		return nil, err
	}

	if _, err := s.candidateRepo.GetByID(ctx, candidateID); err != nil {
		return nil, err
	}

	return s.jobRepo.Create(ctx, &models.Job{
		CandidateID: candidateID,
		Company:     req.Company,
		Title:       req.Title,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
}

// GetJob fetches an employment record by id
func (s *JobService) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	id, err := models.ParseLookupID("job", jobID)
	if err != nil {
		return nil, err
	}
	return s.jobRepo.GetByID(ctx, id)
}

// ListJobs returns a candidate's employment records, oldest first
func (s *JobService) ListJobs(ctx context.Context, candidateID string) ([]*models.Job, error) {
	id, err := models.ParseLookupID("candidate", candidateID)
	if err != nil {
		return nil, err
	}

	if _, err := s.candidateRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	return s.jobRepo.ListByCandidate(ctx, id)
}
