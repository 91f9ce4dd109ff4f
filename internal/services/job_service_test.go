package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/internal/services"
	"github.com/vericred/vericred-api/pkg/apperrors"
)

func TestJobService_CreateJob(t *testing.T) {
	candidateStore := new(MockCandidateStore)
	candidateStore.On("GetByID", mock.Anything, testCandidateID).Return(testCandidate(), nil)
	jobStore := new(MockJobStore)
	jobStore.On("Create", mock.Anything, mock.MatchedBy(func(j *models.Job) bool {
		return j.CandidateID == testCandidateID && j.Company == "Acme Corp"
	})).Return(testJob(), nil)

	svc := services.NewJobService(candidateStore, jobStore)

	job, err := svc.CreateJob(context.Background(), &models.CreateJobRequest{
		CandidateID: testCandidateID,
		Company:     "Acme Corp",
		Title:       "Engineering Manager",
		StartDate:   "2021-03",
		EndDate:     "Present",
	})

	require.NoError(t, err)
	assert.Equal(t, testJobID, job.ID)
	jobStore.AssertExpectations(t)
}

func TestJobService_CreateJob_UnknownCandidate(t *testing.T) {
	candidateStore := new(MockCandidateStore)
	candidateStore.On("GetByID", mock.Anything, testCandidateID).
		Return(nil, apperrors.NotFoundError("candidate"))

	svc := services.NewJobService(candidateStore, new(MockJobStore))

	_, err := svc.CreateJob(context.Background(), &models.CreateJobRequest{
		CandidateID: testCandidateID,
		Company:     "Acme Corp",
		Title:       "Engineering Manager",
	})

	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestJobService_GetJob_MalformedID(t *testing.T) {
	// Malformed ids on lookups read as NotFound, not Validation
	svc := services.NewJobService(new(MockCandidateStore), new(MockJobStore))

	_, err := svc.GetJob(context.Background(), "not-a-uuid")

	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestJobService_ListJobs(t *testing.T) {
	candidateStore := new(MockCandidateStore)
	candidateStore.On("GetByID", mock.Anything, testCandidateID).Return(testCandidate(), nil)
	jobStore := new(MockJobStore)
	jobStore.On("ListByCandidate", mock.Anything, testCandidateID).
		Return([]*models.Job{testJob()}, nil)

	svc := services.NewJobService(candidateStore, jobStore)

	jobs, err := svc.ListJobs(context.Background(), testCandidateID)

	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}
