package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vericred/vericred-api/internal/cache"
	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/internal/services"
	"github.com/vericred/vericred-api/pkg/apperrors"
)

func newProfileService(candidateStore *MockCandidateStore, jobStore *MockJobStore, reviewStore *MockReviewStore) *services.ProfileService {
	return services.NewProfileService(candidateStore, jobStore, reviewStore, cache.NewProfileCache(60))
}

func TestProfileService_GetProfile(t *testing.T) {
	candidateStore := new(MockCandidateStore)
	candidateStore.On("GetBySlug", mock.Anything, "jane-doe").Return(testCandidate(), nil)
	jobStore := new(MockJobStore)
	jobStore.On("ListByCandidate", mock.Anything, testCandidateID).
		Return([]*models.Job{testJob()}, nil)
	reviewStore := new(MockReviewStore)
	reviewStore.On("ListApprovedByCandidate", mock.Anything, testCandidateID).
		Return([]*models.Review{testReview(true)}, nil)

	svc := newProfileService(candidateStore, jobStore, reviewStore)

	profile, err := svc.GetProfile(context.Background(), "jane-doe")

	require.NoError(t, err)
	assert.Equal(t, "jane-doe", profile.Candidate.Slug)
	require.Len(t, profile.Jobs, 1)
	require.Len(t, profile.Reviews, 1)
	// Each review carries its job context for display
	assert.Equal(t, "Acme Corp", profile.Reviews[0].Job.Company)
	assert.Equal(t, "Engineering Manager", profile.Reviews[0].Job.Title)
}

func TestProfileService_GetProfile_NoApprovedReviews(t *testing.T) {
	candidateStore := new(MockCandidateStore)
	candidateStore.On("GetBySlug", mock.Anything, "jane-doe").Return(testCandidate(), nil)
	jobStore := new(MockJobStore)
	jobStore.On("ListByCandidate", mock.Anything, testCandidateID).
		Return([]*models.Job{testJob()}, nil)
	reviewStore := new(MockReviewStore)
	reviewStore.On("ListApprovedByCandidate", mock.Anything, testCandidateID).
		Return([]*models.Review{}, nil)

	svc := newProfileService(candidateStore, jobStore, reviewStore)

	profile, err := svc.GetProfile(context.Background(), "jane-doe")

	require.NoError(t, err)
	assert.NotNil(t, profile.Reviews)
	assert.Empty(t, profile.Reviews)
	assert.Len(t, profile.Jobs, 1)
}

func TestProfileService_GetProfile_ReviewWithMissingJob(t *testing.T) {
	orphan := testReview(true)
	orphan.JobID = "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9"

	candidateStore := new(MockCandidateStore)
	candidateStore.On("GetBySlug", mock.Anything, "jane-doe").Return(testCandidate(), nil)
	jobStore := new(MockJobStore)
	jobStore.On("ListByCandidate", mock.Anything, testCandidateID).
		Return([]*models.Job{testJob()}, nil)
	reviewStore := new(MockReviewStore)
	reviewStore.On("ListApprovedByCandidate", mock.Anything, testCandidateID).
		Return([]*models.Review{orphan}, nil)

	svc := newProfileService(candidateStore, jobStore, reviewStore)

	profile, err := svc.GetProfile(context.Background(), "jane-doe")

	require.NoError(t, err)
	require.Len(t, profile.Reviews, 1)
	// The review stays on the profile with an empty job object
	assert.Empty(t, profile.Reviews[0].Job.ID)
	assert.Empty(t, profile.Reviews[0].Job.Company)
}

func TestProfileService_GetProfile_UnknownSlug(t *testing.T) {
	candidateStore := new(MockCandidateStore)
	candidateStore.On("GetBySlug", mock.Anything, "nobody").
		Return(nil, apperrors.NotFoundError("candidate"))

	svc := newProfileService(candidateStore, new(MockJobStore), new(MockReviewStore))

	_, err := svc.GetProfile(context.Background(), "nobody")

	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestProfileService_GetProfile_SecondReadServedFromCache(t *testing.T) {
	candidateStore := new(MockCandidateStore)
	candidateStore.On("GetBySlug", mock.Anything, "jane-doe").Return(testCandidate(), nil).Once()
	jobStore := new(MockJobStore)
	jobStore.On("ListByCandidate", mock.Anything, testCandidateID).
		Return([]*models.Job{testJob()}, nil).Once()
	reviewStore := new(MockReviewStore)
	reviewStore.On("ListApprovedByCandidate", mock.Anything, testCandidateID).
		Return([]*models.Review{}, nil).Once()

	svc := newProfileService(candidateStore, jobStore, reviewStore)

	first, err := svc.GetProfile(context.Background(), "jane-doe")
	require.NoError(t, err)

	second, err := svc.GetProfile(context.Background(), "jane-doe")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	candidateStore.AssertExpectations(t)
	jobStore.AssertExpectations(t)
	reviewStore.AssertExpectations(t)
}
