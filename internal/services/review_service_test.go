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

const testReviewID = "7c4a2b90-3e1d-4f5a-8b6c-9d0e1f2a3b4c"

func testReview(approved bool) *models.Review {
	return &models.Review{
		ID:                  testReviewID,
		CandidateID:         testCandidateID,
		JobID:               testJobID,
		ReviewerName:        "Alex Manager",
		Overall:             4,
		ApprovedByCandidate: approved,
	}
}

func TestReviewService_SetApproval(t *testing.T) {
	reviewStore := new(MockReviewStore)
	reviewStore.On("SetApproval", mock.Anything, testReviewID, true).
		Return(testReview(true), nil)

	svc := services.NewReviewService(reviewStore, cache.NewProfileCache(60))

	review, err := svc.SetApproval(context.Background(), testReviewID, true)

	require.NoError(t, err)
	assert.True(t, review.ApprovedByCandidate)
	reviewStore.AssertExpectations(t)
}

func TestReviewService_SetApproval_Idempotent(t *testing.T) {
	reviewStore := new(MockReviewStore)
	reviewStore.On("SetApproval", mock.Anything, testReviewID, true).
		Return(testReview(true), nil).Twice()

	svc := services.NewReviewService(reviewStore, cache.NewProfileCache(60))

	for i := 0; i < 2; i++ {
		review, err := svc.SetApproval(context.Background(), testReviewID, true)
		require.NoError(t, err)
		assert.True(t, review.ApprovedByCandidate)
	}
	reviewStore.AssertExpectations(t)
}

func TestReviewService_SetApproval_Reversible(t *testing.T) {
	reviewStore := new(MockReviewStore)
	reviewStore.On("SetApproval", mock.Anything, testReviewID, false).
		Return(testReview(false), nil)

	svc := services.NewReviewService(reviewStore, cache.NewProfileCache(60))

	review, err := svc.SetApproval(context.Background(), testReviewID, false)

	require.NoError(t, err)
	assert.False(t, review.ApprovedByCandidate)
}

func TestReviewService_SetApproval_NotFound(t *testing.T) {
	reviewStore := new(MockReviewStore)
	reviewStore.On("SetApproval", mock.Anything, testReviewID, true).
		Return(nil, apperrors.NotFoundError("review"))

	svc := services.NewReviewService(reviewStore, cache.NewProfileCache(60))

	_, err := svc.SetApproval(context.Background(), testReviewID, true)

	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestReviewService_SetApproval_MalformedID(t *testing.T) {
	// A malformed id cannot address any review, so it reads as NotFound
	svc := services.NewReviewService(new(MockReviewStore), cache.NewProfileCache(60))

	_, err := svc.SetApproval(context.Background(), "not-a-uuid", true)

	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestReviewService_SetApproval_EvictsCachedProfile(t *testing.T) {
	profileCache := cache.NewProfileCache(60)
	profileCache.Set(&models.PublicProfile{Candidate: *testCandidate()})
	require.NotNil(t, profileCache.Get("jane-doe"))

	reviewStore := new(MockReviewStore)
	reviewStore.On("SetApproval", mock.Anything, testReviewID, true).
		Return(testReview(true), nil)

	svc := services.NewReviewService(reviewStore, profileCache)

	_, err := svc.SetApproval(context.Background(), testReviewID, true)

	require.NoError(t, err)
	assert.Nil(t, profileCache.Get("jane-doe"), "approval flip must evict the cached profile")
}
