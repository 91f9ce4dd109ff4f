package services_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/pkg/apperrors"
)

// MockCandidateStore is a mock implementation of repository.CandidateStore
type MockCandidateStore struct {
	mock.Mock
}

func (m *MockCandidateStore) Create(ctx context.Context, candidate *models.Candidate) (*models.Candidate, error) {
	args := m.Called(ctx, candidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateStore) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateStore) GetBySlug(ctx context.Context, slug string) (*models.Candidate, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateStore) UpdatePhotoURL(ctx context.Context, id, photoURL string) (*models.Candidate, error) {
	args := m.Called(ctx, id, photoURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

// MockJobStore is a mock implementation of repository.JobStore
type MockJobStore struct {
	mock.Mock
}

func (m *MockJobStore) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobStore) GetByID(ctx context.Context, id string) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobStore) ListByCandidate(ctx context.Context, candidateID string) ([]*models.Job, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Job), args.Error(1)
}

// MockRequestStore is a mock implementation of repository.RequestStore
type MockRequestStore struct {
	mock.Mock
}

func (m *MockRequestStore) Create(ctx context.Context, req *models.ReviewRequest) (*models.ReviewRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewRequest), args.Error(1)
}

func (m *MockRequestStore) GetByToken(ctx context.Context, token string) (*models.ReviewRequest, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewRequest), args.Error(1)
}

func (m *MockRequestStore) Consume(ctx context.Context, reqToken string, now time.Time, review *models.Review) (*models.Review, error) {
	args := m.Called(ctx, reqToken, now, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

// MockReviewStore is a mock implementation of repository.ReviewStore
type MockReviewStore struct {
	mock.Mock
}

func (m *MockReviewStore) GetByID(ctx context.Context, id string) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewStore) SetApproval(ctx context.Context, id string, approve bool) (*models.Review, error) {
	args := m.Called(ctx, id, approve)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewStore) ListApprovedByCandidate(ctx context.Context, candidateID string) ([]*models.Review, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Review), args.Error(1)
}

// MockPhotoStorage is a mock implementation of storage.PhotoStorageInterface
type MockPhotoStorage struct {
	mock.Mock
}

func (m *MockPhotoStorage) UploadPhoto(ctx context.Context, photoData, key, contentType string) (string, error) {
	args := m.Called(ctx, photoData, key, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockPhotoStorage) ValidatePhotoType(contentType string) error {
	args := m.Called(contentType)
	return args.Error(0)
}

func (m *MockPhotoStorage) ValidatePhotoSize(photoData string) error {
	args := m.Called(photoData)
	return args.Error(0)
}

func (m *MockPhotoStorage) PhotoKey(candidateID, originalFileName string) string {
	args := m.Called(candidateID, originalFileName)
	return args.String(0)
}

// stubHTTPClient satisfies httpclient.Client without real network calls
type stubHTTPClient struct{}

func (stubHTTPClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(""))}, nil
}

func (stubHTTPClient) Get(url string) (*http.Response, error) {
	return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(""))}, nil
}

func (stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(""))}, nil
}

// fakeRequestStore is an in-memory RequestStore whose Consume honors the
// same at-most-once contract as the SQL implementation. It backs the
// concurrent-submission test, where call ordering is nondeterministic and
// expectation-based mocks do not fit.
type fakeRequestStore struct {
	mu       sync.Mutex
	requests map[string]*models.ReviewRequest
	reviews  []*models.Review
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{requests: make(map[string]*models.ReviewRequest)}
}

func (f *fakeRequestStore) Create(ctx context.Context, req *models.ReviewRequest) (*models.ReviewRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *req
	stored.ID = req.Token[:8]
	f.requests[req.Token] = &stored
	return &stored, nil
}

func (f *fakeRequestStore) GetByToken(ctx context.Context, token string) (*models.ReviewRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[token]
	if !ok {
		return nil, apperrors.NotFoundError("review request")
	}
	copied := *req
	return &copied, nil
}

func (f *fakeRequestStore) Consume(ctx context.Context, reqToken string, now time.Time, review *models.Review) (*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	req, ok := f.requests[reqToken]
	if !ok {
		return nil, apperrors.NotFoundError("review request")
	}
	if req.Status == models.RequestStatusSubmitted {
		return nil, apperrors.ConflictError("token already used")
	}
	if now.After(req.ExpiresAt) {
		return nil, apperrors.ExpiredError("review request")
	}

	req.Status = models.RequestStatusSubmitted
	req.UsedAt = &now

	stored := *review
	stored.ID = uuid.NewString()
	stored.CandidateID = req.CandidateID
	stored.JobID = req.JobID
	stored.CreatedAt = now
	f.reviews = append(f.reviews, &stored)

	copied := stored
	return &copied, nil
}

// fakeReviewStore serves the reviews a fakeRequestStore recorded, so a full
// issue-submit-approve-profile chain can run over shared in-memory state.
type fakeReviewStore struct {
	backing *fakeRequestStore
}

func (f *fakeReviewStore) GetByID(ctx context.Context, id string) (*models.Review, error) {
	f.backing.mu.Lock()
	defer f.backing.mu.Unlock()
	for _, r := range f.backing.reviews {
		if r.ID == id {
			copied := *r
			return &copied, nil
		}
	}
	return nil, apperrors.NotFoundError("review")
}

func (f *fakeReviewStore) SetApproval(ctx context.Context, id string, approve bool) (*models.Review, error) {
	f.backing.mu.Lock()
	defer f.backing.mu.Unlock()
	for _, r := range f.backing.reviews {
		if r.ID == id {
			r.ApprovedByCandidate = approve
			copied := *r
			return &copied, nil
		}
	}
	return nil, apperrors.NotFoundError("review")
}

func (f *fakeReviewStore) ListApprovedByCandidate(ctx context.Context, candidateID string) ([]*models.Review, error) {
	f.backing.mu.Lock()
	defer f.backing.mu.Unlock()
	approved := make([]*models.Review, 0)
	for _, r := range f.backing.reviews {
		if r.CandidateID == candidateID && r.ApprovedByCandidate {
			copied := *r
			approved = append(approved, &copied)
		}
	}
	return approved, nil
}
