package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vericred/vericred-api/config"
	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/internal/repository"
	"github.com/vericred/vericred-api/pkg/apperrors"
	"github.com/vericred/vericred-api/pkg/emailcheck"
	"github.com/vericred/vericred-api/pkg/httpclient"
	"github.com/vericred/vericred-api/pkg/logger"
	"github.com/vericred/vericred-api/pkg/metrics"
	"github.com/vericred/vericred-api/pkg/token"
	"github.com/vericred/vericred-api/pkg/trigger"
)

// RequestService drives the review-request lifecycle: issuing single-use
// tokens, resolving them for the review form, and consuming them on
// submission.
type RequestService struct {
	candidateRepo repository.CandidateStore
	jobRepo       repository.JobStore
	requestRepo   repository.RequestStore
	verifier      *emailcheck.Verifier
	config        *config.Config
	httpClient    httpclient.Client
	now           func() time.Time
}

// NewRequestService creates a new request service instance
func NewRequestService(
	candidateRepo repository.CandidateStore,
	jobRepo repository.JobStore,
	requestRepo repository.RequestStore,
	cfg *config.Config,
	httpClient httpclient.Client,
) *RequestService {
	return &RequestService{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		requestRepo:   requestRepo,
		verifier:      emailcheck.NewVerifier(cfg.Requests.FreeEmailDomains),
		config:        cfg,
		httpClient:    httpClient,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// IssueRequest mints a review-request token for a candidate's job. The raw
// token appears in the response and nowhere else afterwards.
func (s *RequestService) IssueRequest(ctx context.Context, req *models.CreateReviewRequestRequest) (*models.CreateReviewRequestResponse, error) {
	candidateID, err := models.ParseID("candidate_id", req.CandidateID)
	if err != nil {
		metrics.ReviewRequestsIssued.WithLabelValues("invalid").Inc()
		return nil, err
	}
	jobID, err := models.ParseID("job_id", req.JobID)
	if err != nil {
		metrics.ReviewRequestsIssued.WithLabelValues("invalid").Inc()
		return nil, err
	}

	if _, err := s.candidateRepo.GetByID(ctx, candidateID); err != nil {
		metrics.ReviewRequestsIssued.WithLabelValues("candidate_not_found").Inc()
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		metrics.ReviewRequestsIssued.WithLabelValues("job_not_found").Inc()
		return nil, err
	}
	if job.CandidateID != candidateID {
		metrics.ReviewRequestsIssued.WithLabelValues("invalid").Inc()
		return nil, apperrors.ValidationError("job_id", "job does not belong to candidate")
	}

	rawToken, err := token.New()
	if err != nil {
		metrics.ReviewRequestsIssued.WithLabelValues("error").Inc()
		logger.Error("Failed to generate review-request token", zap.Error(err))
		return nil, apperrors.InternalError("failed to generate token")
	}

	issuedAt := s.now()
	created, err := s.requestRepo.Create(ctx, &models.ReviewRequest{
		CandidateID:   candidateID,
		JobID:         jobID,
		ReviewerName:  req.ReviewerName,
		ReviewerEmail: req.ReviewerEmail,
		Token:         rawToken,
		Status:        models.RequestStatusPending,
		ExpiresAt:     issuedAt.Add(time.Duration(s.config.Requests.TokenTTLDays) * 24 * time.Hour),
	})
	if err != nil {
		metrics.ReviewRequestsIssued.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.ReviewRequestsIssued.WithLabelValues("success").Inc()
	logger.Info("Review request issued",
		zap.String("request_id", created.ID),
		zap.String("candidate_id", candidateID),
		zap.String("job_id", jobID),
		zap.Time("expires_at", created.ExpiresAt))

	return &models.CreateReviewRequestResponse{
		ID:    created.ID,
		Token: created.Token,
	}, nil
}

// ResolveToken returns the display context for a pending token: who is being
// reviewed and for which job. Used, expired, and unknown tokens never resolve.
func (s *RequestService) ResolveToken(ctx context.Context, rawToken string) (*models.TokenInfo, error) {
	req, err := s.requestRepo.GetByToken(ctx, rawToken)
	if err != nil {
		metrics.TokenResolutions.WithLabelValues("not_found").Inc()
		return nil, err
	}

	// A token whose review was already submitted resolves exactly like an
	// unknown one; only the submit path reports AlreadyUsed.
	if req.Status == models.RequestStatusSubmitted {
		metrics.TokenResolutions.WithLabelValues("already_used").Inc()
		return nil, apperrors.NotFoundError("review request")
	}
	if req.Expired(s.now()) {
		metrics.TokenResolutions.WithLabelValues("expired").Inc()
		return nil, apperrors.ExpiredError("review request")
	}

	candidate, err := s.candidateRepo.GetByID(ctx, req.CandidateID)
	if err != nil {
		metrics.TokenResolutions.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to load candidate for token: %w", err)
	}
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		metrics.TokenResolutions.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to load job for token: %w", err)
	}

	metrics.TokenResolutions.WithLabelValues("success").Inc()

	return &models.TokenInfo{
		Token:         rawToken,
		CandidateName: candidate.Name,
		CandidateSlug: candidate.Slug,
		Company:       job.Company,
		Title:         job.Title,
	}, nil
}

// SubmitReview consumes a token and creates the review in one atomic step.
// The new review starts unapproved; the verification flags are computed here
// and never revisited.
func (s *RequestService) SubmitReview(ctx context.Context, rawToken string, req *models.SubmitReviewRequest) (*models.Review, error) {
	start := time.Now()

	if !req.ConfirmManager {
		metrics.ReviewSubmissions.WithLabelValues("not_confirmed").Inc()
		return nil, apperrors.ValidationError("confirm_manager", "reviewer must confirm the manager relationship")
	}

	review := &models.Review{
		ReviewerName:           req.ReviewerName,
		ReviewerTitle:          req.ReviewerTitle,
		ReviewerCompany:        req.ReviewerCompany,
		ReviewerEmail:          req.ReviewerEmail,
		Overall:                req.Overall,
		Skills:                 req.Skills,
		PublicText:             req.PublicText,
		VerifiedCorporateEmail: s.verifier.IsCorporate(req.ReviewerEmail),
		VerificationChecked:    true,
		ApprovedByCandidate:    false,
	}

	created, err := s.requestRepo.Consume(ctx, rawToken, s.now(), review)
	if err != nil {
		metrics.ReviewSubmissions.WithLabelValues(submissionFailureLabel(err)).Inc()
		return nil, err
	}

	metrics.ReviewSubmissions.WithLabelValues("success").Inc()
	metrics.ReviewSubmissionDuration.Observe(metrics.MeasureDuration(start))

	logger.Info("Review submitted",
		zap.String("review_id", created.ID),
		zap.String("candidate_id", created.CandidateID),
		zap.Bool("verified_corporate_email", created.VerifiedCorporateEmail))

	trigger.CallAsyncWithPayload(s.config.EventTriggers.ReviewSubmittedTriggerURL, map[string]interface{}{
		"review_id":    created.ID,
		"candidate_id": created.CandidateID,
		"job_id":       created.JobID,
	}, s.httpClient)

	return created, nil
}

func submissionFailureLabel(err error) string {
	switch {
	case apperrors.Is(err, apperrors.ErrConflict):
		return "already_used"
	case apperrors.Is(err, apperrors.ErrExpired):
		return "expired"
	case apperrors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case apperrors.Is(err, apperrors.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}
