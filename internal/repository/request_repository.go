package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/pkg/apperrors"
	"github.com/vericred/vericred-api/pkg/logger"
	"github.com/vericred/vericred-api/pkg/metrics"
)

const requestColumns = "id, candidate_id, job_id, COALESCE(reviewer_name, ''), reviewer_email, token, status, expires_at, used_at, created_at"

// RequestRepository handles review-request data access
type RequestRepository struct {
	pool *pgxpool.Pool
}

// NewRequestRepository creates a new review-request repository
func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

func scanRequest(row pgx.Row) (*models.ReviewRequest, error) {
	var r models.ReviewRequest
	err := row.Scan(&r.ID, &r.CandidateID, &r.JobID, &r.ReviewerName, &r.ReviewerEmail,
		&r.Token, &r.Status, &r.ExpiresAt, &r.UsedAt, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create inserts a review request. The token column carries a unique index;
// with 256-bit tokens a collision is practically impossible, but a violation
// still maps to ErrConflict rather than a bare SQL error.
func (r *RequestRepository) Create(ctx context.Context, req *models.ReviewRequest) (*models.ReviewRequest, error) {
	start := time.Now()
	operation := "createReviewRequest"

	query := `
		INSERT INTO review_requests (candidate_id, job_id, reviewer_name, reviewer_email, token, status, expires_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
		RETURNING ` + requestColumns

	created, err := scanRequest(r.pool.QueryRow(ctx, query,
		req.CandidateID, req.JobID, req.ReviewerName, req.ReviewerEmail,
		req.Token, req.Status, req.ExpiresAt))

	duration := metrics.MeasureDuration(start)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			recordMetrics(operation, "conflict", duration)
			return nil, apperrors.ConflictError("token already exists")
		}
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to create review request: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.String("request_id", created.ID))

	return created, nil
}

// GetByToken fetches a request by exact token match, regardless of status.
// Status and expiry classification is the caller's concern.
func (r *RequestRepository) GetByToken(ctx context.Context, reqToken string) (*models.ReviewRequest, error) {
	start := time.Now()
	operation := "getRequestByToken"

	query := fmt.Sprintf("SELECT %s FROM review_requests WHERE token = $1", requestColumns)

	req, err := scanRequest(r.pool.QueryRow(ctx, query, reqToken))

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("review request")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query review request: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return req, nil
}

// Consume transitions the request pending -> submitted and inserts the
// review in one transaction. The status flip is a single conditional UPDATE,
// not a read-then-write: under concurrent calls on the same token the
// database serializes the row update and exactly one caller sees it succeed.
func (r *RequestRepository) Consume(ctx context.Context, reqToken string, now time.Time, review *models.Review) (*models.Review, error) {
	start := time.Now()
	operation := "consumeReviewRequest"

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	var candidateID, jobID string
	err = tx.QueryRow(ctx, `
		UPDATE review_requests
		SET status = $2, used_at = $3
		WHERE token = $1 AND status = $4 AND expires_at > $3
		RETURNING candidate_id, job_id
	`, reqToken, models.RequestStatusSubmitted, now, models.RequestStatusPending).Scan(&candidateID, &jobID)

	if errors.Is(err, pgx.ErrNoRows) {
		duration := metrics.MeasureDuration(start)
		classified := r.classifyConsumeFailure(ctx, reqToken, now)
		recordMetrics(operation, consumeFailureLabel(classified), duration)
		return nil, classified
	}
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		logger.LogAPICall("postgres", operation, "error", metrics.MeasureDuration(start), zap.Error(err))
		return nil, fmt.Errorf("failed to consume review request: %w", err)
	}

	review.CandidateID = candidateID
	review.JobID = jobID

	created, err := insertReview(ctx, tx, review)
	if err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		logger.LogAPICall("postgres", operation, "error", metrics.MeasureDuration(start), zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to commit review submission: %w", err)
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration,
		zap.String("review_id", created.ID),
		zap.String("candidate_id", candidateID))

	return created, nil
}

// classifyConsumeFailure explains why the conditional update matched nothing.
// The outcome only affects the error kind reported upstream; correctness of
// the at-most-once guarantee never depends on this read.
func (r *RequestRepository) classifyConsumeFailure(ctx context.Context, reqToken string, now time.Time) error {
	var status models.RequestStatus
	var expiresAt time.Time

	err := r.pool.QueryRow(ctx,
		"SELECT status, expires_at FROM review_requests WHERE token = $1",
		reqToken).Scan(&status, &expiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFoundError("review request")
	}
	if err != nil {
		return fmt.Errorf("failed to classify consume failure: %w", err)
	}

	if status == models.RequestStatusSubmitted {
		return apperrors.ConflictError("token already used")
	}
	if now.After(expiresAt) {
		return apperrors.ExpiredError("review request")
	}

	return apperrors.NotFoundError("review request")
}

func consumeFailureLabel(err error) string {
	switch {
	case apperrors.Is(err, apperrors.ErrConflict):
		return "already_used"
	case apperrors.Is(err, apperrors.ErrExpired):
		return "expired"
	case apperrors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}

var _ RequestStore = (*RequestRepository)(nil)
