package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/pkg/apperrors"
	"github.com/vericred/vericred-api/pkg/logger"
	"github.com/vericred/vericred-api/pkg/metrics"
)

const reviewColumns = `id, candidate_id, job_id, reviewer_name, COALESCE(reviewer_title, ''),
	COALESCE(reviewer_company, ''), reviewer_email, overall, skills, public_text,
	verified_corporate_email, verification_checked, approved_by_candidate, created_at, updated_at`

// ReviewRepository handles review data access
type ReviewRepository struct {
	pool *pgxpool.Pool
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func scanReview(row pgx.Row) (*models.Review, error) {
	var rv models.Review
	var skillsRaw []byte
	err := row.Scan(&rv.ID, &rv.CandidateID, &rv.JobID, &rv.ReviewerName, &rv.ReviewerTitle,
		&rv.ReviewerCompany, &rv.ReviewerEmail, &rv.Overall, &skillsRaw, &rv.PublicText,
		&rv.VerifiedCorporateEmail, &rv.VerificationChecked, &rv.ApprovedByCandidate,
		&rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(skillsRaw, &rv.Skills); err != nil {
		return nil, fmt.Errorf("failed to decode review skills: %w", err)
	}
	return &rv, nil
}

// insertReview writes a review inside the caller's transaction so that
// request consumption and review creation commit or roll back together.
func insertReview(ctx context.Context, tx pgx.Tx, review *models.Review) (*models.Review, error) {
	skillsRaw, err := json.Marshal(review.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to encode review skills: %w", err)
	}

	query := `
		INSERT INTO reviews (candidate_id, job_id, reviewer_name, reviewer_title, reviewer_company,
			reviewer_email, overall, skills, public_text, verified_corporate_email,
			verification_checked, approved_by_candidate)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + reviewColumns

	created, err := scanReview(tx.QueryRow(ctx, query,
		review.CandidateID, review.JobID, review.ReviewerName, review.ReviewerTitle,
		review.ReviewerCompany, review.ReviewerEmail, review.Overall, skillsRaw,
		review.PublicText, review.VerifiedCorporateEmail, review.VerificationChecked,
		review.ApprovedByCandidate))
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return created, nil
}

// GetByID fetches a review by id
func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*models.Review, error) {
	start := time.Now()
	operation := "getReviewByID"

	query := fmt.Sprintf("SELECT %s FROM reviews WHERE id = $1", reviewColumns)

	review, err := scanReview(r.pool.QueryRow(ctx, query, id))

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("review")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query review: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return review, nil
}

// SetApproval updates the candidate-approval flag. The update is
// unconditional on the current flag value, so repeated calls with the same
// value succeed and leave the row unchanged apart from updated_at.
func (r *ReviewRepository) SetApproval(ctx context.Context, id string, approve bool) (*models.Review, error) {
	start := time.Now()
	operation := "setReviewApproval"

	query := `
		UPDATE reviews
		SET approved_by_candidate = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + reviewColumns

	review, err := scanReview(r.pool.QueryRow(ctx, query, id, approve))

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("review")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to update review approval: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration,
		zap.String("review_id", id), zap.Bool("approve", approve))

	return review, nil
}

// ListApprovedByCandidate returns candidate-approved reviews, oldest first
func (r *ReviewRepository) ListApprovedByCandidate(ctx context.Context, candidateID string) ([]*models.Review, error) {
	start := time.Now()
	operation := "listApprovedReviews"

	query := fmt.Sprintf(`
		SELECT %s FROM reviews
		WHERE candidate_id = $1 AND approved_by_candidate = TRUE
		ORDER BY created_at ASC`, reviewColumns)

	rows, err := r.pool.Query(ctx, query, candidateID)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query approved reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*models.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			recordMetrics(operation, "error", metrics.MeasureDuration(start))
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		recordMetrics(operation, "error", metrics.MeasureDuration(start))
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}

	recordMetrics(operation, "success", metrics.MeasureDuration(start))
	return reviews, nil
}

var _ ReviewStore = (*ReviewRepository)(nil)
