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

const candidateColumns = "id, name, email, COALESCE(bio, ''), COALESCE(photo_url, ''), slug, created_at, updated_at"

// CandidateRepository handles candidate data access
type CandidateRepository struct {
	pool *pgxpool.Pool
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(pool *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{pool: pool}
}

func scanCandidate(row pgx.Row) (*models.Candidate, error) {
	var c models.Candidate
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Bio, &c.PhotoURL, &c.Slug, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a candidate. A duplicate slug surfaces as ErrConflict.
func (r *CandidateRepository) Create(ctx context.Context, candidate *models.Candidate) (*models.Candidate, error) {
	start := time.Now()
	operation := "createCandidate"

	query := `
		INSERT INTO candidates (name, email, bio, photo_url, slug)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5)
		RETURNING ` + candidateColumns

	created, err := scanCandidate(r.pool.QueryRow(ctx, query,
		candidate.Name, candidate.Email, candidate.Bio, candidate.PhotoURL, candidate.Slug))

	duration := metrics.MeasureDuration(start)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			recordMetrics(operation, "conflict", duration)
			return nil, apperrors.ConflictError("slug already in use")
		}
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.String("slug", created.Slug))

	return created, nil
}

// GetByID fetches a candidate by id
func (r *CandidateRepository) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	return r.getByField(ctx, "getCandidateByID", "id = $1", id)
}

// GetBySlug fetches a candidate by public slug
func (r *CandidateRepository) GetBySlug(ctx context.Context, slug string) (*models.Candidate, error) {
	return r.getByField(ctx, "getCandidateBySlug", "slug = $1", slug)
}

func (r *CandidateRepository) getByField(ctx context.Context, operation, whereClause string, arg interface{}) (*models.Candidate, error) {
	start := time.Now()

	query := fmt.Sprintf("SELECT %s FROM candidates WHERE %s", candidateColumns, whereClause)

	candidate, err := scanCandidate(r.pool.QueryRow(ctx, query, arg))

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("candidate")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query candidate: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return candidate, nil
}

// UpdatePhotoURL sets the photo URL and returns the updated candidate row
func (r *CandidateRepository) UpdatePhotoURL(ctx context.Context, id, photoURL string) (*models.Candidate, error) {
	start := time.Now()
	operation := "updateCandidatePhoto"

	query := `
		UPDATE candidates
		SET photo_url = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + candidateColumns

	candidate, err := scanCandidate(r.pool.QueryRow(ctx, query, id, photoURL))

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("candidate")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to update candidate photo: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.String("candidate_id", id))

	return candidate, nil
}

var _ CandidateStore = (*CandidateRepository)(nil)
