package repository

import (
	"context"
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

const jobColumns = "id, candidate_id, company, title, COALESCE(start_date, ''), COALESCE(end_date, ''), created_at"

// JobRepository handles employment-record data access
type JobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository creates a new job repository
func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(&j.ID, &j.CandidateID, &j.Company, &j.Title, &j.StartDate, &j.EndDate, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Create inserts a job and returns the stored row
func (r *JobRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	start := time.Now()
	operation := "createJob"

	query := `
		INSERT INTO jobs (candidate_id, company, title, start_date, end_date)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
		RETURNING ` + jobColumns

	created, err := scanJob(r.pool.QueryRow(ctx, query,
		job.CandidateID, job.Company, job.Title, job.StartDate, job.EndDate))

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.String("candidate_id", created.CandidateID))

	return created, nil
}

// GetByID fetches a job by id
func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	start := time.Now()
	operation := "getJobByID"

	query := fmt.Sprintf("SELECT %s FROM jobs WHERE id = $1", jobColumns)

	job, err := scanJob(r.pool.QueryRow(ctx, query, id))

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("job")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query job: %w", err)
	}

	recordMetrics(operation, "success", duration)
	return job, nil
}

// ListByCandidate fetches all jobs owned by a candidate, oldest first
func (r *JobRepository) ListByCandidate(ctx context.Context, candidateID string) ([]*models.Job, error) {
	start := time.Now()
	operation := "listJobsByCandidate"

	query := fmt.Sprintf("SELECT %s FROM jobs WHERE candidate_id = $1 ORDER BY created_at ASC", jobColumns)

	rows, err := r.pool.Query(ctx, query, candidateID)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]*models.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			duration := metrics.MeasureDuration(start)
			recordMetrics(operation, "error", duration)
			logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.Int("count", len(jobs)))

	return jobs, nil
}

var _ JobStore = (*JobRepository)(nil)
