package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/vericred/vericred-api/internal/cache"
	"github.com/vericred/vericred-api/internal/models"
	"github.com/vericred/vericred-api/internal/repository"
	"github.com/vericred/vericred-api/pkg/apperrors"
	"github.com/vericred/vericred-api/pkg/logger"
	"github.com/vericred/vericred-api/pkg/metrics"
	"github.com/vericred/vericred-api/pkg/retry"
	"github.com/vericred/vericred-api/pkg/slug"
	"github.com/vericred/vericred-api/pkg/storage"
)

// CandidateService handles candidate registration and profile assets
type CandidateService struct {
	candidateRepo repository.CandidateStore
	photoStorage  storage.PhotoStorageInterface
	profileCache  *cache.ProfileCache
}

// NewCandidateService creates a new candidate service instance. photoStorage
// may be nil when no object store is configured; photo uploads then fail
// with a validation error instead of a panic.
func NewCandidateService(
	candidateRepo repository.CandidateStore,
	photoStorage storage.PhotoStorageInterface,
	profileCache *cache.ProfileCache,
) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
		photoStorage:  photoStorage,
		profileCache:  profileCache,
	}
}

// Register creates a candidate. The slug is normalized to canonical form
// before storage; a slug that normalizes to nothing is rejected.
func (s *CandidateService) Register(ctx context.Context, req *models.CreateCandidateRequest) (*models.Candidate, error) {
	normalized := slug.Normalize(req.Slug)
	if !slug.IsValid(normalized) {
		metrics.CandidateRegistrations.WithLabelValues("invalid").Inc()
		return nil, apperrors.ValidationError("slug", "must contain letters or digits")
	}

	candidate, err := s.candidateRepo.Create(ctx, &models.Candidate{
		Name:     req.Name,
		Email:    req.Email,
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
		Slug:     normalized,
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			metrics.CandidateRegistrations.WithLabelValues("slug_taken").Inc()
		} else {
			metrics.CandidateRegistrations.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.CandidateRegistrations.WithLabelValues("success").Inc()
	logger.Info("Candidate registered",
		zap.String("candidate_id", candidate.ID),
		zap.String("slug", candidate.Slug))

	return candidate, nil
}

// GetCandidate fetches a candidate by id
func (s *CandidateService) GetCandidate(ctx context.Context, candidateID string) (*models.Candidate, error) {
	id, err := models.ParseLookupID("candidate", candidateID)
	if err != nil {
		return nil, err
	}
	return s.candidateRepo.GetByID(ctx, id)
}

// UploadPhoto validates and stores a candidate photo, then persists its
// public URL. Uploads retry on transient storage failures.
func (s *CandidateService) UploadPhoto(ctx context.Context, candidateID string, req *models.UploadPhotoRequest) (string, error) {
	id, err := models.ParseLookupID("candidate", candidateID)
	if err != nil {
		metrics.PhotoUploads.WithLabelValues("not_found").Inc()
		return "", err
	}

	if s.photoStorage == nil {
		metrics.PhotoUploads.WithLabelValues("unavailable").Inc()
		return "", apperrors.ValidationError("photo", "photo storage is not configured")
	}

	if _, err := s.candidateRepo.GetByID(ctx, id); err != nil {
		metrics.PhotoUploads.WithLabelValues("not_found").Inc()
		return "", err
	}

	if err := s.photoStorage.ValidatePhotoType(req.ContentType); err != nil {
		metrics.PhotoUploads.WithLabelValues("invalid").Inc()
		return "", apperrors.ValidationError("content_type", err.Error())
	}
	if err := s.photoStorage.ValidatePhotoSize(req.Photo); err != nil {
		metrics.PhotoUploads.WithLabelValues("invalid").Inc()
		return "", apperrors.ValidationError("photo", err.Error())
	}

	key := s.photoStorage.PhotoKey(id, req.FileName)

	photoURL, err := retry.DoWithResult(ctx, retry.StorageConfig(), "upload_candidate_photo", func() (string, error) {
		return s.photoStorage.UploadPhoto(ctx, req.Photo, key, req.ContentType)
	})
	if err != nil {
		metrics.PhotoUploads.WithLabelValues("error").Inc()
		return "", apperrors.InternalError("failed to upload photo")
	}

	if _, err := s.candidateRepo.UpdatePhotoURL(ctx, id, photoURL); err != nil {
		metrics.PhotoUploads.WithLabelValues("error").Inc()
		return "", err
	}

	s.profileCache.InvalidateCandidate(id)

	metrics.PhotoUploads.WithLabelValues("success").Inc()
	logger.Info("Candidate photo uploaded",
		zap.String("candidate_id", id),
		zap.String("photo_url", photoURL))

	return photoURL, nil
}
