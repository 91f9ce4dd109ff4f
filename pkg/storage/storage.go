package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/vericred/vericred-api/pkg/logger"
	"github.com/vericred/vericred-api/pkg/metrics"
	"go.uber.org/zap"
)

// maxPhotoSize limits decoded candidate photos to 10MB.
const maxPhotoSize = 10 * 1024 * 1024

// PhotoStorage uploads candidate profile photos to an S3-compatible object
// store and returns their public URLs.
type PhotoStorage struct {
	s3Client   *s3.Client
	bucketName string
	endpoint   string
}

// PhotoStorageInterface allows mocking the storage client in tests.
type PhotoStorageInterface interface {
	UploadPhoto(ctx context.Context, photoData, key, contentType string) (string, error)
	ValidatePhotoType(contentType string) error
	ValidatePhotoSize(photoData string) error
	PhotoKey(candidateID, originalFileName string) string
}

// NewPhotoStorage creates a client for an S3-compatible object store.
func NewPhotoStorage(accessKeyID, secretAccessKey, bucketName, endpoint, region string) (*PhotoStorage, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("photo storage bucket name is required")
	}

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"", // session token not needed
		),
	})

	logger.Info("Photo storage client initialized",
		zap.String("bucket", bucketName),
		zap.String("endpoint", endpoint),
		zap.String("region", region),
	)

	return &PhotoStorage{
		s3Client:   s3Client,
		bucketName: bucketName,
		endpoint:   endpoint,
	}, nil
}

// UploadPhoto uploads a base64-encoded photo (raw or data URI) and returns
// the public URL.
func (s *PhotoStorage) UploadPhoto(ctx context.Context, photoData, key, contentType string) (string, error) {
	start := time.Now()
	operation := "uploadPhoto"

	photoBytes, err := decodePhoto(photoData)
	if err != nil {
		metrics.StorageRequestDuration.WithLabelValues(operation, "error").Observe(metrics.MeasureDuration(start))
		metrics.StorageRequestTotal.WithLabelValues(operation, "error").Inc()
		return "", err
	}

	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(photoBytes),
		ContentType: aws.String(contentType),
	})

	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.StorageRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.StorageRequestTotal.WithLabelValues(operation, "error").Inc()
		logger.LogAPICall("object_storage", operation, "error", duration,
			zap.Error(err),
			zap.String("key", key),
		)
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	metrics.StorageRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.StorageRequestTotal.WithLabelValues(operation, "success").Inc()
	logger.LogAPICall("object_storage", operation, "success", duration,
		zap.String("key", key),
		zap.Int("size_bytes", len(photoBytes)),
	)

	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucketName, key), nil
}

// ValidatePhotoType validates the photo content type
func (s *PhotoStorage) ValidatePhotoType(contentType string) error {
	validTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
	}

	if !validTypes[strings.ToLower(contentType)] {
		return fmt.Errorf("invalid file type: %s. Allowed types: jpeg, jpg, png, webp", contentType)
	}

	return nil
}

// ValidatePhotoSize validates the decoded photo size
func (s *PhotoStorage) ValidatePhotoSize(photoData string) error {
	photoBytes, err := decodePhoto(photoData)
	if err != nil {
		return err
	}

	if len(photoBytes) > maxPhotoSize {
		return fmt.Errorf("photo exceeds maximum size of %d bytes", maxPhotoSize)
	}

	return nil
}

// PhotoKey builds the object key for a candidate photo. The candidate id
// prefix keeps uploads from different candidates separate and makes
// re-uploads overwrite predictable keys.
func (s *PhotoStorage) PhotoKey(candidateID, originalFileName string) string {
	ext := "jpg"
	if idx := strings.LastIndex(originalFileName, "."); idx >= 0 && idx < len(originalFileName)-1 {
		ext = strings.ToLower(originalFileName[idx+1:])
	}
	return fmt.Sprintf("candidates/%s/photo.%s", candidateID, ext)
}

func decodePhoto(photoData string) ([]byte, error) {
	// Handle data URI format (data:image/png;base64,...)
	if strings.HasPrefix(photoData, "data:") {
		parts := strings.SplitN(photoData, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid data URI format")
		}
		photoData = parts[1]
	}

	photoBytes, err := base64.StdEncoding.DecodeString(photoData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 photo: %w", err)
	}

	return photoBytes, nil
}

var _ PhotoStorageInterface = (*PhotoStorage)(nil)
