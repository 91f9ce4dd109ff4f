package models

import "time"

// Candidate is a job seeker collecting verified reviews. The slug is the
// public profile handle: globally unique and immutable once set.
type Candidate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCandidateRequest is the candidate registration payload
type CreateCandidateRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Email    string `json:"email" binding:"required,email"`
	Bio      string `json:"bio" binding:"max=5000"`
	PhotoURL string `json:"photo_url" binding:"omitempty,url"`
	Slug     string `json:"slug" binding:"required,min=3,max=64"`
}

// UploadPhotoRequest carries a base64-encoded candidate photo
type UploadPhotoRequest struct {
	Photo       string `json:"photo" binding:"required"`
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// UploadPhotoResponse returns the stored photo URL
type UploadPhotoResponse struct {
	PhotoURL string `json:"photo_url"`
}
