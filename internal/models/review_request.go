package models

import "time"

// RequestStatus is the lifecycle state of a review request. Transitions are
// forward-only: pending -> submitted. Expiry is not a stored transition; an
// expired request simply stops resolving.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusSubmitted RequestStatus = "submitted"
)

// ReviewRequest is a single-use invitation for a manager to review a
// candidate's work at a specific job. The token is unique across all
// requests and is revealed exactly once, at issuance.
type ReviewRequest struct {
	ID            string        `json:"id"`
	CandidateID   string        `json:"candidate_id"`
	JobID         string        `json:"job_id"`
	ReviewerName  string        `json:"reviewer_name,omitempty"`
	ReviewerEmail string        `json:"reviewer_email"`
	Token         string        `json:"-"`
	Status        RequestStatus `json:"status"`
	ExpiresAt     time.Time     `json:"expires_at"`
	UsedAt        *time.Time    `json:"used_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Expired reports whether the request is past its expiry at the given time.
func (r *ReviewRequest) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// CreateReviewRequestRequest is the token issuance payload
type CreateReviewRequestRequest struct {
	CandidateID   string `json:"candidate_id" binding:"required"`
	JobID         string `json:"job_id" binding:"required"`
	ReviewerEmail string `json:"reviewer_email" binding:"required,email"`
	ReviewerName  string `json:"reviewer_name" binding:"max=200"`
}

// CreateReviewRequestResponse returns the request id and the raw token.
// This is the only place the raw token ever appears in a response.
type CreateReviewRequestResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// TokenInfo is the display payload a reviewer sees when resolving a token
type TokenInfo struct {
	Token         string `json:"token"`
	CandidateName string `json:"candidate_name"`
	CandidateSlug string `json:"candidate_slug"`
	Company       string `json:"company"`
	Title         string `json:"title"`
}
