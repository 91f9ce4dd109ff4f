package models

import "time"

// Review is manager-authored content created exactly once per consumed
// review request. ApprovedByCandidate is the only field mutable after
// creation, and only by the owning candidate.
type Review struct {
	ID                     string         `json:"id"`
	CandidateID            string         `json:"candidate_id"`
	JobID                  string         `json:"job_id"`
	ReviewerName           string         `json:"reviewer_name"`
	ReviewerTitle          string         `json:"reviewer_title,omitempty"`
	ReviewerCompany        string         `json:"reviewer_company,omitempty"`
	ReviewerEmail          string         `json:"reviewer_email"`
	Overall                int            `json:"overall"`
	Skills                 map[string]int `json:"skills"`
	PublicText             string         `json:"public_text"`
	VerifiedCorporateEmail bool           `json:"verified_corporate_email"`
	VerificationChecked    bool           `json:"verification_checked"`
	ApprovedByCandidate    bool           `json:"approved_by_candidate"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
}

// SubmitReviewRequest is the review form a manager submits against a token.
// ConfirmManager deliberately has no "required" binding: a missing or false
// flag must surface as a domain validation error, not a bind failure.
type SubmitReviewRequest struct {
	ReviewerName    string         `json:"reviewer_name" binding:"required,max=200"`
	ReviewerTitle   string         `json:"reviewer_title" binding:"max=200"`
	ReviewerCompany string         `json:"reviewer_company" binding:"max=200"`
	ReviewerEmail   string         `json:"reviewer_email" binding:"required,email"`
	Overall         int            `json:"overall" binding:"required,min=1,max=5"`
	Skills          map[string]int `json:"skills" binding:"required,dive,min=1,max=5"`
	PublicText      string         `json:"public_text" binding:"required,max=10000"`
	ConfirmManager  bool           `json:"confirm_manager"`
}

// SetApprovalRequest toggles candidate approval of a review
type SetApprovalRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}
