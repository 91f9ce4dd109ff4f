package models

import "time"

// Job is an employment record owned by a candidate. Review requests and
// reviews reference jobs by id.
type Job struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	Company     string    `json:"company"`
	Title       string    `json:"title"`
	StartDate   string    `json:"start_date,omitempty"`
	EndDate     string    `json:"end_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateJobRequest is the employment-record creation payload. Dates are
// period strings ("2021-03", "Present"), not parsed timestamps.
type CreateJobRequest struct {
	CandidateID string `json:"candidate_id" binding:"required"`
	Company     string `json:"company" binding:"required,max=200"`
	Title       string `json:"title" binding:"required,max=200"`
	StartDate   string `json:"start_date" binding:"max=20"`
	EndDate     string `json:"end_date" binding:"max=20"`
}
