package models

// ProfileReview is an approved review joined to its job for public display.
// A review whose job reference no longer resolves keeps an empty Job object
// rather than disappearing from the profile.
type ProfileReview struct {
	Review
	Job Job `json:"job"`
}

// PublicProfile is the public-facing aggregate for a candidate slug:
// the candidate, all their jobs, and only the reviews they approved.
type PublicProfile struct {
	Candidate Candidate       `json:"candidate"`
	Jobs      []Job           `json:"jobs"`
	Reviews   []ProfileReview `json:"reviews"`
}
