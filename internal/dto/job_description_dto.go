package dto

import "time"

// JobDescriptionRequest creates or fully replaces a job description.
type JobDescriptionRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type JobDescriptionResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ImportJobDescriptionsResponse reports the outcome of a bulk import.
// Imports are best-effort: entries that fail to insert are skipped and
// the rest still land.
type ImportJobDescriptionsResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
