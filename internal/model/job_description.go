package model

import "time"

// JobDescription is a saved role posting used for match scoring and as
// source material for question drafting.
type JobDescription struct {
	ID          string    `gorm:"primarykey" json:"id"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
