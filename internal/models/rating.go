package models

import "time"

// A response holds at most one rating; the unique index makes the
// upsert in the repository race-safe.
type Rating struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ResponseID uint `gorm:"not null;uniqueIndex" json:"response_id"`

	Rating bool `gorm:"not null" json:"rating"`

	CreatedAt time.Time `json:"created_at"`
}
