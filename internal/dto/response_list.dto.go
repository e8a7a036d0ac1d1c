package dto

import "time"

// ResponseWithRating is the row shape of the response listing: the
// response columns plus the left-joined rating. Rating and RatingID
// serialize as null when no rating exists.
type ResponseWithRating struct {
	ID           uint      `json:"id"`
	BrandID      uint      `json:"brand_id"`
	ResponseText string    `json:"response_text"`
	CreatedAt    time.Time `json:"created_at"`

	Rating   *bool `json:"rating"`
	RatingID *uint `json:"rating_id"`
}
