package models

import "time"

type Response struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	BrandID uint `gorm:"not null;index" json:"brand_id"`

	ResponseText string `gorm:"type:text;not null" json:"response_text"`

	Rating *Rating `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
