package models

import "time"

type Brand struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	Name    string `gorm:"size:255;not null" json:"name"`
	Prompt  string `gorm:"type:text" json:"prompt"`
	LogoURL string `gorm:"size:512" json:"logo_url"`

	Responses []Response `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
