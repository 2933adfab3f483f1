package models

import (
	"time"
)

type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title      string    `gorm:"not null" json:"title"`
	Excerpt    string    `gorm:"type:text" json:"excerpt"`
	Category   string    `gorm:"index" json:"category"`
	CoverImage string    `gorm:"type:text" json:"cover_image"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
