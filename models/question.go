package models

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	CategoryID uint           `json:"category_id" gorm:"not null;index"`
	Text       string         `json:"text" gorm:"not null"`
	Answer     string         `json:"answer" gorm:"not null"`
	Points     int            `json:"points" gorm:"not null"`
	Answered   bool           `json:"answered" gorm:"not null;default:false"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Category Category `json:"category,omitempty"`
}
