package models

import (
	"time"

	"gorm.io/gorm"
)

// WaterLog is one water intake entry. Append-only, never mutated.
type WaterLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Amount   int       `gorm:"not null" json:"amount"` // ml
	LoggedAt time.Time `gorm:"index;not null" json:"logged_at"`
	Note     string    `gorm:"size:100" json:"note,omitempty"`
}
