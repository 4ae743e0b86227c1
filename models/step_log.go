package models

import (
	"time"

	"gorm.io/gorm"
)

// StepLog is one step-count entry. Append-only.
type StepLog struct {
	gorm.Model
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	Steps          int       `gorm:"not null" json:"steps"`
	LoggedAt       time.Time `gorm:"index;not null" json:"logged_at"`
	DistanceKm     *float64  `json:"distance_km,omitempty"`
	CaloriesBurned *float64  `json:"calories_burned,omitempty"`
}
