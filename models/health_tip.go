package models

import (
	"time"

	"gorm.io/gorm"
)

// HealthTip is a wellness tip, not owned by any user. Categories:
// hydration, fitness, sleep, nutrition, mental_health, prevention.
type HealthTip struct {
	gorm.Model
	Title       string    `gorm:"size:200;not null" json:"title"`
	Content     string    `gorm:"not null" json:"content"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	GeneratedAt time.Time `json:"generated_at"`
	IsFeatured  bool      `json:"is_featured"`
	ShareCount  int       `json:"share_count"`
	ShareSlug   string    `gorm:"uniqueIndex;size:36" json:"share_slug"`
}
