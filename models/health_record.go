package models

import (
	"time"

	"gorm.io/gorm"
)

// HealthRecord is a point-in-time snapshot (weight, sleep, mood, energy),
// distinct from the continuous water/step logs. One row per logging event;
// the "latest" record is the one with the most recent RecordDate.
// Optional fields are pointers: absent means unset, not zero.
type HealthRecord struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	RecordDate time.Time `gorm:"index;not null" json:"record_date"`

	Weight      *float64 `json:"weight,omitempty"` // kg
	BPSystolic  *int     `json:"blood_pressure_systolic,omitempty"`
	BPDiastolic *int     `json:"blood_pressure_diastolic,omitempty"`
	HeartRate   *int     `json:"heart_rate,omitempty"`
	SleepHours  *float64 `json:"sleep_hours,omitempty"`
	MoodScore   *int     `json:"mood_score,omitempty"`   // 1-10
	EnergyLevel *int     `json:"energy_level,omitempty"` // 1-10
	Notes       string   `json:"notes,omitempty"`
}
