package models

import (
	"gorm.io/gorm"
)

// User is identified by phone number. Created lazily on first
// reference (login, log, BMI query); see services.UserService.GetOrCreate.
type User struct {
	gorm.Model
	PhoneNumber   string  `gorm:"uniqueIndex;not null" json:"phone_number"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Height        float64 `json:"height"` // cm; zero means not set yet
	Weight        float64 `json:"weight"` // kg
	ActivityLevel string  `gorm:"default:moderate" json:"activity_level"` // low, moderate, high

	WaterLogs     []WaterLog     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	StepLogs      []StepLog      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	HealthRecords []HealthRecord `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// HasProfile reports whether enough is known to compute a BMI.
func (u *User) HasProfile() bool {
	return u.Height > 0 && u.Weight > 0
}
