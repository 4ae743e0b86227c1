package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/models"

	"gorm.io/gorm"
)

type HealthService struct {
	db *gorm.DB
}

func NewHealthService(db *gorm.DB) *HealthService {
	return &HealthService{db: db}
}

// RecordInput carries one health snapshot. All fields are optional;
// absent fields are stored as unset.
type RecordInput struct {
	Weight      *float64 `json:"weight"`
	BPSystolic  *int     `json:"blood_pressure_systolic"`
	BPDiastolic *int     `json:"blood_pressure_diastolic"`
	HeartRate   *int     `json:"heart_rate"`
	SleepHours  *float64 `json:"sleep_hours"`
	MoodScore   *int     `json:"mood_score"`
	EnergyLevel *int     `json:"energy_level"`
	Notes       string   `json:"notes"`
}

func (in *RecordInput) validate() error {
	if in.Weight != nil && *in.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrValidation)
	}
	if in.SleepHours != nil && (*in.SleepHours < 0 || *in.SleepHours > 24) {
		return fmt.Errorf("%w: sleep_hours must be between 0 and 24", ErrValidation)
	}
	if in.MoodScore != nil && (*in.MoodScore < 1 || *in.MoodScore > 10) {
		return fmt.Errorf("%w: mood_score must be between 1 and 10", ErrValidation)
	}
	if in.EnergyLevel != nil && (*in.EnergyLevel < 1 || *in.EnergyLevel > 10) {
		return fmt.Errorf("%w: energy_level must be between 1 and 10", ErrValidation)
	}
	return nil
}

// LogRecord appends a health snapshot. When a weight is supplied the user
// profile weight is updated in the same transaction, so the next BMI read
// reflects it.
func (s *HealthService) LogRecord(user *models.User, in RecordInput) (*models.HealthRecord, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	record := models.HealthRecord{
		UserID:      user.ID,
		RecordDate:  time.Now(),
		Weight:      in.Weight,
		BPSystolic:  in.BPSystolic,
		BPDiastolic: in.BPDiastolic,
		HeartRate:   in.HeartRate,
		SleepHours:  in.SleepHours,
		MoodScore:   in.MoodScore,
		EnergyLevel: in.EnergyLevel,
		Notes:       in.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		if in.Weight != nil {
			user.Weight = *in.Weight
			if err := tx.Save(user).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metricLogsTotal.WithLabelValues("health_record").Inc()
	return &record, nil
}

// LatestRecord returns the most recent snapshot, or nil if the user has
// never logged one.
func (s *HealthService) LatestRecord(userID uint) (*models.HealthRecord, error) {
	var record models.HealthRecord
	err := s.db.Where("user_id = ?", userID).
		Order("record_date DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
