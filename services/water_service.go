package services

import (
	"fmt"
	"time"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/models"

	"gorm.io/gorm"
)

// dayStartLocal truncates to local midnight. "Today" throughout the
// aggregation layer means the host's local calendar day.
func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

type WaterService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewWaterService(db *gorm.DB, hub *RealtimeHub) *WaterService {
	return &WaterService{db: db, hub: hub}
}

// Log appends a water intake entry and returns the updated progress for
// today. The write and the triggering request commit together.
func (s *WaterService) Log(user *models.User, amountML int, note string, goalML int) (Progress, error) {
	if amountML <= 0 {
		return Progress{}, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	before, err := s.DailyTotal(user.ID, time.Now())
	if err != nil {
		return Progress{}, err
	}

	entry := models.WaterLog{
		UserID:   user.ID,
		Amount:   amountML,
		LoggedAt: time.Now(),
		Note:     note,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entry).Error
	})
	if err != nil {
		return Progress{}, err
	}
	metricLogsTotal.WithLabelValues("water").Inc()

	total, err := s.DailyTotal(user.ID, time.Now())
	if err != nil {
		return Progress{}, err
	}

	progress := GoalProgress(total, goalML)
	if s.hub != nil && before < goalML && total >= goalML {
		s.hub.BroadcastGoalEvent(user.ID, GoalEvent{
			Kind: "goal.completed", Metric: "water", Total: total, Goal: goalML,
		})
	}
	return progress, nil
}

// DailyTotal sums water amounts logged on the given local calendar day.
func (s *WaterService) DailyTotal(userID uint, date time.Time) (int, error) {
	start := dayStartLocal(date)
	end := start.Add(24 * time.Hour)

	var total int64
	err := s.db.Model(&models.WaterLog{}).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

// TodayProgress is the read used by GET /api/water/today.
func (s *WaterService) TodayProgress(userID uint, goalML int) (Progress, error) {
	total, err := s.DailyTotal(userID, time.Now())
	if err != nil {
		return Progress{}, err
	}
	return GoalProgress(total, goalML), nil
}

// RecommendedIntakeML is the rule-of-thumb daily intake from body weight
// (35 ml per kg).
func RecommendedIntakeML(weightKg float64) int {
	return int(weightKg * 35)
}
