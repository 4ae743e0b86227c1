package services

import (
	"fmt"
	"math"
	"time"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/models"

	"gorm.io/gorm"
)

type StepService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewStepService(db *gorm.DB, hub *RealtimeHub) *StepService {
	return &StepService{db: db, hub: hub}
}

// Log appends a step-count entry. Distance and calories are stored only
// when positive, otherwise left unset.
func (s *StepService) Log(user *models.User, steps int, distanceKm, calories float64, goal int) (Progress, error) {
	if steps <= 0 {
		return Progress{}, fmt.Errorf("%w: step count must be positive", ErrValidation)
	}

	before, err := s.DailyTotal(user.ID, time.Now())
	if err != nil {
		return Progress{}, err
	}

	entry := models.StepLog{
		UserID:   user.ID,
		Steps:    steps,
		LoggedAt: time.Now(),
	}
	if distanceKm > 0 {
		entry.DistanceKm = &distanceKm
	}
	if calories > 0 {
		entry.CaloriesBurned = &calories
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entry).Error
	})
	if err != nil {
		return Progress{}, err
	}
	metricLogsTotal.WithLabelValues("steps").Inc()

	total, err := s.DailyTotal(user.ID, time.Now())
	if err != nil {
		return Progress{}, err
	}

	progress := GoalProgress(total, goal)
	if s.hub != nil && before < goal && total >= goal {
		s.hub.BroadcastGoalEvent(user.ID, GoalEvent{
			Kind: "goal.completed", Metric: "steps", Total: total, Goal: goal,
		})
	}
	return progress, nil
}

// DailyTotal sums steps logged on the given local calendar day.
func (s *StepService) DailyTotal(userID uint, date time.Time) (int, error) {
	start := dayStartLocal(date)
	end := start.Add(24 * time.Hour)

	var total int64
	err := s.db.Model(&models.StepLog{}).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Select("COALESCE(SUM(steps), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

// TodayProgress is the read used by GET /api/steps/today.
func (s *StepService) TodayProgress(userID uint, goal int) (Progress, error) {
	total, err := s.DailyTotal(userID, time.Now())
	if err != nil {
		return Progress{}, err
	}
	return GoalProgress(total, goal), nil
}

// EstimateDistanceKm converts a step count to kilometers using the
// average stride factor.
func EstimateDistanceKm(steps int) float64 {
	return math.Round(float64(steps)*0.0008*100) / 100
}
