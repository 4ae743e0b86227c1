package services

import (
	"errors"
	"testing"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/models"
)

func TestStepLogAndDailyTotal(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "919876543210")
	svc := NewStepService(db, nil)

	p, err := svc.Log(user, 12000, 0, 0, 10000)
	if err != nil {
		t.Fatalf("Log error: %v", err)
	}
	if p.Total != 12000 {
		t.Errorf("Total = %d, want 12000", p.Total)
	}
	if p.Percentage != 100 {
		t.Errorf("Percentage = %v, want capped 100", p.Percentage)
	}
	if p.Status != StatusCompleted {
		t.Errorf("Status = %q, want %q", p.Status, StatusCompleted)
	}
}

func TestStepLogOptionalFieldsStayUnset(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "919876543210")
	svc := NewStepService(db, nil)

	if _, err := svc.Log(user, 5000, 0, 0, 10000); err != nil {
		t.Fatalf("Log error: %v", err)
	}

	var entry models.StepLog
	if err := db.Where("user_id = ?", user.ID).First(&entry).Error; err != nil {
		t.Fatalf("fetch entry: %v", err)
	}
	if entry.DistanceKm != nil || entry.CaloriesBurned != nil {
		t.Errorf("optional fields should be unset, got distance=%v calories=%v",
			entry.DistanceKm, entry.CaloriesBurned)
	}
}

func TestStepLogRejectsNonPositive(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "919876543210")
	svc := NewStepService(db, nil)

	if _, err := svc.Log(user, 0, 0, 0, 10000); !errors.Is(err, ErrValidation) {
		t.Errorf("Log(0) error = %v, want ErrValidation", err)
	}
}

func TestEstimateDistanceKm(t *testing.T) {
	if got := EstimateDistanceKm(10000); got != 8.0 {
		t.Errorf("EstimateDistanceKm(10000) = %v, want 8.0", got)
	}
}
