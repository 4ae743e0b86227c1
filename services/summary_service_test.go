package services

import (
	"testing"

	"go.uber.org/zap"
)

func TestHealthSummaryComposition(t *testing.T) {
	db := newTestDB(t)
	log := zap.NewNop()

	users := NewUserService(db, log)
	water := NewWaterService(db, nil)
	steps := NewStepService(db, nil)
	health := NewHealthService(db)
	svc := NewSummaryService(water, steps, health)

	user, err := users.UpdateProfile("919876543210", ProfileInput{
		Name: "Ansh", Height: 175, Weight: 70,
	})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}

	if _, err := water.Log(user, 1000, "", 2500); err != nil {
		t.Fatalf("water.Log error: %v", err)
	}
	if _, err := steps.Log(user, 4000, 0, 0, 10000); err != nil {
		t.Fatalf("steps.Log error: %v", err)
	}

	summary, err := svc.HealthSummary(user, 2500, 10000)
	if err != nil {
		t.Fatalf("HealthSummary error: %v", err)
	}

	if summary.BMIInfo.BMI == nil || *summary.BMIInfo.BMI != 22.9 {
		t.Errorf("BMI = %v, want 22.9", summary.BMIInfo.BMI)
	}
	if !summary.BMIInfo.IsHealthy {
		t.Error("expected IsHealthy for Normal weight")
	}
	if summary.TodayProgress["water_intake"].Total != 1000 {
		t.Errorf("water total = %d, want 1000", summary.TodayProgress["water_intake"].Total)
	}
	if summary.TodayProgress["steps"].Percentage != 40.0 {
		t.Errorf("step percentage = %v, want 40.0", summary.TodayProgress["steps"].Percentage)
	}
	if summary.LatestRecord != nil {
		t.Error("expected nil latest record before any snapshot")
	}

	// After a snapshot the summary picks up the latest record.
	sleep := 7.5
	mood := 8
	if _, err := health.LogRecord(user, RecordInput{SleepHours: &sleep, MoodScore: &mood}); err != nil {
		t.Fatalf("LogRecord error: %v", err)
	}

	summary, err = svc.HealthSummary(user, 2500, 10000)
	if err != nil {
		t.Fatalf("HealthSummary error: %v", err)
	}
	if summary.LatestRecord == nil {
		t.Fatal("expected latest record after snapshot")
	}
	if summary.LatestRecord.SleepHours == nil || *summary.LatestRecord.SleepHours != 7.5 {
		t.Errorf("SleepHours = %v, want 7.5", summary.LatestRecord.SleepHours)
	}
}

func TestBMIForWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "919876543210")

	info := BMIFor(user)
	if info.BMI != nil {
		t.Errorf("BMI = %v, want nil without height/weight", info.BMI)
	}
	if info.Category != "Unknown" {
		t.Errorf("Category = %q, want Unknown", info.Category)
	}
}

func TestBMIRecommendationsCoverAllCategories(t *testing.T) {
	for _, cat := range []string{"Underweight", "Normal weight", "Overweight", "Obese"} {
		if len(BMIRecommendations(cat)) == 0 {
			t.Errorf("no recommendations for %q", cat)
		}
	}
	if BMIRecommendations("Unknown") != nil {
		t.Error("expected nil recommendations for Unknown")
	}
}
