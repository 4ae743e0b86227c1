package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		{"what's my bmi", IntentBMI},
		{"BMI please", IntentBMI},
		{"log water please", IntentWaterIntake}, // "water" outranks "log"
		{"how many steps today", IntentSteps},
		{"give me a tip", IntentHealthTips},
		{"health tips", IntentHealthTips},
		{"log health", IntentLogHealth},
		{"ai assistant", IntentAIAssistant},
		{"xyz", IntentUnknown},
		{"", IntentUnknown},
		// Priority order: first listed keyword wins.
		{"bmi and water", IntentBMI},
		{"log my water steps", IntentWaterIntake},
		{"steps and tips", IntentSteps},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := ClassifyMessage(tt.message); got != tt.want {
				t.Errorf("ClassifyMessage(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func newTestCommandService(t *testing.T) *CommandService {
	t.Helper()
	db := newTestDB(t)
	log := zap.NewNop()

	users := NewUserService(db, log)
	water := NewWaterService(db, nil)
	steps := NewStepService(db, nil)
	health := NewHealthService(db)
	summary := NewSummaryService(water, steps, health)
	tips := NewTipService(db, log, "https://example.com")

	return NewCommandService(users, water, steps, health, summary, tips, 2500, 10000)
}

func TestDispatchUnknownIsNotAnError(t *testing.T) {
	svc := newTestCommandService(t)

	reply, err := svc.Dispatch(context.Background(), CommandRequest{Message: "xyz"})
	if err != nil {
		t.Fatalf("Dispatch(unknown) error = %v, want nil", err)
	}
	if reply["command"] != string(IntentUnknown) {
		t.Errorf("command = %v, want %q", reply["command"], IntentUnknown)
	}
	if reply["message"] == "" {
		t.Error("expected a help message")
	}
}

func TestDispatchBMIFromMessageNumbers(t *testing.T) {
	svc := newTestCommandService(t)

	reply, err := svc.Dispatch(context.Background(), CommandRequest{Message: "bmi 175 70"})
	if err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if reply["bmi"] != 22.9 {
		t.Errorf("bmi = %v, want 22.9", reply["bmi"])
	}
	if reply["category"] != "Normal weight" {
		t.Errorf("category = %v, want Normal weight", reply["category"])
	}
}

func TestDispatchBMIMissingParams(t *testing.T) {
	svc := newTestCommandService(t)

	_, err := svc.Dispatch(context.Background(), CommandRequest{Message: "what's my bmi"})
	if err == nil {
		t.Fatal("expected usage error")
	}
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("error = %T, want *UsageError", err)
	}
	if usage.Intent != IntentBMI {
		t.Errorf("usage intent = %q, want %q", usage.Intent, IntentBMI)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("usage error should match ErrValidation")
	}
}

func TestDispatchWaterLogsWithIdentity(t *testing.T) {
	svc := newTestCommandService(t)

	reply, err := svc.Dispatch(context.Background(), CommandRequest{
		Message:     "log my water",
		PhoneNumber: "919876543210",
		Amount:      500,
	})
	if err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if reply["daily_total"] != 500 {
		t.Errorf("daily_total = %v, want 500", reply["daily_total"])
	}

	reply, err = svc.Dispatch(context.Background(), CommandRequest{
		Message:     "water 500",
		PhoneNumber: "919876543210",
	})
	if err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if reply["daily_total"] != 1000 {
		t.Errorf("daily_total = %v, want 1000", reply["daily_total"])
	}
}

func TestDispatchWaterRecommendationWithoutIdentity(t *testing.T) {
	svc := newTestCommandService(t)

	reply, err := svc.Dispatch(context.Background(), CommandRequest{
		Message: "how much water",
		Weight:  70,
	})
	if err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if reply["water_intake_ml"] != 2450 {
		t.Errorf("water_intake_ml = %v, want 2450", reply["water_intake_ml"])
	}
}

func TestDispatchStepsCapsAtGoal(t *testing.T) {
	svc := newTestCommandService(t)

	reply, err := svc.Dispatch(context.Background(), CommandRequest{
		Message:     "steps 12000",
		PhoneNumber: "919876543210",
	})
	if err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if reply["daily_total"] != 12000 {
		t.Errorf("daily_total = %v, want 12000", reply["daily_total"])
	}
	if reply["percentage"] != 100.0 {
		t.Errorf("percentage = %v, want 100", reply["percentage"])
	}
	if reply["status"] != StatusCompleted {
		t.Errorf("status = %v, want %q", reply["status"], StatusCompleted)
	}
}

func TestDispatchTips(t *testing.T) {
	svc := newTestCommandService(t)

	reply, err := svc.Dispatch(context.Background(), CommandRequest{Message: "health tips"})
	if err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if reply["tip"] == nil {
		t.Error("expected a tip in the reply")
	}
	if reply["share_text"] == "" {
		t.Error("expected share text")
	}
}

func TestDispatchAIEchoesQuery(t *testing.T) {
	svc := newTestCommandService(t)

	reply, err := svc.Dispatch(context.Background(), CommandRequest{
		Message: "ai assistant",
		Query:   "how do I sleep better",
	})
	if err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if reply["response"] != "AI Assistant Response to: how do I sleep better" {
		t.Errorf("unexpected response: %v", reply["response"])
	}
}

func TestExtractNumbers(t *testing.T) {
	nums := extractNumbers("bmi 175.5 70")
	if len(nums) != 2 || nums[0] != 175.5 || nums[1] != 70 {
		t.Errorf("extractNumbers = %v, want [175.5 70]", nums)
	}
	if got := extractNumbers("no numbers here"); len(got) != 0 {
		t.Errorf("extractNumbers = %v, want empty", got)
	}
}
