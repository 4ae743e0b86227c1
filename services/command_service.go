package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/utils"
)

// Intent is a classified user request.
type Intent string

const (
	IntentBMI         Intent = "bmi"
	IntentWaterIntake Intent = "water-intake"
	IntentSteps       Intent = "steps"
	IntentHealthTips  Intent = "health-tips"
	IntentLogHealth   Intent = "log-health"
	IntentAIAssistant Intent = "ai-assistant"
	IntentUnknown     Intent = "unknown"
)

// intentRules is the dispatch table. Order is load-bearing: a message may
// contain several keywords ("log my water steps") and the first matching
// rule wins. Keep this list in sync with helpMessage.
var intentRules = []struct {
	keyword string
	intent  Intent
}{
	{"bmi", IntentBMI},
	{"water", IntentWaterIntake},
	{"step", IntentSteps},
	{"tip", IntentHealthTips},
	{"log", IntentLogHealth},
	{"ai", IntentAIAssistant},
}

const helpMessage = "Unknown command. Try: bmi, water, steps, tip, log, ai"

// ClassifyMessage resolves free text to an intent by ordered substring
// matching. Unmatched input resolves to IntentUnknown; that is a normal
// outcome, not an error.
func ClassifyMessage(message string) Intent {
	msg := strings.ToLower(message)
	for _, rule := range intentRules {
		if strings.Contains(msg, rule.keyword) {
			return rule.intent
		}
	}
	return IntentUnknown
}

// UsageError reports a matched intent whose parameters were missing or
// invalid. It carries a usage hint instead of propagating a raw fault.
type UsageError struct {
	Intent Intent
	Hint   string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Intent, e.Hint)
}

func (e *UsageError) Is(target error) bool { return target == ErrValidation }

// CommandRequest is the body of POST /api/command. Explicit params take
// precedence over numbers scraped from the message text.
type CommandRequest struct {
	Message     string   `json:"message"`
	Command     string   `json:"command"`
	PhoneNumber string   `json:"phone_number"`
	Height      float64  `json:"height"` // cm
	Weight      float64  `json:"weight"` // kg
	Amount      int      `json:"amount"` // ml
	Steps       int      `json:"steps"`
	DistanceKm  float64  `json:"distance_km"`
	Calories    float64  `json:"calories"`
	Note        string   `json:"note"`
	Query       string   `json:"query"`
	SleepHours  *float64 `json:"sleep_hours"`
	MoodScore   *int     `json:"mood_score"`
	EnergyLevel *int     `json:"energy_level"`
}

// CommandService routes a classified request to the matching handler.
// It holds no per-call state; the same instance serves the HTTP handler
// and the MCP tool surface.
type CommandService struct {
	users     *UserService
	water     *WaterService
	steps     *StepService
	health    *HealthService
	summary   *SummaryService
	tips      *TipService
	waterGoal int
	stepGoal  int
}

func NewCommandService(
	users *UserService,
	water *WaterService,
	steps *StepService,
	health *HealthService,
	summary *SummaryService,
	tips *TipService,
	waterGoalML, stepGoal int,
) *CommandService {
	return &CommandService{
		users: users, water: water, steps: steps,
		health: health, summary: summary, tips: tips,
		waterGoal: waterGoalML, stepGoal: stepGoal,
	}
}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

func extractNumbers(text string) []float64 {
	matches := numberPattern.FindAllString(text, -1)
	nums := make([]float64, 0, len(matches))
	for _, m := range matches {
		var f float64
		fmt.Sscanf(m, "%f", &f)
		nums = append(nums, f)
	}
	return nums
}

// Dispatch classifies the request and invokes the handler for the
// resolved intent. The reply map is what the caller serializes, whether
// it arrived over HTTP or from the agent tool surface.
func (s *CommandService) Dispatch(ctx context.Context, req CommandRequest) (map[string]interface{}, error) {
	text := req.Message
	if req.Command != "" {
		text = req.Command
	}
	intent := ClassifyMessage(text)
	commandsRouted.WithLabelValues(string(intent)).Inc()

	switch intent {
	case IntentBMI:
		return s.handleBMI(req)
	case IntentWaterIntake:
		return s.handleWater(req)
	case IntentSteps:
		return s.handleSteps(req)
	case IntentHealthTips:
		return s.handleTips()
	case IntentLogHealth:
		return s.handleLogHealth(req)
	case IntentAIAssistant:
		return s.handleAI(req)
	default:
		return map[string]interface{}{
			"command": string(IntentUnknown),
			"message": helpMessage,
		}, nil
	}
}

func (s *CommandService) handleBMI(req CommandRequest) (map[string]interface{}, error) {
	height, weight := req.Height, req.Weight
	if height <= 0 || weight <= 0 {
		nums := extractNumbers(req.Message)
		if len(nums) >= 2 {
			height, weight = nums[0], nums[1]
		}
	}
	if height <= 0 || weight <= 0 {
		return nil, &UsageError{IntentBMI, "send height (cm) and weight (kg), e.g. \"bmi 175 70\""}
	}

	bmi, err := utils.CalculateBMI(height, weight)
	if err != nil {
		return nil, &UsageError{IntentBMI, "height and weight must be positive numbers"}
	}
	category := utils.BMICategory(bmi)

	if req.PhoneNumber != "" {
		if _, err := s.users.SetMeasurements(req.PhoneNumber, height, weight); err != nil {
			return nil, err
		}
	}

	return map[string]interface{}{
		"command":         string(IntentBMI),
		"bmi":             bmi,
		"category":        category,
		"height_cm":       height,
		"weight_kg":       weight,
		"recommendations": BMIRecommendations(category),
		"healthy_range":   utils.HealthyBMIRange,
	}, nil
}

func (s *CommandService) handleWater(req CommandRequest) (map[string]interface{}, error) {
	amount := req.Amount
	if amount <= 0 {
		if nums := extractNumbers(req.Message); len(nums) == 1 {
			amount = int(nums[0])
		}
	}

	// With an amount and an identity, this is a log request.
	if amount > 0 && req.PhoneNumber != "" {
		user, err := s.users.GetOrCreate(req.PhoneNumber)
		if err != nil {
			return nil, err
		}
		progress, err := s.water.Log(user, amount, req.Note, s.waterGoal)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"command":          string(IntentWaterIntake),
			"logged_amount_ml": amount,
			"daily_total":      progress.Total,
			"goal":             progress.Goal,
			"percentage":       progress.Percentage,
			"remaining":        progress.Remaining,
			"status":           progress.Status,
		}, nil
	}

	// Without an identity, fall back to the intake recommendation from
	// body weight.
	if req.Weight > 0 {
		needed := RecommendedIntakeML(req.Weight)
		return map[string]interface{}{
			"command":         string(IntentWaterIntake),
			"water_intake_ml": needed,
			"message":         fmt.Sprintf("Drink at least %d ml of water daily", needed),
		}, nil
	}

	return nil, &UsageError{IntentWaterIntake, "send amount (ml) with phone_number to log, or weight (kg) for a daily intake recommendation"}
}

func (s *CommandService) handleSteps(req CommandRequest) (map[string]interface{}, error) {
	steps := req.Steps
	if steps <= 0 {
		if nums := extractNumbers(req.Message); len(nums) == 1 {
			steps = int(nums[0])
		}
	}
	if steps <= 0 {
		return nil, &UsageError{IntentSteps, "send a step count, e.g. \"steps 8000\""}
	}

	reply := map[string]interface{}{
		"command":     string(IntentSteps),
		"steps":       steps,
		"distance_km": EstimateDistanceKm(steps),
	}

	if req.PhoneNumber != "" {
		user, err := s.users.GetOrCreate(req.PhoneNumber)
		if err != nil {
			return nil, err
		}
		progress, err := s.steps.Log(user, steps, req.DistanceKm, req.Calories, s.stepGoal)
		if err != nil {
			return nil, err
		}
		reply["daily_total"] = progress.Total
		reply["goal"] = progress.Goal
		reply["percentage"] = progress.Percentage
		reply["status"] = progress.Status
	}
	return reply, nil
}

func (s *CommandService) handleTips() (map[string]interface{}, error) {
	tip, err := s.tips.Random()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"command": string(IntentHealthTips),
		"tip": map[string]interface{}{
			"title":    tip.Title,
			"content":  tip.Content,
			"category": tip.Category,
		},
		"share_text": ShareText(tip),
	}, nil
}

func (s *CommandService) handleLogHealth(req CommandRequest) (map[string]interface{}, error) {
	in := RecordInput{
		SleepHours:  req.SleepHours,
		MoodScore:   req.MoodScore,
		EnergyLevel: req.EnergyLevel,
		Notes:       req.Note,
	}
	if req.Weight > 0 {
		w := req.Weight
		in.Weight = &w
	}
	if in.Weight == nil && in.SleepHours == nil && in.MoodScore == nil && in.EnergyLevel == nil {
		return nil, &UsageError{IntentLogHealth, "send any of weight, sleep_hours, mood_score, energy_level"}
	}
	if req.PhoneNumber == "" {
		return nil, &UsageError{IntentLogHealth, "phone_number required to log health metrics"}
	}

	user, err := s.users.GetOrCreate(req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	record, err := s.health.LogRecord(user, in)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"command":     string(IntentLogHealth),
		"status":      "Health data logged",
		"record_date": record.RecordDate.Format("2006-01-02"),
	}, nil
}

func (s *CommandService) handleAI(req CommandRequest) (map[string]interface{}, error) {
	query := req.Query
	if query == "" {
		query = req.Message
	}
	if strings.TrimSpace(query) == "" {
		return nil, &UsageError{IntentAIAssistant, "send a query for the assistant"}
	}
	return map[string]interface{}{
		"command":  string(IntentAIAssistant),
		"response": fmt.Sprintf("AI Assistant Response to: %s", query),
	}, nil
}
