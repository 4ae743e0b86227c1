package mcp

import (
	"context"
	"fmt"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/services"
	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/utils"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "validate",
		Description: "Returns the server owner's phone number for host authentication",
	}, s.handleValidate)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calculate_bmi",
		Description: "Calculate BMI and provide health recommendations",
	}, s.handleCalculateBMI)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_water_intake",
		Description: "Log water intake and report today's progress",
	}, s.handleLogWater)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_steps",
		Description: "Log a step count and report today's progress",
	}, s.handleLogSteps)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_health_summary",
		Description: "Get a comprehensive health summary for the user",
	}, s.handleHealthSummary)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_health_metrics",
		Description: "Log weight, sleep, mood, and energy for comprehensive tracking",
	}, s.handleLogHealthMetrics)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_health_tip",
		Description: "Generate a wellness tip ready for sharing",
	}, s.handleGenerateTip)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_health_tips",
		Description: "Fetch wellness advice for a topic from the HealthGennie content API",
	}, s.handleWellnessTips)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_diet_plan",
		Description: "Fetch a diet plan for a health goal from the HealthGennie content API",
	}, s.handleDietPlan)
}

// Tool input/output types

type emptyInput struct{}

type validateOutput struct {
	OwnerPhone string `json:"owner_phone"`
}

type bmiInput struct {
	PhoneNumber string  `json:"phone_number" jsonschema:"description=User's phone number for identification,required"`
	HeightCm    float64 `json:"height_cm" jsonschema:"description=Height in centimeters,required"`
	WeightKg    float64 `json:"weight_kg" jsonschema:"description=Weight in kilograms,required"`
}

type bmiOutput struct {
	BMI             float64  `json:"bmi"`
	Category        string   `json:"category"`
	HeightCm        float64  `json:"height_cm"`
	WeightKg        float64  `json:"weight_kg"`
	Recommendations []string `json:"recommendations"`
	HealthyRange    string   `json:"healthy_bmi_range"`
}

type waterInput struct {
	PhoneNumber string `json:"phone_number" jsonschema:"description=User's phone number for identification,required"`
	AmountML    int    `json:"amount_ml" jsonschema:"description=Amount of water in milliliters,required"`
	Note        string `json:"note,omitempty" jsonschema:"description=Optional note about the intake"`
}

type waterOutput struct {
	LoggedAmountML     int     `json:"logged_amount_ml"`
	DailyTotalML       int     `json:"daily_total_ml"`
	DailyGoalML        int     `json:"daily_goal_ml"`
	PercentageComplete float64 `json:"percentage_complete"`
	RemainingML        int     `json:"remaining_ml"`
	Status             string  `json:"status"`
}

type stepsInput struct {
	PhoneNumber string  `json:"phone_number" jsonschema:"description=User's phone number for identification,required"`
	Steps       int     `json:"steps" jsonschema:"description=Number of steps taken,required"`
	DistanceKm  float64 `json:"distance_km,omitempty" jsonschema:"description=Distance covered in kilometers"`
	Calories    float64 `json:"calories,omitempty" jsonschema:"description=Calories burned"`
}

type stepsOutput struct {
	LoggedSteps        int     `json:"logged_steps"`
	DailyTotalSteps    int     `json:"daily_total_steps"`
	DailyGoalSteps     int     `json:"daily_goal_steps"`
	PercentageComplete float64 `json:"percentage_complete"`
	RemainingSteps     int     `json:"remaining_steps"`
	Status             string  `json:"status"`
}

type phoneInput struct {
	PhoneNumber string `json:"phone_number" jsonschema:"description=User's phone number for identification,required"`
}

type healthMetricsInput struct {
	PhoneNumber string   `json:"phone_number" jsonschema:"description=User's phone number for identification,required"`
	WeightKg    *float64 `json:"weight_kg,omitempty" jsonschema:"description=Current weight in kilograms"`
	SleepHours  *float64 `json:"sleep_hours,omitempty" jsonschema:"description=Hours of sleep (0-24)"`
	MoodScore   *int     `json:"mood_score,omitempty" jsonschema:"description=Mood on a 1-10 scale"`
	EnergyLevel *int     `json:"energy_level,omitempty" jsonschema:"description=Energy on a 1-10 scale"`
	Notes       string   `json:"notes,omitempty" jsonschema:"description=Additional notes"`
}

type healthMetricsOutput struct {
	RecordDate string   `json:"record_date"`
	BMIUpdated *float64 `json:"bmi_updated,omitempty"`
	Message    string   `json:"message"`
}

type tipOutput struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	ShareText string `json:"share_text"`
}

type topicInput struct {
	Topic string `json:"topic" jsonschema:"description=The health topic or condition the user wants advice about,required"`
}

type goalInput struct {
	Goal string `json:"goal" jsonschema:"description=The health goal e.g. weight loss or muscle gain,required"`
}

type textOutput struct {
	Text string `json:"text"`
}

// Tool handlers

func (s *Server) handleValidate(ctx context.Context, req *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, validateOutput, error) {
	return nil, validateOutput{OwnerPhone: s.cfg.OwnerPhone}, nil
}

func (s *Server) handleCalculateBMI(ctx context.Context, req *mcp.CallToolRequest, input bmiInput) (*mcp.CallToolResult, bmiOutput, error) {
	user, err := s.users.SetMeasurements(input.PhoneNumber, input.HeightCm, input.WeightKg)
	if err != nil {
		return nil, bmiOutput{}, fmt.Errorf("failed to calculate BMI: %w", err)
	}

	bmi, err := utils.CalculateBMI(user.Height, user.Weight)
	if err != nil {
		return nil, bmiOutput{}, fmt.Errorf("failed to calculate BMI: %w", err)
	}
	category := utils.BMICategory(bmi)

	return nil, bmiOutput{
		BMI:             bmi,
		Category:        category,
		HeightCm:        input.HeightCm,
		WeightKg:        input.WeightKg,
		Recommendations: services.BMIRecommendations(category),
		HealthyRange:    utils.HealthyBMIRange,
	}, nil
}

func (s *Server) handleLogWater(ctx context.Context, req *mcp.CallToolRequest, input waterInput) (*mcp.CallToolResult, waterOutput, error) {
	user, err := s.users.GetOrCreate(input.PhoneNumber)
	if err != nil {
		return nil, waterOutput{}, fmt.Errorf("failed to log water intake: %w", err)
	}

	progress, err := s.water.Log(user, input.AmountML, input.Note, s.cfg.WaterGoalML)
	if err != nil {
		return nil, waterOutput{}, fmt.Errorf("failed to log water intake: %w", err)
	}

	status := "Keep drinking!"
	if progress.Status == services.StatusCompleted {
		status = "Goal reached!"
	}

	return nil, waterOutput{
		LoggedAmountML:     input.AmountML,
		DailyTotalML:       progress.Total,
		DailyGoalML:        progress.Goal,
		PercentageComplete: progress.Percentage,
		RemainingML:        progress.Remaining,
		Status:             status,
	}, nil
}

func (s *Server) handleLogSteps(ctx context.Context, req *mcp.CallToolRequest, input stepsInput) (*mcp.CallToolResult, stepsOutput, error) {
	user, err := s.users.GetOrCreate(input.PhoneNumber)
	if err != nil {
		return nil, stepsOutput{}, fmt.Errorf("failed to log steps: %w", err)
	}

	progress, err := s.steps.Log(user, input.Steps, input.DistanceKm, input.Calories, s.cfg.StepGoal)
	if err != nil {
		return nil, stepsOutput{}, fmt.Errorf("failed to log steps: %w", err)
	}

	status := "Keep moving!"
	if progress.Status == services.StatusCompleted {
		status = "Goal achieved!"
	}

	return nil, stepsOutput{
		LoggedSteps:        input.Steps,
		DailyTotalSteps:    progress.Total,
		DailyGoalSteps:     progress.Goal,
		PercentageComplete: progress.Percentage,
		RemainingSteps:     progress.Remaining,
		Status:             status,
	}, nil
}

func (s *Server) handleHealthSummary(ctx context.Context, req *mcp.CallToolRequest, input phoneInput) (*mcp.CallToolResult, services.Summary, error) {
	user, err := s.users.GetOrCreate(input.PhoneNumber)
	if err != nil {
		return nil, services.Summary{}, fmt.Errorf("failed to get health summary: %w", err)
	}

	summary, err := s.summary.HealthSummary(user, s.cfg.WaterGoalML, s.cfg.StepGoal)
	if err != nil {
		return nil, services.Summary{}, fmt.Errorf("failed to get health summary: %w", err)
	}
	return nil, *summary, nil
}

func (s *Server) handleLogHealthMetrics(ctx context.Context, req *mcp.CallToolRequest, input healthMetricsInput) (*mcp.CallToolResult, healthMetricsOutput, error) {
	user, err := s.users.GetOrCreate(input.PhoneNumber)
	if err != nil {
		return nil, healthMetricsOutput{}, fmt.Errorf("failed to log health metrics: %w", err)
	}

	record, err := s.health.LogRecord(user, services.RecordInput{
		Weight:      input.WeightKg,
		SleepHours:  input.SleepHours,
		MoodScore:   input.MoodScore,
		EnergyLevel: input.EnergyLevel,
		Notes:       input.Notes,
	})
	if err != nil {
		return nil, healthMetricsOutput{}, fmt.Errorf("failed to log health metrics: %w", err)
	}

	out := healthMetricsOutput{
		RecordDate: record.RecordDate.Format("2006-01-02"),
		Message:    "Health metrics logged successfully!",
	}
	if input.WeightKg != nil && user.Height > 0 {
		if bmi, err := utils.CalculateBMI(user.Height, *input.WeightKg); err == nil {
			out.BMIUpdated = &bmi
		}
	}
	return nil, out, nil
}

func (s *Server) handleGenerateTip(ctx context.Context, req *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, tipOutput, error) {
	tip, err := s.tips.Generate()
	if err != nil {
		return nil, tipOutput{}, fmt.Errorf("failed to generate health tip: %w", err)
	}

	return nil, tipOutput{
		Title:     tip.Title,
		Content:   tip.Content,
		Category:  tip.Category,
		ShareText: services.ShareText(tip),
	}, nil
}

func (s *Server) handleWellnessTips(ctx context.Context, req *mcp.CallToolRequest, input topicInput) (*mcp.CallToolResult, textOutput, error) {
	text, err := s.wellness.GetTips(ctx, input.Topic)
	if err != nil {
		return nil, textOutput{}, fmt.Errorf("failed to fetch tips: %w", err)
	}
	return nil, textOutput{Text: text}, nil
}

func (s *Server) handleDietPlan(ctx context.Context, req *mcp.CallToolRequest, input goalInput) (*mcp.CallToolResult, textOutput, error) {
	text, err := s.wellness.GetDietPlan(ctx, input.Goal)
	if err != nil {
		return nil, textOutput{}, fmt.Errorf("failed to fetch diet plan: %w", err)
	}
	return nil, textOutput{Text: text}, nil
}
