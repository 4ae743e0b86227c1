package services

import (
	"time"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/models"
	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/utils"
)

// BMIInfo is the derived BMI block used in summaries and BMI responses.
type BMIInfo struct {
	BMI       *float64 `json:"bmi"`
	Category  string   `json:"category"`
	IsHealthy bool     `json:"is_healthy"`
}

// Summary is the single read-model behind GET /api/health/summary and the
// router's summary-style replies.
type Summary struct {
	User struct {
		PhoneNumber string  `json:"phone_number"`
		Name        string  `json:"name"`
		Age         int     `json:"age"`
		HeightCm    float64 `json:"height_cm"`
		WeightKg    float64 `json:"weight_kg"`
	} `json:"user_info"`
	BMIInfo       BMIInfo              `json:"bmi_info"`
	TodayProgress map[string]Progress  `json:"today_progress"`
	LatestRecord  *models.HealthRecord `json:"latest_health_record"`
	SummaryDate   string               `json:"summary_date"`
}

// SummaryService composes derived metrics; it never writes.
type SummaryService struct {
	water  *WaterService
	steps  *StepService
	health *HealthService
}

func NewSummaryService(water *WaterService, steps *StepService, health *HealthService) *SummaryService {
	return &SummaryService{water: water, steps: steps, health: health}
}

// BMIFor derives the BMI block from the user profile. Category is
// "Unknown" until both height and weight are known.
func BMIFor(user *models.User) BMIInfo {
	info := BMIInfo{Category: "Unknown"}
	if !user.HasProfile() {
		return info
	}
	bmi, err := utils.CalculateBMI(user.Height, user.Weight)
	if err != nil {
		return info
	}
	info.BMI = &bmi
	info.Category = utils.BMICategory(bmi)
	info.IsHealthy = info.Category == "Normal weight"
	return info
}

// HealthSummary reads today's totals and the latest snapshot and derives
// the composite view.
func (s *SummaryService) HealthSummary(user *models.User, waterGoalML, stepGoal int) (*Summary, error) {
	waterProgress, err := s.water.TodayProgress(user.ID, waterGoalML)
	if err != nil {
		return nil, err
	}
	stepProgress, err := s.steps.TodayProgress(user.ID, stepGoal)
	if err != nil {
		return nil, err
	}
	latest, err := s.health.LatestRecord(user.ID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		BMIInfo: BMIFor(user),
		TodayProgress: map[string]Progress{
			"water_intake": waterProgress,
			"steps":        stepProgress,
		},
		LatestRecord: latest,
		SummaryDate:  time.Now().Format("2006-01-02"),
	}
	summary.User.PhoneNumber = user.PhoneNumber
	summary.User.Name = user.Name
	summary.User.Age = user.Age
	summary.User.HeightCm = user.Height
	summary.User.WeightKg = user.Weight
	return summary, nil
}

// BMIRecommendations returns lifestyle guidance for a BMI category.
func BMIRecommendations(category string) []string {
	switch category {
	case "Underweight":
		return []string{
			"Consider consulting a healthcare provider about healthy weight gain",
			"Focus on nutrient-dense foods and strength training",
			"Ensure adequate protein intake (1.2-1.6g per kg body weight)",
		}
	case "Normal weight":
		return []string{
			"Maintain your current healthy weight through balanced diet",
			"Continue regular physical activity (150 min/week moderate exercise)",
			"Focus on overall wellness and preventive health measures",
		}
	case "Overweight":
		return []string{
			"Consider gradual weight loss through caloric deficit",
			"Increase physical activity to 300 min/week moderate exercise",
			"Focus on whole foods and reduce processed food intake",
		}
	case "Obese":
		return []string{
			"Consult healthcare provider for personalized weight management plan",
			"Consider structured diet and exercise program",
			"Regular monitoring of blood pressure and blood sugar levels",
		}
	default:
		return nil
	}
}
