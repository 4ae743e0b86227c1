package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// tipCatalog is the built-in tip set used to seed the table and to back
// generate_health_tip on the agent surface.
var tipCatalog = []models.HealthTip{
	{
		Title:    "Stay Hydrated for Better Health",
		Content:  "Drinking adequate water helps maintain body temperature, lubricates joints, and supports organ function. Aim for 8-10 glasses (2-2.5 liters) daily, more if you're active or in hot weather.",
		Category: "hydration",
	},
	{
		Title:    "The Power of Regular Exercise",
		Content:  "Just 30 minutes of moderate exercise daily can reduce risk of heart disease, strengthen bones, improve mental health, and boost energy levels. Find activities you enjoy to make it sustainable.",
		Category: "fitness",
	},
	{
		Title:    "Quality Sleep for Optimal Health",
		Content:  "Adults need 7-9 hours of quality sleep nightly. Good sleep improves immune function, mental clarity, emotional stability, and physical recovery. Maintain consistent sleep schedules.",
		Category: "sleep",
	},
	{
		Title:    "Mindful Eating Habits",
		Content:  "Eat slowly, chew thoroughly, and listen to hunger cues. Include colorful vegetables, lean proteins, whole grains, and healthy fats. Limit processed foods and added sugars.",
		Category: "nutrition",
	},
	{
		Title:    "Stress Management Techniques",
		Content:  "Chronic stress affects physical and mental health. Practice deep breathing, meditation, yoga, or regular physical activity. Take breaks, connect with others, and prioritize self-care.",
		Category: "mental_health",
	},
	{
		Title:    "The Importance of Regular Health Checkups",
		Content:  "Annual health screenings can detect problems early when they're most treatable. Monitor blood pressure, cholesterol, blood sugar, and maintain up-to-date vaccinations.",
		Category: "prevention",
	},
}

type TipService struct {
	db           *gorm.DB
	log          *zap.Logger
	shareBaseURL string
}

func NewTipService(db *gorm.DB, log *zap.Logger, shareBaseURL string) *TipService {
	return &TipService{db: db, log: log, shareBaseURL: shareBaseURL}
}

// Random returns a random stored tip, seeding the table from the catalog
// on first use.
func (s *TipService) Random() (*models.HealthTip, error) {
	var count int64
	if err := s.db.Model(&models.HealthTip{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		if err := s.seed(); err != nil {
			return nil, err
		}
		count = int64(len(tipCatalog))
	}

	var tip models.HealthTip
	err := s.db.Offset(rand.Intn(int(count))).Limit(1).Find(&tip).Error
	if err != nil {
		return nil, err
	}
	return &tip, nil
}

// Generate persists a fresh copy of a random catalog tip, the behavior of
// the agent's generate_health_tip tool.
func (s *TipService) Generate() (*models.HealthTip, error) {
	tip := tipCatalog[rand.Intn(len(tipCatalog))]
	tip.GeneratedAt = time.Now()
	tip.ShareSlug = uuid.NewString()

	if err := s.db.Create(&tip).Error; err != nil {
		return nil, err
	}
	return &tip, nil
}

// Share increments the tip's share counter and returns the public link.
func (s *TipService) Share(slug string) (*models.HealthTip, string, error) {
	var tip models.HealthTip
	err := s.db.Where("share_slug = ?", slug).First(&tip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("%w: tip %s", ErrNotFound, slug)
	}
	if err != nil {
		return nil, "", err
	}

	err = s.db.Model(&tip).UpdateColumn("share_count", gorm.Expr("share_count + 1")).Error
	if err != nil {
		return nil, "", err
	}
	tip.ShareCount++

	return &tip, fmt.Sprintf("%s/tips/%s", s.shareBaseURL, tip.ShareSlug), nil
}

// ShareText formats a tip for messaging apps.
func ShareText(tip *models.HealthTip) string {
	return fmt.Sprintf("💡 Health Tip: %s\n\n%s\n\n#HealthTip #Wellness", tip.Title, tip.Content)
}

func (s *TipService) seed() error {
	s.log.Info("seeding health tip catalog", zap.Int("count", len(tipCatalog)))
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, tip := range tipCatalog {
			tip.GeneratedAt = time.Now()
			tip.ShareSlug = uuid.NewString()
			if err := tx.Create(&tip).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
