package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/models"
	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewUserService(db *gorm.DB, log *zap.Logger) *UserService {
	return &UserService{db: db, log: log}
}

// GetOrCreate looks up a user by phone number, creating the record if it
// does not exist yet. The uniqueness constraint on phone_number is the
// real guard: if a concurrent request wins the insert, the duplicate-key
// error is treated as "already exists" and the row is re-fetched.
func (s *UserService) GetOrCreate(phoneNumber string) (*models.User, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return nil, fmt.Errorf("%w: phone number required", ErrValidation)
	}

	var user models.User
	err := s.db.Where("phone_number = ?", phoneNumber).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{PhoneNumber: phoneNumber}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// another writer won the race; their row is the user
			if err := s.db.Where("phone_number = ?", phoneNumber).First(&user).Error; err != nil {
				return nil, err
			}
			return &user, nil
		}
		return nil, err
	}

	s.log.Info("created new user", zap.String("phone", phoneNumber))
	return &user, nil
}

// ProfileInput carries a partial profile update; empty/zero fields are
// left untouched.
type ProfileInput struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Height        float64 `json:"height"` // cm
	Weight        float64 `json:"weight"` // kg
	ActivityLevel string  `json:"activity_level"`
}

// UpdateProfile applies a partial update to the user identified by phone
// number, creating the user first if needed.
func (s *UserService) UpdateProfile(phoneNumber string, input ProfileInput) (*models.User, error) {
	user, err := s.GetOrCreate(phoneNumber)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindByPhone returns the user or ErrNotFound.
func (s *UserService) FindByPhone(phoneNumber string) (*models.User, error) {
	var user models.User
	err := s.db.Where("phone_number = ?", phoneNumber).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, phoneNumber)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetMeasurements records height/weight on the user profile, the side
// effect of a BMI calculation performed on the user's behalf.
func (s *UserService) SetMeasurements(phoneNumber string, heightCm, weightKg float64) (*models.User, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrValidation, utils.ErrInvalidMeasurement)
	}
	user, err := s.GetOrCreate(phoneNumber)
	if err != nil {
		return nil, err
	}
	user.Height = heightCm
	user.Weight = weightKg
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ProfileView is the JSON shape returned for GET /api/user/profile.
func (s *UserService) ProfileView(user *models.User) map[string]interface{} {
	view := map[string]interface{}{
		"phone_number":   user.PhoneNumber,
		"name":           user.Name,
		"age":            user.Age,
		"gender":         user.Gender,
		"height":         user.Height,
		"weight":         user.Weight,
		"activity_level": user.ActivityLevel,
		"bmi":            nil,
		"bmi_category":   "Unknown",
	}
	if user.HasProfile() {
		if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
			view["bmi"] = bmi
			view["bmi_category"] = utils.BMICategory(bmi)
		}
	}
	return view
}
