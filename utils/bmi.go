package utils

import (
	"errors"
	"math"
)

var ErrInvalidMeasurement = errors.New("height and weight must be positive")

// CalculateBMI expects height in centimeters and weight in kilograms.
// The result is rounded to 1 decimal place, the precision used everywhere
// in the API.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, ErrInvalidMeasurement
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*10) / 10, nil
}

// BMICategory uses the WHO boundaries: 25.0 and 30.0 are the category
// cutoffs, and 18.5 itself is Normal weight.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// HealthyBMIRange is included in BMI responses for display.
const HealthyBMIRange = "18.5 - 24.9"
