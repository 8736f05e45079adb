package utils

import (
	"errors"
	"strings"
	"time"
)

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	return weightKg / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Thiếu cân"
	case bmi < 25.0:
		return "Bình thường"
	case bmi < 30.0:
		return "Thừa cân"
	default:
		return "Béo phì"
	}
}

func CalculateAge(birthday time.Time) int {
	if birthday.IsZero() {
		return 0
	}
	now := time.Now()
	age := now.Year() - birthday.Year()
	if now.YearDay() < birthday.YearDay() {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// DailyCalorieNeed estimates daily energy need with Mifflin-St Jeor
// scaled by activity level. Returns 2000 when the profile is incomplete.
func DailyCalorieNeed(gender string, ageYears int, heightCm, weightKg float64, activityLevel string) float64 {
	if ageYears <= 0 || heightCm <= 0 || weightKg <= 0 {
		return 2000
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if strings.EqualFold(gender, "male") {
		bmr += 5
	} else {
		bmr -= 161
	}

	factor := 1.55 // moderate default
	switch strings.ToLower(strings.TrimSpace(activityLevel)) {
	case "sedentary":
		factor = 1.2
	case "light":
		factor = 1.375
	case "active":
		factor = 1.725
	}
	return bmr * factor
}
