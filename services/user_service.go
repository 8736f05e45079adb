package services

import (
	"errors"
	"time"

	"github.com/NguyenDinhPhat-22CT112/healthAI/config"
	"github.com/NguyenDinhPhat-22CT112/healthAI/models"
	"github.com/NguyenDinhPhat-22CT112/healthAI/utils"
)

type ProfileInput struct {
	FullName         string  `json:"full_name"`
	Gender           string  `json:"gender"`
	Birthday         string  `json:"birthday"` // YYYY-MM-DD
	Height           float64 `json:"height"`
	Weight           float64 `json:"weight"`
	HealthConditions string  `json:"health_conditions"`
	ActivityLevel    string  `json:"activity_level"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	age := utils.CalculateAge(user.Birthday)

	profile := map[string]interface{}{
		"id":                user.ID,
		"email":             user.Email,
		"full_name":         user.FullName,
		"gender":            user.Gender,
		"age":               age,
		"height":            user.Height,
		"weight":            user.Weight,
		"health_conditions": user.HealthConditions,
		"activity_level":    user.ActivityLevel,
	}
	if !user.Birthday.IsZero() {
		profile["birthday"] = user.Birthday.Format("2006-01-02")
	}
	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
		profile["daily_calorie_need"] = utils.DailyCalorieNeed(user.Gender, age, user.Height, user.Weight, user.ActivityLevel)
	}
	return profile, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.Birthday != "" {
		b, err := time.Parse("2006-01-02", input.Birthday)
		if err != nil {
			return errors.New("birthday must be YYYY-MM-DD")
		}
		user.Birthday = b
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.HealthConditions != "" {
		user.HealthConditions = input.HealthConditions
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}

	return config.DB.Save(&user).Error
}
