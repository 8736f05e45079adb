package services

import (
	"errors"

	"github.com/NguyenDinhPhat-22CT112/healthAI/config"
	"github.com/NguyenDinhPhat-22CT112/healthAI/models"

	"gorm.io/gorm"
)

type GoalInput struct {
	Calories float64 `json:"calories" binding:"required,gt=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fat      float64 `json:"fat" binding:"gte=0"`
	SodiumMg float64 `json:"sodium_mg" binding:"gte=0"`
}

// UpsertGoal creates or replaces the user's daily intake targets. When
// only the calorie target is given, macro targets are derived from it.
func UpsertGoal(userID uint, in GoalInput) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		goal = models.NutritionGoal{UserID: userID}
	}

	goal.Calories = in.Calories
	goal.Protein = in.Protein
	goal.Carbs = in.Carbs
	goal.Fat = in.Fat
	goal.SodiumMg = in.SodiumMg
	if goal.Protein == 0 && goal.Carbs == 0 && goal.Fat == 0 {
		goal.Protein, goal.Carbs, goal.Fat = deriveMacros(in.Calories)
	}

	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func GetGoal(userID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	if err := config.DB.Where("user_id = ?", userID).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// deriveMacros splits a calorie target into gram targets: 20% protein,
// 50% carbs, 30% fat, at 4/4/9 kcal per gram.
func deriveMacros(calories float64) (protein, carbs, fat float64) {
	protein = round2(calories * 0.20 / 4)
	carbs = round2(calories * 0.50 / 4)
	fat = round2(calories * 0.30 / 9)
	return protein, carbs, fat
}
