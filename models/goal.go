package models

import "gorm.io/gorm"

// NutritionGoal holds each user's daily intake targets. The calorie
// calculator falls back to 2000 kcal when no goal exists.
type NutritionGoal struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null"`
	Calories float64 // e.g. 1800 kcal
	Protein  float64 // g
	Carbs    float64
	Fat      float64
	SodiumMg float64 // e.g. 2000 mg for hypertension
}
