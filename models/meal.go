package models

import (
	"time"

	"gorm.io/gorm"
)

// One Meal (breakfast/lunch/…)
type Meal struct {
	gorm.Model
	UserID uint   `gorm:"index;not null"`
	Type   string // "breakfast" | "lunch" | "dinner" | "snack"
	AteAt  time.Time
	Items  []MealItem
}

// MealItem snapshots the nutrition and the advisor verdict at logging
// time, so history stays stable even if the catalog changes.
type MealItem struct {
	gorm.Model
	MealID uint `gorm:"index"`

	FoodItemID uint
	FoodName   string
	Grams      float64

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64

	Score    int
	Tier     string // "safe" | "acceptable" | "restricted"
	Findings string // joined one-line findings
}
