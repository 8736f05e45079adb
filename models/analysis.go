package models

import "gorm.io/gorm"

// MealAnalysis records one photo analysis: what was detected, which
// catalog entry it matched and the advisor verdict.
type MealAnalysis struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	ImageURL string // S3 URL; empty when storage is not configured

	DetectedLabels string // comma-joined recognition labels
	FoodItemID     uint
	FoodName       string

	Disease string
	Score   int
	Tier    string
}
