package models

import "gorm.io/gorm"

// FoodItem is one entry of the Vietnamese food catalog. Nutrition values
// are per 100g; ServingGrams is the typical portion used when the caller
// asks for "1 phần".
type FoodItem struct {
	gorm.Model
	Name        string `gorm:"index;not null"`
	Description string
	Region      string // "Bắc" | "Trung" | "Nam"
	Category    string `gorm:"index"` // "phở", "cơm", "bánh", "rau", "cá", …

	Calories float64 `gorm:"not null"` // kcal per 100g
	Protein  float64 // g per 100g
	Carbs    float64
	Fat      float64
	Fiber    float64
	// SodiumMg is nullable: most catalog rows ship without a sodium
	// measurement and absence must stay distinguishable from zero.
	SodiumMg *float64

	HighGlycemic bool
	HighSodium   bool
	ServingGrams float64 `gorm:"default:300"`
}
