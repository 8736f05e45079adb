package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string
	Gender   string    // "male" | "female" | "other"
	Birthday time.Time // zero value = not provided
	Height   float64   // cm
	Weight   float64   // kg
	// HealthConditions is free text from the user, comma separated
	// (e.g. "tiểu đường, huyết áp cao"). Normalized on use, not on write.
	HealthConditions string
	ActivityLevel    string // "sedentary" | "light" | "moderate" | "active"
	Disabled         bool
}
