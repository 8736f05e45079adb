package models

import "gorm.io/gorm"

// TrainingSample is one prompt/response pair collected from user feedback,
// later exported as fine-tuning data. SampleID is the externally visible
// identifier (the row id stays internal).
type TrainingSample struct {
	gorm.Model
	SampleID string `gorm:"type:varchar(36);uniqueIndex;not null"`
	UserID   uint   `gorm:"index"`

	Prompt    string `gorm:"type:text;not null"`
	Response  string `gorm:"type:text;not null"`
	Rating    int    // 1–5
	Corrected string `gorm:"type:text"` // user-corrected response, if any
	Exported  bool   `gorm:"index"`
}
