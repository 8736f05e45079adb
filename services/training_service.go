package services

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/NguyenDinhPhat-22CT112/healthAI/config"
	"github.com/NguyenDinhPhat-22CT112/healthAI/models"

	"github.com/google/uuid"
)

// TrainingService collects user feedback on advisory replies as
// prompt/response pairs for later fine-tuning.
type TrainingService struct{}

func NewTrainingService() *TrainingService {
	return &TrainingService{}
}

type FeedbackInput struct {
	Prompt    string `json:"prompt" binding:"required"`
	Response  string `json:"response" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Corrected string `json:"corrected"`
}

func (s *TrainingService) Collect(userID uint, in FeedbackInput) (*models.TrainingSample, error) {
	sample := &models.TrainingSample{
		SampleID:  uuid.NewString(),
		UserID:    userID,
		Prompt:    in.Prompt,
		Response:  in.Response,
		Rating:    in.Rating,
		Corrected: in.Corrected,
	}
	if err := config.DB.Create(sample).Error; err != nil {
		return nil, err
	}
	return sample, nil
}

func (s *TrainingService) List(userID uint, limit int) ([]models.TrainingSample, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var samples []models.TrainingSample
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Find(&samples).Error
	return samples, err
}

// exportPair is one JSONL line of the fine-tuning dataset. The corrected
// response, when present, replaces the original as the training target.
type exportPair struct {
	SampleID   string `json:"sample_id"`
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
	Rating     int    `json:"rating"`
}

// ExportJSONL serializes all unexported samples as JSON lines and marks
// them exported. Samples rated below minRating are skipped (bad replies
// without a correction teach nothing).
func (s *TrainingService) ExportJSONL(minRating int) ([]byte, int, error) {
	var samples []models.TrainingSample
	if err := config.DB.Where("exported = ?", false).Order("id").Find(&samples).Error; err != nil {
		return nil, 0, err
	}
	if len(samples) == 0 {
		return nil, 0, errors.New("no samples to export")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	count := 0
	var ids []uint
	for _, sm := range samples {
		pair, ok := toExportPair(sm, minRating)
		if !ok {
			continue
		}
		if err := enc.Encode(pair); err != nil {
			return nil, 0, err
		}
		count++
		ids = append(ids, sm.ID)
	}

	if count > 0 {
		if err := config.DB.Model(&models.TrainingSample{}).Where("id IN ?", ids).Update("exported", true).Error; err != nil {
			return nil, 0, err
		}
	}
	return buf.Bytes(), count, nil
}

func toExportPair(sm models.TrainingSample, minRating int) (exportPair, bool) {
	completion := sm.Response
	if sm.Corrected != "" {
		completion = sm.Corrected
	} else if sm.Rating < minRating {
		return exportPair{}, false
	}
	return exportPair{
		SampleID:   sm.SampleID,
		Prompt:     sm.Prompt,
		Completion: completion,
		Rating:     sm.Rating,
	}, true
}
