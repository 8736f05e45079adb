package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/NguyenDinhPhat-22CT112/healthAI/advisor"
	"github.com/NguyenDinhPhat-22CT112/healthAI/config"
	"github.com/NguyenDinhPhat-22CT112/healthAI/models"
	"github.com/NguyenDinhPhat-22CT112/healthAI/utils"
)

// AnalysisService runs the meal-photo loop: detect labels, match one
// against the food catalog, assess it for the user's condition, persist
// the result. rek may be nil when recognition is not configured; photo
// analysis then errors but History still works.
type AnalysisService struct {
	rek    *RekognitionService
	foods  *FoodService
	advice *AdviceService
}

func NewAnalysisService(rek *RekognitionService, foods *FoodService, advice *AdviceService) *AnalysisService {
	return &AnalysisService{rek: rek, foods: foods, advice: advice}
}

type PhotoAnalysis struct {
	ID             uint                  `json:"id"`
	ImageURL       string                `json:"image_url,omitempty"`
	DetectedLabels []string              `json:"detected_labels"`
	Advice         *advisor.AdviceResult `json:"advice,omitempty"`
	Note           string                `json:"note,omitempty"`
}

// AnalyzePhoto detects foods in a base64 photo and, when the user has a
// recognizable condition and a label matches the catalog, returns the full
// advisor analysis. A photo with no catalog match is stored with a note
// rather than a fabricated score.
func (s *AnalysisService) AnalyzePhoto(ctx context.Context, userID uint, imageBase64 string) (*PhotoAnalysis, error) {
	if s.rek == nil {
		return nil, errors.New("image recognition is not configured")
	}

	labels, err := s.rek.DetectFoodLabels(ctx, imageBase64)
	if err != nil {
		return nil, fmt.Errorf("label detection: %w", err)
	}
	if len(labels) == 0 {
		return nil, errors.New("no labels detected")
	}

	imageURL, err := utils.UploadMealPhoto(imageBase64, userID)
	if err != nil {
		return nil, err
	}

	record := &models.MealAnalysis{
		UserID:         userID,
		ImageURL:       imageURL,
		DetectedLabels: strings.Join(labels, ", "),
	}
	result := &PhotoAnalysis{ImageURL: imageURL, DetectedLabels: labels}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	category, hasCondition := s.advice.FirstKnownCondition(user.HealthConditions)

	name, facts, ok := s.matchCatalog(labels)
	switch {
	case !ok:
		result.Note = "Không nhận diện được món ăn trong danh mục"
	case !hasCondition:
		result.Note = "Chưa có bệnh lý trong hồ sơ, không thể đánh giá mức độ phù hợp"
		record.FoodName = name
	default:
		adv, err := s.advice.AdviseForCategory(category, name, facts)
		if err != nil {
			return nil, err
		}
		result.Advice = &adv
		record.FoodName = name
		record.Disease = string(category)
		record.Score = *adv.Score
		record.Tier = string(*adv.Tier)
		if food, err := s.foods.FindByName(name); err == nil {
			record.FoodItemID = food.ID
		}
	}

	if err := config.DB.Create(record).Error; err != nil {
		return nil, err
	}
	result.ID = record.ID
	return result, nil
}

// matchCatalog tries each detected label against the catalog (and the
// built-in fallback table) until one resolves.
func (s *AnalysisService) matchCatalog(labels []string) (string, advisor.NutritionFacts, bool) {
	for _, label := range labels {
		name, facts, err := s.foods.FindFacts(label)
		if err == nil {
			return name, facts, true
		}
	}
	return "", advisor.NutritionFacts{}, false
}

func (s *AnalysisService) History(userID uint, limit int) ([]models.MealAnalysis, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var out []models.MealAnalysis
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Find(&out).Error
	return out, err
}
