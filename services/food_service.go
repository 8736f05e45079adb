package services

import (
	"errors"
	"strings"

	"github.com/NguyenDinhPhat-22CT112/healthAI/advisor"
	"github.com/NguyenDinhPhat-22CT112/healthAI/config"
	"github.com/NguyenDinhPhat-22CT112/healthAI/models"

	"gorm.io/gorm"
)

// NutritionLookup resolves a food name to per-serving facts. FoodService is
// the production implementation; tests inject stubs.
type NutritionLookup interface {
	FindFacts(name string) (string, advisor.NutritionFacts, error)
}

type FoodService struct{}

func NewFoodService() *FoodService {
	return &FoodService{}
}

func (s *FoodService) List(limit, offset int) ([]models.FoodItem, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var foods []models.FoodItem
	err := config.DB.Order("name").Limit(limit).Offset(offset).Find(&foods).Error
	return foods, err
}

func (s *FoodService) Get(id uint) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := config.DB.First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// Search matches name or description, case-insensitive partial match.
func (s *FoodService) Search(query string, limit int) ([]models.FoodItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var foods []models.FoodItem
	err := config.DB.
		Where("name ILIKE ? OR description ILIKE ?", "%"+query+"%", "%"+query+"%").
		Order("name").Limit(limit).
		Find(&foods).Error
	return foods, err
}

func (s *FoodService) FindByName(name string) (*models.FoodItem, error) {
	var food models.FoodItem
	err := config.DB.Where("name ILIKE ?", "%"+name+"%").First(&food).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// FindFacts resolves one typical serving for a food name: catalog first,
// then the built-in table of common dishes. Returns ErrMissingNutrition
// when neither knows the food — callers must not fabricate numbers.
func (s *FoodService) FindFacts(name string) (string, advisor.NutritionFacts, error) {
	if strings.TrimSpace(name) == "" {
		return "", advisor.NutritionFacts{}, advisor.ErrMissingNutrition
	}

	food, err := s.FindByName(name)
	if err == nil {
		return food.Name, ServingFacts(food), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", advisor.NutritionFacts{}, err
	}

	if label, facts, ok := fallbackFacts(name); ok {
		return label, facts, nil
	}
	return "", advisor.NutritionFacts{}, advisor.ErrMissingNutrition
}

// ServingFacts converts a catalog row (per 100g) to one typical serving.
func ServingFacts(food *models.FoodItem) advisor.NutritionFacts {
	grams := food.ServingGrams
	if grams <= 0 {
		grams = 300
	}
	return FactsForGrams(food, grams)
}

// FactsForGrams scales a catalog row's per-100g values to an explicit
// weight.
func FactsForGrams(food *models.FoodItem, grams float64) advisor.NutritionFacts {
	k := grams / 100.0
	facts := advisor.NutritionFacts{
		Calories: food.Calories * k,
		Protein:  food.Protein * k,
		Carbs:    food.Carbs * k,
		Fat:      food.Fat * k,
		Category: food.Category,
	}
	if food.SodiumMg != nil {
		sodium := *food.SodiumMg * k
		facts.SodiumMg = &sodium
	}
	return facts
}

type fallbackEntry struct {
	name  string
	facts advisor.NutritionFacts
}

// fallbackNutrition covers common dishes when the catalog is empty.
// Values are per typical serving. An ordered list, not a map, so a
// partial key like "cơm" resolves the same entry every time.
var fallbackNutrition = []fallbackEntry{
	{"phở bò", advisor.NutritionFacts{Calories: 450, Protein: 30, Carbs: 45, Fat: 15, Category: "phở"}},
	{"cơm trắng", advisor.NutritionFacts{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Category: "cơm"}},
	{"bánh mì", advisor.NutritionFacts{Calories: 400, Protein: 15, Carbs: 50, Fat: 18, Category: "bánh"}},
	{"gỏi cuốn", advisor.NutritionFacts{Calories: 60, Protein: 5, Carbs: 8, Fat: 2, Category: "gỏi"}},
	{"cơm tấm", advisor.NutritionFacts{Calories: 650, Protein: 35, Carbs: 70, Fat: 22, Category: "cơm"}},
	{"bún bò huế", advisor.NutritionFacts{Calories: 550, Protein: 28, Carbs: 55, Fat: 20, Category: "bún"}},
	{"bánh xèo", advisor.NutritionFacts{Calories: 350, Protein: 12, Carbs: 40, Fat: 16, Category: "bánh"}},
	{"cháo gà", advisor.NutritionFacts{Calories: 280, Protein: 20, Carbs: 35, Fat: 8, Category: "cháo"}},
}

func fallbackFacts(name string) (string, advisor.NutritionFacts, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		// an empty key substring-matches everything; that is a miss,
		// not a hit
		return "", advisor.NutritionFacts{}, false
	}
	for _, e := range fallbackNutrition {
		if strings.Contains(e.name, key) || strings.Contains(key, e.name) {
			return e.name, e.facts, true
		}
	}
	return "", advisor.NutritionFacts{}, false
}
