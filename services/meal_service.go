package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/NguyenDinhPhat-22CT112/healthAI/advisor"
	"github.com/NguyenDinhPhat-22CT112/healthAI/config"
	"github.com/NguyenDinhPhat-22CT112/healthAI/models"

	"gorm.io/gorm"
)

// mealCatalog is the slice of FoodService the meal diary needs; tests
// inject stubs.
type mealCatalog interface {
	FindFacts(name string) (string, advisor.NutritionFacts, error)
	FindByName(name string) (*models.FoodItem, error)
}

type MealService struct {
	foods  mealCatalog
	advice *AdviceService
}

func NewMealService(foods *FoodService, advice *AdviceService) *MealService {
	return &MealService{foods: foods, advice: advice}
}

type MealItemRequest struct {
	FoodName string  `json:"food_name" binding:"required"`
	Grams    float64 `json:"grams"`
}

type resolvedItem struct {
	foodItemID uint
	name       string
	facts      advisor.NutritionFacts
}

// AddMeal logs a meal. Every item is resolved before anything is written,
// and the writes run in one transaction, so one unknown food fails the
// whole request instead of leaving a partial meal behind. When the user
// has a recognizable condition, the advisor verdict is snapshotted on
// each item.
func (s *MealService) AddMeal(userID uint, mealType string, ateAt time.Time, items []MealItemRequest) (*models.Meal, error) {
	resolved, err := s.resolveItems(items)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	category, hasCondition := s.advice.FirstKnownCondition(user.HealthConditions)

	meal := &models.Meal{UserID: userID, Type: mealType, AteAt: ateAt}
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		for i, r := range resolved {
			mi := &models.MealItem{
				MealID:     meal.ID,
				FoodItemID: r.foodItemID,
				FoodName:   r.name,
				Grams:      items[i].Grams,
				Calories:   r.facts.Calories,
				Protein:    r.facts.Protein,
				Carbs:      r.facts.Carbs,
				Fat:        r.facts.Fat,
			}
			if hasCondition {
				if res, err := s.advice.ScoreForCategory(category, r.facts); err == nil {
					mi.Score = res.Score
					mi.Tier = string(res.Tier)
					mi.Findings = joinFindings(res.Findings)
				}
			}
			if err := tx.Create(mi).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var populated models.Meal
	if err := config.DB.Preload("Items").First(&populated, meal.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

// resolveItems resolves the facts of every requested item up front; any
// miss aborts the whole meal.
func (s *MealService) resolveItems(items []MealItemRequest) ([]resolvedItem, error) {
	out := make([]resolvedItem, 0, len(items))
	for _, it := range items {
		r, err := s.resolveItem(it)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", it.FoodName, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// resolveItem prefers a catalog row: its per-100g values scale exactly to
// the requested weight, and its real serving size covers the no-weight
// case. Only fallback-table dishes, which carry per-serving values with no
// known weight, use the assumed serving.
func (s *MealService) resolveItem(it MealItemRequest) (resolvedItem, error) {
	if food, err := s.foods.FindByName(it.FoodName); err == nil {
		facts := ServingFacts(food)
		if it.Grams > 0 {
			facts = FactsForGrams(food, it.Grams)
		}
		return resolvedItem{foodItemID: food.ID, name: food.Name, facts: facts}, nil
	}

	name, facts, err := s.foods.FindFacts(it.FoodName)
	if err != nil {
		return resolvedItem{}, err
	}
	if it.Grams > 0 {
		facts = rescaleToGrams(facts, it.Grams)
	}
	return resolvedItem{name: name, facts: facts}, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

// rescaleToGrams converts per-serving facts with no known weight to an
// explicit one, assuming the serving was 300g.
func rescaleToGrams(facts advisor.NutritionFacts, grams float64) advisor.NutritionFacts {
	const assumedServing = 300.0
	k := grams / assumedServing
	out := advisor.NutritionFacts{
		Calories: facts.Calories * k,
		Protein:  facts.Protein * k,
		Carbs:    facts.Carbs * k,
		Fat:      facts.Fat * k,
		Category: facts.Category,
	}
	if facts.SodiumMg != nil {
		sodium := *facts.SodiumMg * k
		out.SodiumMg = &sodium
	}
	return out
}

func joinFindings(findings []advisor.NutrientFinding) string {
	parts := make([]string, 0, len(findings))
	for _, fd := range findings {
		parts = append(parts, fmt.Sprintf("%s: %s", fd.Nutrient, fd.Status))
	}
	return strings.Join(parts, "; ")
}
