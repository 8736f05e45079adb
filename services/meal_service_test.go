package services

import (
	"errors"
	"testing"

	"github.com/NguyenDinhPhat-22CT112/healthAI/advisor"
	"github.com/NguyenDinhPhat-22CT112/healthAI/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubMealCatalog struct {
	foods map[string]*models.FoodItem
}

func (s *stubMealCatalog) FindByName(name string) (*models.FoodItem, error) {
	if f, ok := s.foods[name]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubMealCatalog) FindFacts(name string) (string, advisor.NutritionFacts, error) {
	if f, ok := s.foods[name]; ok {
		return f.Name, ServingFacts(f), nil
	}
	return "", advisor.NutritionFacts{}, advisor.ErrMissingNutrition
}

func newTestMealService() *MealService {
	return &MealService{foods: &stubMealCatalog{
		foods: map[string]*models.FoodItem{
			"bún chả": {
				Model:        gorm.Model{ID: 7},
				Name:         "bún chả",
				Category:     "bún",
				Calories:     120,
				Protein:      8,
				Carbs:        14,
				Fat:          4,
				ServingGrams: 250,
			},
		},
	}}
}

func TestResolveItemUsesRealServingGrams(t *testing.T) {
	svc := newTestMealService()

	// No weight requested: one catalog serving of 250g, not an assumed
	// 300g.
	r, err := svc.resolveItem(MealItemRequest{FoodName: "bún chả"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), r.foodItemID)
	assert.InDelta(t, 300.0, r.facts.Calories, 0.001) // 120 kcal/100g × 250g
}

func TestResolveItemScalesExplicitGramsFromPer100g(t *testing.T) {
	svc := newTestMealService()

	r, err := svc.resolveItem(MealItemRequest{FoodName: "bún chả", Grams: 150})
	require.NoError(t, err)
	assert.InDelta(t, 180.0, r.facts.Calories, 0.001)
	assert.InDelta(t, 12.0, r.facts.Protein, 0.001)
}

func TestResolveItemsFailsBeforeAnythingIsWritten(t *testing.T) {
	svc := newTestMealService()

	// The unknown second item aborts the whole request with no partial
	// result; AddMeal only touches the database after this succeeds.
	resolved, err := svc.resolveItems([]MealItemRequest{
		{FoodName: "bún chả"},
		{FoodName: "sushi"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, advisor.ErrMissingNutrition))
	assert.Nil(t, resolved)
}

func TestRescaleToGramsAssumedServing(t *testing.T) {
	facts := advisor.NutritionFacts{Calories: 450, Protein: 30, Carbs: 45, Fat: 15}
	half := rescaleToGrams(facts, 150)
	assert.InDelta(t, 225.0, half.Calories, 0.001)
	assert.InDelta(t, 15.0, half.Protein, 0.001)
}
