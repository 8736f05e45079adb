package services

import (
	"testing"

	"github.com/NguyenDinhPhat-22CT112/healthAI/advisor"
	"github.com/NguyenDinhPhat-22CT112/healthAI/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackFactsRejectsBlankNames(t *testing.T) {
	for _, name := range []string{"", " ", "   ", "\t"} {
		_, _, ok := fallbackFacts(name)
		assert.False(t, ok, "blank name %q must not resolve to a dish", name)
	}
}

func TestFindFactsBlankNameIsMissingData(t *testing.T) {
	svc := NewFoodService()
	_, _, err := svc.FindFacts("   ")
	assert.ErrorIs(t, err, advisor.ErrMissingNutrition)
}

func TestFallbackFactsDeterministicPartialMatch(t *testing.T) {
	// "cơm" is a substring of both "cơm trắng" and "cơm tấm"; the list
	// order fixes which one wins, every time.
	for i := 0; i < 20; i++ {
		label, facts, ok := fallbackFacts("cơm")
		require.True(t, ok)
		assert.Equal(t, "cơm trắng", label)
		assert.Equal(t, 130.0, facts.Calories)
	}
}

func TestFallbackFactsCaseAndWhitespace(t *testing.T) {
	label, facts, ok := fallbackFacts("  Phở Bò  ")
	require.True(t, ok)
	assert.Equal(t, "phở bò", label)
	assert.Equal(t, 450.0, facts.Calories)
}

func TestFallbackFactsUnknownDish(t *testing.T) {
	_, _, ok := fallbackFacts("sushi")
	assert.False(t, ok)
}

func TestFactsForGramsScalesPer100g(t *testing.T) {
	sodium := 200.0
	food := &models.FoodItem{
		Name:         "bún chả",
		Category:     "bún",
		Calories:     120,
		Protein:      8,
		Carbs:        14,
		Fat:          4,
		SodiumMg:     &sodium,
		ServingGrams: 250,
	}

	facts := FactsForGrams(food, 150)
	assert.InDelta(t, 180.0, facts.Calories, 0.001)
	assert.InDelta(t, 12.0, facts.Protein, 0.001)
	assert.InDelta(t, 21.0, facts.Carbs, 0.001)
	assert.InDelta(t, 6.0, facts.Fat, 0.001)
	require.NotNil(t, facts.SodiumMg)
	assert.InDelta(t, 300.0, *facts.SodiumMg, 0.001)
}

func TestServingFactsUsesCatalogServing(t *testing.T) {
	food := &models.FoodItem{Name: "bún chả", Calories: 120, ServingGrams: 250}
	facts := ServingFacts(food)
	assert.InDelta(t, 300.0, facts.Calories, 0.001)

	// Still scores something sensible.
	_, err := advisor.NewScorer(advisor.DefaultConfig()).Score(facts, advisor.Obesity)
	assert.NoError(t, err)
}
