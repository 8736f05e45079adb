package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortionWeight(t *testing.T) {
	assert.Equal(t, 250.0, portionWeight("g", 250, 300))
	assert.Equal(t, 600.0, portionWeight("serving", 2, 300))
	// Serving size falls back to 300g when the catalog has none.
	assert.Equal(t, 300.0, portionWeight("serving", 1, 0))
}

func TestUnitOrGram(t *testing.T) {
	assert.Equal(t, "g", unitOrGram(""))
	assert.Equal(t, "g", unitOrGram("gram"))
	assert.Equal(t, "serving", unitOrGram("serving"))
}

func TestMealRecommendations(t *testing.T) {
	// Balanced meal: only the low-protein nudge is absent.
	recs := mealRecommendations(600, 30, 20, 2000)
	assert.Empty(t, recs)

	recs = mealRecommendations(1200, 10, 60, 2000)
	assert.Len(t, recs, 3)

	recs = mealRecommendations(300, 25, 10, 2000)
	assert.Empty(t, recs)
}
