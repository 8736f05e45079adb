package services

import (
	"errors"
	"testing"

	"github.com/NguyenDinhPhat-22CT112/healthAI/advisor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLookup struct {
	facts map[string]advisor.NutritionFacts
}

func (s *stubLookup) FindFacts(name string) (string, advisor.NutritionFacts, error) {
	if f, ok := s.facts[name]; ok {
		return name, f, nil
	}
	return "", advisor.NutritionFacts{}, advisor.ErrMissingNutrition
}

func newTestAdviceService() *AdviceService {
	return NewAdviceService(advisor.DefaultConfig(), &stubLookup{
		facts: map[string]advisor.NutritionFacts{
			"phở bò": {Calories: 450, Protein: 30, Carbs: 45, Fat: 15, Category: "phở"},
		},
	})
}

func TestGetAdviceGeneralMode(t *testing.T) {
	svc := newTestAdviceService()

	res, err := svc.GetAdvice("huyết áp cao", "", nil)
	require.NoError(t, err)
	assert.Equal(t, advisor.Hypertension, res.Disease)
	assert.Nil(t, res.Score)
	assert.NotEmpty(t, res.AvoidFoods)
}

func TestGetAdviceFoodModeViaLookup(t *testing.T) {
	svc := newTestAdviceService()

	res, err := svc.GetAdvice("tiểu đường", "phở bò", nil)
	require.NoError(t, err)
	require.NotNil(t, res.Score)
	assert.Equal(t, 75, *res.Score)
	assert.Equal(t, "phở bò", res.FoodName)
}

func TestGetAdviceExplicitFactsWin(t *testing.T) {
	svc := newTestAdviceService()

	// Caller-supplied facts are used even for a known food name.
	res, err := svc.GetAdvice("béo phì", "phở bò", &advisor.NutritionFacts{Calories: 100, Fat: 5})
	require.NoError(t, err)
	require.NotNil(t, res.Score)
	// 50 + 25 + 15 = 90
	assert.Equal(t, 90, *res.Score)
}

func TestGetAdviceUnknownDisease(t *testing.T) {
	svc := newTestAdviceService()

	_, err := svc.GetAdvice("ung thư", "phở bò", nil)
	var unknown *advisor.UnknownDiseaseError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "ung thư", unknown.Input)
}

func TestGetAdviceUnknownFood(t *testing.T) {
	svc := newTestAdviceService()

	_, err := svc.GetAdvice("tiểu đường", "món không tồn tại", nil)
	assert.ErrorIs(t, err, advisor.ErrMissingNutrition)
}

func TestScoreFood(t *testing.T) {
	svc := newTestAdviceService()

	res, err := svc.ScoreFood("béo phì", advisor.NutritionFacts{Calories: 650, Fat: 25})
	require.NoError(t, err)
	assert.Equal(t, 10, res.Score)
	assert.Equal(t, advisor.TierRestricted, res.Tier)
}

func TestFirstKnownCondition(t *testing.T) {
	svc := newTestAdviceService()

	cat, ok := svc.FirstKnownCondition("viêm khớp, tiểu đường")
	require.True(t, ok)
	assert.Equal(t, advisor.Diabetes, cat)

	_, ok = svc.FirstKnownCondition("viêm khớp")
	assert.False(t, ok)

	_, ok = svc.FirstKnownCondition("")
	assert.False(t, ok)
}
