package advisor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeGeneralHypertension(t *testing.T) {
	c := NewComposer(DefaultConfig())

	res, err := c.ComposeGeneral(Hypertension)
	require.NoError(t, err)

	assert.Equal(t, "Huyết áp cao", res.DiseaseName)
	assert.Nil(t, res.Score)
	assert.Nil(t, res.Tier)
	assert.Empty(t, res.Findings)
	assert.Equal(t, 600, res.MaxMealCalories)
	assert.Contains(t, res.AvoidFoods, "Nước mắm")
	assert.Contains(t, res.PreferredFoods, "Chuối")
	assert.NotEmpty(t, res.GeneralAdvice)
}

func TestComposeGeneralListCaps(t *testing.T) {
	c := NewComposer(DefaultConfig())
	for _, cat := range DefaultConfig().Categories {
		res, err := c.ComposeGeneral(cat)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(res.PreferredFoods), 5)
		assert.LessOrEqual(t, len(res.AvoidFoods), 5)
	}
}

func TestComposeForFoodAcceptable(t *testing.T) {
	c := NewComposer(DefaultConfig())

	res, err := c.ComposeForFood(Diabetes, "Phở bò", NutritionFacts{Calories: 450, Protein: 30, Carbs: 45, Fat: 15})
	require.NoError(t, err)

	require.NotNil(t, res.Score)
	require.NotNil(t, res.Tier)
	assert.Equal(t, 75, *res.Score)
	assert.Equal(t, TierAcceptable, *res.Tier)
	assert.Equal(t, "CHẤP NHẬN ĐƯỢC ⚠️", res.Headline)
	assert.Equal(t, "Có thể ăn nhưng cần hạn chế khẩu phần", res.GeneralAdvice)
	assert.Len(t, res.Findings, 3)
	assert.LessOrEqual(t, len(res.Adjustments), 3)
}

func TestComposeForFoodAdjustments(t *testing.T) {
	c := NewComposer(DefaultConfig())

	// High-carb dish for diabetes triggers the portion-halving suggestion.
	res, err := c.ComposeForFood(Diabetes, "Cơm tấm", NutritionFacts{Calories: 650, Protein: 35, Carbs: 70, Fat: 22})
	require.NoError(t, err)
	assert.Contains(t, res.Adjustments, "Giảm khẩu phần xuống 1/2")
	assert.Len(t, res.Adjustments, 3)

	// Low-carb dish only gets the standing swap suggestion.
	res, err = c.ComposeForFood(Diabetes, "Gỏi cuốn", NutritionFacts{Calories: 60, Protein: 5, Carbs: 8, Fat: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Thay cơm trắng bằng gạo lứt nếu có"}, res.Adjustments)
}

func TestComposeForFoodHypertensionAdjustments(t *testing.T) {
	c := NewComposer(DefaultConfig())

	res, err := c.ComposeForFood(Hypertension, "Bún bò Huế", NutritionFacts{Calories: 550, Protein: 28, Carbs: 55, Fat: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Yêu cầu nấu ít muối hoặc không muối",
		"Không thêm nước mắm, tương ớt",
		"Ăn kèm chuối hoặc rau giàu kali",
	}, res.Adjustments)
}

func TestComposeUnknownCategory(t *testing.T) {
	c := NewComposer(DefaultConfig())

	_, err := c.ComposeGeneral(DiseaseCategory("gout"))
	var unknown *UnknownDiseaseError
	require.True(t, errors.As(err, &unknown))
	assert.Len(t, unknown.Supported, 3)

	_, err = c.ComposeForFood(DiseaseCategory("gout"), "phở", NutritionFacts{})
	require.True(t, errors.As(err, &unknown))
}

func TestComposeForFoodSafeTier(t *testing.T) {
	c := NewComposer(DefaultConfig())

	res, err := c.ComposeForFood(Obesity, "Gỏi cuốn", NutritionFacts{Calories: 60, Protein: 5, Carbs: 8, Fat: 2})
	require.NoError(t, err)
	// 50 + 25 (low calorie) + 15 (low fat) = 90 → safe.
	assert.Equal(t, 90, *res.Score)
	assert.Equal(t, TierSafe, *res.Tier)
	assert.Equal(t, "RẤT AN TOÀN ✅", res.Headline)
}
