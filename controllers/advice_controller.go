package controllers

import (
	"errors"
	"net/http"

	"github.com/NguyenDinhPhat-22CT112/healthAI/advisor"

	"github.com/gin-gonic/gin"
)

type AdviceInput struct {
	Disease  string                  `json:"disease" binding:"required"`
	FoodName string                  `json:"food_name"`
	Facts    *advisor.NutritionFacts `json:"facts"`
}

// POST /advice — general guidance when no food is given, full analysis
// otherwise.
func GetAdvice(c *gin.Context) {
	var input AdviceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := adviceSvc.GetAdvice(input.Disease, input.FoodName, input.Facts)
	if err != nil {
		respondAdvisorError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type ScoreInput struct {
	Disease string                 `json:"disease" binding:"required"`
	Facts   advisor.NutritionFacts `json:"facts" binding:"required"`
}

// POST /advice/score — raw score for caller-supplied facts.
func ScoreFood(c *gin.Context) {
	var input ScoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := adviceSvc.ScoreFood(input.Disease, input.Facts)
	if err != nil {
		respondAdvisorError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// respondAdvisorError maps each core error kind to a distinct reply so
// clients can branch on it. Nothing here is fatal.
func respondAdvisorError(c *gin.Context, err error) {
	var unknown *advisor.UnknownDiseaseError
	if errors.As(err, &unknown) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     "unknown_disease",
			"input":     unknown.Input,
			"supported": unknown.Supported,
			"message":   "Hiện tại chỉ hỗ trợ 3 bệnh: Tiểu đường, Béo phì, Huyết áp cao",
		})
		return
	}

	if errors.Is(err, advisor.ErrMissingNutrition) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "missing_nutrition_data",
			"message": "Không tìm thấy thông tin dinh dưỡng cho món ăn này",
			"hint":    "Thử với tên món ăn khác như: phở bò, cơm tấm, bánh mì, gỏi cuốn",
		})
		return
	}

	var invalid *advisor.InvalidNutritionError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_nutrition_value",
			"field":   invalid.Field,
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
