package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/NguyenDinhPhat-22CT112/healthAI/services"

	"github.com/gin-gonic/gin"
)

type AddMealInput struct {
	Type  string                     `json:"type" binding:"required,oneof=breakfast lunch dinner snack"`
	AteAt *time.Time                 `json:"ate_at"`
	Items []services.MealItemRequest `json:"items" binding:"required,min=1,dive"`
}

// POST /meals
func AddMeal(c *gin.Context) {
	var input AddMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ateAt := time.Now()
	if input.AteAt != nil {
		ateAt = *input.AteAt
	}

	meal, err := mealSvc.AddMeal(c.GetUint("userID"), input.Type, ateAt, input.Items)
	if err != nil {
		respondAdvisorError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// GET /meals
func ListMeals(c *gin.Context) {
	meals, err := mealSvc.ListMeals(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

type AnalyzePhotoInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /meals/analyze — photo in, advisor verdict out.
func AnalyzeMealPhoto(c *gin.Context) {
	var input AnalyzePhotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	result, err := analysisSvc.AnalyzePhoto(c.Request.Context(), c.GetUint("userID"), input.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /meals/analyses?limit=20
func AnalysisHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	history, err := analysisSvc.History(c.GetUint("userID"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}
