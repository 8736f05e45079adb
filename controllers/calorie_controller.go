package controllers

import (
	"net/http"

	"github.com/NguyenDinhPhat-22CT112/healthAI/services"

	"github.com/gin-gonic/gin"
)

type CalculateCaloriesInput struct {
	Foods []services.FoodPortion `json:"foods" binding:"required,min=1,dive"`
}

// POST /calories/calculate
func CalculateCalories(c *gin.Context) {
	var input CalculateCaloriesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	summary, err := calorieSvc.Calculate(userID, input.Foods)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "summary": summary})
}
