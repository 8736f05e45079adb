package controllers

import (
	"net/http"

	"github.com/NguyenDinhPhat-22CT112/healthAI/services"

	"github.com/gin-gonic/gin"
)

// GET /user/goal
func GetGoal(c *gin.Context) {
	goal, err := services.GetGoal(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no nutrition goal set"})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// PUT /user/goal
func UpdateGoal(c *gin.Context) {
	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpsertGoal(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}
