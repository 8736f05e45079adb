package controllers

import (
	"net/http"

	"github.com/NguyenDinhPhat-22CT112/healthAI/advisor"
	"github.com/NguyenDinhPhat-22CT112/healthAI/config"
	"github.com/NguyenDinhPhat-22CT112/healthAI/models"
	"github.com/NguyenDinhPhat-22CT112/healthAI/services"

	"github.com/gin-gonic/gin"
)

// POST /recipes/suggest
// Disease comes from the request body when present, otherwise from the
// user's health conditions on file.
func SuggestRecipes(c *gin.Context) {
	var input services.RecipeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := resolveDisease(c, input.Disease)
	if err != nil {
		respondAdvisorError(c, err)
		return
	}

	suggestions, err := recipeSvc.Suggest(input, category)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"disease":     string(category),
		"suggestions": suggestions,
	})
}

// resolveDisease prefers the disease named in the request; when absent it
// falls back to the first recognizable condition on the user's profile.
func resolveDisease(c *gin.Context, diseaseText string) (advisor.DiseaseCategory, error) {
	if diseaseText != "" {
		return adviceSvc.NormalizeDisease(diseaseText)
	}

	var user models.User
	if err := config.DB.First(&user, c.GetUint("userID")).Error; err != nil {
		return "", err
	}
	if category, ok := adviceSvc.FirstKnownCondition(user.HealthConditions); ok {
		return category, nil
	}
	return adviceSvc.NormalizeDisease(user.HealthConditions)
}
