package controllers

import (
	"log"

	"github.com/NguyenDinhPhat-22CT112/healthAI/advisor"
	"github.com/NguyenDinhPhat-22CT112/healthAI/services"
)

// Shared singletons. The advisor config is immutable after Init, so the
// services built on it are safe for concurrent requests.
var (
	foodSvc     *services.FoodService
	adviceSvc   *services.AdviceService
	calorieSvc  *services.CalorieService
	mealSvc     *services.MealService
	analysisSvc *services.AnalysisService
	recipeSvc   *services.RecipeService
	trainingSvc *services.TrainingService
	chatHub     *services.ChatHub
)

func Init() {
	cfg := advisor.DefaultConfig()
	foodSvc = services.NewFoodService()
	adviceSvc = services.NewAdviceService(cfg, foodSvc)
	calorieSvc = services.NewCalorieService(foodSvc)
	mealSvc = services.NewMealService(foodSvc, adviceSvc)
	recipeSvc = services.NewRecipeService(cfg)
	trainingSvc = services.NewTrainingService()
	chatHub = services.NewChatHub()

	rek, err := services.NewRekognitionService()
	if err != nil {
		log.Printf("image recognition unavailable: %v", err)
		rek = nil
	}
	analysisSvc = services.NewAnalysisService(rek, foodSvc, adviceSvc)
}
