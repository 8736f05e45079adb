package routes

import (
	"github.com/NguyenDinhPhat-22CT112/healthAI/controllers"
	"github.com/NguyenDinhPhat-22CT112/healthAI/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	controllers.Init()

	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/goal", controllers.GetGoal)
		user.PUT("/goal", controllers.UpdateGoal)
	}

	// Food catalog
	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.GET("", controllers.ListFoods)
		foods.GET("/search", controllers.SearchFoods)
		foods.GET("/:id", controllers.GetFood)
	}

	// Disease-aware advisory
	advice := r.Group("/advice")
	advice.Use(middlewares.AuthMiddleware())
	{
		advice.POST("", controllers.GetAdvice)
		advice.POST("/score", controllers.ScoreFood)
	}

	// Meal diary and photo analysis
	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", controllers.AddMeal)
		meals.GET("", controllers.ListMeals)
		meals.POST("/analyze", controllers.AnalyzeMealPhoto)
		meals.GET("/analyses", controllers.AnalysisHistory)
	}

	// Calorie calculator
	calories := r.Group("/calories")
	calories.Use(middlewares.AuthMiddleware())
	{
		calories.POST("/calculate", controllers.CalculateCalories)
	}

	// Recipe suggestions
	recipes := r.Group("/recipes")
	recipes.Use(middlewares.AuthMiddleware())
	{
		recipes.POST("/suggest", controllers.SuggestRecipes)
	}

	// Feedback collection for fine-tuning
	training := r.Group("/training")
	training.Use(middlewares.AuthMiddleware())
	{
		training.POST("/feedback", controllers.SubmitFeedback)
		training.GET("/feedback", controllers.ListFeedback)
		training.GET("/export", controllers.ExportDataset)
	}

	// Advisory chat over websocket
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/chat", controllers.AdvisoryChat)
	}

	return r
}
