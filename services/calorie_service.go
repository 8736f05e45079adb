package services

import (
	"errors"
	"math"

	"github.com/NguyenDinhPhat-22CT112/healthAI/config"
	"github.com/NguyenDinhPhat-22CT112/healthAI/models"
	"github.com/NguyenDinhPhat-22CT112/healthAI/utils"

	"gorm.io/gorm"
)

type CalorieService struct {
	foods *FoodService
}

func NewCalorieService(foods *FoodService) *CalorieService {
	return &CalorieService{foods: foods}
}

// FoodPortion is one line of a calorie-calculation request.
type FoodPortion struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit"` // "g" (default) or "serving"
}

type FoodDetail struct {
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	WeightG  float64 `json:"weight_g,omitempty"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber"`
	Error    string  `json:"error,omitempty"`
}

type CalorieSummary struct {
	TotalCalories   float64      `json:"total_calories"`
	TotalProtein    float64      `json:"total_protein"`
	TotalFat        float64      `json:"total_fat"`
	TotalCarbs      float64      `json:"total_carbs"`
	TotalFiber      float64      `json:"total_fiber"`
	PercentOfDaily  float64      `json:"percentage_of_daily_needs"`
	FoodDetails     []FoodDetail `json:"food_details"`
	Recommendations []string     `json:"recommendations"`
}

// Calculate totals the nutrition of a meal. Unresolvable foods are kept in
// the detail list with an error note instead of failing the whole request.
func (s *CalorieService) Calculate(userID uint, portions []FoodPortion) (*CalorieSummary, error) {
	sum := &CalorieSummary{Recommendations: []string{}}

	for _, p := range portions {
		detail := FoodDetail{FoodName: p.Name, Quantity: p.Quantity, Unit: unitOrGram(p.Unit)}

		food, err := s.foods.FindByName(p.Name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				detail.Error = "Không tìm thấy thông tin dinh dưỡng"
				sum.FoodDetails = append(sum.FoodDetails, detail)
				continue
			}
			return nil, err
		}

		weight := portionWeight(detail.Unit, p.Quantity, food.ServingGrams)
		detail.FoodName = food.Name
		detail.WeightG = weight
		detail.Calories = round2(food.Calories * weight / 100)
		detail.Protein = round2(food.Protein * weight / 100)
		detail.Fat = round2(food.Fat * weight / 100)
		detail.Carbs = round2(food.Carbs * weight / 100)
		detail.Fiber = round2(food.Fiber * weight / 100)

		sum.TotalCalories += detail.Calories
		sum.TotalProtein += detail.Protein
		sum.TotalFat += detail.Fat
		sum.TotalCarbs += detail.Carbs
		sum.TotalFiber += detail.Fiber
		sum.FoodDetails = append(sum.FoodDetails, detail)
	}

	daily := s.dailyNeed(userID)
	sum.PercentOfDaily = round2(sum.TotalCalories / daily * 100)
	sum.Recommendations = mealRecommendations(sum.TotalCalories, sum.TotalProtein, sum.TotalFat, daily)
	return sum, nil
}

// dailyNeed prefers an explicit goal, then the user's profile estimate,
// then the 2000 kcal default.
func (s *CalorieService) dailyNeed(userID uint) float64 {
	if userID == 0 || config.DB == nil {
		return 2000
	}

	var goal models.NutritionGoal
	if err := config.DB.Where("user_id = ?", userID).First(&goal).Error; err == nil && goal.Calories > 0 {
		return goal.Calories
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err == nil {
		return utils.DailyCalorieNeed(user.Gender, utils.CalculateAge(user.Birthday), user.Height, user.Weight, user.ActivityLevel)
	}
	return 2000
}

func unitOrGram(unit string) string {
	if unit == "serving" {
		return "serving"
	}
	return "g"
}

// portionWeight converts a requested quantity to grams. A "serving" uses
// the catalog's typical serving size, defaulting to 300g.
func portionWeight(unit string, quantity, servingGrams float64) float64 {
	if unit == "serving" {
		if servingGrams <= 0 {
			servingGrams = 300
		}
		return servingGrams * quantity
	}
	return quantity
}

func mealRecommendations(calories, protein, fat, dailyNeed float64) []string {
	recs := []string{}
	if calories > dailyNeed*0.5 {
		recs = append(recs, "Bữa ăn này chiếm hơn 50% nhu cầu calo hàng ngày. Bạn nên điều chỉnh các bữa ăn khác.")
	}
	if fat > 50 {
		recs = append(recs, "Hàm lượng chất béo khá cao. Nên giảm lượng dầu mỡ trong các món ăn.")
	}
	if protein < 20 {
		recs = append(recs, "Bữa ăn cần bổ sung thêm protein từ thịt, cá, đậu.")
	}
	return recs
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
