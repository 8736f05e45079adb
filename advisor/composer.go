package advisor

const (
	maxFoodList    = 5
	maxAdjustments = 3
)

// Composer assembles the final recommendation from the static rule tables
// and, in food-analysis mode, the Scorer output.
type Composer struct {
	cfg    *Config
	scorer *Scorer
}

func NewComposer(cfg *Config) *Composer {
	return &Composer{cfg: cfg, scorer: NewScorer(cfg)}
}

// ComposeGeneral returns category-level guidance with no score or tier.
func (c *Composer) ComposeGeneral(category DiseaseCategory) (AdviceResult, error) {
	rule, ok := c.cfg.Rule(category)
	if !ok {
		return AdviceResult{}, &UnknownDiseaseError{Input: string(category), Supported: c.cfg.SupportedNames()}
	}
	return AdviceResult{
		Disease:         category,
		DiseaseName:     rule.DisplayName,
		GeneralAdvice:   rule.Principle,
		PreferredFoods:  capList(rule.Prefer, maxFoodList),
		AvoidFoods:      capList(rule.Avoid, maxFoodList),
		MaxMealCalories: rule.MaxMealCalories,
	}, nil
}

// ComposeForFood scores the facts and renders the full analysis: tier
// headline, per-nutrient findings and up to three adjustment suggestions.
func (c *Composer) ComposeForFood(category DiseaseCategory, foodName string, facts NutritionFacts) (AdviceResult, error) {
	rule, ok := c.cfg.Rule(category)
	if !ok {
		return AdviceResult{}, &UnknownDiseaseError{Input: string(category), Supported: c.cfg.SupportedNames()}
	}

	res, err := c.scorer.Score(facts, category)
	if err != nil {
		return AdviceResult{}, err
	}

	score := res.Score
	tier := res.Tier
	return AdviceResult{
		Disease:         category,
		DiseaseName:     rule.DisplayName,
		FoodName:        foodName,
		Score:           &score,
		Tier:            &tier,
		Headline:        tier.Headline(),
		GeneralAdvice:   tierAdvice(tier),
		PreferredFoods:  capList(rule.Prefer, maxFoodList),
		AvoidFoods:      capList(rule.Avoid, maxFoodList),
		MaxMealCalories: rule.MaxMealCalories,
		Findings:        res.Findings,
		Adjustments:     capList(c.adjustments(category, facts), maxAdjustments),
	}, nil
}

func tierAdvice(t SafetyTier) string {
	switch t {
	case TierSafe:
		return "Món ăn này rất phù hợp với bệnh lý của bạn"
	case TierAcceptable:
		return "Có thể ăn nhưng cần hạn chế khẩu phần"
	default:
		return "Nên tránh món ăn này"
	}
}

// adjustments suggests concrete ways to make the dish fit the condition.
func (c *Composer) adjustments(category DiseaseCategory, facts NutritionFacts) []string {
	var out []string
	switch category {
	case Diabetes:
		if facts.Carbs > 45 {
			out = append(out, "Giảm khẩu phần xuống 1/2", "Ăn kèm rau xanh để tăng chất xơ")
		}
		out = append(out, "Thay cơm trắng bằng gạo lứt nếu có")
	case Obesity:
		if facts.Calories > 400 {
			out = append(out, "Giảm khẩu phần xuống 2/3", "Tăng rau xanh, giảm carbs")
		}
		out = append(out, "Chọn phương pháp nấu hấp, luộc thay vì chiên")
	case Hypertension:
		out = append(out,
			"Yêu cầu nấu ít muối hoặc không muối",
			"Không thêm nước mắm, tương ớt",
			"Ăn kèm chuối hoặc rau giàu kali")
	}
	return out
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
