package advisor

// DiseaseCategory is one of the fixed clinical categories the advisor
// reasons about. New categories are added through Config, not code.
type DiseaseCategory string

const (
	Diabetes     DiseaseCategory = "diabetes"
	Obesity      DiseaseCategory = "obesity"
	Hypertension DiseaseCategory = "hypertension"
)

// SafetyTier is the qualitative bucket derived from the numeric score.
type SafetyTier string

const (
	TierSafe       SafetyTier = "safe"       // score >= 80
	TierAcceptable SafetyTier = "acceptable" // 60 <= score < 80
	TierRestricted SafetyTier = "restricted" // score < 60
)

// TierFromScore derives the tier from a clamped score. The tier is never
// stored independently of the score that produced it.
func TierFromScore(score int) SafetyTier {
	switch {
	case score >= 80:
		return TierSafe
	case score >= 60:
		return TierAcceptable
	default:
		return TierRestricted
	}
}

// Headline returns the Vietnamese headline text shown for the tier.
func (t SafetyTier) Headline() string {
	switch t {
	case TierSafe:
		return "RẤT AN TOÀN ✅"
	case TierAcceptable:
		return "CHẤP NHẬN ĐƯỢC ⚠️"
	default:
		return "KHÔNG NÊN ĂN ❌"
	}
}

// NutritionFacts describes one serving of a food. Values are per serving,
// not per 100g. SodiumMg is a pointer because sodium is frequently absent
// from the source data and absence is not the same as zero.
type NutritionFacts struct {
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	SodiumMg *float64 `json:"sodium_mg,omitempty"`
	Category string   `json:"category,omitempty"` // e.g. "phở", "rau", "cá"
}

// Validate rejects out-of-domain values before scoring.
func (f NutritionFacts) Validate() error {
	check := func(name string, v float64) error {
		if v < 0 {
			return &InvalidNutritionError{Field: name, Value: v}
		}
		return nil
	}
	if err := check("calories", f.Calories); err != nil {
		return err
	}
	if err := check("protein", f.Protein); err != nil {
		return err
	}
	if err := check("carbs", f.Carbs); err != nil {
		return err
	}
	if err := check("fat", f.Fat); err != nil {
		return err
	}
	if f.SodiumMg != nil {
		return check("sodium_mg", *f.SodiumMg)
	}
	return nil
}

// NutrientFinding is one line of the per-nutrient breakdown.
type NutrientFinding struct {
	Nutrient    string  `json:"nutrient"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit,omitempty"`
	Threshold   string  `json:"threshold,omitempty"`
	Status      string  `json:"status"`
	Reason      string  `json:"reason,omitempty"`
	Delta       int     `json:"delta"`
	Approximate bool    `json:"approximate,omitempty"`
	Missing     bool    `json:"missing,omitempty"`
}

// ScoreResult is the Scorer output.
type ScoreResult struct {
	Score    int               `json:"score"`
	Tier     SafetyTier        `json:"tier"`
	Findings []NutrientFinding `json:"findings"`
}

// AdviceResult is the composed recommendation. Score and Tier are nil in
// general-advice mode (no specific food was assessed).
type AdviceResult struct {
	Disease         DiseaseCategory   `json:"disease"`
	DiseaseName     string            `json:"disease_name"`
	FoodName        string            `json:"food_name,omitempty"`
	Score           *int              `json:"score,omitempty"`
	Tier            *SafetyTier       `json:"tier,omitempty"`
	Headline        string            `json:"headline,omitempty"`
	GeneralAdvice   string            `json:"general_advice"`
	PreferredFoods  []string          `json:"preferred_foods"`
	AvoidFoods      []string          `json:"avoid_foods"`
	MaxMealCalories int               `json:"max_meal_calories"`
	Findings        []NutrientFinding `json:"findings,omitempty"`
	Adjustments     []string          `json:"adjustments,omitempty"`
}

func (c DiseaseCategory) String() string { return string(c) }
