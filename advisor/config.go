package advisor

// ScoreFunc produces the per-nutrient findings for one disease category.
// The score delta of each finding is summed by the Scorer.
type ScoreFunc func(cfg *Config, facts NutritionFacts) []NutrientFinding

// DietaryRule is the static per-disease configuration used both for
// general advice and as scoring priors. Exactly one rule exists per
// category; rules are read-only after Config construction. Adding a
// disease is a rule-table addition, including its scoring function.
type DietaryRule struct {
	DisplayName     string   // Vietnamese name shown to users
	Dominant        string   // nutrient dimension weighted most heavily
	Avoid           []string // foods to restrict, most critical first
	Prefer          []string // foods to favour
	MaxMealCalories int      // per-meal ceiling, kcal
	Principle       string   // one-line dietary principle
	Score           ScoreFunc
}

// Config holds the synonym map and rule table. Build it once at startup
// and share it freely; nothing mutates it after construction.
type Config struct {
	// Synonyms maps lower-cased, trimmed free-text phrases (Vietnamese
	// and English) to a canonical category. Lookup is exact, no fuzzy
	// matching — unknown phrases must be surfaced, never guessed.
	Synonyms map[string]DiseaseCategory

	Rules map[DiseaseCategory]DietaryRule

	// Categories fixes the enumeration order for user-facing lists.
	Categories []DiseaseCategory

	// LowSodiumCategories lists food categories assumed naturally low in
	// sodium. Used only as a fallback when no sodium measurement exists.
	LowSodiumCategories []string
}

// Rule returns the dietary rule for a category.
func (c *Config) Rule(cat DiseaseCategory) (DietaryRule, bool) {
	r, ok := c.Rules[cat]
	return r, ok
}

// SupportedNames returns the display names of all configured categories,
// in enumeration order.
func (c *Config) SupportedNames() []string {
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, c.Rules[cat].DisplayName)
	}
	return names
}

// IsLowSodiumCategory reports whether a food category is on the
// naturally-low-sodium list.
func (c *Config) IsLowSodiumCategory(category string) bool {
	for _, lc := range c.LowSodiumCategories {
		if lc == category {
			return true
		}
	}
	return false
}

// DefaultConfig returns the built-in rule set for the three most common
// chronic conditions in Vietnam.
func DefaultConfig() *Config {
	return &Config{
		Synonyms: map[string]DiseaseCategory{
			"tiểu đường":      Diabetes,
			"đái tháo đường":  Diabetes,
			"đường huyết cao": Diabetes,
			"diabetes":        Diabetes,
			"béo":             Obesity,
			"béo phì":         Obesity,
			"thừa cân":        Obesity,
			"obesity":         Obesity,
			"huyết áp":        Hypertension,
			"tăng huyết áp":   Hypertension,
			"cao huyết áp":    Hypertension,
			"huyết áp cao":    Hypertension,
			"hypertension":    Hypertension,
		},
		Rules: map[DiseaseCategory]DietaryRule{
			Diabetes: {
				DisplayName:     "Tiểu đường",
				Dominant:        "carbs",
				Avoid:           []string{"Bánh ngọt", "Nước ngọt", "Cơm trắng", "Bánh mì trắng", "Kẹo"},
				Prefer:          []string{"Rau xanh", "Cá", "Trứng", "Yến mạch", "Đậu"},
				MaxMealCalories: 500,
				Principle:       "Ăn ít đường, nhiều chất xơ. Chia nhỏ bữa ăn. Kiểm tra đường huyết thường xuyên.",
				Score:           scoreDiabetes,
			},
			Obesity: {
				DisplayName:     "Béo phì",
				Dominant:        "calories",
				Avoid:           []string{"Đồ chiên", "Bánh kẹo", "Nước ngọt", "Thức ăn nhanh", "Kem"},
				Prefer:          []string{"Rau củ", "Trái cây ít đường", "Cá", "Ức gà", "Đậu"},
				MaxMealCalories: 400,
				Principle:       "Giảm calo, tăng vận động. Ăn nhiều rau, ít chất béo. Uống nhiều nước.",
				Score:           scoreObesity,
			},
			Hypertension: {
				DisplayName:     "Huyết áp cao",
				Dominant:        "sodium",
				Avoid:           []string{"Muối ăn", "Nước mắm", "Tương ớt", "Thịt hun khói", "Đồ hộp"},
				Prefer:          []string{"Chuối", "Rau bina", "Cá hồi", "Yến mạch", "Đậu đen"},
				MaxMealCalories: 600,
				Principle:       "Hạn chế muối, tăng kali. Ăn nhiều rau quả. Tránh căng thẳng.",
				Score:           scoreHypertension,
			},
		},
		Categories:          []DiseaseCategory{Diabetes, Obesity, Hypertension},
		LowSodiumCategories: []string{"rau", "trái cây", "cá"},
	}
}
