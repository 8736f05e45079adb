package advisor

import "fmt"

const baseScore = 50

// Scorer computes a 0–100 suitability score for a food against a disease
// category, with a per-nutrient breakdown explaining every delta.
type Scorer struct {
	cfg *Config
}

func NewScorer(cfg *Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score applies the category's threshold buckets to the facts. Missing
// macro values are treated as zero (flagged in the breakdown), never as an
// error; out-of-domain values are rejected up front.
func (s *Scorer) Score(facts NutritionFacts, category DiseaseCategory) (ScoreResult, error) {
	if err := facts.Validate(); err != nil {
		return ScoreResult{}, err
	}
	rule, ok := s.cfg.Rule(category)
	if !ok || rule.Score == nil {
		return ScoreResult{}, &UnknownDiseaseError{Input: string(category), Supported: s.cfg.SupportedNames()}
	}

	findings := rule.Score(s.cfg, facts)

	score := baseScore
	for _, fd := range findings {
		score += fd.Delta
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return ScoreResult{
		Score:    score,
		Tier:     TierFromScore(score),
		Findings: findings,
	}, nil
}

func scoreDiabetes(_ *Config, f NutritionFacts) []NutrientFinding {
	var out []NutrientFinding

	// Carbs drive blood sugar; buckets are mutually exclusive.
	carb := NutrientFinding{
		Nutrient:  "carbohydrate",
		Value:     f.Carbs,
		Unit:      "g",
		Threshold: "< 50g/bữa",
		Reason:    "Carbs cao làm tăng đường huyết",
	}
	switch {
	case f.Carbs <= 30:
		carb.Status, carb.Delta = "AN TOÀN", 20
	case f.Carbs <= 50:
		carb.Status, carb.Delta = "CHẤP NHẬN ĐƯỢC", 10
	default:
		carb.Status, carb.Delta = "NGUY HIỂM", -20
	}
	out = append(out, noteIfZero(carb))

	prot := NutrientFinding{
		Nutrient:  "protein",
		Value:     f.Protein,
		Unit:      "g",
		Threshold: "≥ 15g",
		Reason:    "Protein giúp no lâu và ổn định đường huyết",
	}
	if f.Protein >= 15 {
		prot.Status, prot.Delta = "TỐT", 15
	} else {
		prot.Status = "BÌNH THƯỜNG"
	}
	out = append(out, noteIfZero(prot))

	cal := NutrientFinding{
		Nutrient:  "calo",
		Value:     f.Calories,
		Unit:      "kcal",
		Threshold: "≤ 400 kcal/bữa",
		Reason:    "Nên chia nhỏ bữa ăn, giữ mỗi bữa dưới 400 kcal",
	}
	if f.Calories <= 400 {
		cal.Status, cal.Delta = "AN TOÀN", 15
	} else {
		cal.Status = "CAO"
	}
	out = append(out, noteIfZero(cal))

	return out
}

func scoreObesity(_ *Config, f NutritionFacts) []NutrientFinding {
	var out []NutrientFinding

	cal := NutrientFinding{
		Nutrient:  "calo",
		Value:     f.Calories,
		Unit:      "kcal",
		Threshold: "≤ 400 kcal/bữa",
		Reason:    "Calo cao dẫn đến tăng cân",
	}
	switch {
	case f.Calories <= 200:
		cal.Status, cal.Delta = "ÍT CALO", 25
	case f.Calories <= 400:
		cal.Status, cal.Delta = "TRUNG BÌNH", 10
	default:
		cal.Status, cal.Delta = "NHIỀU CALO", -25
	}
	out = append(out, noteIfZero(cal))

	fat := NutrientFinding{
		Nutrient:  "chất béo",
		Value:     f.Fat,
		Unit:      "g",
		Threshold: "≤ 20g",
		Reason:    "Nhiều chất béo làm tăng tích mỡ",
	}
	switch {
	case f.Fat <= 10:
		fat.Status, fat.Delta = "AN TOÀN", 15
	case f.Fat <= 20:
		fat.Status, fat.Delta = "CHẤP NHẬN ĐƯỢC", 5
	default:
		fat.Status, fat.Delta = "NGUY HIỂM", -15
	}
	out = append(out, noteIfZero(fat))

	return out
}

func scoreHypertension(cfg *Config, f NutritionFacts) []NutrientFinding {
	var out []NutrientFinding

	cal := NutrientFinding{
		Nutrient:  "calo",
		Value:     f.Calories,
		Unit:      "kcal",
		Threshold: "≤ 300 kcal/bữa",
		Reason:    "Món nhẹ giúp kiểm soát cân nặng và huyết áp",
	}
	if f.Calories <= 300 {
		cal.Status, cal.Delta = "AN TOÀN", 15
	} else {
		cal.Status = "CAO"
	}
	out = append(out, noteIfZero(cal))

	prot := NutrientFinding{
		Nutrient:  "protein",
		Value:     f.Protein,
		Unit:      "g",
		Threshold: "≥ 10g",
		Reason:    "Protein nạc hỗ trợ tim mạch",
	}
	if f.Protein >= 10 {
		prot.Status, prot.Delta = "TỐT", 10
	} else {
		prot.Status = "BÌNH THƯỜNG"
	}
	out = append(out, noteIfZero(prot))

	return append(out, sodiumFinding(cfg, f))
}

// sodiumFinding prefers a real measurement. Only when sodium is absent does
// it fall back to the low-sodium category list, and that finding is marked
// approximate. With neither, the dimension is reported as missing data and
// contributes nothing.
func sodiumFinding(cfg *Config, f NutritionFacts) NutrientFinding {
	if f.SodiumMg != nil {
		fd := NutrientFinding{
			Nutrient:  "natri",
			Value:     *f.SodiumMg,
			Unit:      "mg",
			Threshold: "≤ 400mg/bữa",
			Reason:    "Muối cao làm tăng huyết áp",
		}
		switch {
		case *f.SodiumMg <= 400:
			fd.Status, fd.Delta = "AN TOÀN", 20
		case *f.SodiumMg <= 800:
			fd.Status, fd.Delta = "CHẤP NHẬN ĐƯỢC", 5
		default:
			fd.Status, fd.Delta = "NGUY HIỂM", -20
		}
		return fd
	}

	if f.Category != "" && cfg.IsLowSodiumCategory(f.Category) {
		return NutrientFinding{
			Nutrient:    "natri",
			Status:      "ÍT MUỐI (ƯỚC LƯỢNG)",
			Reason:      fmt.Sprintf("Nhóm '%s' thường ít muối — ước lượng theo nhóm, không phải số đo", f.Category),
			Delta:       20,
			Approximate: true,
		}
	}

	return NutrientFinding{
		Nutrient: "natri",
		Status:   "THIẾU DỮ LIỆU",
		Reason:   "Không có số liệu muối; chấm điểm dựa trên calo và protein",
		Missing:  true,
	}
}

// noteIfZero flags values that came in as zero, usually an unreported
// nutrient rather than a genuine measurement.
func noteIfZero(fd NutrientFinding) NutrientFinding {
	if fd.Value == 0 {
		fd.Reason += " (giá trị 0 — có thể thiếu dữ liệu, tính là 0)"
	}
	return fd
}
