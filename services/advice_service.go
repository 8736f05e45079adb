package services

import (
	"strings"

	"github.com/NguyenDinhPhat-22CT112/healthAI/advisor"
)

// AdviceService is the glue between the HTTP layer and the advisor core:
// it normalizes the disease text, resolves nutrition facts when a food was
// named, and delegates composition.
type AdviceService struct {
	cfg        *advisor.Config
	normalizer *advisor.Normalizer
	scorer     *advisor.Scorer
	composer   *advisor.Composer
	lookup     NutritionLookup
}

func NewAdviceService(cfg *advisor.Config, lookup NutritionLookup) *AdviceService {
	return &AdviceService{
		cfg:        cfg,
		normalizer: advisor.NewNormalizer(cfg),
		scorer:     advisor.NewScorer(cfg),
		composer:   advisor.NewComposer(cfg),
		lookup:     lookup,
	}
}

// GetAdvice answers both modes: general guidance (no food) and per-food
// analysis. Caller-supplied facts win over the catalog lookup.
func (s *AdviceService) GetAdvice(diseaseText, foodName string, facts *advisor.NutritionFacts) (advisor.AdviceResult, error) {
	category, err := s.normalizer.Normalize(diseaseText)
	if err != nil {
		return advisor.AdviceResult{}, err
	}

	if foodName == "" && facts == nil {
		return s.composer.ComposeGeneral(category)
	}

	if facts == nil {
		resolvedName, resolved, err := s.lookup.FindFacts(foodName)
		if err != nil {
			return advisor.AdviceResult{}, err
		}
		foodName = resolvedName
		facts = &resolved
	}

	return s.composer.ComposeForFood(category, foodName, *facts)
}

// ScoreFood exposes the raw scorer for callers that already have facts.
func (s *AdviceService) ScoreFood(diseaseText string, facts advisor.NutritionFacts) (advisor.ScoreResult, error) {
	category, err := s.normalizer.Normalize(diseaseText)
	if err != nil {
		return advisor.ScoreResult{}, err
	}
	return s.scorer.Score(facts, category)
}

// AdviseForCategory composes a per-food analysis for an already-canonical
// category.
func (s *AdviceService) AdviseForCategory(category advisor.DiseaseCategory, foodName string, facts advisor.NutritionFacts) (advisor.AdviceResult, error) {
	return s.composer.ComposeForFood(category, foodName, facts)
}

// ScoreForCategory skips normalization for callers that already hold a
// canonical category (e.g. resolved from a user profile).
func (s *AdviceService) ScoreForCategory(category advisor.DiseaseCategory, facts advisor.NutritionFacts) (advisor.ScoreResult, error) {
	return s.scorer.Score(facts, category)
}

// NormalizeDisease resolves free text to a canonical category.
func (s *AdviceService) NormalizeDisease(text string) (advisor.DiseaseCategory, error) {
	return s.normalizer.Normalize(text)
}

// FirstKnownCondition scans a comma-separated conditions string from a
// user profile and returns the first recognizable category.
func (s *AdviceService) FirstKnownCondition(conditions string) (advisor.DiseaseCategory, bool) {
	for _, part := range splitConditions(conditions) {
		if cat, err := s.normalizer.Normalize(part); err == nil {
			return cat, true
		}
	}
	return "", false
}

func splitConditions(conditions string) []string {
	return strings.FieldsFunc(conditions, func(r rune) bool {
		return r == ',' || r == ';'
	})
}
