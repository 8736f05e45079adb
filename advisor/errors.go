package advisor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingNutrition signals that no NutritionFacts could be resolved for
// a food name. The caller surfaces it as an "insufficient data" reply
// instead of fabricating numbers.
var ErrMissingNutrition = errors.New("no nutrition data available for food")

// UnknownDiseaseError is returned when free text matches no known synonym.
// It carries the original input and the supported display names so the
// caller can ask the user to pick one instead of guessing.
type UnknownDiseaseError struct {
	Input     string
	Supported []string
}

func (e *UnknownDiseaseError) Error() string {
	return fmt.Sprintf("unknown disease %q, supported: %s", e.Input, strings.Join(e.Supported, ", "))
}

// InvalidNutritionError rejects out-of-domain nutrient values (e.g. negative
// calories) before scoring. Values are never clamped silently.
type InvalidNutritionError struct {
	Field string
	Value float64
}

func (e *InvalidNutritionError) Error() string {
	return fmt.Sprintf("invalid nutrition value: %s = %v", e.Field, e.Value)
}
