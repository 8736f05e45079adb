package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveMacros(t *testing.T) {
	protein, carbs, fat := deriveMacros(2000)
	assert.InDelta(t, 100.0, protein, 0.001) // 20% at 4 kcal/g
	assert.InDelta(t, 250.0, carbs, 0.001)   // 50% at 4 kcal/g
	assert.InDelta(t, 66.67, fat, 0.001)     // 30% at 9 kcal/g
}

func TestDeriveMacrosSmallTarget(t *testing.T) {
	protein, carbs, fat := deriveMacros(1200)
	assert.InDelta(t, 60.0, protein, 0.001)
	assert.InDelta(t, 150.0, carbs, 0.001)
	assert.InDelta(t, 40.0, fat, 0.001)
}
