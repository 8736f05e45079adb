package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(170, 65)
	require.NoError(t, err)
	assert.InDelta(t, 22.49, bmi, 0.01)
	assert.Equal(t, "Bình thường", BMICategory(bmi))

	_, err = CalculateBMI(0, 65)
	assert.Error(t, err)
	_, err = CalculateBMI(170, 500)
	assert.Error(t, err)
}

func TestCalculateAge(t *testing.T) {
	assert.Equal(t, 0, CalculateAge(time.Time{}))

	b := time.Now().AddDate(-30, 0, -1)
	assert.Equal(t, 30, CalculateAge(b))
}

func TestDailyCalorieNeed(t *testing.T) {
	// Incomplete profile falls back to 2000.
	assert.Equal(t, 2000.0, DailyCalorieNeed("male", 0, 0, 0, ""))

	// 30y male, 170cm, 65kg, moderate: (650+1062.5-150+5)*1.55
	got := DailyCalorieNeed("male", 30, 170, 65, "moderate")
	assert.InDelta(t, 2429.6, got, 0.5)

	sedentary := DailyCalorieNeed("female", 30, 160, 55, "sedentary")
	active := DailyCalorieNeed("female", 30, 160, 55, "active")
	assert.Less(t, sedentary, active)
}
