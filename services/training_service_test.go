package services

import (
	"testing"

	"github.com/NguyenDinhPhat-22CT112/healthAI/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToExportPairPrefersCorrection(t *testing.T) {
	pair, ok := toExportPair(models.TrainingSample{
		SampleID:  "abc",
		Prompt:    "tư vấn tiểu đường",
		Response:  "câu trả lời sai",
		Corrected: "câu trả lời đúng",
		Rating:    1,
	}, 4)
	require.True(t, ok)
	assert.Equal(t, "câu trả lời đúng", pair.Completion)
}

func TestToExportPairSkipsLowRatedWithoutCorrection(t *testing.T) {
	_, ok := toExportPair(models.TrainingSample{
		Prompt:   "p",
		Response: "r",
		Rating:   2,
	}, 4)
	assert.False(t, ok)
}

func TestToExportPairKeepsWellRated(t *testing.T) {
	pair, ok := toExportPair(models.TrainingSample{
		SampleID: "xyz",
		Prompt:   "p",
		Response: "r",
		Rating:   5,
	}, 4)
	require.True(t, ok)
	assert.Equal(t, "r", pair.Completion)
	assert.Equal(t, "xyz", pair.SampleID)
}
