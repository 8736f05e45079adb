package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzePhotoWithoutRecognitionConfigured(t *testing.T) {
	svc := NewAnalysisService(nil, nil, nil)

	_, err := svc.AnalyzePhoto(context.Background(), 1, "data:image/jpeg;base64,AAAA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
