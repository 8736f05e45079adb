package advisor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSynonymCoverage(t *testing.T) {
	n := NewNormalizer(DefaultConfig())

	cases := map[string]DiseaseCategory{
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
	}
	for input, want := range cases {
		got, err := n.Normalize(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestNormalizeTrimsAndLowercases(t *testing.T) {
	n := NewNormalizer(DefaultConfig())

	got, err := n.Normalize("  Tiểu Đường  ")
	require.NoError(t, err)
	assert.Equal(t, Diabetes, got)

	got, err = n.Normalize("DIABETES")
	require.NoError(t, err)
	assert.Equal(t, Diabetes, got)
}

func TestNormalizeUnknownDisease(t *testing.T) {
	n := NewNormalizer(DefaultConfig())

	_, err := n.Normalize("ung thư")
	require.Error(t, err)

	var unknown *UnknownDiseaseError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "ung thư", unknown.Input)
	assert.Equal(t, []string{"Tiểu đường", "Béo phì", "Huyết áp cao"}, unknown.Supported)
}

func TestNormalizeNoPartialMatch(t *testing.T) {
	n := NewNormalizer(DefaultConfig())

	// "tiểu đường type 2" is not an enumerated synonym; it must not
	// resolve by substring.
	_, err := n.Normalize("tiểu đường type 2")
	assert.Error(t, err)
}

func TestNormalizeDeterministic(t *testing.T) {
	n := NewNormalizer(DefaultConfig())
	for i := 0; i < 10; i++ {
		got, err := n.Normalize("huyết áp cao")
		require.NoError(t, err)
		assert.Equal(t, Hypertension, got)
	}
}
