package fraud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/fraudlens/internal/graph"
	"github.com/zero-day-ai/fraudlens/internal/types"
)

func TestNewDetector_RequiresStore(t *testing.T) {
	_, err := NewDetector(nil, DefaultThresholds())
	require.Error(t, err)
	assert.Equal(t, types.DETECT_STORE_REQUIRED, types.CodeOf(err))
}

func TestNewDetector_ValidatesThresholds(t *testing.T) {
	bad := DefaultThresholds()
	bad.MinSharedUsers = 1

	_, err := NewDetector(graph.NewStore(), bad)
	require.Error(t, err)
	assert.Equal(t, types.DETECT_INVALID_THRESHOLDS, types.CodeOf(err))
}

func TestNewDetector_Accessors(t *testing.T) {
	store := graph.NewStore()
	d, err := NewDetector(store, DefaultThresholds())
	require.NoError(t, err)

	assert.Same(t, store, d.Store())
	assert.Equal(t, DefaultThresholds(), d.Thresholds())
}

func TestRiskLevel_Rank(t *testing.T) {
	assert.Greater(t, RiskCritical.Rank(), RiskHigh.Rank())
	assert.Greater(t, RiskHigh.Rank(), RiskMedium.Rank())
	assert.Greater(t, RiskMedium.Rank(), RiskLevel("bogus").Rank())
}
