package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	boolenc "github.com/luxfi/symcore/enc/bool"
)

func TestDefaultBuilderProducesValidConfig(t *testing.T) {
	require := require.New(t)

	cfg, err := NewBuilder().Build()
	require.NoError(err)
	require.Equal(600000, cfg.CartesianThreshold)
	require.True(cfg.OverApprox)
	require.Equal(boolenc.HigherToLowerBalanced, cfg.ScalarVariant)
	require.Equal(-1, cfg.ReachStep)
	require.Equal(time.Duration(0), cfg.ReachBudget)
}

func TestWithCartesianThresholdRejectsNonPositive(t *testing.T) {
	require := require.New(t)

	_, err := NewBuilder().WithCartesianThreshold(0).Build()
	require.Error(err)
}

func TestWithOverApproxDisables(t *testing.T) {
	require := require.New(t)

	cfg, err := NewBuilder().WithOverApprox(false).Build()
	require.NoError(err)
	require.False(cfg.OverApprox)
}

func TestWithScalarVariantOverride(t *testing.T) {
	require := require.New(t)

	cfg, err := NewBuilder().WithScalarVariant(boolenc.LowerToHigherBalanced).Build()
	require.NoError(err)
	require.Equal(boolenc.LowerToHigherBalanced, cfg.ScalarVariant)
}

func TestWithReachBudgetSetsStepAndTime(t *testing.T) {
	require := require.New(t)

	cfg, err := NewBuilder().WithReachBudget(10, 5*time.Second).Build()
	require.NoError(err)
	require.Equal(10, cfg.ReachStep)
	require.Equal(5*time.Second, cfg.ReachBudget)
}

func TestBuilderErrorShortCircuitsSubsequentCalls(t *testing.T) {
	require := require.New(t)

	b := NewBuilder().WithCartesianThreshold(-1).WithOverApprox(false)
	_, err := b.Build()
	require.Error(err)
	require.Contains(err.Error(), "cartesian threshold")
}

func TestValidatorRejectsNegativeReachBudget(t *testing.T) {
	require := require.New(t)

	cfg := &Config{
		CartesianThreshold: 1,
		ScalarVariant:      boolenc.HigherToLowerBalanced,
		ReachBudget:        -1 * time.Second,
	}
	err := NewValidator().Validate(cfg)
	require.Error(err)
}

func TestValidatorAggregatesMultipleErrors(t *testing.T) {
	require := require.New(t)

	cfg := &Config{
		CartesianThreshold: 0,
		ScalarVariant:      boolenc.Variant(99),
		ReachBudget:        -1,
	}
	err := NewValidator().Validate(cfg)
	require.Error(err)
	require.Contains(err.Error(), "cartesian threshold")
	require.Contains(err.Error(), "scalar encoding variant")
}
