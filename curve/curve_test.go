package curve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/ammtypes"
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/curve"
)

func TestConstantProductSwapPreservesInvariantApproximately(t *testing.T) {
	result, err := curve.ConstantProductSwap(1_000, 1_000_000, 2_000_000)
	require.NoError(t, err)

	require.Equal(t, uint64(1_001_000), result.NewX)
	require.Less(t, result.NewY, uint64(2_000_000))
	// x*y should not decrease after a swap (flooring Δy leaves the remainder
	// in the pool, so k can only grow).
	require.GreaterOrEqual(t, result.NewX*result.NewY, uint64(1_000_000)*uint64(2_000_000))
}

func TestConstantProductSwapMonotonic(t *testing.T) {
	small, err := curve.ConstantProductSwap(1_000, 1_000_000, 2_000_000)
	require.NoError(t, err)
	large, err := curve.ConstantProductSwap(10_000, 1_000_000, 2_000_000)
	require.NoError(t, err)
	require.Greater(t, large.DstSwapped, small.DstSwapped)
}

func defaultMultiplier() ammtypes.TokenMultiplier {
	return ammtypes.TokenMultiplier{AMul: 1, BMul: 1, PrecisionFactor: 0}
}

func TestStableSwapScaledNoDepegBasic(t *testing.T) {
	params := ammtypes.StableCurveParams{
		Amp:             100,
		TokenMultiplier: defaultMultiplier(),
		Depeg:           ammtypes.Depeg{Kind: ammtypes.DepegNone},
	}

	result, err := curve.StableSwapScaled(params, 1_000, 1_000_000, 1_000_000, true, ammtypes.MaxNewtonIterations)
	require.NoError(t, err)
	require.Greater(t, result.DstSwapped, uint64(0))
	// A balanced, high-amp stable pool should quote close to 1:1.
	require.InDelta(t, float64(1_000), float64(result.DstSwapped), 50)
}

func TestStableSwapScaledMonotonic(t *testing.T) {
	params := ammtypes.StableCurveParams{
		Amp:             100,
		TokenMultiplier: defaultMultiplier(),
		Depeg:           ammtypes.Depeg{Kind: ammtypes.DepegNone},
	}

	small, err := curve.StableSwapScaled(params, 1_000, 1_000_000, 1_000_000, true, ammtypes.MaxNewtonIterations)
	require.NoError(t, err)
	large, err := curve.StableSwapScaled(params, 10_000, 1_000_000, 1_000_000, true, ammtypes.MaxNewtonIterations)
	require.NoError(t, err)
	require.Greater(t, large.DstSwapped, small.DstSwapped)
}

func TestStableSwapScaledWithDepegRepeg(t *testing.T) {
	params := ammtypes.StableCurveParams{
		Amp:             100,
		TokenMultiplier: defaultMultiplier(),
		Depeg: ammtypes.Depeg{
			Kind:             ammtypes.DepegLido,
			BaseVirtualPrice: 1_050_000, // 1 stSOL ~= 1.05 SOL
		},
	}

	result, err := curve.StableSwapScaled(params, 1_000_000, 5_000_000, 5_000_000, true, ammtypes.MaxNewtonIterations)
	require.NoError(t, err)
	require.Greater(t, result.DstSwapped, uint64(0))
}
