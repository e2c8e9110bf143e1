package fees_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/fees"
)

func TestCalculateZeroCases(t *testing.T) {
	fee, err := fees.Calculate(0, 25, 10_000)
	require.NoError(t, err)
	require.Zero(t, fee)

	fee, err = fees.Calculate(1_000_000, 0, 10_000)
	require.NoError(t, err)
	require.Zero(t, fee)
}

func TestCalculateZeroDenominator(t *testing.T) {
	_, err := fees.Calculate(1_000_000, 25, 0)
	require.Error(t, err)
}

func TestCalculateFloors(t *testing.T) {
	// 999 * 25 / 10_000 = 2.4975 -> floor 2
	fee, err := fees.Calculate(999, 25, 10_000)
	require.NoError(t, err)
	require.Equal(t, uint64(2), fee)
}

func TestCalculateMinimumOneUnitRule(t *testing.T) {
	// 1 * 1 / 10_000 floors to 0 but num and amount are both nonzero.
	fee, err := fees.Calculate(1, 1, 10_000)
	require.NoError(t, err)
	require.Equal(t, uint64(1), fee)
}

func TestCalculateLargeAmountNoOverflow(t *testing.T) {
	// (2^63 * 25) / 10_000 overflows a native uint64 product; the floored
	// result is still exact.
	fee, err := fees.Calculate(1<<63, 25, 10_000)
	require.NoError(t, err)
	require.Equal(t, uint64(23_058_430_092_136_939), fee)
}
