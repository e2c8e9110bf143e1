package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/config"
)

func TestDefaultEngineConfigValidates(t *testing.T) {
	require.NoError(t, config.DefaultEngineConfig().Validate())
}

func TestValidateRejectsZeroCacheExpiry(t *testing.T) {
	c := config.DefaultEngineConfig()
	c.BaseCacheExpiresSeconds = 0
	require.Error(t, c.Validate())
}

func TestValidateRejectsZeroMaxIterations(t *testing.T) {
	c := config.DefaultEngineConfig()
	c.MaxNewtonIterations = 0
	require.Error(t, c.Validate())
}

func TestValidateRejectsUnreasonableMaxIterations(t *testing.T) {
	c := config.DefaultEngineConfig()
	c.MaxNewtonIterations = 1_000_000
	require.Error(t, c.Validate())
}
