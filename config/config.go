// Package config holds the small set of tunables the quote engine pulls in
// instead of hardcoding, validated independently per field and without the
// on-chain parameter-store plumbing (there is no governance surface here).
package config

import (
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/ammtypes"
)

// EngineConfig bundles every numeric constant the pipeline reads, so a
// caller can override convergence bounds or cache policy without touching
// engine code.
type EngineConfig struct {
	// BaseCacheExpiresSeconds is the depeg virtual-price cache TTL.
	BaseCacheExpiresSeconds uint64
	// DepegPricePrecision is the fixed-point scale of a virtual price. It
	// is validated but not read by the pipeline, which uses
	// ammtypes.DepegPricePrecision.
	DepegPricePrecision uint64
	// LockedProfitDegradationDenominator is the fixed-point scale of a
	// vault's locked-profit decay ratio. It is validated but not read by
	// the pipeline, which uses ammtypes.LockedProfitDegradationDenominator.
	LockedProfitDegradationDenominator uint64
	// MaxNewtonIterations bounds the stable-swap invariant and swap solvers.
	MaxNewtonIterations int
}

// DefaultEngineConfig returns the engine's default numeric constants.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		BaseCacheExpiresSeconds:            ammtypes.BaseCacheExpiresSeconds,
		DepegPricePrecision:                ammtypes.DepegPricePrecision,
		LockedProfitDegradationDenominator: ammtypes.LockedProfitDegradationDenominator,
		MaxNewtonIterations:                ammtypes.MaxNewtonIterations,
	}
}

// Validate checks every field is within a sane range, validating each
// parameter independently before accepting it.
func (c EngineConfig) Validate() error {
	if err := validateBaseCacheExpiresSeconds(c.BaseCacheExpiresSeconds); err != nil {
		return err
	}
	if err := validateDepegPricePrecision(c.DepegPricePrecision); err != nil {
		return err
	}
	if err := validateLockedProfitDegradationDenominator(c.LockedProfitDegradationDenominator); err != nil {
		return err
	}
	if err := validateMaxNewtonIterations(c.MaxNewtonIterations); err != nil {
		return err
	}
	return nil
}

func validateBaseCacheExpiresSeconds(v uint64) error {
	if v == 0 {
		return ammtypes.ErrInvalidFee.Wrap("base cache expiry cannot be zero")
	}
	return nil
}

func validateDepegPricePrecision(v uint64) error {
	if v == 0 {
		return ammtypes.ErrInvalidFee.Wrap("depeg price precision cannot be zero")
	}
	return nil
}

func validateLockedProfitDegradationDenominator(v uint64) error {
	if v == 0 {
		return ammtypes.ErrInvalidFee.Wrap("locked profit degradation denominator cannot be zero")
	}
	return nil
}

func validateMaxNewtonIterations(v int) error {
	if v <= 0 {
		return ammtypes.ErrInvalidFee.Wrap("max Newton iterations must be positive")
	}
	if v > 10_000 {
		return ammtypes.ErrInvalidFee.Wrap("max Newton iterations unreasonably large")
	}
	return nil
}
