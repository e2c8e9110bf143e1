// Package quote implements the top-level pipeline that turns a pool/vault
// snapshot plus a requested input amount into the exact output amount and
// fee breakdown the corresponding on-chain swap instruction would produce.
// The ordering below is load-bearing: protocol fee, then vault shares, then
// trade fee, then the curve, then vault shares again. Reordering any of
// these steps changes floor rounding and breaks parity with the on-chain
// reference.
package quote

import (
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/ammtypes"
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/config"
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/curve"
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/depeg"
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/fees"
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/fixedpoint"
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/vault"
)

// ComputeQuote is the engine's single public entry point. It is a pure
// function of inMint, inAmount, and data: given the same three arguments it
// always returns the same result, and it never mutates data or any value
// reachable through it (I3). cfg supplies the numeric constants the
// pipeline runs under; the zero value is invalid, use
// config.DefaultEngineConfig() unless a caller has a specific reason to
// override convergence bounds or cache policy.
func ComputeQuote(inMint ammtypes.Mint, inAmount uint64, data ammtypes.QuoteData, cfg config.EngineConfig) (ammtypes.QuoteResult, error) {
	pool := data.Pool

	inIsA, err := direction(inMint, pool)
	if err != nil {
		return ammtypes.QuoteResult{}, err
	}

	refreshedCurve, err := refreshDepeg(pool.Curve, data, cfg)
	if err != nil {
		return ammtypes.QuoteResult{}, err
	}
	pool.Curve = refreshedCurve

	inVault, outVault := data.VaultA, data.VaultB
	poolLPIn, poolLPOut := pool.PoolLPInVaultA, pool.PoolLPInVaultB
	if !inIsA {
		inVault, outVault = data.VaultB, data.VaultA
		poolLPIn, poolLPOut = pool.PoolLPInVaultB, pool.PoolLPInVaultA
	}

	preTotalIn, err := vault.AmountByShare(poolLPIn, inVault, inVault.LPMintSupply, data.CurrentUnixTs)
	if err != nil {
		return ammtypes.QuoteResult{}, err
	}
	preTotalOut, err := vault.AmountByShare(poolLPOut, outVault, outVault.LPMintSupply, data.CurrentUnixTs)
	if err != nil {
		return ammtypes.QuoteResult{}, err
	}

	protocolFee, err := fees.Calculate(inAmount, pool.Fees.ProtocolFeeNumerator, pool.Fees.ProtocolFeeDenominator)
	if err != nil {
		return ammtypes.QuoteResult{}, err
	}
	inAfterProtocol, err := fixedpoint.SubU64(inAmount, protocolFee)
	if err != nil {
		return ammtypes.QuoteResult{}, err
	}

	sim, err := vault.SimulateDeposit(inVault, inAfterProtocol, poolLPIn, inVault.LPMintSupply, data.CurrentUnixTs)
	if err != nil {
		return ammtypes.QuoteResult{}, err
	}
	actualIn, err := fixedpoint.SubU64(sim.PostAmount, preTotalIn)
	if err != nil {
		return ammtypes.QuoteResult{}, err
	}

	tradeFee, err := fees.Calculate(inAmount, pool.Fees.TradeFeeNumerator, pool.Fees.TradeFeeDenominator)
	if err != nil {
		return ammtypes.QuoteResult{}, err
	}
	netIn, err := fixedpoint.SubU64(actualIn, tradeFee)
	if err != nil {
		return ammtypes.QuoteResult{}, err
	}

	dstSwapped, err := runCurve(pool.Curve, netIn, preTotalIn, preTotalOut, inIsA, cfg)
	if err != nil {
		return ammtypes.QuoteResult{}, err
	}

	outLP, err := vault.UnmintAmount(dstSwapped, outVault, outVault.LPMintSupply, data.CurrentUnixTs)
	if err != nil {
		return ammtypes.QuoteResult{}, err
	}
	outAmount, err := vault.AmountByShare(outLP, outVault, outVault.LPMintSupply, data.CurrentUnixTs)
	if err != nil {
		return ammtypes.QuoteResult{}, err
	}

	if outAmount >= outVault.TokenVaultBalance {
		return ammtypes.QuoteResult{}, ammtypes.ErrInsufficientReserve.Wrapf(
			"out_amount %d is not smaller than output vault reserve %d", outAmount, outVault.TokenVaultBalance)
	}

	return ammtypes.QuoteResult{OutAmount: outAmount, Fee: tradeFee}, nil
}

func direction(inMint ammtypes.Mint, pool ammtypes.PoolSnapshot) (bool, error) {
	switch inMint {
	case pool.TokenAMint:
		return true, nil
	case pool.TokenBMint:
		return false, nil
	default:
		return false, ammtypes.ErrWrongMint
	}
}

// refreshDepeg applies the cache TTL policy to a Stable curve's depeg
// config, returning a local copy; it never mutates the caller's snapshot.
func refreshDepeg(c ammtypes.Curve, data ammtypes.QuoteData, cfg config.EngineConfig) (ammtypes.Curve, error) {
	if c.Kind != ammtypes.CurveStable || c.StableParams.Depeg.Kind == ammtypes.DepegNone {
		return c, nil
	}

	raw := depegSourceBytes(c.StableParams.Depeg.Kind, data)
	refreshed, err := depeg.Refresh(c.StableParams.Depeg, data.CurrentUnixTs, cfg.BaseCacheExpiresSeconds, raw)
	if err != nil {
		return ammtypes.Curve{}, err
	}

	out := c
	out.StableParams.Depeg = refreshed
	return out, nil
}

func depegSourceBytes(kind ammtypes.DepegKind, data ammtypes.QuoteData) []byte {
	switch kind {
	case ammtypes.DepegLido:
		return data.DepegAccountBytes[ammtypes.LidoStateID]
	case ammtypes.DepegMarinade:
		return data.DepegAccountBytes[ammtypes.MarinadeStateID]
	case ammtypes.DepegSplStake:
		return data.DepegAccountBytes[data.Pool.Stake]
	default:
		return nil
	}
}

func runCurve(c ammtypes.Curve, netIn, preTotalIn, preTotalOut uint64, inIsA bool, cfg config.EngineConfig) (uint64, error) {
	if c.Kind == ammtypes.CurveConstantProduct {
		result, err := curve.ConstantProductSwap(netIn, preTotalIn, preTotalOut)
		if err != nil {
			return 0, err
		}
		return result.DstSwapped, nil
	}

	result, err := curve.StableSwapScaled(c.StableParams, netIn, preTotalIn, preTotalOut, inIsA, cfg.MaxNewtonIterations)
	if err != nil {
		return 0, err
	}
	return result.DstSwapped, nil
}

