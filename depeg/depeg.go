// Package depeg extracts a yield-bearing token's virtual price (expressed
// as base-token-per-derivative-token, scaled by ammtypes.DepegPricePrecision)
// from the raw account bytes of the three supported sources, and enforces
// the cache TTL policy that decides when a Stable curve's cached price
// needs refreshing.
package depeg

import (
	"encoding/binary"

	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/ammtypes"
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/fixedpoint"
)

const (
	lidoStSolSupplyOffset = 73
	lidoSolBalanceOffset  = 81
	lidoFieldLen          = 8

	marinadeDiscriminatorLen = 8

	priceDenominator = ammtypes.DepegPricePrecision
)

// VirtualPrice computes base_virtual_price from a source's raw account
// bytes given its kind. Lido reads fixed offsets of the full account;
// Marinade skips the 8-byte discriminator itself and reads msol_price right
// after it; SplStake takes the already-decoded total_lamports and
// pool_token_supply pair. See the per-kind extraction functions for exact
// offsets.
func VirtualPrice(kind ammtypes.DepegKind, raw []byte) (uint64, error) {
	switch kind {
	case ammtypes.DepegLido:
		return lidoVirtualPrice(raw)
	case ammtypes.DepegSplStake:
		return splStakeVirtualPrice(raw)
	case ammtypes.DepegMarinade:
		return marinadeVirtualPrice(raw)
	default:
		return 0, ammtypes.ErrDepegUnavailable.Wrapf("unsupported depeg kind %s", kind)
	}
}

func lidoVirtualPrice(raw []byte) (uint64, error) {
	if len(raw) < lidoSolBalanceOffset+lidoFieldLen {
		return 0, ammtypes.ErrDepegUnavailable.Wrap("lido account bytes too short")
	}
	stSolSupply := binary.LittleEndian.Uint64(raw[lidoStSolSupplyOffset : lidoStSolSupplyOffset+lidoFieldLen])
	solBalance := binary.LittleEndian.Uint64(raw[lidoSolBalanceOffset : lidoSolBalanceOffset+lidoFieldLen])
	if stSolSupply == 0 {
		return 0, ammtypes.ErrDepegUnavailable.Wrap("lido stSOL supply is zero")
	}
	return fixedpoint.MulDivU64(solBalance, priceDenominator, stSolSupply)
}

// splStakeLayout is the subset of a borsh-decoded SPL stake pool account
// this package needs: total_lamports and pool_token_supply, each an 8-byte
// little-endian field. Callers decode the full account upstream and pass
// just these two values; VirtualPrice's raw argument for SplStake is their
// 16-byte concatenation, total_lamports first.
func splStakeVirtualPrice(raw []byte) (uint64, error) {
	const fieldLen = 8
	if len(raw) < 2*fieldLen {
		return 0, ammtypes.ErrDepegUnavailable.Wrap("spl-stake account bytes too short")
	}
	totalLamports := binary.LittleEndian.Uint64(raw[0:fieldLen])
	poolTokenSupply := binary.LittleEndian.Uint64(raw[fieldLen : 2*fieldLen])
	if poolTokenSupply == 0 {
		return 0, ammtypes.ErrDepegUnavailable.Wrap("spl-stake pool token supply is zero")
	}
	return fixedpoint.MulDivU64(totalLamports, priceDenominator, poolTokenSupply)
}

// marinadeVirtualPrice skips the 8-byte Anchor account discriminator and
// reads msol_price as the next little-endian u64, scaled by
// PRICE_DENOMINATOR == 1e9 in the Marinade state account.
func marinadeVirtualPrice(raw []byte) (uint64, error) {
	const marinadePriceDenominator = 1_000_000_000
	const fieldLen = 8
	if len(raw) < marinadeDiscriminatorLen+fieldLen {
		return 0, ammtypes.ErrDepegUnavailable.Wrap("marinade account bytes too short")
	}
	msolPrice := binary.LittleEndian.Uint64(raw[marinadeDiscriminatorLen : marinadeDiscriminatorLen+fieldLen])
	return fixedpoint.MulDivU64(msolPrice, priceDenominator, marinadePriceDenominator)
}

// Refresh applies the cache TTL policy: if currentTs has advanced more than
// ttlSeconds past d.BaseCacheUpdatedTs, it recomputes the virtual price from
// raw and returns an updated copy. Otherwise it returns d unchanged. raw may
// be nil when d.Kind == ammtypes.DepegNone.
func Refresh(d ammtypes.Depeg, currentTs, ttlSeconds uint64, raw []byte) (ammtypes.Depeg, error) {
	if d.Kind == ammtypes.DepegNone {
		return d, nil
	}

	expiresAt, err := fixedpoint.AddU64(d.BaseCacheUpdatedTs, ttlSeconds)
	if err != nil {
		return ammtypes.Depeg{}, err
	}
	if currentTs <= expiresAt {
		return d, nil
	}

	price, err := VirtualPrice(d.Kind, raw)
	if err != nil {
		return ammtypes.Depeg{}, err
	}

	refreshed := d
	refreshed.BaseVirtualPrice = price
	refreshed.BaseCacheUpdatedTs = currentTs
	return refreshed, nil
}
