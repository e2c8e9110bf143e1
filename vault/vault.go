// Package vault converts between a vault's LP shares and the underlying
// token amount they represent, honoring a time-locked profit buffer that
// linearly unlocks to zero across a degradation window. It mirrors the
// teacher repository's SafeMulDiv/SafeRatio discipline (checked, floored,
// 128-bit-scale division) applied to the yield-vault domain instead of a
// liquidity-pool's LP-fee accounting.
package vault

import (
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/ammtypes"
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/fixedpoint"
)

// lockedProfitDenominator is the fixed-point scale of a vault's
// locked-profit decay ratio.
const lockedProfitDenominator = ammtypes.LockedProfitDegradationDenominator

// CurrentLockedProfit returns the amount of a vault's total_amount that is
// still time-locked at now, per the linear decay schedule: the buffer
// reaches zero once now advances locked_profit_degradation-scaled time past
// last_report_ts by lockedProfitDenominator units.
func CurrentLockedProfit(tracker ammtypes.LockedProfitTracker, now uint64) (uint64, error) {
	if now < tracker.LastReportTs {
		return 0, ammtypes.ErrArithmetic.Wrap("current timestamp precedes last report timestamp")
	}
	deltaT, err := fixedpoint.SubU64(now, tracker.LastReportTs)
	if err != nil {
		return 0, err
	}

	ratio, err := fixedpoint.MulU64(deltaT, tracker.LockedProfitDegradation)
	if err != nil {
		// The product can legitimately exceed uint64 for a stale tracker;
		// fall back to wide arithmetic rather than failing the quote.
		wideRatio := fixedpoint.WideFromU64(deltaT).Mul(fixedpoint.WideFromU64(tracker.LockedProfitDegradation))
		if wideRatio.Cmp(fixedpoint.WideFromU64(lockedProfitDenominator)) >= 0 {
			return 0, nil
		}
		ratio = wideRatio.U64()
	}
	if ratio >= lockedProfitDenominator {
		return 0, nil
	}

	remaining, err := fixedpoint.SubU64(lockedProfitDenominator, ratio)
	if err != nil {
		return 0, err
	}
	return fixedpoint.MulDivU64(tracker.LastUpdatedLockedProfit, remaining, lockedProfitDenominator)
}

// UnlockedAmount returns total_amount minus the currently locked profit at
// now. It satisfies I1: the result never exceeds total_amount.
func UnlockedAmount(v ammtypes.VaultSnapshot, now uint64) (uint64, error) {
	locked, err := CurrentLockedProfit(v.LockedProfitTracker, now)
	if err != nil {
		return 0, err
	}
	if locked > v.TotalAmount {
		return 0, nil
	}
	return fixedpoint.SubU64(v.TotalAmount, locked)
}

// AmountByShare converts an LP share amount to the underlying token amount
// it currently redeems for: floor(share * unlocked_amount / lp_supply).
// lpSupply == 0 is undefined and fails with ErrShareConversion.
func AmountByShare(share uint64, v ammtypes.VaultSnapshot, lpSupply uint64, now uint64) (uint64, error) {
	if lpSupply == 0 {
		return 0, ammtypes.ErrShareConversion.Wrap("vault LP supply is zero")
	}
	unlocked, err := UnlockedAmount(v, now)
	if err != nil {
		return 0, err
	}
	return fixedpoint.MulDivU64(share, unlocked, lpSupply)
}

// UnmintAmount converts an underlying token amount to the LP share amount
// required to redeem it: floor(amount * lp_supply / unlocked_amount). An
// unlocked_amount of zero fails with ErrShareConversion.
func UnmintAmount(amount uint64, v ammtypes.VaultSnapshot, lpSupply uint64, now uint64) (uint64, error) {
	unlocked, err := UnlockedAmount(v, now)
	if err != nil {
		return 0, err
	}
	if unlocked == 0 {
		return 0, ammtypes.ErrShareConversion.Wrap("vault unlocked amount is zero")
	}
	return fixedpoint.MulDivU64(amount, lpSupply, unlocked)
}

// DepositSimulation is the result of simulating a deposit into a local copy
// of a vault's state, without mutating the caller's snapshot.
type DepositSimulation struct {
	MintedShares  uint64
	NewLPSupply   uint64
	NewPoolShares uint64
	PostAmount    uint64
}

// SimulateDeposit mints shares for amount against a vault using
// pre-deposit state, then projects the post-deposit total the pool's share
// balance would redeem for. This reproduces the on-chain round-trip the
// quote pipeline uses to recover the actual (post-fee, post-vault) input
// amount: the pool's own share balance grows, but the vault's share price
// shifts slightly too, so the net redeemable amount must be read back from
// the mutated totals rather than assumed equal to the deposit.
func SimulateDeposit(v ammtypes.VaultSnapshot, depositAmount, poolShares, lpSupply, now uint64) (DepositSimulation, error) {
	mintedShares, err := UnmintAmount(depositAmount, v, lpSupply, now)
	if err != nil {
		return DepositSimulation{}, err
	}

	newLPSupply, err := fixedpoint.AddU64(lpSupply, mintedShares)
	if err != nil {
		return DepositSimulation{}, err
	}
	newPoolShares, err := fixedpoint.AddU64(poolShares, mintedShares)
	if err != nil {
		return DepositSimulation{}, err
	}

	postVault := v
	postVault.TotalAmount, err = fixedpoint.AddU64(v.TotalAmount, depositAmount)
	if err != nil {
		return DepositSimulation{}, err
	}

	postAmount, err := AmountByShare(newPoolShares, postVault, newLPSupply, now)
	if err != nil {
		return DepositSimulation{}, err
	}

	return DepositSimulation{
		MintedShares:  mintedShares,
		NewLPSupply:   newLPSupply,
		NewPoolShares: newPoolShares,
		PostAmount:    postAmount,
	}, nil
}
