// Package fees computes the two independent fee ladders a pool charges on a
// swap: the trade (LP) fee and the protocol fee. Both share the same
// floor-with-minimum-one-unit rule and are computed from the nominal input;
// they differ only in where the pipeline subtracts them (the protocol fee
// before the vault round-trip, the trade fee after it), which is the
// caller's (package quote's) concern, not this package's.
package fees

import (
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/ammtypes"
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/fixedpoint"
)

// Calculate returns floor(amount*num/den), bumped up to 1 whenever that
// floor is zero but num and amount are both nonzero. A zero denominator is
// rejected with ErrInvalidFee; a zero numerator or a zero amount always
// yields a zero fee, denominator notwithstanding.
func Calculate(amount, num, den uint64) (uint64, error) {
	if den == 0 {
		return 0, ammtypes.ErrInvalidFee.Wrap("fee denominator is zero")
	}
	if num == 0 || amount == 0 {
		return 0, nil
	}

	fee, err := fixedpoint.MulDivU64(amount, num, den)
	if err != nil {
		return 0, err
	}
	if fee == 0 {
		return 1, nil
	}
	return fee, nil
}
