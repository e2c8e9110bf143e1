// Package fixedpoint provides the checked-arithmetic primitives every other
// package builds its math on: narrow uint64 operations that fail fast on
// overflow, and a Wide type for the 128/256-bit-scale intermediate products
// the stable-swap invariant needs (token_a_reserve * token_b_reserve can
// exceed 2^64 long before either reserve does).
package fixedpoint

import (
	"math/big"
	"math/bits"

	"cosmossdk.io/math"

	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/ammtypes"
)

// AddU64 adds two uint64 values, returning ammtypes.ErrArithmetic on overflow.
func AddU64(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ammtypes.ErrArithmetic.Wrapf("uint64 addition overflow: %d + %d", a, b)
	}
	return sum, nil
}

// SubU64 subtracts b from a, returning ammtypes.ErrArithmetic on underflow.
func SubU64(a, b uint64) (uint64, error) {
	if a < b {
		return 0, ammtypes.ErrArithmetic.Wrapf("uint64 subtraction underflow: %d - %d", a, b)
	}
	return a - b, nil
}

// MulU64 multiplies two uint64 values, returning ammtypes.ErrArithmetic on
// overflow.
func MulU64(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ammtypes.ErrArithmetic.Wrapf("uint64 multiplication overflow: %d * %d", a, b)
	}
	return lo, nil
}

// DivU64 floor-divides a by b, returning ammtypes.ErrArithmetic when b is
// zero.
func DivU64(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ammtypes.ErrArithmetic.Wrap("division by zero")
	}
	return a / b, nil
}

// MulDivU64 computes floor(a*b/c) without ever overflowing uint64, by
// carrying the intermediate product in a Wide value. This is the workhorse
// behind every fee and share ratio in the engine.
func MulDivU64(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, ammtypes.ErrArithmetic.Wrap("division by zero")
	}
	product := WideFromU64(a).Mul(WideFromU64(b))
	quotient, err := product.QuoU64(c)
	if err != nil {
		return 0, err
	}
	if !quotient.FitsU64() {
		return 0, ammtypes.ErrArithmetic.Wrapf("mul-div result exceeds uint64: (%d * %d) / %d", a, b, c)
	}
	return quotient.U64(), nil
}

// maxWide is the exclusive upper bound every Wide value is checked against.
var maxWide = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// Wide is an arbitrary-width non-negative integer used for the 128/256-bit
// intermediate products the stable-swap invariant and reserve-product
// checks require. It is a thin, bounds-checked wrapper over cosmossdk.io's
// math.Int, a big.Int-backed type suited to overflow-checked arithmetic.
type Wide struct {
	v math.Int
}

// WideFromU64 lifts a uint64 into a Wide.
func WideFromU64(a uint64) Wide {
	return Wide{v: math.NewIntFromUint64(a)}
}

// WideZero returns the additive identity.
func WideZero() Wide {
	return Wide{v: math.ZeroInt()}
}

func (w Wide) bigInt() *big.Int {
	if w.v.IsNil() {
		return big.NewInt(0)
	}
	return w.v.BigInt()
}

// Add returns w+other, erroring if the sum would reach 2^256.
func (w Wide) Add(other Wide) (Wide, error) {
	sum := new(big.Int).Add(w.bigInt(), other.bigInt())
	if sum.Cmp(maxWide) >= 0 {
		return Wide{}, ammtypes.ErrArithmetic.Wrap("wide addition overflow")
	}
	return Wide{v: math.NewIntFromBigInt(sum)}, nil
}

// Sub returns w-other, erroring on underflow.
func (w Wide) Sub(other Wide) (Wide, error) {
	if w.bigInt().Cmp(other.bigInt()) < 0 {
		return Wide{}, ammtypes.ErrArithmetic.Wrap("wide subtraction underflow")
	}
	return Wide{v: math.NewIntFromBigInt(new(big.Int).Sub(w.bigInt(), other.bigInt()))}, nil
}

// Mul returns w*other. Unlike Add, it returns no error: the product must
// stay below 2^256, since the underlying math.Int constructor panics on a
// value wider than 256 bits.
func (w Wide) Mul(other Wide) Wide {
	return Wide{v: math.NewIntFromBigInt(new(big.Int).Mul(w.bigInt(), other.bigInt()))}
}

// QuoU64 floor-divides w by a uint64 divisor.
func (w Wide) QuoU64(divisor uint64) (Wide, error) {
	if divisor == 0 {
		return Wide{}, ammtypes.ErrArithmetic.Wrap("division by zero")
	}
	q := new(big.Int).Quo(w.bigInt(), new(big.Int).SetUint64(divisor))
	return Wide{v: math.NewIntFromBigInt(q)}, nil
}

// QuoWide floor-divides w by another Wide divisor, for quotients whose
// divisor itself grew past uint64 scale (e.g. D^3/(x0*x1*n^2) when the
// reserves' product no longer fits in a uint64).
func (w Wide) QuoWide(divisor Wide) (Wide, error) {
	if divisor.Cmp(WideZero()) == 0 {
		return Wide{}, ammtypes.ErrArithmetic.Wrap("division by zero")
	}
	q := new(big.Int).Quo(w.bigInt(), divisor.bigInt())
	return Wide{v: math.NewIntFromBigInt(q)}, nil
}

// Cmp compares w to other the way big.Int.Cmp does.
func (w Wide) Cmp(other Wide) int {
	return w.bigInt().Cmp(other.bigInt())
}

// FitsU64 reports whether w's value is representable in a uint64.
func (w Wide) FitsU64() bool {
	return w.bigInt().IsUint64()
}

// U64 returns w truncated to uint64. Callers must check FitsU64 first; for
// a larger value U64 does not fail, it returns a meaningless result.
func (w Wide) U64() uint64 {
	return w.bigInt().Uint64()
}

// String renders the decimal value, for logging and test failure messages.
func (w Wide) String() string {
	return w.bigInt().String()
}
