package ammtypes

import (
	"cosmossdk.io/errors"
)

// ModuleName identifies the codespace used to register quote-engine sentinel
// errors. There is no on-chain module behind this codespace; it exists so
// every error in the engine can be registered and unwrapped consistently.
const ModuleName = "ammquote"

// Quote-engine sentinel errors. Every error returned by fixedpoint, fees,
// vault, depeg, curve, and quote wraps one of these via Wrap/Wrapf so a
// caller can unwrap to the specific failure kind.
var (
	ErrArithmetic             = errors.Register(ModuleName, 1, "checked arithmetic overflowed or divided by zero")
	ErrWrongMint              = errors.Register(ModuleName, 2, "input mint matches neither pool token")
	ErrDepegUnavailable       = errors.Register(ModuleName, 3, "depeg virtual price cache expired and source bytes are missing or malformed")
	ErrInsufficientReserve    = errors.Register(ModuleName, 4, "computed output amount is not smaller than the output vault's reserve")
	ErrInvariantNonConverging = errors.Register(ModuleName, 5, "stable-swap Newton iteration failed to converge")
	ErrInvalidFee             = errors.Register(ModuleName, 6, "fee denominator is zero")
	ErrShareConversion        = errors.Register(ModuleName, 7, "vault share conversion requires a non-zero supply")
)
