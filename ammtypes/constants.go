package ammtypes

// Default numeric constants. These are the defaults a caller gets from
// config.DefaultEngineConfig(). The pipeline reads BaseCacheExpiresSeconds
// and MaxNewtonIterations from the config.EngineConfig it is given;
// DepegPricePrecision and LockedProfitDegradationDenominator are used
// directly by packages depeg, curve and vault, so the EngineConfig copies
// of those two do not change a quote.
const (
	// BaseCacheExpiresSeconds is the depeg virtual-price cache TTL.
	BaseCacheExpiresSeconds uint64 = 600

	// DepegPricePrecision is the fixed-point scale of a virtual price
	// (1.0 == 1_000_000).
	DepegPricePrecision uint64 = 1_000_000

	// LockedProfitDegradationDenominator is the fixed-point scale of a
	// vault's locked-profit decay ratio.
	LockedProfitDegradationDenominator uint64 = 1_000_000_000_000

	// MaxNewtonIterations bounds the stable-swap invariant and swap solvers.
	MaxNewtonIterations int = 256

	// DefaultFeeDenominator is the conventional pool fee denominator. The
	// engine never reads it: every quote takes fee_num/fee_den from the
	// snapshot.
	DefaultFeeDenominator uint64 = 100_000
)

// LidoStateID and MarinadeStateID are the fixed well-known keys a caller
// uses in QuoteData.DepegAccountBytes for those two sources, since neither
// account's identity varies per pool the way an SplStake pool's own Stake
// field does.
var (
	LidoStateID     = Mint{0x01}
	MarinadeStateID = Mint{0x02}
)
