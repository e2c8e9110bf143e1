// Package ammtypes holds the data model consumed and produced by the quote
// engine: pool and vault snapshots, the curve and depeg tagged variants, and
// the quote result. None of these types carry behavior that mutates
// on-chain state — they are plain value types, decoded upstream by a
// caller; the engine itself only ever consumes already-deserialized
// snapshots.
package ammtypes

// Mint is an opaque 32-byte token or account identifier. The engine never
// interprets its bytes; it only compares mints for equality and uses them
// as map keys.
type Mint [32]byte

// DepegKind tags which external yield-bearing-token price source a Stable
// curve's Depeg config draws its virtual price from.
type DepegKind int

const (
	DepegNone DepegKind = iota
	DepegMarinade
	DepegLido
	DepegSplStake
)

func (k DepegKind) String() string {
	switch k {
	case DepegNone:
		return "none"
	case DepegMarinade:
		return "marinade"
	case DepegLido:
		return "lido"
	case DepegSplStake:
		return "spl_stake"
	default:
		return "unknown"
	}
}

// Depeg carries the cached virtual price (base-token-per-derivative-token,
// scaled by DepegPricePrecision) and the cache-refresh bookkeeping for a
// Stable curve whose B side is a yield-bearing derivative.
type Depeg struct {
	BaseVirtualPrice   uint64
	BaseCacheUpdatedTs uint64
	Kind               DepegKind
}

// TokenMultiplier lifts each side of a stable-swap pool's reserves to a
// common decimal scale before the invariant math runs.
type TokenMultiplier struct {
	AMul            uint64
	BMul            uint64
	PrecisionFactor uint8
}

// CurveKind tags the pricing primitive a pool uses.
type CurveKind int

const (
	CurveConstantProduct CurveKind = iota
	CurveStable
)

// Curve is a pool's tagged pricing-curve variant. Exactly one of the two
// branches is meaningful, selected by Kind; StableParams is the zero value
// when Kind == CurveConstantProduct.
type Curve struct {
	Kind         CurveKind
	StableParams StableCurveParams
}

// StableCurveParams holds the amplification coefficient and scaling
// configuration for a Curve{Kind: CurveStable}.
type StableCurveParams struct {
	Amp             uint64
	TokenMultiplier TokenMultiplier
	Depeg           Depeg
	// LastAmpUpdatedTs is read-only at quote time: on-chain code uses it to
	// ramp Amp over time, the engine never mutates it.
	LastAmpUpdatedTs uint64
}

// Fees bundles the two independent fee ladders a pool charges.
type Fees struct {
	TradeFeeNumerator      uint64
	TradeFeeDenominator    uint64
	ProtocolFeeNumerator   uint64
	ProtocolFeeDenominator uint64
}

// LockedProfitTracker is a vault's time-locked yield-release bookkeeping.
// It is pure data; the decay function lives in package vault.
type LockedProfitTracker struct {
	LastUpdatedLockedProfit uint64
	LastReportTs            uint64
	LockedProfitDegradation uint64
}

// VaultSnapshot is the shape of one side's external yield-bearing reserve.
type VaultSnapshot struct {
	TotalAmount         uint64
	LPMintSupply        uint64
	TokenVaultBalance   uint64
	LockedProfitTracker LockedProfitTracker
}

// PoolSnapshot is the immutable-for-one-quote state of a two-token pool.
type PoolSnapshot struct {
	TokenAMint Mint
	TokenBMint Mint
	AVault     Mint
	BVault     Mint

	PoolLPInVaultA uint64
	PoolLPInVaultB uint64

	Fees  Fees
	Curve Curve

	// Stake references an SPL-stake-pool account when Curve.StableParams.
	// Depeg.Kind == DepegSplStake; zero value otherwise.
	Stake Mint
}

// QuoteResult is the output of a successful ComputeQuote call.
type QuoteResult struct {
	OutAmount uint64
	// Fee is the trade (LP) fee only, denominated in the input token.
	Fee uint64
}

// QuoteData bundles every piece of state a single compute_quote call
// consumes: the pool, both vaults, the clock, and the depeg source bytes
// the caller refreshed at its own snapshot cadence.
type QuoteData struct {
	Pool   PoolSnapshot
	VaultA VaultSnapshot
	VaultB VaultSnapshot

	CurrentUnixTs uint64

	// DepegAccountBytes maps a well-known source id (Lido's fixed id,
	// Marinade's fixed id, or the pool's own Stake field for SplStake) to
	// that source's bytes: the raw account for Lido and Marinade, and for
	// SplStake only the 16-byte little-endian total_lamports then
	// pool_token_supply pair, decoded upstream. A full SplStake account is
	// not decoded here.
	DepegAccountBytes map[Mint][]byte
}

