package ammtypes

import "testing"

// ============================================================================
// DepegKind Tests
// ============================================================================

func TestDepegKind_String(t *testing.T) {
	tests := []struct {
		kind     DepegKind
		expected string
	}{
		{DepegNone, "none"},
		{DepegMarinade, "marinade"},
		{DepegLido, "lido"},
		{DepegSplStake, "spl_stake"},
		{DepegKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("DepegKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestDepegKind_ZeroValueIsNone(t *testing.T) {
	var k DepegKind
	if k != DepegNone {
		t.Errorf("zero-value DepegKind should be DepegNone, got %v", k)
	}
}

// ============================================================================
// Curve / CurveKind Tests
// ============================================================================

func TestCurveKind_ZeroValueIsConstantProduct(t *testing.T) {
	var k CurveKind
	if k != CurveConstantProduct {
		t.Errorf("zero-value CurveKind should be CurveConstantProduct, got %v", k)
	}
}

func TestCurve_Fields(t *testing.T) {
	c := Curve{
		Kind: CurveStable,
		StableParams: StableCurveParams{
			Amp: 100,
			TokenMultiplier: TokenMultiplier{
				AMul:            1,
				BMul:            1000,
				PrecisionFactor: 6,
			},
			Depeg: Depeg{
				BaseVirtualPrice:   1_050_000,
				BaseCacheUpdatedTs: 42,
				Kind:               DepegLido,
			},
			LastAmpUpdatedTs: 7,
		},
	}

	if c.Kind != CurveStable {
		t.Errorf("Kind mismatch: got %v", c.Kind)
	}
	if c.StableParams.Amp != 100 {
		t.Errorf("Amp mismatch: got %d", c.StableParams.Amp)
	}
	if c.StableParams.TokenMultiplier.PrecisionFactor != 6 {
		t.Errorf("PrecisionFactor mismatch: got %d", c.StableParams.TokenMultiplier.PrecisionFactor)
	}
	if c.StableParams.Depeg.Kind != DepegLido {
		t.Errorf("Depeg.Kind mismatch: got %v", c.StableParams.Depeg.Kind)
	}
	if c.StableParams.Depeg.BaseVirtualPrice != 1_050_000 {
		t.Errorf("BaseVirtualPrice mismatch: got %d", c.StableParams.Depeg.BaseVirtualPrice)
	}
}

func TestCurve_ConstantProductHasZeroStableParams(t *testing.T) {
	c := Curve{Kind: CurveConstantProduct}
	if c.StableParams != (StableCurveParams{}) {
		t.Errorf("constant-product curve should have zero-value StableParams, got %+v", c.StableParams)
	}
}

// ============================================================================
// Fees Tests
// ============================================================================

func TestFees_Fields(t *testing.T) {
	f := Fees{
		TradeFeeNumerator:      25,
		TradeFeeDenominator:    10_000,
		ProtocolFeeNumerator:   5,
		ProtocolFeeDenominator: 10_000,
	}

	if f.TradeFeeNumerator != 25 {
		t.Errorf("TradeFeeNumerator mismatch: got %d", f.TradeFeeNumerator)
	}
	if f.ProtocolFeeDenominator != 10_000 {
		t.Errorf("ProtocolFeeDenominator mismatch: got %d", f.ProtocolFeeDenominator)
	}
}

func TestFees_ZeroValueIsAllZero(t *testing.T) {
	var f Fees
	if f.TradeFeeNumerator != 0 || f.TradeFeeDenominator != 0 ||
		f.ProtocolFeeNumerator != 0 || f.ProtocolFeeDenominator != 0 {
		t.Errorf("zero-value Fees should have every field zero, got %+v", f)
	}
}

// ============================================================================
// VaultSnapshot / LockedProfitTracker Tests
// ============================================================================

func TestVaultSnapshot_Fields(t *testing.T) {
	v := VaultSnapshot{
		TotalAmount:       1_000_000,
		LPMintSupply:      990_000,
		TokenVaultBalance: 1_000_000,
		LockedProfitTracker: LockedProfitTracker{
			LastUpdatedLockedProfit: 10_000,
			LastReportTs:            1_700_000_000,
			LockedProfitDegradation: 1_000_000_000_000,
		},
	}

	if v.TotalAmount != 1_000_000 {
		t.Errorf("TotalAmount mismatch: got %d", v.TotalAmount)
	}
	if v.LockedProfitTracker.LastUpdatedLockedProfit != 10_000 {
		t.Errorf("LastUpdatedLockedProfit mismatch: got %d", v.LockedProfitTracker.LastUpdatedLockedProfit)
	}
}

// ============================================================================
// PoolSnapshot Tests
// ============================================================================

func TestPoolSnapshot_Fields(t *testing.T) {
	a := Mint{0xA}
	b := Mint{0xB}
	stake := Mint{0xCC}

	p := PoolSnapshot{
		TokenAMint:     a,
		TokenBMint:     b,
		PoolLPInVaultA: 1_000_000,
		PoolLPInVaultB: 2_000_000,
		Stake:          stake,
		Curve:          Curve{Kind: CurveStable},
	}

	if p.TokenAMint != a {
		t.Errorf("TokenAMint mismatch")
	}
	if p.TokenBMint != b {
		t.Errorf("TokenBMint mismatch")
	}
	if p.Stake != stake {
		t.Errorf("Stake mismatch")
	}
	if p.Curve.Kind != CurveStable {
		t.Errorf("Curve.Kind mismatch: got %v", p.Curve.Kind)
	}
}

func TestPoolSnapshot_ZeroValueStakeIsZeroMint(t *testing.T) {
	var p PoolSnapshot
	if p.Stake != (Mint{}) {
		t.Errorf("zero-value PoolSnapshot.Stake should be the zero Mint")
	}
}

// ============================================================================
// QuoteData / QuoteResult Tests
// ============================================================================

func TestQuoteData_Fields(t *testing.T) {
	stake := Mint{0xCC}
	raw := []byte{1, 2, 3, 4}

	qd := QuoteData{
		Pool:          PoolSnapshot{Stake: stake},
		VaultA:        VaultSnapshot{TotalAmount: 1},
		VaultB:        VaultSnapshot{TotalAmount: 2},
		CurrentUnixTs: 1_700_000_000,
		DepegAccountBytes: map[Mint][]byte{
			stake: raw,
		},
	}

	if qd.CurrentUnixTs != 1_700_000_000 {
		t.Errorf("CurrentUnixTs mismatch: got %d", qd.CurrentUnixTs)
	}
	if len(qd.DepegAccountBytes[stake]) != 4 {
		t.Errorf("DepegAccountBytes[stake] length mismatch: got %d", len(qd.DepegAccountBytes[stake]))
	}
}

func TestQuoteResult_ZeroValue(t *testing.T) {
	var r QuoteResult
	if r.OutAmount != 0 || r.Fee != 0 {
		t.Errorf("zero-value QuoteResult should have both fields zero, got %+v", r)
	}
}

// ============================================================================
// Well-known Mint Tests
// ============================================================================

func TestWellKnownMints_AreDistinct(t *testing.T) {
	if LidoStateID == MarinadeStateID {
		t.Error("LidoStateID and MarinadeStateID must not collide")
	}
	if LidoStateID == (Mint{}) {
		t.Error("LidoStateID must not be the zero Mint")
	}
	if MarinadeStateID == (Mint{}) {
		t.Error("MarinadeStateID must not be the zero Mint")
	}
}
