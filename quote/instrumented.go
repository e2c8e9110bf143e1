package quote

import (
	"time"

	"cosmossdk.io/log"

	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/ammtypes"
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/config"
	"github.com/mercurial-finance/mercurial-dynamic-amm-sdk/metrics"
)

// InstrumentedEngine wraps ComputeQuote with structured logging and
// Prometheus metrics, without altering its inputs, outputs, or purity — the
// decorator observes, it never feeds anything back into the computation.
type InstrumentedEngine struct {
	logger  log.Logger
	metrics *metrics.QuoteMetrics
	cfg     config.EngineConfig
}

// NewInstrumentedEngine builds a decorator around ComputeQuote. Either
// logger or m may be nil to disable that observability channel.
func NewInstrumentedEngine(logger log.Logger, m *metrics.QuoteMetrics, cfg config.EngineConfig) *InstrumentedEngine {
	return &InstrumentedEngine{logger: logger, metrics: m, cfg: cfg}
}

func curveKindLabel(c ammtypes.Curve) string {
	if c.Kind == ammtypes.CurveStable {
		return "stable"
	}
	return "constant_product"
}

// ComputeQuote delegates to the package-level ComputeQuote, then logs and
// records metrics for the call. Errors are logged at Error level with the
// returned error as a field; successful quotes are logged at Debug
// to avoid flooding production logs with per-quote noise.
func (e *InstrumentedEngine) ComputeQuote(inMint ammtypes.Mint, inAmount uint64, data ammtypes.QuoteData) (ammtypes.QuoteResult, error) {
	curveKind := curveKindLabel(data.Pool.Curve)
	start := time.Now()

	result, err := ComputeQuote(inMint, inAmount, data, e.cfg)

	elapsed := time.Since(start)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	if e.metrics != nil {
		e.metrics.ObserveLatency(curveKind, elapsed)
		e.metrics.ObserveOutcome(curveKind, outcome)
		if err == nil {
			e.metrics.ObserveTradeFee(result.Fee)
		}
	}

	if e.logger != nil {
		if err != nil {
			e.logger.Error("quote failed", "curve_kind", curveKind, "in_amount", inAmount, "error", err)
		} else {
			e.logger.Debug("quote computed", "curve_kind", curveKind, "in_amount", inAmount,
				"out_amount", result.OutAmount, "fee", result.Fee, "elapsed", elapsed)
		}
	}

	return result, err
}
