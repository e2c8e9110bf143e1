// Package metrics instruments the quote pipeline with Prometheus
// collectors registered via promauto. It is wired only through
// quote.InstrumentedEngine: the core ComputeQuote function stays free of
// any observability dependency so its purity (determinism, no side
// effects) is never in question.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// QuoteMetrics bundles the collectors a single engine instance reports
// through. Construct one with NewQuoteMetrics and share it across calls.
type QuoteMetrics struct {
	quotesTotal  *prometheus.CounterVec
	quoteLatency *prometheus.HistogramVec
	tradeFee     prometheus.Histogram
}

// NewQuoteMetrics registers and returns a fresh set of collectors. Call it
// once per process; registering twice against the default registry panics,
// standard promauto behavior.
func NewQuoteMetrics() *QuoteMetrics {
	return &QuoteMetrics{
		quotesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ammquote_quotes_total",
				Help: "Total number of quotes computed, by curve kind and outcome",
			},
			[]string{"curve_kind", "outcome"},
		),
		quoteLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ammquote_quote_latency_seconds",
				Help:    "ComputeQuote wall-clock latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.00001, 2, 12),
			},
			[]string{"curve_kind"},
		),
		tradeFee: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ammquote_trade_fee_amount",
				Help:    "Trade (LP) fee amount returned by successful quotes, in input-token native units",
				Buckets: prometheus.ExponentialBuckets(1, 4, 16),
			},
		),
	}
}

// ObserveLatency records how long a ComputeQuote call took for the given
// curve kind.
func (m *QuoteMetrics) ObserveLatency(curveKind string, d time.Duration) {
	m.quoteLatency.WithLabelValues(curveKind).Observe(d.Seconds())
}

// ObserveOutcome increments the quotes-total counter for the given curve
// kind and outcome (InstrumentedEngine passes "ok" or "error").
func (m *QuoteMetrics) ObserveOutcome(curveKind, outcome string) {
	m.quotesTotal.WithLabelValues(curveKind, outcome).Inc()
}

// ObserveTradeFee records a successful quote's trade fee.
func (m *QuoteMetrics) ObserveTradeFee(fee uint64) {
	m.tradeFee.Observe(float64(fee))
}
