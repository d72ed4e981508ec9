package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	optimizations *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	hedgeRatio    *prometheus.GaugeVec
	riskScore     *prometheus.GaugeVec
	sharpeRatio   *prometheus.GaugeVec
	published     *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		optimizations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hedgefolio_optimizations_total",
				Help: "Total optimization passes by outcome",
			},
			[]string{"outcome"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hedgefolio_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		hedgeRatio: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hedgefolio_hedge_ratio",
				Help: "Stable-asset hedge ratio from the latest pass",
			},
			[]string{"account"},
		),
		riskScore: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hedgefolio_portfolio_risk_score",
				Help: "Portfolio risk score from the latest pass",
			},
			[]string{"account"},
		),
		sharpeRatio: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hedgefolio_portfolio_sharpe_ratio",
				Help: "Portfolio Sharpe ratio from the latest pass",
			},
			[]string{"account"},
		),
		published: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hedgefolio_instructions_published_total",
				Help: "Allocation instructions handed to the execution layer",
			},
			[]string{"account"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hedgefolio_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

func (r *Recorder) RecordOptimization(outcome string) {
	r.optimizations.WithLabelValues(outcome).Inc()
}

func (r *Recorder) RecordHedgeRatio(account string, ratio float64) {
	r.hedgeRatio.WithLabelValues(account).Set(ratio)
}

func (r *Recorder) RecordRiskScore(account string, risk float64) {
	r.riskScore.WithLabelValues(account).Set(risk)
}

func (r *Recorder) RecordSharpe(account string, sharpe float64) {
	r.sharpeRatio.WithLabelValues(account).Set(sharpe)
}

func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

func (r *Recorder) RecordInstructionsPublished(account string, count int) {
	r.published.WithLabelValues(account).Add(float64(count))
}
