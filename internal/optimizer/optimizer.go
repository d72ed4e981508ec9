package optimizer

import (
	"time"

	"HedgeFolio/internal/domain/models"
)

// Optimizer turns per-asset strategy signals and current holdings into a
// risk-adjusted target allocation with concrete trade instructions. It is a
// pure computation: no I/O, no mutable state, safe for concurrent use.
type Optimizer struct {
	cfg     Config
	classes *classifier
}

// New builds an optimizer from a parameter set.
func New(cfg Config) *Optimizer {
	return &Optimizer{cfg: cfg, classes: newClassifier(cfg)}
}

// Optimize runs the full pipeline: aggregate signals, score assets, size the
// hedge, derive target weights, diff against current holdings and compute
// portfolio-level metrics.
func (o *Optimizer) Optimize(
	signals map[string][]models.Signal,
	holdings map[string]float64,
	totalValueUSD float64,
	riskTolerance float64,
) *models.Portfolio {
	consensus := o.Aggregate(signals)
	metrics := o.AssetMetrics(consensus)
	hedge := o.HedgeRatio(metrics, riskTolerance)
	weights := o.TargetWeights(metrics, hedge, riskTolerance)
	allocations := o.Allocations(weights, holdings, totalValueUSD)

	risk := o.portfolioRisk(weights, metrics)
	ret := o.portfolioReturn(weights, metrics)

	return &models.Portfolio{
		Allocations:    allocations,
		TotalValueUSD:  totalValueUSD,
		RiskScore:      risk,
		ExpectedReturn: ret,
		SharpeRatio:    o.sharpeRatio(ret, risk),
		HedgeRatio:     hedge,
		GeneratedAt:    time.Now(),
	}
}
