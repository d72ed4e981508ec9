package optimizer

import (
	"HedgeFolio/internal/domain/models"
)

// portfolioRisk is the weighted sum of asset risk, dampened by up to half of
// the hedge asset's own share. The hedge models partial risk cancellation,
// not proportional reduction.
func (o *Optimizer) portfolioRisk(weights map[string]float64, metrics map[string]models.AssetMetrics) float64 {
	var total float64
	for asset, w := range weights {
		if m, ok := metrics[asset]; ok {
			total += w * m.Risk
		}
	}
	return total * (1 - weights[o.cfg.HedgeAsset]*0.5)
}

// portfolioReturn is the weight-averaged expected return over target assets
// with known metrics.
func (o *Optimizer) portfolioReturn(weights map[string]float64, metrics map[string]models.AssetMetrics) float64 {
	var total float64
	for asset, w := range weights {
		if m, ok := metrics[asset]; ok {
			total += w * m.ExpectedReturn
		}
	}
	return total
}

// sharpeRatio reports the portfolio Sharpe against the configured risk-free
// rate. Zero risk yields zero, not an error.
func (o *Optimizer) sharpeRatio(portfolioReturn, portfolioRisk float64) float64 {
	if portfolioRisk == 0 {
		return 0
	}
	return (portfolioReturn - o.cfg.RiskFreeRate) / portfolioRisk
}
