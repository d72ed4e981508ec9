package optimizer

import (
	"HedgeFolio/internal/domain/models"
)

// AssetMetrics scores each consensus signal: risk is scaled by the asset's
// class multiplier and the Sharpe ratio divides expected return by risk with
// a configured floor on the denominator.
func (o *Optimizer) AssetMetrics(consensus map[string]models.ConsensusSignal) map[string]models.AssetMetrics {
	metrics := make(map[string]models.AssetMetrics, len(consensus))

	for asset, cs := range consensus {
		risk := cs.RiskLevel * o.multiplier(asset)
		denom := risk
		if denom < o.cfg.SharpeFloor {
			denom = o.cfg.SharpeFloor
		}
		metrics[asset] = models.AssetMetrics{
			Asset:          asset,
			ExpectedReturn: cs.ExpectedReturn,
			Risk:           risk,
			Sharpe:         cs.ExpectedReturn / denom,
			Action:         cs.Action,
			Confidence:     cs.Confidence,
			Strength:       cs.Strength,
		}
	}

	return metrics
}

func (o *Optimizer) multiplier(asset string) float64 {
	switch o.classes.Class(asset) {
	case RiskHigh:
		return o.cfg.HighRiskMultiplier
	case RiskLow:
		return o.cfg.LowRiskMultiplier
	default:
		return o.cfg.MediumRiskMultiplier
	}
}
