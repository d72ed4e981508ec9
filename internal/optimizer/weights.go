package optimizer

import (
	"sort"

	"HedgeFolio/internal/domain/models"
)

// TargetWeights allocates the non-hedge share of the portfolio across every
// asset without a SELL consensus, proportionally to Sharpe, dampened by
// signal strength and capped per risk class, then normalizes everything
// (hedge included) to sum to 1.
//
// Normalizing after capping can push an individual weight back above its
// nominal cap when capping stranded weight mass. The order is intentional
// and must not be swapped without product sign-off.
func (o *Optimizer) TargetWeights(
	metrics map[string]models.AssetMetrics,
	hedgeRatio float64,
	riskTolerance float64,
) map[string]float64 {
	weights := map[string]float64{o.cfg.HedgeAsset: hedgeRatio}
	remaining := 1.0 - hedgeRatio

	investable := make([]models.AssetMetrics, 0, len(metrics))
	for asset, m := range metrics {
		if m.Action != models.ActionSell && asset != o.cfg.HedgeAsset {
			investable = append(investable, m)
		}
	}
	if len(investable) == 0 {
		// Nothing to hold: the hedge asset takes the whole book.
		return map[string]float64{o.cfg.HedgeAsset: 1.0}
	}

	// Descending Sharpe, symbol as tie-break so the result is deterministic.
	sort.SliceStable(investable, func(i, j int) bool {
		if investable[i].Sharpe != investable[j].Sharpe {
			return investable[i].Sharpe > investable[j].Sharpe
		}
		return investable[i].Asset < investable[j].Asset
	})

	var totalSharpe float64
	for _, m := range investable {
		totalSharpe += m.Sharpe
	}

	for _, m := range investable {
		var base float64
		if totalSharpe > 0 {
			base = (m.Sharpe / totalSharpe) * remaining
			// Long-only book: a negative Sharpe against a positive total
			// would go short, so it floors at zero instead.
			if base < 0 {
				base = 0
			}
		} else {
			// Non-positive aggregate Sharpe: Sharpe-proportional shares are
			// undefined, fall back to equal weighting across the set.
			base = remaining / float64(len(investable))
		}

		adjusted := base * (o.cfg.StrengthFloor + (1-o.cfg.StrengthFloor)*m.Strength)

		cap := o.weightCap(m.Asset, riskTolerance)
		if adjusted > cap {
			adjusted = cap
		}
		weights[m.Asset] = adjusted
	}

	normalize(weights)
	return weights
}

// weightCap returns the per-asset ceiling before normalization. High-risk
// assets scale their cap with risk tolerance; anything outside the high and
// medium sets, known-low or not, takes the widest cap.
func (o *Optimizer) weightCap(asset string, riskTolerance float64) float64 {
	switch {
	case o.classes.isHigh(asset):
		return o.cfg.HighRiskCapFactor * riskTolerance
	case o.classes.isMedium(asset):
		return o.cfg.MediumRiskCap
	default:
		return o.cfg.LowRiskCap
	}
}

func normalize(weights map[string]float64) {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return
	}
	for asset, w := range weights {
		weights[asset] = w / total
	}
}
