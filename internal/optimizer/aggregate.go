package optimizer

import (
	"HedgeFolio/internal/domain/models"
)

// Aggregate collapses each asset's strategy signals into one consensus
// signal. Consensus goes to BUY or SELL only when that side holds a strict
// majority; ties and pluralities resolve to HOLD with zero strength, a
// deliberate conservative bias. Assets with no signals are dropped.
func (o *Optimizer) Aggregate(signals map[string][]models.Signal) map[string]models.ConsensusSignal {
	aggregated := make(map[string]models.ConsensusSignal, len(signals))

	for asset, sigs := range signals {
		if len(sigs) == 0 {
			continue
		}

		var buys, sells, holds int
		var confidence, strength, expReturn, risk float64
		for _, s := range sigs {
			switch s.Action {
			case models.ActionBuy:
				buys++
			case models.ActionSell:
				sells++
			default:
				holds++
			}
			confidence += s.Confidence
			strength += s.Strength
			expReturn += s.ExpectedReturn
			risk += s.RiskLevel
		}

		total := float64(len(sigs))
		meanStrength := strength / total
		buyRatio := float64(buys) / total
		sellRatio := float64(sells) / total

		action := models.ActionHold
		consensusStrength := 0.0
		switch {
		case buyRatio > 0.5:
			action = models.ActionBuy
			consensusStrength = buyRatio * meanStrength
		case sellRatio > 0.5:
			action = models.ActionSell
			consensusStrength = sellRatio * meanStrength
		}

		aggregated[asset] = models.ConsensusSignal{
			Asset:          asset,
			Action:         action,
			Confidence:     confidence / total,
			Strength:       consensusStrength,
			ExpectedReturn: expReturn / total,
			RiskLevel:      risk / total,
			BuyCount:       buys,
			SellCount:      sells,
			HoldCount:      holds,
		}
	}

	return aggregated
}
