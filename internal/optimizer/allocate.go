package optimizer

import (
	"fmt"
	"sort"

	"HedgeFolio/internal/domain/models"
	"HedgeFolio/pkg/util"
)

// Allocations diffs target weights against current holdings and emits one
// instruction per asset. Moves smaller than the rebalance band become HOLDs.
// Positions held now but absent from the target are force-exited, so every
// nonzero position appears exactly once in the output.
func (o *Optimizer) Allocations(
	targets map[string]float64,
	holdings map[string]float64,
	totalValueUSD float64,
) []models.PortfolioAllocation {
	current := currentWeights(holdings, totalValueUSD)
	allocations := make([]models.PortfolioAllocation, 0, len(targets))

	for _, asset := range sortedByWeight(targets) {
		target := targets[asset]
		cur := current[asset]
		diff := target - cur

		var alloc models.PortfolioAllocation
		switch {
		case abs(diff) < o.cfg.RebalanceBand:
			alloc = models.PortfolioAllocation{
				Asset:         asset,
				CurrentWeight: cur,
				TargetWeight:  target,
				Action:        models.ActionHold,
				AmountUSD:     0,
				Reasoning:     fmt.Sprintf("Current %s ~ Target %s", util.Pct(cur), util.Pct(target)),
			}
		case diff > 0:
			alloc = models.PortfolioAllocation{
				Asset:         asset,
				CurrentWeight: cur,
				TargetWeight:  target,
				Action:        models.ActionBuy,
				AmountUSD:     diff * totalValueUSD,
				Reasoning:     fmt.Sprintf("Increase from %s to %s", util.Pct(cur), util.Pct(target)),
			}
		default:
			alloc = models.PortfolioAllocation{
				Asset:         asset,
				CurrentWeight: cur,
				TargetWeight:  target,
				Action:        models.ActionSell,
				AmountUSD:     -diff * totalValueUSD,
				Reasoning:     fmt.Sprintf("Decrease from %s to %s", util.Pct(cur), util.Pct(target)),
			}
		}
		allocations = append(allocations, alloc)
	}

	// Forced exits for positions the optimizer dropped entirely.
	exits := make([]string, 0)
	for asset, w := range current {
		if _, ok := targets[asset]; !ok && w > o.cfg.MinExitWeight {
			exits = append(exits, asset)
		}
	}
	sort.Strings(exits)
	for _, asset := range exits {
		w := current[asset]
		allocations = append(allocations, models.PortfolioAllocation{
			Asset:         asset,
			CurrentWeight: w,
			TargetWeight:  0,
			Action:        models.ActionSell,
			AmountUSD:     w * totalValueUSD,
			Reasoning:     fmt.Sprintf("Exit position: %s -> 0%%", util.Pct(w)),
		})
	}

	return allocations
}

// currentWeights converts USD holdings into portfolio weights. A zero book
// yields an empty map rather than dividing by zero.
func currentWeights(holdings map[string]float64, totalValueUSD float64) map[string]float64 {
	weights := make(map[string]float64, len(holdings))
	if totalValueUSD == 0 {
		return weights
	}
	for asset, value := range holdings {
		weights[asset] = value / totalValueUSD
	}
	return weights
}

// sortedByWeight orders assets by descending target weight, symbol ascending
// on ties, so instruction order is stable across calls.
func sortedByWeight(targets map[string]float64) []string {
	assets := make([]string, 0, len(targets))
	for asset := range targets {
		assets = append(assets, asset)
	}
	sort.SliceStable(assets, func(i, j int) bool {
		if targets[assets[i]] != targets[assets[j]] {
			return targets[assets[i]] > targets[assets[j]]
		}
		return assets[i] < assets[j]
	})
	return assets
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
