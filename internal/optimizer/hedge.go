package optimizer

import (
	"HedgeFolio/internal/domain/models"
)

// HedgeRatio sizes the stable-asset hedge. It grows as risk tolerance drops
// and as confidence-weighted high-risk exposure rises, and is clamped to
// [BaseHedge, HedgeMax]. The two exposure bumps are mutually exclusive; the
// larger threshold wins.
func (o *Optimizer) HedgeRatio(metrics map[string]models.AssetMetrics, riskTolerance float64) float64 {
	var highRiskExposure float64
	for asset, m := range metrics {
		if o.classes.Class(asset) == RiskHigh {
			highRiskExposure += m.Risk * m.Confidence
		}
	}

	hedge := o.cfg.BaseHedge + (1-riskTolerance)*o.cfg.HedgeRiskStep

	switch {
	case highRiskExposure > o.cfg.ExposureHighLevel:
		hedge += o.cfg.ExposureHighBump
	case highRiskExposure > o.cfg.ExposureMidLevel:
		hedge += o.cfg.ExposureMidBump
	}

	if hedge > o.cfg.HedgeMax {
		hedge = o.cfg.HedgeMax
	}
	return hedge
}
