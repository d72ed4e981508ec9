package optimizer

import (
	"testing"

	"HedgeFolio/internal/domain/models"
)

func highRiskMetrics(risk, confidence float64) map[string]models.AssetMetrics {
	return map[string]models.AssetMetrics{
		"BTC": {Asset: "BTC", Risk: risk, Confidence: confidence, Action: models.ActionBuy},
	}
}

func TestHedgeRatio_NoExposure(t *testing.T) {
	o := newTestOptimizer()

	// 0.20 + (1-0.6)*0.30 = 0.32
	h := o.HedgeRatio(nil, 0.6)
	if !closeTo(h, 0.32, 1e-9) {
		t.Errorf("hedge ratio = %f, want 0.32", h)
	}
}

func TestHedgeRatio_ExposureBumps(t *testing.T) {
	o := newTestOptimizer()

	cases := []struct {
		name     string
		exposure float64
		want     float64
	}{
		{"below_mid", 1.5, 0.32}, // thresholds are strict
		{"mid", 1.6, 0.42},       // +0.10
		{"high", 2.5, 0.47},      // +0.15, not both
		{"very_high_single_bump", 3.0, 0.47},
	}

	for _, tc := range cases {
		h := o.HedgeRatio(highRiskMetrics(tc.exposure, 1.0), 0.6)
		if !closeTo(h, tc.want, 1e-9) {
			t.Errorf("%s: hedge ratio = %f, want %f", tc.name, h, tc.want)
		}
	}
}

func TestHedgeRatio_ClampedAtMax(t *testing.T) {
	o := newTestOptimizer()

	// tolerance 0 gives 0.50 before bumps; must still cap at 0.50
	h := o.HedgeRatio(highRiskMetrics(5.0, 1.0), 0)
	if !closeTo(h, 0.50, 1e-9) {
		t.Errorf("hedge ratio = %f, want clamp at 0.50", h)
	}
}

func TestHedgeRatio_BoundsOverToleranceRange(t *testing.T) {
	o := newTestOptimizer()

	for _, tol := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		for _, exp := range []float64{0, 1, 1.7, 2.5, 10} {
			h := o.HedgeRatio(highRiskMetrics(exp, 1.0), tol)
			if h < 0.20-1e-9 || h > 0.50+1e-9 {
				t.Errorf("tolerance %f exposure %f: hedge ratio %f outside [0.20, 0.50]", tol, exp, h)
			}
		}
	}
}

func TestHedgeRatio_IgnoresNonHighRiskAssets(t *testing.T) {
	o := newTestOptimizer()

	metrics := map[string]models.AssetMetrics{
		"LINK": {Asset: "LINK", Risk: 5.0, Confidence: 1.0}, // medium class
		"USDT": {Asset: "USDT", Risk: 5.0, Confidence: 1.0}, // low class
	}
	h := o.HedgeRatio(metrics, 0.6)
	if !closeTo(h, 0.32, 1e-9) {
		t.Errorf("hedge ratio = %f, want 0.32 (only high-risk assets count)", h)
	}
}
