package optimizer

// Config carries every tunable the engine reads. Defaults reproduce the
// production parameters; deployments may override class membership and
// thresholds through the YAML config without touching the algorithm.
type Config struct {
	HedgeAsset string

	HighRiskAssets   []string
	MediumRiskAssets []string
	LowRiskAssets    []string

	HighRiskMultiplier   float64
	MediumRiskMultiplier float64
	LowRiskMultiplier    float64

	// Sharpe denominator floor so near-zero risk does not blow up the ratio.
	SharpeFloor float64

	BaseHedge         float64 // minimum stable allocation
	HedgeRiskStep     float64 // added in full at risk_tolerance 0
	HedgeMax          float64
	ExposureHighLevel float64 // high-risk exposure above this adds ExposureHighBump
	ExposureHighBump  float64
	ExposureMidLevel  float64
	ExposureMidBump   float64

	HighRiskCapFactor float64 // cap = factor x risk_tolerance
	MediumRiskCap     float64
	LowRiskCap        float64
	StrengthFloor     float64 // weight multiplier at zero strength

	RebalanceBand float64 // |target-current| below this holds
	MinExitWeight float64 // forced exits only above this current weight
	RiskFreeRate  float64
}

// DefaultConfig returns the standard parameter set.
func DefaultConfig() Config {
	return Config{
		HedgeAsset:           "USDC",
		HighRiskAssets:       []string{"BTC", "ETH", "SOL", "FET"},
		MediumRiskAssets:     []string{"LINK", "AAVE", "LDO", "ARB"},
		LowRiskAssets:        []string{"USDT", "USDC"},
		HighRiskMultiplier:   1.5,
		MediumRiskMultiplier: 1.0,
		LowRiskMultiplier:    0.3,
		SharpeFloor:          0.01,
		BaseHedge:            0.20,
		HedgeRiskStep:        0.30,
		HedgeMax:             0.50,
		ExposureHighLevel:    2.0,
		ExposureHighBump:     0.15,
		ExposureMidLevel:     1.5,
		ExposureMidBump:      0.10,
		HighRiskCapFactor:    0.25,
		MediumRiskCap:        0.35,
		LowRiskCap:           0.40,
		StrengthFloor:        0.5,
		RebalanceBand:        0.02,
		MinExitWeight:        0.01,
		RiskFreeRate:         0.02,
	}
}
